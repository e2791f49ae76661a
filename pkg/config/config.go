// Package config provides configuration management for GNtaxa.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml >
// defaults.
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains valid
// - ToOptions() converts persistent fields (those in config.yaml)
//
// # Environment Variables
//
// Use the GNTAXA_ prefix with underscores for nesting:
//
//	GNTAXA_FORMAT=sqlite
//	GNTAXA_LOG_LEVEL=debug
//	GNTAXA_WITH_PROGRESS=false
package config

// Config represents the complete GNtaxa configuration.
type Config struct {
	// Blacklist holds taxon ids whose subtrees are removed from the
	// output. The default contains the "environmental samples" subtree.
	Blacklist []int `mapstructure:"blacklist" yaml:"blacklist"`

	// Format selects the output format, "tsv" or "sqlite".
	Format string `mapstructure:"format" yaml:"format"`

	// WithProgress enables progress bars while the dumps are scanned.
	WithProgress bool `mapstructure:"with_progress" yaml:"with_progress"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config and log directories reside.
	// It must be set by the CLI during init, there is no default for it.
	HomeDir string
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// FormatTSV and FormatSQLite are the valid values of Config.Format.
const (
	FormatTSV    = "tsv"
	FormatSQLite = "sqlite"
)

// EnvironmentalSamplesID is the taxon id of the "environmental samples"
// subtree, blacklisted by default.
const EnvironmentalSamplesID = 48479

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Blacklist:    []int{EnvironmentalSamplesID},
		Format:       FormatTSV,
		WithProgress: true,
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}
