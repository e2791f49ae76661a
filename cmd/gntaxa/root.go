package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gnames/gn"
	"github.com/gnames/gntaxa/internal/iobuild"
	"github.com/gnames/gntaxa/internal/ioexport"
	"github.com/gnames/gntaxa/internal/iofs"
	"github.com/gnames/gntaxa/internal/iologger"
	app "github.com/gnames/gntaxa/pkg"
	"github.com/gnames/gntaxa/pkg/blacklist"
	"github.com/gnames/gntaxa/pkg/config"
	"github.com/spf13/cobra"
)

var (
	homeDir string
	cfg     *config.Config
)

// rootCmd represents the base command; gntaxa has no subcommands.
var rootCmd = &cobra.Command{
	Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
	Use:     "gntaxa [flags] output names-dump nodes-dump",
	Short:   "GNtaxa flattens a raw taxonomy dump onto the seven canonical ranks",
	Long: `GNtaxa converts a raw taxonomy dump (nodes + names) into a clean taxonomy
table restricted to the seven canonical ranks: species, genus, family,
order, class, phylum and domain.

The build removes blacklisted subtrees (by default "environmental
samples"), collapses taxa with non-standard ranks onto their nearest
canonical ancestor, discards incomplete lineages, keeps only taxa still
connected to the root, and picks one globally unique name per taxon.

The output is a tab-separated table (child_id, child_rank, parent_id,
name) sorted by name, or a SQLite database with --format sqlite.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (GNTAXA_*)
  3. Config file (~/.config/gntaxa/config.yaml)
  4. Built-in defaults`,
	Args:              cobra.ExactArgs(3),
	PersistentPreRunE: bootstrap,
	RunE:              run,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults.
	// Will be reconfigured later with user's config settings.
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if err = iofs.EnsureBlacklistFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	cfg.Update(cfgViper.ToOptions())
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings.
	if err = iologger.Init(config.LogDir(homeDir), cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir))

	return nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg.Update(flagOpts(cmd))

	outputPath, namesPath, nodesPath := args[0], args[1], args[2]

	if err := iofs.Preflight(outputPath, namesPath, nodesPath); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err := applyBlacklistFlag(cmd); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	table, err := iobuild.New(cfg).BuildFiles(nodesPath, namesPath)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = ioexport.NewWriter(cfg, outputPath).Write(table); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Wrote taxonomy table to <em>%s</em>", outputPath)
	return nil
}

// applyBlacklistFlag replaces the configured blacklist with the content
// of the file given via --blacklist, when the flag is set.
func applyBlacklistFlag(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("blacklist")
	if path == "" {
		return nil
	}
	data, err := iofs.ReadBlacklistFile(path)
	if err != nil {
		return err
	}
	bl, err := blacklist.Parse(data)
	if err != nil {
		return err
	}
	cfg.Update([]config.Option{config.OptBlacklist(bl.IDs())})
	return nil
}

func init() {
	// Remove the automatic "gntaxa version" prefix.
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gntaxa")

	rootCmd.Flags().StringP("format", "f", "",
		"output format, 'tsv' or 'sqlite'")
	rootCmd.Flags().StringP("blacklist", "b", "",
		"blacklist.yaml file overriding the default blacklisted subtrees")
	rootCmd.Flags().BoolP("quiet", "q", false,
		"suppress progress bars")
}
