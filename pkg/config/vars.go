package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "gntaxa"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gntaxa by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gntaxa/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gntaxa/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// BlacklistFilePath returns the full path to the blacklist.yaml file.
// Returns ~/.config/gntaxa/blacklist.yaml by default.
func BlacklistFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "blacklist.yaml")
}
