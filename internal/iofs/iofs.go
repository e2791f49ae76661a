// Package iofs prepares the file system for a run: application
// directories, default configuration files, and preflight checks of the
// paths given on the command line.
package iofs

import (
	_ "embed"
	"os"

	"github.com/gnames/gnsys"
	"github.com/gnames/gntaxa/pkg/config"
)

//go:embed config.yaml
var ConfigYAML string

//go:embed blacklist.yaml
var BlacklistYAML string

// EnsureDirs creates the config and log directories if they are missing.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := gnsys.MakeDir(v); err != nil {
			return CreateDirError(v, err)
		}
	}
	return nil
}

// EnsureConfigFile writes the embedded default config.yaml to the config
// directory unless the file already exists.
func EnsureConfigFile(homeDir string) error {
	return ensureFile(config.ConfigFilePath(homeDir), ConfigYAML)
}

// EnsureBlacklistFile writes the embedded default blacklist.yaml to the
// config directory unless the file already exists.
func EnsureBlacklistFile(homeDir string) error {
	return ensureFile(config.BlacklistFilePath(homeDir), BlacklistYAML)
}

func ensureFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return CopyFileError(path, err)
	}

	return nil
}

// ReadBlacklistFile reads a blacklist.yaml file from the given path.
func ReadBlacklistFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	return data, nil
}

// Preflight verifies the command-line paths before the build starts: the
// output file must not exist yet, both dump files must exist.
func Preflight(outputPath string, inputPaths ...string) error {
	exists, _ := gnsys.FileExists(outputPath)
	if exists {
		return OutputExistsError(outputPath)
	}
	for _, p := range inputPaths {
		exists, err := gnsys.FileExists(p)
		if err != nil || !exists {
			return InputMissingError(p, err)
		}
	}
	return nil
}
