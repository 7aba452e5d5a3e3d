package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// AppDirName is the directory name used under the XDG config home.
	AppDirName = "skel"
	// ConfigFileName is the configuration file name.
	ConfigFileName = "config.toml"
	// DefaultExtension is the default template file extension.
	DefaultExtension = "skel"
	// DefaultStoreDirName is the store directory name under the home directory.
	DefaultStoreDirName = ".skel"
	// StoreEnvVar overrides the configured store directory.
	StoreEnvVar = "SKEL_STORE"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Store:     "",
		Extension: DefaultExtension,
		Editor:    "",
		Output: OutputConfig{
			Color: true,
		},
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}

// DefaultStoreDir returns ~/.skel, or "" when the home directory is unknown.
func DefaultStoreDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, DefaultStoreDirName)
}
