package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tacogips/skel/internal/debug"
)

// ResolveStore returns the store directory. The first non-empty source wins:
// flag, the SKEL_STORE environment variable, the config file, ~/.skel.
func ResolveStore(cfg *Config, flag string) string {
	candidates := []struct {
		source string
		value  string
	}{
		{"flag", flag},
		{"env " + StoreEnvVar, os.Getenv(StoreEnvVar)},
		{"config", configStore(cfg)},
		{"default", DefaultStoreDir()},
	}

	for _, c := range candidates {
		if strings.TrimSpace(c.value) == "" {
			continue
		}
		dir := ExpandHome(c.value)
		debug.Debug("[config] Store directory from %s: %s", c.source, dir)
		return dir
	}
	return ""
}

func configStore(cfg *Config) string {
	if cfg == nil {
		return ""
	}
	return cfg.Store
}

// ResolveEditor returns the editor command. The first non-empty source wins:
// flag, the config file, $VISUAL, $EDITOR. It returns "" when none is set.
func ResolveEditor(cfg *Config, flag string) string {
	var configured string
	if cfg != nil {
		configured = cfg.Editor
	}

	for _, value := range []string{flag, configured, os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		if v := strings.TrimSpace(value); v != "" {
			debug.Debug("[config] Editor: %s", v)
			return v
		}
	}
	return ""
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return homeDir
	}
	return filepath.Join(homeDir, path[2:])
}
