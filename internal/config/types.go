package config

// Config represents the global skel configuration.
type Config struct {
	// Store is the template store directory. A leading ~ is expanded.
	Store string `toml:"store"`
	// Extension is the file extension of stored templates, without the dot.
	Extension string `toml:"extension"`
	// Editor is the command used to edit templates.
	Editor string `toml:"editor"`
	// Output configuration for display.
	Output OutputConfig `toml:"output"`
}

// OutputConfig represents output and display settings.
type OutputConfig struct {
	// Color enables colored terminal output.
	Color bool `toml:"color"`
}
