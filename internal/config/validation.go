package config

import (
	"strings"
)

// ValidateConfig validates a loaded configuration.
func ValidateConfig(config *Config) error {
	if config == nil {
		return NewConfigError(ConfigValidationFailed, "", "configuration is nil")
	}
	return ValidateExtension(config.Extension)
}

// ValidateExtension checks that ext can be used as a template file extension.
func ValidateExtension(ext string) error {
	switch {
	case ext == "":
		return NewConfigErrorWithField(ConfigValidationFailed, "", "extension", "extension cannot be empty")
	case strings.ContainsAny(ext, `/\`):
		return NewConfigErrorWithField(ConfigValidationFailed, "", "extension", "extension must not contain path separators")
	case strings.Contains(ext, "."):
		return NewConfigErrorWithField(ConfigValidationFailed, "", "extension", "extension must not contain dots")
	case strings.ContainsAny(ext, " \t\n\x00"):
		return NewConfigErrorWithField(ConfigValidationFailed, "", "extension", "extension must not contain whitespace")
	}
	return nil
}
