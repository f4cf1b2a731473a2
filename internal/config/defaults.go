package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the hardcoded default configuration, used when even
// the embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Input: InputConfig{
			Deadzone: 40,
			KeyTilt:  120,
		},
		Display: DisplayConfig{
			ShowGridLines: true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
