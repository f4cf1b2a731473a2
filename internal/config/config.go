// Package config provides YAML-based configuration loading for the
// snake platform. Only the player-facing knobs live here: input tuning
// and display options. Board geometry and the step period are fixed by
// the game design and deliberately absent.
package config

// Config contains all user-adjustable settings.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Display DisplayConfig `yaml:"display"`
}

// InputConfig tunes how key presses become tilt samples.
type InputConfig struct {
	// Deadzone is the tilt magnitude below which an axis is ignored
	// for direction selection.
	Deadzone int `yaml:"deadzone"`

	// KeyTilt is the synthetic tilt magnitude one key press injects on
	// the corresponding axis. Must exceed the deadzone to register.
	KeyTilt int `yaml:"key_tilt"`
}

// DisplayConfig tunes board presentation.
type DisplayConfig struct {
	// ShowGridLines draws the cell grid as a faint backdrop.
	ShowGridLines bool `yaml:"show_grid_lines"`
}
