// Package config loads liveresize settings from the user's XDG config
// directory as TOML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

const configRelPath = "liveresize/config.toml"

// Key names accepted for input.toggle_key.
const (
	KeyF11      = "f11"
	KeyF12      = "f12"
	KeyAltEnter = "alt+enter"
)

// Config is the user-facing configuration.
type Config struct {
	Video VideoConfig `toml:"video"`
	Input InputConfig `toml:"input"`
}

// VideoConfig holds rendering settings.
type VideoConfig struct {
	VirtualWidth   int `toml:"virtual_width"`    // Canvas width in pixels (default: 800)
	VirtualHeight  int `toml:"virtual_height"`   // Canvas height in pixels (default: 600)
	TargetFPS      int `toml:"target_fps"`       // Paced loop rate, clamped to 1..1000 (default: 60)
	PumpIntervalMS int `toml:"pump_interval_ms"` // Tick interval during interactive resize (default: 16)
}

// InputConfig holds input settings.
type InputConfig struct {
	ToggleKey string `toml:"toggle_key"` // Fullscreen toggle key: f11, f12, alt+enter (default: f11)
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Video: VideoConfig{
			VirtualWidth:   800,
			VirtualHeight:  600,
			TargetFPS:      60,
			PumpIntervalMS: 16,
		},
		Input: InputConfig{
			ToggleKey: KeyF11,
		},
	}
}

// Load reads the config from the XDG config directory. A missing file is
// not an error: defaults are returned and no file is created. Use Init to
// write the default file explicitly.
func Load() (*Config, error) {
	path, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads and validates the config at path. Missing fields are
// filled with defaults; out-of-range values are clamped.
func LoadFrom(path string) (*Config, error) {
	// #nosec G304 - reading the user's own config file is intentional
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	fillMissing(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Init writes the default config file to the XDG config directory and
// returns its path. An existing file is left untouched.
func Init() (string, error) {
	if path, err := xdg.SearchConfigFile(configRelPath); err == nil {
		return path, nil
	}

	path, err := xdg.ConfigFile(configRelPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(Default())
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# liveresize configuration\n")
	sb.WriteString("#\n")
	sb.WriteString("# virtual_width, virtual_height: fixed canvas resolution; the window\n")
	sb.WriteString("#   letterboxes it, so these never change with window size.\n")
	sb.WriteString("# target_fps: paced render loop rate, 1 to 1000.\n")
	sb.WriteString("# pump_interval_ms: how often frames render during an interactive\n")
	sb.WriteString("#   resize or move, in milliseconds.\n")
	sb.WriteString("# toggle_key: borderless fullscreen toggle: f11, f12, alt+enter.\n\n")
	sb.Write(data)

	if err := os.WriteFile(path, []byte(sb.String()), 0600); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}

// Path returns where the config file is, or would be created.
func Path() (string, error) {
	if path, err := xdg.SearchConfigFile(configRelPath); err == nil {
		return path, nil
	}
	return xdg.ConfigFile(configRelPath)
}

func fillMissing(cfg *Config) {
	def := Default()
	if cfg.Video.VirtualWidth == 0 {
		cfg.Video.VirtualWidth = def.Video.VirtualWidth
	}
	if cfg.Video.VirtualHeight == 0 {
		cfg.Video.VirtualHeight = def.Video.VirtualHeight
	}
	if cfg.Video.TargetFPS == 0 {
		cfg.Video.TargetFPS = def.Video.TargetFPS
	}
	if cfg.Video.PumpIntervalMS == 0 {
		cfg.Video.PumpIntervalMS = def.Video.PumpIntervalMS
	}
	if cfg.Input.ToggleKey == "" {
		cfg.Input.ToggleKey = def.Input.ToggleKey
	}

	// Clamp rather than reject soft limits.
	if cfg.Video.TargetFPS < 1 {
		cfg.Video.TargetFPS = 1
	} else if cfg.Video.TargetFPS > 1000 {
		cfg.Video.TargetFPS = 1000
	}
	if cfg.Video.PumpIntervalMS < 1 {
		cfg.Video.PumpIntervalMS = 1
	} else if cfg.Video.PumpIntervalMS > 1000 {
		cfg.Video.PumpIntervalMS = 1000
	}
}

func validate(cfg *Config) error {
	if cfg.Video.VirtualWidth < 1 || cfg.Video.VirtualHeight < 1 {
		return fmt.Errorf("config: virtual size %dx%d must be positive",
			cfg.Video.VirtualWidth, cfg.Video.VirtualHeight)
	}
	switch strings.ToLower(cfg.Input.ToggleKey) {
	case KeyF11, KeyF12, KeyAltEnter:
	default:
		return fmt.Errorf("config: unknown toggle_key %q (want f11, f12 or alt+enter)", cfg.Input.ToggleKey)
	}
	return nil
}
