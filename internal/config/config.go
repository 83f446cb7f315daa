package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	General       GeneralConfig       `toml:"general"`
	Heatmap       HeatmapConfig       `toml:"heatmap"`
	Notifications NotificationsConfig `toml:"notifications"`
}

type GeneralConfig struct {
	LogDir string `toml:"log_dir"` // empty = host default
	Window string `toml:"window"`  // 7d, 30d, 90d
}

type HeatmapConfig struct {
	// MinVisible floors the intensity ramp so near-zero days stay visible.
	MinVisible float64 `toml:"min_visible"`
	// Background overrides the resolved terminal background (hex).
	Background string `toml:"background"`
}

type NotificationsConfig struct {
	Bell bool `toml:"bell"`
}

func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Window: "30d",
		},
		Heatmap: HeatmapConfig{
			MinVisible: 0.2,
		},
	}
}

func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "usage-cal", "config.toml")
}

func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // use defaults
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	if cfg.Heatmap.MinVisible < 0 || cfg.Heatmap.MinVisible >= 1 {
		cfg.Heatmap.MinVisible = DefaultConfig().Heatmap.MinVisible
	}
	return cfg, nil
}
