package orrery

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config carries the application-tuning values of the visualization. These
// are display choices, not physical constants, so unlike orbital elements
// they have defaults and are freely adjustable.
type Config struct {
	MinSpeed     float64 // lowest allowed time-speed multiplier
	MaxSpeed     float64 // highest allowed time-speed multiplier
	InitialSpeed float64
	SceneScale   float64 // scene units per astronomical unit
	VSOP87       bool    // use VSOP87 series instead of mean elements for planets
	VSOP87Dir    string  // directory holding the VSOP87 data files
}

// DefaultConfig returns the built-in tuning values.
func DefaultConfig() Config {
	return Config{
		MinSpeed:     0.1,
		MaxSpeed:     1e6,
		InitialSpeed: 1,
		SceneScale:   100,
	}
}

// LoadConfig reads conf.toml from the directory named by the ORRERY_CONFIG
// environment variable. When the variable is unset the defaults are returned:
// the visualization must run out of the box.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	confPath := os.Getenv("ORRERY_CONFIG")
	if confPath == "" {
		return cfg, nil
	}
	v := viper.New()
	v.SetConfigName("conf")
	v.SetConfigType("toml")
	v.AddConfigPath(confPath)
	v.SetDefault("clock.min_speed", cfg.MinSpeed)
	v.SetDefault("clock.max_speed", cfg.MaxSpeed)
	v.SetDefault("clock.initial_speed", cfg.InitialSpeed)
	v.SetDefault("scene.scale", cfg.SceneScale)
	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("%s/conf.toml: %v", confPath, err)
	}
	cfg.MinSpeed = v.GetFloat64("clock.min_speed")
	cfg.MaxSpeed = v.GetFloat64("clock.max_speed")
	cfg.InitialSpeed = v.GetFloat64("clock.initial_speed")
	cfg.SceneScale = v.GetFloat64("scene.scale")
	cfg.VSOP87 = v.GetBool("VSOP87.enabled")
	cfg.VSOP87Dir = v.GetString("VSOP87.directory")
	if cfg.MinSpeed <= 0 || cfg.MaxSpeed < cfg.MinSpeed {
		return cfg, fmt.Errorf("%s/conf.toml: invalid clock speed bounds [%v, %v]", confPath, cfg.MinSpeed, cfg.MaxSpeed)
	}
	if cfg.SceneScale <= 0 {
		return cfg, fmt.Errorf("%s/conf.toml: scene scale must be positive, got %v", confPath, cfg.SceneScale)
	}
	if cfg.VSOP87 && cfg.VSOP87Dir == "" {
		return cfg, fmt.Errorf("%s/conf.toml: VSOP87 enabled but no directory given", confPath)
	}
	return cfg, nil
}
