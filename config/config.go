package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/trainers/navigation"
	"github.com/lixenwraith/trainers/parameter"
)

var (
	ErrTrainerCount  = errors.New("trainer count out of range")
	ErrInvalidVolume = errors.New("audio volume out of range")
	ErrGrowthPasses  = errors.New("growth passes must not be negative")
)

// Config is the file-backed run configuration; CLI flags override individual fields
type Config struct {
	Trainers   int              `yaml:"trainers"`
	Seed       int64            `yaml:"seed"` // 0 = wall clock
	Debug      bool             `yaml:"debug"`
	Navigation NavigationConfig `yaml:"navigation"`
	Generation GenerationConfig `yaml:"generation"`
	Audio      AudioConfig      `yaml:"audio"`
}

type NavigationConfig struct {
	Mode string `yaml:"mode"` // sweep | dijkstra
}

type GenerationConfig struct {
	GrowthPasses int `yaml:"growth_passes"` // 0 = built-in default
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		Trainers:   parameter.DefaultTrainers,
		Navigation: NavigationConfig{Mode: navigation.ModeSweep.String()},
		Generation: GenerationConfig{GrowthPasses: parameter.GrowthPasses},
		Audio:      AudioConfig{Enabled: false, Volume: parameter.AudioDefaultVolume},
	}
}

// Parse decodes YAML over the defaults so omitted keys keep their default values
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Load reads and parses a config file; an empty path yields the defaults
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Validate checks ranges and enum values
func (c Config) Validate() error {
	if c.Trainers < parameter.MinTrainers || c.Trainers > parameter.MaxTrainers {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrTrainerCount, c.Trainers, parameter.MinTrainers, parameter.MaxTrainers)
	}
	if _, err := navigation.ParseMode(c.Navigation.Mode); err != nil {
		return err
	}
	if c.Generation.GrowthPasses < 0 {
		return fmt.Errorf("%w: %d", ErrGrowthPasses, c.Generation.GrowthPasses)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: %g", ErrInvalidVolume, c.Audio.Volume)
	}
	return nil
}

// NavMode returns the parsed navigation mode, falling back to sweep on invalid input
func (c Config) NavMode() navigation.Mode {
	m, _ := navigation.ParseMode(c.Navigation.Mode)
	return m
}
