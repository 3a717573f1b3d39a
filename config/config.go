package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/invaders/parameter"
)

// DefaultPath is the optional override file read from the working directory
const DefaultPath = "invaders.yaml"

// Config is the complete runtime configuration
type Config struct {
	Tuning Tuning `yaml:"tuning"`
	Log    Log    `yaml:"log"`
	Audio  Audio  `yaml:"audio"`
	Render Render `yaml:"render"`
	Debug  Debug  `yaml:"debug"`
}

// Tuning holds every gameplay constant the design leaves open
type Tuning struct {
	// Seed for the simulation RNG; 0 lets the launcher pick one
	Seed  uint64 `yaml:"seed"`
	Lives int    `yaml:"lives"`

	CannonSpeed float64 `yaml:"cannon_speed"`
	LaserSpeed  float64 `yaml:"laser_speed"`
	BombSpeed   float64 `yaml:"bomb_speed"`
	UfoSpeed    float64 `yaml:"ufo_speed"`

	EnemyBaseSpeed      float64 `yaml:"enemy_base_speed"`
	EnemySpeedPerLevel  float64 `yaml:"enemy_speed_per_level"`
	EnemySpeedPerBounce float64 `yaml:"enemy_speed_per_bounce"`

	BombDropThreshold float64       `yaml:"bomb_drop_threshold"`
	UfoSpawnPeriod    time.Duration `yaml:"ufo_spawn_period"`
	UfoBounties       []int         `yaml:"ufo_bounties"`

	DifficultyBase     int           `yaml:"difficulty_base"`
	DifficultyPerKill  int           `yaml:"difficulty_per_kill"`
	DifficultyPerLevel int           `yaml:"difficulty_per_level"`
	DifficultyFloor    int           `yaml:"difficulty_floor"`
	DifficultyUnit     time.Duration `yaml:"difficulty_unit"`

	MaxFixedStepsPerFrame int `yaml:"max_fixed_steps_per_frame"`
}

// Log configures the zap file sink
type Log struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level"`
	// File is the log path; empty disables logging
	File string `yaml:"file"`
}

// Audio configures the beep backend
type Audio struct {
	Enabled  bool    `yaml:"enabled"`
	AssetDir string  `yaml:"asset_dir"`
	Volume   float64 `yaml:"volume"`
}

// Render configures the terminal frontend
type Render struct {
	FrameInterval time.Duration `yaml:"frame_interval"`
	KeyHoldWindow time.Duration `yaml:"key_hold_window"`
}

// Debug toggles development checks
type Debug struct {
	// StrictInvariants panics on invariant breach instead of self-healing
	StrictInvariants bool `yaml:"strict_invariants"`
}

// Default returns the tuned build configuration
func Default() Config {
	bounties := make([]int, len(parameter.UfoBounties))
	copy(bounties, parameter.UfoBounties)

	return Config{
		Tuning: Tuning{
			Lives:                 parameter.PlayerLives,
			CannonSpeed:           parameter.CannonSpeed,
			LaserSpeed:            parameter.LaserSpeed,
			BombSpeed:             parameter.BombSpeed,
			UfoSpeed:              parameter.UfoSpeed,
			EnemyBaseSpeed:        parameter.EnemyBaseSpeed,
			EnemySpeedPerLevel:    parameter.EnemySpeedPerLevel,
			EnemySpeedPerBounce:   parameter.EnemySpeedPerBounce,
			BombDropThreshold:     parameter.BombDropThreshold,
			UfoSpawnPeriod:        parameter.UfoSpawnPeriod,
			UfoBounties:           bounties,
			DifficultyBase:        parameter.DifficultyBase,
			DifficultyPerKill:     parameter.DifficultyPerKill,
			DifficultyPerLevel:    parameter.DifficultyPerLevel,
			DifficultyFloor:       parameter.DifficultyFloor,
			DifficultyUnit:        parameter.DifficultyUnit,
			MaxFixedStepsPerFrame: parameter.MaxFixedStepsPerFrame,
		},
		Log: Log{
			Level: "info",
		},
		Audio: Audio{
			Enabled:  true,
			AssetDir: "asset",
			Volume:   0,
		},
		Render: Render{
			FrameInterval: parameter.FrameUpdateInterval,
			KeyHoldWindow: parameter.KeyHoldWindow,
		},
	}
}

// Load decodes YAML over the defaults and validates the result
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads a YAML file; a missing file yields the defaults
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Load(f)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
