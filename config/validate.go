package config

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/invaders/parameter"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Validate rejects values the simulation cannot run with
func (c Config) Validate() error {
	t := c.Tuning
	var errs []error

	if t.Lives < 1 || t.Lives > parameter.MaxLives {
		errs = append(errs, fmt.Errorf("lives %d outside [1,%d]", t.Lives, parameter.MaxLives))
	}
	positive := map[string]float64{
		"cannon_speed":     t.CannonSpeed,
		"laser_speed":      t.LaserSpeed,
		"bomb_speed":       t.BombSpeed,
		"ufo_speed":        t.UfoSpeed,
		"enemy_base_speed": t.EnemyBaseSpeed,
	}
	for _, name := range []string{"cannon_speed", "laser_speed", "bomb_speed", "ufo_speed", "enemy_base_speed"} {
		if positive[name] <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive", name))
		}
	}
	if t.EnemySpeedPerLevel < 0 || t.EnemySpeedPerBounce < 0 {
		errs = append(errs, errors.New("enemy speed increments must not be negative"))
	}
	if t.BombDropThreshold < 0 || t.BombDropThreshold > 100 {
		errs = append(errs, fmt.Errorf("bomb_drop_threshold %.2f outside [0,100]", t.BombDropThreshold))
	}
	if t.UfoSpawnPeriod <= 0 {
		errs = append(errs, errors.New("ufo_spawn_period must be positive"))
	}
	if len(t.UfoBounties) == 0 {
		errs = append(errs, errors.New("ufo_bounties must not be empty"))
	}
	for _, b := range t.UfoBounties {
		if b < 0 {
			errs = append(errs, fmt.Errorf("ufo bounty %d is negative", b))
		}
	}
	if t.DifficultyFloor < 1 {
		errs = append(errs, errors.New("difficulty_floor must be at least 1"))
	}
	if t.DifficultyBase < t.DifficultyFloor {
		errs = append(errs, fmt.Errorf("difficulty_base %d below floor %d", t.DifficultyBase, t.DifficultyFloor))
	}
	if t.DifficultyPerKill < 0 || t.DifficultyPerLevel < 0 {
		errs = append(errs, errors.New("difficulty steps must not be negative"))
	}
	if t.DifficultyUnit <= 0 {
		errs = append(errs, errors.New("difficulty_unit must be positive"))
	}
	if t.MaxFixedStepsPerFrame < 1 {
		errs = append(errs, errors.New("max_fixed_steps_per_frame must be at least 1"))
	}
	if c.Render.FrameInterval <= 0 {
		errs = append(errs, errors.New("render.frame_interval must be positive"))
	}
	if c.Audio.Volume < -10 || c.Audio.Volume > 2 {
		errs = append(errs, fmt.Errorf("audio.volume %.2f outside [-10,2]", c.Audio.Volume))
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q unknown", c.Log.Level))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}
