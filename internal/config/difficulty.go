package config

import "math"

// Difficulty derives game speed and spawn cadence from the score.
type Difficulty struct {
	physics Physics
	spawner Spawner
	enabled bool
}

// NewDifficulty creates a difficulty curve for cfg.
func NewDifficulty(cfg Config) *Difficulty {
	return &Difficulty{
		physics: cfg.Physics,
		spawner: cfg.Spawner,
		enabled: cfg.Difficulty.Enabled,
	}
}

// IsEnabled returns whether speed and cadence follow the score.
func (d *Difficulty) IsEnabled() bool {
	return d.enabled
}

// Speed returns world units per frame: base + score*step, capped.
func (d *Difficulty) Speed(score int) float64 {
	if !d.enabled {
		return d.physics.BaseSpeed
	}
	speed := d.physics.BaseSpeed + float64(max(score, 0))*d.physics.SpeedPerPoint
	return math.Min(speed, d.physics.SpeedCap)
}

// SpawnInterval returns the milliseconds between spawns: base - score*step, floored.
func (d *Difficulty) SpawnInterval(score int) float64 {
	if !d.enabled {
		return d.spawner.BaseInterval
	}
	interval := d.spawner.BaseInterval - float64(max(score, 0))*d.spawner.IntervalPerPoint
	return math.Max(interval, d.spawner.MinInterval)
}
