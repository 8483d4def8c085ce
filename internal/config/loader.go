package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the user and local directories.
const FileName = "dash.yaml"

// Load reads the configuration.
// Search order: customPath -> ~/.dash/configs/dash.yaml -> ./configs/dash.yaml -> embedded default.
// Files are layered over the defaults, so a partial file only overrides what it names.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Default(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// User and local files are optional; a broken one falls through.
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultDashYAML)
	if err != nil {
		return Default(), nil
	}
	return cfg, nil
}

func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dash", "configs", filename)
}

// ApplyPreset adjusts speed and spawn cadence for a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Physics.BaseSpeed = 6
		cfg.Physics.SpeedCap = 12
		cfg.Spawner.BaseInterval = 1800
		cfg.Spawner.MinInterval = 1200
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Physics.BaseSpeed = 10
		cfg.Physics.SpeedCap = 18
		cfg.Spawner.BaseInterval = 1200
		cfg.Spawner.MinInterval = 800
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
	}
}

// Validate rejects values the simulation cannot run with.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	p := c.Physics
	check(p.Gravity > 0, "physics.gravity must be positive, got %v", p.Gravity)
	check(p.JumpImpulse < 0, "physics.jump_impulse must be negative (upward), got %v", p.JumpImpulse)
	check(p.FastFall >= 1, "physics.fast_fall must be at least 1, got %v", p.FastFall)
	check(p.BaseSpeed > 0, "physics.base_speed must be positive, got %v", p.BaseSpeed)
	check(p.SpeedPerPoint >= 0, "physics.speed_per_point must not be negative, got %v", p.SpeedPerPoint)
	check(p.SpeedCap >= p.BaseSpeed, "physics.speed_cap (%v) must be at least base_speed (%v)", p.SpeedCap, p.BaseSpeed)
	check(p.FrameMs > 0, "physics.frame_ms must be positive, got %v", p.FrameMs)
	check(p.MaxFrameFactor > 0, "physics.max_frame_factor must be positive, got %v", p.MaxFrameFactor)
	check(p.MaxStepMs >= p.FrameMs, "physics.max_step_ms (%v) must be at least frame_ms (%v)", p.MaxStepMs, p.FrameMs)

	pl := c.Player
	check(pl.StandWidth > 0 && pl.StandHeight > 0, "player stand hitbox must be positive")
	check(pl.DuckWidth > 0 && pl.DuckHeight > 0, "player duck hitbox must be positive")
	check(pl.GroundOffset >= 0, "player.ground_offset must not be negative, got %v", pl.GroundOffset)

	s := c.Spawner
	check(s.MinInterval > 0, "spawner.min_interval must be positive, got %v", s.MinInterval)
	check(s.BaseInterval >= s.MinInterval, "spawner.base_interval (%v) must be at least min_interval (%v)", s.BaseInterval, s.MinInterval)
	check(s.IntervalPerPoint >= 0, "spawner.interval_per_point must not be negative, got %v", s.IntervalPerPoint)
	check(s.CactusChance >= 0 && s.CactusChance <= 1, "spawner.cactus_chance must be in [0, 1], got %v", s.CactusChance)
	check(s.ClusterChance >= 0 && s.ClusterChance <= 1, "spawner.cluster_chance must be in [0, 1], got %v", s.ClusterChance)
	check(s.ClusterMin >= 1 && s.ClusterMax >= s.ClusterMin, "spawner cluster size range [%d, %d] is invalid", s.ClusterMin, s.ClusterMax)
	check(s.BaseSize > 0 && s.BirdSize > 0, "spawner sizes must be positive")
	check(s.SoloScaleMax >= 1 && s.ClusterScaleMax >= 1, "spawner scale maxima must be at least 1")
	check(s.BobPeriod > 0, "spawner.bob_period must be positive, got %v", s.BobPeriod)

	sc := c.Scoring
	check(sc.MsPerPoint > 0, "scoring.ms_per_point must be positive, got %v", sc.MsPerPoint)
	check(sc.Ceiling >= 0, "scoring.ceiling must not be negative, got %d", sc.Ceiling)
	check(sc.MilestoneStep > 0, "scoring.milestone_step must be positive, got %d", sc.MilestoneStep)

	ph := c.Phases
	check(ph.DangerStart < ph.DangerEnd, "phases.danger_start (%d) must be below danger_end (%d)", ph.DangerStart, ph.DangerEnd)

	pa := c.Particles
	check(pa.MilestoneBurst >= 0 && pa.CollisionBurst >= 0, "particle bursts must not be negative")
	check(pa.LifeMin > 0 && pa.LifeMax >= pa.LifeMin, "particle life range [%v, %v] is invalid", pa.LifeMin, pa.LifeMax)
	check(pa.FadeLife > 0, "particles.fade_life must be positive, got %v", pa.FadeLife)

	return errors.Join(errs...)
}
