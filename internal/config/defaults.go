package config

import (
	_ "embed"
)

//go:embed defaults/dash.yaml
var defaultDashYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Physics: Physics{
			Gravity:        0.6,
			JumpImpulse:    -15,
			FastFall:       2,
			BaseSpeed:      8,
			SpeedPerPoint:  0.02,
			SpeedCap:       15,
			FrameMs:        1000.0 / 60.0,
			MaxFrameFactor: 4,
			MaxStepMs:      20000,
		},
		Player: Player{
			X:            50,
			StandWidth:   100,
			StandHeight:  100,
			DuckWidth:    120,
			DuckHeight:   60,
			GroundOffset: 50,
		},
		Spawner: Spawner{
			BaseInterval:     1500,
			MinInterval:      1000,
			IntervalPerPoint: 5,
			CactusChance:     0.6,
			ClusterChance:    0.3,
			ClusterMin:       2,
			ClusterMax:       3,
			ClusterGap:       10,
			BaseSize:         50,
			SoloScaleMax:     1.5,
			ClusterScaleMax:  1.3,
			BirdSize:         50,
			BirdAltitude:     200,
			BirdBand:         50,
			BobAmplitude:     1.5,
			BobPeriod:        200,
		},
		Scoring: Scoring{
			MsPerPoint:    100,
			Ceiling:       2000,
			MilestoneStep: 100,
		},
		Phases: Phases{
			DangerStart: 1000,
			DangerEnd:   1500,
			AboutToEnd:  1400,
		},
		Particles: Particles{
			MilestoneBurst: 30,
			CollisionBurst: 80,
			LifeMin:        50,
			LifeMax:        80,
			Speed:          4,
			FadeLife:       80,
			Radius:         3,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
		},
	}
}
