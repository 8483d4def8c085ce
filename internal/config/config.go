// Package config provides YAML-based tuning for the runner and the
// difficulty curve derived from it.
package config

// Config contains every tunable of a run.
type Config struct {
	Physics    Physics          `yaml:"physics"`
	Player     Player           `yaml:"player"`
	Spawner    Spawner          `yaml:"spawner"`
	Scoring    Scoring          `yaml:"scoring"`
	Phases     Phases           `yaml:"phases"`
	Particles  Particles        `yaml:"particles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Physics defines motion parameters, expressed per 60 Hz frame.
type Physics struct {
	Gravity        float64 `yaml:"gravity"`
	JumpImpulse    float64 `yaml:"jump_impulse"`
	FastFall       float64 `yaml:"fast_fall"` // gravity multiplier while ducking in the air
	BaseSpeed      float64 `yaml:"base_speed"`
	SpeedPerPoint  float64 `yaml:"speed_per_point"`
	SpeedCap       float64 `yaml:"speed_cap"`
	FrameMs        float64 `yaml:"frame_ms"`
	MaxFrameFactor float64 `yaml:"max_frame_factor"`
	MaxStepMs      float64 `yaml:"max_step_ms"` // longest dt a single step accepts
}

// Player defines the runner's placement and hitboxes.
type Player struct {
	X            float64 `yaml:"x"`
	StandWidth   float64 `yaml:"stand_width"`
	StandHeight  float64 `yaml:"stand_height"`
	DuckWidth    float64 `yaml:"duck_width"`
	DuckHeight   float64 `yaml:"duck_height"`
	GroundOffset float64 `yaml:"ground_offset"` // ground line distance from the bottom
}

// Spawner defines obstacle cadence and shapes.
type Spawner struct {
	BaseInterval     float64 `yaml:"base_interval"` // ms
	MinInterval      float64 `yaml:"min_interval"`
	IntervalPerPoint float64 `yaml:"interval_per_point"`
	CactusChance     float64 `yaml:"cactus_chance"`
	ClusterChance    float64 `yaml:"cluster_chance"`
	ClusterMin       int     `yaml:"cluster_min"`
	ClusterMax       int     `yaml:"cluster_max"`
	ClusterGap       float64 `yaml:"cluster_gap"`
	BaseSize         float64 `yaml:"base_size"`
	SoloScaleMax     float64 `yaml:"solo_scale_max"`
	ClusterScaleMax  float64 `yaml:"cluster_scale_max"`
	BirdSize         float64 `yaml:"bird_size"`
	BirdAltitude     float64 `yaml:"bird_altitude"` // above the ground line
	BirdBand         float64 `yaml:"bird_band"`
	BobAmplitude     float64 `yaml:"bob_amplitude"`
	BobPeriod        float64 `yaml:"bob_period"` // ms per radian
}

// Scoring defines how points accrue.
type Scoring struct {
	MsPerPoint    float64 `yaml:"ms_per_point"`
	Ceiling       int     `yaml:"ceiling"` // 0 disables the win condition
	MilestoneStep int     `yaml:"milestone_step"`
}

// Phases bounds the danger window by score.
type Phases struct {
	DangerStart int `yaml:"danger_start"`
	DangerEnd   int `yaml:"danger_end"`
	AboutToEnd  int `yaml:"about_to_end"`
}

// Particles defines burst sizes and particle lifetime.
type Particles struct {
	MilestoneBurst int     `yaml:"milestone_burst"`
	CollisionBurst int     `yaml:"collision_burst"`
	LifeMin        float64 `yaml:"life_min"`
	LifeMax        float64 `yaml:"life_max"`
	Speed          float64 `yaml:"speed"` // velocity components are uniform in [-speed/2, speed/2)
	FadeLife       float64 `yaml:"fade_life"`
	Radius         float64 `yaml:"radius"`
}

// DifficultyConfig toggles score-driven speed and spawn cadence.
type DifficultyConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the known presets in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	if name == "" {
		return DifficultyNormal, true
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, true
		}
	}
	return "", false
}
