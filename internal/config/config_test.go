package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg := Config{}
	if err := yaml.Unmarshal(defaultDashYAML, &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults drifted from Default():\n got %+v\nwant %+v", cfg, Default())
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dash.yaml")
	data := "physics:\n  gravity: 0.8\nscoring:\n  ceiling: 0\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Physics.Gravity != 0.8 {
		t.Errorf("Gravity = %v, expected 0.8", cfg.Physics.Gravity)
	}
	if cfg.Scoring.Ceiling != 0 {
		t.Errorf("Ceiling = %d, expected 0", cfg.Scoring.Ceiling)
	}
	if cfg.Physics.JumpImpulse != -15 {
		t.Errorf("JumpImpulse = %v, expected default -15", cfg.Physics.JumpImpulse)
	}
	if cfg.Spawner.ClusterGap != 10 {
		t.Errorf("ClusterGap = %v, expected default 10", cfg.Spawner.ClusterGap)
	}
}

func TestLoadRejectsBadFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"malformed yaml", "physics: [", "failed to parse"},
		{"positive jump", "physics:\n  jump_impulse: 5\n", "jump_impulse"},
		{"step cap below a frame", "physics:\n  max_step_ms: 5\n", "max_step_ms"},
		{"inverted danger window", "phases:\n  danger_start: 1500\n  danger_end: 1000\n", "danger_start"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			cfg, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Load() error = %v, expected it to mention %q", err, tc.wantErr)
			}
			if cfg != Default() {
				t.Error("failed Load() should return the defaults")
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		enabled  bool
		base     float64
		interval float64
	}{
		{DifficultyEasy, true, 6, 1800},
		{DifficultyNormal, true, 8, 1500},
		{DifficultyHard, true, 10, 1200},
		{DifficultyFixed, false, 8, 1500},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := Default()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Physics.BaseSpeed != tc.base {
				t.Errorf("BaseSpeed = %v, expected %v", cfg.Physics.BaseSpeed, tc.base)
			}
			if cfg.Spawner.BaseInterval != tc.interval {
				t.Errorf("BaseInterval = %v, expected %v", cfg.Spawner.BaseInterval, tc.interval)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, ok)
	}
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset should not parse")
	}
}

func TestDifficultySpeed(t *testing.T) {
	d := NewDifficulty(Default())

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 8},
		{100, 10},
		{350, 15},
		{1000, 15},
		{-5, 8},
	}
	for _, tc := range tests {
		if got := d.Speed(tc.score); got != tc.expected {
			t.Errorf("Speed(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}

	prev := 0.0
	for score := 0; score <= 2000; score++ {
		s := d.Speed(score)
		if s < prev {
			t.Fatalf("Speed decreased at score %d: %v < %v", score, s, prev)
		}
		if s > 15 {
			t.Fatalf("Speed(%d) = %v exceeds cap", score, s)
		}
		prev = s
	}
}

func TestDifficultySpawnInterval(t *testing.T) {
	d := NewDifficulty(Default())

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 1500},
		{50, 1250},
		{100, 1000},
		{500, 1000},
	}
	for _, tc := range tests {
		if got := d.SpawnInterval(tc.score); got != tc.expected {
			t.Errorf("SpawnInterval(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyFixed(t *testing.T) {
	cfg := Default()
	ApplyPreset(&cfg, DifficultyFixed)
	d := NewDifficulty(cfg)

	if d.IsEnabled() {
		t.Error("fixed preset should disable progression")
	}
	if got := d.Speed(1000); got != 8 {
		t.Errorf("Speed(1000) = %v, expected 8", got)
	}
	if got := d.SpawnInterval(1000); got != 1500 {
		t.Errorf("SpawnInterval(1000) = %v, expected 1500", got)
	}
}
