package registry

import (
	"testing"

	"github.com/vovakirdan/dino-dash/internal/config"
)

func TestRegisterAndGet(t *testing.T) {
	Register(Mode{
		ID:    "test-sprint",
		Title: "Sprint",
		Apply: func(cfg *config.Config) { cfg.Scoring.Ceiling = 500 },
	})

	if !Exists("test-sprint") {
		t.Fatal("registered mode should exist")
	}
	m, err := Get("test-sprint")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}

	base := config.Default()
	cfg := m.Configure(base)
	if cfg.Scoring.Ceiling != 500 {
		t.Errorf("Ceiling = %d, expected 500", cfg.Scoring.Ceiling)
	}
	if base.Scoring.Ceiling != 2000 {
		t.Error("Configure should not modify the base config")
	}

	if _, err := Get("nope"); err == nil {
		t.Error("unknown mode should be an error")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(Mode{ID: "test-dup"})

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(Mode{ID: "test-dup"})
}

func TestListSorted(t *testing.T) {
	Register(Mode{ID: "test-b"})
	Register(Mode{ID: "test-a"})

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestConfigureNilApply(t *testing.T) {
	m := Mode{ID: "plain"}
	if got := m.Configure(config.Default()); got != config.Default() {
		t.Error("nil Apply should return the base config unchanged")
	}
}
