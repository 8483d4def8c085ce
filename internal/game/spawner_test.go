package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/dino-dash/internal/config"
)

func TestSpawnerAdvance(t *testing.T) {
	s := NewSpawner(config.Default().Spawner, rand.New(rand.NewSource(1)))

	if s.Advance(1500, 1500) {
		t.Error("timer equal to the interval should not fire")
	}
	if !s.Advance(1, 1500) {
		t.Error("timer past the interval should fire")
	}
	if s.Timer() != 0 {
		t.Errorf("timer after firing = %v, expected 0", s.Timer())
	}

	s.Advance(700, 1500)
	s.Reset()
	if s.Timer() != 0 {
		t.Errorf("timer after Reset = %v, expected 0", s.Timer())
	}
}

func TestSpawnerDistribution(t *testing.T) {
	cfg := config.Default().Spawner
	s := NewSpawner(cfg, rand.New(rand.NewSource(2024)))
	const groundY = 550
	const n = 20000

	var cactusGroups, clusters, birds int
	for range n {
		group := s.Spawn(1200, groundY)
		if len(group) == 0 {
			t.Fatal("spawn produced nothing")
		}

		if group[0].Kind == KindBird {
			birds++
			b := group[0]
			if len(group) != 1 {
				t.Fatalf("birds spawn alone, got %d", len(group))
			}
			if b.Y > groundY-200 || b.Y <= groundY-250 {
				t.Errorf("bird Y = %v outside (%v, %v]", b.Y, groundY-250, groundY-200)
			}
			if b.W != 50 || b.H != 50 {
				t.Errorf("bird size = %vx%v, expected 50x50", b.W, b.H)
			}
			if b.Phase < 0 || b.Phase >= 2*math.Pi {
				t.Errorf("bird phase %v outside [0, 2pi)", b.Phase)
			}
			continue
		}

		cactusGroups++
		if len(group) > 1 {
			clusters++
		}
		checkCactusGroup(t, group, groundY)
	}

	if ratio := float64(cactusGroups) / n; ratio < 0.58 || ratio > 0.62 {
		t.Errorf("cactus ratio = %.3f, expected about 0.6", ratio)
	}
	if ratio := float64(clusters) / float64(cactusGroups); ratio < 0.27 || ratio > 0.33 {
		t.Errorf("cluster ratio = %.3f, expected about 0.3", ratio)
	}
	if birds+cactusGroups != n {
		t.Errorf("accounted for %d spawns, expected %d", birds+cactusGroups, n)
	}
}

func checkCactusGroup(t *testing.T, group []Obstacle, groundY float64) {
	t.Helper()
	clustered := len(group) > 1
	if len(group) > 3 {
		t.Fatalf("cluster of %d, expected at most 3", len(group))
	}

	maxSize := 75.0
	if clustered {
		maxSize = 65
	}
	if group[0].X != 1200 {
		t.Errorf("first cactus X = %v, expected 1200", group[0].X)
	}

	for i, c := range group {
		if c.Kind != KindCactus || c.Clustered != clustered {
			t.Errorf("member %d: kind %v clustered %v", i, c.Kind, c.Clustered)
		}
		if c.W != c.H || c.W < 50 || c.W >= maxSize {
			t.Errorf("member %d size %vx%v outside [50, %v)", i, c.W, c.H, maxSize)
		}
		if math.Abs(c.Y+c.H-groundY) > 1e-9 {
			t.Errorf("member %d bottom = %v, expected ground %v", i, c.Y+c.H, groundY)
		}
		if i > 0 {
			prev := group[i-1]
			if gap := c.X - prev.Rect().Right(); math.Abs(gap-10) > 1e-9 {
				t.Errorf("gap between members %d and %d = %v, expected 10", i-1, i, gap)
			}
		}
	}
}

func TestBirdBobbing(t *testing.T) {
	bob := bobbing{amplitude: 1.5, period: 200}
	o := Obstacle{Kind: KindBird, X: 500, Y: 300, Phase: math.Pi / 2}

	o.advance(8, 1, 0, bob)
	if o.X != 492 {
		t.Errorf("X = %v, expected 492", o.X)
	}
	if math.Abs(o.Y-301.5) > 1e-9 {
		t.Errorf("Y = %v, expected 301.5 at the top of the sine", o.Y)
	}

	c := Obstacle{Kind: KindCactus, X: 500, Y: 300}
	c.advance(8, 1, 0, bob)
	if c.Y != 300 {
		t.Error("cacti should not bob")
	}
}
