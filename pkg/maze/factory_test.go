package maze

import (
	"math/rand"
	"testing"

	"github.com/23f2005121/KNOSSOS/internal/domain"
)

func openTestGrid(size int) *domain.TileGrid {
	data := make([][]int, size)
	for r := range data {
		data[r] = make([]int, size)
	}
	return domain.NewTileGrid(data, 16)
}

func TestSpawnAgentsCountAndComposition(t *testing.T) {
	g := openTestGrid(20)
	rng := rand.New(rand.NewSource(1))

	agents, err := SpawnAgents(g, rng, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Уровень 1: 5 + 2 обычных плюс ровно один фантом.
	if len(agents) != 8 {
		t.Fatalf("agent count = %d, want 8", len(agents))
	}

	phantoms := 0
	for _, a := range agents {
		if a.Kind == domain.KindPhantom {
			phantoms++
		}
		if a.State != domain.StatePatrol {
			t.Errorf("agent %s starts in %v, want PATROL", a.ID, a.State)
		}
		if !g.IsWalkable(g.TileAt(a.Center().X, a.Center().Y).Col, g.TileAt(a.Center().X, a.Center().Y).Row) {
			t.Errorf("agent %s spawned inside a wall", a.ID)
		}
	}
	if phantoms != 1 {
		t.Errorf("phantoms = %d, want exactly 1", phantoms)
	}
}

func TestSpawnAgentsCapsCount(t *testing.T) {
	g := openTestGrid(20)
	agents, err := SpawnAgents(g, rand.New(rand.NewSource(2)), 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 5 + 50*2 упирается в потолок 25 (плюс фантом).
	if len(agents) != 26 {
		t.Errorf("agent count = %d, want capped 26", len(agents))
	}
}

func TestSpawnAgentsHealthBonusAfterLevelTen(t *testing.T) {
	g := openTestGrid(20)
	agents, err := SpawnAgents(g, rand.New(rand.NewSource(3)), 13)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, a := range agents {
		if a.Kind == domain.KindPhantom {
			continue // фантому бонус не положен
		}
		// Базовое здоровье любой разновидности - 2; уровень 13 дает +3.
		if a.Health != 5 {
			t.Errorf("agent %s health = %d, want 5", a.ID, a.Health)
		}
	}
}

func TestSpawnAgentsFailsOnSolidGrid(t *testing.T) {
	data := make([][]int, 10)
	for r := range data {
		data[r] = make([]int, 10)
		for c := range data[r] {
			data[r][c] = 1
		}
	}
	g := domain.NewTileGrid(data, 16)

	if _, err := SpawnAgents(g, rand.New(rand.NewSource(4)), 1); err == nil {
		t.Fatal("expected an error on a map without floor")
	}
}

func TestNewPlayerDefaults(t *testing.T) {
	p := NewPlayer("hero_1", domain.Vec2{X: 10, Y: 20})

	if p.Lives != 5 || p.Speed != 50 {
		t.Errorf("player defaults off: lives=%d speed=%v", p.Lives, p.Speed)
	}
	if p.Pos != (domain.Vec2{X: 10, Y: 20}) {
		t.Errorf("pos = %+v", p.Pos)
	}
}
