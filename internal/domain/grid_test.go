package domain

import (
	"math/rand"
	"testing"
)

func TestNewTileGridNormalizesRaggedRows(t *testing.T) {
	// Second row is short: missing cells must become walls.
	data := [][]int{
		{0, 0, 0},
		{0},
		{0, 0, 0},
	}
	g := NewTileGrid(data, 16)

	if g.Width != 3 || g.Height != 3 {
		t.Fatalf("expected 3x3 grid, got %dx%d", g.Width, g.Height)
	}
	if g.IsWall(0, 1) {
		t.Error("cell (0,1) was provided as floor")
	}
	if !g.IsWall(1, 1) || !g.IsWall(2, 1) {
		t.Error("missing cells of the ragged row must be walls")
	}
}

func TestNewTileGridTreatsNonZeroAsWall(t *testing.T) {
	g := NewTileGrid([][]int{{0, 7, -1}}, 16)
	if g.IsWall(0, 0) {
		t.Error("zero must be floor")
	}
	if !g.IsWall(1, 0) || !g.IsWall(2, 0) {
		t.Error("any non-zero code must be a wall")
	}
}

func TestIsWallOutOfBoundsIsOpen(t *testing.T) {
	g := NewTileGrid([][]int{{1}}, 16)

	// Край карты для автотайлинга - пустота, не стена.
	for _, p := range []GridPoint{{-1, 0}, {0, -1}, {1, 0}, {0, 1}} {
		if g.IsWall(p.Col, p.Row) {
			t.Errorf("IsWall(%d,%d) out of bounds must be false", p.Col, p.Row)
		}
	}
	if g.IsWalkable(-1, 0) {
		t.Error("out of bounds must not be walkable")
	}
}

func TestBlocksSightOutOfBoundsBlocks(t *testing.T) {
	g := NewTileGrid([][]int{{0, 0}, {0, 0}}, 16)

	cases := []struct {
		x, y float64
	}{
		{-1, 8},
		{8, -1},
		{100, 8},
		{8, 100},
	}
	for _, c := range cases {
		if !g.BlocksSight(c.x, c.y) {
			t.Errorf("BlocksSight(%v,%v) outside the map must be true", c.x, c.y)
		}
	}

	if g.BlocksSight(8, 8) {
		t.Error("floor tile must not block sight")
	}
}

func TestBlocksSightNegativeFraction(t *testing.T) {
	// int(-0.5)/16 == 0: без явной проверки знака точка чуть левее карты
	// ошибочно попала бы в тайл (0,0).
	g := NewTileGrid([][]int{{0}}, 16)
	if !g.BlocksSight(-0.5, 8) {
		t.Error("point just left of the map must block sight")
	}
}

func TestTileCenterAndTileAt(t *testing.T) {
	g := NewTileGrid([][]int{{0, 0}, {0, 0}}, 16)

	c := g.TileCenter(GridPoint{Col: 1, Row: 1})
	if c.X != 24 || c.Y != 24 {
		t.Errorf("center of tile (1,1) = (%v,%v), want (24,24)", c.X, c.Y)
	}

	p := g.TileAt(c.X, c.Y)
	if p.Col != 1 || p.Row != 1 {
		t.Errorf("TileAt(center) = %+v, want {1 1}", p)
	}
}

func TestRandomWalkableTileAvoidsBorder(t *testing.T) {
	data := make([][]int, 5)
	for r := range data {
		data[r] = make([]int, 5)
	}
	g := NewTileGrid(data, 16)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		p, err := g.RandomWalkableTile(rng)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Col < 1 || p.Col > 3 || p.Row < 1 || p.Row > 3 {
			t.Fatalf("tile %+v is on the border", p)
		}
	}
}

func TestRandomWalkableTileGivesUpOnSolidMap(t *testing.T) {
	data := [][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}
	g := NewTileGrid(data, 16)

	_, err := g.RandomWalkableTile(rand.New(rand.NewSource(1)))
	if err == nil {
		t.Fatal("expected an error on a map without floor, got nil")
	}
}

func TestRectOverlaps(t *testing.T) {
	r1 := Rect{X: 0, Y: 0, W: 10, H: 10}
	r2 := Rect{X: 5, Y: 5, W: 10, H: 10}
	r3 := Rect{X: 20, Y: 20, W: 5, H: 5}
	touching := Rect{X: 10, Y: 0, W: 5, H: 5}

	if !r1.Overlaps(r2) {
		t.Error("rects should overlap")
	}
	if r1.Overlaps(r3) {
		t.Error("rects should NOT overlap")
	}
	// Касание ребрами - не пересечение (строгие неравенства).
	if r1.Overlaps(touching) {
		t.Error("edge contact is not an overlap")
	}
}

func TestPlayerTakeDamageInvulnWindow(t *testing.T) {
	p := &Player{Lives: 5}

	if !p.TakeDamage(1) {
		t.Fatal("first hit must land")
	}
	if p.Lives != 4 {
		t.Errorf("lives = %d, want 4", p.Lives)
	}
	if p.TakeDamage(1) {
		t.Error("hit during invulnerability window must be ignored")
	}
	if p.Lives != 4 {
		t.Errorf("lives = %d, want 4 after ignored hit", p.Lives)
	}

	p.InvulnTimer = 0
	if !p.TakeDamage(4) {
		t.Error("hit after the window must land")
	}
	if !p.Dead() {
		t.Error("player with 0 lives must be dead")
	}
}
