package maze

import (
	"testing"

	"github.com/23f2005121/KNOSSOS/internal/domain"
)

func TestGenerateDimensions(t *testing.T) {
	g := NewGenerator(1).Generate(16)

	if g.Width != Size || g.Height != Size {
		t.Fatalf("grid %dx%d, want %dx%d", g.Width, g.Height, Size, Size)
	}
	if g.TileSize != 16 {
		t.Errorf("tile size = %d, want 16", g.TileSize)
	}

	// Границы: два ряда/колонки с одной стороны, один с другой - всегда стены.
	for i := 0; i < Size; i++ {
		for _, p := range []domain.GridPoint{
			{Col: i, Row: 0}, {Col: i, Row: 1}, {Col: i, Row: Size - 1},
			{Col: 0, Row: i}, {Col: 1, Row: i}, {Col: Size - 1, Row: i},
		} {
			if !g.IsWall(p.Col, p.Row) {
				t.Fatalf("border tile %+v is not a wall", p)
			}
		}
	}
}

func TestGenerateIsPerfectMaze(t *testing.T) {
	g := NewGenerator(7).Generate(16)

	// Идеальный лабиринт - остовное дерево логических комнат:
	// 100 комнат по 4 клетки пола плюс 99 проходов по 2 клетки.
	floor := 0
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if !g.IsWall(col, row) {
				floor++
			}
		}
	}

	want := LogicalSize*LogicalSize*4 + (LogicalSize*LogicalSize-1)*2
	if floor != want {
		t.Errorf("floor cells = %d, want %d (spanning tree)", floor, want)
	}
}

func TestGenerateFullyConnected(t *testing.T) {
	g := NewGenerator(99).Generate(16)

	// BFS от первой клетки пола должен накрыть весь пол.
	var start domain.GridPoint
	total := 0
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if !g.IsWall(col, row) {
				if total == 0 {
					start = domain.GridPoint{Col: col, Row: row}
				}
				total++
			}
		}
	}
	if total == 0 {
		t.Fatal("maze has no floor at all")
	}

	visited := map[domain.GridPoint]bool{start: true}
	queue := []domain.GridPoint{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}} {
			n := domain.GridPoint{Col: p.Col + d[0], Row: p.Row + d[1]}
			if g.IsWalkable(n.Col, n.Row) && !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}

	if len(visited) != total {
		t.Errorf("reachable floor = %d of %d, maze is disconnected", len(visited), total)
	}
}

func TestGenerateDeterministicBySeed(t *testing.T) {
	a := NewGenerator(12345).Generate(16)
	b := NewGenerator(12345).Generate(16)
	c := NewGenerator(54321).Generate(16)

	same := true
	diff := false
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if a.Cells[row][col] != b.Cells[row][col] {
				same = false
			}
			if a.Cells[row][col] != c.Cells[row][col] {
				diff = true
			}
		}
	}

	if !same {
		t.Error("identical seeds must produce identical mazes")
	}
	if !diff {
		t.Error("different seeds produced the same maze (suspicious)")
	}
}
