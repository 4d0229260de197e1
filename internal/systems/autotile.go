package systems

import (
	"github.com/23f2005121/KNOSSOS/internal/domain"
)

// Биты маски соседства стен.
const (
	maskNorth = 1
	maskEast  = 2
	maskSouth = 4
	maskWest  = 8
)

// narrowMasks перечисляет маски "слабо связанных" стен, которым положен
// узкий хитбокс: через такие углы можно протиснуться. Набор фиксированный,
// подобран под тайлсет; все остальные маски получают полный тайл.
var narrowMasks = [16]bool{
	0: true, 1: true, 2: true, 3: true,
	4: true, 5: true, 6: true, 7: true,
	8: true, 9: true,
	12: true, 13: true,
}

// WallBitmask считает 4-битную маску соседства для стены:
// N=1, E=2, S=4, W=8, бит взведен если сосед - тоже стена.
// Сосед за границей карты считается открытым (см. TileGrid.IsWall).
func WallBitmask(g *domain.TileGrid, col, row int) int {
	mask := 0
	if g.IsWall(col, row+1) {
		mask += maskNorth
	}
	if g.IsWall(col+1, row) {
		mask += maskEast
	}
	if g.IsWall(col, row-1) {
		mask += maskSouth
	}
	if g.IsWall(col-1, row) {
		mask += maskWest
	}
	return mask
}

// WallHitbox возвращает коллизионный прямоугольник стены.
// Для узких масок - центрированная полоса шириной NarrowWallWidth,
// для остальных - полный тайл.
func WallHitbox(g *domain.TileGrid, col, row int) domain.Rect {
	ts := float64(g.TileSize)
	tileX := float64(col) * ts
	tileY := float64(row) * ts

	mask := WallBitmask(g, col, row)
	if narrowMasks[mask] {
		inset := (ts - domain.NarrowWallWidth) / 2
		return domain.Rect{X: tileX + inset, Y: tileY, W: domain.NarrowWallWidth, H: ts}
	}
	return domain.Rect{X: tileX, Y: tileY, W: ts, H: ts}
}
