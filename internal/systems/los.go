package systems

import (
	"math"

	"github.com/23f2005121/KNOSSOS/internal/domain"
)

// HasLineOfSight проверяет прямую видимость между двумя мировыми точками.
// Отрезок сэмплируется с фиксированным шагом; первая же точка на блокирующем
// тайле обрывает проверку. Выход за границы карты блокирует взгляд
// (см. TileGrid.BlocksSight). Нулевое расстояние тривиально видимо.
func HasLineOfSight(g *domain.TileGrid, fromX, fromY, toX, toY float64) bool {
	dx := toX - fromX
	dy := toY - fromY
	distance := math.Hypot(dx, dy)

	if distance == 0 {
		return true
	}

	// Концы проверяем явно: точка за границей или в стене не видна и не видит.
	if g.BlocksSight(fromX, fromY) || g.BlocksSight(toX, toY) {
		return false
	}

	steps := int(distance / domain.LOSSampleStep)
	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		if g.BlocksSight(fromX+dx*t, fromY+dy*t) {
			return false
		}
	}
	return true
}
