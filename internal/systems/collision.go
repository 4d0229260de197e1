package systems

import (
	"math"

	"github.com/23f2005121/KNOSSOS/internal/domain"
)

// CollidesWithWall проверяет пересечение бокса с хитбоксами стен.
// Проверяются только тайлы, которых бокс может касаться; с дальнего края
// срезается эпсилон, чтобы не цеплять тайл, которого бокс лишь касается.
func CollidesWithWall(g *domain.TileGrid, box domain.Rect) bool {
	ts := float64(g.TileSize)

	minCol := int(math.Floor(box.X / ts))
	maxCol := int(math.Floor((box.X + box.W - domain.CollisionEpsilon) / ts))
	minRow := int(math.Floor(box.Y / ts))
	maxRow := int(math.Floor((box.Y + box.H - domain.CollisionEpsilon) / ts))

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if !g.InBounds(col, row) {
				continue
			}
			if !g.IsWall(col, row) {
				continue
			}
			if box.Overlaps(WallHitbox(g, col, row)) {
				return true
			}
		}
	}
	return false
}

// MoveBox двигает бокс на (dx, dy), разрешая коллизии по осям независимо.
// Каждая ось проходится разверткой, поэтому большой сдвиг не проскакивает
// тонкую стену. При упоре откатываемся и доводим бокс малыми шагами вплотную:
// получается скольжение вдоль стен вместо жесткой остановки.
// Возвращаемый бокс никогда не пересекает стену; провал невозможен -
// в худшем случае позиция не изменится.
func MoveBox(g *domain.TileGrid, box domain.Rect, dx, dy float64) domain.Rect {
	box.X = sweepAxis(g, box, dx, true)
	box.Y = sweepAxis(g, box, dy, false)
	return box
}

// sweepAxis продвигает бокс вдоль одной оси к цели кусками не больше полутайла.
// Возвращает итоговую координату по оси.
func sweepAxis(g *domain.TileGrid, box domain.Rect, delta float64, horizontal bool) float64 {
	pos := box.Y
	if horizontal {
		pos = box.X
	}
	if delta == 0 {
		return pos
	}

	goal := pos + delta
	maxStep := float64(g.TileSize) / 2
	dir := math.Copysign(1, delta)

	place := func(v float64) domain.Rect {
		trial := box
		if horizontal {
			trial.X = v
		} else {
			trial.Y = v
		}
		return trial
	}

	for math.Abs(goal-pos) > 1e-9 {
		step := dir * math.Min(maxStep, math.Abs(goal-pos))
		next := pos + step
		if CollidesWithWall(g, place(next)) {
			// Уперлись: доводка до стены шагами SnapStep.
			snap := dir * domain.SnapStep
			for math.Abs(next-pos) > domain.SnapSlack {
				if CollidesWithWall(g, place(pos + snap)) {
					break
				}
				pos += snap
			}
			return pos
		}
		pos = next
	}
	return pos
}
