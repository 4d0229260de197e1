package domain

import (
	"fmt"
	"math/rand"
)

// TileCode - код тайла в сетке.
type TileCode uint8

const (
	TilePath TileCode = 0 // проходимый пол
	TileWall TileCode = 1 // непроходимая стена
)

// GridPoint - координата тайла (колонка, ряд).
type GridPoint struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// TileGrid - прямоугольная сетка тайлов, единственный источник правды о геометрии мира.
// На время кадра считается неизменяемой: все системы только читают ее.
type TileGrid struct {
	Width    int
	Height   int
	TileSize int
	Cells    [][]TileCode
}

// NewTileGrid строит сетку из данных поставщика уровней (0 = пол, 1 = стена).
// Рваные строки допустимы: недостающие клетки становятся стенами (fail-safe),
// любое ненулевое значение тоже трактуется как стена.
func NewTileGrid(data [][]int, tileSize int) *TileGrid {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}

	height := len(data)
	width := 0
	for _, row := range data {
		if len(row) > width {
			width = len(row)
		}
	}

	cells := make([][]TileCode, height)
	for r := 0; r < height; r++ {
		cells[r] = make([]TileCode, width)
		for c := 0; c < width; c++ {
			if c >= len(data[r]) || data[r][c] != 0 {
				cells[r][c] = TileWall
			}
		}
	}

	return &TileGrid{
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		Cells:    cells,
	}
}

// InBounds проверяет, лежит ли координата внутри сетки.
func (g *TileGrid) InBounds(col, row int) bool {
	return col >= 0 && col < g.Width && row >= 0 && row < g.Height
}

// IsWall отвечает, является ли тайл стеной.
// Выход за границы считается ОТКРЫТЫМ (false): так автотайлинг и рендер
// видят край карты как пустоту. Для запросов видимости используется
// BlocksSight с противоположной семантикой - эта асимметрия намеренная.
func (g *TileGrid) IsWall(col, row int) bool {
	if !g.InBounds(col, row) {
		return false
	}
	// Защита от рваных данных: неизвестная клетка - стена.
	if row >= len(g.Cells) || col >= len(g.Cells[row]) {
		return true
	}
	return g.Cells[row][col] == TileWall
}

// IsWalkable отвечает, можно ли стоять на тайле.
// Выход за границы непроходим.
func (g *TileGrid) IsWalkable(col, row int) bool {
	return g.InBounds(col, row) && !g.IsWall(col, row)
}

// BlocksSight проверяет мировую точку на блокировку взгляда.
// Выход за границы БЛОКИРУЕТ: агенты не должны видеть (и стрелять) сквозь край карты.
func (g *TileGrid) BlocksSight(x, y float64) bool {
	col := int(x) / g.TileSize
	row := int(y) / g.TileSize
	if x < 0 || y < 0 || !g.InBounds(col, row) {
		return true
	}
	return g.IsWall(col, row)
}

// TileAt возвращает тайл, содержащий мировую точку.
func (g *TileGrid) TileAt(x, y float64) GridPoint {
	return GridPoint{Col: int(x) / g.TileSize, Row: int(y) / g.TileSize}
}

// TileOrigin возвращает мировую координату левого нижнего угла тайла.
func (g *TileGrid) TileOrigin(p GridPoint) Vec2 {
	return Vec2{X: float64(p.Col * g.TileSize), Y: float64(p.Row * g.TileSize)}
}

// TileCenter возвращает мировую координату центра тайла.
func (g *TileGrid) TileCenter(p GridPoint) Vec2 {
	half := float64(g.TileSize) / 2
	return g.TileOrigin(p).Add(Vec2{X: half, Y: half})
}

// RandomWalkableTile выбирает равномерно случайный внутренний (не граничный)
// проходимый тайл. Количество попыток ограничено: на карте без пола возвращаем
// ошибку вместо вечного цикла.
func (g *TileGrid) RandomWalkableTile(rng *rand.Rand) (GridPoint, error) {
	if g.Width < 3 || g.Height < 3 {
		return GridPoint{}, fmt.Errorf("grid %dx%d too small for interior tiles", g.Width, g.Height)
	}

	for i := 0; i < RandomTileMaxTries; i++ {
		row := 1 + rng.Intn(g.Height-2)
		col := 1 + rng.Intn(g.Width-2)
		if !g.IsWall(col, row) {
			return GridPoint{Col: col, Row: row}, nil
		}
	}
	return GridPoint{}, fmt.Errorf("no walkable tile found after %d tries", RandomTileMaxTries)
}
