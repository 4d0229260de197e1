// Package maze генерирует случайные лабиринты модифицированным алгоритмом Прима
// и расселяет по ним агентов.
package maze

import (
	"math/rand"

	"github.com/23f2005121/KNOSSOS/internal/domain"
)

// Константы генерации.
// Физический размер: 2 (граница) + 10 комнат * 3 блока + 1 (граница) = 33.
// Разделитель последней комнаты дает вторую клетку нижней/правой границы.
const (
	LogicalSize = 10 // логическая сетка комнат
	Size        = 33

	rowOffset = 2 // толщина верхней границы
	colOffset = 2 // толщина левой границы

	wall = 1
	path = 0
)

// point - координата комнаты в логической сетке.
type point struct {
	r, c int
}

var directions = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Generator создает лабиринты из явно переданного источника случайности:
// одно зерно - один и тот же лабиринт, что и нужно для реплеев и тестов.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator создает генератор с заданным зерном.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate строит новый лабиринт и возвращает готовую сетку тайлов.
//
// Модифицированный Прим по логической сетке комнат:
//  1. Заливаем всю физическую сетку стенами.
//  2. Вырезаем комнату (0,0), ее соседей - во фронтир.
//  3. Пока фронтир не пуст: достаем случайную комнату; если уже посещена -
//     пропускаем; иначе соединяем проходом со случайным УЖЕ посещенным
//     соседом, вырезаем саму комнату, соседей - во фронтир.
//
// Каждая комната вырезается ровно одним проходом к уже связанному множеству,
// поэтому результат - идеальный лабиринт: между любыми двумя комнатами ровно
// один простой путь (остовное дерево, без циклов).
func (g *Generator) Generate(tileSize int) *domain.TileGrid {
	grid := make([][]int, Size)
	for r := range grid {
		grid[r] = make([]int, Size)
		for c := range grid[r] {
			grid[r][c] = wall
		}
	}

	var visited [LogicalSize][LogicalSize]bool
	var frontier []point

	start := point{0, 0}
	carveCell(grid, start)
	visited[start.r][start.c] = true
	frontier = appendUnvisitedNeighbors(frontier, start, &visited)

	for len(frontier) > 0 {
		// Случайная комната из фронтира.
		i := g.rng.Intn(len(frontier))
		current := frontier[i]
		frontier = append(frontier[:i], frontier[i+1:]...)

		if visited[current.r][current.c] {
			continue
		}

		neighbor, ok := g.randomVisitedNeighbor(current, &visited)
		if !ok {
			continue
		}

		carvePassage(grid, current, neighbor)
		carveCell(grid, current)
		visited[current.r][current.c] = true
		frontier = appendUnvisitedNeighbors(frontier, current, &visited)
	}

	return domain.NewTileGrid(grid, tileSize)
}

// carveCell вырезает проходимую комнату 2x2. Каждая логическая комната
// занимает блок 3x3: 2x2 пола плюс стена-разделитель справа и снизу.
func carveCell(grid [][]int, p point) {
	rStart := rowOffset + p.r*3
	cStart := colOffset + p.c*3
	for r := rStart; r < rStart+2; r++ {
		for c := cStart; c < cStart+2; c++ {
			grid[r][c] = path
		}
	}
}

// carvePassage пробивает проход шириной 2 в стене между соседними комнатами.
func carvePassage(grid [][]int, p1, p2 point) {
	if p1.r != p2.r {
		// Комнаты друг над другом: горизонтальный проход в разделяющем ряду.
		rWall := rowOffset + min(p1.r, p2.r)*3 + 2
		cStart := colOffset + p1.c*3
		grid[rWall][cStart] = path
		grid[rWall][cStart+1] = path
	} else {
		// Комнаты рядом: вертикальный проход в разделяющей колонке.
		cWall := colOffset + min(p1.c, p2.c)*3 + 2
		rStart := rowOffset + p1.r*3
		grid[rStart][cWall] = path
		grid[rStart+1][cWall] = path
	}
}

func appendUnvisitedNeighbors(frontier []point, p point, visited *[LogicalSize][LogicalSize]bool) []point {
	for _, d := range directions {
		nr, nc := p.r+d[0], p.c+d[1]
		if isValid(nr, nc) && !visited[nr][nc] {
			frontier = append(frontier, point{nr, nc})
		}
	}
	return frontier
}

// randomVisitedNeighbor выбирает случайного уже посещенного соседа -
// ключевой шаг Прима: новая комната всегда подключается к растущему дереву.
func (g *Generator) randomVisitedNeighbor(p point, visited *[LogicalSize][LogicalSize]bool) (point, bool) {
	var neighbors []point
	for _, d := range directions {
		nr, nc := p.r+d[0], p.c+d[1]
		if isValid(nr, nc) && visited[nr][nc] {
			neighbors = append(neighbors, point{nr, nc})
		}
	}
	if len(neighbors) == 0 {
		return point{}, false
	}
	return neighbors[g.rng.Intn(len(neighbors))], true
}

func isValid(r, c int) bool {
	return r >= 0 && r < LogicalSize && c >= 0 && c < LogicalSize
}
