package systems

import (
	"container/heap"

	"github.com/23f2005121/KNOSSOS/internal/domain"
)

// Узел поиска. Живет только внутри одного вызова FindPath.
type pathNode struct {
	col, row int
	gCost    int // стоимость от старта (1 за шаг)
	hCost    int // манхэттенская оценка до цели
	fCost    int // g + h
	parent   *pathNode
	index    int // позиция в куче
}

// openQueue - очередь с приоритетом по fCost.
// Оригинал сканировал открытый список линейно; куча меняет лишь порядок
// разбора равных f и не влияет на оптимальность пути.
type openQueue []*pathNode

func (q openQueue) Len() int            { return len(q) }
func (q openQueue) Less(i, j int) bool  { return q[i].fCost < q[j].fCost }
func (q openQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i]; q[i].index = i; q[j].index = j }
func (q *openQueue) Push(x interface{}) { n := x.(*pathNode); n.index = len(*q); *q = append(*q, n) }
func (q *openQueue) Pop() interface{} {
	old := *q
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*q = old[:len(old)-1]
	return n
}

// Порядок обхода соседей: S, N, E, W (4-связность, без диагоналей).
var neighborDirs = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

func manhattan(ax, ay, bx, by int) int {
	dx := ax - bx
	if dx < 0 {
		dx = -dx
	}
	dy := ay - by
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// FindPath ищет кратчайший путь A* по проходимым тайлам сетки.
// Возвращает последовательность тайлов от старта (не включая его) до цели,
// либо nil, если пути нет. Отсутствие пути - ожидаемый исход, не ошибка:
// вызывающий просто простаивает этот цикл.
func FindPath(g *domain.TileGrid, startCol, startRow, goalCol, goalRow int) []domain.GridPoint {
	start := &pathNode{col: startCol, row: startRow}
	start.hCost = manhattan(startCol, startRow, goalCol, goalRow)
	start.fCost = start.hCost

	open := &openQueue{}
	heap.Init(open)
	heap.Push(open, start)

	inOpen := map[domain.GridPoint]*pathNode{{Col: startCol, Row: startRow}: start}
	closed := map[domain.GridPoint]bool{}

	for open.Len() > 0 {
		current := heap.Pop(open).(*pathNode)
		key := domain.GridPoint{Col: current.col, Row: current.row}
		delete(inOpen, key)
		closed[key] = true

		if current.col == goalCol && current.row == goalRow {
			// Восстанавливаем путь по ссылкам на родителей и разворачиваем.
			var path []domain.GridPoint
			for n := current; n.parent != nil; n = n.parent {
				path = append(path, domain.GridPoint{Col: n.col, Row: n.row})
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			if path == nil {
				path = []domain.GridPoint{}
			}
			return path
		}

		for _, d := range neighborDirs {
			nc, nr := current.col+d[0], current.row+d[1]

			// Границы и стены отсекаются при раскрытии.
			if !g.IsWalkable(nc, nr) {
				continue
			}
			nkey := domain.GridPoint{Col: nc, Row: nr}
			if closed[nkey] {
				continue
			}

			gCost := current.gCost + 1
			if existing, ok := inOpen[nkey]; ok {
				// Уже в очереди: улучшаем, если нашли путь короче.
				if gCost < existing.gCost {
					existing.gCost = gCost
					existing.fCost = gCost + existing.hCost
					existing.parent = current
					heap.Fix(open, existing.index)
				}
				continue
			}

			n := &pathNode{col: nc, row: nr, gCost: gCost, parent: current}
			n.hCost = manhattan(nc, nr, goalCol, goalRow)
			n.fCost = n.gCost + n.hCost
			heap.Push(open, n)
			inOpen[nkey] = n
		}
	}

	// Очередь исчерпана, цель недостижима.
	return nil
}
