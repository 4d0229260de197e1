package engine

import (
	"fmt"
	"math/rand"

	"github.com/23f2005121/KNOSSOS/internal/domain"
	"github.com/23f2005121/KNOSSOS/internal/systems"
	"github.com/23f2005121/KNOSSOS/pkg/logger"
	"github.com/23f2005121/KNOSSOS/pkg/maze"
)

// PlayerInput - входной вектор игрока на кадр.
// Компоненты в диапазоне [-1, 1]; спринт ускоряет в полтора раза.
type PlayerInput struct {
	DX, DY float64
	Sprint bool
}

const sprintFactor = 1.5

// World - состояние одного уровня симуляции.
// Все обновление происходит синхронно в потоке вызывающего:
// внутри ядра нет ни горутин, ни блокировок. Сетка на время кадра неизменяема.
type World struct {
	Grid   *domain.TileGrid
	Player *domain.Player
	Agents []*domain.Agent
	Bolts  []*domain.Bolt

	Rng  *rand.Rand
	Tick int
}

// NewWorld генерирует лабиринт по зерну конфига и расселяет агентов.
func NewWorld(cfg Config) (*World, error) {
	grid := maze.NewGenerator(cfg.Seed).Generate(domain.DefaultTileSize)
	return newWorldOnGrid(grid, cfg)
}

// NewWorldFromGrid строит мир на готовой сетке поставщика уровней
// (0 = пол, 1 = стена).
func NewWorldFromGrid(data [][]int, tileSize int, cfg Config) (*World, error) {
	return newWorldOnGrid(domain.NewTileGrid(data, tileSize), cfg)
}

func newWorldOnGrid(grid *domain.TileGrid, cfg Config) (*World, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))

	agents, err := maze.SpawnAgents(grid, rng, cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("populate level %d: %w", cfg.Level, err)
	}

	start, err := grid.RandomWalkableTile(rng)
	if err != nil {
		return nil, fmt.Errorf("place player: %w", err)
	}
	c := grid.TileCenter(start)
	player := maze.NewPlayer("hero_1", domain.Vec2{X: c.X - 5, Y: c.Y - 5})

	logger.WithComponent("engine").WithField("agents", len(agents)).
		Info("World created.")

	return &World{
		Grid:   grid,
		Player: player,
		Agents: agents,
		Rng:    rng,
	}, nil
}

// Update продвигает мир на delta секунд: двигает игрока по входному вектору,
// обновляет всех агентов и снаряды, убирает мертвых.
// Возвращает события кадра для внешних подписчиков (счет, опыт, звук).
func (w *World) Update(delta float64, input PlayerInput) []domain.Event {
	w.Tick++
	var events []domain.Event

	// 1. Игрок.
	if w.Player.InvulnTimer > 0 {
		w.Player.InvulnTimer -= delta
	}
	dir := domain.Vec2{X: input.DX, Y: input.DY}.Normalized()
	if dir.X != 0 || dir.Y != 0 {
		speed := w.Player.Speed
		if input.Sprint {
			speed *= sprintFactor
		}
		moved := systems.MoveBox(w.Grid, w.Player.Bounds(), dir.X*speed*delta, dir.Y*speed*delta)
		w.Player.Pos = domain.Vec2{X: moved.X, Y: moved.Y}
		w.Player.Sprinting = input.Sprint
		facePlayer(w.Player, dir)
	} else {
		w.Player.Sprinting = false
	}

	// 2. Агенты.
	for _, a := range w.Agents {
		for _, e := range systems.UpdateAgent(a, w.Player, w.Grid, w.Rng, delta) {
			events = append(events, e)
			if e.Type == domain.EventSentinelFired {
				w.Bolts = append(w.Bolts, systems.SpawnBolt(e))
			}
		}
	}

	// 3. Снаряды.
	alive := w.Bolts[:0]
	for _, b := range w.Bolts {
		events = append(events, systems.UpdateBolt(b, w.Player, w.Grid, delta)...)
		if b.Alive {
			alive = append(alive, b)
		}
	}
	w.Bolts = alive

	// 4. Удаление мертвых (событие EventAgentDied уже отдано).
	remaining := w.Agents[:0]
	for _, a := range w.Agents {
		if a.State != domain.StateDead {
			remaining = append(remaining, a)
		}
	}
	w.Agents = remaining

	return events
}

// AgentByID ищет агента. Мертвые и удаленные не находятся.
func (w *World) AgentByID(id string) *domain.Agent {
	for _, a := range w.Agents {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// RequestPath - сервис поиска пути, доступный вне цикла агентов.
// nil означает "пути нет" и не является ошибкой.
func (w *World) RequestPath(from, to domain.GridPoint) []domain.GridPoint {
	return systems.FindPath(w.Grid, from.Col, from.Row, to.Col, to.Row)
}

func facePlayer(p *domain.Player, dir domain.Vec2) {
	if dir.X == 0 && dir.Y == 0 {
		return
	}
	switch {
	case dir.X > 0 && dir.X >= abs(dir.Y):
		p.Facing = domain.FacingEast
	case dir.X < 0 && -dir.X >= abs(dir.Y):
		p.Facing = domain.FacingWest
	case dir.Y > 0:
		p.Facing = domain.FacingNorth
	default:
		p.Facing = domain.FacingSouth
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
