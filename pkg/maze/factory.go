package maze

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/23f2005121/KNOSSOS/internal/domain"
	"github.com/23f2005121/KNOSSOS/pkg/logger"
)

// Профили разновидностей агентов: скорость, радиус обнаружения,
// контактный урон, здоровье, хитбокс.

// NewStalker - обычный преследователь (скелет).
func NewStalker(id string, pos domain.Vec2) *domain.Agent {
	return &domain.Agent{
		ID: id, Kind: domain.KindStalker, Name: "Скелет",
		Pos: pos, SpawnAnchor: pos, Target: pos,
		BoxW: 14, BoxH: 14,
		Health: 2, State: domain.StatePatrol,
		Speed: 30, DetectionRadius: 130, ContactDamage: 2,
	}
}

// NewJockey - быстрый, но хрупкий преследователь (нетопырь).
// Та же разновидность поведения, что и у скелета - отличаются только числа.
func NewJockey(id string, pos domain.Vec2) *domain.Agent {
	return &domain.Agent{
		ID: id, Kind: domain.KindStalker, Name: "Нетопырь",
		Pos: pos, SpawnAnchor: pos, Target: pos,
		BoxW: 10, BoxH: 10,
		Health: 2, State: domain.StatePatrol,
		Speed: 40, DetectionRadius: 150, ContactDamage: 1,
	}
}

// NewSentinel - неподвижный стрелок (маг).
func NewSentinel(id string, pos domain.Vec2) *domain.Agent {
	return &domain.Agent{
		ID: id, Kind: domain.KindSentinel, Name: "Маг",
		Pos: pos, SpawnAnchor: pos, Target: pos,
		BoxW: 14, BoxH: 14,
		Health: 2, State: domain.StatePatrol,
		Speed: 0, DetectionRadius: 250, ContactDamage: 1,
	}
}

// NewPhantom - неуязвимый преследователь сквозь стены (улитка).
// Очень медленный, зато видит всю карту и убивает касанием.
func NewPhantom(id string, pos domain.Vec2) *domain.Agent {
	return &domain.Agent{
		ID: id, Kind: domain.KindPhantom, Name: "Бессмертная улитка",
		Pos: pos, SpawnAnchor: pos, Target: pos,
		BoxW: 12, BoxH: 12,
		Health: 9999, State: domain.StatePatrol,
		Speed: 4, DetectionRadius: 1500, ContactDamage: 999,
	}
}

// NewPlayer создает игрока в указанной позиции.
func NewPlayer(id string, pos domain.Vec2) *domain.Player {
	return &domain.Player{
		ID: id, Name: "Герой",
		Pos:   pos,
		BoxW:  10, BoxH: 10,
		Lives: 5,
		Speed: 50,
	}
}

// SpawnAgents расселяет агентов по проходимым тайлам уровня.
// Количество и состав растут с уровнем (бесконечный режим):
// стрелки появляются с 7-го уровня, бонусное здоровье - после 10-го.
// Фантом добавляется на каждый уровень ровно один.
func SpawnAgents(g *domain.TileGrid, rng *rand.Rand, level int) ([]*domain.Agent, error) {
	count := 5 + level*2
	if count > 25 {
		count = 25
	}
	healthBonus := 0
	if level > 10 {
		healthBonus = level - 10
	}

	spawnLogger := logger.WithComponent("maze_factory").WithFields(logrus.Fields{
		"level":        level,
		"agent_count":  count,
		"health_bonus": healthBonus,
	})

	agents := make([]*domain.Agent, 0, count+1)
	for i := 0; i < count; i++ {
		tile, err := g.RandomWalkableTile(rng)
		if err != nil {
			return nil, fmt.Errorf("spawn agent %d: %w", i, err)
		}
		pos := agentOrigin(g, tile, 14)
		id := fmt.Sprintf("a_%d_%d", level, i)

		roll := rng.Intn(100)
		var a *domain.Agent
		switch {
		case level >= 7 && roll < 10:
			a = NewSentinel(id, pos)
		case level >= 3 && roll >= 70:
			a = NewJockey(id, agentOrigin(g, tile, 10))
		default:
			a = NewStalker(id, pos)
		}

		if a.Kind != domain.KindPhantom && healthBonus > 0 {
			a.Health += healthBonus
		}
		agents = append(agents, a)
	}

	// Улитка неотвратима.
	tile, err := g.RandomWalkableTile(rng)
	if err != nil {
		return nil, fmt.Errorf("spawn phantom: %w", err)
	}
	agents = append(agents, NewPhantom(fmt.Sprintf("snail_%d", level), agentOrigin(g, tile, 12)))

	spawnLogger.Info("Agents spawned.")
	return agents, nil
}

// agentOrigin переводит тайл в мировую позицию так, чтобы хитбокс
// заданного размера оказался по центру тайла.
func agentOrigin(g *domain.TileGrid, p domain.GridPoint, box float64) domain.Vec2 {
	c := g.TileCenter(p)
	return domain.Vec2{X: c.X - box/2, Y: c.Y - box/2}
}
