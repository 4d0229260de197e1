package systems

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/23f2005121/KNOSSOS/internal/domain"
	"github.com/23f2005121/KNOSSOS/pkg/logger"
)

// UpdateAgent продвигает одного агента на delta секунд.
// Диспетчеризация по разновидности поведения: варианты переопределяют только
// логику решений, общие поля (позиция, здоровье, таймеры) едины для всех.
// Возвращает события для внешних систем; ядро само никуда не звонит.
func UpdateAgent(a *domain.Agent, player *domain.Player, g *domain.TileGrid, rng *rand.Rand, delta float64) []domain.Event {
	switch a.Kind {
	case domain.KindSentinel:
		return updateSentinel(a, player, g, delta)
	case domain.KindPhantom:
		return updatePhantom(a, player, delta)
	default:
		return updateStalker(a, player, g, rng, delta)
	}
}

// ApplyDamage наносит агенту урон из точки (sourceX, sourceY).
// Уважает окно неуязвимости и состояния Dying/Dead. Живой агент получает
// отбрасывание от источника; смертельный урон переводит сразу в Dying.
// Возвращает true, если урон применен.
func ApplyDamage(a *domain.Agent, amount int, sourceX, sourceY float64) bool {
	if !a.Alive() || a.HurtTimer > 0 {
		return false
	}

	hitLogger := logger.WithComponent("behavior").WithFields(logrus.Fields{
		"agent_id": a.ID,
		"kind":     a.Kind.String(),
		"amount":   amount,
	})

	// Фантом неуязвим: только вспышка попадания для обратной связи.
	if a.Kind == domain.KindPhantom {
		a.HurtTimer = domain.HurtWindow
		hitLogger.Debug("Damage ignored: phantom is invulnerable.")
		return false
	}

	a.Health -= amount
	a.HurtTimer = domain.HurtWindow

	// Направление отбрасывания: от источника к агенту, нормализованное.
	dir := a.Pos.Sub(domain.Vec2{X: sourceX, Y: sourceY}).Normalized()
	a.KnockbackDir = dir
	a.KnockbackOrigin = a.Pos
	a.KnockbackTimer = domain.KnockbackDuration
	a.Moving = false
	a.Path = nil
	a.State = domain.StateKnockback
	a.StateTime = 0

	if a.Health <= 0 {
		a.State = domain.StateDying
		a.DeathTimer = 0
		a.StateTime = 0
		hitLogger.WithField("health", a.Health).Debug("Lethal hit: agent is dying.")
	} else {
		hitLogger.WithField("health", a.Health).Debug("Hit applied with knockback.")
	}
	return true
}

// --- Общие куски автомата ---

// advanceDeath обслуживает состояния Dying/Dead.
// Возвращает (события, true) если агент неактивен и обновление окончено.
func advanceDeath(a *domain.Agent, delta float64) ([]domain.Event, bool) {
	switch a.State {
	case domain.StateDead:
		return nil, true
	case domain.StateDying:
		a.DeathTimer += delta
		a.StateTime += delta
		if a.DeathTimer >= domain.DeathDuration {
			a.State = domain.StateDead
			logger.WithComponent("behavior").WithField("agent_id", a.ID).
				Debug("Death finished: agent eligible for removal.")
			return []domain.Event{{Type: domain.EventAgentDied, AgentID: a.ID}}, true
		}
		// Пока умирает - не двигается и не наносит урон.
		return nil, true
	}
	return nil, false
}

// advanceKnockback двигает агента в отбрасывании.
// Движение идет мимо системы путей; столкновение со стеной возвращает агента
// ровно в позицию на момент удара и немедленно заканчивает отбрасывание.
// Возвращает true, если обновление на этом кадре окончено.
func advanceKnockback(a *domain.Agent, g *domain.TileGrid, delta float64) bool {
	if a.State != domain.StateKnockback {
		return false
	}

	a.Pos = a.Pos.Add(a.KnockbackDir.Scale(domain.KnockbackSpeed * delta))

	if CollidesWithWall(g, a.Bounds()) {
		a.Pos = a.KnockbackOrigin
		a.KnockbackTimer = 0
	} else {
		a.KnockbackTimer -= delta
	}

	a.Moving = false
	a.StateTime += delta

	if a.KnockbackTimer <= 0 {
		// Возврат в патруль; ближайший тик сам решит, атаковать ли.
		a.State = domain.StatePatrol
		a.StateTime = 0
	}
	return true
}

// faceToward выставляет направление взгляда по доминирующей оси вектора.
func faceToward(a *domain.Agent, dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			a.Facing = domain.FacingEast
		} else {
			a.Facing = domain.FacingWest
		}
	} else {
		if dy > 0 {
			a.Facing = domain.FacingNorth
		} else {
			a.Facing = domain.FacingSouth
		}
	}
}

// waypointTarget переводит тайл пути в мировую позицию хитбокса:
// бокс агента центрируется в тайле.
func waypointTarget(g *domain.TileGrid, p domain.GridPoint, a *domain.Agent) domain.Vec2 {
	c := g.TileCenter(p)
	return domain.Vec2{X: c.X - a.BoxW/2, Y: c.Y - a.BoxH/2}
}

// contactDamage наносит контактный урон при пересечении хитбоксов.
// Срабатывает в любом активном состоянии; окно неуязвимости цели - ее забота.
func contactDamage(a *domain.Agent, player *domain.Player) []domain.Event {
	if !a.Bounds().Overlaps(player.Bounds()) {
		return nil
	}
	if !player.TakeDamage(a.ContactDamage) {
		return nil
	}
	return []domain.Event{{Type: domain.EventTargetDamaged, AgentID: a.ID, Amount: a.ContactDamage}}
}

// --- Stalker: обычный преследователь с A* ---

func updateStalker(a *domain.Agent, player *domain.Player, g *domain.TileGrid, rng *rand.Rand, delta float64) []domain.Event {
	if events, done := advanceDeath(a, delta); done {
		return events
	}
	if a.HurtTimer > 0 {
		a.HurtTimer -= delta
	}
	if advanceKnockback(a, g, delta) {
		return nil
	}

	a.StateTime += delta

	// Переключение Patrol <-> Attack по евклидовой дистанции до цели.
	dist := a.Center().DistanceTo(player.Center())
	previous := a.State
	if dist < a.DetectionRadius {
		a.State = domain.StateAttack
	} else {
		a.State = domain.StatePatrol
	}

	if previous == domain.StatePatrol && a.State == domain.StateAttack {
		// Старый патрульный маршрут мгновенно забыт; путь к цели
		// пересчитается на ближайшем тике.
		a.Moving = false
		a.Path = nil
		a.PathTimer = domain.AttackRepathCooldown
		a.StateTime = 0
		logger.WithComponent("behavior").WithFields(logrus.Fields{
			"agent_id": a.ID,
			"distance": dist,
		}).Debug("Target acquired: switching to attack.")
	} else if previous != a.State {
		a.StateTime = 0
	}

	speed := a.Speed
	if a.State == domain.StatePatrol {
		speed *= domain.PatrolSpeedFactor
	}

	// Запрос нового пути - только когда стоим, и с ограничением частоты.
	if !a.Moving {
		a.PathTimer += delta

		if a.State == domain.StateAttack {
			if a.PathTimer >= domain.AttackRepathCooldown {
				from := g.TileAt(a.Pos.X, a.Pos.Y)
				to := g.TileAt(player.Pos.X, player.Pos.Y)
				a.Path = FindPath(g, from.Col, from.Row, to.Col, to.Row)
				a.PathTimer = 0
			}
		} else {
			a.IdleTimer += delta
			if a.IdleTimer >= domain.IdleWanderCooldown {
				// Случайная точка в пределах нескольких тайлов от точки спавна.
				anchor := g.TileAt(a.SpawnAnchor.X, a.SpawnAnchor.Y)
				rc := anchor.Col + rng.Intn(2*domain.WanderRadiusTiles+1) - domain.WanderRadiusTiles
				rr := anchor.Row + rng.Intn(2*domain.WanderRadiusTiles+1) - domain.WanderRadiusTiles
				if g.IsWalkable(rc, rr) {
					from := g.TileAt(a.Pos.X, a.Pos.Y)
					a.Path = FindPath(g, from.Col, from.Row, rc, rr)
				}
				a.IdleTimer = 0
			}
		}

		if len(a.Path) > 0 {
			next := a.Path[0]
			a.Path = a.Path[1:]
			a.Target = waypointTarget(g, next, a)
			a.Moving = true
		}
	}

	// Интерполяция к активной путевой точке.
	if a.Moving {
		step := speed * delta
		if a.Pos.X < a.Target.X {
			a.Pos.X = math.Min(a.Pos.X+step, a.Target.X)
		} else if a.Pos.X > a.Target.X {
			a.Pos.X = math.Max(a.Pos.X-step, a.Target.X)
		}
		if a.Pos.Y < a.Target.Y {
			a.Pos.Y = math.Min(a.Pos.Y+step, a.Target.Y)
		} else if a.Pos.Y > a.Target.Y {
			a.Pos.Y = math.Max(a.Pos.Y-step, a.Target.Y)
		}

		faceToward(a, a.Target.X-a.Pos.X, a.Target.Y-a.Pos.Y)

		// Прибытие с допуском, затем точный снап на путевую точку.
		if math.Abs(a.Pos.X-a.Target.X) < domain.WaypointEpsilon &&
			math.Abs(a.Pos.Y-a.Target.Y) < domain.WaypointEpsilon {
			a.Pos = a.Target
			a.Moving = false
		}
	}

	return contactDamage(a, player)
}

// --- Sentinel: неподвижный стрелок ---

func updateSentinel(a *domain.Agent, player *domain.Player, g *domain.TileGrid, delta float64) []domain.Event {
	if events, done := advanceDeath(a, delta); done {
		return events
	}
	if a.HurtTimer > 0 {
		a.HurtTimer -= delta
	}
	if advanceKnockback(a, g, delta) {
		return nil
	}

	a.StateTime += delta
	if a.ShootCooldown > 0 {
		a.ShootCooldown -= delta
	}

	// Стрелок не ходит, но смотрит на цель.
	center := a.Center()
	pc := player.Center()
	faceToward(a, pc.X-center.X, pc.Y-center.Y)

	dist := center.DistanceTo(pc)
	if dist < a.DetectionRadius {
		a.State = domain.StateAttack
	} else {
		a.State = domain.StatePatrol
	}

	// Зарядка стартует только при готовом кулдауне и чистой линии огня;
	// потеря видимости отменяет зарядку.
	if dist < a.DetectionRadius && a.ShootCooldown <= 0 {
		if HasLineOfSight(g, center.X, center.Y, pc.X, pc.Y) {
			if !a.Charging {
				a.Charging = true
				a.ChargeTimer = 0
				logger.WithComponent("behavior").WithField("agent_id", a.ID).
					Debug("Sentinel charging.")
			}
		} else {
			a.Charging = false
			a.ChargeTimer = 0
		}
	} else if a.Charging && dist >= a.DetectionRadius {
		a.Charging = false
		a.ChargeTimer = 0
	}

	var events []domain.Event
	if a.Charging {
		a.ChargeTimer += delta
		if a.ChargeTimer >= domain.SentinelChargeTime {
			dir := pc.Sub(center).Normalized()
			events = append(events, domain.Event{
				Type:    domain.EventSentinelFired,
				AgentID: a.ID,
				Origin:  center,
				Dir:     dir,
			})
			a.Charging = false
			a.ChargeTimer = 0
			a.ShootCooldown = domain.SentinelCooldown
			logger.WithComponent("behavior").WithField("agent_id", a.ID).
				Debug("Sentinel fired.")
		}
	}

	return append(events, contactDamage(a, player)...)
}

// --- Phantom: преследователь сквозь стены ---

func updatePhantom(a *domain.Agent, player *domain.Player, delta float64) []domain.Event {
	// Фантом не умирает и не отбрасывается; только вспышка попадания.
	if a.HurtTimer > 0 {
		a.HurtTimer -= delta
	}
	a.StateTime += delta

	toPlayer := player.Center().Sub(a.Center())
	dist := toPlayer.Len()

	// Однажды заметив цель, фантом преследует ее вечно.
	if dist < a.DetectionRadius && !a.Locked {
		a.Locked = true
		a.State = domain.StateAttack
		a.StateTime = 0
		logger.WithComponent("behavior").WithField("agent_id", a.ID).
			Debug("Phantom locked on target.")
	}

	a.Moving = false
	if a.Locked && dist > 0 {
		a.Moving = true
		// Прямая на цель, резолвер коллизий не используется: стены не помеха.
		a.Pos = a.Pos.Add(toPlayer.Normalized().Scale(a.Speed * delta))
		faceToward(a, toPlayer.X, toPlayer.Y)
		return contactDamage(a, player)
	}
	return nil
}
