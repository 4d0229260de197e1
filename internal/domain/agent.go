package domain

// BehaviorState - состояние конечного автомата агента.
type BehaviorState uint8

const (
	StatePatrol BehaviorState = iota
	StateAttack
	StateKnockback
	StateDying
	StateDead
)

func (s BehaviorState) String() string {
	switch s {
	case StatePatrol:
		return "PATROL"
	case StateAttack:
		return "ATTACK"
	case StateKnockback:
		return "KNOCKBACK"
	case StateDying:
		return "DYING"
	case StateDead:
		return "DEAD"
	}
	return "UNKNOWN"
}

// BehaviorKind - разновидность поведения поверх общего автомата.
// Вместо иерархии наследования (как было в оригинале) - тег,
// по которому диспетчеризуется функция обновления.
type BehaviorKind uint8

const (
	// KindStalker - обычный преследователь: патрулирует, ищет путь A* к цели.
	KindStalker BehaviorKind = iota
	// KindSentinel - неподвижный стрелок: заряжается и стреляет по прямой видимости.
	KindSentinel
	// KindPhantom - игнорирует стены: однажды заметив цель, идет к ней напрямик вечно.
	KindPhantom
)

func (k BehaviorKind) String() string {
	switch k {
	case KindStalker:
		return "STALKER"
	case KindSentinel:
		return "SENTINEL"
	case KindPhantom:
		return "PHANTOM"
	}
	return "UNKNOWN"
}

// Facing - направление взгляда, проекция для внешнего слоя анимации.
type Facing uint8

const (
	FacingSouth Facing = iota
	FacingNorth
	FacingEast
	FacingWest
)

func (f Facing) String() string {
	switch f {
	case FacingNorth:
		return "NORTH"
	case FacingEast:
		return "EAST"
	case FacingWest:
		return "WEST"
	}
	return "SOUTH"
}

// Agent - один автономный агент симуляции.
// Общая запись для всех разновидностей: варианты отличаются только
// логикой решения, а не набором полей.
type Agent struct {
	ID   string
	Kind BehaviorKind
	Name string

	// Pos - левый нижний угол хитбокса. Хитбокс меньше спрайта.
	Pos        Vec2
	BoxW, BoxH float64

	Health int
	State  BehaviorState
	Facing Facing

	// Характеристики разновидности.
	Speed           float64
	DetectionRadius float64
	ContactDamage   int

	// Точка спавна - якорь патрульного блуждания.
	SpawnAnchor Vec2

	// Текущий путь (без стартового тайла) и активная путевая точка.
	Path   []GridPoint
	Target Vec2
	Moving bool

	// Таймеры. Все в секундах.
	PathTimer  float64 // кулдаун пересчета пути в атаке
	IdleTimer  float64 // кулдаун блуждания в патруле
	HurtTimer  float64 // окно неуязвимости после попадания
	DeathTimer float64 // прошедшее время состояния Dying
	StateTime  float64 // время в текущем состоянии (для анимации)

	// Отбрасывание.
	KnockbackTimer  float64
	KnockbackDir    Vec2
	KnockbackOrigin Vec2

	// Поля стрелка.
	Charging      bool
	ChargeTimer   float64
	ShootCooldown float64

	// Поле фантома: цель однажды замечена, преследование навсегда.
	Locked bool
}

// Bounds возвращает текущий хитбокс агента.
func (a *Agent) Bounds() Rect {
	return Rect{X: a.Pos.X, Y: a.Pos.Y, W: a.BoxW, H: a.BoxH}
}

// Center возвращает центр хитбокса.
func (a *Agent) Center() Vec2 {
	return a.Bounds().Center()
}

// Alive - агент еще участвует в симуляции (не умирает и не мертв).
func (a *Agent) Alive() bool {
	return a.State != StateDying && a.State != StateDead
}
