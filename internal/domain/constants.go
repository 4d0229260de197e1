package domain

// Размер тайла по умолчанию (мировые единицы).
const DefaultTileSize = 16

// Параметры отбрасывания (knockback) при получении урона.
const (
	KnockbackSpeed    = 110.0
	KnockbackDuration = 0.08
)

// Окна неуязвимости и длительность смерти.
const (
	HurtWindow         = 0.2 // i-frames агента после попадания
	DeathDuration      = 0.6 // анимация смерти, агент неактивен
	PlayerInvulnWindow = 1.0 // i-frames игрока после урона
)

// Параметры движения и принятия решений агентов.
const (
	PatrolSpeedFactor    = 0.6 // в патруле агент медленнее
	AttackRepathCooldown = 0.5 // не чаще раза в полсекунды ищем путь к цели
	IdleWanderCooldown   = 2.0 // пауза между случайными блужданиями
	WanderRadiusTiles    = 3   // радиус блуждания вокруг точки спавна
	WaypointEpsilon      = 0.1 // точность прибытия на путевую точку
)

// Параметры стрелка (sentinel).
const (
	SentinelChargeTime = 1.0
	SentinelCooldown   = 2.0
)

// Снаряд стрелка.
const (
	BoltSpeed  = 120.0
	BoltSize   = 4.0
	BoltDamage = 1
)

// Шаг сэмплирования прямой видимости (мировые единицы).
const LOSSampleStep = 4.0

// Параметры коллизий.
const (
	CollisionEpsilon = 0.01 // срез с дальнего края бокса, чтобы не цеплять границу тайла
	SnapStep         = 0.1  // шаг доводки до стены
	SnapSlack        = 0.05 // допуск, при котором доводка считается завершенной
	NarrowWallWidth  = 8.0  // ширина узкого хитбокса стены
)

// Ограничение на выбор случайного проходимого тайла.
// При превышении считаем уровень некорректным и возвращаем ошибку,
// вместо бесконечного цикла на карте без пола.
const RandomTileMaxTries = 1000
