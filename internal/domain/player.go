package domain

// Player - управляемая извне цель агентов.
// Ядро двигает игрока через резолвер коллизий по входным векторам клиента
// и списывает жизни при контактном уроне.
type Player struct {
	ID   string
	Name string

	Pos        Vec2
	BoxW, BoxH float64

	Lives  int
	Facing Facing

	Speed     float64
	Sprinting bool

	// Окно неуязвимости после полученного урона.
	InvulnTimer float64
}

// Bounds возвращает хитбокс игрока.
func (p *Player) Bounds() Rect {
	return Rect{X: p.Pos.X, Y: p.Pos.Y, W: p.BoxW, H: p.BoxH}
}

// Center возвращает центр хитбокса.
func (p *Player) Center() Vec2 {
	return p.Bounds().Center()
}

// TakeDamage списывает жизни с учетом окна неуязвимости.
// Возвращает true, если урон действительно применен.
func (p *Player) TakeDamage(amount int) bool {
	if p.InvulnTimer > 0 || amount <= 0 {
		return false
	}
	p.Lives -= amount
	p.InvulnTimer = PlayerInvulnWindow
	return true
}

// Dead - жизни кончились.
func (p *Player) Dead() bool {
	return p.Lives <= 0
}

// Bolt - снаряд стрелка. Летит по прямой, гаснет о стену или игрока.
type Bolt struct {
	Pos    Vec2
	Dir    Vec2 // нормализованное направление
	Speed  float64
	Damage int
	Alive  bool
}

// Bounds возвращает хитбокс снаряда.
func (b *Bolt) Bounds() Rect {
	return Rect{X: b.Pos.X - BoltSize/2, Y: b.Pos.Y - BoltSize/2, W: BoltSize, H: BoltSize}
}
