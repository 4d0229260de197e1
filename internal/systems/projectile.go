package systems

import (
	"github.com/23f2005121/KNOSSOS/internal/domain"
)

// SpawnBolt создает снаряд из события выстрела стрелка.
func SpawnBolt(e domain.Event) *domain.Bolt {
	return &domain.Bolt{
		Pos:    e.Origin,
		Dir:    e.Dir,
		Speed:  domain.BoltSpeed,
		Damage: domain.BoltDamage,
		Alive:  true,
	}
}

// UpdateBolt продвигает снаряд на delta секунд.
// Снаряд гаснет о стену (или край карты) либо о игрока, нанося урон.
func UpdateBolt(b *domain.Bolt, player *domain.Player, g *domain.TileGrid, delta float64) []domain.Event {
	if !b.Alive {
		return nil
	}

	b.Pos = b.Pos.Add(b.Dir.Scale(b.Speed * delta))

	if g.BlocksSight(b.Pos.X, b.Pos.Y) {
		b.Alive = false
		return nil
	}

	if b.Bounds().Overlaps(player.Bounds()) {
		b.Alive = false
		if player.TakeDamage(b.Damage) {
			return []domain.Event{{Type: domain.EventTargetDamaged, Amount: b.Damage}}
		}
	}
	return nil
}
