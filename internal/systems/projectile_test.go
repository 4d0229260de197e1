package systems

import (
	"testing"

	"github.com/23f2005121/KNOSSOS/internal/domain"
)

func TestSpawnBoltFromFireEvent(t *testing.T) {
	e := domain.Event{
		Type:    domain.EventSentinelFired,
		AgentID: "sentinel_1",
		Origin:  domain.Vec2{X: 40, Y: 40},
		Dir:     domain.Vec2{X: 0, Y: 1},
	}

	b := SpawnBolt(e)
	if b.Pos != e.Origin || b.Dir != e.Dir {
		t.Errorf("bolt %+v does not match the event", b)
	}
	if !b.Alive || b.Speed != domain.BoltSpeed || b.Damage != domain.BoltDamage {
		t.Errorf("bolt defaults are off: %+v", b)
	}
}

func TestUpdateBoltFliesStraight(t *testing.T) {
	g := openGrid(10)
	player := testPlayer(domain.Vec2{X: 300, Y: 300})
	b := &domain.Bolt{Pos: domain.Vec2{X: 8, Y: 8}, Dir: domain.Vec2{X: 1, Y: 0}, Speed: 120, Damage: 1, Alive: true}

	events := UpdateBolt(b, player, g, 0.1)
	if len(events) != 0 {
		t.Errorf("unexpected events: %v", events)
	}
	if !b.Alive {
		t.Error("bolt over open floor must stay alive")
	}
	if b.Pos.X != 20 {
		t.Errorf("x = %v, want 20", b.Pos.X)
	}
}

func TestUpdateBoltDiesOnWall(t *testing.T) {
	g := domain.NewTileGrid([][]int{{0, 1, 0}}, 16)
	player := testPlayer(domain.Vec2{X: 300, Y: 300})
	b := &domain.Bolt{Pos: domain.Vec2{X: 8, Y: 8}, Dir: domain.Vec2{X: 1, Y: 0}, Speed: 120, Damage: 1, Alive: true}

	UpdateBolt(b, player, g, 0.1)
	if b.Alive {
		t.Error("bolt must extinguish inside a wall")
	}

	// Погасший снаряд инертен.
	x := b.Pos.X
	UpdateBolt(b, player, g, 0.1)
	if b.Pos.X != x {
		t.Error("dead bolt must not move")
	}
}

func TestUpdateBoltHitsPlayer(t *testing.T) {
	g := openGrid(10)
	player := testPlayer(domain.Vec2{X: 20, Y: 3})
	b := &domain.Bolt{Pos: domain.Vec2{X: 12, Y: 8}, Dir: domain.Vec2{X: 1, Y: 0}, Speed: 120, Damage: 1, Alive: true}

	events := UpdateBolt(b, player, g, 0.1)

	if b.Alive {
		t.Error("bolt must extinguish on impact")
	}
	if player.Lives != 4 {
		t.Errorf("lives = %d, want 4", player.Lives)
	}
	if len(events) != 1 || events[0].Type != domain.EventTargetDamaged {
		t.Fatalf("expected TARGET_DAMAGED, got %v", events)
	}
}

func TestUpdateBoltRespectsInvulnerability(t *testing.T) {
	g := openGrid(10)
	player := testPlayer(domain.Vec2{X: 20, Y: 3})
	player.InvulnTimer = 1.0
	b := &domain.Bolt{Pos: domain.Vec2{X: 12, Y: 8}, Dir: domain.Vec2{X: 1, Y: 0}, Speed: 120, Damage: 1, Alive: true}

	events := UpdateBolt(b, player, g, 0.1)

	if b.Alive {
		t.Error("bolt extinguishes even against an invulnerable target")
	}
	if player.Lives != 5 || len(events) != 0 {
		t.Errorf("invulnerable target took damage: lives=%d events=%v", player.Lives, events)
	}
}
