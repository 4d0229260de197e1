package engine

import (
	"context"
	"testing"
	"time"
)

func TestServiceSnapshots(t *testing.T) {
	svc, err := NewService(testConfig(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	init := svc.InitSnapshot()
	if init.Type != "INIT" {
		t.Errorf("type = %q, want INIT", init.Type)
	}
	if init.Grid == nil || init.Grid.Width != 33 || init.Grid.Height != 33 {
		t.Fatalf("grid meta %+v, want 33x33", init.Grid)
	}
	if len(init.Map) != 33 {
		t.Errorf("INIT must carry the full map, got %d rows", len(init.Map))
	}
	if init.Player == nil {
		t.Error("INIT must carry the player")
	}

	upd := svc.DebugState()
	if upd.Type != "UPDATE" {
		t.Errorf("type = %q, want UPDATE", upd.Type)
	}
	if upd.Map != nil {
		t.Error("UPDATE snapshots must not carry the map")
	}
	if len(upd.Agents) == 0 {
		t.Error("snapshot carries no agents")
	}
}

func TestServiceCombatSurface(t *testing.T) {
	svc, err := NewService(testConfig(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if svc.ApplyDamage("no_such_agent", 1, 0, 0) {
		t.Error("damage to an unknown agent must be rejected")
	}
	if !svc.IsAgentDead("no_such_agent") {
		t.Error("unknown agent counts as dead")
	}

	// Живой агент из снимка.
	snap := svc.DebugState()
	var target string
	for _, a := range snap.Agents {
		if a.Kind != "PHANTOM" {
			target = a.ID
			break
		}
	}
	if target == "" {
		t.Fatal("no mortal agent in the world")
	}

	if svc.IsAgentDead(target) {
		t.Error("freshly spawned agent reported dead")
	}
	if !svc.ApplyDamage(target, 1, 0, 0) {
		t.Error("hit on a live agent must land")
	}
	// Окно неуязвимости после попадания.
	if svc.ApplyDamage(target, 1, 0, 0) {
		t.Error("second hit inside the hurt window must be rejected")
	}
}

func TestServiceRunBroadcastsTicks(t *testing.T) {
	svc, err := NewService(testConfig(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go svc.Run(ctx)

	updates := svc.Hub().Register("viewer")
	defer svc.Hub().Unregister("viewer")

	select {
	case snap := <-updates:
		if snap.Type != "UPDATE" {
			t.Errorf("type = %q, want UPDATE", snap.Type)
		}
		if snap.Tick == 0 {
			t.Error("broadcast snapshot has no tick")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot broadcast within 2s")
	}
}
