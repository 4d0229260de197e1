package engine

import (
	"github.com/23f2005121/KNOSSOS/internal/domain"
	"github.com/23f2005121/KNOSSOS/pkg/api"
)

// buildSnapshot собирает DTO-снимок мира. Карта включается только
// в INIT-снимок: сетка в пределах уровня неизменна.
func buildSnapshot(w *World, events []domain.Event, withMap bool) api.Snapshot {
	snap := api.Snapshot{
		Type:   "UPDATE",
		Tick:   w.Tick,
		Agents: make([]api.AgentView, 0, len(w.Agents)),
		Player: &api.PlayerView{
			X:          w.Player.Pos.X,
			Y:          w.Player.Pos.Y,
			Lives:      w.Player.Lives,
			Facing:     w.Player.Facing.String(),
			Invincible: w.Player.InvulnTimer > 0,
		},
	}

	if withMap {
		snap.Type = "INIT"
		snap.Grid = &api.GridMeta{
			Width:    w.Grid.Width,
			Height:   w.Grid.Height,
			TileSize: w.Grid.TileSize,
		}
		snap.Map = make([][]int, len(w.Grid.Cells))
		for r, row := range w.Grid.Cells {
			cells := make([]int, len(row))
			for c, code := range row {
				cells[c] = int(code)
			}
			snap.Map[r] = cells
		}
	}

	for _, a := range w.Agents {
		snap.Agents = append(snap.Agents, api.AgentView{
			ID:     a.ID,
			Kind:   a.Kind.String(),
			Name:   a.Name,
			X:      a.Pos.X,
			Y:      a.Pos.Y,
			State:  a.State.String(),
			Facing: a.Facing.String(),
			Health: a.Health,
			Hurt:   a.HurtTimer > 0,
		})
	}

	for _, b := range w.Bolts {
		snap.Bolts = append(snap.Bolts, api.BoltView{X: b.Pos.X, Y: b.Pos.Y})
	}

	for _, e := range events {
		snap.Events = append(snap.Events, api.EventView{
			Type:    e.Type.String(),
			AgentID: e.AgentID,
			Amount:  e.Amount,
		})
	}

	return snap
}
