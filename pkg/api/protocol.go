package api

import "encoding/json"

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand - команда от внешнего коллаборатора (рендер/геймплей).
type ClientCommand struct {
	// Action: "INPUT" (вектор движения игрока), "STRIKE" (нанести урон агенту).
	Action string `json:"action"`

	// Token идентифицирует клиента/сессию.
	Token string `json:"token,omitempty"`

	Payload json.RawMessage `json:"payload,omitempty"`
}

// InputPayload - входной вектор игрока. Компоненты в [-1, 1].
type InputPayload struct {
	DX     float64 `json:"dx"`
	DY     float64 `json:"dy"`
	Sprint bool    `json:"sprint,omitempty"`
}

// StrikePayload - запрос боевого коллаборатора на урон агенту.
// X, Y - мировая точка источника удара (направление отбрасывания).
type StrikePayload struct {
	TargetID string  `json:"targetId"`
	Damage   int     `json:"damage"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

// --- СЕРВЕР -> КЛИЕНТ ---

// Snapshot - снимок мира для клиента. Только чтение:
// клиент не может через него ничего мутировать.
type Snapshot struct {
	// Type: "INIT" (первый снимок, с картой) или "UPDATE".
	Type string `json:"type"`

	Tick int `json:"tick"`

	Grid *GridMeta `json:"grid,omitempty"`

	// Map - коды тайлов (0 = пол, 1 = стена). Передается только в INIT:
	// сетка в пределах уровня неизменна.
	Map [][]int `json:"map,omitempty"`

	Agents []AgentView  `json:"agents"`
	Player *PlayerView  `json:"player,omitempty"`
	Bolts  []BoltView   `json:"bolts,omitempty"`
	Events []EventView  `json:"events,omitempty"`
}

// GridMeta - размеры карты и тайла, чтобы клиент подготовил сетку рендера.
type GridMeta struct {
	Width    int `json:"w"`
	Height   int `json:"h"`
	TileSize int `json:"tileSize"`
}

// AgentView - DTO агента: позиция, состояние и направление взгляда.
// Выбор спрайта/кадра - забота клиента.
type AgentView struct {
	ID     string  `json:"id"`
	Kind   string  `json:"kind"`
	Name   string  `json:"name"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	State  string  `json:"state"`
	Facing string  `json:"facing"`
	Health int     `json:"health"`
	Hurt   bool    `json:"hurt"` // вспышка попадания
}

// PlayerView - DTO игрока.
type PlayerView struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Lives      int     `json:"lives"`
	Facing     string  `json:"facing"`
	Invincible bool    `json:"invincible"`
}

// BoltView - DTO снаряда.
type BoltView struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// EventView - событие кадра для внешних систем (звук, счет, опыт).
type EventView struct {
	Type    string `json:"type"`
	AgentID string `json:"agentId,omitempty"`
	Amount  int    `json:"amount,omitempty"`
}
