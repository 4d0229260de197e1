package domain

// EventType - внутренний числовой идентификатор события симуляции.
type EventType uint8

const (
	EventUnknown EventType = iota

	// EventAgentDied - агент закончил умирать и подлежит удалению.
	// Внешние системы (опыт, счет) подписываются на это событие,
	// ядро само никуда не звонит.
	EventAgentDied

	// EventSentinelFired - стрелок завершил зарядку и выпустил снаряд.
	EventSentinelFired

	// EventTargetDamaged - игрок получил урон (контактный или снарядом).
	EventTargetDamaged
)

func (t EventType) String() string {
	switch t {
	case EventAgentDied:
		return "AGENT_DIED"
	case EventSentinelFired:
		return "SENTINEL_FIRED"
	case EventTargetDamaged:
		return "TARGET_DAMAGED"
	}
	return "UNKNOWN"
}

// Event - значение, возвращаемое из обновления симуляции.
// Ядро не вызывает внешние менеджеры напрямую: вся связь наружу - через события.
type Event struct {
	Type    EventType
	AgentID string

	// Amount - величина урона для EventTargetDamaged.
	Amount int

	// Origin и Dir - точка и направление выстрела для EventSentinelFired.
	Origin Vec2
	Dir    Vec2
}
