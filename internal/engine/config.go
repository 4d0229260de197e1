package engine

import "time"

// Config хранит параметры запуска симуляции.
type Config struct {
	// Seed - мастер-зерно. От него зависят лабиринт и расселение агентов.
	Seed int64

	// Level - номер уровня (влияет на число и состав агентов).
	Level int

	// TickRate - длительность одного кадра симуляции.
	TickRate time.Duration
}

// NewConfig создает конфиг по умолчанию (случайное зерно, 20 кадров в секунду).
func NewConfig() Config {
	return Config{
		Seed:     time.Now().UnixNano(),
		Level:    1,
		TickRate: 50 * time.Millisecond,
	}
}
