package network

import (
	"sync"

	"github.com/23f2005121/KNOSSOS/pkg/api"
)

// Broadcaster занимается только рассылкой снимков мира подписчикам.
// Ядро симуляции о подписчиках ничего не знает.
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: ID клиента -> личный канал
	subscribers map[string]chan api.Snapshot
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.Snapshot),
	}
}

// Register создает личный канал для клиента.
func (b *Broadcaster) Register(clientID string) chan api.Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал был, закрываем.
	if old, ok := b.subscribers[clientID]; ok {
		close(old)
	}

	ch := make(chan api.Snapshot, 100)
	b.subscribers[clientID] = ch
	return ch
}

// Unregister удаляет подписчика.
func (b *Broadcaster) Unregister(clientID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[clientID]; ok {
		close(ch)
		delete(b.subscribers, clientID)
	}
}

// SendTo отправляет снимок конкретному клиенту (Unicast).
func (b *Broadcaster) SendTo(clientID string, msg api.Snapshot) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if ch, ok := b.subscribers[clientID]; ok {
		select {
		case ch <- msg:
		default:
			// Канал полон: снимок устарел быстрее, чем клиент читает. Пропускаем.
		}
	}
}

// Broadcast отправляет снимок всем подписчикам.
func (b *Broadcaster) Broadcast(msg api.Snapshot) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
		}
	}
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
