package engine

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/23f2005121/KNOSSOS/internal/domain"
	"github.com/23f2005121/KNOSSOS/internal/network"
	"github.com/23f2005121/KNOSSOS/internal/systems"
	"github.com/23f2005121/KNOSSOS/pkg/api"
	"github.com/23f2005121/KNOSSOS/pkg/logger"
)

// Service - владелец симуляции. Все команды клиентов стекаются в один канал
// и применяются строго внутри тика: мир мутирует только горутина Run.
// Прямые методы (ApplyDamage, IsAgentDead, RequestPath) защищены мьютексом
// и предназначены для внутренних коллабораторов (отладка, тесты).
type Service struct {
	cfg Config

	mu    sync.Mutex
	world *World

	hub      *network.Broadcaster
	commands chan api.ClientCommand

	log *logrus.Entry
}

// NewService строит мир по конфигу и готовит каналы.
func NewService(cfg Config) (*Service, error) {
	world, err := NewWorld(cfg)
	if err != nil {
		return nil, err
	}
	return &Service{
		cfg:      cfg,
		world:    world,
		hub:      network.NewBroadcaster(),
		commands: make(chan api.ClientCommand, 256),
		log:      logger.WithComponent("game_service"),
	}, nil
}

// Hub возвращает рассыльщика снимков для сетевого слоя.
func (s *Service) Hub() *network.Broadcaster {
	return s.hub
}

// Submit ставит команду клиента в очередь на ближайший тик.
// Переполненная очередь молча роняет команду: симуляция важнее ввода.
func (s *Service) Submit(cmd api.ClientCommand) {
	select {
	case s.commands <- cmd:
	default:
		s.log.Warn("Command queue full, input dropped.")
	}
}

// InitSnapshot - первый снимок для нового подписчика, с картой уровня.
func (s *Service) InitSnapshot() api.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return buildSnapshot(s.world, nil, true)
}

// Run крутит цикл симуляции до отмены контекста.
// Каждый тик: применить накопленные команды, продвинуть мир, разослать снимок.
func (s *Service) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.TickRate)
	defer ticker.Stop()

	delta := s.cfg.TickRate.Seconds()
	var input PlayerInput

	s.log.WithFields(logrus.Fields{
		"seed":      s.cfg.Seed,
		"level":     s.cfg.Level,
		"tick_rate": s.cfg.TickRate.String(),
	}).Info("Simulation loop started.")

	for {
		select {
		case <-ctx.Done():
			s.log.Info("Simulation loop stopped.")
			return
		case <-ticker.C:
			input = s.drainCommands(input)

			s.mu.Lock()
			events := s.world.Update(delta, input)
			snap := buildSnapshot(s.world, events, false)
			s.mu.Unlock()

			s.hub.Broadcast(snap)
		}
	}
}

// drainCommands выгребает очередь команд. Вектор движения не событие,
// а удержание: последний INPUT действует, пока не придет новый.
func (s *Service) drainCommands(input PlayerInput) PlayerInput {
	for {
		select {
		case cmd := <-s.commands:
			switch cmd.Action {
			case "INPUT":
				var p api.InputPayload
				if err := json.Unmarshal(cmd.Payload, &p); err != nil {
					s.log.WithError(err).Warn("Malformed INPUT payload.")
					continue
				}
				input = PlayerInput{DX: p.DX, DY: p.DY, Sprint: p.Sprint}
			case "STRIKE":
				var p api.StrikePayload
				if err := json.Unmarshal(cmd.Payload, &p); err != nil {
					s.log.WithError(err).Warn("Malformed STRIKE payload.")
					continue
				}
				s.ApplyDamage(p.TargetID, p.Damage, p.X, p.Y)
			default:
				s.log.WithField("action", cmd.Action).Warn("Unknown command action.")
			}
		default:
			return input
		}
	}
}

// ApplyDamage наносит урон агенту из мировой точки (sx, sy).
// Возвращает true, если урон действительно применен.
func (s *Service) ApplyDamage(agentID string, amount int, sx, sy float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.world.AgentByID(agentID)
	if a == nil {
		return false
	}
	return systems.ApplyDamage(a, amount, sx, sy)
}

// IsAgentDead отвечает на вопрос внешнего коллаборатора "можно ли убрать
// спрайт". Удаленный или неизвестный агент считается мертвым.
func (s *Service) IsAgentDead(agentID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.world.AgentByID(agentID)
	return a == nil || a.State == domain.StateDead
}

// RequestPath - сервис поиска пути для внешних потребителей.
func (s *Service) RequestPath(from, to domain.GridPoint) []domain.GridPoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.world.RequestPath(from, to)
}

// DebugState возвращает снимок для отладочных маршрутов.
func (s *Service) DebugState() api.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return buildSnapshot(s.world, nil, false)
}

// GridSnapshot отдает коды тайлов для отладки.
func (s *Service) GridSnapshot() api.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return buildSnapshot(s.world, nil, true)
}
