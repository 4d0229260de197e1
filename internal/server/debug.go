package server

import (
	"encoding/json"
	"net/http"

	"github.com/23f2005121/KNOSSOS/internal/engine"
)

// DebugHandler предоставляет доступ к внутреннему состоянию симуляции
type DebugHandler struct {
	Service *engine.Service
}

func NewDebugHandler(s *engine.Service) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/agents", h.handleDumpAgents)
	mux.HandleFunc("/debug/grid", h.handleDumpGrid)
}

// /debug/agents - дамп агентов, игрока и снарядов текущего кадра
func (h *DebugHandler) handleDumpAgents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.DebugState())
}

// /debug/grid - коды тайлов уровня (0 = пол, 1 = стена)
func (h *DebugHandler) handleDumpGrid(w http.ResponseWriter, r *http.Request) {
	snap := h.Service.GridSnapshot()
	writeJSON(w, map[string]interface{}{
		"grid": snap.Grid,
		"map":  snap.Map,
	})
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug_client.html)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
