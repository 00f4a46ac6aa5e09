package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"hr-interview-bot/internal/config"
	"hr-interview-bot/internal/metrics"
	"hr-interview-bot/internal/storage"
)

// HealthStatus представляет ответ эндпоинта /health
type HealthStatus struct {
	Status         string    `json:"status"`
	ActiveSessions int       `json:"active_sessions"`
	Timestamp      time.Time `json:"timestamp"`
}

// Server отдает служебные эндпоинты /health и /metrics
type Server struct {
	cfg     config.ServerConfig
	metrics *metrics.Metrics
	store   *storage.Store
}

// New создает служебный HTTP сервер
func New(cfg config.ServerConfig, m *metrics.Metrics, store *storage.Store) *Server {
	return &Server{
		cfg:     cfg,
		metrics: m,
		store:   store,
	}
}

// Run запускает HTTP сервер (блокирующий вызов)
func (s *Server) Run() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/metrics", s.handleMetrics)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      mux,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	log.Printf("Служебный сервер слушает на порту %d", s.cfg.Port)
	return srv.ListenAndServe()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	status := HealthStatus{
		Status:         "OK",
		ActiveSessions: s.store.Count(),
		Timestamp:      time.Now().UTC(),
	}

	writeJSON(w, status)
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	snapshot := s.metrics.GetSnapshot()
	writeJSON(w, &snapshot)
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Ошибка сериализации ответа: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
