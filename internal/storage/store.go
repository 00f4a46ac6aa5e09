package storage

import (
	"strconv"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"hr-interview-bot/internal/interview"
)

const (
	sessionTTL      = 24 * time.Hour
	cleanupInterval = 1 * time.Hour
)

// Store хранит сессии интервью в памяти процесса.
// Неактивные сессии вытесняются по TTL. Ничего не переживает рестарт.
type Store struct {
	engine *interview.Engine
	cache  *cache.Cache
	mu     sync.Mutex
}

// NewStore создает хранилище сессий
func NewStore(engine *interview.Engine) *Store {
	return &Store{
		engine: engine,
		cache:  cache.New(sessionTTL, cleanupInterval),
	}
}

// GetOrCreate возвращает сессию чата, создавая новую при необходимости.
// Обращение продлевает время жизни сессии.
func (s *Store) GetOrCreate(chatID int64) *interview.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strconv.FormatInt(chatID, 10)
	if cached, found := s.cache.Get(key); found {
		session := cached.(*interview.Session)
		s.cache.Set(key, session, sessionTTL)
		return session
	}

	session := s.engine.NewSession()
	s.cache.Set(key, session, sessionTTL)
	return session
}

// Reset возвращает сессию чата в исходное состояние
func (s *Store) Reset(chatID int64) *interview.Session {
	session := s.GetOrCreate(chatID)
	s.engine.Reset(session)
	return session
}

// Delete удаляет сессию чата
func (s *Store) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Delete(strconv.FormatInt(chatID, 10))
}

// Count возвращает количество активных сессий
func (s *Store) Count() int {
	return s.cache.ItemCount()
}
