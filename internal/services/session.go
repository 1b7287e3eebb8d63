package services

import (
	"log"
	"sync"
	"time"

	"github.com/Narayanansankar/tirubot/internal/models"
)

// SessionStore manages per-user conversation state. An absent entry is
// indistinguishable from a never-seen user.
type SessionStore interface {
	Get(userID string) (*models.Session, bool)
	Create(userID, displayName string) *models.Session
	Delete(userID string)
	ActiveCount() int
}

// MemorySessionStore keeps sessions in a process-wide map and evicts
// entries after an idle timeout.
type MemorySessionStore struct {
	sessions    map[string]*models.Session
	mu          sync.RWMutex
	idleTimeout time.Duration
	ticker      *time.Ticker
	done        chan bool
}

// NewMemorySessionStore creates a session store. idleTimeout <= 0
// disables eviction entirely.
func NewMemorySessionStore(idleTimeout time.Duration) *MemorySessionStore {
	s := &MemorySessionStore{
		sessions:    make(map[string]*models.Session),
		idleTimeout: idleTimeout,
		done:        make(chan bool),
	}

	if idleTimeout > 0 {
		s.ticker = time.NewTicker(5 * time.Minute)
		go s.cleanupRoutine()
	}

	return s
}

func (s *MemorySessionStore) Get(userID string) (*models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, exists := s.sessions[userID]
	if exists {
		session.LastActive = time.Now()
	}
	return session, exists
}

func (s *MemorySessionStore) Create(userID, displayName string) *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := &models.Session{
		UserID:      userID,
		DisplayName: displayName,
		MenuLevel:   models.LevelLanguageSelect,
		CreatedAt:   time.Now(),
		LastActive:  time.Now(),
	}
	s.sessions[userID] = session
	log.Printf("Session created for %s", userID)

	return session
}

func (s *MemorySessionStore) Delete(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// ActiveCount returns the number of live sessions (for monitoring).
func (s *MemorySessionStore) ActiveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Stop halts the eviction routine (for graceful shutdown).
func (s *MemorySessionStore) Stop() {
	if s.ticker != nil {
		s.done <- true
	}
}

func (s *MemorySessionStore) cleanupRoutine() {
	for {
		select {
		case <-s.ticker.C:
			s.cleanupIdleSessions()
		case <-s.done:
			s.ticker.Stop()
			return
		}
	}
}

func (s *MemorySessionStore) cleanupIdleSessions() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	cleaned := 0
	for id, session := range s.sessions {
		if now.Sub(session.LastActive) > s.idleTimeout {
			delete(s.sessions, id)
			cleaned++
		}
	}
	if cleaned > 0 {
		log.Printf("Cleaned up %d idle session(s) (timeout: %v)", cleaned, s.idleTimeout)
	}
}

var _ SessionStore = (*MemorySessionStore)(nil)
