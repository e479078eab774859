package review

import (
	"context"
	"sync"
	"time"

	"github.com/adrienb/vocabflash/internal/logger"
)

// Store keeps active sessions in memory. Sessions are transient by design;
// grades are durable the moment they commit, so losing a session only loses
// queue position.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	log      *logger.Logger
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		log:      logger.Default().WithPrefix("session-store"),
	}
}

func (st *Store) Put(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID()] = s
}

func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep drops sessions idle longer than the TTL and returns how many went.
func (st *Store) Sweep(now time.Time) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		if now.Sub(s.IdleSince()) > st.ttl {
			delete(st.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		st.log.Debug("swept %d expired sessions, %d remain", removed, len(st.sessions))
	}
	return removed
}

// StartSweeper runs Sweep periodically until the context is cancelled.
func (st *Store) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		st.log.Debug("sweeper started, interval=%s, ttl=%s", interval, st.ttl)
		for {
			select {
			case <-ctx.Done():
				st.log.Debug("sweeper stopped")
				return
			case now := <-ticker.C:
				st.Sweep(now)
			}
		}
	}()
}
