package cart

import (
	"context"
	"sync"
	"time"
)

// Store keeps one cart per browsing session, keyed by the opaque session
// ID the client sends on every request. Carts are created on first use
// and swept after a period of inactivity.
type Store struct {
	mu    sync.RWMutex
	carts map[string]*entry
	ttl   time.Duration
}

type entry struct {
	cart    *Cart
	touched time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		carts: make(map[string]*entry),
		ttl:   ttl,
	}
}

func (s *Store) Get(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.carts[sessionID]
	if !ok {
		e = &entry{cart: New()}
		s.carts[sessionID] = e
	}
	e.touched = time.Now()
	return e.cart
}

func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.carts)
}

func (s *Store) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, e := range s.carts {
		if now.Sub(e.touched) > s.ttl {
			delete(s.carts, id)
		}
	}
}

// StartSweeper drops idle carts in the background until ctx is canceled.
func (s *Store) StartSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.sweep(now)
		}
	}
}
