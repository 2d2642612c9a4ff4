package screen

import (
	"sync"
	"time"
)

// Screen is one admin's view state: their list controller and modal
// orchestrator. All transitions for a screen run to completion under
// its lock, so no event observes a half-applied state.
type Screen struct {
	mu      sync.Mutex
	list    *ListController
	modal   *Orchestrator
	touched time.Time
}

// Update runs fn against the screen's controllers as a single atomic
// transition.
func (s *Screen) Update(fn func(list *ListController, modal *Orchestrator)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touched = time.Now()
	fn(s.list, s.modal)
}

// Store keeps one Screen per signed-in admin, keyed by user ID. Screens
// idle past the TTL are evicted by a background sweep; a later request
// from the same admin simply starts a fresh screen.
type Store struct {
	mu      sync.Mutex
	screens map[int64]*Screen
	ttl     time.Duration
}

// NewStore creates a screen store with the given idle TTL and starts
// the cleanup goroutine.
func NewStore(ttl time.Duration) *Store {
	st := &Store{
		screens: make(map[int64]*Screen),
		ttl:     ttl,
	}
	go st.cleanup()
	return st
}

// Get returns the screen for the given admin, creating it on first use.
func (st *Store) Get(userID int64) *Screen {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.screens[userID]
	if !ok {
		s = &Screen{
			list:    NewListController(),
			modal:   NewOrchestrator(),
			touched: time.Now(),
		}
		st.screens[userID] = s
	}
	return s
}

// cleanup runs periodically and removes screens idle past the TTL.
func (st *Store) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	for range ticker.C {
		st.mu.Lock()
		cutoff := time.Now().Add(-st.ttl)
		for id, s := range st.screens {
			s.mu.Lock()
			stale := s.touched.Before(cutoff)
			s.mu.Unlock()
			if stale {
				delete(st.screens, id)
			}
		}
		st.mu.Unlock()
	}
}
