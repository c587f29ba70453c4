// Package toast holds the single transient notification of a view.
package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
)

// Toast is one notification banner.
type Toast struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Kind      Kind      `json:"kind"`
	ShownAt   time.Time `json:"shownAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Slot holds at most one toast. A new toast replaces the current one and
// expiry is checked when the slot is read.
type Slot struct {
	mu      sync.Mutex
	current *Toast
	ttl     time.Duration
	now     func() time.Time
}

// NewSlot creates an empty slot. A nil clock means time.Now.
func NewSlot(ttl time.Duration, now func() time.Time) *Slot {
	if now == nil {
		now = time.Now
	}
	return &Slot{ttl: ttl, now: now}
}

// Show replaces the current toast.
func (s *Slot) Show(message string, kind Kind) Toast {
	if kind != KindSuccess {
		kind = KindInfo
	}
	at := s.now()
	t := Toast{
		ID:        uuid.NewString(),
		Message:   message,
		Kind:      kind,
		ShownAt:   at,
		ExpiresAt: at.Add(s.ttl),
	}
	s.mu.Lock()
	s.current = &t
	s.mu.Unlock()
	return t
}

// Current returns the live toast, dropping it first if it has expired.
func (s *Slot) Current() (Toast, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Toast{}, false
	}
	if !s.now().Before(s.current.ExpiresAt) {
		s.current = nil
		return Toast{}, false
	}
	return *s.current, true
}

// Dismiss removes the current toast.
func (s *Slot) Dismiss() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}
