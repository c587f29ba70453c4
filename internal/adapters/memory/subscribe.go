package memory

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// Subscribe registers a listener for change events. The returned channel is
// closed when ctx is done. A subscriber that falls behind misses events;
// writers never wait on it.
func (s *Store) Subscribe(ctx context.Context) <-chan domain.ChangeEvent {
	ch := make(chan domain.ChangeEvent, subscriberBuffer)

	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	s.subMu.Unlock()

	go func() {
		<-ctx.Done()
		s.subMu.Lock()
		delete(s.subs, id)
		close(ch)
		s.subMu.Unlock()
	}()

	return ch
}

func (s *Store) publish(kind domain.ChangeKind, ids []string) {
	evt := domain.ChangeEvent{Kind: kind, IDs: ids, At: s.now()}

	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- evt:
		default:
		}
	}
}
