package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"conferenceplanner/internal/domain"
)

// EventRepository is a mutex-guarded, name-keyed event store. It is the
// canonical owner of all Event entities; rooms only hold name-keyed
// schedule slots.
type EventRepository struct {
	mu     sync.RWMutex
	byName map[string]*domain.Event
}

// NewEventRepository returns an empty EventRepository.
func NewEventRepository() *EventRepository {
	return &EventRepository{byName: make(map[string]*domain.Event)}
}

// Create stores the event and assigns its ID. Event names are unique keys.
func (r *EventRepository) Create(ctx context.Context, event *domain.Event) error {
	if event == nil || event.Name == "" {
		return domain.ErrInvalidInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[event.Name]; ok {
		return domain.ErrDuplicateName
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	r.byName[event.Name] = event
	return nil
}

// GetByName returns the event with the given name.
func (r *EventRepository) GetByName(ctx context.Context, name string) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	event, ok := r.byName[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return event, nil
}

// Delete removes the event with the given name.
func (r *EventRepository) Delete(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[name]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byName, name)
	return nil
}

// List returns all events ordered by name.
func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Event, 0, len(r.byName))
	for _, event := range r.byName {
		out = append(out, event)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
