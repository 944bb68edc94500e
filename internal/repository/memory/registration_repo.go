package memory

import (
	"context"
	"sync"

	"github.com/samber/lo"

	"conferenceplanner/internal/domain"
)

// RegistrationRepository keeps the per-user record of event signups.
type RegistrationRepository struct {
	mu     sync.RWMutex
	byUser map[string][]string
}

// NewRegistrationRepository returns an empty RegistrationRepository.
func NewRegistrationRepository() *RegistrationRepository {
	return &RegistrationRepository{byUser: make(map[string][]string)}
}

// Add records that userID is signed up for eventName.
func (r *RegistrationRepository) Add(ctx context.Context, userID, eventName string) error {
	if userID == "" || eventName == "" {
		return domain.ErrInvalidInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if lo.Contains(r.byUser[userID], eventName) {
		return domain.ErrAlreadySignedUp
	}
	r.byUser[userID] = append(r.byUser[userID], eventName)
	return nil
}

// Remove deletes the association between userID and eventName.
func (r *RegistrationRepository) Remove(ctx context.Context, userID, eventName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	events := r.byUser[userID]
	for i, name := range events {
		if name == eventName {
			r.byUser[userID] = append(events[:i], events[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ListByUser returns the event names userID is signed up for, in signup
// order.
func (r *RegistrationRepository) ListByUser(ctx context.Context, userID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := r.byUser[userID]
	out := make([]string, len(events))
	copy(out, events)
	return out, nil
}

// PurgeEvent drops eventName from every user's signup record.
func (r *RegistrationRepository) PurgeEvent(ctx context.Context, eventName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for userID, events := range r.byUser {
		r.byUser[userID] = lo.Filter(events, func(name string, _ int) bool {
			return name != eventName
		})
	}
	return nil
}
