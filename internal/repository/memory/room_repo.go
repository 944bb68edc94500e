// Package memory provides the in-memory repository implementations backing
// the planning engine. The engine is the in-memory authority of record for
// a single planning session; durability belongs to an external
// collaborator working from snapshots.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"conferenceplanner/internal/domain"
)

// RoomRepository is a mutex-guarded, name-keyed room store.
type RoomRepository struct {
	mu     sync.RWMutex
	byName map[string]*domain.Room
}

// NewRoomRepository returns an empty RoomRepository.
func NewRoomRepository() *RoomRepository {
	return &RoomRepository{byName: make(map[string]*domain.Room)}
}

// Create stores the room and assigns its ID. Room names are unique keys.
func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	if room == nil || room.Name == "" {
		return domain.ErrInvalidInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[room.Name]; ok {
		return domain.ErrDuplicateName
	}
	if room.ID == "" {
		room.ID = uuid.NewString()
	}
	r.byName[room.Name] = room
	return nil
}

// GetByName returns the room with the given name.
func (r *RoomRepository) GetByName(ctx context.Context, name string) (*domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.byName[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return room, nil
}

// List returns all rooms ordered by name.
func (r *RoomRepository) List(ctx context.Context) ([]*domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Room, 0, len(r.byName))
	for _, room := range r.byName {
		out = append(out, room)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
