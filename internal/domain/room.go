package domain

import (
	"context"
	"sort"
	"time"

	"github.com/samber/lo"
)

// Room represents a named, capacity-bounded venue. The schedule maps event
// names to the intervals they occupy; the Room never owns Event objects,
// only the name-keyed slots. No two entries in one Room's schedule overlap.
type Room struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Capacity  int                 `json:"capacity"`
	Amenities []Amenity           `json:"amenities"`
	Schedule  map[string]Interval `json:"schedule"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// NewRoom returns a Room with an empty schedule. ID is set by the
// repository on create.
func NewRoom(name string, capacity int) *Room {
	now := time.Now()
	return &Room{
		Name:      name,
		Capacity:  capacity,
		Schedule:  make(map[string]Interval),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ScheduleEvent books eventName into this room for the given interval. It
// returns false and makes no change if the interval overlaps any existing
// entry. Linear scan over the current schedule.
func (r *Room) ScheduleEvent(interval Interval, eventName string) bool {
	for _, booked := range r.Schedule {
		if booked.Overlaps(interval) {
			return false
		}
	}
	r.Schedule[eventName] = interval
	r.UpdatedAt = time.Now()
	return true
}

// UnscheduleEvent removes eventName's slot, false if it was not booked here.
func (r *Room) UnscheduleEvent(eventName string) bool {
	if _, ok := r.Schedule[eventName]; !ok {
		return false
	}
	delete(r.Schedule, eventName)
	r.UpdatedAt = time.Now()
	return true
}

// EventInterval returns the interval eventName occupies in this room.
func (r *Room) EventInterval(eventName string) (Interval, bool) {
	interval, ok := r.Schedule[eventName]
	return interval, ok
}

// HostsEvent reports whether eventName is booked in this room.
func (r *Room) HostsEvent(eventName string) bool {
	_, ok := r.Schedule[eventName]
	return ok
}

// EventNames returns the names of all events booked in this room, in
// alphabetical order.
func (r *Room) EventNames() []string {
	names := lo.Keys(r.Schedule)
	sort.Strings(names)
	return names
}

// AddAmenity records an amenity, false if the room already has it.
func (r *Room) AddAmenity(a Amenity) bool {
	if lo.Contains(r.Amenities, a) {
		return false
	}
	r.Amenities = append(r.Amenities, a)
	r.UpdatedAt = time.Now()
	return true
}

// HasAllAmenities reports whether this room's amenity set is a superset of
// required.
func (r *Room) HasAllAmenities(required []Amenity) bool {
	return lo.Every(r.Amenities, required)
}

// RoomRepository defines the interface for room storage. Create assigns
// the stable ID and rejects a duplicate name with ErrDuplicateName;
// GetByName returns ErrNotFound for an unknown name.
type RoomRepository interface {
	Create(ctx context.Context, room *Room) error
	GetByName(ctx context.Context, name string) (*Room, error)
	List(ctx context.Context) ([]*Room, error)
}
