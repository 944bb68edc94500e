package domain

import "time"

// Snapshot is a deep copy of the engine's full scheduling state. The
// engine performs no I/O itself; an external collaborator may serialize a
// Snapshot to provide durability.
type Snapshot struct {
	TakenAt time.Time       `json:"taken_at"`
	Rooms   []RoomSnapshot  `json:"rooms"`
	Events  []EventSnapshot `json:"events"`
}

// RoomSnapshot captures one room and its name-keyed schedule.
type RoomSnapshot struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Capacity  int                 `json:"capacity"`
	Amenities []Amenity           `json:"amenities"`
	Schedule  map[string]Interval `json:"schedule"`
}

// EventSnapshot captures one event with its speaker and attendee lists.
type EventSnapshot struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      EventType `json:"type"`
	Capacity  int       `json:"capacity"`
	Speakers  []string  `json:"speakers"`
	Attendees []string  `json:"attendees"`
}
