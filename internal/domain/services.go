package domain

import "context"

// RoomDirectoryService manages the repository of rooms: role-gated
// creation, exact-name lookup, and amenity-based filtering. Fuzzy name
// matching is an external collaborator's job, fed by the entity-created
// notifications.
type RoomDirectoryService interface {
	// CreateRoom is pure construction: the room is not registered.
	CreateRoom(name string, capacity int) *Room
	// AddRoom stores the room. The actor needs the organizer role and the
	// room name must be free.
	AddRoom(ctx context.Context, actorRoles []Role, room *Room) error
	GetRoom(ctx context.Context, name string) (*Room, error)
	ListRooms(ctx context.Context) ([]*Room, error)
	RoomNames(ctx context.Context) ([]string, error)
	// FindRoomsWithAmenities returns the names of rooms whose amenity set
	// is a superset of required.
	FindRoomsWithAmenities(ctx context.Context, required []Amenity) ([]string, error)
	// Subscribe registers a listener fired with each new room's name.
	Subscribe(l EntityCreatedListener)
}

// ScheduleService is the orchestrator over the event repository and the
// rooms' schedules. Mutations validate authorization and invariants first;
// on success both containers are updated atomically, so "event in the
// repository" always means "event booked in exactly one room".
type ScheduleService interface {
	// CreateEvent builds an unscheduled event of the given type. It does
	// not register the event anywhere.
	CreateEvent(name string, capacity int, eventType EventType) (*Event, error)
	// AddEvent books the event into the named room for the interval and
	// commits it to the repository.
	AddEvent(ctx context.Context, actorRoles []Role, interval Interval, roomName string, event *Event) error
	// RemoveEvent unbooks the event from its room and deletes it from the
	// repository. Attendee-side records kept by the account subsystem must
	// be retracted by the caller (see SignupService.PurgeEvent).
	RemoveEvent(ctx context.Context, actorRoles []Role, eventName string) error
	// AddSpeakerToEvent assigns a speaker, enforcing the variant's slot
	// policy and speaker exclusivity across every overlapping event.
	AddSpeakerToEvent(ctx context.Context, actorRoles, speakerRoles []Role, speakerID, eventName string) error
	// UpdateEventCapacity changes an event's capacity within the bounds
	// set by the hosting room and the current attendee count.
	UpdateEventCapacity(ctx context.Context, actorRoles []Role, eventName string, capacity int) error

	// AddAttendeeToEvent seats userID, re-checking the free-seat invariant
	// under the engine's write lock. RemoveAttendeeFromEvent is its
	// inverse. Both are intended for the signup coordinator.
	AddAttendeeToEvent(ctx context.Context, userID, eventName string) error
	RemoveAttendeeFromEvent(ctx context.Context, userID, eventName string) error

	GetEvent(ctx context.Context, eventName string) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	EventNames(ctx context.Context) ([]string, error)
	// EventInterval resolves the interval the named event occupies.
	EventInterval(ctx context.Context, eventName string) (Interval, error)
	// RoomForEvent resolves the room currently hosting the named event.
	RoomForEvent(ctx context.Context, eventName string) (*Room, error)
	// EventsOverlapping returns the names of all scheduled events whose
	// interval overlaps the given one. Linear in the total event count.
	EventsOverlapping(ctx context.Context, interval Interval) ([]string, error)
	// SpeakerEvents returns the events the speaker is assigned to.
	SpeakerEvents(ctx context.Context, speakerID string) ([]*Event, error)
	// Snapshot deep-copies the full scheduling state for an external
	// persistence collaborator.
	Snapshot(ctx context.Context) (*Snapshot, error)
	// Subscribe registers a listener fired with each new event's name.
	Subscribe(l EntityCreatedListener)
}

// SignupService coordinates attendee signups on top of the schedule:
// an attendee's personal schedule stays conflict-free and event capacity
// holds.
type SignupService interface {
	// SignUp signs userID up for the event. VIP socials require the vip
	// role; the event must have a free seat and must not overlap any event
	// the user is already signed up for.
	SignUp(ctx context.Context, userID string, userRoles []Role, eventName string) error
	// Cancel withdraws the signup; succeeds iff the association existed.
	Cancel(ctx context.Context, userID, eventName string) error
	// UserEvents returns the event names userID is signed up for.
	UserEvents(ctx context.Context, userID string) ([]string, error)
	// PurgeEvent retracts every user's signup record for a removed event.
	PurgeEvent(ctx context.Context, eventName string) error
}
