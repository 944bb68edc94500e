package domain

import (
	"context"
	"time"

	"github.com/samber/lo"
)

// EventType tags the variant of a conference event. The set is closed;
// variants differ only in how many speakers they accept.
type EventType string

const (
	EventTypeTalk      EventType = "talk"
	EventTypePanel     EventType = "panel"
	EventTypeParty     EventType = "party"
	EventTypeVIPSocial EventType = "vip_social"
)

// speakersUnbounded marks a variant with no speaker limit.
const speakersUnbounded = -1

// speakerLimits is the per-variant speaker-slot policy: a Talk has a
// single slot, a Party takes no speakers at all.
var speakerLimits = map[EventType]int{
	EventTypeTalk:      1,
	EventTypePanel:     speakersUnbounded,
	EventTypeParty:     0,
	EventTypeVIPSocial: speakersUnbounded,
}

// Valid reports whether t is one of the known event types.
func (t EventType) Valid() bool {
	_, ok := speakerLimits[t]
	return ok
}

// Event represents a bookable conference event. Name doubles as the unique
// lookup key; ID is a stable generated identifier set by the repository on
// create. An Event starts unscheduled and only enters the repository
// through the schedule service.
type Event struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      EventType `json:"type"`
	Capacity  int       `json:"capacity"`
	Speakers  []string  `json:"speakers"`
	Attendees []string  `json:"attendees"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewEvent constructs the event variant for the given type tag. It is the
// only construction path; unknown types, blank names, and negative
// capacities are rejected with ErrInvalidInput. The new event is not
// registered anywhere.
func NewEvent(name string, capacity int, eventType EventType) (*Event, error) {
	if name == "" || capacity < 0 || !eventType.Valid() {
		return nil, ErrInvalidInput
	}
	now := time.Now()
	return &Event{
		Name:      name,
		Type:      eventType,
		Capacity:  capacity,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// AddSpeaker assigns a speaker if the variant's slot policy permits another
// and the id is not already listed. A Party refuses every assignment.
func (e *Event) AddSpeaker(id string) bool {
	if e.HasSpeaker(id) {
		return false
	}
	limit := speakerLimits[e.Type]
	if limit != speakersUnbounded && len(e.Speakers) >= limit {
		return false
	}
	e.Speakers = append(e.Speakers, id)
	e.UpdatedAt = time.Now()
	return true
}

// HasSpeakerSlot reports whether the variant's policy permits another
// speaker assignment.
func (e *Event) HasSpeakerSlot() bool {
	limit := speakerLimits[e.Type]
	return limit == speakersUnbounded || len(e.Speakers) < limit
}

// HasSpeaker reports whether id is assigned to speak at this event.
func (e *Event) HasSpeaker(id string) bool {
	return lo.Contains(e.Speakers, id)
}

// SpeakerIDs returns a copy of the assigned speaker ids. An event with no
// speaker yet yields an empty list, never a sentinel entry.
func (e *Event) SpeakerIDs() []string {
	out := make([]string, len(e.Speakers))
	copy(out, e.Speakers)
	return out
}

// HasRoomForAttendees reports whether the event still has a free seat.
func (e *Event) HasRoomForAttendees() bool {
	return len(e.Attendees) < e.Capacity
}

// HasAttendee reports whether id is on the attendee list.
func (e *Event) HasAttendee(id string) bool {
	return lo.Contains(e.Attendees, id)
}

// AddAttendee adds id to the attendee list if a seat is free and the id is
// not already present.
func (e *Event) AddAttendee(id string) bool {
	if !e.HasRoomForAttendees() || e.HasAttendee(id) {
		return false
	}
	e.Attendees = append(e.Attendees, id)
	e.UpdatedAt = time.Now()
	return true
}

// RemoveAttendee removes id from the attendee list, false if absent.
func (e *Event) RemoveAttendee(id string) bool {
	for i, a := range e.Attendees {
		if a == id {
			e.Attendees = append(e.Attendees[:i], e.Attendees[i+1:]...)
			e.UpdatedAt = time.Now()
			return true
		}
	}
	return false
}

// AttendeeIDs returns a copy of the attendee list.
func (e *Event) AttendeeIDs() []string {
	out := make([]string, len(e.Attendees))
	copy(out, e.Attendees)
	return out
}

// EventRepository defines the interface for event storage. Create assigns
// the stable ID and rejects a duplicate name with ErrDuplicateName;
// lookups return ErrNotFound.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByName(ctx context.Context, name string) (*Event, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]*Event, error)
}
