package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"conferenceplanner/internal/domain"
)

// scheduleService orchestrates the event repository and the rooms'
// schedules. The two containers duplicate the "which events exist"
// knowledge, so every mutation runs as a single-writer transaction under
// mu: an event name is in the repository iff it occupies a slot in exactly
// one room's schedule.
type scheduleService struct {
	roomRepo       domain.RoomRepository
	eventRepo      domain.EventRepository
	logger         *slog.Logger
	contextTimeout time.Duration

	mu sync.RWMutex

	lmu       sync.Mutex
	listeners []domain.EntityCreatedListener
}

// NewScheduleService creates a ScheduleService over the given repositories.
// A nil logger falls back to slog.Default().
func NewScheduleService(roomRepo domain.RoomRepository, eventRepo domain.EventRepository, logger *slog.Logger, timeout time.Duration) domain.ScheduleService {
	if logger == nil {
		logger = slog.Default()
	}
	return &scheduleService{
		roomRepo:       roomRepo,
		eventRepo:      eventRepo,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *scheduleService) CreateEvent(name string, capacity int, eventType domain.EventType) (*domain.Event, error) {
	return domain.NewEvent(name, capacity, eventType)
}

func (s *scheduleService) AddEvent(ctx context.Context, actorRoles []domain.Role, interval domain.Interval, roomName string, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if event == nil {
		return domain.ErrInvalidInput
	}
	if err := s.addEvent(ctx, actorRoles, interval, roomName, event); err != nil {
		return err
	}

	s.logger.Debug("event scheduled", "event", event.Name, "room", roomName)
	s.notifyCreated(event.Name)
	return nil
}

func (s *scheduleService) addEvent(ctx context.Context, actorRoles []domain.Role, interval domain.Interval, roomName string, event *domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !domain.HasRole(actorRoles, domain.RoleOrganizer) {
		return domain.ErrForbidden
	}

	room, err := s.roomRepo.GetByName(ctx, roomName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get room: %w", err)
	}

	if room.Capacity < event.Capacity {
		return domain.ErrCapacityExceeded
	}

	if _, err := s.eventRepo.GetByName(ctx, event.Name); err == nil {
		return domain.ErrDuplicateName
	} else if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("get event: %w", err)
	}

	if !room.ScheduleEvent(interval, event.Name) {
		return domain.ErrScheduleConflict
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		// Undo the booking so the room schedule and the repository stay
		// consistent.
		room.UnscheduleEvent(event.Name)
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (s *scheduleService) RemoveEvent(ctx context.Context, actorRoles []domain.Role, eventName string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !domain.HasRole(actorRoles, domain.RoleOrganizer) {
		return domain.ErrForbidden
	}

	if _, err := s.eventRepo.GetByName(ctx, eventName); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}

	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list rooms: %w", err)
	}

	var host *domain.Room
	var slot domain.Interval
	for _, room := range rooms {
		if interval, ok := room.EventInterval(eventName); ok {
			host = room
			slot = interval
			break
		}
	}
	if host == nil || !host.UnscheduleEvent(eventName) {
		// The event is in the repository but booked nowhere. Keep it so
		// the inconsistency stays visible instead of silently widening.
		s.logger.Warn("event missing from every room schedule", "event", eventName)
		return fmt.Errorf("event %q is not booked in any room: %w", eventName, domain.ErrNotFound)
	}

	if err := s.eventRepo.Delete(ctx, eventName); err != nil {
		host.ScheduleEvent(slot, eventName)
		return fmt.Errorf("delete event: %w", err)
	}

	s.logger.Debug("event removed", "event", eventName, "room", host.Name)
	return nil
}

func (s *scheduleService) AddSpeakerToEvent(ctx context.Context, actorRoles, speakerRoles []domain.Role, speakerID, eventName string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !domain.HasRole(actorRoles, domain.RoleOrganizer) || !domain.HasRole(speakerRoles, domain.RoleSpeaker) {
		return domain.ErrForbidden
	}

	event, err := s.eventRepo.GetByName(ctx, eventName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}

	if event.HasSpeaker(speakerID) {
		return domain.ErrAlreadySpeaking
	}
	if !event.HasSpeakerSlot() {
		return domain.ErrNoSpeakerSlot
	}

	interval, ok, err := s.eventIntervalLocked(ctx, eventName)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("event %q is not booked in any room: %w", eventName, domain.ErrNotFound)
	}

	// Speaker exclusivity: the speaker must not already appear on any
	// event whose interval overlaps this one, anywhere in the system.
	overlapping, err := s.eventsOverlappingLocked(ctx, interval)
	if err != nil {
		return err
	}
	for _, otherName := range overlapping {
		if otherName == eventName {
			continue
		}
		other, err := s.eventRepo.GetByName(ctx, otherName)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				s.logger.Warn("scheduled event missing from repository", "event", otherName)
				continue
			}
			return fmt.Errorf("get event: %w", err)
		}
		if other.HasSpeaker(speakerID) {
			return domain.ErrSpeakerBusy
		}
	}

	if !event.AddSpeaker(speakerID) {
		return domain.ErrNoSpeakerSlot
	}

	s.logger.Debug("speaker assigned", "event", eventName, "speaker", speakerID)
	return nil
}

func (s *scheduleService) UpdateEventCapacity(ctx context.Context, actorRoles []domain.Role, eventName string, capacity int) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !domain.HasRole(actorRoles, domain.RoleOrganizer) {
		return domain.ErrForbidden
	}
	if capacity < 0 {
		return domain.ErrInvalidInput
	}

	event, err := s.eventRepo.GetByName(ctx, eventName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}

	host, err := s.roomForEventLocked(ctx, eventName)
	if err != nil {
		return err
	}
	if host == nil {
		return fmt.Errorf("event %q is not booked in any room: %w", eventName, domain.ErrNotFound)
	}

	if host.Capacity < capacity {
		return domain.ErrCapacityExceeded
	}
	if len(event.Attendees) > capacity {
		return domain.ErrCapacityExceeded
	}

	event.Capacity = capacity
	event.UpdatedAt = time.Now()
	return nil
}

func (s *scheduleService) AddAttendeeToEvent(ctx context.Context, userID, eventName string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	event, err := s.eventRepo.GetByName(ctx, eventName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}

	if event.HasAttendee(userID) {
		return domain.ErrAlreadySignedUp
	}
	if !event.AddAttendee(userID) {
		return domain.ErrEventFull
	}
	return nil
}

func (s *scheduleService) RemoveAttendeeFromEvent(ctx context.Context, userID, eventName string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	event, err := s.eventRepo.GetByName(ctx, eventName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}

	if !event.RemoveAttendee(userID) {
		return domain.ErrNotFound
	}
	return nil
}

func (s *scheduleService) GetEvent(ctx context.Context, eventName string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.mu.RLock()
	defer s.mu.RUnlock()

	event, err := s.eventRepo.GetByName(ctx, eventName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *scheduleService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.mu.RLock()
	defer s.mu.RUnlock()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *scheduleService) EventNames(ctx context.Context) ([]string, error) {
	events, err := s.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(events))
	for _, event := range events {
		names = append(names, event.Name)
	}
	return names, nil
}

func (s *scheduleService) EventInterval(ctx context.Context, eventName string) (domain.Interval, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.mu.RLock()
	defer s.mu.RUnlock()

	interval, ok, err := s.eventIntervalLocked(ctx, eventName)
	if err != nil {
		return domain.Interval{}, err
	}
	if !ok {
		return domain.Interval{}, domain.ErrNotFound
	}
	return interval, nil
}

func (s *scheduleService) RoomForEvent(ctx context.Context, eventName string) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.mu.RLock()
	defer s.mu.RUnlock()

	host, err := s.roomForEventLocked(ctx, eventName)
	if err != nil {
		return nil, err
	}
	if host == nil {
		return nil, domain.ErrNotFound
	}
	return host, nil
}

func (s *scheduleService) EventsOverlapping(ctx context.Context, interval domain.Interval) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.eventsOverlappingLocked(ctx, interval)
}

func (s *scheduleService) SpeakerEvents(ctx context.Context, speakerID string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.mu.RLock()
	defer s.mu.RUnlock()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	out := []*domain.Event{}
	for _, event := range events {
		if event.HasSpeaker(speakerID) {
			out = append(out, event)
		}
	}
	return out, nil
}

func (s *scheduleService) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.mu.RLock()
	defer s.mu.RUnlock()

	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	snap := &domain.Snapshot{TakenAt: time.Now()}
	for _, room := range rooms {
		schedule := make(map[string]domain.Interval, len(room.Schedule))
		for name, interval := range room.Schedule {
			schedule[name] = interval
		}
		amenities := make([]domain.Amenity, len(room.Amenities))
		copy(amenities, room.Amenities)
		snap.Rooms = append(snap.Rooms, domain.RoomSnapshot{
			ID:        room.ID,
			Name:      room.Name,
			Capacity:  room.Capacity,
			Amenities: amenities,
			Schedule:  schedule,
		})
	}
	for _, event := range events {
		snap.Events = append(snap.Events, domain.EventSnapshot{
			ID:        event.ID,
			Name:      event.Name,
			Type:      event.Type,
			Capacity:  event.Capacity,
			Speakers:  event.SpeakerIDs(),
			Attendees: event.AttendeeIDs(),
		})
	}
	return snap, nil
}

func (s *scheduleService) Subscribe(l domain.EntityCreatedListener) {
	s.lmu.Lock()
	defer s.lmu.Unlock()
	s.listeners = append(s.listeners, l)
}

// notifyCreated fires the registered listeners after a successful commit.
// Listeners run synchronously and must not call back into the service.
func (s *scheduleService) notifyCreated(name string) {
	s.lmu.Lock()
	listeners := make([]domain.EntityCreatedListener, len(s.listeners))
	copy(listeners, s.listeners)
	s.lmu.Unlock()

	for _, l := range listeners {
		l(name)
	}
}

// eventIntervalLocked scans every room for eventName's slot. Callers hold
// at least the read lock.
func (s *scheduleService) eventIntervalLocked(ctx context.Context, eventName string) (domain.Interval, bool, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return domain.Interval{}, false, fmt.Errorf("list rooms: %w", err)
	}
	for _, room := range rooms {
		if interval, ok := room.EventInterval(eventName); ok {
			return interval, true, nil
		}
	}
	return domain.Interval{}, false, nil
}

// roomForEventLocked returns the room hosting eventName, nil if none does.
// Callers hold at least the read lock.
func (s *scheduleService) roomForEventLocked(ctx context.Context, eventName string) (*domain.Room, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	for _, room := range rooms {
		if room.HostsEvent(eventName) {
			return room, nil
		}
	}
	return nil, nil
}

// eventsOverlappingLocked scans all rooms' schedules for slots overlapping
// interval. Linear in the total scheduled event count. Callers hold at
// least the read lock.
func (s *scheduleService) eventsOverlappingLocked(ctx context.Context, interval domain.Interval) ([]string, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	names := []string{}
	for _, room := range rooms {
		for _, eventName := range room.EventNames() {
			booked, _ := room.EventInterval(eventName)
			if booked.Overlaps(interval) {
				names = append(names, eventName)
			}
		}
	}
	return names, nil
}
