package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"conferenceplanner/internal/domain"
)

type roomDirectoryService struct {
	roomRepo       domain.RoomRepository
	contextTimeout time.Duration

	lmu       sync.Mutex
	listeners []domain.EntityCreatedListener
}

// NewRoomDirectoryService creates a RoomDirectoryService backed by the
// given repository.
func NewRoomDirectoryService(roomRepo domain.RoomRepository, timeout time.Duration) domain.RoomDirectoryService {
	return &roomDirectoryService{
		roomRepo:       roomRepo,
		contextTimeout: timeout,
	}
}

func (s *roomDirectoryService) CreateRoom(name string, capacity int) *domain.Room {
	return domain.NewRoom(name, capacity)
}

func (s *roomDirectoryService) AddRoom(ctx context.Context, actorRoles []domain.Role, room *domain.Room) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if room == nil {
		return domain.ErrInvalidInput
	}
	if !domain.HasRole(actorRoles, domain.RoleOrganizer) {
		return domain.ErrForbidden
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		if errors.Is(err, domain.ErrDuplicateName) || errors.Is(err, domain.ErrInvalidInput) {
			return err
		}
		return fmt.Errorf("create room: %w", err)
	}

	s.notifyCreated(room.Name)
	return nil
}

func (s *roomDirectoryService) GetRoom(ctx context.Context, name string) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	room, err := s.roomRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get room: %w", err)
	}
	return room, nil
}

func (s *roomDirectoryService) ListRooms(ctx context.Context) ([]*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	if rooms == nil {
		rooms = []*domain.Room{}
	}
	return rooms, nil
}

func (s *roomDirectoryService) RoomNames(ctx context.Context) ([]string, error) {
	rooms, err := s.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(rooms))
	for _, room := range rooms {
		names = append(names, room.Name)
	}
	return names, nil
}

func (s *roomDirectoryService) FindRoomsWithAmenities(ctx context.Context, required []domain.Amenity) ([]string, error) {
	rooms, err := s.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	names := []string{}
	for _, room := range rooms {
		if room.HasAllAmenities(required) {
			names = append(names, room.Name)
		}
	}
	return names, nil
}

func (s *roomDirectoryService) Subscribe(l domain.EntityCreatedListener) {
	s.lmu.Lock()
	defer s.lmu.Unlock()
	s.listeners = append(s.listeners, l)
}

// notifyCreated fires the registered listeners after a successful commit.
// Listeners run synchronously and must not call back into the service.
func (s *roomDirectoryService) notifyCreated(name string) {
	s.lmu.Lock()
	listeners := make([]domain.EntityCreatedListener, len(s.listeners))
	copy(listeners, s.listeners)
	s.lmu.Unlock()

	for _, l := range listeners {
		l(name)
	}
}
