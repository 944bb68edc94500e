package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"conferenceplanner/internal/domain"
)

// signupService layers attendee signups over the schedule. Its mutex keeps
// the personal-conflict check and the seat commit from interleaving with
// another signup for the same user.
type signupService struct {
	schedule         domain.ScheduleService
	registrationRepo domain.RegistrationRepository
	contextTimeout   time.Duration

	mu sync.Mutex
}

// NewSignupService creates a SignupService over the schedule and the
// account-side registration store.
func NewSignupService(schedule domain.ScheduleService, registrationRepo domain.RegistrationRepository, timeout time.Duration) domain.SignupService {
	return &signupService{
		schedule:         schedule,
		registrationRepo: registrationRepo,
		contextTimeout:   timeout,
	}
}

func (s *signupService) SignUp(ctx context.Context, userID string, userRoles []domain.Role, eventName string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	event, err := s.schedule.GetEvent(ctx, eventName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}

	if event.Type == domain.EventTypeVIPSocial && !domain.HasRole(userRoles, domain.RoleVIP) {
		return domain.ErrForbidden
	}
	if !event.HasRoomForAttendees() {
		return domain.ErrEventFull
	}

	target, err := s.schedule.EventInterval(ctx, eventName)
	if err != nil {
		return fmt.Errorf("resolve event interval: %w", err)
	}

	mine, err := s.registrationRepo.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("list registrations: %w", err)
	}
	for _, signedUp := range mine {
		booked, err := s.schedule.EventInterval(ctx, signedUp)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Stale registration for an event no longer scheduled; it
				// cannot conflict.
				continue
			}
			return fmt.Errorf("resolve event interval: %w", err)
		}
		if booked.Overlaps(target) {
			return domain.ErrScheduleConflict
		}
	}

	if err := s.registrationRepo.Add(ctx, userID, eventName); err != nil {
		if errors.Is(err, domain.ErrAlreadySignedUp) {
			return domain.ErrAlreadySignedUp
		}
		return fmt.Errorf("add registration: %w", err)
	}

	if err := s.schedule.AddAttendeeToEvent(ctx, userID, eventName); err != nil {
		// Keep both sides of the association in step.
		_ = s.registrationRepo.Remove(ctx, userID, eventName)
		return err
	}
	return nil
}

func (s *signupService) Cancel(ctx context.Context, userID, eventName string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.registrationRepo.Remove(ctx, userID, eventName); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("remove registration: %w", err)
	}

	// The event may already be gone from the schedule; the cancellation
	// still succeeded.
	if err := s.schedule.RemoveAttendeeFromEvent(ctx, userID, eventName); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("remove attendee: %w", err)
	}
	return nil
}

func (s *signupService) UserEvents(ctx context.Context, userID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.registrationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return events, nil
}

func (s *signupService) PurgeEvent(ctx context.Context, eventName string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.registrationRepo.PurgeEvent(ctx, eventName); err != nil {
		return fmt.Errorf("purge registrations: %w", err)
	}
	return nil
}
