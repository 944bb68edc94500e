package domain

import "context"

// RegistrationRepository stores which events each user is signed up for.
// This is the account-side record of attendee membership; the attendee
// list on the Event itself stays the engine's concern.
type RegistrationRepository interface {
	// Add records that userID is signed up for eventName. Returns
	// ErrAlreadySignedUp if the association already exists.
	Add(ctx context.Context, userID, eventName string) error
	// Remove deletes the association, ErrNotFound if it did not exist.
	Remove(ctx context.Context, userID, eventName string) error
	// ListByUser returns the event names userID is signed up for.
	ListByUser(ctx context.Context, userID string) ([]string, error)
	// PurgeEvent drops the association for every user, e.g. after the
	// event itself has been removed from the schedule.
	PurgeEvent(ctx context.Context, eventName string) error
}
