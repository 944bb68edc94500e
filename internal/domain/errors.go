package domain

import "errors"

// Sentinel errors for the planning engine. Validation rejections are
// expected, user-correctable conditions; callers match them with
// errors.Is. ErrNotFound is the recoverable "referenced entity truly
// absent" kind.
var (
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidInput     = errors.New("invalid input")
	ErrDuplicateName    = errors.New("name already in use")
	ErrScheduleConflict = errors.New("time slot conflicts with an existing event")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrEventFull        = errors.New("event is at capacity")
	ErrNoSpeakerSlot    = errors.New("event cannot take another speaker")
	ErrAlreadySpeaking  = errors.New("speaker already assigned to this event")
	ErrSpeakerBusy      = errors.New("speaker has an overlapping engagement")
	ErrAlreadySignedUp  = errors.New("already signed up for this event")
)
