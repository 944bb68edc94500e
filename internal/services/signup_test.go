package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conferenceplanner/internal/domain"
	"conferenceplanner/internal/repository/memory"
)

func newSignupFixture(t *testing.T) (*fixture, domain.SignupService) {
	t.Helper()
	f := newFixture()
	signup := NewSignupService(f.schedule, memory.NewRegistrationRepository(), testTimeout)
	return f, signup
}

func TestSignUpHappyPathAndCapacity(t *testing.T) {
	f, signup := newSignupFixture(t)
	ctx := context.Background()
	f.addRoom(t, "R1", 5)
	f.addEvent(t, "E1", 1, domain.EventTypeTalk, "R1", span(10, 0, 11, 0))

	require.NoError(t, signup.SignUp(ctx, "u1", attendee, "E1"))

	events, err := signup.UserEvents(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"E1"}, events)

	ev, err := f.schedule.GetEvent(ctx, "E1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, ev.AttendeeIDs())

	assert.ErrorIs(t, signup.SignUp(ctx, "u1", attendee, "E1"), domain.ErrAlreadySignedUp)
	assert.ErrorIs(t, signup.SignUp(ctx, "u2", attendee, "E1"), domain.ErrEventFull)
	assert.ErrorIs(t, signup.SignUp(ctx, "u2", attendee, "Ghost"), domain.ErrNotFound)
}

func TestSignUpRejectsPersonalConflicts(t *testing.T) {
	f, signup := newSignupFixture(t)
	ctx := context.Background()
	f.addRoom(t, "R1", 5)
	f.addRoom(t, "R2", 5)
	f.addEvent(t, "Morning", 5, domain.EventTypeTalk, "R1", span(10, 0, 11, 0))
	f.addEvent(t, "Clash", 5, domain.EventTypeTalk, "R2", span(10, 30, 11, 30))
	f.addEvent(t, "Adjacent", 5, domain.EventTypeTalk, "R2", span(11, 30, 12, 30))

	require.NoError(t, signup.SignUp(ctx, "u1", attendee, "Morning"))
	assert.ErrorIs(t, signup.SignUp(ctx, "u1", attendee, "Clash"), domain.ErrScheduleConflict)
	require.NoError(t, signup.SignUp(ctx, "u1", attendee, "Adjacent"), "touching events do not conflict")

	// A rejected signup leaves no trace on either side.
	events, err := signup.UserEvents(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Morning", "Adjacent"}, events)
	clash, err := f.schedule.GetEvent(ctx, "Clash")
	require.NoError(t, err)
	assert.Empty(t, clash.AttendeeIDs())
}

func TestSignUpVIPSocialRequiresVIP(t *testing.T) {
	f, signup := newSignupFixture(t)
	ctx := context.Background()
	f.addRoom(t, "Lounge", 30)
	f.addEvent(t, "VIP Mixer", 10, domain.EventTypeVIPSocial, "Lounge", span(18, 0, 20, 0))

	err := signup.SignUp(ctx, "u1", attendee, "VIP Mixer")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	vip := []domain.Role{domain.RoleAttendee, domain.RoleVIP}
	require.NoError(t, signup.SignUp(ctx, "u1", vip, "VIP Mixer"))
}

func TestCancelSignup(t *testing.T) {
	f, signup := newSignupFixture(t)
	ctx := context.Background()
	f.addRoom(t, "R1", 5)
	f.addEvent(t, "E1", 1, domain.EventTypeTalk, "R1", span(10, 0, 11, 0))

	require.NoError(t, signup.SignUp(ctx, "u1", attendee, "E1"))
	require.NoError(t, signup.Cancel(ctx, "u1", "E1"))

	assert.ErrorIs(t, signup.Cancel(ctx, "u1", "E1"), domain.ErrNotFound)

	ev, err := f.schedule.GetEvent(ctx, "E1")
	require.NoError(t, err)
	assert.Empty(t, ev.AttendeeIDs())

	// The freed seat is available again.
	require.NoError(t, signup.SignUp(ctx, "u2", attendee, "E1"))
}

func TestPurgeEventAfterRemoval(t *testing.T) {
	f, signup := newSignupFixture(t)
	ctx := context.Background()
	f.addRoom(t, "R1", 5)
	f.addEvent(t, "E1", 5, domain.EventTypeTalk, "R1", span(10, 0, 11, 0))

	require.NoError(t, signup.SignUp(ctx, "u1", attendee, "E1"))
	require.NoError(t, signup.SignUp(ctx, "u2", attendee, "E1"))

	require.NoError(t, f.schedule.RemoveEvent(ctx, organizer, "E1"))
	require.NoError(t, signup.PurgeEvent(ctx, "E1"))

	for _, userID := range []string{"u1", "u2"} {
		events, err := signup.UserEvents(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, events)
	}

	// The freed slot no longer blocks the users' schedules.
	f.addEvent(t, "E2", 5, domain.EventTypeTalk, "R1", span(10, 0, 11, 0))
	require.NoError(t, signup.SignUp(ctx, "u1", attendee, "E2"))
}
