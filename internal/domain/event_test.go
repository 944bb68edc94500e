package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEventValidation(t *testing.T) {
	ev, err := NewEvent("Opening Talk", 20, EventTypeTalk)
	require.NoError(t, err)
	assert.Equal(t, "Opening Talk", ev.Name)
	assert.Equal(t, EventTypeTalk, ev.Type)
	assert.Equal(t, 20, ev.Capacity)
	assert.Empty(t, ev.SpeakerIDs())

	_, err = NewEvent("", 20, EventTypeTalk)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewEvent("Negative", -1, EventTypePanel)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewEvent("Mystery", 20, EventType("concert"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTalkSingleSpeakerSlot(t *testing.T) {
	talk, err := NewEvent("Keynote", 100, EventTypeTalk)
	require.NoError(t, err)

	assert.True(t, talk.AddSpeaker("s1"))
	assert.False(t, talk.AddSpeaker("s2"), "talk has a single slot")
	assert.False(t, talk.AddSpeaker("s1"))
	assert.Equal(t, []string{"s1"}, talk.SpeakerIDs())
}

func TestPanelAndVIPSocialDeduplicateSpeakers(t *testing.T) {
	for _, typ := range []EventType{EventTypePanel, EventTypeVIPSocial} {
		ev, err := NewEvent("Multi", 50, typ)
		require.NoError(t, err)

		assert.True(t, ev.AddSpeaker("s1"))
		assert.True(t, ev.AddSpeaker("s2"))
		assert.True(t, ev.AddSpeaker("s3"))
		assert.False(t, ev.AddSpeaker("s2"), "repeat id must be refused")
		assert.Equal(t, []string{"s1", "s2", "s3"}, ev.SpeakerIDs())
	}
}

func TestPartyRefusesEverySpeaker(t *testing.T) {
	party, err := NewEvent("Afterparty", 200, EventTypeParty)
	require.NoError(t, err)

	assert.False(t, party.AddSpeaker("anyone"))
	assert.False(t, party.AddSpeaker("organizer"))
	assert.Empty(t, party.SpeakerIDs())
	assert.False(t, party.HasSpeakerSlot())
}

func TestEventAttendees(t *testing.T) {
	ev, err := NewEvent("Workshop", 2, EventTypePanel)
	require.NoError(t, err)

	assert.True(t, ev.HasRoomForAttendees())
	assert.True(t, ev.AddAttendee("u1"))
	assert.False(t, ev.AddAttendee("u1"), "duplicate attendee")
	assert.True(t, ev.AddAttendee("u2"))

	assert.False(t, ev.HasRoomForAttendees())
	assert.False(t, ev.AddAttendee("u3"), "no free seat")
	assert.Equal(t, []string{"u1", "u2"}, ev.AttendeeIDs())

	assert.True(t, ev.RemoveAttendee("u1"))
	assert.False(t, ev.RemoveAttendee("u1"))
	assert.True(t, ev.HasRoomForAttendees())
}

func TestSpeakerIDsReturnsCopy(t *testing.T) {
	ev, err := NewEvent("Panel", 10, EventTypePanel)
	require.NoError(t, err)
	require.True(t, ev.AddSpeaker("s1"))

	ids := ev.SpeakerIDs()
	ids[0] = "tampered"
	assert.Equal(t, []string{"s1"}, ev.SpeakerIDs())
}
