package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conferenceplanner/internal/domain"
)

func TestRoomRepositoryCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewRoomRepository()

	room := domain.NewRoom("Main Hall", 100)
	require.NoError(t, repo.Create(ctx, room))
	assert.NotEmpty(t, room.ID, "repository assigns a stable id on create")

	got, err := repo.GetByName(ctx, "Main Hall")
	require.NoError(t, err)
	assert.Equal(t, room, got)

	_, err = repo.GetByName(ctx, "Annex")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRoomRepositoryDuplicateName(t *testing.T) {
	ctx := context.Background()
	repo := NewRoomRepository()

	require.NoError(t, repo.Create(ctx, domain.NewRoom("Main Hall", 100)))
	err := repo.Create(ctx, domain.NewRoom("Main Hall", 50))
	assert.ErrorIs(t, err, domain.ErrDuplicateName)

	err = repo.Create(ctx, domain.NewRoom("", 50))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRoomRepositoryListOrdered(t *testing.T) {
	ctx := context.Background()
	repo := NewRoomRepository()

	for _, name := range []string{"Charlie", "Alpha", "Bravo"} {
		require.NoError(t, repo.Create(ctx, domain.NewRoom(name, 10)))
	}

	rooms, err := repo.List(ctx)
	require.NoError(t, err)
	names := []string{}
	for _, r := range rooms {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"Alpha", "Bravo", "Charlie"}, names)
}
