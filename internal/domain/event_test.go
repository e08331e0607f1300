package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	t.Parallel()

	owner := uuid.New()

	t.Run("valid input", func(t *testing.T) {
		event, err := NewEvent("  Meetup  ", owner, "Ann", "ann@x.com")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, event.ID)
		assert.Equal(t, "Meetup", event.Title, "title should be trimmed")
		assert.Equal(t, owner, event.OwnerUID)
		assert.Equal(t, "Ann", event.OwnerName)
		assert.Equal(t, "ann@x.com", event.OwnerEmail)
		assert.Nil(t, event.Location)
		assert.Nil(t, event.ImageURL)
		assert.False(t, event.CreatedAt.IsZero())
	})

	t.Run("blank title", func(t *testing.T) {
		_, err := NewEvent("   ", owner, "Ann", "ann@x.com")
		assert.ErrorIs(t, err, ErrInvalidTitle)
	})

	t.Run("missing owner", func(t *testing.T) {
		_, err := NewEvent("Meetup", uuid.Nil, "Ann", "ann@x.com")
		assert.ErrorIs(t, err, ErrEmptyOwner)
	})
}

func TestEvent_IsOwnedBy(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	event := Event{ID: uuid.New(), Title: "Meetup", OwnerUID: owner}

	assert.True(t, event.IsOwnedBy(owner))
	assert.False(t, event.IsOwnedBy(uuid.New()))
}

func TestOwnerDisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		profileName string
		tokenName   string
		email       string
		want        string
	}{
		{"profile name wins", "Ann", "Annie", "ann@x.com", "Ann"},
		{"token name second", "  ", "Annie", "ann@x.com", "Annie"},
		{"email local part third", "", "", "ann@x.com", "ann"},
		{"unknown last", "", "", "", "Unknown"},
		{"email without local part", "", "", "@x.com", "Unknown"},
		{"profile name trimmed", " Ann ", "", "", "Ann"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OwnerDisplayName(tt.profileName, tt.tokenName, tt.email))
		})
	}
}
