package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepo_Upsert(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("refetch overwrites fields but preserves created_at", func(t *testing.T) {
		repo := NewMemoryRepo()
		repo.now = func() time.Time { return base }

		rating := 4.0
		first, err := repo.Upsert(ctx, &Record{
			ExternalID:    "v1",
			Title:         "First Title",
			AverageRating: &rating,
			RatingsCount:  10,
		})
		require.NoError(t, err)
		assert.Equal(t, base, first.CreatedAt)
		assert.Equal(t, base, first.UpdatedAt)

		repo.now = func() time.Time { return base.Add(time.Hour) }

		newRating := 4.5
		second, err := repo.Upsert(ctx, &Record{
			ExternalID:    "v1",
			Title:         "Second Title",
			AverageRating: &newRating,
			RatingsCount:  0,
		})
		require.NoError(t, err)

		assert.Equal(t, "Second Title", second.Title)
		assert.Equal(t, 4.5, *second.AverageRating)
		assert.Equal(t, 0, second.RatingsCount)
		assert.Equal(t, base, second.CreatedAt)
		assert.Equal(t, base.Add(time.Hour), second.UpdatedAt)

		stored, err := repo.GetByExternalID(ctx, "v1")
		require.NoError(t, err)
		assert.Equal(t, second, stored)
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := NewMemoryRepo()

		_, err := repo.GetByExternalID(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
