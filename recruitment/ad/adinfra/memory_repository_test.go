package adinfra

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Abraxas-365/medjobb/recruitment/ad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryAdRepository_NewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAdRepository()
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	// inserted out of order on purpose
	require.NoError(t, repo.Create(ctx, &ad.Ad{ID: "b", CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, repo.Create(ctx, &ad.Ad{ID: "a", CreatedAt: base}))
	require.NoError(t, repo.Create(ctx, &ad.Ad{ID: "c", CreatedAt: base.Add(2 * time.Hour)}))
	require.NoError(t, repo.Create(ctx, &ad.Ad{ID: "d", CreatedAt: base}))

	ads, err := repo.List(ctx)
	require.NoError(t, err)

	got := make([]string, 0, len(ads))
	for _, a := range ads {
		got = append(got, a.ID.String())
	}
	assert.Equal(t, []string{"c", "b", "d", "a"}, got)
}

func TestMemoryAdRepository_DuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAdRepository()

	require.NoError(t, repo.Create(ctx, &ad.Ad{ID: "x"}))
	err := repo.Create(ctx, &ad.Ad{ID: "x"})
	assert.True(t, errors.Is(err, ad.ErrAlreadyExists()))
}
