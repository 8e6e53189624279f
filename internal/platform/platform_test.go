package platform

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Abraxas-365/medjobb/pkg/config"
	"github.com/Abraxas-365/medjobb/recruitment/job/jobinfra"
	"github.com/Abraxas-365/medjobb/recruitment/profile/profileinfra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobRepository(t *testing.T) {
	repo, err := JobRepository(config.CatalogConfig{Source: config.CatalogSeed}, nil)
	require.NoError(t, err)
	assert.IsType(t, &jobinfra.SeedRepository{}, repo)

	_, err = JobRepository(config.CatalogConfig{Source: config.CatalogPostgres}, nil)
	assert.Error(t, err)

	_, err = JobRepository(config.CatalogConfig{Source: config.CatalogSeed, File: filepath.Join(t.TempDir(), "none.yaml")}, nil)
	assert.Error(t, err)

	_, err = JobRepository(config.CatalogConfig{Source: "ftp"}, nil)
	assert.Error(t, err)
}

func TestProfileSlot(t *testing.T) {
	ctx := context.Background()

	slot, closeFn, err := ProfileSlot(ctx, config.ProfileConfig{Backend: config.ProfileFile, Path: filepath.Join(t.TempDir(), "p.json")})
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &profileinfra.FileSlot{}, slot)

	slot, closeFn, err = ProfileSlot(ctx, config.ProfileConfig{Backend: config.ProfileMemory})
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &profileinfra.MemorySlot{}, slot)

	slot, closeFn, err = ProfileSlot(ctx, config.ProfileConfig{
		Backend:  config.ProfileS3,
		S3Bucket: "medjobb-profiles",
		S3Region: "eu-north-1",
		Key:      "student-profile.json",
	})
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &profileinfra.S3Slot{}, slot)

	_, closeFn, err = ProfileSlot(ctx, config.ProfileConfig{Backend: "cookie"})
	assert.Error(t, err)
	assert.NotNil(t, closeFn)
}
