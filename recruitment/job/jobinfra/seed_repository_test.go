package jobinfra

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Abraxas-365/medjobb/pkg/kernel"
	"github.com/Abraxas-365/medjobb/recruitment/job"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedRepository_EmbeddedCatalogIsValid(t *testing.T) {
	repo, err := NewSeedRepository()
	require.NoError(t, err)

	all, err := repo.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 8)

	assert.NoError(t, job.ValidateCatalog(all))
	assert.Equal(t, kernel.JobID("ka-akut-2026"), all[0].ID)
	assert.Equal(t, 2026, all[0].Deadline.Year())
	assert.Equal(t, "v. 24–31", all[0].PeriodLabel())

	countries := map[kernel.Country]int{}
	for _, p := range all {
		countries[p.Country]++
	}
	assert.Equal(t, 4, countries[kernel.CountrySweden])
	assert.Equal(t, 4, countries[kernel.CountryNorway])
}

func TestSeedRepository_AllReturnsCopy(t *testing.T) {
	repo, err := NewSeedRepository()
	require.NoError(t, err)

	first, _ := repo.All(context.Background())
	first[0].Title = "changed"

	second, _ := repo.All(context.Background())
	assert.NotEqual(t, "changed", second[0].Title)
}

func TestSeedRepository_ContactDecoded(t *testing.T) {
	repo, err := NewSeedRepository()
	require.NoError(t, err)

	all, err := repo.All(context.Background())
	require.NoError(t, err)

	var oslo *job.JobPosting
	for i := range all {
		if all[i].ID == "ous-kirurgi-2026" {
			oslo = &all[i]
		}
	}
	require.NotNil(t, oslo)
	assert.Equal(t, "Oslo", oslo.Location)
	assert.Equal(t, kernel.Email("sommerjobb.kirurgi@ous-hf.no"), oslo.Contact.Email)
}

func TestSeedRepository_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- id: a
  title: Sommerlege
  location: Oslo
  country: Norway
  week_from: 24
  week_to: 31
  deadline: "2026-05-01"
- id: b
  title: Underläkare
  location: Lund
  country: Sweden
`), 0o600))

	repo, err := NewSeedRepositoryFromFile(path)
	require.NoError(t, err)

	all, _ := repo.All(context.Background())
	require.Len(t, all, 2)
	assert.Nil(t, all[1].WeekFrom)
	assert.True(t, all[1].Deadline.IsZero())
}

func TestSeedRepository_BadDeadline(t *testing.T) {
	_, err := NewSeedRepositoryFromYAML([]byte(`
- id: a
  country: Sweden
  deadline: "15 mars"
`))
	assert.True(t, errors.Is(err, job.ErrInvalidPosting()))
}

func TestSeedRepository_MissingFile(t *testing.T) {
	_, err := NewSeedRepositoryFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
