package job_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Abraxas-365/medjobb/pkg/kernel"
	"github.com/Abraxas-365/medjobb/recruitment/job"
	"github.com/stretchr/testify/assert"
)

func TestJobPosting_PeriodLabel(t *testing.T) {
	p := job.JobPosting{WeekFrom: job.Week(24), WeekTo: job.Week(31), Period: "Sommar"}
	assert.Equal(t, "v. 24–31", p.PeriodLabel())

	p = job.JobPosting{Period: "Juni till augusti"}
	assert.Equal(t, "Juni till augusti", p.PeriodLabel())

	p = job.JobPosting{WeekFrom: job.Week(26)}
	assert.Equal(t, "från v. 26", p.PeriodLabel())
}

func TestJobPosting_IsDeadlinePassed(t *testing.T) {
	p := job.JobPosting{Deadline: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)}

	assert.False(t, p.IsDeadlinePassed(time.Date(2026, 3, 15, 18, 0, 0, 0, time.UTC)))
	assert.True(t, p.IsDeadlinePassed(time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)))
	assert.False(t, (&job.JobPosting{}).IsDeadlinePassed(time.Now()))
}

func TestJobPosting_Validate(t *testing.T) {
	valid := job.JobPosting{ID: "1", Country: kernel.CountrySweden, WeekFrom: job.Week(24), WeekTo: job.Week(24)}
	assert.NoError(t, valid.Validate())

	cases := map[string]job.JobPosting{
		"empty id":        {Country: kernel.CountrySweden},
		"unknown country": {ID: "1", Country: "Denmark"},
		"inverted weeks":  {ID: "1", Country: kernel.CountryNorway, WeekFrom: job.Week(30), WeekTo: job.Week(20)},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			err := p.Validate()
			assert.True(t, errors.Is(err, job.ErrInvalidPosting()), "got %v", err)
		})
	}
}

func TestValidateCatalog_DuplicateID(t *testing.T) {
	all := []job.JobPosting{
		{ID: "1", Country: kernel.CountrySweden},
		{ID: "1", Country: kernel.CountryNorway},
	}
	err := job.ValidateCatalog(all)
	assert.True(t, errors.Is(err, job.ErrDuplicatePosting()))
}

func TestToResponse(t *testing.T) {
	p := job.JobPosting{
		ID: "1", Title: "Underläkare", Country: kernel.CountrySweden,
		WeekFrom: job.Week(24), WeekTo: job.Week(31),
		Deadline: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	}
	resp := job.ToResponse(&p, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "v. 24–31", resp.Period)
	assert.True(t, resp.DeadlinePassed)
	assert.NotNil(t, resp.Requirements)
}
