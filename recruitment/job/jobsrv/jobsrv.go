package jobsrv

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/Abraxas-365/medjobb/pkg/errx"
	"github.com/Abraxas-365/medjobb/pkg/kernel"
	"github.com/Abraxas-365/medjobb/pkg/logx"
	"github.com/Abraxas-365/medjobb/recruitment/job"
)

// catalog is an immutable snapshot of every posting
type catalog struct {
	postings  []job.JobPosting
	byID      map[kernel.JobID]int
	locations []string
}

// JobService provides read operations over the job catalog
type JobService struct {
	jobRepo job.Repository
	current atomic.Pointer[catalog]
	now     func() time.Time
}

// NewJobService creates a new instance of the job service
func NewJobService(jobRepo job.Repository) *JobService {
	return &JobService{
		jobRepo: jobRepo,
		now:     time.Now,
	}
}

// Load reads and validates the whole catalog and makes it the served snapshot.
// A failed load leaves any previous snapshot in place.
func (s *JobService) Load(ctx context.Context) error {
	postings, err := s.jobRepo.All(ctx)
	if err != nil {
		return errx.Wrap(err, "failed to load job catalog", errx.TypeExternal)
	}

	if err := job.ValidateCatalog(postings); err != nil {
		return err
	}

	byID := make(map[kernel.JobID]int, len(postings))
	for i := range postings {
		byID[postings[i].ID] = i
	}

	s.current.Store(&catalog{
		postings:  postings,
		byID:      byID,
		locations: job.Locations(postings),
	})

	logx.Info("job catalog loaded", "postings", len(postings))
	return nil
}

// Size is the number of loaded postings, zero before Load
func (s *JobService) Size() int {
	c := s.current.Load()
	if c == nil {
		return 0
	}
	return len(c.postings)
}

func (s *JobService) snapshot() (*catalog, error) {
	c := s.current.Load()
	if c == nil {
		return nil, job.ErrCatalogNotLoaded()
	}
	return c, nil
}

// SearchJobs filters the catalog and returns the requested page
func (s *JobService) SearchJobs(ctx context.Context, req job.SearchJobsRequest) (*job.PaginatedJobsResponse, error) {
	c, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	matched := job.Filter(c.postings, req.Criteria)
	page := kernel.Paginate(matched, req.Pagination.Normalize())

	now := s.now()
	resp := kernel.MapPaginated(page, func(p job.JobPosting) job.JobResponse {
		return job.ToResponse(&p, now)
	})

	logx.Debug("jobs searched",
		"search", req.Criteria.Search,
		"location", req.Criteria.Location,
		"matched", len(matched),
		"page", resp.Page.Number,
	)

	return &resp, nil
}

// GetJobByID retrieves a posting by ID
func (s *JobService) GetJobByID(ctx context.Context, jobID kernel.JobID) (*job.JobResponse, error) {
	c, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	i, ok := c.byID[jobID]
	if !ok {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	resp := job.ToResponse(&c.postings[i], s.now())
	return &resp, nil
}

// ListLocations returns the distinct locations in catalog order
func (s *JobService) ListLocations(ctx context.Context) ([]string, error) {
	c, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	out := make([]string, len(c.locations))
	copy(out, c.locations)
	return out, nil
}

// ListCountries returns the supported countries
func (s *JobService) ListCountries() []job.CountryResponse {
	countries := kernel.Countries()
	out := make([]job.CountryResponse, 0, len(countries))
	for _, c := range countries {
		out = append(out, job.CountryResponse{
			Code:        c,
			DisplayName: c.GetDisplayName(),
		})
	}
	return out
}
