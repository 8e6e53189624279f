package jobapi

import (
	"github.com/Abraxas-365/medjobb/pkg/fiberx"
	"github.com/Abraxas-365/medjobb/pkg/kernel"
	"github.com/Abraxas-365/medjobb/recruitment/job"
	"github.com/Abraxas-365/medjobb/recruitment/job/jobsrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for job operations
type Handlers struct {
	service         *jobsrv.JobService
	defaultPageSize int
}

// NewHandlers creates a new job handlers instance
func NewHandlers(service *jobsrv.JobService, defaultPageSize int) *Handlers {
	if defaultPageSize <= 0 {
		defaultPageSize = kernel.DefaultPageSize
	}
	return &Handlers{
		service:         service,
		defaultPageSize: defaultPageSize,
	}
}

// SearchJobs filters and paginates the catalog
// GET /api/jobs?q=&location=&week_from=&week_to=&fields=basic&page=&page_size=
func (h *Handlers) SearchJobs(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c)
	if err != nil {
		return err
	}

	pagination, err := h.parsePaginationOptions(c)
	if err != nil {
		return err
	}

	jobs, err := h.service.SearchJobs(c.Context(), job.SearchJobsRequest{
		Criteria:   criteria,
		Pagination: pagination,
	})
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// GetJobByID retrieves a posting by ID
// GET /api/jobs/:id
func (h *Handlers) GetJobByID(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	jobResp, err := h.service.GetJobByID(c.Context(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(jobResp)
}

// ListLocations returns the locations for the location filter
// GET /api/jobs/locations
func (h *Handlers) ListLocations(c *fiber.Ctx) error {
	locations, err := h.service.ListLocations(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"locations": locations})
}

// ListCountries returns the supported countries
// GET /api/jobs/countries
func (h *Handlers) ListCountries(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"countries": h.service.ListCountries()})
}

// ============================================================================
// Helper Functions
// ============================================================================

// parseCriteria reads the filter from the query string. The search term is
// passed through untrimmed.
func parseCriteria(c *fiber.Ctx) (job.FilterCriteria, error) {
	criteria := job.FilterCriteria{
		Search:   c.Query("q"),
		Location: c.Query("location"),
		Fields:   job.ParseSearchFields(c.Query("fields")),
	}

	from, err := parseWeek(c, "week_from")
	if err != nil {
		return criteria, err
	}
	to, err := parseWeek(c, "week_to")
	if err != nil {
		return criteria, err
	}
	criteria.WeekFrom = from
	criteria.WeekTo = to

	return criteria, nil
}

func parseWeek(c *fiber.Ctx, key string) (*int, error) {
	n, ok, err := fiberx.QueryInt(c, key)
	if err != nil || (ok && n < 0) {
		return nil, job.ErrInvalidWeek().
			WithDetail("param", key).
			WithDetail("value", c.Query(key))
	}
	if !ok {
		return nil, nil
	}
	return &n, nil
}

func (h *Handlers) parsePaginationOptions(c *fiber.Ctx) (kernel.PaginationOptions, error) {
	page, ok, err := fiberx.QueryInt(c, "page")
	if err != nil {
		return kernel.PaginationOptions{}, job.ErrInvalidPagination().WithDetail("page", c.Query("page"))
	}
	if !ok {
		page = 1
	}

	pageSize, ok, err := fiberx.QueryInt(c, "page_size")
	if err != nil {
		return kernel.PaginationOptions{}, job.ErrInvalidPagination().WithDetail("page_size", c.Query("page_size"))
	}
	if !ok {
		pageSize = h.defaultPageSize
	}

	// a page past the end is answered with an empty page, not an error
	return kernel.PaginationOptions{
		Page:     page,
		PageSize: pageSize,
	}.Normalize(), nil
}

// RegisterRoutes registers all job routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/jobs")

	api.Get("/", handlers.SearchJobs)
	api.Get("/locations", handlers.ListLocations)
	api.Get("/countries", handlers.ListCountries)
	api.Get("/:id", handlers.GetJobByID)
}
