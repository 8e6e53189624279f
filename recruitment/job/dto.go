package job

import (
	"time"

	"github.com/Abraxas-365/medjobb/pkg/kernel"
)

// SearchJobsRequest - DTO for searching the catalog
type SearchJobsRequest struct {
	Criteria   FilterCriteria           `json:"criteria"`
	Pagination kernel.PaginationOptions `json:"pagination"`
}

// Response type alias for paginated jobs
type PaginatedJobsResponse = kernel.Paginated[JobResponse]

// JobResponse - DTO for returning posting data
type JobResponse struct {
	ID             kernel.JobID   `json:"id"`
	Title          string         `json:"title"`
	Hospital       string         `json:"hospital"`
	Location       string         `json:"location"`
	Country        kernel.Country `json:"country"`
	Department     string         `json:"department"`
	Description    string         `json:"description"`
	Salary         string         `json:"salary"`
	WeekFrom       *int           `json:"week_from,omitempty"`
	WeekTo         *int           `json:"week_to,omitempty"`
	Period         string         `json:"period"`
	Deadline       time.Time      `json:"deadline"`
	DeadlinePassed bool           `json:"deadline_passed"`
	Requirements   []string       `json:"requirements"`
	Contact        Contact        `json:"contact"`
	ApplicationURL string         `json:"application_url,omitempty"`
}

// ToResponse converts a posting, labelling the period and deadline against now
func ToResponse(p *JobPosting, now time.Time) JobResponse {
	requirements := p.Requirements
	if requirements == nil {
		requirements = []string{}
	}
	return JobResponse{
		ID:             p.ID,
		Title:          p.Title,
		Hospital:       p.Hospital,
		Location:       p.Location,
		Country:        p.Country,
		Department:     p.Department,
		Description:    p.Description,
		Salary:         p.Salary,
		WeekFrom:       p.WeekFrom,
		WeekTo:         p.WeekTo,
		Period:         p.PeriodLabel(),
		Deadline:       p.Deadline,
		DeadlinePassed: p.IsDeadlinePassed(now),
		Requirements:   requirements,
		Contact:        p.Contact,
		ApplicationURL: p.ApplicationURL,
	}
}

// CountryResponse - a supported country with its local name
type CountryResponse struct {
	Code        kernel.Country `json:"code"`
	DisplayName string         `json:"display_name"`
}
