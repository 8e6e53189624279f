package job

import (
	"fmt"
	"time"

	"github.com/Abraxas-365/medjobb/pkg/kernel"
)

// Contact is the person to ask about a posting
type Contact struct {
	Name  string       `json:"name"`
	Email kernel.Email `json:"email"`
	Phone kernel.Phone `json:"phone"`
}

// JobPosting is a summer position at a hospital. Postings are loaded once at
// startup and never change afterwards.
type JobPosting struct {
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
	Requirements   []string       `json:"requirements"`
	Contact        Contact        `json:"contact"`
	ApplicationURL string         `json:"application_url,omitempty"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// HasWeekRange reports whether both week bounds are known
func (p *JobPosting) HasWeekRange() bool {
	return p.WeekFrom != nil && p.WeekTo != nil
}

// IsDeadlinePassed reports whether applications closed before now.
// The deadline day itself is still open.
func (p *JobPosting) IsDeadlinePassed(now time.Time) bool {
	if p.Deadline.IsZero() {
		return false
	}
	y, m, d := p.Deadline.Date()
	endOfDay := time.Date(y, m, d, 23, 59, 59, 0, p.Deadline.Location())
	return now.After(endOfDay)
}

// PeriodLabel renders the period the way listings show it: "v. 24–31" when
// the weeks are known, otherwise the free-text period.
func (p *JobPosting) PeriodLabel() string {
	switch {
	case p.HasWeekRange():
		return fmt.Sprintf("v. %d–%d", *p.WeekFrom, *p.WeekTo)
	case p.WeekFrom != nil:
		return fmt.Sprintf("från v. %d", *p.WeekFrom)
	case p.WeekTo != nil:
		return fmt.Sprintf("till v. %d", *p.WeekTo)
	default:
		return p.Period
	}
}

// Validate checks the invariants a catalog entry must hold
func (p *JobPosting) Validate() error {
	if p.ID.IsEmpty() {
		return ErrInvalidPosting().WithDetail("reason", "empty id")
	}
	if !p.Country.IsValid() {
		return ErrInvalidPosting().
			WithDetail("id", p.ID.String()).
			WithDetail("country", string(p.Country))
	}
	if p.HasWeekRange() && *p.WeekFrom > *p.WeekTo {
		return ErrInvalidPosting().
			WithDetail("id", p.ID.String()).
			WithDetail("reason", "week_from after week_to").
			WithDetail("week_from", *p.WeekFrom).
			WithDetail("week_to", *p.WeekTo)
	}
	return nil
}

// ValidateCatalog checks every posting and that ids are unique
func ValidateCatalog(all []JobPosting) error {
	seen := make(map[kernel.JobID]struct{}, len(all))
	for i := range all {
		if err := all[i].Validate(); err != nil {
			return err
		}
		if _, dup := seen[all[i].ID]; dup {
			return ErrDuplicatePosting().WithDetail("id", all[i].ID.String())
		}
		seen[all[i].ID] = struct{}{}
	}
	return nil
}

// Week is a helper for building postings and criteria
func Week(n int) *int {
	return &n
}
