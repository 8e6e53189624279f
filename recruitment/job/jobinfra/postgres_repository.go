package jobinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Abraxas-365/medjobb/pkg/kernel"
	"github.com/Abraxas-365/medjobb/recruitment/job"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresJobRepository implements job.Repository using PostgreSQL
type PostgresJobRepository struct {
	db *sqlx.DB
}

// NewPostgresJobRepository creates a new PostgreSQL job repository
func NewPostgresJobRepository(db *sqlx.DB) *PostgresJobRepository {
	return &PostgresJobRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

type postingModel struct {
	ID             string          `db:"id"`
	Title          string          `db:"title"`
	Hospital       string          `db:"hospital"`
	Location       string          `db:"location"`
	Country        string          `db:"country"`
	Department     string          `db:"department"`
	Description    string          `db:"description"`
	Salary         string          `db:"salary"`
	WeekFrom       sql.NullInt32   `db:"week_from"`
	WeekTo         sql.NullInt32   `db:"week_to"`
	Period         string          `db:"period"`
	Deadline       sql.NullTime    `db:"deadline"`
	Requirements   json.RawMessage `db:"requirements"`
	ContactName    string          `db:"contact_name"`
	ContactEmail   string          `db:"contact_email"`
	ContactPhone   string          `db:"contact_phone"`
	ApplicationURL string          `db:"application_url"`
}

const selectPostings = `
	SELECT
		id, title, hospital, location, country, department, description,
		salary, week_from, week_to, period, deadline, requirements,
		contact_name, contact_email, contact_phone, application_url
	FROM job_postings
`

// toEntity converts database model to domain entity
func (m *postingModel) toEntity() (*job.JobPosting, error) {
	var requirements []string
	if len(m.Requirements) > 0 {
		if err := json.Unmarshal(m.Requirements, &requirements); err != nil {
			return nil, fmt.Errorf("failed to unmarshal requirements of %s: %w", m.ID, err)
		}
	}

	var deadline time.Time
	if m.Deadline.Valid {
		deadline = m.Deadline.Time
	}

	return &job.JobPosting{
		ID:           kernel.JobID(m.ID),
		Title:        m.Title,
		Hospital:     m.Hospital,
		Location:     m.Location,
		Country:      kernel.Country(m.Country),
		Department:   m.Department,
		Description:  m.Description,
		Salary:       m.Salary,
		WeekFrom:     nullWeek(m.WeekFrom),
		WeekTo:       nullWeek(m.WeekTo),
		Period:       m.Period,
		Deadline:     deadline,
		Requirements: requirements,
		Contact: job.Contact{
			Name:  m.ContactName,
			Email: kernel.Email(m.ContactEmail),
			Phone: kernel.Phone(m.ContactPhone),
		},
		ApplicationURL: m.ApplicationURL,
	}, nil
}

func nullWeek(n sql.NullInt32) *int {
	if !n.Valid {
		return nil
	}
	w := int(n.Int32)
	return &w
}

// ============================================================================
// Repository Implementation
// ============================================================================

// All reads the whole catalog in insertion order
func (r *PostgresJobRepository) All(ctx context.Context) ([]job.JobPosting, error) {
	var models []postingModel
	if err := r.db.SelectContext(ctx, &models, selectPostings+` ORDER BY seq ASC`); err != nil {
		return nil, mapPgError(err, "failed to list job postings")
	}

	postings := make([]job.JobPosting, 0, len(models))
	for i := range models {
		p, err := models[i].toEntity()
		if err != nil {
			return nil, err
		}
		postings = append(postings, *p)
	}

	return postings, nil
}

// Ping checks the connection
func (r *PostgresJobRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// undefined_table means the migration was never applied
func mapPgError(err error, msg string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "42P01" {
		return job.ErrCatalogUnavailable().
			WithDetail("reason", "job_postings table missing").
			WithCause(err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
