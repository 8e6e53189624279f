package jobinfra

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/Abraxas-365/medjobb/pkg/kernel"
	"github.com/Abraxas-365/medjobb/recruitment/job"
	"gopkg.in/yaml.v3"
)

//go:embed seed/jobs.yaml
var defaultSeed []byte

const deadlineLayout = "2006-01-02"

// SeedRepository implements job.Repository over a YAML catalog held in memory
type SeedRepository struct {
	postings []job.JobPosting
}

// NewSeedRepository decodes the catalog compiled into the binary
func NewSeedRepository() (*SeedRepository, error) {
	return NewSeedRepositoryFromYAML(defaultSeed)
}

// NewSeedRepositoryFromFile decodes a catalog from disk
func NewSeedRepositoryFromFile(path string) (*SeedRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return NewSeedRepositoryFromYAML(data)
}

// NewSeedRepositoryFromYAML decodes a catalog document
func NewSeedRepositoryFromYAML(data []byte) (*SeedRepository, error) {
	var models []seedModel
	if err := yaml.Unmarshal(data, &models); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	postings := make([]job.JobPosting, 0, len(models))
	for i := range models {
		p, err := models[i].toEntity()
		if err != nil {
			return nil, err
		}
		postings = append(postings, *p)
	}

	return &SeedRepository{postings: postings}, nil
}

// ============================================================================
// Seed Model
// ============================================================================

type seedModel struct {
	ID             string      `yaml:"id"`
	Title          string      `yaml:"title"`
	Hospital       string      `yaml:"hospital"`
	Location       string      `yaml:"location"`
	Country        string      `yaml:"country"`
	Department     string      `yaml:"department"`
	Description    string      `yaml:"description"`
	Salary         string      `yaml:"salary"`
	WeekFrom       *int        `yaml:"week_from"`
	WeekTo         *int        `yaml:"week_to"`
	Period         string      `yaml:"period"`
	Deadline       string      `yaml:"deadline"`
	Requirements   []string    `yaml:"requirements"`
	Contact        seedContact `yaml:"contact"`
	ApplicationURL string      `yaml:"application_url"`
}

type seedContact struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Phone string `yaml:"phone"`
}

// toEntity converts a seed entry to domain entity
func (m *seedModel) toEntity() (*job.JobPosting, error) {
	var deadline time.Time
	if m.Deadline != "" {
		d, err := time.Parse(deadlineLayout, m.Deadline)
		if err != nil {
			return nil, job.ErrInvalidPosting().
				WithDetail("id", m.ID).
				WithDetail("deadline", m.Deadline).
				WithCause(err)
		}
		deadline = d
	}

	return &job.JobPosting{
		ID:           kernel.NewJobID(m.ID),
		Title:        m.Title,
		Hospital:     m.Hospital,
		Location:     m.Location,
		Country:      kernel.Country(m.Country),
		Department:   m.Department,
		Description:  m.Description,
		Salary:       m.Salary,
		WeekFrom:     m.WeekFrom,
		WeekTo:       m.WeekTo,
		Period:       m.Period,
		Deadline:     deadline,
		Requirements: m.Requirements,
		Contact: job.Contact{
			Name:  m.Contact.Name,
			Email: kernel.Email(m.Contact.Email),
			Phone: kernel.Phone(m.Contact.Phone),
		},
		ApplicationURL: m.ApplicationURL,
	}, nil
}

// ============================================================================
// Repository Implementation
// ============================================================================

// All returns a copy of the catalog in file order
func (r *SeedRepository) All(ctx context.Context) ([]job.JobPosting, error) {
	out := make([]job.JobPosting, len(r.postings))
	copy(out, r.postings)
	return out, nil
}
