package profile

import (
	"fmt"
	"strings"
	"time"

	"github.com/Abraxas-365/medjobb/pkg/kernel"
)

// StudentProfile is the signed-in student. At most one is resident per slot.
type StudentProfile struct {
	FirstName       kernel.FirstName `json:"first_name"`
	LastName        kernel.LastName  `json:"last_name"`
	Email           kernel.Email     `json:"email"`
	Password        string           `json:"password,omitempty"`
	Occupation      string           `json:"occupation"`
	University      string           `json:"university"`
	Term            string           `json:"term"`
	GraduationYear  int              `json:"graduation_year"`
	Phone           kernel.Phone     `json:"phone,omitempty"`
	City            kernel.City      `json:"city,omitempty"`
	Country         kernel.Country   `json:"country"`
	About           string           `json:"about,omitempty"`
	Interests       []string         `json:"interests,omitempty"`
	AvailableMonths []string         `json:"available_months,omitempty"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// Strip returns a copy without the password. Only stripped values are
// persisted or handed out.
func (p StudentProfile) Strip() StudentProfile {
	out := p.Clone()
	out.Password = ""
	return out
}

// Clone deep-copies the slices so callers cannot alias cached state
func (p StudentProfile) Clone() StudentProfile {
	out := p
	if p.Interests != nil {
		out.Interests = append([]string(nil), p.Interests...)
	}
	if p.AvailableMonths != nil {
		out.AvailableMonths = append([]string(nil), p.AvailableMonths...)
	}
	return out
}

// GetFullName returns the student's full name
func (p *StudentProfile) GetFullName() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", p.FirstName, p.LastName))
}

// IsAvailableIn reports whether the student listed month (case-insensitive).
// An empty list means no restriction.
func (p *StudentProfile) IsAvailableIn(month time.Month) bool {
	if len(p.AvailableMonths) == 0 {
		return true
	}
	for _, m := range p.AvailableMonths {
		if strings.EqualFold(strings.TrimSpace(m), month.String()) {
			return true
		}
	}
	return false
}

// Validate checks the fields a registration form requires. The store itself
// accepts any value; front-ends call this before Login.
func (p *StudentProfile) Validate() error {
	missing := make([]string, 0)
	if strings.TrimSpace(string(p.FirstName)) == "" {
		missing = append(missing, "first_name")
	}
	if strings.TrimSpace(string(p.LastName)) == "" {
		missing = append(missing, "last_name")
	}
	if p.Email.IsEmpty() {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return ErrInvalidProfile().WithDetail("missing", missing)
	}

	if !p.Email.IsValid() {
		return ErrInvalidEmail().WithDetail("email", string(p.Email))
	}
	if p.Country != "" && !p.Country.IsValid() {
		return ErrInvalidProfile().WithDetail("country", string(p.Country))
	}
	if p.GraduationYear < 0 {
		return ErrInvalidProfile().WithDetail("graduation_year", p.GraduationYear)
	}
	return nil
}
