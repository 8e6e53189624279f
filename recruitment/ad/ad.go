package ad

import (
	"time"

	"github.com/Abraxas-365/medjobb/pkg/kernel"
)

// Ad is an employer-submitted advertisement. Ads are stored as posted;
// nothing about their content is checked.
type Ad struct {
	ID             kernel.AdID    `json:"id" bson:"_id"`
	Title          string         `json:"title" bson:"title"`
	Hospital       string         `json:"hospital" bson:"hospital"`
	Department     string         `json:"department" bson:"department"`
	Location       string         `json:"location" bson:"location"`
	Country        kernel.Country `json:"country" bson:"country"`
	Description    string         `json:"description" bson:"description"`
	ContactEmail   kernel.Email   `json:"contact_email" bson:"contact_email"`
	ContactPhone   kernel.Phone   `json:"contact_phone" bson:"contact_phone"`
	ApplicationURL string         `json:"application_url,omitempty" bson:"application_url,omitempty"`
	CreatedAt      time.Time      `json:"created_at" bson:"created_at"`
}

// IsNewerThan orders ads for listing
func (a *Ad) IsNewerThan(other *Ad) bool {
	return a.CreatedAt.After(other.CreatedAt)
}
