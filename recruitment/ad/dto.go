package ad

import "github.com/Abraxas-365/medjobb/pkg/kernel"

// CreateAdRequest - DTO for posting an ad. Every field is optional.
type CreateAdRequest struct {
	Title          string         `json:"title"`
	Hospital       string         `json:"hospital"`
	Department     string         `json:"department"`
	Location       string         `json:"location"`
	Country        kernel.Country `json:"country"`
	Description    string         `json:"description"`
	ContactEmail   kernel.Email   `json:"contact_email"`
	ContactPhone   kernel.Phone   `json:"contact_phone"`
	ApplicationURL string         `json:"application_url,omitempty"`
}
