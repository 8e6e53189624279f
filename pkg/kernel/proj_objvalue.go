package kernel

import "strings"

type Email string

type Phone string

type FirstName string

type LastName string

type City string

// Country of a listing or a student. Only the two markets the board serves
// are valid.
type Country string

const (
	CountrySweden Country = "Sweden"
	CountryNorway Country = "Norway"
)

// Countries lists the supported countries in display order
func Countries() []Country {
	return []Country{CountrySweden, CountryNorway}
}

// IsValid reports whether c is a supported country
func (c Country) IsValid() bool {
	return c == CountrySweden || c == CountryNorway
}

// GetDisplayName returns the country name in the local language
func (c Country) GetDisplayName() string {
	switch c {
	case CountrySweden:
		return "Sverige"
	case CountryNorway:
		return "Norge"
	default:
		return "Okänt"
	}
}

// ParseCountry accepts English or local names, case-insensitively
func ParseCountry(s string) (Country, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sweden", "sverige", "se":
		return CountrySweden, true
	case "norway", "norge", "no":
		return CountryNorway, true
	default:
		return "", false
	}
}

func (e Email) IsEmpty() bool { return strings.TrimSpace(string(e)) == "" }

// IsValid is a shape check only: one @ with text on both sides
func (e Email) IsValid() bool {
	local, domain, ok := strings.Cut(string(e), "@")
	return ok && local != "" && domain != "" && !strings.Contains(domain, "@")
}
