package job

import "strings"

// SearchField names a posting field the free-text term is matched against
type SearchField string

const (
	FieldTitle       SearchField = "title"
	FieldDepartment  SearchField = "department"
	FieldLocation    SearchField = "location"
	FieldDescription SearchField = "description"
)

var (
	// DefaultSearchFields is what the main listing page searches
	DefaultSearchFields = []SearchField{FieldTitle, FieldDepartment, FieldLocation, FieldDescription}

	// BasicSearchFields skips the description
	BasicSearchFields = []SearchField{FieldTitle, FieldDepartment, FieldLocation}
)

// FilterCriteria selects postings. The zero value matches everything.
// An inverted week range is accepted and simply matches nothing that has weeks.
type FilterCriteria struct {
	Search   string        `json:"search,omitempty"`
	Location string        `json:"location,omitempty"`
	WeekFrom *int          `json:"week_from,omitempty"`
	WeekTo   *int          `json:"week_to,omitempty"`
	Fields   []SearchField `json:"fields,omitempty"`
}

func (c FilterCriteria) fields() []SearchField {
	if len(c.Fields) == 0 {
		return DefaultSearchFields
	}
	return c.Fields
}

// Filter returns the postings matching c, in their original order.
// all is never modified.
func Filter(all []JobPosting, c FilterCriteria) []JobPosting {
	out := make([]JobPosting, 0, len(all))

	term := strings.ToLower(c.Search)
	fields := c.fields()

	for i := range all {
		p := &all[i]
		if term != "" && !matchesText(p, term, fields) {
			continue
		}
		if c.Location != "" && p.Location != c.Location {
			continue
		}
		if !matchesWeeks(p, c.WeekFrom, c.WeekTo) {
			continue
		}
		out = append(out, *p)
	}

	return out
}

// Matches reports whether a single posting passes c
func (c FilterCriteria) Matches(p *JobPosting) bool {
	if c.Search != "" && !matchesText(p, strings.ToLower(c.Search), c.fields()) {
		return false
	}
	if c.Location != "" && p.Location != c.Location {
		return false
	}
	return matchesWeeks(p, c.WeekFrom, c.WeekTo)
}

// term must already be lower-cased
func matchesText(p *JobPosting, term string, fields []SearchField) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(p.field(f)), term) {
			return true
		}
	}
	return false
}

// The posting's window must lie inside the requested one; overlap is not enough.
func matchesWeeks(p *JobPosting, lo, hi *int) bool {
	switch {
	case lo != nil && hi != nil:
		return p.WeekFrom != nil && p.WeekTo != nil &&
			*p.WeekFrom >= *lo && *p.WeekTo <= *hi
	case lo != nil:
		return p.WeekFrom != nil && *p.WeekFrom >= *lo
	case hi != nil:
		return p.WeekTo != nil && *p.WeekTo <= *hi
	default:
		return true
	}
}

func (p *JobPosting) field(f SearchField) string {
	switch f {
	case FieldTitle:
		return p.Title
	case FieldDepartment:
		return p.Department
	case FieldLocation:
		return p.Location
	case FieldDescription:
		return p.Description
	default:
		return ""
	}
}

// ParseSearchFields maps "basic" to BasicSearchFields and anything else,
// including "", to DefaultSearchFields.
func ParseSearchFields(s string) []SearchField {
	if strings.EqualFold(strings.TrimSpace(s), "basic") {
		return BasicSearchFields
	}
	return DefaultSearchFields
}

// Locations returns the distinct locations in first-seen order
func Locations(all []JobPosting) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for i := range all {
		loc := all[i].Location
		if _, ok := seen[loc]; ok {
			continue
		}
		seen[loc] = struct{}{}
		out = append(out, loc)
	}
	return out
}
