package job

import "context"

// Repository is a read-only catalog source
type Repository interface {
	// All returns every posting in catalog order
	All(ctx context.Context) ([]JobPosting, error)
}
