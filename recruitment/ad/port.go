package ad

import "context"

type Repository interface {
	// Create stores a new ad
	Create(ctx context.Context, a *Ad) error

	// List returns every ad, newest first
	List(ctx context.Context) ([]Ad, error)
}
