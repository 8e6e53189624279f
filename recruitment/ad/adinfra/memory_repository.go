package adinfra

import (
	"context"
	"sort"
	"sync"

	"github.com/Abraxas-365/medjobb/recruitment/ad"
)

// MemoryAdRepository implements ad.Repository in process memory
type MemoryAdRepository struct {
	mu  sync.RWMutex
	ads []ad.Ad
}

func NewMemoryAdRepository() *MemoryAdRepository {
	return &MemoryAdRepository{}
}

func (r *MemoryAdRepository) Create(ctx context.Context, a *ad.Ad) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.ads {
		if r.ads[i].ID == a.ID {
			return ad.ErrAlreadyExists().WithDetail("id", a.ID.String())
		}
	}
	r.ads = append(r.ads, *a)
	return nil
}

// List sorts by creation time descending; ties keep the later insert first
func (r *MemoryAdRepository) List(ctx context.Context) ([]ad.Ad, error) {
	r.mu.RLock()
	out := make([]ad.Ad, 0, len(r.ads))
	for i := len(r.ads) - 1; i >= 0; i-- {
		out = append(out, r.ads[i])
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].IsNewerThan(&out[j])
	})
	return out, nil
}
