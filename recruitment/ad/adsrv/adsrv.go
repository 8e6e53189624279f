package adsrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/medjobb/pkg/errx"
	"github.com/Abraxas-365/medjobb/pkg/kernel"
	"github.com/Abraxas-365/medjobb/pkg/logx"
	"github.com/Abraxas-365/medjobb/recruitment/ad"
	"github.com/google/uuid"
)

// AdService provides business operations for ads
type AdService struct {
	adRepo ad.Repository
	now    func() time.Time
}

// NewAdService creates a new instance of the ad service
func NewAdService(adRepo ad.Repository) *AdService {
	return &AdService{
		adRepo: adRepo,
		now:    time.Now,
	}
}

// CreateAd stores req as a new ad with a fresh ID and creation time
func (s *AdService) CreateAd(ctx context.Context, req ad.CreateAdRequest) (*ad.Ad, error) {
	newAd := &ad.Ad{
		ID:             kernel.NewAdID(uuid.NewString()),
		Title:          req.Title,
		Hospital:       req.Hospital,
		Department:     req.Department,
		Location:       req.Location,
		Country:        req.Country,
		Description:    req.Description,
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
		ApplicationURL: req.ApplicationURL,
		CreatedAt:      s.now().UTC(),
	}

	if err := s.adRepo.Create(ctx, newAd); err != nil {
		return nil, errx.Wrap(err, "failed to create ad", errx.TypeInternal)
	}

	logx.Info("ad created", "id", newAd.ID.String(), "hospital", newAd.Hospital)
	return newAd, nil
}

// ListAds returns every ad, newest first
func (s *AdService) ListAds(ctx context.Context) ([]ad.Ad, error) {
	ads, err := s.adRepo.List(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list ads", errx.TypeInternal)
	}
	if ads == nil {
		ads = []ad.Ad{}
	}
	return ads, nil
}
