package adapi

import (
	"encoding/json"
	"strings"

	"github.com/Abraxas-365/medjobb/recruitment/ad"
	"github.com/Abraxas-365/medjobb/recruitment/ad/adsrv"
	"github.com/gofiber/fiber/v2"
)

// AllowedMethods is sent with every 405
var AllowedMethods = []string{fiber.MethodGet, fiber.MethodPost}

// Handlers provides HTTP handlers for ad operations
type Handlers struct {
	service *adsrv.AdService
}

// NewHandlers creates a new ad handlers instance
func NewHandlers(service *adsrv.AdService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Ads dispatches on method
// GET|POST /api/ads
func (h *Handlers) Ads(c *fiber.Ctx) error {
	switch c.Method() {
	case fiber.MethodPost:
		return h.CreateAd(c)
	case fiber.MethodGet:
		return h.ListAds(c)
	default:
		c.Set(fiber.HeaderAllow, strings.Join(AllowedMethods, ", "))
		return ad.ErrMethodNotAllowed().WithDetail("method", c.Method())
	}
}

// CreateAd stores the posted ad
// POST /api/ads
func (h *Handlers) CreateAd(c *fiber.Ctx) error {
	// decoded regardless of Content-Type
	var req ad.CreateAdRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return ad.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	created, err := h.service.CreateAd(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// ListAds returns every ad, newest first
// GET /api/ads
func (h *Handlers) ListAds(c *fiber.Ctx) error {
	ads, err := h.service.ListAds(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(ads)
}

// RegisterRoutes registers the ad resource
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	app.All("/api/ads", handlers.Ads)
}
