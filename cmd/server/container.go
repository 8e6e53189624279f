package main

import (
	"context"

	"github.com/Abraxas-365/medjobb/internal/platform"
	"github.com/Abraxas-365/medjobb/pkg/config"
	"github.com/Abraxas-365/medjobb/pkg/logx"
	"github.com/Abraxas-365/medjobb/recruitment/ad"
	"github.com/Abraxas-365/medjobb/recruitment/ad/adapi"
	"github.com/Abraxas-365/medjobb/recruitment/ad/adinfra"
	"github.com/Abraxas-365/medjobb/recruitment/ad/adsrv"
	"github.com/Abraxas-365/medjobb/recruitment/job"
	"github.com/Abraxas-365/medjobb/recruitment/job/jobapi"
	"github.com/Abraxas-365/medjobb/recruitment/job/jobsrv"
	"github.com/jmoiron/sqlx"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Container holds all application dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure (nil when not configured)
	DB    *sqlx.DB
	Mongo *mongo.Client

	// Repositories
	JobRepo job.Repository

	// Services
	JobService *jobsrv.JobService
	AdService  *adsrv.AdService

	// API Handlers
	JobHandlers *jobapi.Handlers
	AdHandlers  *adapi.Handlers

	adStore string
}

// pinger is implemented by repositories backed by a connection
type pinger interface {
	Ping(ctx context.Context) error
}

// NewContainer initializes the dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config) *Container {
	c := &Container{Config: cfg}
	c.initInfrastructure(ctx)
	c.initServices(ctx)
	return c
}

func (c *Container) initInfrastructure(ctx context.Context) {
	// 1. Database Connection (only the postgres catalog needs it)
	if c.Config.Catalog.Source == config.CatalogPostgres {
		db, err := platform.OpenPostgres(c.Config.Postgres)
		if err != nil {
			logx.Fatalf("Failed to connect to database: %v", err)
		}
		c.DB = db
	}

	// 2. MongoDB Connection
	if c.Config.Mongo.Enabled() {
		client, err := platform.OpenMongo(ctx, c.Config.Mongo)
		if err != nil {
			logx.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		c.Mongo = client
	}
}

func (c *Container) initServices(ctx context.Context) {
	// --- Repositories ---
	jobRepo, err := platform.JobRepository(c.Config.Catalog, c.DB)
	if err != nil {
		logx.Fatalf("Failed to build job catalog: %v", err)
	}
	c.JobRepo = jobRepo

	var adRepo ad.Repository
	if c.Mongo != nil {
		mongoRepo := adinfra.NewMongoAdRepository(c.Mongo.Database(c.Config.Mongo.Database), c.Config.Mongo.Collection)
		if err := mongoRepo.EnsureIndexes(ctx); err != nil {
			logx.Warnf("Failed to ensure ad indexes: %v", err)
		}
		adRepo = mongoRepo
		c.adStore = "mongo"
	} else {
		logx.Warn("MONGO_URI is not set, ads are kept in memory only")
		adRepo = adinfra.NewMemoryAdRepository()
		c.adStore = "memory"
	}

	// --- Domain Services ---
	c.JobService = jobsrv.NewJobService(jobRepo)
	if err := c.JobService.Load(ctx); err != nil {
		logx.Fatalf("Failed to load job catalog: %v", err)
	}
	c.AdService = adsrv.NewAdService(adRepo)

	// --- Handlers ---
	c.JobHandlers = jobapi.NewHandlers(c.JobService, c.Config.Server.PageSize)
	c.AdHandlers = adapi.NewHandlers(c.AdService)
}

// Health reports what the /health endpoint shows
func (c *Container) Health(ctx context.Context) map[string]any {
	health := map[string]any{
		"status":  "ok",
		"catalog": c.JobService.Size(),
		"ads":     c.adStore,
	}
	if p, ok := c.JobRepo.(pinger); ok {
		health["db"] = p.Ping(ctx) == nil
	}
	if c.Mongo != nil {
		health["mongo"] = c.Mongo.Ping(ctx, nil) == nil
	}
	return health
}

// Close releases external connections
func (c *Container) Close(ctx context.Context) {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logx.Warnf("Failed to close database: %v", err)
		}
	}
	if c.Mongo != nil {
		if err := c.Mongo.Disconnect(ctx); err != nil {
			logx.Warnf("Failed to disconnect MongoDB: %v", err)
		}
	}
}
