// Package platform opens the external connections named in the config and
// builds the adapters both binaries share.
package platform

import (
	"context"
	"fmt"
	"time"

	"github.com/Abraxas-365/medjobb/pkg/config"
	"github.com/Abraxas-365/medjobb/pkg/logx"
	"github.com/Abraxas-365/medjobb/recruitment/job"
	"github.com/Abraxas-365/medjobb/recruitment/job/jobinfra"
	"github.com/Abraxas-365/medjobb/recruitment/profile"
	"github.com/Abraxas-365/medjobb/recruitment/profile/profileinfra"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const connectTimeout = 5 * time.Second

// ConfigureLogging applies the log settings
func ConfigureLogging(cfg config.LogConfig) {
	logx.SetLevel(logx.ParseLevel(cfg.Level))
	logx.SetFormat(logx.Format(cfg.Format))
}

// OpenPostgres connects and tunes the pool
func OpenPostgres(cfg config.PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	return db, nil
}

// OpenMongo connects and pings the primary
func OpenMongo(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to reach mongo: %w", err)
	}
	return client, nil
}

// OpenRedis creates a client; an unreachable server is only a warning
// because the profile store degrades to in-memory on write failures.
func OpenRedis(ctx context.Context, cfg config.ProfileConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}
	return client
}

// OpenS3 builds a client from the default AWS credential chain
func OpenS3(ctx context.Context, region string) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config: %w", err)
	}
	return s3.NewFromConfig(awsCfg), nil
}

// JobRepository picks the catalog source. db is only used for postgres
// and may be nil otherwise.
func JobRepository(cfg config.CatalogConfig, db *sqlx.DB) (job.Repository, error) {
	switch cfg.Source {
	case config.CatalogPostgres:
		if db == nil {
			return nil, fmt.Errorf("catalog source %q needs a database connection", cfg.Source)
		}
		return jobinfra.NewPostgresJobRepository(db), nil
	case config.CatalogSeed:
		var (
			repo *jobinfra.SeedRepository
			err  error
		)
		if cfg.File != "" {
			repo, err = jobinfra.NewSeedRepositoryFromFile(cfg.File)
		} else {
			repo, err = jobinfra.NewSeedRepository()
		}
		if err != nil {
			return nil, err
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
}

// ProfileSlot builds the configured slot. The returned close func releases
// any connection and is never nil.
func ProfileSlot(ctx context.Context, cfg config.ProfileConfig) (profile.Slot, func(), error) {
	switch cfg.Backend {
	case config.ProfileFile:
		return profileinfra.NewFileSlot(cfg.Path), func() {}, nil
	case config.ProfileMemory:
		return profileinfra.NewMemorySlot(), func() {}, nil
	case config.ProfileRedis:
		client := OpenRedis(ctx, cfg)
		return profileinfra.NewRedisSlot(client, cfg.Key), func() { _ = client.Close() }, nil
	case config.ProfileS3:
		client, err := OpenS3(ctx, cfg.S3Region)
		if err != nil {
			return nil, func() {}, err
		}
		return profileinfra.NewS3Slot(client, cfg.S3Bucket, cfg.Key), func() {}, nil
	default:
		return nil, func() {}, fmt.Errorf("unknown profile backend %q", cfg.Backend)
	}
}
