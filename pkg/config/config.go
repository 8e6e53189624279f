// Package config loads runtime configuration: .env, then an optional YAML
// file, then environment variables, then defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "configs/config.yaml"

// Catalog sources
const (
	CatalogSeed     = "seed"
	CatalogPostgres = "postgres"
)

// Profile slot backends
const (
	ProfileFile   = "file"
	ProfileRedis  = "redis"
	ProfileMemory = "memory"
	ProfileS3     = "s3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Postgres PostgresConfig `yaml:"postgres"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Profile  ProfileConfig  `yaml:"profile"`
	Client   ClientConfig   `yaml:"client"`
}

type ServerConfig struct {
	Port     string `yaml:"port"`
	PageSize int    `yaml:"page_size"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type CatalogConfig struct {
	Source string `yaml:"source"` // seed | postgres
	File   string `yaml:"file"`   // optional YAML catalog replacing the embedded seed
}

type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN renders a lib/pq connection string
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Name, p.SSLMode)
}

type MongoConfig struct {
	URI        string `yaml:"uri"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
}

// Enabled reports whether a Mongo URI was configured
func (m MongoConfig) Enabled() bool {
	return m.URI != ""
}

type ProfileConfig struct {
	Backend   string `yaml:"backend"` // file | redis | memory | s3
	Path      string `yaml:"path"`
	RedisAddr string `yaml:"redis_addr"`
	RedisPass string `yaml:"redis_pass"`
	S3Bucket  string `yaml:"s3_bucket"`
	S3Region  string `yaml:"s3_region"`
	Key       string `yaml:"key"`
}

type ClientConfig struct {
	APIURL string `yaml:"api_url"`
}

// Load reads .env (if present), the YAML file named by MEDJOBB_CONFIG or
// configs/config.yaml (if present) and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	path := os.Getenv("MEDJOBB_CONFIG")
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	if err := loadFile(cfg, path, explicit); err != nil {
		return nil, err
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Server.Port, "PORT")
	setString(&cfg.Log.Level, "LOG_LEVEL")
	setString(&cfg.Log.Format, "LOG_FORMAT")
	setString(&cfg.Catalog.Source, "CATALOG_SOURCE")
	setString(&cfg.Catalog.File, "CATALOG_FILE")
	setString(&cfg.Postgres.Host, "DB_HOST")
	setString(&cfg.Postgres.Port, "DB_PORT")
	setString(&cfg.Postgres.User, "DB_USER")
	setString(&cfg.Postgres.Password, "DB_PASS")
	setString(&cfg.Postgres.Name, "DB_NAME")
	setString(&cfg.Postgres.SSLMode, "DB_SSLMODE")
	setString(&cfg.Mongo.URI, "MONGO_URI")
	setString(&cfg.Mongo.Database, "MONGO_DB")
	setString(&cfg.Mongo.Collection, "MONGO_COLLECTION")
	setString(&cfg.Profile.Backend, "PROFILE_BACKEND")
	setString(&cfg.Profile.Path, "PROFILE_PATH")
	setString(&cfg.Profile.RedisAddr, "REDIS_ADDR")
	setString(&cfg.Profile.RedisPass, "REDIS_PASS")
	setString(&cfg.Profile.S3Bucket, "AWS_BUCKET")
	setString(&cfg.Profile.S3Region, "AWS_REGION")
	setString(&cfg.Profile.Key, "PROFILE_KEY")
	setString(&cfg.Client.APIURL, "API_URL")

	if v := os.Getenv("PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PAGE_SIZE %q: %w", v, err)
		}
		cfg.Server.PageSize = n
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Server.PageSize <= 0 {
		cfg.Server.PageSize = 10
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	if cfg.Catalog.Source == "" {
		cfg.Catalog.Source = CatalogSeed
	}
	if cfg.Postgres.Port == "" {
		cfg.Postgres.Port = "5432"
	}
	if cfg.Postgres.SSLMode == "" {
		cfg.Postgres.SSLMode = "disable"
	}
	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = "medjobb"
	}
	if cfg.Mongo.Collection == "" {
		cfg.Mongo.Collection = "ads"
	}
	if cfg.Profile.Backend == "" {
		cfg.Profile.Backend = ProfileFile
	}
	if cfg.Profile.Path == "" {
		cfg.Profile.Path = defaultProfilePath()
	}
	if cfg.Profile.Key == "" {
		cfg.Profile.Key = "medjobb:student-profile"
	}
	if cfg.Client.APIURL == "" {
		cfg.Client.APIURL = "http://localhost:" + cfg.Server.Port
	}
}

func defaultProfilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "medjobb", "profile.json")
}

// Validate rejects unknown backend names and incomplete backend settings
func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case CatalogSeed:
	case CatalogPostgres:
		if c.Postgres.Host == "" || c.Postgres.Name == "" {
			return fmt.Errorf("catalog source %q requires DB_HOST and DB_NAME", CatalogPostgres)
		}
	default:
		return fmt.Errorf("unknown catalog source %q", c.Catalog.Source)
	}

	switch c.Profile.Backend {
	case ProfileFile, ProfileMemory:
	case ProfileRedis:
		if c.Profile.RedisAddr == "" {
			return fmt.Errorf("profile backend %q requires REDIS_ADDR", ProfileRedis)
		}
	case ProfileS3:
		if c.Profile.S3Bucket == "" {
			return fmt.Errorf("profile backend %q requires AWS_BUCKET", ProfileS3)
		}
	default:
		return fmt.Errorf("unknown profile backend %q", c.Profile.Backend)
	}

	return nil
}
