package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test from an empty directory so no .env or
// configs/config.yaml from the repository leaks in.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	t.Setenv("MEDJOBB_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.PageSize)
	assert.Equal(t, CatalogSeed, cfg.Catalog.Source)
	assert.Equal(t, ProfileFile, cfg.Profile.Backend)
	assert.Equal(t, "ads", cfg.Mongo.Collection)
	assert.False(t, cfg.Mongo.Enabled())
	assert.Equal(t, "http://localhost:8080", cfg.Client.APIURL)
}

func TestLoad_FileThenEnvOverride(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "medjobb.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "9000"
  page_size: 5
profile:
  backend: memory
mongo:
  uri: mongodb://localhost:27017
`), 0o600))

	t.Setenv("MEDJOBB_CONFIG", path)
	t.Setenv("PORT", "9100")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.PageSize)
	assert.Equal(t, ProfileMemory, cfg.Profile.Backend)
	assert.True(t, cfg.Mongo.Enabled())
}

func TestLoad_S3FromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("MEDJOBB_CONFIG", "")
	t.Setenv("PROFILE_BACKEND", "s3")
	t.Setenv("AWS_BUCKET", "medjobb-profiles")
	t.Setenv("AWS_REGION", "eu-north-1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ProfileS3, cfg.Profile.Backend)
	assert.Equal(t, "medjobb-profiles", cfg.Profile.S3Bucket)
	assert.Equal(t, "eu-north-1", cfg.Profile.S3Region)
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	isolate(t)
	t.Setenv("MEDJOBB_CONFIG", "does-not-exist.yaml")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidPageSize(t *testing.T) {
	isolate(t)
	t.Setenv("MEDJOBB_CONFIG", "")
	t.Setenv("PAGE_SIZE", "many")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"seed and file", func(c *Config) {}, false},
		{"unknown catalog", func(c *Config) { c.Catalog.Source = "s3" }, true},
		{"postgres without host", func(c *Config) { c.Catalog.Source = CatalogPostgres }, true},
		{"postgres complete", func(c *Config) {
			c.Catalog.Source = CatalogPostgres
			c.Postgres.Host = "db"
			c.Postgres.Name = "medjobb"
		}, false},
		{"redis without addr", func(c *Config) { c.Profile.Backend = ProfileRedis }, true},
		{"s3 without bucket", func(c *Config) { c.Profile.Backend = ProfileS3 }, true},
		{"s3 with bucket", func(c *Config) {
			c.Profile.Backend = ProfileS3
			c.Profile.S3Bucket = "medjobb-profiles"
		}, false},
		{"unknown profile backend", func(c *Config) { c.Profile.Backend = "cookie" }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{}
			applyDefaults(cfg)
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPostgresDSN(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "jobs", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=jobs sslmode=disable", p.DSN())
}
