package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
database:
  host: localhost
  port: 5432
  user: hrcore
  database: hrcore
oracle:
  base_url: http://oracle:9090
`

func TestLoad(t *testing.T) {
	t.Run("AppliesDefaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, minimalConfig))
		assert.NoError(t, err)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, 10, cfg.Oracle.TimeoutSeconds)
		assert.Equal(t, ":8080", cfg.GetServerAddress())
	})

	t.Run("EnvOverrides", func(t *testing.T) {
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("SERVER_PORT", "9999")
		t.Setenv("ORACLE_TOKEN", "secret")

		cfg, err := Load(writeConfig(t, minimalConfig))
		assert.NoError(t, err)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, 9999, cfg.Server.Port)
		assert.Equal(t, "secret", cfg.Oracle.Token)
	})

	t.Run("MissingOracleURLRejected", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
database:
  host: localhost
  user: hrcore
  database: hrcore
`))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "oracle base_url")
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestGetDatabaseConnectionString(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "localhost", Port: 5432, User: "hrcore", Password: "pw", Database: "hrcore",
	}}
	assert.Equal(t,
		"host=localhost port=5432 user=hrcore password=pw dbname=hrcore sslmode=disable",
		cfg.GetDatabaseConnectionString())
}
