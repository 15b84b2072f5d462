package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"store": map[string]any{
			"driver": "sqlite",
			"sqlite": map[string]any{
				"busyTimeout": "5s",
			},
			"postgres": map[string]any{
				"sslMode": "disable",
				"master": map[string]any{
					"userName": "user",
				},
			},
		},
		"changeFeed": map[string]any{
			"ackDeadline": "10s",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORE_POSTGRES_SSLMODE", want: "store.postgres.sslMode"},
		{envKey: "STORE_POSTGRES_MASTER_USERNAME", want: "store.postgres.master.userName"},
		{envKey: "STORE_SQLITE_BUSYTIMEOUT", want: "store.sqlite.busyTimeout"},
		{envKey: "CHANGEFEED_ACKDEADLINE", want: "changeFeed.ackDeadline"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte(`
env:
  serviceName: rentledger
  log:
    level: debug
store:
  driver: sqlite
  sqlite:
    path: from-yaml.db
    busyTimeout: 2s
changeFeed:
  ackDeadline: 3s
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yamlBody, 0o600))
	t.Chdir(dir)
	t.Setenv("STORE_SQLITE_PATH", "from-env.db")
	t.Setenv("CHANGEFEED_ACKDEADLINE", "7s")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "rentledger", cfg.Env.ServiceName)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	assert.Equal(t, "from-env.db", cfg.Store.SQLite.Path)
	assert.Equal(t, 2*time.Second, cfg.Store.SQLite.BusyTimeout)
	assert.Equal(t, 7*time.Second, cfg.ChangeFeed.AckDeadline)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		wantErr bool
		want    string
	}{
		{name: "empty driver falls back to sqlite", driver: "", want: DriverSQLite},
		{name: "driver is case-insensitive", driver: " SQLite ", want: DriverSQLite},
		{name: "postgres without connection", driver: "postgres", wantErr: true},
		{name: "unknown driver", driver: "mongo", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Store.Driver = tt.driver

			err := cfg.applyDefaults()
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Store.Driver)
			assert.Equal(t, defaultSQLitePath, cfg.Store.SQLite.Path)
			assert.Equal(t, defaultSQLiteBusyTimeout, cfg.Store.SQLite.BusyTimeout)
			assert.Equal(t, defaultAckDeadline, cfg.ChangeFeed.AckDeadline)
			assert.Equal(t, defaultBufferSize, cfg.ChangeFeed.BufferSize)
		})
	}
}
