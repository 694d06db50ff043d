package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:5000", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "mongo", cfg.Store.Driver)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "hobbies", cfg.Mongo.Database)
	assert.False(t, cfg.Mongo.Transactions)
	assert.Equal(t, 10*time.Second, cfg.Mongo.Timeout)
	assert.Equal(t, "data/hobbies.db", cfg.SQLite.Path)
	assert.Equal(t, "snapshots", cfg.Snapshot.KeyPrefix)
	assert.Equal(t, 0, cfg.Snapshot.Keep)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOBBIES_STORE_DRIVER", "sqlite")
	t.Setenv("HOBBIES_SQLITE_PATH", "/tmp/h.db")
	t.Setenv("HOBBIES_MONGO_TIMEOUT", "3s")
	t.Setenv("HOBBIES_SNAPSHOT_KEEP", "5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "/tmp/h.db", cfg.SQLite.Path)
	assert.Equal(t, 3*time.Second, cfg.Mongo.Timeout)
	assert.Equal(t, 5, cfg.Snapshot.Keep)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "driver", key: "HOBBIES_STORE_DRIVER", val: "postgres"},
		{name: "log level", key: "HOBBIES_LOG_LEVEL", val: "loud"},
		{name: "addr", key: "HOBBIES_SERVER_ADDR", val: "not an address"},
		{name: "keep", key: "HOBBIES_SNAPSHOT_KEEP", val: "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.ErrorContains(t, err, "invalid config")
		})
	}
}
