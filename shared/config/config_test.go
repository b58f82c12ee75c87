// shared/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCanvasServiceConfigDefaults(t *testing.T) {
	t.Setenv("CANVAS_SERVICE_LISTEN_ADDR", "")
	t.Setenv("MONGODB_DATABASE", "")
	t.Setenv("GENAI_TIMEOUT", "")

	cfg, err := LoadCanvasServiceConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 8080, cfg.ServicePort)
	assert.Equal(t, "walkcanvas", cfg.MongoDBDatabase)
	assert.Equal(t, "distances", cfg.MongoDBDistanceCollection)
	assert.Equal(t, "drawings", cfg.MongoDBDrawingCollection)
	assert.Equal(t, "teams", cfg.MongoDBTeamCollection)
	assert.Equal(t, 15*time.Second, cfg.GenAITimeout)
	assert.Equal(t, 5*time.Second, cfg.HeartbeatInterval)
}

func TestLoadCanvasServiceConfigOverrides(t *testing.T) {
	t.Setenv("CANVAS_SERVICE_LISTEN_ADDR", "0.0.0.0:9090")
	t.Setenv("MONGODB_DATABASE", "walkcanvas_test")
	t.Setenv("REDIS_ADDRS", "redis-a:6379, redis-b:6379")
	t.Setenv("GENAI_TIMEOUT", "30s")

	cfg, err := LoadCanvasServiceConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.ServicePort)
	assert.Equal(t, "walkcanvas_test", cfg.MongoDBDatabase)
	assert.Equal(t, []string{"redis-a:6379", "redis-b:6379"}, cfg.RedisAddrs)
	assert.Equal(t, 30*time.Second, cfg.GenAITimeout)
}

func TestLoadCanvasServiceConfigBadDuration(t *testing.T) {
	t.Setenv("GENAI_TIMEOUT", "soon")
	_, err := LoadCanvasServiceConfig()
	assert.Error(t, err)
}
