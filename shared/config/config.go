// shared/config/config.go
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// CommonConfig holds configuration fields shared by every service in this
// repository (currently only the canvas service, but the registry plumbing
// is service-agnostic).
type CommonConfig struct {
	RedisAddrs              []string      // Redis server addresses for the instance registry
	RedisPassword           string        // Redis password for authentication
	HeartbeatInterval       time.Duration // How often to heartbeat into the registry (e.g., 5s)
	HeartbeatTTL            time.Duration // How long an instance is considered alive without a heartbeat (e.g., 15s)
	RegistryCleanupInterval time.Duration // How often stale registry entries are cleaned (e.g., 30s)
	ServiceIP               string        // The IP this instance advertises for registration (Kubernetes Pod IP)
	ServicePort             int           // The port this instance listens on, used for registration
}

// CanvasServiceConfig holds configuration specific to the canvas API service.
type CanvasServiceConfig struct {
	CommonConfig                            // Embed CommonConfig
	ListenAddr                string        // Address for the HTTP server (e.g., ":8080")
	MongoDBConnStr            string        // MongoDB connection string (secret, injected via env)
	MongoDBDatabase           string        // MongoDB database name (e.g., "walkcanvas")
	MongoDBDistanceCollection string        // Collection for cumulative distance records
	MongoDBDrawingCollection  string        // Collection for drawings
	MongoDBTeamCollection     string        // Collection for teams
	GenAIBaseURL              string        // Base URL of the generative-text API
	GenAIAPIKey               string        // API key for the generative-text API (secret, injected via env)
	GenAIModel                string        // Model name to request completions from
	GenAITimeout              time.Duration // Per-request timeout for the generative-text API
}

// LoadCommonConfig loads common configuration from environment variables.
func LoadCommonConfig() (CommonConfig, error) {
	cfg := CommonConfig{}
	var err error

	redisAddrsStr := os.Getenv("REDIS_ADDRS")
	if redisAddrsStr == "" {
		cfg.RedisAddrs = []string{"localhost:6379"}
	} else {
		for _, addr := range strings.Split(redisAddrsStr, ",") {
			cfg.RedisAddrs = append(cfg.RedisAddrs, strings.TrimSpace(addr))
		}
	}
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")

	cfg.HeartbeatInterval, err = getDuration("SERVICE_HEARTBEAT_INTERVAL", 5*time.Second)
	if err != nil {
		return cfg, err
	}
	cfg.HeartbeatTTL, err = getDuration("SERVICE_HEARTBEAT_TTL", 15*time.Second)
	if err != nil {
		return cfg, err
	}
	cfg.RegistryCleanupInterval, err = getDuration("SERVICE_REGISTRY_CLEANUP_INTERVAL", 30*time.Second)
	if err != nil {
		return cfg, err
	}

	// Service IP for registration, injected by Kubernetes as the pod IP.
	cfg.ServiceIP = os.Getenv("POD_IP")
	if cfg.ServiceIP == "" {
		cfg.ServiceIP = "0.0.0.0"
		fmt.Printf("WARNING: POD_IP not set, defaulting ServiceIP to %s\n", cfg.ServiceIP)
	}

	return cfg, nil
}

// LoadCanvasServiceConfig loads configuration for the canvas service.
func LoadCanvasServiceConfig() (*CanvasServiceConfig, error) {
	common, err := LoadCommonConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load common config for canvas-service: %w", err)
	}

	cfg := &CanvasServiceConfig{
		CommonConfig:              common,
		ListenAddr:                os.Getenv("CANVAS_SERVICE_LISTEN_ADDR"),
		MongoDBConnStr:            os.Getenv("MONGODB_CONN_STR"),
		MongoDBDatabase:           os.Getenv("MONGODB_DATABASE"),
		MongoDBDistanceCollection: os.Getenv("MONGODB_DISTANCE_COLLECTION"),
		MongoDBDrawingCollection:  os.Getenv("MONGODB_DRAWING_COLLECTION"),
		MongoDBTeamCollection:     os.Getenv("MONGODB_TEAM_COLLECTION"),
		GenAIBaseURL:              os.Getenv("GENAI_BASE_URL"),
		GenAIAPIKey:               os.Getenv("GENAI_API_KEY"),
		GenAIModel:                os.Getenv("GENAI_MODEL"),
	}

	// Apply defaults
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.MongoDBConnStr == "" {
		cfg.MongoDBConnStr = "mongodb://localhost:27017"
	}
	if cfg.MongoDBDatabase == "" {
		cfg.MongoDBDatabase = "walkcanvas"
	}
	if cfg.MongoDBDistanceCollection == "" {
		cfg.MongoDBDistanceCollection = "distances"
	}
	if cfg.MongoDBDrawingCollection == "" {
		cfg.MongoDBDrawingCollection = "drawings"
	}
	if cfg.MongoDBTeamCollection == "" {
		cfg.MongoDBTeamCollection = "teams"
	}
	if cfg.GenAIBaseURL == "" {
		cfg.GenAIBaseURL = "https://generativelanguage.googleapis.com"
	}
	if cfg.GenAIModel == "" {
		cfg.GenAIModel = "gemini-1.5-flash"
	}
	cfg.GenAITimeout, err = getDuration("GENAI_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}

	// Extract ServicePort from ListenAddr
	cfg.ServicePort, err = extractPort(cfg.ListenAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to extract port from CANVAS_SERVICE_LISTEN_ADDR '%s': %w", cfg.ListenAddr, err)
	}

	return cfg, nil
}

// Helper function to parse duration from environment variable
func getDuration(envKey string, defaultVal time.Duration) (time.Duration, error) {
	valStr := os.Getenv(envKey)
	if valStr == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(valStr)
	if err != nil {
		return 0, fmt.Errorf("invalid duration format for %s: %w", envKey, err)
	}
	return d, nil
}

// extractPort extracts the numeric port from a listen address (e.g., ":8080" -> 8080, "0.0.0.0:8080" -> 8080)
func extractPort(listenAddr string) (int, error) {
	_, portStr, err := net.SplitHostPort(listenAddr)
	if err != nil {
		// If SplitHostPort fails, check if ListenAddr is just a port (e.g., ":8080")
		if strings.HasPrefix(listenAddr, ":") {
			portStr = strings.TrimPrefix(listenAddr, ":")
		} else {
			return 0, fmt.Errorf("invalid ListenAddr format for port extraction: %w", err)
		}
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 0, fmt.Errorf("invalid port number '%s': %w", portStr, err)
	}
	return port, nil
}
