// canvas/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	canvasapi "github.com/walkcanvas/go-services/canvas/api"
	"github.com/walkcanvas/go-services/canvas/genai"
	"github.com/walkcanvas/go-services/canvas/service"
	"github.com/walkcanvas/go-services/canvas/store"
	"github.com/walkcanvas/go-services/shared/api"
	"github.com/walkcanvas/go-services/shared/config"
	mongodbu "github.com/walkcanvas/go-services/shared/mongodb"
	redisu "github.com/walkcanvas/go-services/shared/redis"
	"github.com/walkcanvas/go-services/shared/registry"
)

func main() {
	// --- 1. Load Configuration ---
	if err := godotenv.Load(); err != nil {
		log.Println("INFO: No .env file found, relying on environment variables.")
	}
	cfg, err := config.LoadCanvasServiceConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- 2. Connect to MongoDB ---
	mongoClient, err := mongodbu.NewClient(cfg.MongoDBConnStr, cfg.MongoDBDatabase)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err = mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("ERROR: Failed to disconnect from MongoDB: %v", err)
			return
		}
		log.Println("Disconnected from MongoDB.")
	}()

	// --- 3. Connect to Redis (instance registry) ---
	redisClient, err := redisu.NewRedisClusterClient(cfg.RedisAddrs, cfg.RedisPassword)
	if err != nil {
		log.Fatalf("Failed to connect to Redis Cluster: %v", err)
	}
	defer func() {
		if err = redisClient.Close(); err != nil {
			log.Printf("ERROR: Failed to close Redis client: %v", err)
			return
		}
		log.Println("Redis client closed.")
	}()

	// --- 4. Initialize Data Stores ---
	distanceStore := store.NewDistanceStore(mongoClient.Collection(cfg.MongoDBDistanceCollection))
	drawingStore := store.NewDrawingStore(mongoClient.Collection(cfg.MongoDBDrawingCollection))
	teamStore := store.NewTeamStore(mongoClient.Collection(cfg.MongoDBTeamCollection))

	// --- 5. Initialize External Collaborators ---
	genaiService := genai.NewGenAIService(cfg.GenAIBaseURL, cfg.GenAIAPIKey, cfg.GenAIModel, cfg.GenAITimeout)

	// --- 6. Initialize Business Logic Services ---
	promptService := service.NewPromptService(genaiService)
	distanceService := service.NewDistanceService(distanceStore)
	drawingService := service.NewDrawingService(drawingStore, teamStore)
	teamService := service.NewTeamService(teamStore, drawingStore)

	// --- 7. Initialize API Handlers ---
	canvasAPIHandlers := canvasapi.NewCanvasAPIHandlers(promptService, distanceService, drawingService, teamService)

	// --- 8. Initialize and Start Service Registrar ---
	registrar := registry.NewServiceRegistrar(redisClient, "canvas-service", &cfg.CommonConfig)
	registrar.Start()
	defer registrar.Stop()

	// --- 9. Setup HTTP Server and Register Routes ---
	baseServer := api.NewBaseServer(cfg.ListenAddr, log.Default())
	canvasAPIHandlers.RegisterRoutes(baseServer.Router)

	// --- 10. Start HTTP Server ---
	go func() {
		if err := baseServer.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed to start: %v", err)
		}
	}()

	// --- 11. Graceful Shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := baseServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("HTTP server graceful shutdown failed: %v", err)
	}
	log.Println("Server gracefully stopped.")
}
