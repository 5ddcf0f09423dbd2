package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	api_middleware "github.com/jsalinasr/SnakeDuel/api/middleware"
	v1 "github.com/jsalinasr/SnakeDuel/api/v1"
	"github.com/jsalinasr/SnakeDuel/internal/game"
	"github.com/jsalinasr/SnakeDuel/internal/leaderboard"
	"github.com/jsalinasr/SnakeDuel/internal/user"
	"github.com/jsalinasr/SnakeDuel/pkg/db"
	"github.com/jsalinasr/SnakeDuel/websocket"
	"github.com/jsalinasr/SnakeDuel/websocket/actions"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("File .env not found, using system values")
	}

	db.Init()
	if err := db.DB.AutoMigrate(&user.User{}, &leaderboard.Entry{}); err != nil {
		log.Fatalf("error running migrations: %v", err)
	}

	userRepo := user.NewGormUserRepository(db.DB)
	authService := user.NewAuthService(userRepo)

	entryRepo := leaderboard.NewGormEntryRepository(db.DB)
	listingCache := leaderboard.NewRedisListingCache(db.Rdb)
	leaderboardService := leaderboard.NewLeaderboardService(entryRepo, listingCache)

	registry := game.NewRegistry()
	go runRegistrySweeper(registry)

	v1.Auth = authService
	v1.Leaderboard = leaderboardService
	v1.Matches = registry
	websocket.Auth = authService
	websocket.Matches = registry
	actions.Matches = registry

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	authGate := api_middleware.TokenAuth(authService)

	api := e.Group("/api")
	v1.RegisterAuthRoutes(api.Group("/auth"), authGate)
	v1.RegisterLeaderboardRoutes(api.Group("/leaderboard"), authGate)
	v1.RegisterGameRoutes(api.Group("/games"))

	e.GET("/ws/game", websocket.WebSocketHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}

func runRegistrySweeper(registry *game.Registry) {
	ttl := 5 * time.Minute
	if raw := os.Getenv("REGISTRY_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("invalid REGISTRY_TTL %q, using default", raw)
		} else {
			ttl = parsed
		}
	}

	for range time.Tick(ttl / 2) {
		if evicted := registry.Sweep(ttl); evicted > 0 {
			log.Printf("registry sweep evicted %d stale players", evicted)
		}
	}
}
