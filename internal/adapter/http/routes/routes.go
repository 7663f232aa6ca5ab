package routes

import (
	"log"
	"os"
	"time"

	_ "techmanaus/docs" // This will be auto-generated
	"techmanaus/internal/adapter/http/handlers"
	"techmanaus/internal/adapter/http/middleware"
	"techmanaus/internal/infrastructure/sessions"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + getenvDefault("PORT", "8080"))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	registry := sessions.NewRegistry(nil, sessionTTL())
	registry.StartJanitor(make(chan struct{}))

	sessionHandler := handlers.NewSessionHandler(registry)

	// login/register share one per-IP bucket, like any public entry point
	limiter := middleware.NewRateLimiter(5, 10)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSessionRoutes(v1, registry, sessionHandler, limiter)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func sessionTTL() time.Duration {
	raw := os.Getenv("SESSION_TTL")
	if raw == "" {
		return 0 // registry default
	}
	ttl, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("invalid SESSION_TTL %q, using default: %v", raw, err)
		return 0
	}
	return ttl
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
