package main

import (
	"log"
	"net/http"
	"time"

	"github.com/agroconnect/agroconnect-api/internal/cache"
	"github.com/agroconnect/agroconnect-api/internal/config"
	dbpkg "github.com/agroconnect/agroconnect-api/internal/db"
	"github.com/agroconnect/agroconnect-api/internal/middleware"
	"github.com/agroconnect/agroconnect-api/internal/routes"
	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var cc *cache.Cache
	if cfg.RedisURL != "" {
		c, err := cache.New(cfg.RedisURL, 30*time.Second)
		if err != nil {
			log.Printf("redis unavailable, running without listing cache: %v", err)
		} else {
			cc = c
		}
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cc, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
