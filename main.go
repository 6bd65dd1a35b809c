package main

import (
	"log"
	"time"

	"southbound-app/config"
	"southbound-app/database"
	routes "southbound-app/internal/app/http"
	"southbound-app/internal/infra/blob"
	"southbound-app/internal/ingest"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	store, err := blob.New(config.BLOB_CONNECTION_STRING, config.BLOB_CONTAINER, config.BLOB_PUBLIC_BASE_URL)
	if err != nil {
		log.Fatal("❌ Blob storage init failed:", err)
	}

	ingestor := ingest.NewIngestor(store)
	migrator := &ingest.Migrator{
		DB:       database.DB,
		Ingestor: ingestor,
		BlobHost: store.Host(),
		Compress: true,
	}

	r := gin.Default()

	// ✅ Add CORS middleware BEFORE registering routes
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, store, ingestor, migrator)

	r.Run(":" + config.PORT)
}
