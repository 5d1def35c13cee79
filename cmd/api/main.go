package main

import (
	"fmt"
	"log"
	"os"

	"github.com/codeplaygroundspace/feriasdemontevideo/internal/api/handlers"
	"github.com/codeplaygroundspace/feriasdemontevideo/internal/api/middleware"
	"github.com/codeplaygroundspace/feriasdemontevideo/internal/config"
	"github.com/codeplaygroundspace/feriasdemontevideo/internal/data"
	"github.com/codeplaygroundspace/feriasdemontevideo/internal/feria"
	"github.com/codeplaygroundspace/feriasdemontevideo/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Local development convenience; a missing .env is fine.
	_ = godotenv.Load()

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	// Config file is optional: without one we serve the default Montevideo
	// viewport over the default dataset path.
	cfg := config.Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", path, err)
		}
		cfg = loaded
	}
	if path := os.Getenv("DATASET_FILE"); path != "" {
		cfg.DatasetFile = path
	}

	dataset, err := data.LoadMarkets(cfg.DatasetFile)
	if err != nil {
		log.Fatalf("Failed to load dataset %s: %v", cfg.DatasetFile, err)
	}
	if unknown := data.UnknownDayKeys(dataset); len(unknown) > 0 {
		log.Printf("Dataset has unknown day keys (records under them are never shown): %v", unknown)
	}

	view := feria.NewView(dataset)
	tables := model.DefaultDayTables()
	log.Printf("Loaded %d markets from %s", len(view.Aggregated()), cfg.DatasetFile)

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	marketHandler := handlers.NewMarketHandler(view, tables)
	dayHandler := handlers.NewDayHandler(tables)
	viewportHandler := handlers.NewViewportHandler(cfg.Map)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.GET("/markers", marketHandler.ListMarkers)
		api.GET("/markets", marketHandler.ListMarkets)
		api.GET("/neighborhoods", marketHandler.ListNeighborhoods)

		api.GET("/days", dayHandler.ListDays)
		api.GET("/map", viewportHandler.GetViewport)
	}

	// Serve the map page from web/dist (if it exists)
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./web/dist"
	}

	if _, err := os.Stat(staticDir); err == nil {
		router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")

		// Serve index.html for all non-API routes (SPA routing)
		router.NoRoute(func(c *gin.Context) {
			path := c.Request.URL.Path
			if len(path) >= 4 && path[:4] == "/api" {
				c.JSON(404, gin.H{"error": "Not found"})
			} else {
				c.File(staticDir + "/index.html")
			}
		})
		log.Printf("Serving static files from %s", staticDir)
	} else {
		log.Printf("Static directory %s not found, skipping static file serving", staticDir)
	}

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
