package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"zoning-feasibility/internal/analysis"
	"zoning-feasibility/internal/api/handlers"
	"zoning-feasibility/internal/api/middleware"
	"zoning-feasibility/internal/config"
	"zoning-feasibility/internal/data"
	"zoning-feasibility/internal/engine"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if port := os.Getenv("API_PORT"); port != "" {
		cfg.Server.Addr = ":" + port
	}
	if token := os.Getenv("SOCRATA_APP_TOKEN"); token != "" && cfg.Pluto.AppToken == "" {
		cfg.Pluto.AppToken = token
	}

	var cache *data.Cache
	if cfg.Cache.Enabled {
		cache = data.NewCache()
	}

	plutoClient := data.NewPlutoClient(cfg.Pluto.AppToken, cfg.Pluto.BaseURL)
	plutoClient.Cache = cache

	calc := engine.NewCalculator(engine.WithValuer(analysis.Valuer{
		Overrides: valuerOverrides(cfg),
	}))

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(middleware.ErrorHandler())

	analyzeHandler := handlers.NewAnalyzeHandler(calc, plutoClient, cache, cfg.AnalysisTTL())
	assemblageHandler := handlers.NewAssemblageHandler(calc)
	programsHandler := handlers.NewProgramsHandler(calc)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/analyze", analyzeHandler.Analyze)
		api.POST("/assemblage", assemblageHandler.Assemblage)
		api.GET("/districts/:code", handlers.GetDistrict)
		api.GET("/programs", programsHandler.ListPrograms)
	}

	corsOptions := cors.Options{
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Accept"},
	}
	if len(cfg.Server.CORSOrigins) > 0 {
		corsOptions.AllowedOrigins = cfg.Server.CORSOrigins
	} else {
		corsOptions.AllowedOrigins = []string{"*"}
	}
	handler := cors.New(corsOptions).Handler(router)

	log.Printf("Starting API server on %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, handler); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func valuerOverrides(cfg *config.Config) map[int]analysis.ValueBenchmarks {
	if len(cfg.Valuation.Boroughs) == 0 {
		return nil
	}
	out := make(map[int]analysis.ValueBenchmarks, len(cfg.Valuation.Boroughs))
	for borough, r := range cfg.Valuation.Boroughs {
		out[borough] = analysis.ValueBenchmarks{
			Residential:  r.Residential,
			Commercial:   r.Commercial,
			CommunityFac: r.CommunityFac,
			Parking:      r.Parking,
		}
	}
	return out
}
