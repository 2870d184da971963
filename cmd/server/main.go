package main

import (
	"net/http"
	"os"

	"github.com/arnavshah/shift-optimizer-go/pkg/auth"
	"github.com/arnavshah/shift-optimizer-go/pkg/database"
	"github.com/arnavshah/shift-optimizer-go/pkg/handlers"
	"github.com/arnavshah/shift-optimizer-go/pkg/logging"
	"github.com/arnavshah/shift-optimizer-go/pkg/optimizer"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if it exists
	// Try root and parent directories for flexibility
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	logging.Initialize(os.Getenv("GIN_MODE") == "debug")
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		logging.SetLogLevel(level)
	}
	logger := logging.GetLogger("server")

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	db := database.InitDB()
	_ = auth.EnsureAdminExists(db)

	opts := optimizer.DefaultOptions()
	h := &handlers.Handler{
		DB:        db,
		Heuristic: optimizer.NewHeuristic(opts),
		// The exact engine needs an injected solver; without one it reports
		// failure per request instead of refusing to start.
		Exact: optimizer.NewExact(nil, opts),
	}

	r := gin.Default()
	r.Use(h.CORSMiddleware())

	// Admin interface - serve static files from embedded FS
	r.StaticFS("/static", h.GetStaticFS())

	// Routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Shift optimization API is running",
			"version": "2.0.0",
			"engine":  "go-heuristic",
		})
	})

	r.GET("/admin", h.AdminInterface)
	r.POST("/admin/login", h.Login)

	// Admin Endpoints
	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.POST("/keys", h.GenerateKey)
		admin.GET("/keys", h.ListKeys)
		admin.PUT("/keys/:id", h.UpdateKeyLimit)
		admin.DELETE("/keys/:id", h.RevokeKey)
		admin.GET("/usage/:id", h.GetUsage)
	}

	// Optimizer Endpoints
	api := r.Group("/api")
	api.Use(h.APIKeyMiddleware())
	{
		api.POST("/optimize", h.OptimizeJSON)
		api.POST("/optimize/csv", h.OptimizeCSV)
		api.POST("/validate", h.ValidateInput)
		api.GET("/usage", h.GetMyUsage)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	logger.Info().Str("port", port).Msg("server starting")
	if err := r.Run(":" + port); err != nil {
		logger.Fatal().Err(err).Msg("could not run server")
	}
}
