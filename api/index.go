package handler

import (
	"net/http"

	"github.com/arnavshah/shift-optimizer-go/pkg/auth"
	"github.com/arnavshah/shift-optimizer-go/pkg/database"
	"github.com/arnavshah/shift-optimizer-go/pkg/handlers"
	"github.com/arnavshah/shift-optimizer-go/pkg/logging"
	"github.com/arnavshah/shift-optimizer-go/pkg/optimizer"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var r *gin.Engine

func init() {
	// Load .env if it exists (for local testing with vercel dev)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	logging.Initialize(false)

	// Initialize DB
	db := database.InitDB()
	_ = auth.EnsureAdminExists(db)

	opts := optimizer.DefaultOptions()
	h := &handlers.Handler{
		DB:        db,
		Heuristic: optimizer.NewHeuristic(opts),
		Exact:     optimizer.NewExact(nil, opts),
	}

	// Initialize Gin
	gin.SetMode(gin.ReleaseMode)
	r = gin.New()
	r.Use(gin.Logger(), gin.Recovery(), h.CORSMiddleware())

	// Static files served from embedded FS
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

	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.POST("/keys", h.GenerateKey)
		admin.GET("/keys", h.ListKeys)
		admin.PUT("/keys/:id", h.UpdateKeyLimit)
		admin.DELETE("/keys/:id", h.RevokeKey)
		admin.GET("/usage/:id", h.GetUsage)
	}

	api := r.Group("/api")
	api.Use(h.APIKeyMiddleware())
	{
		api.POST("/optimize", h.OptimizeJSON)
		api.POST("/optimize/csv", h.OptimizeCSV)
		api.POST("/validate", h.ValidateInput)
	}
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, req *http.Request) {
	r.ServeHTTP(w, req)
}
