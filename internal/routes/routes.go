package routes

import (
	"net/http"
	"os"

	"github.com/SharpHawks/TireShop/internal/handlers"
	"github.com/SharpHawks/TireShop/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware tells the browser the storefront frontend may talk to us.
func CORSMiddleware() gin.HandlerFunc {
	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}

	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		// Preflight OPTIONS requests get an empty 204.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	// CORS must be the very first thing the router uses.
	router.Use(CORSMiddleware())

	// Uploaded tire images are served straight from disk.
	router.Static("/uploads", "./uploads")

	api := router.Group("/api")
	{
		// --- Ping Route (Public) ---
		api.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Auth Routes (Public) ---
		api.POST("/register", h.Register)
		api.POST("/login", h.Login)

		// --- Public Catalog Routes ---
		api.GET("/tires", h.GetTires)
		api.GET("/tires/:id", h.GetTire)
		api.GET("/brands", h.GetAllBrands)
		api.GET("/brands/:id/models", h.GetModelsByBrand)
		api.GET("/models", h.GetAllModels)

		// --- Recommendations (Public) ---
		api.POST("/recommendations", h.GetRecommendations)

		// --- Admin-Only Routes ---
		admin := api.Group("/")
		admin.Use(middleware.AuthMiddleware(h.DB))
		admin.Use(middleware.AdminMiddleware(h.DB))
		{
			admin.POST("/tires", h.CreateTire)
			admin.PATCH("/tires/:id", h.UpdateTire)
			admin.DELETE("/tires/:id", h.DeleteTire)

			admin.POST("/brands", h.CreateBrand)
			admin.PATCH("/brands/:id", h.UpdateBrand)
			admin.DELETE("/brands/:id", h.DeleteBrand)

			admin.POST("/models", h.CreateModel)
			admin.PATCH("/models/:id", h.UpdateModel)
			admin.DELETE("/models/:id", h.DeleteModel)

			admin.POST("/upload", h.UploadFile)

			admin.GET("/health/database", h.DatabaseHealth)
		}
	}

	return router
}
