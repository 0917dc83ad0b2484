package routes

import (
	"time"

	"dateme/auth"
	"dateme/handlers"
	"dateme/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(tm *auth.TokenManager) *gin.Engine {
	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5500", "http://127.0.0.1:5500", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public routes (no auth required)
	router.POST("/signup", handlers.Signup)
	router.POST("/login", handlers.Login)

	// Protected routes
	protected := router.Group("/")
	protected.Use(middleware.RequireAuth(tm))

	protected.GET("/users", handlers.GetUsers)
	protected.POST("/like", handlers.Like)
	protected.POST("/dislike", handlers.Dislike)

	return router
}
