package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"leadhunter/backend/config"
	"leadhunter/backend/controllers"
	"leadhunter/backend/middlewares"
)

func Register(r *gin.Engine, cfg config.Config) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "LeadHunterAI backend is running"})
	})

	api := r.Group("/api")
	{
		api.POST("/register", controllers.Register(cfg))
		api.POST("/login", controllers.Login(cfg))
		api.POST("/contact", controllers.Contact(cfg))

		priv := api.Group("/")
		priv.Use(middlewares.Auth(cfg.JWTSecret))
		priv.GET("profile", controllers.Profile())
		priv.PUT("profile", controllers.UpdateProfile())
		priv.POST("search", controllers.Search(cfg))
		priv.GET("history", controllers.History())
		priv.GET("history/export", controllers.HistoryExport())
	}
}
