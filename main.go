package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"leadhunter/backend/config"
	"leadhunter/backend/database"
	"leadhunter/backend/routes"
)

func main() {
	cfg := config.Load()
	database.Connect(cfg.DatabaseURL)
	database.EnsureSchema()
	r := gin.Default()
	r.Use(corsMiddleware(cfg.AllowedOrigins))
	routes.Register(r, cfg)
	log.Printf("server on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func corsMiddleware(allowed []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		for _, a := range allowed {
			if a == "*" || a == origin {
				if a == "*" {
					c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
				} else {
					c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
				}
				break
			}
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
