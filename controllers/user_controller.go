package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"leadhunter/backend/database"
	"leadhunter/backend/models"
)

func Profile() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetInt64("user_id")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		var u models.User
		err := database.Pool.QueryRow(ctx, `SELECT id, email, company_name, company_services, created_at FROM users WHERE id=$1`, uid).
			Scan(&u.ID, &u.Email, &u.CompanyName, &u.CompanyServices, &u.CreatedAt)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// UpdateProfile overwrites only the fields present in the body; the
// password is untouched here.
func UpdateProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ProfileUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		uid := c.GetInt64("user_id")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_, err := database.Pool.Exec(ctx, `UPDATE users SET
            company_name = COALESCE($1, company_name),
            company_services = COALESCE($2, company_services)
            WHERE id = $3`, req.CompanyName, req.CompanyServices, uid)
		if err != nil {
			log.Printf("profile update error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		var u models.User
		err = database.Pool.QueryRow(ctx, `SELECT id, email, company_name, company_services, created_at FROM users WHERE id=$1`, uid).
			Scan(&u.ID, &u.Email, &u.CompanyName, &u.CompanyServices, &u.CreatedAt)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusOK, u)
	}
}
