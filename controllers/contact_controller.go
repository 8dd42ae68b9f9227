package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"leadhunter/backend/config"
	"leadhunter/backend/mailer"
	"leadhunter/backend/models"
)

func Contact(cfg config.Config) gin.HandlerFunc {
	sender := mailer.NewEmailSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.ContactRecipient)
	return func(c *gin.Context) {
		var req models.ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		if err := sender.SendContact(req.Name, req.Email, req.Phone, req.Message); err != nil {
			log.Printf("contact delivery error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send message"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "message sent successfully"})
	}
}
