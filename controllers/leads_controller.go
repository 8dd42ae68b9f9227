package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"leadhunter/backend/config"
	"leadhunter/backend/database"
	"leadhunter/backend/leads"
	"leadhunter/backend/models"
	"leadhunter/backend/utils"
)

// Search runs one lead generation round: prior history feeds the prompt so
// the generator can avoid repeats, validated results are stored under a
// fresh batch id and returned in generator order.
func Search(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LeadRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		uid := c.GetInt64("user_id")
		ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
		defer cancel()

		var company leads.CompanyContext
		var name, services *string
		if err := database.Pool.QueryRow(ctx, `SELECT company_name, company_services FROM users WHERE id=$1`, uid).Scan(&name, &services); err != nil {
			// Proceed without company context; the search itself still works.
			log.Printf("search company lookup error (user %d): %v", uid, err)
		} else {
			if name != nil {
				company.Name = *name
			}
			if services != nil {
				company.Services = *services
			}
		}

		history, err := loadHistoryRaw(ctx, uid)
		if err != nil {
			log.Printf("search history load error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		aiClient, err := utils.NewAIClient(ctx, utils.AIConfig{APIKey: cfg.GeminiAPIKey, GenModel: cfg.GeminiModel})
		if err != nil {
			log.Printf("search ai client error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate leads"})
			return
		}
		defer aiClient.Close()

		orch := leads.Orchestrator{Gen: &leads.GeminiGenerator{Client: aiClient, Model: cfg.GeminiModel}}
		result, err := orch.Run(ctx, req, history, company)
		if err != nil {
			log.Printf("search orchestrator error (user %d): %v", uid, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate leads"})
			return
		}

		batchID := uuid.NewString()
		for _, lead := range result {
			raw, _ := json.Marshal(lead)
			if _, err := database.Pool.Exec(ctx, `INSERT INTO lead_history(user_id, batch_id, lead) VALUES($1, $2, $3::jsonb)`, uid, batchID, string(raw)); err != nil {
				log.Printf("search history insert error: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
				return
			}
		}
		c.JSON(http.StatusOK, result)
	}
}

func History() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetInt64("user_id")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		raw, err := loadHistoryRaw(ctx, uid)
		if err != nil {
			log.Printf("history load error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		out := make([]models.Lead, 0, len(raw))
		for _, r := range raw {
			var lead models.Lead
			if err := json.Unmarshal([]byte(r), &lead); err != nil {
				log.Printf("history decode error (user %d): %v", uid, err)
				continue
			}
			out = append(out, lead)
		}
		c.JSON(http.StatusOK, out)
	}
}

// HistoryExport streams the caller's stored leads as an XLSX workbook.
func HistoryExport() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetInt64("user_id")
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		rows, err := database.Pool.Query(ctx, `SELECT lead, created_at FROM lead_history WHERE user_id=$1 ORDER BY created_at DESC, id DESC`, uid)
		if err != nil {
			log.Printf("history export query error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		defer rows.Close()

		f := excelize.NewFile()
		sheet := "Sheet1"
		headers := []string{"name", "contact", "whatsapp", "instagram", "website", "score", "generated_at"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
		}
		rowNum := 2
		for rows.Next() {
			var raw []byte
			var createdAt time.Time
			if err := rows.Scan(&raw, &createdAt); err != nil {
				continue
			}
			var lead models.Lead
			if err := json.Unmarshal(raw, &lead); err != nil {
				continue
			}
			values := []any{lead.Name, lead.Contact, deref(lead.Whatsapp), deref(lead.Instagram), deref(lead.Website), lead.Score, createdAt.Format(time.RFC3339)}
			for i, v := range values {
				cell, _ := excelize.CoordinatesToCellName(i+1, rowNum)
				f.SetCellValue(sheet, cell, v)
			}
			rowNum++
		}
		if err := rows.Err(); err != nil {
			log.Printf("history export rows error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=leads-%s.xlsx", time.Now().Format("2006-01-02")))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := f.Write(c.Writer); err != nil {
			log.Printf("history export write error: %v", err)
		}
	}
}

// loadHistoryRaw returns the caller's stored leads as serialized JSON,
// newest first. No cap: history growth is unbounded by design.
func loadHistoryRaw(ctx context.Context, uid int64) ([]string, error) {
	rows, err := database.Pool.Query(ctx, `SELECT lead FROM lead_history WHERE user_id=$1 ORDER BY created_at DESC, id DESC`, uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]string, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		out = append(out, string(raw))
	}
	return out, rows.Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
