package leads

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"leadhunter/backend/models"
)

func TestBuildPromptCoreFields(t *testing.T) {
	req := models.LeadRequest{
		Niche:    "dentistas",
		Region:   "Brasília",
		Quantity: 3,
		Criteria: "sem site próprio",
	}
	p := BuildPrompt(req, nil, CompanyContext{})

	assert.Contains(t, p, "find 3 companies")
	assert.Contains(t, p, "'dentistas'")
	assert.Contains(t, p, "'Brasília'")
	assert.Contains(t, p, "sem site próprio")
	assert.Contains(t, p, `array field named 'leads'`)
	assert.Contains(t, p, "without any surrounding prose")
	assert.NotContains(t, p, "already delivered")
	assert.NotContains(t, p, "keywords")
}

func TestBuildPromptOptionalSections(t *testing.T) {
	req := models.LeadRequest{
		Niche:           "energia solar",
		Region:          "São Paulo",
		Quantity:        10,
		Criteria:        "poucos reels, não anuncia",
		IncludeKeywords: []string{"residencial", "telhado"},
		ExcludeKeywords: []string{"industrial"},
	}
	history := []string{
		`{"id":"1","name":"Solar A","contact":"a@a.com","score":70}`,
		`{"id":"2","name":"Solar B","contact":"b@b.com","score":60}`,
	}
	company := CompanyContext{Name: "Wolf Digital", Services: "gestão de tráfego pago"}
	p := BuildPrompt(req, history, company)

	assert.Contains(t, p, "'Wolf Digital'")
	assert.Contains(t, p, "gestão de tráfego pago")
	assert.Contains(t, p, "residencial, telhado")
	assert.Contains(t, p, "industrial")
	assert.Contains(t, p, "Do not repeat any of them")
	for _, h := range history {
		assert.Contains(t, p, h)
	}
}
