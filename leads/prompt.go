package leads

import (
	"fmt"
	"strings"

	"leadhunter/backend/models"
)

// CompanyContext is the caller's declared company profile, injected into
// the prompt to bias lead relevance. Empty fields are omitted.
type CompanyContext struct {
	Name     string
	Services string
}

// BuildPrompt composes the generation instruction. history holds the
// caller's previously stored leads in serialized form; they are listed so
// the generator can avoid repeating them (best effort, not enforced).
func BuildPrompt(req models.LeadRequest, history []string, company CompanyContext) string {
	var b strings.Builder
	b.WriteString("Act as a specialist in B2B client prospecting and lead generation.\n\n")
	fmt.Fprintf(&b, "Your task is to find %d companies or professionals in the '%s' niche in the region of '%s'.\n\n", req.Quantity, req.Niche, req.Region)
	fmt.Fprintf(&b, "Ideal leads are those with low digital presence, according to the following criteria: %s.\n", req.Criteria)

	if company.Name != "" || company.Services != "" {
		b.WriteString("\nThe requester runs the company")
		if company.Name != "" {
			fmt.Fprintf(&b, " '%s'", company.Name)
		}
		if company.Services != "" {
			fmt.Fprintf(&b, ", which offers: %s", company.Services)
		}
		b.WriteString(". Prioritize leads that would plausibly need these services.\n")
	}
	if len(req.IncludeKeywords) > 0 {
		fmt.Fprintf(&b, "\nOnly include leads related to the following keywords: %s.\n", strings.Join(req.IncludeKeywords, ", "))
	}
	if len(req.ExcludeKeywords) > 0 {
		fmt.Fprintf(&b, "\nExclude any lead related to the following keywords: %s.\n", strings.Join(req.ExcludeKeywords, ", "))
	}
	if len(history) > 0 {
		b.WriteString("\nThe following leads were already delivered in previous searches. Do not repeat any of them:\n")
		for _, h := range history {
			b.WriteString(h)
			b.WriteString("\n")
		}
	}

	b.WriteString(`
For each lead, provide the following fields in valid JSON. Field names are fixed, English, lower-case:
- id: a uuid v4 identifying the lead.
- name: the company or professional name.
- instagram: the Instagram profile link (if found).
- website: the website link (if found).
- whatsapp: the WhatsApp contact number (if found).
- contact: a phone number or contact email (required).
- score: an integer from 0 to 100 for how well the lead matches the low-digital-presence criteria. Higher scores are more promising.

The final result must be a single JSON object with one array field named 'leads' containing one object per lead. Respond with the JSON object only, without any surrounding prose.
Example output format:
{
    "leads": [
        {
            "id": "123e4567-e89b-12d3-a456-426614174000",
            "name": "Example Company",
            "instagram": "https://instagram.com/example",
            "website": "https://example.com",
            "whatsapp": "+5561999998888",
            "contact": "contact@example.com",
            "score": 85
        }
    ]
}
`)
	return b.String()
}
