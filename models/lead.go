package models

// Lead is produced by the generation service and persisted verbatim.
// It is never mutated after validation.
type Lead struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Instagram *string `json:"instagram,omitempty"`
	Website   *string `json:"website,omitempty"`
	Whatsapp  *string `json:"whatsapp,omitempty"`
	Contact   string  `json:"contact"`
	Score     int     `json:"score"`
}

type LeadRequest struct {
	Niche           string   `json:"niche" binding:"required"`
	Region          string   `json:"region" binding:"required"`
	Quantity        int      `json:"quantity" binding:"required,min=1,max=50"`
	Criteria        string   `json:"criteria" binding:"required"`
	IncludeKeywords []string `json:"include_keywords"`
	ExcludeKeywords []string `json:"exclude_keywords"`
}
