package leads

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/generative-ai-go/genai"

	"leadhunter/backend/models"
	"leadhunter/backend/utils"
)

var (
	// ErrGenerationFailed means the upstream service was unreachable or errored.
	ErrGenerationFailed = errors.New("generation failed")
	// ErrBadUpstreamResponse means the service answered but the content did
	// not parse or did not satisfy the lead schema.
	ErrBadUpstreamResponse = errors.New("bad upstream response")
)

// Generator produces raw text from a prompt. The production implementation
// wraps the Gemini client; tests substitute a fake.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type GeminiGenerator struct {
	Client *genai.Client
	Model  string
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return utils.GenerateJSON(ctx, g.Client, g.Model, genai.Text(prompt))
}

type Orchestrator struct {
	Gen Generator
}

// Run executes one lead search: build the instruction, call the generator,
// extract and parse the JSON reply, and validate every element against the
// lead schema. Validation is all-or-nothing: a single bad element fails the
// whole batch. Output order is the generator's order.
func (o *Orchestrator) Run(ctx context.Context, req models.LeadRequest, history []string, company CompanyContext) ([]models.Lead, error) {
	prompt := BuildPrompt(req, history, company)
	raw, err := o.Gen.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	obj, err := ExtractJSONObject(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadUpstreamResponse, err)
	}
	var payload struct {
		Leads []wireLead `json:"leads"`
	}
	if err := json.Unmarshal([]byte(obj), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadUpstreamResponse, err)
	}
	out := make([]models.Lead, 0, len(payload.Leads))
	for i, w := range payload.Leads {
		lead, err := w.validate()
		if err != nil {
			return nil, fmt.Errorf("%w: lead %d: %v", ErrBadUpstreamResponse, i, err)
		}
		out = append(out, lead)
	}
	return out, nil
}

// wireLead uses pointers so a missing required field is distinguishable
// from a zero value. The score is accepted as a JSON number and must be a
// whole value in [0,100].
type wireLead struct {
	ID        *string  `json:"id"`
	Name      *string  `json:"name"`
	Instagram *string  `json:"instagram"`
	Website   *string  `json:"website"`
	Whatsapp  *string  `json:"whatsapp"`
	Contact   *string  `json:"contact"`
	Score     *float64 `json:"score"`
}

func (w wireLead) validate() (models.Lead, error) {
	if w.ID == nil || strings.TrimSpace(*w.ID) == "" {
		return models.Lead{}, errors.New("missing id")
	}
	if w.Name == nil || strings.TrimSpace(*w.Name) == "" {
		return models.Lead{}, errors.New("missing name")
	}
	if w.Contact == nil || strings.TrimSpace(*w.Contact) == "" {
		return models.Lead{}, errors.New("missing contact")
	}
	if w.Score == nil {
		return models.Lead{}, errors.New("missing score")
	}
	s := *w.Score
	if s != math.Trunc(s) || s < 0 || s > 100 {
		return models.Lead{}, fmt.Errorf("score %v out of range", s)
	}
	return models.Lead{
		ID:        *w.ID,
		Name:      *w.Name,
		Instagram: w.Instagram,
		Website:   w.Website,
		Whatsapp:  w.Whatsapp,
		Contact:   *w.Contact,
		Score:     int(s),
	}, nil
}
