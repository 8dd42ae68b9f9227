package leads

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadhunter/backend/models"
)

type fakeGenerator struct {
	reply string
	err   error

	lastPrompt string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.reply, f.err
}

func testRequest() models.LeadRequest {
	return models.LeadRequest{Niche: "dentistas", Region: "Brasília", Quantity: 3, Criteria: "sem site próprio"}
}

func TestRunValidBatch(t *testing.T) {
	gen := &fakeGenerator{reply: `{
        "leads": [
            {"id": "a-1", "name": "Clínica Sorriso", "contact": "+5561999990001", "score": 90, "whatsapp": "+5561999990001"},
            {"id": "a-2", "name": "Dr. Silva", "contact": "silva@example.com", "score": 0},
            {"id": "a-3", "name": "OdontoPlus", "contact": "+5561999990003", "score": 100, "website": "https://odontoplus.example"}
        ]
    }`}
	orch := Orchestrator{Gen: gen}

	out, err := orch.Run(context.Background(), testRequest(), nil, CompanyContext{})
	require.NoError(t, err)
	require.Len(t, out, 3)

	// generator order is preserved
	assert.Equal(t, "a-1", out[0].ID)
	assert.Equal(t, "a-2", out[1].ID)
	assert.Equal(t, "a-3", out[2].ID)
	for _, l := range out {
		assert.NotEmpty(t, l.Name)
		assert.NotEmpty(t, l.Contact)
		assert.GreaterOrEqual(t, l.Score, 0)
		assert.LessOrEqual(t, l.Score, 100)
	}
	require.NotNil(t, out[2].Website)
	assert.Equal(t, "https://odontoplus.example", *out[2].Website)
	assert.Nil(t, out[1].Instagram)
}

func TestRunToleratesSurroundingProse(t *testing.T) {
	gen := &fakeGenerator{reply: "Sure! Here are your leads:\n" +
		`{"leads": [{"id": "x", "name": "Acme", "contact": "acme@example.com", "score": 42}]}` +
		"\nLet me know if you need more."}
	orch := Orchestrator{Gen: gen}

	out, err := orch.Run(context.Background(), testRequest(), nil, CompanyContext{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 42, out[0].Score)
}

func TestRunMissingLeadsFieldYieldsEmpty(t *testing.T) {
	gen := &fakeGenerator{reply: `{"message": "nothing found"}`}
	orch := Orchestrator{Gen: gen}

	out, err := orch.Run(context.Background(), testRequest(), nil, CompanyContext{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRunUpstreamError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("connection refused")}
	orch := Orchestrator{Gen: gen}

	_, err := orch.Run(context.Background(), testRequest(), nil, CompanyContext{})
	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestRunBadUpstreamResponse(t *testing.T) {
	cases := []struct {
		name  string
		reply string
	}{
		{"no json at all", "I cannot help with that."},
		{"unbalanced braces", `{"leads": [`},
		{"malformed json", `{"leads": [{"id": }]}`},
		{"missing contact", `{"leads": [{"id": "x", "name": "Acme", "score": 50}]}`},
		{"missing id", `{"leads": [{"name": "Acme", "contact": "a@a.com", "score": 50}]}`},
		{"missing name", `{"leads": [{"id": "x", "contact": "a@a.com", "score": 50}]}`},
		{"missing score", `{"leads": [{"id": "x", "name": "Acme", "contact": "a@a.com"}]}`},
		{"score above range", `{"leads": [{"id": "x", "name": "Acme", "contact": "a@a.com", "score": 101}]}`},
		{"score below range", `{"leads": [{"id": "x", "name": "Acme", "contact": "a@a.com", "score": -1}]}`},
		{"fractional score", `{"leads": [{"id": "x", "name": "Acme", "contact": "a@a.com", "score": 85.5}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			orch := Orchestrator{Gen: &fakeGenerator{reply: tc.reply}}
			_, err := orch.Run(context.Background(), testRequest(), nil, CompanyContext{})
			assert.ErrorIs(t, err, ErrBadUpstreamResponse)
		})
	}
}

// One invalid element fails the whole batch, never a partial result.
func TestRunAllOrNothing(t *testing.T) {
	gen := &fakeGenerator{reply: `{"leads": [
        {"id": "ok-1", "name": "Good", "contact": "g@g.com", "score": 80},
        {"id": "bad-1", "name": "NoContact", "score": 80},
        {"id": "ok-2", "name": "AlsoGood", "contact": "a@a.com", "score": 80}
    ]}`}
	orch := Orchestrator{Gen: gen}

	out, err := orch.Run(context.Background(), testRequest(), nil, CompanyContext{})
	assert.ErrorIs(t, err, ErrBadUpstreamResponse)
	assert.Nil(t, out)
}

func TestRunFeedsHistoryIntoPrompt(t *testing.T) {
	gen := &fakeGenerator{reply: `{"leads": []}`}
	orch := Orchestrator{Gen: gen}
	history := []string{`{"id":"seen-1","name":"Old Lead","contact":"old@old.com","score":77}`}

	_, err := orch.Run(context.Background(), testRequest(), history, CompanyContext{Name: "Wolf Digital"})
	require.NoError(t, err)
	assert.Contains(t, gen.lastPrompt, "seen-1")
	assert.Contains(t, gen.lastPrompt, "Do not repeat")
	assert.Contains(t, gen.lastPrompt, "Wolf Digital")
}
