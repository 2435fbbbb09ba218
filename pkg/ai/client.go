// pkg/ai/client.go

package ai

import "context"

// TextContext selects the instruction prompt used for one rewrite.
type TextContext string

const (
	ContextBenefits        TextContext = "benefits"
	ContextRisks           TextContext = "risks"
	ContextRecommendations TextContext = "recommendations"
	ContextGeneral         TextContext = "general"
)

// Result is the outcome of one simplification. When no model could be
// reached, Text carries the original input and Succeeded is false.
type Result struct {
	Text      string `json:"text"`
	Succeeded bool   `json:"succeeded"`
	Model     string `json:"model"`
}

// BatchInput groups the free-text plan fields simplified together.
type BatchInput struct {
	Benefits        string
	Risks           string
	Recommendations []string
}

// BatchOutput mirrors BatchInput after rewriting.
type BatchOutput struct {
	Benefits        string
	Risks           string
	Recommendations []string
}

// Simplifier rewrites technical agronomy text into farmer-readable
// language. Implementations never return an error: every failure path
// degrades to passing the input through unchanged.
type Simplifier interface {
	Simplify(ctx context.Context, text string, kind TextContext) Result
	BatchSimplify(ctx context.Context, in BatchInput) BatchOutput
}
