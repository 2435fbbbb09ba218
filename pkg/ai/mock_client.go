// pkg/ai/mock_client.go

package ai

import (
	"context"
	"strings"
)

type mockSimplifier struct{}

// NewMock returns a Simplifier that passes text through with formatting
// cleanup only. Used when no API key is configured.
func NewMock() Simplifier { return &mockSimplifier{} }

func (m *mockSimplifier) Simplify(_ context.Context, text string, _ TextContext) Result {
	return Result{Text: CleanFormatting(text), Succeeded: true, Model: "mock"}
}

func (m *mockSimplifier) BatchSimplify(_ context.Context, in BatchInput) BatchOutput {
	recs := make([]string, 0, len(in.Recommendations))
	for _, r := range in.Recommendations {
		if t := strings.TrimSpace(CleanFormatting(r)); t != "" {
			recs = append(recs, t)
		}
	}
	return BatchOutput{
		Benefits:        CleanFormatting(in.Benefits),
		Risks:           CleanFormatting(in.Risks),
		Recommendations: recs,
	}
}
