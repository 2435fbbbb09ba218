// pkg/ai/openrouter_client.go

package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Provider is one ranked model configuration. Providers are tried in
// order; the first that answers wins.
type Provider struct {
	Endpoint string
	Model    string
}

type openRouter struct {
	providers []Provider
	key       string
	httpc     *http.Client
}

// NewOpenRouter builds a Simplifier over an OpenRouter-compatible
// chat-completions API with a ranked provider list.
func NewOpenRouter(key string, providers ...Provider) Simplifier {
	return &openRouter{
		providers: providers,
		key:       key,
		httpc:     &http.Client{Timeout: 12 * time.Second},
	}
}

func (c *openRouter) Simplify(ctx context.Context, text string, kind TextContext) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Text: text, Succeeded: false, Model: "none"}
	}
	system := systemPrompt(kind)
	user := userPrompt(text)

	for _, p := range c.providers {
		out, err := c.call(ctx, p, system, user)
		if err != nil {
			continue
		}
		return Result{Text: CleanFormatting(out), Succeeded: true, Model: p.Model}
	}
	// total failure: pass the input through
	return Result{Text: CleanFormatting(text), Succeeded: false, Model: "none"}
}

func (c *openRouter) BatchSimplify(ctx context.Context, in BatchInput) BatchOutput {
	var (
		wg       sync.WaitGroup
		benefits Result
		risks    Result
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		benefits = c.Simplify(ctx, in.Benefits, ContextBenefits)
	}()
	go func() {
		defer wg.Done()
		risks = c.Simplify(ctx, in.Risks, ContextRisks)
	}()
	wg.Wait()

	out := BatchOutput{
		Benefits:        benefits.Text,
		Risks:           risks.Text,
		Recommendations: in.Recommendations,
	}
	if len(in.Recommendations) > 0 {
		res := c.Simplify(ctx, strings.Join(in.Recommendations, "\n"), ContextRecommendations)
		out.Recommendations = splitLines(res.Text)
	}
	return out
}

func (c *openRouter) call(ctx context.Context, p Provider, system, user string) (string, error) {
	reqBody := map[string]any{
		"model": p.Model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
		"temperature": 0.7,
		"max_tokens":  1000,
	}
	b, _ := json.Marshal(reqBody)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(p.Endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("simplify: status %d from %s", resp.StatusCode, p.Model)
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("simplify: no choices from %s", p.Model)
	}
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("simplify: empty response from %s", p.Model)
	}
	return content, nil
}

func splitLines(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if t := strings.TrimSpace(l); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func systemPrompt(kind TextContext) string {
	base := `You are an agricultural expert who communicates with farmers in simple, clear language. Rewrite technical agricultural text so it is easy to understand, uses everyday words, sounds natural and conversational, focuses on practical actions, speaks directly to the farmer, and carries no markdown formatting. The output should read like an experienced farmer advising another farmer.`

	switch kind {
	case ContextBenefits:
		return base + `

Context: you are explaining the BENEFITS of a crop rotation plan. Focus on what the farmer gains; use numbers and concrete examples; replace terms like "nitrogen fixation" with plain language such as "the soil gets richer naturally".`
	case ContextRisks:
		return base + `

Context: you are explaining RISKS. Say what could go wrong, how likely it is, and a simple way to handle each risk. Be honest but reassuring.`
	case ContextRecommendations:
		return base + `

Context: you are giving PRACTICAL ADVICE. Give step-by-step actions, keep one action per line, and say why each matters in simple terms.`
	default:
		return base
	}
}

func userPrompt(text string) string {
	return fmt.Sprintf(`Rewrite this text in simple, farmer-friendly language. Keep it direct and natural, with no markdown markers.

%s

Simplified version:`, text)
}
