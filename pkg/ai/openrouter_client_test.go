package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatServer(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": content}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestSimplifyFirstProviderWins(t *testing.T) {
	srv := chatServer(t, http.StatusOK, "Grow dal between wheat crops.")
	defer srv.Close()

	s := NewOpenRouter("key",
		Provider{Endpoint: srv.URL, Model: "primary"},
		Provider{Endpoint: srv.URL, Model: "fallback"},
	)
	res := s.Simplify(context.Background(), "Intercrop pulses within cereal cycles.", ContextGeneral)
	assert.True(t, res.Succeeded)
	assert.Equal(t, "primary", res.Model)
	assert.Equal(t, "Grow dal between wheat crops.", res.Text)
}

func TestSimplifyFallsBackToSecondProvider(t *testing.T) {
	bad := chatServer(t, http.StatusBadGateway, "")
	defer bad.Close()
	good := chatServer(t, http.StatusOK, "Simple words.")
	defer good.Close()

	s := NewOpenRouter("key",
		Provider{Endpoint: bad.URL, Model: "primary"},
		Provider{Endpoint: good.URL, Model: "fallback"},
	)
	res := s.Simplify(context.Background(), "original", ContextBenefits)
	assert.True(t, res.Succeeded)
	assert.Equal(t, "fallback", res.Model)
	assert.Equal(t, "Simple words.", res.Text)
}

func TestSimplifyTotalFailurePassesInputThrough(t *testing.T) {
	bad := chatServer(t, http.StatusInternalServerError, "")
	defer bad.Close()

	s := NewOpenRouter("key",
		Provider{Endpoint: bad.URL, Model: "primary"},
		Provider{Endpoint: bad.URL, Model: "fallback"},
	)
	res := s.Simplify(context.Background(), "original risk text stays usable", ContextRisks)
	assert.False(t, res.Succeeded)
	assert.Equal(t, "none", res.Model)
	assert.Equal(t, "original risk text stays usable", res.Text)
}

func TestSimplifyEmptyChoicesIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	s := NewOpenRouter("key", Provider{Endpoint: srv.URL, Model: "only"})
	res := s.Simplify(context.Background(), "keep me", ContextGeneral)
	assert.False(t, res.Succeeded)
	assert.Equal(t, "keep me", res.Text)
}

func TestSimplifyBlankInput(t *testing.T) {
	s := NewOpenRouter("key", Provider{Endpoint: "http://127.0.0.1:0", Model: "m"})
	res := s.Simplify(context.Background(), "   ", ContextGeneral)
	assert.False(t, res.Succeeded)
}

func TestBatchSimplify(t *testing.T) {
	srv := chatServer(t, http.StatusOK, "line one\nline two")
	defer srv.Close()

	s := NewOpenRouter("key", Provider{Endpoint: srv.URL, Model: "m"})
	out := s.BatchSimplify(context.Background(), BatchInput{
		Benefits:        "benefit prose",
		Risks:           "risk prose",
		Recommendations: []string{"first advice", "second advice"},
	})
	assert.Equal(t, "line one\nline two", out.Benefits)
	assert.Equal(t, "line one\nline two", out.Risks)
	assert.Equal(t, []string{"line one", "line two"}, out.Recommendations)
}

func TestBatchSimplifyKeepsRecommendationsOnFailure(t *testing.T) {
	bad := chatServer(t, http.StatusBadGateway, "")
	defer bad.Close()

	s := NewOpenRouter("key", Provider{Endpoint: bad.URL, Model: "m"})
	in := BatchInput{
		Benefits:        "benefit prose",
		Risks:           "risk prose",
		Recommendations: []string{"first advice", "second advice"},
	}
	out := s.BatchSimplify(context.Background(), in)
	assert.Equal(t, "benefit prose", out.Benefits)
	assert.Equal(t, "risk prose", out.Risks)
	assert.Equal(t, in.Recommendations, out.Recommendations)
}

func TestMockSimplifierPassesThrough(t *testing.T) {
	s := NewMock()
	res := s.Simplify(context.Background(), "**bold** advice", ContextGeneral)
	assert.True(t, res.Succeeded)
	assert.Equal(t, "mock", res.Model)
	assert.Equal(t, "bold advice", res.Text)
}
