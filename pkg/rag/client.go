// Package rag is a thin client for the crop-rotation RAG query service.
// The answer is unstructured prose; pkg/parse turns it into a plan.
package rag

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Answer is the RAG service response.
type Answer struct {
	Answer  string `json:"answer"`
	Sources []any  `json:"sources"`
}

type Client struct {
	endpoint string
	httpc    *http.Client
}

func New(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		httpc:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Query posts a question and returns the free-text answer.
func (c *Client) Query(ctx context.Context, question, userID string) (*Answer, error) {
	if userID == "" {
		userID = "demo_user"
	}
	body, _ := json.Marshal(map[string]string{
		"question": question,
		"user_id":  userID,
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(c.endpoint, "/")+"/api/v2/query", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("rag: status %d", resp.StatusCode)
	}

	var out Answer
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}
