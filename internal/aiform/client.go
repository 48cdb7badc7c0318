// Package aiform wraps the external form-generation model behind a plain
// request/response call. The model itself is an opaque hosted service; this
// client only shapes the JSON contract.
package aiform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"onboard_panel/model"
)

// Request describes the form the admin wants generated.
type Request struct {
	JobTitle       string   `json:"jobTitle"`
	JobDescription string   `json:"jobDescription,omitempty"`
	Department     string   `json:"department,omitempty"`
	WorkerType     string   `json:"workerType,omitempty"`
	Tone           string   `json:"tone,omitempty"`
	WantedFields   []string `json:"wantedFields,omitempty"`
}

// Response is the generated form: a display name plus ordered field
// definitions ready to embed in an onboarding process.
type Response struct {
	Name   string            `json:"name"`
	Fields []model.FormField `json:"fields"`
}

// Client posts generation requests to the hosted model endpoint.
type Client struct {
	url    string
	apiKey string
	http   *http.Client
}

func NewClient(url, apiKey string) *Client {
	return &Client{
		url:    url,
		apiKey: apiKey,
		http:   &http.Client{Timeout: 60 * time.Second},
	}
}

// Generate calls the model and decodes the generated form. Any non-200
// answer surfaces as an error with the status and a body excerpt.
func (c *Client) Generate(ctx context.Context, req Request) (*Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("form generation returned %d: %s", resp.StatusCode, excerpt)
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode form generation response: %w", err)
	}
	return &out, nil
}
