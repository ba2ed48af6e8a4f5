// Package api is the REST client for the CRM backend the board syncs
// against. It deals only in wire shapes; conversion to domain models
// lives in internal/converters.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ayaanshkk/switchboard/internal/models"
	"github.com/ayaanshkk/switchboard/internal/types"
)

// PipelineRecord is one pipeline entry as the backend ships it:
// a stable customer id, the denormalized customer fields, and the
// current stage name.
type PipelineRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Company   string    `json:"company"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Notes     string    `json:"notes"`
	Value     float64   `json:"value"`
	Stage     string    `json:"stage"`
	CreatedAt time.Time `json:"created_at"`
}

// StageUpdate is the body of a stage change request.
type StageUpdate struct {
	Stage        string `json:"stage"`
	PipelineType string `json:"pipeline_type"`
	Reason       string `json:"reason"`
	UpdatedBy    string `json:"updated_by"`
}

// Client talks to the CRM backend over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given base URL. The timeout
// bounds every individual request; there is no retry layer.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// FetchPipeline retrieves the ordered records of one pipeline.
func (c *Client) FetchPipeline(ctx context.Context, pipeline models.PipelineType) ([]PipelineRecord, error) {
	url := fmt.Sprintf("%s/pipeline/%s", c.baseURL, pipeline)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s pipeline: %w", pipeline, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Method: http.MethodGet, URL: url, StatusCode: resp.StatusCode}
	}

	var records []PipelineRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode %s pipeline: %w", pipeline, err)
	}
	return records, nil
}

// UpdateCustomerStage persists one customer's stage change. Success
// means any 2xx; the response body is not consulted.
func (c *Client) UpdateCustomerStage(ctx context.Context, id types.CustomerID, update StageUpdate) error {
	body, err := json.Marshal(update)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/customers/%s/stage", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("update stage for customer %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Method: http.MethodPatch, URL: url, StatusCode: resp.StatusCode}
	}
	return nil
}
