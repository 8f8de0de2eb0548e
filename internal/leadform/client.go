package leadform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/alicia-green/storefront/internal/models"
)

// LeadPath is where the intake endpoint is mounted
const LeadPath = "/api/lead"

// Response is the endpoint's answer to one submission
type Response struct {
	StatusCode int
	Body       models.LeadResponse
}

// Success reports a 2xx status with ok set in the envelope
func (r *Response) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300 && r.Body.OK
}

// Client posts leads to the intake endpoint over HTTP
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the site at baseURL. A nil httpClient uses http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// SubmitLead sends req as JSON. Transport failures and undecodable
// responses are errors; 4xx answers are returned as a Response.
func (c *Client) SubmitLead(ctx context.Context, req models.LeadRequest) (*Response, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode lead: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+LeadPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to submit lead: %w", err)
	}
	defer resp.Body.Close()

	out := &Response{StatusCode: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(&out.Body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return out, nil
}
