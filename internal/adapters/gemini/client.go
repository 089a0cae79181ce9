package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/wealthfin/finance_dashboard_app/internal/apperrors"
	portssvc "github.com/wealthfin/finance_dashboard_app/internal/core/ports/services"
)

// Client calls the Gemini generateContent API. Every call is bounded by the
// configured timeout; transport failures, non-success statuses and replies
// without text all surface as ErrUpstreamUnavailable for the insight service
// to absorb.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Gemini client. baseURL is the full generateContent
// endpoint; the API key is passed as a query parameter per the Gemini REST
// contract.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Ensure Client implements the NarrativeProvider port.
var _ portssvc.NarrativeProvider = (*Client)(nil)

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateCandidate struct {
	Content generateContent `json:"content"`
}

type generateResponse struct {
	Candidates []generateCandidate `json:"candidates"`
}

// Generate sends the prompt to the model and returns the first candidate's
// text. Parsing anything beyond the Gemini envelope is the caller's concern.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents: []generateContent{
			{Parts: []generatePart{{Text: prompt}}},
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"?key="+c.apiKey, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%w: unexpected status %d", apperrors.ErrUpstreamUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response body: %v", apperrors.ErrUpstreamUnavailable, err)
	}

	var genResp generateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: response contains no candidates", apperrors.ErrUpstreamUnavailable)
	}

	return genResp.Candidates[0].Content.Parts[0].Text, nil
}
