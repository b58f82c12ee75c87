// canvas/genai/genai_service.go
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/walkcanvas/go-services/shared/api"
)

// GenAIService is the client for the generative-text API. It sends one
// prompt per request and returns the first candidate's text verbatim.
type GenAIService struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// NewGenAIService creates a new instance of GenAIService. The API key is
// an opaque secret provisioned via configuration.
func NewGenAIService(baseURL, apiKey, model string, timeout time.Duration) *GenAIService {
	return &GenAIService{
		httpClient: api.NewDefaultHTTPClient(timeout),
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
	}
}

// generateRequest mirrors the generateContent request body.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// generateResponse mirrors the subset of the generateContent response we
// consume.
type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Complete sends the prompt to the generative-text API and returns the
// completion text. May fail transiently; no retry is attempted here.
func (gs *GenAIService) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal generate request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		gs.baseURL, gs.model, url.QueryEscape(gs.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := gs.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call generative-text API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status from generative-text API: %d", resp.StatusCode)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read generative-text API response: %w", err)
	}

	var genResp generateResponse
	if err := json.Unmarshal(bodyBytes, &genResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal generative-text API response: %w", err)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("generative-text API returned no candidates")
	}
	text := genResp.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("generative-text API returned an empty completion")
	}
	return text, nil
}
