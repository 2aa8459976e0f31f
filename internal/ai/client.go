// Package ai wraps the external generative-model provider behind typed
// request/response pairs, one per flow. Every call is a single JSON
// request/response exchange; there is no streaming and no retry policy.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the generative-model provider.
type Client struct {
	endpoint string
	apiKey   string
	model    string
	http     *http.Client
}

// NewClient creates a provider client. A timeout of zero means no timeout.
func NewClient(endpoint, apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		model:    model,
		http:     &http.Client{Timeout: timeout},
	}
}

// ModerateContent flags content that violates the community guidelines.
func (c *Client) ModerateContent(ctx context.Context, in ModerateContentInput) (*ModerateContentOutput, error) {
	if !in.ContentType.Valid() {
		return nil, fmt.Errorf("invalid content type %q", in.ContentType)
	}
	out := &ModerateContentOutput{}
	if err := c.generate(ctx, "moderateContent", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GenerateCaptions suggests captions and tags for a video description.
func (c *Client) GenerateCaptions(ctx context.Context, in GenerateCaptionsInput) (*GenerateCaptionsOutput, error) {
	out := &GenerateCaptionsOutput{}
	if err := c.generate(ctx, "generateCaptionsAndTags", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DetectFraud scores a view for engagement fraud.
func (c *Client) DetectFraud(ctx context.Context, in DetectFraudInput) (*DetectFraudOutput, error) {
	if !in.Mood.Valid() {
		return nil, fmt.Errorf("invalid mood %q", in.Mood)
	}
	out := &DetectFraudOutput{}
	if err := c.generate(ctx, "fraudDetection", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// SuggestBugFix proposes a fix for the given error logs.
func (c *Client) SuggestBugFix(ctx context.Context, in SuggestBugFixInput) (*SuggestBugFixOutput, error) {
	out := &SuggestBugFixOutput{}
	if err := c.generate(ctx, "suggestBugFix", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// RecommendVideos recommends videos for the viewer's mood and history.
func (c *Client) RecommendVideos(ctx context.Context, in RecommendVideosInput) (*RecommendVideosOutput, error) {
	if !in.DetectedMood.Valid() {
		return nil, fmt.Errorf("invalid mood %q", in.DetectedMood)
	}
	out := &RecommendVideosOutput{}
	if err := c.generate(ctx, "moodBasedContentRecommendation", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type generateRequest struct {
	Model string `json:"model"`
	Flow  string `json:"flow"`
	Input any    `json:"input"`
}

type generateResponse struct {
	Output json.RawMessage `json:"output"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// generate performs one request/response exchange with the provider and
// decodes the flow output strictly against the expected schema.
func (c *Client) generate(ctx context.Context, flow string, input, output any) error {
	body, err := json.Marshal(generateRequest{Model: c.model, Flow: flow, Input: input})
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var errResp errorResponse
		if json.Unmarshal(raw, &errResp) != nil || errResp.Error == "" {
			errResp.Error = string(raw)
		}
		return &ProviderError{StatusCode: resp.StatusCode, Message: errResp.Error}
	}

	var envelope generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(envelope.Output))
	dec.DisallowUnknownFields()
	if err := dec.Decode(output); err != nil {
		return fmt.Errorf("provider output does not match %s schema: %w", flow, err)
	}
	return nil
}
