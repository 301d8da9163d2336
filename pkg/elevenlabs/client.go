package elevenlabs

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	defaultVoiceID = "pNInz6obpgDQGcFmaJgB"
	defaultModelID = "eleven_multilingual_v2"
)

// Client is the ElevenLabs text-to-speech API client.
type Client struct {
	apiKey     string
	apiURL     string
	voiceID    string
	modelID    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithVoiceID overrides the default voice.
func WithVoiceID(voiceID string) Option {
	return func(c *Client) {
		if voiceID != "" {
			c.voiceID = voiceID
		}
	}
}

// WithBaseURL overrides the API base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.apiURL = url
		}
	}
}

// NewClient creates a new ElevenLabs API client with the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		apiURL:     "https://api.elevenlabs.io/v1",
		voiceID:    defaultVoiceID,
		modelID:    defaultModelID,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type synthesizeRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id"`
}

// Synthesize converts text to speech and returns the audio as base64.
func (c *Client) Synthesize(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", nil
	}

	url := fmt.Sprintf("%s/text-to-speech/%s", c.apiURL, c.voiceID)

	body, err := json.Marshal(synthesizeRequest{Text: text, ModelID: c.modelID})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to call elevenlabs API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("elevenlabs API error %d: %s", resp.StatusCode, string(raw))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read audio stream: %w", err)
	}

	return base64.StdEncoding.EncodeToString(audio), nil
}
