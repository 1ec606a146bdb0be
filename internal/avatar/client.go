// ABOUTME: HTTP client for the talking-avatar service session-token API.
// ABOUTME: Builds the persona config embedding health data and tool schemas.
package avatar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultBaseURL = "https://api.anam.ai"

	avatarID = "6dbc1e47-7768-403e-878a-94d7fcc3677b"
	voiceID  = "6bfbe25a-979d-40f3-a92b-5394170af54b"
	llmID    = "0934d97d-0c3a-4f33-91b0-5e136a0ef466"
)

// ClientConfig configures the avatar API client.
type ClientConfig struct {
	BaseURL        string        // avatar service base URL
	APIKey         string        // bearer token for the avatar API
	ToolHandlerURL string        // public URL the avatar calls for tool invocations
	Timeout        time.Duration // HTTP request timeout
}

// DefaultClientConfig returns sensible defaults. The API key must still be
// provided by the caller.
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL:        defaultBaseURL,
		ToolHandlerURL: "http://localhost:9002/api/avatar-tool",
		Timeout:        30 * time.Second,
	}
}

// Client requests session tokens from the avatar service.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new avatar API client.
func NewClient(cfg *ClientConfig, logger zerolog.Logger) *Client {
	if cfg == nil {
		cfg = DefaultClientConfig()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger.With().Str("component", "avatar-client").Logger(),
	}
}

// toolDefinition describes one tool in the persona config.
type toolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	HTTPHandler map[string]any `json:"httpHandler"`
	Parameters  map[string]any `json:"parameters"`
}

// personaConfig is the avatar service persona payload.
type personaConfig struct {
	Name         string           `json:"name"`
	AvatarID     string           `json:"avatarId"`
	VoiceID      string           `json:"voiceId"`
	LLMID        string           `json:"llmId"`
	SystemPrompt string           `json:"systemPrompt"`
	Tools        []toolDefinition `json:"tools"`
}

type sessionTokenRequest struct {
	PersonaConfig personaConfig `json:"personaConfig"`
}

type sessionTokenResponse struct {
	SessionToken string `json:"sessionToken"`
}

// SessionToken requests a session token for a video-agent session. The
// persona's system prompt embeds the current health document so the agent
// can answer questions about it; the tool definitions point back at the
// configured tool-handler URL.
func (c *Client) SessionToken(ctx context.Context, healthDataJSON string) (string, error) {
	if c.config.APIKey == "" {
		return "", fmt.Errorf("avatar API key is not set")
	}

	reqBody := sessionTokenRequest{
		PersonaConfig: personaConfig{
			Name:         "Health Assistant",
			AvatarID:     avatarID,
			VoiceID:      voiceID,
			LLMID:        llmID,
			SystemPrompt: systemPrompt(healthDataJSON),
			Tools:        c.toolDefinitions(),
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal session request: %w", err)
	}

	url := c.config.BaseURL + "/v1/auth/session-token"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build session request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request session token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("body", string(body)).
			Msg("avatar API request failed")
		return "", fmt.Errorf("avatar API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var out sessionTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode session response: %w", err)
	}
	return out.SessionToken, nil
}

// systemPrompt renders the persona system prompt with the user's current
// health data inlined.
func systemPrompt(healthDataJSON string) string {
	return "You are a friendly AI health assistant. You have access to the user's health data " +
		"and a set of tools to modify it. Use this data to provide personalized health insights " +
		"and answer questions about their health patterns. If the user asks to log, add, update, " +
		"or delete data, use the provided tools. After using a tool, confirm to the user that the " +
		"data has been logged, updated, or deleted.\n\nUser's Health Data: " + healthDataJSON + "\n"
}
