// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"text/template"
	"time"
	"unicode/utf8"

	"github.com/goccy/go-json"

	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/httputil"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/pkg/types"
)

// summaryPromptTmpl is the user message sent with each request.
var summaryPromptTmpl = template.Must(template.New("summary").Parse(
	"Summarize this NASA biology paper in 4 concise bullet points:\n\n{{.Text}}"))

// echoMarker identifies replies that repeat the prompt instead of answering.
const echoMarker = "Summarize this NASA"

// GroqBackend calls the Groq chat completions API.
type GroqBackend struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float64
	MaxRetries  int
	UserAgent   string
	Client      *http.Client
}

// NewGroq builds a backend from cfg.
func NewGroq(cfg types.SummaryConfig) *GroqBackend {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &GroqBackend{
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.BaseURL,
		Model:       cfg.Model,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		MaxRetries:  cfg.MaxRetries,
		UserAgent:   cfg.UserAgent,
		Client:      &http.Client{Timeout: timeout},
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Summarize sends one chat completion request. Every failure wraps
// ErrUnavailable.
func (g *GroqBackend) Summarize(ctx context.Context, text string) (string, error) {
	if g.APIKey == "" {
		return "", fmt.Errorf("%w: no API key configured", ErrUnavailable)
	}

	prompt, err := renderPrompt(text)
	if err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}

	body, err := json.Marshal(chatRequest{
		Model:       g.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: g.Temperature,
		MaxTokens:   g.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := strings.TrimRight(g.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.APIKey)
	if g.UserAgent != "" {
		req.Header.Set("User-Agent", g.UserAgent)
	}

	client := g.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, g.MaxRetries)
	if err != nil {
		return "", fmt.Errorf("%w: calling chat API: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%w: chat API returned %d: %s", ErrUnavailable, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("%w: decoding chat response: %v", ErrUnavailable, err)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("%w: chat API returned no choices", ErrUnavailable)
	}

	content := strings.TrimSpace(cr.Choices[0].Message.Content)
	if strings.Contains(content, echoMarker) || utf8.RuneCountInString(content) < MinInputLen {
		return "", fmt.Errorf("%w: reply echoed the prompt or was too short", ErrUnavailable)
	}
	return content, nil
}

func renderPrompt(text string) (string, error) {
	var buf bytes.Buffer
	if err := summaryPromptTmpl.Execute(&buf, struct{ Text string }{Text: text}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
