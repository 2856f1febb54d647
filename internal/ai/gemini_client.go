package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel   = "gemini-1.5-pro-latest"

	maxResponseBytes = 4 << 20
)

type GeminiClient struct {
	baseURL string
	client  *http.Client
	log     *slog.Logger
}

type Option func(*GeminiClient)

func WithBaseURL(baseURL string) Option {
	return func(c *GeminiClient) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *GeminiClient) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithTimeout sets the timeout on a copy of the current HTTP client.
// Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *GeminiClient) {
		hc := *c.client
		hc.Timeout = d
		c.client = &hc
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *GeminiClient) {
		if l != nil {
			c.log = l
		}
	}
}

func NewGeminiClient(opts ...Option) *GeminiClient {
	c := &GeminiClient{
		baseURL: DefaultBaseURL,
		client:  &http.Client{},
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content *content `json:"content"`
	} `json:"candidates"`
}

// firstText returns candidates[0].content.parts[0].text or "" if any step is missing.
func (r generateResponse) firstText() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	c := r.Candidates[0].Content
	if c == nil || len(c.Parts) == 0 {
		return ""
	}
	return c.Parts[0].Text
}

// GetRemoteAnswer sends the prompt verbatim as a single user turn.
// One request per call, no retries.
func (c *GeminiClient) GetRemoteAnswer(
	ctx context.Context,
	prompt string,
	credential string,
	modelID string,
) (Answer, error) {

	if credential == "" {
		return Answer{}, ErrMissingCredential
	}
	if modelID == "" {
		modelID = DefaultModel
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return Answer{}, &RemoteCallError{Cause: err}
	}

	endpoint := c.endpoint(modelID)

	// ключ только в query, не в заголовке
	q := url.Values{}
	q.Set("key", credential)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		endpoint+"?"+q.Encode(),
		bytes.NewReader(body),
	)
	if err != nil {
		return Answer{}, &RemoteCallError{Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug("[ai] gemini request", "url", endpoint, "model", modelID, "prompt_len", len(prompt))

	resp, err := c.client.Do(req)
	if err != nil {
		err = redactKey(err)
		c.log.Warn("[ai] gemini transport error", "err", err)
		return Answer{}, &RemoteCallError{Cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Answer{}, &RemoteCallError{StatusCode: resp.StatusCode, Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn("[ai] gemini non-2xx", "status", resp.StatusCode, "body", short(string(raw)))
		return Answer{}, &RemoteCallError{
			StatusCode: resp.StatusCode,
			Cause:      fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		c.log.Warn("[ai] gemini json error", "err", err, "body", short(string(raw)))
		return Answer{}, &RemoteCallError{StatusCode: resp.StatusCode, Cause: err}
	}

	text := strings.TrimSpace(out.firstText())
	if text == "" {
		c.log.Info("[ai] empty candidates")
	}

	return Answer{
		Content:    text,
		Confidence: RemoteConfidence,
	}, nil
}

func (c *GeminiClient) endpoint(modelID string) string {
	return c.baseURL + "/models/" + url.PathEscape(modelID) + ":generateContent"
}

// url.Error печатает полный URL вместе с key
func redactKey(err error) error {
	var ue *url.Error
	if !errors.As(err, &ue) {
		return err
	}
	u, perr := url.Parse(ue.URL)
	if perr != nil {
		return &url.Error{Op: ue.Op, URL: "<redacted>", Err: ue.Err}
	}
	q := u.Query()
	if q.Has("key") {
		q.Set("key", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return &url.Error{Op: ue.Op, URL: u.String(), Err: ue.Err}
}

// short cuts on a rune boundary
func short(s string) string {
	const limit = 180
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
