package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vovarama1992/mi-crypto-assistant/internal/config"
)

func testConfig(baseURL string) config.Config {
	return config.Config{
		GeminiModel:       "gemini-1.5-pro-latest",
		GeminiBaseURL:     baseURL,
		GeminiTimeoutSecs: 5,
		LogLevel:          "error",
	}
}

func TestAskRemote(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"BTC is bitcoin"}]}}]}`))
	}))
	defer srv.Close()

	var out bytes.Buffer
	err := newCommand(testConfig(srv.URL), &out).
		Run(context.Background(), []string{"ask", "--key", "cli-key", "what", "is", "BTC?"})
	require.NoError(t, err)
	assert.Equal(t, "cli-key", gotKey)
	assert.Contains(t, out.String(), "BTC is bitcoin")
	assert.Contains(t, out.String(), "confidence: 85%")
}

func TestAskFallback(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	var out bytes.Buffer
	err := newCommand(testConfig("http://127.0.0.1:1"), &out).
		Run(context.Background(), []string{"ask", "gm"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Mock answer for “gm”")
	assert.Contains(t, out.String(), "confidence: 50% (mock)")
}

func TestAskRemoteFailure(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	var out bytes.Buffer
	err := newCommand(testConfig(srv.URL), &out).
		Run(context.Background(), []string{"ask", "--key", "k", "hi"})
	require.ErrorIs(t, err, errRemoteFailed)
	assert.Contains(t, out.String(), "Failed to fetch a response from Gemini")
}
