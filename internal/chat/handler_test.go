package chat

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vovarama1992/mi-crypto-assistant/internal/ai"
)

func newTestRouter(p ai.Provider, serverKey string) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(NewService(NewRepo(), p, serverKey, "", discardLogger())))
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleSendAndHistory(t *testing.T) {
	h := newTestRouter(&stubProvider{}, "")

	rec := do(t, h, http.MethodPost, "/api/chat", `{"message":"is PEPE safe?"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var sent sendResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sent))
	assert.Equal(t, RoleAssistant, sent.Message.Role)
	assert.Equal(t, SourceFallback, sent.Message.Source)
	assert.Equal(t, 50, sent.Message.Confidence)

	rec = do(t, h, http.MethodGet, "/api/chat/"+sent.SessionID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var hist historyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hist))
	require.Len(t, hist.Messages, 2)
	assert.Equal(t, "is PEPE safe?", hist.Messages[0].Content)
}

func TestHandleSendPassesKeyAndModel(t *testing.T) {
	p := &stubProvider{answer: ai.Answer{Content: "yes", Confidence: 85}}
	h := newTestRouter(p, "")

	rec := do(t, h, http.MethodPost, "/api/chat", `{"message":"q","api_key":"user-key","model":"gemini-2.0-flash"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []remoteCall{{"q", "user-key", "gemini-2.0-flash"}}, p.remote)
}

func TestHandleSendBadRequests(t *testing.T) {
	h := newTestRouter(&stubProvider{}, "")

	cases := map[string]string{
		"invalid json":    `{`,
		"blank message":   `{"message":"   "}`,
		"missing message": `{}`,
		"bad session":     `{"session_id":"nope","message":"hi"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/chat", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleHistoryErrors(t *testing.T) {
	h := newTestRouter(&stubProvider{}, "")

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/chat/not-a-uuid", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/chat/"+uuid.NewString(), "").Code)
}
