package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type sendResponse struct {
	SessionID uuid.UUID `json:"session_id"`
	Message   Message   `json:"message"`
}

type historyResponse struct {
	SessionID uuid.UUID `json:"session_id"`
	Messages  []Message `json:"messages"`
}

// HandleSend — вход от фронта
func (h *Handler) HandleSend(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"session_id"`
		Message   string `json:"message"`
		APIKey    string `json:"api_key"`
		Model     string `json:"model"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	var sessionID uuid.UUID
	if payload.SessionID != "" {
		id, err := uuid.Parse(payload.SessionID)
		if err != nil {
			http.Error(w, "invalid session_id", http.StatusBadRequest)
			return
		}
		sessionID = id
	}

	res, err := h.svc.Send(r.Context(), SendRequest{
		SessionID: sessionID,
		Message:   payload.Message,
		APIKey:    payload.APIKey,
		Model:     payload.Model,
	})
	if errors.Is(err, ErrEmptyMessage) {
		http.Error(w, "missing message", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "processing error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, sendResponse{SessionID: res.SessionID, Message: res.Reply})
}

func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return
	}

	msgs, err := h.svc.History(r.Context(), sessionID)
	if errors.Is(err, ErrSessionNotFound) {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "processing error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, historyResponse{SessionID: sessionID, Messages: msgs})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
