package chat

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/api/chat", h.HandleSend)
	r.Get("/api/chat/{sessionID}", h.HandleHistory)
}
