package chat

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type repo struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID][]Message
}

func NewRepo() Repo {
	return &repo{sessions: make(map[uuid.UUID][]Message)}
}

func (r *repo) Exists(_ context.Context, sessionID uuid.UUID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.sessions[sessionID]
	return ok
}

func (r *repo) Append(_ context.Context, sessionID uuid.UUID, msg Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sessionID] = append(r.sessions[sessionID], msg)
	return nil
}

func (r *repo) GetHistory(_ context.Context, sessionID uuid.UUID) ([]Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	msgs, ok := r.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out, nil
}
