package chat

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Source — каким путём получен ответ ассистента
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
	SourceError    Source = "error"
)

const FailureNotice = "⚠️ Failed to fetch a response from Gemini."

type Message struct {
	ID         uuid.UUID `json:"id"`
	Role       Role      `json:"role"`
	Content    string    `json:"content"`
	Confidence int       `json:"confidence,omitempty"`
	Source     Source    `json:"source,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

type SendRequest struct {
	SessionID uuid.UUID
	Message   string
	APIKey    string
	Model     string
}

type SendResult struct {
	SessionID uuid.UUID
	Reply     Message
}

var (
	ErrEmptyMessage    = errors.New("message is empty")
	ErrSessionNotFound = errors.New("session not found")
)

// Repo — хранилище транскриптов, только в памяти
type Repo interface {
	Exists(ctx context.Context, sessionID uuid.UUID) bool
	Append(ctx context.Context, sessionID uuid.UUID, msg Message) error
	GetHistory(ctx context.Context, sessionID uuid.UUID) ([]Message, error)
}

// Service — политика выбора ответа + транскрипт
type Service interface {
	Send(ctx context.Context, req SendRequest) (SendResult, error)
	History(ctx context.Context, sessionID uuid.UUID) ([]Message, error)
}
