package ai

import (
	"context"
	"errors"
	"fmt"
)

const (
	RemoteConfidence   = 85
	FallbackConfidence = 50
)

// Answer — результат одного вызова, после создания не меняется
type Answer struct {
	Content    string `json:"content"`
	Confidence int    `json:"confidence"`
}

// Provider — внешний интеллект, не знает ни про чат, ни про UI
type Provider interface {
	GetRemoteAnswer(ctx context.Context, prompt, credential, modelID string) (Answer, error)
	GetFallbackAnswer(prompt string) Answer
}

var (
	ErrMissingCredential = errors.New("gemini api key is required")
	ErrRemoteCallFailed  = errors.New("gemini call failed")
)

// RemoteCallError covers transport errors, non-2xx statuses and bad JSON alike.
type RemoteCallError struct {
	StatusCode int
	Cause      error
}

func (e *RemoteCallError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%v: status %d: %v", ErrRemoteCallFailed, e.StatusCode, e.Cause)
	}
	return fmt.Sprintf("%v: %v", ErrRemoteCallFailed, e.Cause)
}

func (e *RemoteCallError) Unwrap() error { return e.Cause }

func (e *RemoteCallError) Is(target error) bool { return target == ErrRemoteCallFailed }
