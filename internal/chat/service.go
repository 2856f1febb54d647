package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Vovarama1992/mi-crypto-assistant/internal/ai"
)

type service struct {
	repo   Repo
	ai     ai.Provider
	apiKey string
	model  string
	log    *slog.Logger
	now    func() time.Time
}

// NewService: apiKey — серверный ключ, используется если клиент не прислал свой.
func NewService(repo Repo, provider ai.Provider, apiKey, model string, log *slog.Logger) Service {
	if log == nil {
		log = slog.Default()
	}
	return &service{
		repo:   repo,
		ai:     provider,
		apiKey: apiKey,
		model:  model,
		log:    log,
		now:    time.Now,
	}
}

func (s *service) Send(ctx context.Context, req SendRequest) (SendResult, error) {
	if strings.TrimSpace(req.Message) == "" {
		return SendResult{}, ErrEmptyMessage
	}

	sessionID := req.SessionID
	if sessionID == uuid.Nil || !s.repo.Exists(ctx, sessionID) {
		sessionID = uuid.New()
	}

	s.log.Info("[chat] new message", "session", sessionID, "len", len(req.Message))

	userMsg := Message{
		ID:        uuid.New(),
		Role:      RoleUser,
		Content:   req.Message,
		Timestamp: s.now(),
	}
	if err := s.repo.Append(ctx, sessionID, userMsg); err != nil {
		return SendResult{}, fmt.Errorf("save user message: %w", err)
	}

	reply := s.answer(ctx, req)

	if err := s.repo.Append(ctx, sessionID, reply); err != nil {
		return SendResult{}, fmt.Errorf("save assistant message: %w", err)
	}

	return SendResult{SessionID: sessionID, Reply: reply}, nil
}

// answer: ключ есть — Gemini, нет — мок. Ошибка Gemini не уходит наружу.
func (s *service) answer(ctx context.Context, req SendRequest) Message {
	key := req.APIKey
	if key == "" {
		key = s.apiKey
	}
	model := req.Model
	if model == "" {
		model = s.model
	}

	msg := Message{
		ID:   uuid.New(),
		Role: RoleAssistant,
	}

	if key == "" {
		a := s.ai.GetFallbackAnswer(req.Message)
		msg.Content, msg.Confidence, msg.Source = a.Content, a.Confidence, SourceFallback
		msg.Timestamp = s.now()
		return msg
	}

	a, err := s.ai.GetRemoteAnswer(ctx, req.Message, key, model)
	if err != nil {
		s.log.Error("[chat] gemini error", "err", err)
		msg.Content, msg.Source = FailureNotice, SourceError
	} else {
		msg.Content, msg.Confidence, msg.Source = a.Content, a.Confidence, SourceRemote
	}
	msg.Timestamp = s.now()
	return msg
}

func (s *service) History(ctx context.Context, sessionID uuid.UUID) ([]Message, error) {
	return s.repo.GetHistory(ctx, sessionID)
}
