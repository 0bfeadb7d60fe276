package conversation

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/benchlane/benchlane/internal/apperr"
)

// MinMessageLen is the shortest acceptable message body.
const MinMessageLen = 10

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=conversation
type Repository interface {
	CreateThread(ctx context.Context, requestID uuid.UUID) (*Thread, error)
	GetThreadByRequest(ctx context.Context, requestID uuid.UUID) (*Thread, error)
	CreateMessage(ctx context.Context, msg *Message) error
	ListMessages(ctx context.Context, threadID uuid.UUID) ([]*Message, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Open creates the thread for a freshly created request, seeded with the
// requester's initial message.
func (s *Service) Open(ctx context.Context, requestID, senderUserID uuid.UUID, body string) (*Thread, error) {
	if err := validateBody(body); err != nil {
		return nil, err
	}

	thread, err := s.repo.CreateThread(ctx, requestID)
	if err != nil {
		return nil, err
	}

	msg := &Message{ThreadID: thread.ID, SenderUserID: senderUserID, Body: strings.TrimSpace(body)}
	if err := s.repo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	return thread, nil
}

// Append adds a message to the thread of an existing request.
func (s *Service) Append(ctx context.Context, requestID, senderUserID uuid.UUID, body string) (*Message, error) {
	if err := validateBody(body); err != nil {
		return nil, err
	}

	thread, err := s.repo.GetThreadByRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	msg := &Message{ThreadID: thread.ID, SenderUserID: senderUserID, Body: strings.TrimSpace(body)}
	if err := s.repo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	return msg, nil
}

func (s *Service) Messages(ctx context.Context, requestID uuid.UUID) ([]*Message, error) {
	thread, err := s.repo.GetThreadByRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	return s.repo.ListMessages(ctx, thread.ID)
}

func validateBody(body string) error {
	if len(strings.TrimSpace(body)) < MinMessageLen {
		return apperr.NewValidation("message", "too short")
	}

	return nil
}
