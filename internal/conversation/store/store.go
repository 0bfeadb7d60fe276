package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/benchlane/benchlane/internal/apperr"
	"github.com/benchlane/benchlane/internal/conversation"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateThread(ctx context.Context, requestID uuid.UUID) (*conversation.Thread, error) {
	query := `
		INSERT INTO conversations (request_id)
		VALUES ($1)
		RETURNING id, request_id, created_at
	`

	var t conversation.Thread
	if err := s.db.QueryRowContext(ctx, query, requestID).Scan(&t.ID, &t.RequestID, &t.CreatedAt); err != nil {
		return nil, fmt.Errorf("creating thread: %w", err)
	}

	return &t, nil
}

func (s *Store) GetThreadByRequest(ctx context.Context, requestID uuid.UUID) (*conversation.Thread, error) {
	query := `SELECT id, request_id, created_at FROM conversations WHERE request_id = $1`

	var t conversation.Thread

	err := s.db.QueryRowContext(ctx, query, requestID).Scan(&t.ID, &t.RequestID, &t.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.ErrNotFound
		}

		return nil, fmt.Errorf("getting thread: %w", err)
	}

	return &t, nil
}

func (s *Store) CreateMessage(ctx context.Context, msg *conversation.Message) error {
	query := `
		INSERT INTO messages (conversation_id, sender_user_id, body)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, msg.ThreadID, msg.SenderUserID, msg.Body).
		Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating message: %w", err)
	}

	return nil
}

func (s *Store) ListMessages(ctx context.Context, threadID uuid.UUID) ([]*conversation.Message, error) {
	query := `
		SELECT id, conversation_id, sender_user_id, body, created_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, threadID)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	defer rows.Close()

	var msgs []*conversation.Message

	for rows.Next() {
		var m conversation.Message
		if err := rows.Scan(&m.ID, &m.ThreadID, &m.SenderUserID, &m.Body, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}

		msgs = append(msgs, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating message rows: %w", err)
	}

	return msgs, nil
}
