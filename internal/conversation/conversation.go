// Package conversation persists the message thread attached to an
// engagement request. The real-time chat transport consumes these records;
// the lifecycle only appends to them.
package conversation

import (
	"time"

	"github.com/google/uuid"
)

type Thread struct {
	ID        uuid.UUID
	RequestID uuid.UUID
	CreatedAt time.Time
}

type Message struct {
	ID           uuid.UUID
	ThreadID     uuid.UUID
	SenderUserID uuid.UUID
	Body         string
	CreatedAt    time.Time
}
