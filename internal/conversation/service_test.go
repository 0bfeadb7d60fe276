package conversation_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/benchlane/benchlane/internal/apperr"
	"github.com/benchlane/benchlane/internal/conversation"
)

func TestService_Open(t *testing.T) {
	requestID := uuid.New()
	senderID := uuid.New()

	t.Run("SeedsThreadWithTrimmedMessage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := conversation.NewMockRepository(ctrl)
		svc := conversation.NewService(repo)

		thread := &conversation.Thread{ID: uuid.New(), RequestID: requestID}
		repo.EXPECT().CreateThread(gomock.Any(), requestID).Return(thread, nil)
		repo.EXPECT().
			CreateMessage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *conversation.Message) error {
				assert.Equal(t, thread.ID, msg.ThreadID)
				assert.Equal(t, senderID, msg.SenderUserID)
				assert.Equal(t, "We need a senior Go engineer.", msg.Body)
				return nil
			})

		got, err := svc.Open(context.Background(), requestID, senderID, "  We need a senior Go engineer.  ")
		require.NoError(t, err)
		assert.Equal(t, thread.ID, got.ID)
	})

	t.Run("RejectsShortMessage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := conversation.NewMockRepository(ctrl)
		svc := conversation.NewService(repo)

		_, err := svc.Open(context.Background(), requestID, senderID, "hi there")
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	// Whitespace padding must not satisfy the minimum length.
	t.Run("RejectsPaddedMessage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := conversation.NewMockRepository(ctrl)
		svc := conversation.NewService(repo)

		_, err := svc.Open(context.Background(), requestID, senderID, "   hi    there   ")
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})
}

func TestService_Append(t *testing.T) {
	requestID := uuid.New()
	senderID := uuid.New()

	t.Run("AppendsToExistingThread", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := conversation.NewMockRepository(ctrl)
		svc := conversation.NewService(repo)

		thread := &conversation.Thread{ID: uuid.New(), RequestID: requestID}
		repo.EXPECT().GetThreadByRequest(gomock.Any(), requestID).Return(thread, nil)
		repo.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(nil)

		msg, err := svc.Append(context.Background(), requestID, senderID, "Can you start a week earlier?")
		require.NoError(t, err)
		assert.Equal(t, thread.ID, msg.ThreadID)
		assert.Equal(t, "Can you start a week earlier?", msg.Body)
	})

	t.Run("RejectsShortMessage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := conversation.NewMockRepository(ctrl)
		svc := conversation.NewService(repo)

		_, err := svc.Append(context.Background(), requestID, senderID, "ok")
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})
}
