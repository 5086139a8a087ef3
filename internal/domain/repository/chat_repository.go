package repository

import (
	"context"

	"barterhub/internal/domain/entity"
)

type ChatRepository interface {
	CreateConversation(ctx context.Context, conv *entity.Conversation, participantIDs []int64) error
	GetConversationByID(ctx context.Context, id int64) (*entity.Conversation, error)
	// GetDirectConversation finds the existing conversation whose
	// participant set is exactly {userA, userB}, regardless of item.
	GetDirectConversation(ctx context.Context, userA, userB int64) (*entity.Conversation, error)
	ListConversationsByUser(ctx context.Context, userID int64) ([]*entity.Conversation, error)
	ListParticipants(ctx context.Context, conversationID int64) ([]*entity.ConversationParticipant, error)

	// CreateMessage inserts the message and bumps the conversation's
	// lastMessageAt in the same critical section.
	CreateMessage(ctx context.Context, msg *entity.Message) error
	ListMessages(ctx context.Context, conversationID int64, limit, offset int) ([]*entity.Message, int64, error)
	LastMessage(ctx context.Context, conversationID int64) (*entity.Message, error)
	// MarkMessagesRead flips every message in the conversation that was
	// not sent by readerID to status read; returns the ids it touched.
	MarkMessagesRead(ctx context.Context, conversationID, readerID int64) ([]int64, error)
	CountUnread(ctx context.Context, conversationID, userID int64) (int, error)
}
