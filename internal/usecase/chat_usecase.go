package usecase

import (
	"context"

	"barterhub/internal/domain/entity"
	"barterhub/internal/domain/repository"
	ws "barterhub/internal/infrastructure/websocket"
	"barterhub/pkg/errors"
)

type ChatUseCase struct {
	chatRepo repository.ChatRepository
	userRepo repository.UserRepository
	itemRepo repository.ItemRepository
	enricher *Enricher
	sink     EventSink
}

func NewChatUseCase(
	chatRepo repository.ChatRepository,
	userRepo repository.UserRepository,
	itemRepo repository.ItemRepository,
	enricher *Enricher,
	sink EventSink,
) *ChatUseCase {
	return &ChatUseCase{
		chatRepo: chatRepo,
		userRepo: userRepo,
		itemRepo: itemRepo,
		enricher: enricher,
		sink:     sink,
	}
}

// GetOrCreateConversation returns the direct conversation between the two
// users, creating it when absent. The same thread is reused for every
// contact between a pair, whichever item started it.
func (uc *ChatUseCase) GetOrCreateConversation(ctx context.Context, userID, otherID, itemID int64) (*ConversationResponse, error) {
	if userID == otherID {
		return nil, errors.BadRequest("You cannot start a conversation with yourself", nil)
	}
	if _, err := uc.userRepo.GetByID(ctx, otherID); err != nil {
		return nil, err
	}
	if itemID != 0 {
		if _, err := uc.itemRepo.GetByID(ctx, itemID); err != nil {
			return nil, err
		}
	}

	conv, err := uc.chatRepo.GetDirectConversation(ctx, userID, otherID)
	if err != nil {
		conv = &entity.Conversation{ItemID: itemID}
		if err := uc.chatRepo.CreateConversation(ctx, conv, []int64{userID, otherID}); err != nil {
			return nil, err
		}
	}

	return uc.viewFor(ctx, conv, userID), nil
}

// viewFor enriches the conversation and fills the viewer-relative fields.
func (uc *ChatUseCase) viewFor(ctx context.Context, conv *entity.Conversation, viewerID int64) *ConversationResponse {
	view := uc.enricher.Conversation(ctx, conv)
	for _, participant := range view.Participants {
		if participant.ID != viewerID {
			view.OtherUser = participant
			break
		}
	}
	if unread, err := uc.chatRepo.CountUnread(ctx, conv.ID, viewerID); err == nil {
		view.UnreadCount = unread
	}
	return view
}

func (uc *ChatUseCase) GetConversation(ctx context.Context, userID, conversationID int64) (*ConversationResponse, error) {
	conv, err := uc.chatRepo.GetConversationByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if err := uc.requireParticipant(ctx, conversationID, userID); err != nil {
		return nil, err
	}
	return uc.viewFor(ctx, conv, userID), nil
}

func (uc *ChatUseCase) ListConversations(ctx context.Context, userID int64) ([]*ConversationResponse, error) {
	conversations, err := uc.chatRepo.ListConversationsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]*ConversationResponse, len(conversations))
	for i, conv := range conversations {
		out[i] = uc.viewFor(ctx, conv, userID)
	}
	return out, nil
}

func (uc *ChatUseCase) requireParticipant(ctx context.Context, conversationID, userID int64) error {
	participants, err := uc.chatRepo.ListParticipants(ctx, conversationID)
	if err != nil {
		return err
	}
	for _, p := range participants {
		if p.UserID == userID {
			return nil
		}
	}
	return errors.Forbidden("You are not part of this conversation", nil)
}

// PostMessage appends a message and pushes it to the other participants'
// live connections. The push is best-effort and never fails the post.
func (uc *ChatUseCase) PostMessage(ctx context.Context, conversationID, senderID int64, content string) (*MessageResponse, error) {
	if content == "" {
		return nil, errors.Validation("Message content is required", nil)
	}
	if err := uc.requireParticipant(ctx, conversationID, senderID); err != nil {
		return nil, err
	}

	msg := &entity.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
	}
	if err := uc.chatRepo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	view := uc.enricher.Message(ctx, msg)
	uc.pushToOthers(ctx, conversationID, senderID, ws.Event{
		Type:           ws.EventNewMessage,
		ConversationID: conversationID,
		Message:        view,
	})
	return view, nil
}

func (uc *ChatUseCase) pushToOthers(ctx context.Context, conversationID, exceptUserID int64, event ws.Event) {
	participants, err := uc.chatRepo.ListParticipants(ctx, conversationID)
	if err != nil {
		return
	}
	for _, p := range participants {
		if p.UserID != exceptUserID {
			uc.sink.SendToUser(p.UserID, event)
		}
	}
}

func (uc *ChatUseCase) ListMessages(ctx context.Context, userID, conversationID int64, limit, offset int) ([]*MessageResponse, int64, error) {
	if _, err := uc.chatRepo.GetConversationByID(ctx, conversationID); err != nil {
		return nil, 0, err
	}
	if err := uc.requireParticipant(ctx, conversationID, userID); err != nil {
		return nil, 0, err
	}

	messages, total, err := uc.chatRepo.ListMessages(ctx, conversationID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	out := make([]*MessageResponse, len(messages))
	for i, msg := range messages {
		out[i] = uc.enricher.Message(ctx, msg)
	}
	return out, total, nil
}

// MarkRead flips every message not sent by the reader to read and tells
// the other participants which ids were seen.
func (uc *ChatUseCase) MarkRead(ctx context.Context, conversationID, userID int64) ([]int64, error) {
	if _, err := uc.chatRepo.GetConversationByID(ctx, conversationID); err != nil {
		return nil, err
	}
	if err := uc.requireParticipant(ctx, conversationID, userID); err != nil {
		return nil, err
	}

	ids, err := uc.chatRepo.MarkMessagesRead(ctx, conversationID, userID)
	if err != nil {
		return nil, err
	}

	if len(ids) > 0 {
		uc.pushToOthers(ctx, conversationID, userID, ws.Event{
			Type:           ws.EventMessagesRead,
			ConversationID: conversationID,
			MessageIDs:     ids,
		})
	}
	return ids, nil
}
