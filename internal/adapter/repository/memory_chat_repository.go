package repository

import (
	"context"
	"sort"
	"time"

	"barterhub/internal/domain/entity"
	"barterhub/internal/domain/repository"
	"barterhub/pkg/errors"
)

type memoryChatRepository struct {
	store *Store
}

func NewMemoryChatRepository(store *Store) repository.ChatRepository {
	return &memoryChatRepository{store: store}
}

func (r *memoryChatRepository) CreateConversation(ctx context.Context, conv *entity.Conversation, participantIDs []int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, userID := range participantIDs {
		if _, ok := s.users[userID]; !ok {
			return errors.Validation("Conversation participant does not exist", nil)
		}
	}
	if conv.ItemID != 0 {
		if _, ok := s.items[conv.ItemID]; !ok {
			return errors.Validation("Conversation item does not exist", nil)
		}
	}

	now := time.Now()
	conv.ID = s.nextID("conversation")
	conv.CreatedAt = now
	conv.LastMessageAt = now
	s.conversations[conv.ID] = *conv

	for _, userID := range participantIDs {
		participant := entity.ConversationParticipant{
			ID:             s.nextID("participant"),
			ConversationID: conv.ID,
			UserID:         userID,
			CreatedAt:      now,
		}
		s.participants[participant.ID] = participant
	}
	return nil
}

func (r *memoryChatRepository) GetConversationByID(ctx context.Context, id int64) (*entity.Conversation, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	conv, ok := s.conversations[id]
	if !ok {
		return nil, errors.NotFound("Conversation", nil)
	}
	return &conv, nil
}

// GetDirectConversation matches on the participant pair only, not the
// item, so repeated contact between two users lands in one thread.
func (r *memoryChatRepository) GetDirectConversation(ctx context.Context, userA, userB int64) (*entity.Conversation, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	members := make(map[int64][]int64) // conversationID -> userIDs
	for _, p := range s.participants {
		members[p.ConversationID] = append(members[p.ConversationID], p.UserID)
	}

	for convID, userIDs := range members {
		if len(userIDs) != 2 {
			continue
		}
		if (userIDs[0] == userA && userIDs[1] == userB) || (userIDs[0] == userB && userIDs[1] == userA) {
			conv := s.conversations[convID]
			return &conv, nil
		}
	}
	return nil, errors.NotFound("Conversation", nil)
}

func (r *memoryChatRepository) ListConversationsByUser(ctx context.Context, userID int64) ([]*entity.Conversation, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	memberOf := make(map[int64]bool)
	for _, p := range s.participants {
		if p.UserID == userID {
			memberOf[p.ConversationID] = true
		}
	}

	matched := make([]entity.Conversation, 0, len(memberOf))
	for id := range memberOf {
		matched = append(matched, s.conversations[id])
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].LastMessageAt.Equal(matched[j].LastMessageAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].LastMessageAt.After(matched[j].LastMessageAt)
	})

	out := make([]*entity.Conversation, len(matched))
	for i := range matched {
		c := matched[i]
		out[i] = &c
	}
	return out, nil
}

func (r *memoryChatRepository) ListParticipants(ctx context.Context, conversationID int64) ([]*entity.ConversationParticipant, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]entity.ConversationParticipant, 0, 2)
	for _, p := range s.participants {
		if p.ConversationID == conversationID {
			matched = append(matched, p)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	out := make([]*entity.ConversationParticipant, len(matched))
	for i := range matched {
		p := matched[i]
		out[i] = &p
	}
	return out, nil
}

func (r *memoryChatRepository) CreateMessage(ctx context.Context, msg *entity.Message) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[msg.ConversationID]
	if !ok {
		return errors.Validation("Conversation does not exist", nil)
	}
	// SenderID 0 marks a system message and resolves to no user.
	if msg.SenderID != 0 {
		if _, exists := s.users[msg.SenderID]; !exists {
			return errors.Validation("Message sender does not exist", nil)
		}
	}

	msg.ID = s.nextID("message")
	if msg.Status == "" {
		msg.Status = entity.MessageStatusSent
	}
	msg.CreatedAt = time.Now()
	s.messages[msg.ID] = *msg

	conv.LastMessageAt = msg.CreatedAt
	s.conversations[conv.ID] = conv
	return nil
}

func (r *memoryChatRepository) ListMessages(ctx context.Context, conversationID int64, limit, offset int) ([]*entity.Message, int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := r.messagesOf(conversationID)

	total := int64(len(matched))
	if offset >= len(matched) {
		matched = nil
	} else {
		matched = matched[offset:]
		if limit > 0 && limit < len(matched) {
			matched = matched[:limit]
		}
	}

	out := make([]*entity.Message, len(matched))
	for i := range matched {
		m := matched[i]
		out[i] = &m
	}
	return out, total, nil
}

// messagesOf returns the conversation's messages ordered by createdAt,
// ties broken by insertion order. Caller must hold the store lock.
func (r *memoryChatRepository) messagesOf(conversationID int64) []entity.Message {
	matched := make([]entity.Message, 0)
	for _, m := range r.store.messages {
		if m.ConversationID == conversationID {
			matched = append(matched, m)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID < matched[j].ID
		}
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})
	return matched
}

func (r *memoryChatRepository) LastMessage(ctx context.Context, conversationID int64) (*entity.Message, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	msgs := r.messagesOf(conversationID)
	if len(msgs) == 0 {
		return nil, errors.NotFound("Message", nil)
	}
	last := msgs[len(msgs)-1]
	return &last, nil
}

func (r *memoryChatRepository) MarkMessagesRead(ctx context.Context, conversationID, readerID int64) ([]int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.conversations[conversationID]; !ok {
		return nil, errors.NotFound("Conversation", nil)
	}

	var touched []int64
	for id, m := range s.messages {
		if m.ConversationID != conversationID || m.SenderID == readerID || m.Status == entity.MessageStatusRead {
			continue
		}
		m.Status = entity.MessageStatusRead
		s.messages[id] = m
		touched = append(touched, id)
	}
	sort.Slice(touched, func(i, j int) bool { return touched[i] < touched[j] })
	return touched, nil
}

func (r *memoryChatRepository) CountUnread(ctx context.Context, conversationID, userID int64) (int, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, m := range s.messages {
		if m.ConversationID == conversationID && m.SenderID != userID && m.Status != entity.MessageStatusRead {
			count++
		}
	}
	return count, nil
}
