package usecase

import (
	"context"

	"barterhub/internal/domain/entity"
	"barterhub/internal/domain/repository"
)

type ItemResponse struct {
	*entity.Item
	MainImage string `json:"main_image,omitempty"`
}

type MessageResponse struct {
	*entity.Message
	Sender *entity.User `json:"sender,omitempty"`
}

type ConversationResponse struct {
	*entity.Conversation
	Participants []*entity.User   `json:"participants"`
	LastMessage  *MessageResponse `json:"last_message,omitempty"`
	Item         *ItemResponse    `json:"item,omitempty"`

	// Viewer-relative fields, filled by the chat use case.
	OtherUser   *entity.User `json:"other_user,omitempty"`
	UnreadCount int          `json:"unread_count"`
}

type OfferResponse struct {
	*entity.Offer
	FromUser *entity.User  `json:"from_user,omitempty"`
	ToUser   *entity.User  `json:"to_user,omitempty"`
	FromItem *ItemResponse `json:"from_item,omitempty"`
	ToItem   *ItemResponse `json:"to_item,omitempty"`
}

type ReviewResponse struct {
	*entity.Review
	FromUser *entity.User  `json:"from_user,omitempty"`
	ToUser   *entity.User  `json:"to_user,omitempty"`
	Offer    *entity.Offer `json:"offer,omitempty"`
}

// Enricher assembles denormalized response views from normalized rows at
// read time. It never fails on a dangling reference: history may point at
// deleted users or items, and those fields come back nil instead.
type Enricher struct {
	userRepo  repository.UserRepository
	itemRepo  repository.ItemRepository
	imageRepo repository.ImageRepository
	chatRepo  repository.ChatRepository
	offerRepo repository.OfferRepository
}

func NewEnricher(
	userRepo repository.UserRepository,
	itemRepo repository.ItemRepository,
	imageRepo repository.ImageRepository,
	chatRepo repository.ChatRepository,
	offerRepo repository.OfferRepository,
) *Enricher {
	return &Enricher{
		userRepo:  userRepo,
		itemRepo:  itemRepo,
		imageRepo: imageRepo,
		chatRepo:  chatRepo,
		offerRepo: offerRepo,
	}
}

// MainImageOf resolves the display image for an item: the image flagged
// isMain, else the first image by ascending id, else empty. Every call
// site shares this one resolution rule.
func (e *Enricher) MainImageOf(ctx context.Context, itemID int64) string {
	images, err := e.imageRepo.ListByItem(ctx, itemID)
	if err != nil || len(images) == 0 {
		return ""
	}
	for _, image := range images {
		if image.IsMain {
			return image.FilePath
		}
	}
	return images[0].FilePath
}

func (e *Enricher) Item(ctx context.Context, item *entity.Item) *ItemResponse {
	return &ItemResponse{
		Item:      item,
		MainImage: e.MainImageOf(ctx, item.ID),
	}
}

// itemByID resolves and enriches an item, nil when the id dangles.
func (e *Enricher) itemByID(ctx context.Context, itemID int64) *ItemResponse {
	if itemID == 0 {
		return nil
	}
	item, err := e.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil
	}
	return e.Item(ctx, item)
}

// userByID resolves a user, nil when the id dangles.
func (e *Enricher) userByID(ctx context.Context, userID int64) *entity.User {
	if userID == 0 {
		return nil
	}
	user, err := e.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil
	}
	return user
}

func (e *Enricher) Message(ctx context.Context, msg *entity.Message) *MessageResponse {
	return &MessageResponse{
		Message: msg,
		Sender:  e.userByID(ctx, msg.SenderID),
	}
}

func (e *Enricher) Conversation(ctx context.Context, conv *entity.Conversation) *ConversationResponse {
	out := &ConversationResponse{
		Conversation: conv,
		Participants: make([]*entity.User, 0, 2),
		Item:         e.itemByID(ctx, conv.ItemID),
	}

	participants, err := e.chatRepo.ListParticipants(ctx, conv.ID)
	if err == nil {
		for _, p := range participants {
			if user := e.userByID(ctx, p.UserID); user != nil {
				out.Participants = append(out.Participants, user)
			}
		}
	}

	if last, err := e.chatRepo.LastMessage(ctx, conv.ID); err == nil {
		out.LastMessage = e.Message(ctx, last)
	}

	return out
}

func (e *Enricher) Offer(ctx context.Context, offer *entity.Offer) *OfferResponse {
	return &OfferResponse{
		Offer:    offer,
		FromUser: e.userByID(ctx, offer.FromUserID),
		ToUser:   e.userByID(ctx, offer.ToUserID),
		FromItem: e.itemByID(ctx, offer.FromItemID),
		ToItem:   e.itemByID(ctx, offer.ToItemID),
	}
}

func (e *Enricher) Review(ctx context.Context, review *entity.Review) *ReviewResponse {
	out := &ReviewResponse{
		Review:   review,
		FromUser: e.userByID(ctx, review.FromUserID),
		ToUser:   e.userByID(ctx, review.ToUserID),
	}
	if offer, err := e.offerRepo.GetByID(ctx, review.OfferID); err == nil {
		out.Offer = offer
	}
	return out
}
