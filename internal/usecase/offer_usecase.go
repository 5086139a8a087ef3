package usecase

import (
	"context"
	"fmt"

	"barterhub/internal/domain/entity"
	"barterhub/internal/domain/repository"
	ws "barterhub/internal/infrastructure/websocket"
	"barterhub/pkg/errors"
	"barterhub/pkg/logger"
)

type OfferUseCase struct {
	offerRepo repository.OfferRepository
	itemRepo  repository.ItemRepository
	chatRepo  repository.ChatRepository
	enricher  *Enricher
	notifier  *NotificationUseCase
	sink      EventSink
}

func NewOfferUseCase(
	offerRepo repository.OfferRepository,
	itemRepo repository.ItemRepository,
	chatRepo repository.ChatRepository,
	enricher *Enricher,
	notifier *NotificationUseCase,
	sink EventSink,
) *OfferUseCase {
	return &OfferUseCase{
		offerRepo: offerRepo,
		itemRepo:  itemRepo,
		chatRepo:  chatRepo,
		enricher:  enricher,
		notifier:  notifier,
		sink:      sink,
	}
}

type CreateOfferInput struct {
	ToUserID   int64
	FromItemID int64
	ToItemID   int64
}

// CreateOffer opens a pending offer: fromUser proposes their fromItem in
// exchange for toUser's toItem. Item ownership is checked here, once, at
// creation.
func (uc *OfferUseCase) CreateOffer(ctx context.Context, fromUserID int64, input CreateOfferInput) (*OfferResponse, error) {
	if fromUserID == input.ToUserID {
		return nil, errors.BadRequest("You cannot trade with yourself", nil)
	}

	fromItem, err := uc.itemRepo.GetByID(ctx, input.FromItemID)
	if err != nil {
		return nil, err
	}
	toItem, err := uc.itemRepo.GetByID(ctx, input.ToItemID)
	if err != nil {
		return nil, err
	}

	if fromItem.OwnerID != fromUserID {
		return nil, errors.Validation("Offered item is not owned by you", nil)
	}
	if toItem.OwnerID != input.ToUserID {
		return nil, errors.Validation("Requested item is not owned by the recipient", nil)
	}

	conv, err := uc.pairConversation(ctx, fromUserID, input.ToUserID)
	if err != nil {
		return nil, err
	}

	offer := &entity.Offer{
		ConversationID: conv.ID,
		FromUserID:     fromUserID,
		ToUserID:       input.ToUserID,
		FromItemID:     input.FromItemID,
		ToItemID:       input.ToItemID,
		Status:         entity.OfferStatusPending,
	}
	if err := uc.offerRepo.Create(ctx, offer); err != nil {
		return nil, err
	}

	uc.systemMessage(ctx, conv.ID, fmt.Sprintf("Trade offer: %q for %q", fromItem.Title, toItem.Title))
	if _, err := uc.notifier.Notify(ctx, offer.ToUserID, entity.NotificationTypeOfferReceived,
		fmt.Sprintf("You received a trade offer for %q", toItem.Title), offer.ID); err != nil {
		logger.Warn("Failed to notify user %d about offer %d: %v", offer.ToUserID, offer.ID, err)
	}

	view := uc.enricher.Offer(ctx, offer)
	uc.sink.SendToUser(offer.ToUserID, ws.Event{Type: ws.EventOfferCreated, Offer: view})

	logger.LogOfferEvent(offer.ID, "create", nil)
	return view, nil
}

// pairConversation resolves the direct conversation between the two
// parties, creating it on demand. All offers between the same pair share
// this one thread.
func (uc *OfferUseCase) pairConversation(ctx context.Context, userA, userB int64) (*entity.Conversation, error) {
	conv, err := uc.chatRepo.GetDirectConversation(ctx, userA, userB)
	if err == nil {
		return conv, nil
	}
	conv = &entity.Conversation{}
	if err := uc.chatRepo.CreateConversation(ctx, conv, []int64{userA, userB}); err != nil {
		return nil, err
	}
	return conv, nil
}

func (uc *OfferUseCase) systemMessage(ctx context.Context, conversationID int64, content string) {
	msg := &entity.Message{
		ConversationID: conversationID,
		SenderID:       0, // system
		Content:        content,
	}
	if err := uc.chatRepo.CreateMessage(ctx, msg); err != nil {
		logger.Warn("Failed to append system message to conversation %d: %v", conversationID, err)
	}
}

// transition captures one legal edge of the offer state graph.
type transition struct {
	from       string
	to         string
	actor      func(*entity.Offer) []int64 // who may fire it
	itemStatus string                      // status both items move to
	notifyUser func(*entity.Offer, int64) int64
	message    string
}

var transitions = map[string]transition{
	entity.OfferEventAccept: {
		from:       entity.OfferStatusPending,
		to:         entity.OfferStatusAccepted,
		actor:      func(o *entity.Offer) []int64 { return []int64{o.ToUserID} },
		itemStatus: entity.ItemStatusPending,
		notifyUser: func(o *entity.Offer, actor int64) int64 { return o.FromUserID },
		message:    "Trade offer accepted",
	},
	entity.OfferEventReject: {
		from:       entity.OfferStatusPending,
		to:         entity.OfferStatusRejected,
		actor:      func(o *entity.Offer) []int64 { return []int64{o.ToUserID} },
		itemStatus: entity.ItemStatusActive,
		notifyUser: func(o *entity.Offer, actor int64) int64 { return o.FromUserID },
		message:    "Trade offer rejected",
	},
	entity.OfferEventCancel: {
		from:       entity.OfferStatusPending,
		to:         entity.OfferStatusCancelled,
		actor:      func(o *entity.Offer) []int64 { return []int64{o.FromUserID} },
		itemStatus: entity.ItemStatusActive,
		notifyUser: func(o *entity.Offer, actor int64) int64 { return o.ToUserID },
		message:    "Trade offer cancelled",
	},
	entity.OfferEventComplete: {
		from:       entity.OfferStatusAccepted,
		to:         entity.OfferStatusCompleted,
		actor:      func(o *entity.Offer) []int64 { return []int64{o.FromUserID, o.ToUserID} },
		itemStatus: entity.ItemStatusCompleted,
		notifyUser: func(o *entity.Offer, actor int64) int64 {
			if actor == o.FromUserID {
				return o.ToUserID
			}
			return o.FromUserID
		},
		message: "Trade completed",
	},
}

// TransitionOffer drives the offer state machine. The source state is
// checked before the actor so a terminal offer always conflicts rather
// than reading as a permission problem.
func (uc *OfferUseCase) TransitionOffer(ctx context.Context, offerID, actorID int64, event string) (*OfferResponse, error) {
	offer, err := uc.offerRepo.GetByID(ctx, offerID)
	if err != nil {
		return nil, err
	}

	t, ok := transitions[event]
	if !ok {
		return nil, errors.BadRequest("Unknown offer event", nil)
	}

	if offer.Status != t.from {
		return nil, errors.InvalidState(
			fmt.Sprintf("Offer cannot be %sed while %s", event, offer.Status), nil)
	}

	permitted := false
	for _, allowed := range t.actor(offer) {
		if allowed == actorID {
			permitted = true
			break
		}
	}
	if !permitted {
		return nil, errors.Forbidden("You are not allowed to "+event+" this offer", nil)
	}

	// Resolve all rows before mutating anything so a missing item fails
	// the transition instead of leaving it half-applied.
	fromItem, err := uc.itemRepo.GetByID(ctx, offer.FromItemID)
	if err != nil {
		return nil, err
	}
	toItem, err := uc.itemRepo.GetByID(ctx, offer.ToItemID)
	if err != nil {
		return nil, err
	}

	fromItem.Status = t.itemStatus
	if err := uc.itemRepo.Update(ctx, fromItem); err != nil {
		return nil, err
	}
	toItem.Status = t.itemStatus
	if err := uc.itemRepo.Update(ctx, toItem); err != nil {
		return nil, err
	}

	offer.Status = t.to
	if err := uc.offerRepo.Update(ctx, offer); err != nil {
		return nil, err
	}

	conv, err := uc.pairConversation(ctx, offer.FromUserID, offer.ToUserID)
	if err == nil {
		uc.systemMessage(ctx, conv.ID, t.message)
	}

	target := t.notifyUser(offer, actorID)
	if _, err := uc.notifier.Notify(ctx, target, entity.NotificationTypeOfferUpdate, t.message, offer.ID); err != nil {
		logger.Warn("Failed to notify user %d about offer %d: %v", target, offer.ID, err)
	}

	view := uc.enricher.Offer(ctx, offer)
	uc.sink.SendToUser(offer.FromUserID, ws.Event{Type: ws.EventOfferUpdated, Offer: view})
	uc.sink.SendToUser(offer.ToUserID, ws.Event{Type: ws.EventOfferUpdated, Offer: view})

	logger.LogOfferEvent(offer.ID, event, nil)
	return view, nil
}

func (uc *OfferUseCase) GetOffer(ctx context.Context, userID, offerID int64) (*OfferResponse, error) {
	offer, err := uc.offerRepo.GetByID(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if offer.FromUserID != userID && offer.ToUserID != userID {
		return nil, errors.Forbidden("You are not a party to this offer", nil)
	}
	return uc.enricher.Offer(ctx, offer), nil
}

func (uc *OfferUseCase) ListOffers(ctx context.Context, userID int64, status string) ([]*OfferResponse, error) {
	offers, err := uc.offerRepo.ListByUser(ctx, userID, status)
	if err != nil {
		return nil, err
	}

	out := make([]*OfferResponse, len(offers))
	for i, offer := range offers {
		out[i] = uc.enricher.Offer(ctx, offer)
	}
	return out, nil
}
