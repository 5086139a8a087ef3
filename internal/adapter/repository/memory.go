package repository

import (
	"sync"

	"barterhub/internal/domain/entity"
)

// Store is the single authoritative in-memory state: one keyed collection
// per entity type plus a monotonically increasing id allocator each. All
// mutation happens under one mutex so no two logical operations interleave
// on the same row; reads hand out value copies, never map references.
type Store struct {
	mu sync.RWMutex

	users         map[int64]entity.User
	items         map[int64]entity.Item
	images        map[int64]entity.Image
	conversations map[int64]entity.Conversation
	participants  map[int64]entity.ConversationParticipant
	messages      map[int64]entity.Message
	offers        map[int64]entity.Offer
	notifications map[int64]entity.Notification
	favorites     map[int64]entity.Favorite
	reviews       map[int64]entity.Review
	pushSubs      map[int64]entity.PushSubscription

	seq map[string]int64
}

func NewStore() *Store {
	return &Store{
		users:         make(map[int64]entity.User),
		items:         make(map[int64]entity.Item),
		images:        make(map[int64]entity.Image),
		conversations: make(map[int64]entity.Conversation),
		participants:  make(map[int64]entity.ConversationParticipant),
		messages:      make(map[int64]entity.Message),
		offers:        make(map[int64]entity.Offer),
		notifications: make(map[int64]entity.Notification),
		favorites:     make(map[int64]entity.Favorite),
		reviews:       make(map[int64]entity.Review),
		pushSubs:      make(map[int64]entity.PushSubscription),
		seq:           make(map[string]int64),
	}
}

// nextID allocates the next id for an entity kind. Ids are never reused,
// even after deletion. Caller must hold s.mu.
func (s *Store) nextID(kind string) int64 {
	s.seq[kind]++
	return s.seq[kind]
}
