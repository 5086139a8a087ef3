package entity

import (
	"time"
)

const (
	ItemStatusActive    = "active"
	ItemStatusPending   = "pending"
	ItemStatusCompleted = "completed"
	ItemStatusSuspended = "suspended"
)

type Item struct {
	ID          int64  `json:"id"`
	OwnerID     int64  `json:"owner_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Condition   string `json:"condition"`
	City        string `json:"city,omitempty"`
	Status      string `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ItemPatch struct {
	Title       *string
	Description *string
	Category    *string
	Condition   *string
	City        *string
	Status      *string
}

// ItemFilter is the predicate/sort/page spec for listing items. Filters
// apply first, then sort, then offset/limit.
type ItemFilter struct {
	Category  string
	Status    string
	Search    string // substring over title and description
	City      string
	Condition string
	OwnerID   int64 // 0 means any owner
	Sort      string
	Limit     int
	Offset    int
}

const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortTitleAsc  = "title_asc"
	SortTitleDesc = "title_desc"
)

type Image struct {
	ID        int64     `json:"id"`
	ItemID    int64     `json:"item_id"`
	FilePath  string    `json:"file_path"`
	IsMain    bool      `json:"is_main"`
	CreatedAt time.Time `json:"created_at"`
}
