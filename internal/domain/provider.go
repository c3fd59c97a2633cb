package domain

import "time"

type Operation string

const (
	OpAccountInfo Operation = "account_info"
	OpListItems   Operation = "list_items"
)

// AccountInfo describes an external account as reported by the provider.
type AccountInfo struct {
	ExternalID string
	Title      string
	ItemCount  int64
}

type PageRequest struct {
	ExternalID     string
	PageSize       int
	PageToken      string
	PublishedAfter *time.Time
}

// Item is one piece of external content as returned by a provider.
type Item struct {
	ExternalID  string     `validate:"required,max=64"`
	Title       string     `validate:"max=1000"`
	PublishedAt time.Time  `validate:"required"`
	Statistics  Statistics `validate:"-"`
}

type ItemsPage struct {
	Items         []Item
	NextPageToken string
	TotalResults  int64
}
