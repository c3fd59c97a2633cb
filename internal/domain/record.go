package domain

import "time"

const (
	AuthorizedRetention   = 365 * 24 * time.Hour
	UnauthorizedRetention = 30 * 24 * time.Hour
)

// RetentionFor returns how long a record may be kept after its last sync.
func RetentionFor(authorized bool) time.Duration {
	if authorized {
		return AuthorizedRetention
	}
	return UnauthorizedRetention
}

// ExpiryFor returns the expiry of a record synced at syncedAt.
func ExpiryFor(authorized bool, syncedAt time.Time) time.Time {
	return syncedAt.Add(RetentionFor(authorized))
}

type Statistics struct {
	Views    int64 `db:"view_count" json:"views"`
	Likes    int64 `db:"like_count" json:"likes"`
	Comments int64 `db:"comment_count" json:"comments"`
}

// ContentRecord is the stored metadata of one external item.
type ContentRecord struct {
	ID               int64     `db:"id" json:"id"`
	SourceAccountID  int64     `db:"source_account_id" json:"source_account_id"`
	Provider         string    `db:"provider" json:"provider"`
	ExternalID       string    `db:"external_id" json:"external_id"`
	Title            string    `db:"title" json:"title"`
	PublishedAt      time.Time `db:"published_at" json:"published_at"`
	Statistics       `json:"statistics"`
	IsAuthorizedData bool      `db:"is_authorized_data" json:"is_authorized_data"`
	ExpiresAt        time.Time `db:"expires_at" json:"expires_at"`
	LastSyncedAt     time.Time `db:"last_synced_at" json:"last_synced_at"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

// NewContentRecord builds a first-encounter record from a provider item.
func NewContentRecord(link *SourceAccountLink, item *Item, authorized bool, now time.Time) *ContentRecord {
	return &ContentRecord{
		SourceAccountID:  link.ID,
		Provider:         link.Provider,
		ExternalID:       item.ExternalID,
		Title:            item.Title,
		PublishedAt:      item.PublishedAt,
		Statistics:       item.Statistics,
		IsAuthorizedData: authorized,
		ExpiresAt:        ExpiryFor(authorized, now),
		LastSyncedAt:     now,
	}
}

// Refresh applies a re-encounter: statistics, sync timestamp and expiry change,
// the consent snapshot does not.
func (r *ContentRecord) Refresh(stats Statistics, now time.Time) {
	r.Statistics = stats
	r.LastSyncedAt = now
	r.ExpiresAt = ExpiryFor(r.IsAuthorizedData, now)
}
