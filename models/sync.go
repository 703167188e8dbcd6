package models

import "time"

// SyncStatus is a read-only snapshot of the sync coordinator state.
// It is meant for display only ("syncing…", "last synced at …").
type SyncStatus struct {
	// IsSyncing is true while a debounce timer is armed or a push/pull pass
	// is in flight.
	IsSyncing bool `json:"is_syncing"`

	// LastSyncDate is the time the last push or pull pass finished
	// successfully. Nil until the first success in this process.
	LastSyncDate *time.Time `json:"last_sync_date,omitempty"`
}

// DomainRecord is one stored domain blob on the remote store, keyed by
// (UserID, DomainID).
type DomainRecord struct {
	UserID    int64     `json:"-"`
	DomainID  string    `json:"domain_id"`
	Payload   Payload   `json:"payload"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table associated with
// DomainRecord.
func (DomainRecord) TableName() string {
	return "domain_blobs"
}

// UpsertRequest is the body of PUT /api/users/{userID}/domains/{domainID}.
type UpsertRequest struct {
	Payload Payload `json:"payload"`
}

// FetchResponse is the body of GET /api/users/{userID}/domains/{domainID}.
type FetchResponse struct {
	DomainID  string     `json:"domain_id"`
	Payload   Payload    `json:"payload"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
