package model

import "time"

// LocationLease is a short-lived claim of a location by one session.
type LocationLease struct {
	LocationID uint64    `db:"location_id" json:"location_id"`
	Owner      string    `db:"owner" json:"owner"`
	ExpiresAt  time.Time `db:"expires_at" json:"expires_at"`
}

// Active reports whether the lease still holds at now.
func (l *LocationLease) Active(now time.Time) bool {
	return l != nil && l.ExpiresAt.After(now)
}

// HeldByOther reports whether an active lease belongs to someone other than owner.
func (l *LocationLease) HeldByOther(owner string, now time.Time) bool {
	return l.Active(now) && l.Owner != owner
}

type AcquireLeaseRequest struct {
	TTLSeconds int `json:"ttl_seconds" validate:"omitempty,min=1"`
}

type LeaseExpirationMessage struct {
	LocationID uint64    `json:"location_id"`
	Owner      string    `json:"owner"`
	ExpiresAt  time.Time `json:"expires_at"`
}
