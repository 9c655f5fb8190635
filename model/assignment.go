package model

import (
	"time"

	"github.com/muhammadheryan/item-location/constant"
)

// ItemLocation represents the item_location table entity. A nil ClientID
// marks the assignment as general sale.
type ItemLocation struct {
	ID                  uint64    `db:"id" json:"id"`
	ItemID              string    `db:"item_id" json:"item_id"`
	LocationID          uint64    `db:"location_id" json:"location_id"`
	ClientID            *string   `db:"client_id" json:"client_id,omitempty"`
	IsExclusive         bool      `db:"is_exclusive" json:"is_exclusive"`
	RequiresCertificate bool      `db:"requires_certificate" json:"requires_certificate"`
	UpdatedBy           string    `db:"updated_by" json:"updated_by"`
	UpdatedAt           time.Time `db:"updated_at" json:"updated_at"`
}

// ItemLocationView is an assignment row enriched with display data.
type ItemLocationView struct {
	ItemLocation
	ItemName     string `db:"item_name" json:"item_name"`
	LocationName string `db:"location_name" json:"location_name"`
	LocationPath string `db:"-" json:"location_path"`
}

type AssignmentFilter struct {
	ItemID     string
	LocationID uint64
	ClientID   string
	Page       int
	PerPage    int
}

type AssignRequest struct {
	ItemID              string                  `json:"item_id" validate:"required,notblank,max=50"`
	LocationID          uint64                  `json:"location_id" validate:"required"`
	ClientID            *string                 `json:"client_id" validate:"omitempty,max=50"`
	IsExclusive         bool                    `json:"is_exclusive"`
	RequiresCertificate bool                    `json:"requires_certificate"`
	Mode                constant.AssignmentMode `json:"mode,omitempty" validate:"assignment_mode"`
}

type UpdateAssignmentRequest struct {
	ClientID            *string `json:"client_id" validate:"omitempty,max=50"`
	IsExclusive         bool    `json:"is_exclusive"`
	RequiresCertificate bool    `json:"requires_certificate"`
}

type ConflictCheckRequest struct {
	ItemID     string `json:"item_id" validate:"required,notblank"`
	LocationID uint64 `json:"location_id" validate:"required"`
}

// ConflictResult describes what stands in the way of assigning a product
// to a location.
type ConflictResult struct {
	ProductHasOtherLocations bool     `json:"product_has_other_locations"`
	LocationHasOtherProducts bool     `json:"location_has_other_products"`
	ConflictingProduct       *Product `json:"conflicting_product,omitempty"`
	IsLocked                 bool     `json:"is_locked"`
	LockedBy                 string   `json:"locked_by,omitempty"`
	LocationIsMixed          bool     `json:"location_is_mixed"`
	OtherLocations           []uint64 `json:"other_locations,omitempty"`
}

// HasConflicts reports whether a plain add would be refused.
func (c *ConflictResult) HasConflicts() bool {
	return c.ProductHasOtherLocations || (c.LocationHasOtherProducts && !c.LocationIsMixed)
}

type AssignResponse struct {
	Assignment *ItemLocation           `json:"assignment"`
	Mode       constant.AssignmentMode `json:"mode"`
	Removed    int64                   `json:"removed"`
	AtLocation []ItemLocationView      `json:"at_location"`
}

type AssignmentListResponse struct {
	Items      []ItemLocationView `json:"items"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	PerPage    int                `json:"per_page"`
}

type CleanupResponse struct {
	Deleted int64 `json:"deleted"`
}

// AssignmentEventMessage is published after every committed assignment write.
type AssignmentEventMessage struct {
	Event       constant.AssignmentEvent `json:"event"`
	ItemID      string                   `json:"item_id,omitempty"`
	LocationIDs []uint64                 `json:"location_ids,omitempty"`
	Count       int64                    `json:"count"`
	Operator    string                   `json:"operator"`
	OccurredAt  time.Time                `json:"occurred_at"`
}

// AssignFlowResponse is the answer to an assignment submission. State is
// "awaiting_choice" when the operator must confirm Mode before anything is
// written, and "idle" once the write is done.
type AssignFlowResponse struct {
	State    string                  `json:"state"`
	Prompt   string                  `json:"prompt,omitempty"`
	Mode     constant.AssignmentMode `json:"mode,omitempty"`
	Conflict *ConflictResult         `json:"conflict,omitempty"`
	Result   *AssignResponse         `json:"result,omitempty"`
}
