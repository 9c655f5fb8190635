package model

import (
	"time"

	"github.com/muhammadheryan/item-location/constant"
)

// WarehouseLocation represents the warehouse_location table entity.
// ParentID nil marks a root of the location hierarchy.
type WarehouseLocation struct {
	ID        uint64                `db:"id" json:"id"`
	Name      string                `db:"name" json:"name"`
	ParentID  *uint64               `db:"parent_id" json:"parent_id,omitempty"`
	Type      constant.LocationType `db:"type" json:"type"`
	IsMixed   bool                  `db:"is_mixed" json:"is_mixed"`
	CreatedAt time.Time             `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time            `db:"updated_at" json:"updated_at,omitempty"`
}

// LocationNode is a location placed in the reconstructed tree.
type LocationNode struct {
	WarehouseLocation
	Path     string   `json:"path"`
	Depth    int      `json:"depth"`
	Children []uint64 `json:"children,omitempty"`
}

type CreateLocationRequest struct {
	Name     string                `json:"name" validate:"required,notblank,max=100"`
	ParentID *uint64               `json:"parent_id"`
	Type     constant.LocationType `json:"type" validate:"required,oneof=warehouse zone rack level bin"`
	IsMixed  bool                  `json:"is_mixed"`
}

type SetMixedRequest struct {
	IsMixed bool `json:"is_mixed"`
}

type LocationTreeResponse struct {
	Roots []uint64                 `json:"roots"`
	Nodes map[uint64]*LocationNode `json:"nodes"`
}
