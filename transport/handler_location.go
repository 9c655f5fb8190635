package transport

import (
	"net/http"
	"time"

	"github.com/muhammadheryan/item-location/constant"
	"github.com/muhammadheryan/item-location/model"
	utilsContext "github.com/muhammadheryan/item-location/utils/context"
	"github.com/muhammadheryan/item-location/utils/errors"
	validatorx "github.com/muhammadheryan/item-location/utils/validator"
)

// LocationTree handler
// @Summary Location hierarchy
// @Tags Locations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.LocationTreeResponse
// @Router /locations [get]
func (s *RestHandler) LocationTree(w http.ResponseWriter, r *http.Request) {
	tree, err := s.LocationApp.Tree(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, tree.Response())
}

// GetLocation handler
// @Summary Get location with its path and children
// @Tags Locations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Success 200 {object} model.LocationNode
// @Failure 404 {object} Response
// @Router /locations/{id} [get]
func (s *RestHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	node, err := s.LocationApp.GetLocation(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, node)
}

// CreateLocation handler
// @Summary Create location
// @Tags Locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateLocationRequest true "Location"
// @Success 200 {object} model.WarehouseLocation
// @Failure 400 {object} Response
// @Router /locations [post]
func (s *RestHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req model.CreateLocationRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	loc, err := s.LocationApp.CreateLocation(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, loc)
}

// SetMixed handler
// @Summary Flag a location as mixed or exclusive
// @Tags Locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Param request body model.SetMixedRequest true "Mixed flag"
// @Success 200 {object} Response
// @Failure 409 {object} Response
// @Router /locations/{id}/mixed [put]
func (s *RestHandler) SetMixed(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.SetMixedRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.LocationApp.SetMixed(r.Context(), id, req.IsMixed); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// AcquireLease handler
// @Summary Claim a location for the current session
// @Description Renews the lease when the session already holds it.
// @Tags Locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Param request body model.AcquireLeaseRequest false "Lease TTL"
// @Success 200 {object} model.LocationLease
// @Failure 423 {object} Response
// @Router /locations/{id}/lease [post]
func (s *RestHandler) AcquireLease(w http.ResponseWriter, r *http.Request) {
	session, ok := utilsContext.GetSession(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.AcquireLeaseRequest
	if err := decodeOptionalBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	lease, err := s.LocationApp.AcquireLease(r.Context(), id, session.SessionID, time.Duration(req.TTLSeconds)*time.Second)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, lease)
}

// ReleaseLease handler
// @Summary Release the current session's claim on a location
// @Tags Locations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Success 200 {object} Response
// @Failure 409 {object} Response
// @Router /locations/{id}/lease [delete]
func (s *RestHandler) ReleaseLease(w http.ResponseWriter, r *http.Request) {
	session, ok := utilsContext.GetSession(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.LocationApp.ReleaseLease(r.Context(), id, session.SessionID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// ExpireLease is called by the lease expiration consumer.
func (s *RestHandler) ExpireLease(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.LocationApp.ExpireLease(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}
