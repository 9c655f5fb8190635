package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/item-location/application/resolution"
	"github.com/muhammadheryan/item-location/constant"
	"github.com/muhammadheryan/item-location/model"
	utilsContext "github.com/muhammadheryan/item-location/utils/context"
	"github.com/muhammadheryan/item-location/utils/errors"
	validatorx "github.com/muhammadheryan/item-location/utils/validator"
)

// ListAssignments handler
// @Summary List assignments
// @Tags Assignments
// @Produce json
// @Security BearerAuth
// @Param item_id query string false "Product code"
// @Param location_id query int false "Location ID"
// @Param client_id query string false "Customer ID"
// @Param page query int false "Page"
// @Param per_page query int false "Per page"
// @Success 200 {object} model.AssignmentListResponse
// @Router /assignments [get]
func (s *RestHandler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &model.AssignmentFilter{
		ItemID:   q.Get("item_id"),
		ClientID: q.Get("client_id"),
		Page:     queryInt(r, "page"),
		PerPage:  queryInt(r, "per_page"),
	}
	if v := queryInt(r, "location_id"); v > 0 {
		filter.LocationID = uint64(v)
	}

	res, err := s.AssignmentApp.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CheckConflicts handler
// @Summary Check a proposed assignment for conflicts
// @Tags Assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ConflictCheckRequest true "Proposed pair"
// @Success 200 {object} model.ConflictResult
// @Router /assignments/check [post]
func (s *RestHandler) CheckConflicts(w http.ResponseWriter, r *http.Request) {
	session, ok := utilsContext.GetSession(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	var req model.ConflictCheckRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AssignmentApp.Check(r.Context(), &req, session.SessionID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// SubmitAssignment handler
// @Summary Assign a product to a location
// @Description Without mode the request is checked first; on conflict nothing is written and the answer is state=awaiting_choice with the mode to resubmit.
// @Tags Assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.AssignRequest true "Assignment"
// @Success 200 {object} model.AssignFlowResponse
// @Failure 409 {object} Response
// @Failure 423 {object} Response
// @Router /assignments [post]
func (s *RestHandler) SubmitAssignment(w http.ResponseWriter, r *http.Request) {
	session, ok := utilsContext.GetSession(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	var req model.AssignRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	flow := resolution.NewFlow(s.AssignmentApp, s.AssignmentApp, session)
	out, err := flow.Submit(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	res := &model.AssignFlowResponse{
		State:    out.State.String(),
		Mode:     out.Mode,
		Conflict: out.Conflict,
		Result:   out.Result,
	}
	if out.Prompt != resolution.PromptNone {
		res.Prompt = out.Prompt.String()
	}
	writeSuccess(w, res)
}

// UpdateAssignment handler
// @Summary Edit client and flags of an assignment
// @Tags Assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Param request body model.UpdateAssignmentRequest true "Changes"
// @Success 200 {object} model.ItemLocation
// @Router /assignments/{id} [put]
func (s *RestHandler) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
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
	var req model.UpdateAssignmentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AssignmentApp.Update(r.Context(), id, &req, session)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteAssignment handler
// @Summary Delete one assignment
// @Tags Assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} Response
// @Router /assignments/{id} [delete]
func (s *RestHandler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
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

	if err := s.AssignmentApp.Delete(r.Context(), id, session); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// CleanupByProduct handler
// @Summary Delete every assignment of a product
// @Tags Assignments
// @Produce json
// @Security BearerAuth
// @Param itemId path string true "Product code"
// @Success 200 {object} model.CleanupResponse
// @Router /assignments/by-product/{itemId} [delete]
func (s *RestHandler) CleanupByProduct(w http.ResponseWriter, r *http.Request) {
	session, ok := utilsContext.GetSession(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	itemID := mux.Vars(r)["itemId"]
	if itemID == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AssignmentApp.CleanupByProduct(r.Context(), itemID, session)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CleanupByLocation handler
// @Summary Delete every assignment at a location
// @Tags Assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Param descendants query bool false "Include locations below"
// @Success 200 {object} model.CleanupResponse
// @Router /assignments/by-location/{id} [delete]
func (s *RestHandler) CleanupByLocation(w http.ResponseWriter, r *http.Request) {
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
	descendants := r.URL.Query().Get("descendants") == "true"

	res, err := s.AssignmentApp.CleanupByLocation(r.Context(), id, descendants, session)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
