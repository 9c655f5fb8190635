// Package resolution drives an assignment through conflict checking, an
// optional operator choice and the final write.
package resolution

import (
	"context"
	"sync"

	"github.com/muhammadheryan/item-location/constant"
	"github.com/muhammadheryan/item-location/model"
	"github.com/muhammadheryan/item-location/utils/errors"
)

type State int

const (
	StateIdle State = iota
	StateChecking
	StateAwaitingChoice
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateChecking:
		return "checking"
	case StateAwaitingChoice:
		return "awaiting_choice"
	case StateSubmitting:
		return "submitting"
	}
	return "unknown"
}

// Prompt is the confirmation shown to the operator while awaiting a choice.
type Prompt int

const (
	PromptNone Prompt = iota
	PromptMoveProduct
	PromptMixLocation
	PromptMoveAndMix
)

func (p Prompt) String() string {
	switch p {
	case PromptMoveProduct:
		return "move_product"
	case PromptMixLocation:
		return "mix_location"
	case PromptMoveAndMix:
		return "move_and_mix"
	}
	return "none"
}

// Mode is the assignment mode submitted when the prompt is accepted.
func (p Prompt) Mode() constant.AssignmentMode {
	switch p {
	case PromptMoveProduct:
		return constant.ModeMove
	case PromptMixLocation:
		return constant.ModeAddAndMix
	case PromptMoveAndMix:
		return constant.ModeMoveAndMix
	}
	return constant.ModeAdd
}

func promptFor(c *model.ConflictResult) Prompt {
	switch {
	case c.ProductHasOtherLocations && c.LocationHasOtherProducts:
		return PromptMoveAndMix
	case c.ProductHasOtherLocations:
		return PromptMoveProduct
	case c.LocationHasOtherProducts:
		return PromptMixLocation
	}
	return PromptNone
}

type Checker interface {
	Check(ctx context.Context, req *model.ConflictCheckRequest, owner string) (*model.ConflictResult, error)
}

type Submitter interface {
	Assign(ctx context.Context, req *model.AssignRequest, session *model.OperatorSession) (*model.AssignResponse, error)
}

// Outcome is what a Submit or Confirm left behind. Result is set only after
// a successful write.
type Outcome struct {
	State    State                   `json:"-"`
	Prompt   Prompt                  `json:"-"`
	Mode     constant.AssignmentMode `json:"mode,omitempty"`
	Conflict *model.ConflictResult   `json:"conflict,omitempty"`
	Result   *model.AssignResponse   `json:"result,omitempty"`
}

// Flow is one operator's resolution state. Calls are serialised; Cancel
// waits for an in-flight check or write to finish.
type Flow struct {
	checker   Checker
	submitter Submitter
	session   *model.OperatorSession

	mu       sync.Mutex
	state    State
	prompt   Prompt
	pending  *model.AssignRequest
	conflict *model.ConflictResult
}

func NewFlow(checker Checker, submitter Submitter, session *model.OperatorSession) *Flow {
	return &Flow{checker: checker, submitter: submitter, session: session}
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Pending returns the request and prompt awaiting the operator, if any.
func (f *Flow) Pending() (*model.AssignRequest, Prompt, *model.ConflictResult) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateAwaitingChoice {
		return nil, PromptNone, nil
	}
	req := *f.pending
	return &req, f.prompt, f.conflict
}

// Submit writes req directly when it names a mode. Without a mode the
// conflict check decides between writing a plain add and asking the operator.
func (f *Flow) Submit(ctx context.Context, req *model.AssignRequest) (*Outcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateIdle {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	pending := *req

	if pending.Mode != "" {
		if !pending.Mode.Valid() {
			return nil, errors.SetCustomError(constant.ErrInvalidMode)
		}
		return f.submit(ctx, &pending, pending.Mode, nil)
	}

	f.state = StateChecking
	conflict, err := f.checker.Check(ctx, &model.ConflictCheckRequest{ItemID: pending.ItemID, LocationID: pending.LocationID}, f.session.SessionID)
	if err != nil {
		f.reset()
		return nil, err
	}
	if conflict.IsLocked {
		f.reset()
		return &Outcome{State: StateIdle, Conflict: conflict}, errors.SetCustomError(constant.ErrLocationLocked)
	}

	prompt := promptFor(conflict)
	if prompt == PromptNone {
		return f.submit(ctx, &pending, constant.ModeAdd, conflict)
	}

	f.state = StateAwaitingChoice
	f.prompt = prompt
	f.pending = &pending
	f.conflict = conflict
	return &Outcome{State: StateAwaitingChoice, Prompt: prompt, Mode: prompt.Mode(), Conflict: conflict}, nil
}

// Confirm accepts the pending prompt and writes with its mode.
func (f *Flow) Confirm(ctx context.Context) (*Outcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateAwaitingChoice {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return f.submit(ctx, f.pending, f.prompt.Mode(), f.conflict)
}

// Cancel drops any pending choice without writing.
func (f *Flow) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
}

func (f *Flow) submit(ctx context.Context, req *model.AssignRequest, mode constant.AssignmentMode, conflict *model.ConflictResult) (*Outcome, error) {
	f.state = StateSubmitting
	req.Mode = mode
	resp, err := f.submitter.Assign(ctx, req, f.session)
	f.reset()
	if err != nil {
		return nil, err
	}
	return &Outcome{State: StateIdle, Mode: mode, Conflict: conflict, Result: resp}, nil
}

func (f *Flow) reset() {
	f.state = StateIdle
	f.prompt = PromptNone
	f.pending = nil
	f.conflict = nil
}
