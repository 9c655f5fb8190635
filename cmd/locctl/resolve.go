package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/muhammadheryan/item-location/application/location"
	"github.com/muhammadheryan/item-location/application/resolution"
	"github.com/muhammadheryan/item-location/model"
)

// resolver drives one resolution flow from the terminal.
type resolver struct {
	flow      *resolution.Flow
	tree      *location.Tree
	prompter  *prompter
	out       io.Writer
	assumeYes bool
}

// run submits req and, when the flow asks for a choice, puts the question to
// the operator. It returns nil without writing when the operator declines.
func (r *resolver) run(ctx context.Context, req *model.AssignRequest) (*model.AssignResponse, error) {
	outcome, err := r.flow.Submit(ctx, req)
	if err != nil {
		if outcome != nil && outcome.Conflict != nil && outcome.Conflict.IsLocked {
			fmt.Fprintf(r.out, "%s is locked by another session\n", r.path(req.LocationID))
		}
		return nil, err
	}

	if outcome.State == resolution.StateAwaitingChoice {
		fmt.Fprintln(r.out, r.describe(req, outcome.Prompt, outcome.Conflict))
		ok := r.assumeYes
		if !ok {
			ok, err = r.prompter.Confirm("Continue")
			if err != nil {
				r.flow.Cancel()
				return nil, err
			}
		}
		if !ok {
			r.flow.Cancel()
			fmt.Fprintln(r.out, "Cancelled, nothing written")
			return nil, nil
		}
		outcome, err = r.flow.Confirm(ctx)
		if err != nil {
			return nil, err
		}
	}

	res := outcome.Result
	fmt.Fprintf(r.out, "Assigned %s to %s (%s", req.ItemID, r.path(req.LocationID), outcome.Mode)
	if res != nil && res.Removed > 0 {
		fmt.Fprintf(r.out, ", %d previous removed", res.Removed)
	}
	fmt.Fprintln(r.out, ")")
	return res, nil
}

func (r *resolver) describe(req *model.AssignRequest, prompt resolution.Prompt, conflict *model.ConflictResult) string {
	target := r.path(req.LocationID)
	others := make([]string, 0, len(conflict.OtherLocations))
	for _, id := range conflict.OtherLocations {
		others = append(others, r.path(id))
	}
	held := "another product"
	if conflict.ConflictingProduct != nil {
		held = conflict.ConflictingProduct.Code
	}

	switch prompt {
	case resolution.PromptMoveProduct:
		return fmt.Sprintf("%s is already stored at %s. Move it to %s?", req.ItemID, strings.Join(others, ", "), target)
	case resolution.PromptMixLocation:
		if conflict.LocationIsMixed {
			return fmt.Sprintf("%s is mixed and holds %s. Add %s alongside it?", target, held, req.ItemID)
		}
		return fmt.Sprintf("%s already holds %s. Mark it mixed and add %s?", target, held, req.ItemID)
	case resolution.PromptMoveAndMix:
		if conflict.LocationIsMixed {
			return fmt.Sprintf("%s is already stored at %s and mixed %s holds %s. Move it there?",
				req.ItemID, strings.Join(others, ", "), target, held)
		}
		return fmt.Sprintf("%s is already stored at %s and %s holds %s. Move it and mark %s mixed?",
			req.ItemID, strings.Join(others, ", "), target, held, target)
	}
	return ""
}

func (r *resolver) path(id uint64) string {
	if r.tree != nil {
		if p := r.tree.Path(id); p != "" {
			return p
		}
	}
	return fmt.Sprintf("location %d", id)
}
