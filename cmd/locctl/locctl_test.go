package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/muhammadheryan/item-location/application/location"
	"github.com/muhammadheryan/item-location/constant"
	assignmentmocks "github.com/muhammadheryan/item-location/mocks/application/assignment"
	locationmocks "github.com/muhammadheryan/item-location/mocks/application/location"
	"github.com/muhammadheryan/item-location/model"
	"github.com/muhammadheryan/item-location/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr(v uint64) *uint64 { return &v }

// Main > R1 > {L1, L2}
func sampleTree() *location.Tree {
	return location.BuildTree([]model.WarehouseLocation{
		{ID: 1, Name: "Main", Type: constant.LocationTypeWarehouse},
		{ID: 2, Name: "R1", ParentID: ptr(1), Type: constant.LocationTypeRack},
		{ID: 3, Name: "L1", ParentID: ptr(2), Type: constant.LocationTypeLevel},
		{ID: 4, Name: "L2", ParentID: ptr(2), Type: constant.LocationTypeLevel, IsMixed: true},
	})
}

func withMode(mode constant.AssignmentMode) interface{} {
	return mock.MatchedBy(func(r *model.AssignRequest) bool { return r.Mode == mode })
}

func runCLI(t *testing.T, locations *locationmocks.LocationApp, assignments *assignmentmocks.AssignmentApp, input string, args ...string) (string, error) {
	t.Helper()
	closed := false
	t.Cleanup(func() { assert.True(t, closed, "services not closed") })

	cmd := newRootCmd(func(context.Context) (*services, error) {
		return &services{locations: locations, assignments: assignments, close: func() { closed = true }}, nil
	})
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetArgs(append([]string{"--operator", "picker"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestTreeCmd(t *testing.T) {
	locations := locationmocks.NewLocationApp(t)
	assignments := assignmentmocks.NewAssignmentApp(t)
	locations.On("Tree", mock.Anything).Return(sampleTree(), nil)

	out, err := runCLI(t, locations, assignments, "", "tree", "--root", "2")
	require.NoError(t, err)
	assert.Equal(t, "R1 [2, rack]\n  L1 [3, level]\n  L2 [4, level] mixed\n", out)
}

func TestTreeCmd_UnknownRoot(t *testing.T) {
	locations := locationmocks.NewLocationApp(t)
	assignments := assignmentmocks.NewAssignmentApp(t)
	locations.On("Tree", mock.Anything).Return(sampleTree(), nil)

	_, err := runCLI(t, locations, assignments, "", "tree", "--root", "9")
	assert.EqualError(t, err, "location 9 not found")
}

func TestCheckCmd(t *testing.T) {
	locations := locationmocks.NewLocationApp(t)
	assignments := assignmentmocks.NewAssignmentApp(t)
	assignments.On("Check", mock.Anything, &model.ConflictCheckRequest{ItemID: "B2", LocationID: 3}, mock.AnythingOfType("string")).
		Return(&model.ConflictResult{
			LocationHasOtherProducts: true,
			ConflictingProduct:       &model.Product{Code: "A1", Name: "Bolt"},
		}, nil)

	out, err := runCLI(t, locations, assignments, "", "check", "B2", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "product has other locations: false\n")
	assert.Contains(t, out, "location has other products: true (A1 Bolt)\n")
	assert.Contains(t, out, "location is locked: false\n")
}

func TestCheckCmd_InvalidLocation(t *testing.T) {
	_, err := runCLIWithoutConnect(t, "check", "B2", "abc")
	assert.EqualError(t, err, `invalid location id "abc"`)
}

func runCLIWithoutConnect(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(func(context.Context) (*services, error) {
		t.Fatal("unexpected connect")
		return nil, nil
	})
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestAssignCmd(t *testing.T) {
	moveConflict := &model.ConflictResult{ProductHasOtherLocations: true, OtherLocations: []uint64{4}}

	tests := []struct {
		name     string
		input    string
		args     []string
		conflict *model.ConflictResult
		mode     constant.AssignmentMode
		contains []string
	}{
		{
			name:     "clear location is added without asking",
			conflict: &model.ConflictResult{},
			mode:     constant.ModeAdd,
			contains: []string{"Assigned B2 to Main > R1 > L1 (add)"},
		},
		{
			name:     "operator accepts the move",
			input:    "y\n",
			conflict: moveConflict,
			mode:     constant.ModeMove,
			contains: []string{"B2 is already stored at Main > R1 > L2. Move it to Main > R1 > L1?", "(move, 1 previous removed)"},
		},
		{
			name:     "yes flag skips the question",
			args:     []string{"--yes"},
			conflict: moveConflict,
			mode:     constant.ModeMove,
			contains: []string{"Assigned B2"},
		},
		{
			name:     "operator declines",
			input:    "n\n",
			conflict: moveConflict,
			contains: []string{"Cancelled, nothing written"},
		},
		{
			name:  "location holds another product",
			input: "yes\n",
			conflict: &model.ConflictResult{
				LocationHasOtherProducts: true,
				ConflictingProduct:       &model.Product{Code: "A1"},
			},
			mode:     constant.ModeAddAndMix,
			contains: []string{"Main > R1 > L1 already holds A1. Mark it mixed and add B2?"},
		},
		{
			name:  "location already mixed",
			input: "y\n",
			conflict: &model.ConflictResult{
				LocationHasOtherProducts: true,
				LocationIsMixed:          true,
				ConflictingProduct:       &model.Product{Code: "A1"},
			},
			mode:     constant.ModeAddAndMix,
			contains: []string{"Main > R1 > L1 is mixed and holds A1. Add B2 alongside it?"},
		},
		{
			name:  "move into an already mixed location",
			input: "y\n",
			conflict: &model.ConflictResult{
				ProductHasOtherLocations: true,
				OtherLocations:           []uint64{4},
				LocationHasOtherProducts: true,
				LocationIsMixed:          true,
				ConflictingProduct:       &model.Product{Code: "A1"},
			},
			mode:     constant.ModeMoveAndMix,
			contains: []string{"B2 is already stored at Main > R1 > L2 and mixed Main > R1 > L1 holds A1. Move it there?"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locations := locationmocks.NewLocationApp(t)
			assignments := assignmentmocks.NewAssignmentApp(t)
			locations.On("Tree", mock.Anything).Return(sampleTree(), nil)
			assignments.On("Check", mock.Anything, mock.Anything, mock.Anything).Return(tt.conflict, nil)
			if tt.mode != "" {
				assignments.On("Assign", mock.Anything, withMode(tt.mode), mock.MatchedBy(func(s *model.OperatorSession) bool {
					return s.Username == "picker" && s.SessionID != ""
				})).Return(&model.AssignResponse{Mode: tt.mode, Removed: int64(len(tt.conflict.OtherLocations))}, nil)
			}

			out, err := runCLI(t, locations, assignments, tt.input, append([]string{"assign", "B2", "3"}, tt.args...)...)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
		})
	}
}

func TestAssignCmd_ExplicitMode(t *testing.T) {
	locations := locationmocks.NewLocationApp(t)
	assignments := assignmentmocks.NewAssignmentApp(t)
	locations.On("Tree", mock.Anything).Return(sampleTree(), nil)
	assignments.On("Assign", mock.Anything, mock.MatchedBy(func(r *model.AssignRequest) bool {
		return r.Mode == constant.ModeAdd && r.ClientID != nil && *r.ClientID == "C9" && r.IsExclusive && r.RequiresCertificate
	}), mock.Anything).Return(&model.AssignResponse{Mode: constant.ModeAdd}, nil)

	_, err := runCLI(t, locations, assignments, "", "assign", "B2", "3", "--mode", "add", "--client", "C9", "--exclusive", "--certificate")
	require.NoError(t, err)
}

func TestAssignCmd_Locked(t *testing.T) {
	locations := locationmocks.NewLocationApp(t)
	assignments := assignmentmocks.NewAssignmentApp(t)
	locations.On("Tree", mock.Anything).Return(sampleTree(), nil)
	assignments.On("Check", mock.Anything, mock.Anything, mock.Anything).Return(&model.ConflictResult{IsLocked: true}, nil)

	out, err := runCLI(t, locations, assignments, "", "assign", "B2", "3")
	assert.True(t, errors.Is(err, constant.ErrLocationLocked))
	assert.Contains(t, out, "Main > R1 > L1 is locked by another session")
}

func TestPopulateCmd(t *testing.T) {
	locations := locationmocks.NewLocationApp(t)
	assignments := assignmentmocks.NewAssignmentApp(t)
	locations.On("Tree", mock.Anything).Return(sampleTree(), nil)

	// L1 is free and gets A1, L2 is held by someone else.
	locations.On("AcquireLease", mock.Anything, uint64(3), mock.AnythingOfType("string"), mock.Anything).
		Return(&model.LocationLease{LocationID: 3}, nil)
	locations.On("ReleaseLease", mock.Anything, uint64(3), mock.AnythingOfType("string")).Return(nil)
	locations.On("AcquireLease", mock.Anything, uint64(4), mock.AnythingOfType("string"), mock.Anything).
		Return(nil, errors.SetCustomError(constant.ErrLocationLocked))

	assignments.On("Check", mock.Anything, &model.ConflictCheckRequest{ItemID: "A1", LocationID: 3}, mock.Anything).
		Return(&model.ConflictResult{}, nil)
	assignments.On("Assign", mock.Anything, withMode(constant.ModeAdd), mock.Anything).
		Return(&model.AssignResponse{Mode: constant.ModeAdd}, nil)

	out, err := runCLI(t, locations, assignments, "A1\n", "populate", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Main > R1 > L1 product code: ")
	assert.Contains(t, out, "Main > R1 > L2: in use by another session, skipped")
	assert.Contains(t, out, "Done: 1 assigned, 0 skipped, 1 locked, 0 failed")
}

func TestPopulateCmd_SkipAndQuit(t *testing.T) {
	locations := locationmocks.NewLocationApp(t)
	assignments := assignmentmocks.NewAssignmentApp(t)
	locations.On("Tree", mock.Anything).Return(sampleTree(), nil)
	locations.On("AcquireLease", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(&model.LocationLease{}, nil)
	locations.On("ReleaseLease", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	out, err := runCLI(t, locations, assignments, "\nq\n", "populate", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Done: 0 assigned, 1 skipped, 0 locked, 0 failed")
	locations.AssertNumberOfCalls(t, "ReleaseLease", 2)
}

func TestPopulateCmd_AssignFailureContinues(t *testing.T) {
	locations := locationmocks.NewLocationApp(t)
	assignments := assignmentmocks.NewAssignmentApp(t)
	locations.On("Tree", mock.Anything).Return(sampleTree(), nil)
	locations.On("AcquireLease", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(&model.LocationLease{}, nil)
	locations.On("ReleaseLease", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	assignments.On("Check", mock.Anything, mock.Anything, mock.Anything).Return(&model.ConflictResult{}, nil)
	assignments.On("Assign", mock.Anything, mock.MatchedBy(func(r *model.AssignRequest) bool { return r.ItemID == "X" }), mock.Anything).
		Return(nil, errors.SetCustomError(constant.ErrInvalidRequest))
	assignments.On("Assign", mock.Anything, mock.MatchedBy(func(r *model.AssignRequest) bool { return r.ItemID == "A1" }), mock.Anything).
		Return(&model.AssignResponse{Mode: constant.ModeAdd}, nil)

	out, err := runCLI(t, locations, assignments, "X\nA1\n", "populate", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Main > R1 > L1: invalid request")
	assert.Contains(t, out, "Done: 1 assigned, 0 skipped, 0 locked, 1 failed")
}

func TestPopulateCmd_UnknownRack(t *testing.T) {
	locations := locationmocks.NewLocationApp(t)
	assignments := assignmentmocks.NewAssignmentApp(t)
	locations.On("Tree", mock.Anything).Return(sampleTree(), nil)

	_, err := runCLI(t, locations, assignments, "", "populate", "42")
	assert.EqualError(t, err, "location 42 not found")
}

func TestCleanupCmd(t *testing.T) {
	t.Run("product", func(t *testing.T) {
		locations := locationmocks.NewLocationApp(t)
		assignments := assignmentmocks.NewAssignmentApp(t)
		assignments.On("CleanupByProduct", mock.Anything, "A1", mock.Anything).Return(&model.CleanupResponse{Deleted: 2}, nil)

		out, err := runCLI(t, locations, assignments, "", "cleanup", "product", "A1")
		require.NoError(t, err)
		assert.Equal(t, "Removed 2 assignment(s) of A1\n", out)
	})

	t.Run("location with descendants", func(t *testing.T) {
		locations := locationmocks.NewLocationApp(t)
		assignments := assignmentmocks.NewAssignmentApp(t)
		assignments.On("CleanupByLocation", mock.Anything, uint64(2), true, mock.Anything).Return(&model.CleanupResponse{Deleted: 3}, nil)

		out, err := runCLI(t, locations, assignments, "", "cleanup", "location", "2", "--descendants")
		require.NoError(t, err)
		assert.Equal(t, "Removed 3 assignment(s) at location 2\n", out)
	})
}

func TestPrompter(t *testing.T) {
	out := &bytes.Buffer{}
	p := newPrompter(strings.NewReader(" A1 \nYes\nlast"), out)

	answer, err := p.Ask("code: ")
	require.NoError(t, err)
	assert.Equal(t, "A1", answer)

	ok, err := p.Confirm("Move")
	require.NoError(t, err)
	assert.True(t, ok)

	answer, err = p.Ask("again: ")
	require.NoError(t, err)
	assert.Equal(t, "last", answer)

	_, err = p.Ask("done: ")
	assert.Error(t, err)
	assert.Equal(t, "code: Move [y/N]: again: done: ", out.String())
}
