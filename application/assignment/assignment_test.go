package assignment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appassignment "github.com/muhammadheryan/item-location/application/assignment"
	"github.com/muhammadheryan/item-location/constant"
	"github.com/muhammadheryan/item-location/model"
	cerr "github.com/muhammadheryan/item-location/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	locMain uint64 = 1
	locRack uint64 = 2
	locN1   uint64 = 3
	locN2   uint64 = 4
)

var session = &model.OperatorSession{OperatorID: 7, Username: "picker", Role: "operator", SessionID: "session-a"}

func ptr[T any](v T) *T { return &v }

// Main > R1 > {R1-N1, R1-N2}
func setup() (*world, appassignment.AssignmentApp) {
	w := newWorld()
	w.addLocation(locMain, "Main", nil, false)
	w.addLocation(locRack, "R1", ptr(locMain), false)
	w.addLocation(locN1, "R1-N1", ptr(locRack), false)
	w.addLocation(locN2, "R1-N2", ptr(locRack), false)
	w.products["A1"] = model.Product{Code: "A1", Name: "Bolts"}
	w.products["B2"] = model.Product{Code: "B2", Name: "Nuts"}
	w.customers["C1"] = model.Customer{ID: "C1", Name: "Acme"}

	app := appassignment.NewAssignmentApp(fakeTx{w}, fakeAssignments{w}, fakeLocations{w}, fakeLeases{w}, fakeCatalog{w}, fakeTree{w}, fakePublisher{w})
	return w, app
}

func assign(app appassignment.AssignmentApp, item string, loc uint64, mode constant.AssignmentMode) (*model.AssignResponse, error) {
	return app.Assign(context.Background(), &model.AssignRequest{ItemID: item, LocationID: loc, Mode: mode}, session)
}

func check(t *testing.T, app appassignment.AssignmentApp, item string, loc uint64) *model.ConflictResult {
	t.Helper()
	res, err := app.Check(context.Background(), &model.ConflictCheckRequest{ItemID: item, LocationID: loc}, session.SessionID)
	require.NoError(t, err)
	return res
}

func TestAssign_MixScenario(t *testing.T) {
	w, app := setup()

	res := check(t, app, "A1", locN1)
	assert.False(t, res.ProductHasOtherLocations)
	assert.False(t, res.LocationHasOtherProducts)
	assert.False(t, res.IsLocked)

	_, err := assign(app, "A1", locN1, constant.ModeAdd)
	require.NoError(t, err)

	res = check(t, app, "B2", locN1)
	assert.True(t, res.LocationHasOtherProducts)
	require.NotNil(t, res.ConflictingProduct)
	assert.Equal(t, "A1", res.ConflictingProduct.Code)
	assert.Equal(t, "Bolts", res.ConflictingProduct.Name)
	assert.False(t, res.LocationIsMixed)

	_, err = assign(app, "B2", locN1, constant.ModeAdd)
	assert.True(t, cerr.Is(err, constant.ErrAssignmentConflict))
	assert.Len(t, w.atLocation(locN1), 1)

	resp, err := assign(app, "B2", locN1, constant.ModeAddAndMix)
	require.NoError(t, err)
	assert.Len(t, w.atLocation(locN1), 2)
	assert.True(t, w.locations[locN1].IsMixed)
	assert.Len(t, resp.AtLocation, 2)
	assert.Equal(t, "Main > R1 > R1-N1", resp.AtLocation[0].LocationPath)
}

func TestAssign_AddThenCheckIsClear(t *testing.T) {
	_, app := setup()

	resp, err := assign(app, "A1", locN2, constant.ModeAdd)
	require.NoError(t, err)
	assert.Equal(t, "picker", resp.Assignment.UpdatedBy)
	assert.NotZero(t, resp.Assignment.ID)

	res := check(t, app, "A1", locN2)
	assert.False(t, res.HasConflicts())
	assert.False(t, res.ProductHasOtherLocations)
	assert.False(t, res.LocationHasOtherProducts)
}

func TestAssign_Modes(t *testing.T) {
	tests := []struct {
		name      string
		prepare   func(w *world)
		item      string
		mode      constant.AssignmentMode
		wantErr   constant.ErrorType
		wantN1    []string
		wantN2    []string
		wantMixed bool
	}{
		{
			name:    "add refused when product lives elsewhere",
			prepare: func(w *world) { w.addRow("A1", locN2) },
			item:    "A1",
			mode:    constant.ModeAdd,
			wantErr: constant.ErrAssignmentConflict,
			wantN2:  []string{"A1"},
		},
		{
			name:    "move removes the prior assignment",
			prepare: func(w *world) { w.addRow("A1", locN2) },
			item:    "A1",
			mode:    constant.ModeMove,
			wantN1:  []string{"A1"},
		},
		{
			name: "move refused into an unmixed occupied location",
			prepare: func(w *world) {
				w.addRow("A1", locN2)
				w.addRow("B2", locN1)
			},
			item:    "A1",
			mode:    constant.ModeMove,
			wantErr: constant.ErrAssignmentConflict,
			wantN1:  []string{"B2"},
			wantN2:  []string{"A1"},
		},
		{
			name: "move refused into a mixed occupied location",
			prepare: func(w *world) {
				markMixed(w, locN1)
				w.addRow("A1", locN2)
				w.addRow("B2", locN1)
			},
			item:      "A1",
			mode:      constant.ModeMove,
			wantErr:   constant.ErrAssignmentConflict,
			wantN1:    []string{"B2"},
			wantN2:    []string{"A1"},
			wantMixed: true,
		},
		{
			name: "move_and_mix relocates and mixes",
			prepare: func(w *world) {
				w.addRow("A1", locN2)
				w.addRow("B2", locN1)
			},
			item:      "A1",
			mode:      constant.ModeMoveAndMix,
			wantN1:    []string{"B2", "A1"},
			wantMixed: true,
		},
		{
			name:    "add_and_mix refused when product lives elsewhere",
			prepare: func(w *world) { w.addRow("A1", locN2) },
			item:    "A1",
			mode:    constant.ModeAddAndMix,
			wantErr: constant.ErrAssignmentConflict,
			wantN2:  []string{"A1"},
		},
		{
			name: "add refused into a mixed location holding another product",
			prepare: func(w *world) {
				markMixed(w, locN1)
				w.addRow("B2", locN1)
			},
			item:      "A1",
			mode:      constant.ModeAdd,
			wantErr:   constant.ErrAssignmentConflict,
			wantN1:    []string{"B2"},
			wantMixed: true,
		},
		{
			name: "add_and_mix into an already mixed location",
			prepare: func(w *world) {
				markMixed(w, locN1)
				w.addRow("B2", locN1)
			},
			item:      "A1",
			mode:      constant.ModeAddAndMix,
			wantN1:    []string{"B2", "A1"},
			wantMixed: true,
		},
		{
			name:    "same product twice at the same location",
			prepare: func(w *world) { w.addRow("A1", locN1) },
			item:    "A1",
			mode:    constant.ModeAdd,
			wantErr: constant.ErrDuplicateAssignment,
			wantN1:  []string{"A1"},
		},
		{
			name:    "unknown mode",
			prepare: func(w *world) {},
			item:    "A1",
			mode:    constant.AssignmentMode("swap"),
			wantErr: constant.ErrInvalidMode,
		},
		{
			name:    "unknown product",
			prepare: func(w *world) {},
			item:    "ZZ",
			mode:    constant.ModeAdd,
			wantErr: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, app := setup()
			tt.prepare(w)

			_, err := assign(app, tt.item, locN1, tt.mode)
			if tt.wantErr != constant.Successful {
				require.Error(t, err)
				assert.True(t, cerr.Is(err, tt.wantErr), err.Error())
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantN1, items(w.atLocation(locN1)))
			assert.Equal(t, tt.wantN2, items(w.atLocation(locN2)))
			assert.Equal(t, tt.wantMixed, w.locations[locN1].IsMixed)
		})
	}
}

func markMixed(w *world, id uint64) {
	l := w.locations[id]
	l.IsMixed = true
	w.locations[id] = l
}

func TestAssign_AddOnMixedLocationLeavesNoConflict(t *testing.T) {
	w, app := setup()
	markMixed(w, locN1)

	_, err := assign(app, "A1", locN1, constant.ModeAdd)
	require.NoError(t, err)
	res := check(t, app, "A1", locN1)
	assert.False(t, res.ProductHasOtherLocations)
	assert.False(t, res.LocationHasOtherProducts)
	assert.True(t, res.LocationIsMixed)

	_, err = assign(app, "B2", locN1, constant.ModeAdd)
	assert.True(t, cerr.Is(err, constant.ErrAssignmentConflict))
	assert.Equal(t, []string{"A1"}, items(w.atLocation(locN1)))

	_, err = assign(app, "B2", locN1, constant.ModeAddAndMix)
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "B2"}, items(w.atLocation(locN1)))
}

func TestAssign_ProductLockedBeforeRecheck(t *testing.T) {
	w, app := setup()
	// another session adds A1 to N2 and commits while we wait for the product lock
	w.onProductLock = func(w *world) {
		w.onProductLock = nil
		w.addCommittedRow("A1", locN2)
	}

	_, err := assign(app, "A1", locN1, constant.ModeAdd)
	assert.True(t, cerr.Is(err, constant.ErrAssignmentConflict))
	assert.Equal(t, []string{"A1"}, w.productLocks)
	assert.Empty(t, w.atLocation(locN1))
	assert.Equal(t, []string{"A1"}, items(w.byItem("A1")))
	assert.Equal(t, 1, w.rollbacks)
}

func items(rows []model.ItemLocation) []string {
	if len(rows) == 0 {
		return nil
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ItemID)
	}
	return out
}

func TestAssign_MoveRollsBackOnInsertFailure(t *testing.T) {
	w, app := setup()
	prior := w.addRow("A1", locN2)
	w.failInsert = errors.New("disk full")

	_, err := assign(app, "A1", locN1, constant.ModeMove)
	assert.True(t, cerr.Is(err, constant.ErrInternal))

	_, ok := w.rows[prior]
	assert.True(t, ok, "prior assignment must survive a failed move")
	assert.Empty(t, w.atLocation(locN1))
	assert.Equal(t, 1, w.rollbacks)
	assert.Empty(t, w.events)
}

func TestAssign_MovePublishesEvent(t *testing.T) {
	w, app := setup()
	w.addRow("A1", locN2)

	resp, err := assign(app, "A1", locN1, constant.ModeMove)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Removed)

	require.Len(t, w.events, 1)
	assert.Equal(t, constant.AssignmentEventMoved, w.events[0].Event)
	assert.Equal(t, []uint64{locN1, locN2}, w.events[0].LocationIDs)
}

func TestAssign_ClientScopedRows(t *testing.T) {
	w, app := setup()

	_, err := app.Assign(context.Background(), &model.AssignRequest{ItemID: "A1", LocationID: locN1, Mode: constant.ModeAdd}, session)
	require.NoError(t, err)

	// the same product reserved for a client is a separate row
	resp, err := app.Assign(context.Background(), &model.AssignRequest{ItemID: "A1", LocationID: locN1, ClientID: ptr("C1"), IsExclusive: true, Mode: constant.ModeAdd}, session)
	require.NoError(t, err)
	assert.Equal(t, "C1", *resp.Assignment.ClientID)
	assert.Len(t, w.atLocation(locN1), 2)

	_, err = app.Assign(context.Background(), &model.AssignRequest{ItemID: "A1", LocationID: locN1, ClientID: ptr("  "), Mode: constant.ModeAdd}, session)
	assert.True(t, cerr.Is(err, constant.ErrDuplicateAssignment))

	_, err = app.Assign(context.Background(), &model.AssignRequest{ItemID: "B2", LocationID: locN2, ClientID: ptr("NOPE"), Mode: constant.ModeAdd}, session)
	assert.True(t, cerr.Is(err, constant.ErrInvalidRequest))
}

func TestAssign_LeaseBlocksOtherSessions(t *testing.T) {
	w, app := setup()
	w.leases[locN1] = model.LocationLease{LocationID: locN1, Owner: "session-b", ExpiresAt: time.Now().Add(time.Minute)}

	res := check(t, app, "A1", locN1)
	assert.True(t, res.IsLocked)
	assert.Equal(t, "session-b", res.LockedBy)

	_, err := assign(app, "A1", locN1, constant.ModeAdd)
	assert.True(t, cerr.Is(err, constant.ErrLocationLocked))
	assert.Empty(t, w.atLocation(locN1))

	// the owner itself may write
	owner := &model.OperatorSession{Username: "other", SessionID: "session-b"}
	_, err = app.Assign(context.Background(), &model.AssignRequest{ItemID: "A1", LocationID: locN1, Mode: constant.ModeAdd}, owner)
	require.NoError(t, err)

	// an expired lease no longer blocks
	w.leases[locN2] = model.LocationLease{LocationID: locN2, Owner: "session-b", ExpiresAt: time.Now().Add(-time.Second)}
	_, err = assign(app, "B2", locN2, constant.ModeAdd)
	require.NoError(t, err)
}

func TestAssign_MoveBlockedByLeaseOnPriorLocation(t *testing.T) {
	w, app := setup()
	w.addRow("A1", locN2)
	w.leases[locN2] = model.LocationLease{LocationID: locN2, Owner: "session-b", ExpiresAt: time.Now().Add(time.Minute)}

	_, err := assign(app, "A1", locN1, constant.ModeMove)
	assert.True(t, cerr.Is(err, constant.ErrLocationLocked))
	assert.Equal(t, []string{"A1"}, items(w.atLocation(locN2)))
}

func TestCleanup(t *testing.T) {
	t.Run("by product", func(t *testing.T) {
		w, app := setup()
		w.addRow("A1", locN1)
		w.addRow("A1", locN2)
		w.addRow("B2", locN2)

		resp, err := app.CleanupByProduct(context.Background(), "A1", session)
		require.NoError(t, err)
		assert.Equal(t, int64(2), resp.Deleted)
		assert.Empty(t, w.byItem("A1"))
		assert.Len(t, w.byItem("B2"), 1)
	})

	t.Run("by location", func(t *testing.T) {
		w, app := setup()
		w.addRow("A1", locN1)
		w.addRow("B2", locN1)
		w.addRow("B2", locN2)

		resp, err := app.CleanupByLocation(context.Background(), locN1, false, session)
		require.NoError(t, err)
		assert.Equal(t, int64(2), resp.Deleted)
		assert.Empty(t, w.atLocation(locN1))
		assert.Len(t, w.atLocation(locN2), 1)
	})

	t.Run("by location with descendants", func(t *testing.T) {
		w, app := setup()
		w.addRow("A1", locN1)
		w.addRow("B2", locN2)

		resp, err := app.CleanupByLocation(context.Background(), locRack, true, session)
		require.NoError(t, err)
		assert.Equal(t, int64(2), resp.Deleted)
		assert.Empty(t, w.rows)
	})

	t.Run("blocked by lease", func(t *testing.T) {
		w, app := setup()
		w.addRow("A1", locN1)
		w.leases[locN1] = model.LocationLease{LocationID: locN1, Owner: "session-b", ExpiresAt: time.Now().Add(time.Minute)}

		_, err := app.CleanupByLocation(context.Background(), locN1, false, session)
		assert.True(t, cerr.Is(err, constant.ErrLocationLocked))
		assert.Len(t, w.rows, 1)
	})

	t.Run("by product refuses rows added at unlocked locations", func(t *testing.T) {
		w, app := setup()
		w.addRow("A1", locN1)
		w.onProductLock = func(w *world) {
			w.onProductLock = nil
			w.addCommittedRow("A1", locN2)
		}

		_, err := app.CleanupByProduct(context.Background(), "A1", session)
		assert.True(t, cerr.Is(err, constant.ErrAssignmentConflict))
		assert.Len(t, w.byItem("A1"), 2)
		assert.Empty(t, w.events)
	})

	t.Run("unknown location", func(t *testing.T) {
		_, app := setup()
		_, err := app.CleanupByLocation(context.Background(), 99, false, session)
		assert.True(t, cerr.Is(err, constant.ErrNotFound))
	})
}

func TestUpdateAndDelete(t *testing.T) {
	w, app := setup()
	id := w.addRow("A1", locN1)

	updated, err := app.Update(context.Background(), id, &model.UpdateAssignmentRequest{ClientID: ptr("C1"), RequiresCertificate: true}, session)
	require.NoError(t, err)
	assert.Equal(t, "C1", *updated.ClientID)
	assert.True(t, w.rows[id].RequiresCertificate)
	assert.Equal(t, "picker", w.rows[id].UpdatedBy)

	_, err = app.Update(context.Background(), 99, &model.UpdateAssignmentRequest{}, session)
	assert.True(t, cerr.Is(err, constant.ErrNotFound))

	require.NoError(t, app.Delete(context.Background(), id, session))
	assert.Empty(t, w.rows)

	err = app.Delete(context.Background(), id, session)
	assert.True(t, cerr.Is(err, constant.ErrNotFound))
}

func TestList(t *testing.T) {
	w, app := setup()
	w.addRow("A1", locN1)
	w.addRow("B2", locN2)

	resp, err := app.List(context.Background(), &model.AssignmentFilter{ItemID: "B2"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.TotalCount)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 20, resp.PerPage)
	assert.Equal(t, "Main > R1 > R1-N2", resp.Items[0].LocationPath)
	assert.Equal(t, "Nuts", resp.Items[0].ItemName)
}
