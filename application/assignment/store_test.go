package assignment_test

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/item-location/application/location"
	"github.com/muhammadheryan/item-location/model"
)

// world is an in-memory stand-in for the database. BeginTx snapshots it
// and RollbackTx restores the snapshot.
type world struct {
	locations map[uint64]model.WarehouseLocation
	rows      map[uint64]model.ItemLocation
	leases    map[uint64]model.LocationLease
	products  map[string]model.Product
	customers map[string]model.Customer
	nextID    uint64

	snapshot   *world
	commits    int
	rollbacks  int
	failInsert error
	failDelete error
	events     []model.AssignmentEventMessage

	// productLocks records LockProductTx calls; onProductLock runs inside
	// them, standing in for a writer that committed while we waited.
	productLocks  []string
	onProductLock func(w *world)
}

func newWorld() *world {
	return &world{
		locations: map[uint64]model.WarehouseLocation{},
		rows:      map[uint64]model.ItemLocation{},
		leases:    map[uint64]model.LocationLease{},
		products:  map[string]model.Product{},
		customers: map[string]model.Customer{},
		nextID:    1,
	}
}

func (w *world) clone() *world {
	c := &world{
		locations: make(map[uint64]model.WarehouseLocation, len(w.locations)),
		rows:      make(map[uint64]model.ItemLocation, len(w.rows)),
		leases:    make(map[uint64]model.LocationLease, len(w.leases)),
		nextID:    w.nextID,
	}
	for k, v := range w.locations {
		c.locations[k] = v
	}
	for k, v := range w.rows {
		c.rows[k] = v
	}
	for k, v := range w.leases {
		c.leases[k] = v
	}
	return c
}

func (w *world) addLocation(id uint64, name string, parent *uint64, mixed bool) {
	w.locations[id] = model.WarehouseLocation{ID: id, Name: name, ParentID: parent, IsMixed: mixed}
}

func (w *world) addRow(itemID string, locationID uint64) uint64 {
	id := w.nextID
	w.nextID++
	w.rows[id] = model.ItemLocation{ID: id, ItemID: itemID, LocationID: locationID}
	return id
}

// addCommittedRow adds a row that survives a rollback of the open transaction.
func (w *world) addCommittedRow(itemID string, locationID uint64) uint64 {
	id := w.addRow(itemID, locationID)
	if w.snapshot != nil {
		w.snapshot.rows[id] = w.rows[id]
		w.snapshot.nextID = w.nextID
	}
	return id
}

func (w *world) rowsWhere(pred func(model.ItemLocation) bool) []model.ItemLocation {
	out := make([]model.ItemLocation, 0)
	for _, r := range w.rows {
		if pred(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (w *world) byItem(itemID string) []model.ItemLocation {
	return w.rowsWhere(func(r model.ItemLocation) bool { return r.ItemID == itemID })
}

func (w *world) atLocation(locationID uint64) []model.ItemLocation {
	return w.rowsWhere(func(r model.ItemLocation) bool { return r.LocationID == locationID })
}

type fakeTx struct{ w *world }

func (f fakeTx) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	f.w.snapshot = f.w.clone()
	return nil, nil
}

func (f fakeTx) CommitTx(tx *sqlx.Tx) error {
	f.w.snapshot = nil
	f.w.commits++
	return nil
}

func (f fakeTx) RollbackTx(tx *sqlx.Tx) error {
	s := f.w.snapshot
	f.w.locations, f.w.rows, f.w.leases, f.w.nextID = s.locations, s.rows, s.leases, s.nextID
	f.w.snapshot = nil
	f.w.rollbacks++
	return nil
}

type fakeLocations struct{ w *world }

func (f fakeLocations) List(ctx context.Context) ([]model.WarehouseLocation, error) {
	out := make([]model.WarehouseLocation, 0, len(f.w.locations))
	for _, l := range f.w.locations {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f fakeLocations) GetByID(ctx context.Context, id uint64) (*model.WarehouseLocation, error) {
	l, ok := f.w.locations[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (f fakeLocations) LockByIDsTx(ctx context.Context, tx *sqlx.Tx, ids []uint64) ([]model.WarehouseLocation, error) {
	out := make([]model.WarehouseLocation, 0, len(ids))
	for _, id := range ids {
		if l, ok := f.w.locations[id]; ok {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f fakeLocations) Create(ctx context.Context, loc *model.WarehouseLocation) (*model.WarehouseLocation, error) {
	return nil, errors.New("not supported")
}

func (f fakeLocations) SetMixed(ctx context.Context, id uint64, mixed bool) error {
	return f.SetMixedTx(ctx, nil, id, mixed)
}

func (f fakeLocations) SetMixedTx(ctx context.Context, tx *sqlx.Tx, id uint64, mixed bool) error {
	l := f.w.locations[id]
	l.IsMixed = mixed
	f.w.locations[id] = l
	return nil
}

type fakeAssignments struct{ w *world }

func (f fakeAssignments) List(ctx context.Context, filter *model.AssignmentFilter) ([]model.ItemLocationView, int64, error) {
	rows := f.w.rowsWhere(func(r model.ItemLocation) bool {
		return (filter.ItemID == "" || r.ItemID == filter.ItemID) &&
			(filter.LocationID == 0 || r.LocationID == filter.LocationID) &&
			(filter.ClientID == "" || (r.ClientID != nil && *r.ClientID == filter.ClientID))
	})
	out := make([]model.ItemLocationView, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.ItemLocationView{
			ItemLocation: r,
			ItemName:     f.w.products[r.ItemID].Name,
			LocationName: f.w.locations[r.LocationID].Name,
		})
	}
	return out, int64(len(out)), nil
}

func (f fakeAssignments) GetByID(ctx context.Context, id uint64) (*model.ItemLocation, error) {
	r, ok := f.w.rows[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (f fakeAssignments) ListByItem(ctx context.Context, itemID string) ([]model.ItemLocation, error) {
	return f.w.byItem(itemID), nil
}

func (f fakeAssignments) ListByLocation(ctx context.Context, locationID uint64) ([]model.ItemLocation, error) {
	return f.w.atLocation(locationID), nil
}

func (f fakeAssignments) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.ItemLocation, error) {
	return f.GetByID(ctx, id)
}

func (f fakeAssignments) ListByItemTx(ctx context.Context, tx *sqlx.Tx, itemID string) ([]model.ItemLocation, error) {
	return f.w.byItem(itemID), nil
}

func (f fakeAssignments) ListByLocationTx(ctx context.Context, tx *sqlx.Tx, locationID uint64) ([]model.ItemLocation, error) {
	return f.w.atLocation(locationID), nil
}

func (f fakeAssignments) ListByLocationsTx(ctx context.Context, tx *sqlx.Tx, locationIDs []uint64) ([]model.ItemLocation, error) {
	set := make(map[uint64]bool, len(locationIDs))
	for _, id := range locationIDs {
		set[id] = true
	}
	return f.w.rowsWhere(func(r model.ItemLocation) bool { return set[r.LocationID] }), nil
}

func (f fakeAssignments) InsertTx(ctx context.Context, tx *sqlx.Tx, data *model.ItemLocation) (uint64, error) {
	if f.w.failInsert != nil {
		return 0, f.w.failInsert
	}
	id := f.w.nextID
	f.w.nextID++
	row := *data
	row.ID = id
	f.w.rows[id] = row
	return id, nil
}

func (f fakeAssignments) UpdateTx(ctx context.Context, tx *sqlx.Tx, data *model.ItemLocation) error {
	if _, ok := f.w.rows[data.ID]; !ok {
		return errors.New("no rows")
	}
	f.w.rows[data.ID] = *data
	return nil
}

func (f fakeAssignments) deleteWhere(pred func(model.ItemLocation) bool) (int64, error) {
	if f.w.failDelete != nil {
		return 0, f.w.failDelete
	}
	var n int64
	for id, r := range f.w.rows {
		if pred(r) {
			delete(f.w.rows, id)
			n++
		}
	}
	return n, nil
}

func (f fakeAssignments) DeleteByIDsTx(ctx context.Context, tx *sqlx.Tx, ids []uint64) (int64, error) {
	set := make(map[uint64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return f.deleteWhere(func(r model.ItemLocation) bool { return set[r.ID] })
}

func (f fakeAssignments) DeleteByItemTx(ctx context.Context, tx *sqlx.Tx, itemID string) (int64, error) {
	return f.deleteWhere(func(r model.ItemLocation) bool { return r.ItemID == itemID })
}

func (f fakeAssignments) DeleteByLocationsTx(ctx context.Context, tx *sqlx.Tx, locationIDs []uint64) (int64, error) {
	set := make(map[uint64]bool, len(locationIDs))
	for _, id := range locationIDs {
		set[id] = true
	}
	return f.deleteWhere(func(r model.ItemLocation) bool { return set[r.LocationID] })
}

type fakeLeases struct{ w *world }

func (f fakeLeases) Get(ctx context.Context, locationID uint64) (*model.LocationLease, error) {
	l, ok := f.w.leases[locationID]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (f fakeLeases) ListByLocations(ctx context.Context, locationIDs []uint64) ([]model.LocationLease, error) {
	out := make([]model.LocationLease, 0)
	for _, id := range locationIDs {
		if l, ok := f.w.leases[id]; ok {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f fakeLeases) GetTx(ctx context.Context, tx *sqlx.Tx, locationID uint64) (*model.LocationLease, error) {
	return f.Get(ctx, locationID)
}

func (f fakeLeases) ListByLocationsTx(ctx context.Context, tx *sqlx.Tx, locationIDs []uint64) ([]model.LocationLease, error) {
	return f.ListByLocations(ctx, locationIDs)
}

func (f fakeLeases) UpsertTx(ctx context.Context, tx *sqlx.Tx, lease *model.LocationLease) error {
	f.w.leases[lease.LocationID] = *lease
	return nil
}

func (f fakeLeases) DeleteTx(ctx context.Context, tx *sqlx.Tx, locationID uint64) error {
	delete(f.w.leases, locationID)
	return nil
}

func (f fakeLeases) DeleteExpired(ctx context.Context, locationID uint64, now time.Time) (int64, error) {
	if l, ok := f.w.leases[locationID]; ok && !l.ExpiresAt.After(now) {
		delete(f.w.leases, locationID)
		return 1, nil
	}
	return 0, nil
}

type fakeCatalog struct{ w *world }

func (f fakeCatalog) ListProducts(ctx context.Context, q string, page, perPage int) ([]model.Product, int64, error) {
	return nil, 0, errors.New("not supported")
}

func (f fakeCatalog) GetProduct(ctx context.Context, code string) (*model.Product, error) {
	p, ok := f.w.products[code]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f fakeCatalog) LockProductTx(ctx context.Context, tx *sqlx.Tx, code string) (bool, error) {
	f.w.productLocks = append(f.w.productLocks, code)
	if f.w.onProductLock != nil {
		f.w.onProductLock(f.w)
	}
	_, ok := f.w.products[code]
	return ok, nil
}

func (f fakeCatalog) ListCustomers(ctx context.Context, q string, page, perPage int) ([]model.Customer, int64, error) {
	return nil, 0, errors.New("not supported")
}

func (f fakeCatalog) GetCustomer(ctx context.Context, id string) (*model.Customer, error) {
	c, ok := f.w.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

type fakeTree struct{ w *world }

func (f fakeTree) Tree(ctx context.Context) (*location.Tree, error) {
	locs, _ := fakeLocations(f).List(ctx)
	return location.BuildTree(locs), nil
}

func (f fakeTree) InvalidateTree(ctx context.Context) error { return nil }

type fakePublisher struct{ w *world }

func (f fakePublisher) PublishAssignmentEvent(ctx context.Context, msg model.AssignmentEventMessage) error {
	f.w.events = append(f.w.events, msg)
	return nil
}

func (f fakePublisher) PublishLeaseExpiration(ctx context.Context, msg model.LeaseExpirationMessage) error {
	return nil
}
