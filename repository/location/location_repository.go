package location

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/item-location/model"
)

type LocationRepository interface {
	List(ctx context.Context) ([]model.WarehouseLocation, error)
	GetByID(ctx context.Context, id uint64) (*model.WarehouseLocation, error)
	LockByIDsTx(ctx context.Context, tx *sqlx.Tx, ids []uint64) ([]model.WarehouseLocation, error)
	Create(ctx context.Context, loc *model.WarehouseLocation) (*model.WarehouseLocation, error)
	SetMixed(ctx context.Context, id uint64, mixed bool) error
	SetMixedTx(ctx context.Context, tx *sqlx.Tx, id uint64, mixed bool) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewLocationRepository(conn *sqlx.DB) LocationRepository {
	return &SQL{conn: conn}
}

const (
	locationColumns     = `id, name, parent_id, type, is_mixed, created_at, updated_at`
	listLocationsQuery  = `SELECT ` + locationColumns + ` FROM warehouse_location ORDER BY id`
	getLocationQuery    = `SELECT ` + locationColumns + ` FROM warehouse_location WHERE id = ?`
	lockLocationsQuery  = `SELECT ` + locationColumns + ` FROM warehouse_location WHERE id IN (?) ORDER BY id FOR UPDATE`
	insertLocationQuery = `INSERT INTO warehouse_location (name, parent_id, type, is_mixed, created_at) VALUES (?, ?, ?, ?, NOW())`
	setMixedQuery       = `UPDATE warehouse_location SET is_mixed = ?, updated_at = NOW() WHERE id = ?`
)

func (s *SQL) List(ctx context.Context) ([]model.WarehouseLocation, error) {
	locations := make([]model.WarehouseLocation, 0)
	if err := s.conn.SelectContext(ctx, &locations, listLocationsQuery); err != nil {
		return nil, err
	}
	return locations, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.WarehouseLocation, error) {
	var loc model.WarehouseLocation
	if err := s.conn.GetContext(ctx, &loc, getLocationQuery, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &loc, nil
}

// LockByIDsTx row-locks the given locations in ascending id order so that
// concurrent writers touching overlapping sets cannot deadlock.
func (s *SQL) LockByIDsTx(ctx context.Context, tx *sqlx.Tx, ids []uint64) ([]model.WarehouseLocation, error) {
	if len(ids) == 0 {
		return []model.WarehouseLocation{}, nil
	}
	q, args, err := sqlx.In(lockLocationsQuery, ids)
	if err != nil {
		return nil, err
	}
	locations := make([]model.WarehouseLocation, 0, len(ids))
	if err := tx.SelectContext(ctx, &locations, tx.Rebind(q), args...); err != nil {
		return nil, err
	}
	return locations, nil
}

func (s *SQL) Create(ctx context.Context, loc *model.WarehouseLocation) (*model.WarehouseLocation, error) {
	result, err := s.conn.ExecContext(ctx, insertLocationQuery, loc.Name, loc.ParentID, loc.Type, loc.IsMixed)
	if err != nil {
		return nil, err
	}
	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	loc.ID = uint64(lastID)
	return loc, nil
}

func (s *SQL) SetMixed(ctx context.Context, id uint64, mixed bool) error {
	return setMixed(ctx, s.conn, id, mixed)
}

func (s *SQL) SetMixedTx(ctx context.Context, tx *sqlx.Tx, id uint64, mixed bool) error {
	return setMixed(ctx, tx, id, mixed)
}

func setMixed(ctx context.Context, exec sqlx.ExecerContext, id uint64, mixed bool) error {
	result, err := exec.ExecContext(ctx, setMixedQuery, mixed, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
