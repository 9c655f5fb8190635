package assignment

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/item-location/model"
)

type AssignmentRepository interface {
	List(ctx context.Context, filter *model.AssignmentFilter) ([]model.ItemLocationView, int64, error)
	GetByID(ctx context.Context, id uint64) (*model.ItemLocation, error)
	ListByItem(ctx context.Context, itemID string) ([]model.ItemLocation, error)
	ListByLocation(ctx context.Context, locationID uint64) ([]model.ItemLocation, error)

	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.ItemLocation, error)
	ListByItemTx(ctx context.Context, tx *sqlx.Tx, itemID string) ([]model.ItemLocation, error)
	ListByLocationTx(ctx context.Context, tx *sqlx.Tx, locationID uint64) ([]model.ItemLocation, error)
	ListByLocationsTx(ctx context.Context, tx *sqlx.Tx, locationIDs []uint64) ([]model.ItemLocation, error)
	InsertTx(ctx context.Context, tx *sqlx.Tx, data *model.ItemLocation) (uint64, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, data *model.ItemLocation) error
	DeleteByIDsTx(ctx context.Context, tx *sqlx.Tx, ids []uint64) (int64, error)
	DeleteByItemTx(ctx context.Context, tx *sqlx.Tx, itemID string) (int64, error)
	DeleteByLocationsTx(ctx context.Context, tx *sqlx.Tx, locationIDs []uint64) (int64, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewAssignmentRepository(conn *sqlx.DB) AssignmentRepository {
	return &SQL{conn: conn}
}

const (
	assignmentColumns = `id, item_id, location_id, client_id, is_exclusive, requires_certificate, updated_by, updated_at`

	listAssignmentsBase = `SELECT il.id, il.item_id, il.location_id, il.client_id, il.is_exclusive, il.requires_certificate,
il.updated_by, il.updated_at, COALESCE(p.name, '') AS item_name, wl.name AS location_name
FROM item_location il
JOIN warehouse_location wl ON wl.id = il.location_id
LEFT JOIN product p ON p.code = il.item_id
WHERE true`
	countAssignmentsBase = `SELECT COUNT(*) FROM item_location il WHERE true`

	getAssignmentQuery     = `SELECT ` + assignmentColumns + ` FROM item_location WHERE id = ?`
	listByItemQuery        = `SELECT ` + assignmentColumns + ` FROM item_location WHERE item_id = ? ORDER BY id`
	listByLocationQuery    = `SELECT ` + assignmentColumns + ` FROM item_location WHERE location_id = ? ORDER BY id`
	listByLocationsQuery   = `SELECT ` + assignmentColumns + ` FROM item_location WHERE location_id IN (?) ORDER BY id FOR UPDATE`
	insertAssignmentQuery  = `INSERT INTO item_location (item_id, location_id, client_id, is_exclusive, requires_certificate, updated_by, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
	updateAssignmentQuery  = `UPDATE item_location SET client_id = ?, is_exclusive = ?, requires_certificate = ?, updated_by = ?, updated_at = ? WHERE id = ?`
	deleteByIDsQuery       = `DELETE FROM item_location WHERE id IN (?)`
	deleteByItemQuery      = `DELETE FROM item_location WHERE item_id = ?`
	deleteByLocationsQuery = `DELETE FROM item_location WHERE location_id IN (?)`
	forUpdate              = ` FOR UPDATE`
)

func (s *SQL) List(ctx context.Context, filter *model.AssignmentFilter) ([]model.ItemLocationView, int64, error) {
	where := ""
	args := make([]any, 0, 5)
	if filter.ItemID != "" {
		where += " AND il.item_id = ?"
		args = append(args, filter.ItemID)
	}
	if filter.LocationID != 0 {
		where += " AND il.location_id = ?"
		args = append(args, filter.LocationID)
	}
	if filter.ClientID != "" {
		where += " AND il.client_id = ?"
		args = append(args, filter.ClientID)
	}

	query := listAssignmentsBase + where + " ORDER BY il.location_id, il.item_id"
	pageArgs := args
	if filter.PerPage > 0 {
		query += " LIMIT ? OFFSET ?"
		pageArgs = append(append(make([]any, 0, len(args)+2), args...), filter.PerPage, (filter.Page-1)*filter.PerPage)
	}

	items := make([]model.ItemLocationView, 0)
	if err := s.conn.SelectContext(ctx, &items, query, pageArgs...); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countAssignmentsBase+where, args...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.ItemLocation, error) {
	return getOne(ctx, s.conn, getAssignmentQuery, id)
}

func (s *SQL) ListByItem(ctx context.Context, itemID string) ([]model.ItemLocation, error) {
	return selectMany(ctx, s.conn, listByItemQuery, itemID)
}

func (s *SQL) ListByLocation(ctx context.Context, locationID uint64) ([]model.ItemLocation, error) {
	return selectMany(ctx, s.conn, listByLocationQuery, locationID)
}

func (s *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.ItemLocation, error) {
	return getOne(ctx, tx, getAssignmentQuery+forUpdate, id)
}

func (s *SQL) ListByItemTx(ctx context.Context, tx *sqlx.Tx, itemID string) ([]model.ItemLocation, error) {
	return selectMany(ctx, tx, listByItemQuery+forUpdate, itemID)
}

func (s *SQL) ListByLocationTx(ctx context.Context, tx *sqlx.Tx, locationID uint64) ([]model.ItemLocation, error) {
	return selectMany(ctx, tx, listByLocationQuery+forUpdate, locationID)
}

func (s *SQL) ListByLocationsTx(ctx context.Context, tx *sqlx.Tx, locationIDs []uint64) ([]model.ItemLocation, error) {
	if len(locationIDs) == 0 {
		return []model.ItemLocation{}, nil
	}
	q, args, err := sqlx.In(listByLocationsQuery, locationIDs)
	if err != nil {
		return nil, err
	}
	return selectMany(ctx, tx, tx.Rebind(q), args...)
}

func (s *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, data *model.ItemLocation) (uint64, error) {
	result, err := tx.ExecContext(ctx, insertAssignmentQuery,
		data.ItemID, data.LocationID, data.ClientID, data.IsExclusive, data.RequiresCertificate, data.UpdatedBy, data.UpdatedAt)
	if err != nil {
		return 0, err
	}
	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, data *model.ItemLocation) error {
	result, err := tx.ExecContext(ctx, updateAssignmentQuery,
		data.ClientID, data.IsExclusive, data.RequiresCertificate, data.UpdatedBy, data.UpdatedAt, data.ID)
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

func (s *SQL) DeleteByIDsTx(ctx context.Context, tx *sqlx.Tx, ids []uint64) (int64, error) {
	return execIn(ctx, tx, deleteByIDsQuery, ids)
}

func (s *SQL) DeleteByItemTx(ctx context.Context, tx *sqlx.Tx, itemID string) (int64, error) {
	result, err := tx.ExecContext(ctx, deleteByItemQuery, itemID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *SQL) DeleteByLocationsTx(ctx context.Context, tx *sqlx.Tx, locationIDs []uint64) (int64, error) {
	return execIn(ctx, tx, deleteByLocationsQuery, locationIDs)
}

func getOne(ctx context.Context, q sqlx.QueryerContext, query string, args ...any) (*model.ItemLocation, error) {
	var row model.ItemLocation
	if err := sqlx.GetContext(ctx, q, &row, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func selectMany(ctx context.Context, q sqlx.QueryerContext, query string, args ...any) ([]model.ItemLocation, error) {
	rows := make([]model.ItemLocation, 0)
	if err := sqlx.SelectContext(ctx, q, &rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

func execIn(ctx context.Context, tx *sqlx.Tx, query string, ids []uint64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	q, args, err := sqlx.In(query, ids)
	if err != nil {
		return 0, err
	}
	result, err := tx.ExecContext(ctx, tx.Rebind(q), args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
