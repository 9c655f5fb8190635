package lease

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/item-location/model"
)

// LeaseRepository persists location_lease rows. The *Tx reads lock the row
// and must run after the owning location row has been locked.
type LeaseRepository interface {
	Get(ctx context.Context, locationID uint64) (*model.LocationLease, error)
	ListByLocations(ctx context.Context, locationIDs []uint64) ([]model.LocationLease, error)
	GetTx(ctx context.Context, tx *sqlx.Tx, locationID uint64) (*model.LocationLease, error)
	ListByLocationsTx(ctx context.Context, tx *sqlx.Tx, locationIDs []uint64) ([]model.LocationLease, error)
	UpsertTx(ctx context.Context, tx *sqlx.Tx, lease *model.LocationLease) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, locationID uint64) error
	DeleteExpired(ctx context.Context, locationID uint64, now time.Time) (int64, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewLeaseRepository(conn *sqlx.DB) LeaseRepository {
	return &SQL{conn: conn}
}

const (
	getLeaseQuery      = `SELECT location_id, owner, expires_at FROM location_lease WHERE location_id = ?`
	listLeasesQuery    = `SELECT location_id, owner, expires_at FROM location_lease WHERE location_id IN (?) ORDER BY location_id`
	upsertLeaseQuery   = `INSERT INTO location_lease (location_id, owner, expires_at) VALUES (?, ?, ?) ON DUPLICATE KEY UPDATE owner = VALUES(owner), expires_at = VALUES(expires_at)`
	deleteLeaseQuery   = `DELETE FROM location_lease WHERE location_id = ?`
	deleteExpiredQuery = `DELETE FROM location_lease WHERE location_id = ? AND expires_at <= ?`
)

func (s *SQL) Get(ctx context.Context, locationID uint64) (*model.LocationLease, error) {
	return getLease(ctx, s.conn, getLeaseQuery, locationID)
}

func (s *SQL) ListByLocations(ctx context.Context, locationIDs []uint64) ([]model.LocationLease, error) {
	return listLeases(ctx, s.conn, listLeasesQuery, locationIDs)
}

func (s *SQL) GetTx(ctx context.Context, tx *sqlx.Tx, locationID uint64) (*model.LocationLease, error) {
	return getLease(ctx, tx, getLeaseQuery+" FOR UPDATE", locationID)
}

func (s *SQL) ListByLocationsTx(ctx context.Context, tx *sqlx.Tx, locationIDs []uint64) ([]model.LocationLease, error) {
	return listLeases(ctx, tx, listLeasesQuery+" FOR UPDATE", locationIDs)
}

func (s *SQL) UpsertTx(ctx context.Context, tx *sqlx.Tx, lease *model.LocationLease) error {
	_, err := tx.ExecContext(ctx, upsertLeaseQuery, lease.LocationID, lease.Owner, lease.ExpiresAt)
	return err
}

func (s *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, locationID uint64) error {
	_, err := tx.ExecContext(ctx, deleteLeaseQuery, locationID)
	return err
}

func (s *SQL) DeleteExpired(ctx context.Context, locationID uint64, now time.Time) (int64, error) {
	result, err := s.conn.ExecContext(ctx, deleteExpiredQuery, locationID, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func getLease(ctx context.Context, q sqlx.QueryerContext, query string, locationID uint64) (*model.LocationLease, error) {
	var l model.LocationLease
	if err := sqlx.GetContext(ctx, q, &l, query, locationID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func listLeases(ctx context.Context, q sqlx.QueryerContext, query string, locationIDs []uint64) ([]model.LocationLease, error) {
	leases := make([]model.LocationLease, 0)
	if len(locationIDs) == 0 {
		return leases, nil
	}
	inQuery, args, err := sqlx.In(query, locationIDs)
	if err != nil {
		return nil, err
	}
	if err := sqlx.SelectContext(ctx, q, &leases, sqlx.Rebind(sqlx.QUESTION, inQuery), args...); err != nil {
		return nil, err
	}
	return leases, nil
}
