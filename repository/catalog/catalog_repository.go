package catalog

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/item-location/model"
)

// CatalogRepository reads product and customer reference data owned by the
// core module. It never writes.
type CatalogRepository interface {
	ListProducts(ctx context.Context, q string, page, perPage int) ([]model.Product, int64, error)
	GetProduct(ctx context.Context, code string) (*model.Product, error)
	// LockProductTx row-locks the product so writers of the same item queue
	// behind each other. Take it after the location locks. Reports false
	// when the product does not exist.
	LockProductTx(ctx context.Context, tx *sqlx.Tx, code string) (bool, error)
	ListCustomers(ctx context.Context, q string, page, perPage int) ([]model.Customer, int64, error)
	GetCustomer(ctx context.Context, id string) (*model.Customer, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewCatalogRepository(conn *sqlx.DB) CatalogRepository {
	return &SQL{conn: conn}
}

const (
	listProductsQuery  = `SELECT code, name FROM product WHERE code LIKE ? OR name LIKE ? ORDER BY code LIMIT ? OFFSET ?`
	countProductsQuery = `SELECT COUNT(*) FROM product WHERE code LIKE ? OR name LIKE ?`
	getProductQuery    = `SELECT code, name FROM product WHERE code = ?`
	lockProductQuery   = `SELECT code FROM product WHERE code = ? FOR UPDATE`

	listCustomersQuery  = `SELECT id, name FROM customer WHERE id LIKE ? OR name LIKE ? ORDER BY name LIMIT ? OFFSET ?`
	countCustomersQuery = `SELECT COUNT(*) FROM customer WHERE id LIKE ? OR name LIKE ?`
	getCustomerQuery    = `SELECT id, name FROM customer WHERE id = ?`
)

func (s *SQL) ListProducts(ctx context.Context, q string, page, perPage int) ([]model.Product, int64, error) {
	like := "%" + q + "%"
	offset := (page - 1) * perPage

	items := make([]model.Product, 0)
	if err := s.conn.SelectContext(ctx, &items, listProductsQuery, like, like, perPage, offset); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countProductsQuery, like, like); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *SQL) GetProduct(ctx context.Context, code string) (*model.Product, error) {
	var p model.Product
	if err := s.conn.GetContext(ctx, &p, getProductQuery, code); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *SQL) LockProductTx(ctx context.Context, tx *sqlx.Tx, code string) (bool, error) {
	var locked string
	if err := tx.GetContext(ctx, &locked, lockProductQuery, code); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *SQL) ListCustomers(ctx context.Context, q string, page, perPage int) ([]model.Customer, int64, error) {
	like := "%" + q + "%"
	offset := (page - 1) * perPage

	items := make([]model.Customer, 0)
	if err := s.conn.SelectContext(ctx, &items, listCustomersQuery, like, like, perPage, offset); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countCustomersQuery, like, like); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *SQL) GetCustomer(ctx context.Context, id string) (*model.Customer, error) {
	var c model.Customer
	if err := s.conn.GetContext(ctx, &c, getCustomerQuery, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
