package operator

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/item-location/model"
)

type SQL struct {
	conn *sqlx.DB
}

type OperatorRepository interface {
	Get(ctx context.Context, filter *model.OperatorFilter) (*model.OperatorEntity, error)
}

func NewOperatorRepository(conn *sqlx.DB) OperatorRepository {
	return &SQL{conn: conn}
}

const getOperatorBase = `SELECT id, username, email, role, password_hash, created_at, updated_at FROM operator WHERE true`

func (s *SQL) Get(ctx context.Context, filter *model.OperatorFilter) (*model.OperatorEntity, error) {
	query := getOperatorBase
	args := make([]any, 0, 3)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Username != "" {
		query += " AND username = ?"
		args = append(args, filter.Username)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	if len(args) == 0 {
		return nil, nil
	}

	var entity model.OperatorEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}
