package assignment

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/item-location/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*SQL, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	conn := sqlx.NewDb(db, "mysql")
	t.Cleanup(func() { conn.Close() })
	return &SQL{conn: conn}, conn, mock
}

var rowColumns = []string{"id", "item_id", "location_id", "client_id", "is_exclusive", "requires_certificate", "updated_by", "updated_at"}

func TestList_FiltersAndPages(t *testing.T) {
	repo, _, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(`(?s)FROM item_location il.*WHERE true AND il\.item_id = \? AND il\.client_id = \? ORDER BY il\.location_id, il\.item_id LIMIT \? OFFSET \?`).
		WithArgs("A1", "C9", 20, 20).
		WillReturnRows(sqlmock.NewRows(append(rowColumns, "item_name", "location_name")).
			AddRow(1, "A1", 3, "C9", true, false, "picker", now, "Bolt", "N1"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM item_location il WHERE true AND il.item_id = ? AND il.client_id = ?`)).
		WithArgs("A1", "C9").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(21))

	items, total, err := repo.List(context.Background(), &model.AssignmentFilter{ItemID: "A1", ClientID: "C9", Page: 2, PerPage: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(21), total)
	require.Len(t, items, 1)
	assert.Equal(t, "Bolt", items[0].ItemName)
	assert.Equal(t, "N1", items[0].LocationName)
	require.NotNil(t, items[0].ClientID)
	assert.Equal(t, "C9", *items[0].ClientID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByItemTx_LocksRows(t *testing.T) {
	repo, conn, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(listByItemQuery + forUpdate)).WithArgs("B2").
		WillReturnRows(sqlmock.NewRows(rowColumns).AddRow(4, "B2", 5, nil, false, false, "picker", time.Now()))
	mock.ExpectRollback()

	tx, err := conn.Beginx()
	require.NoError(t, err)
	rows, err := repo.ListByItemTx(context.Background(), tx, "B2")
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].ClientID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertTx(t *testing.T) {
	repo, conn, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(insertAssignmentQuery)).
		WithArgs("B2", 3, nil, false, true, "picker", now).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	tx, err := conn.Beginx()
	require.NoError(t, err)
	id, err := repo.InsertTx(context.Background(), tx, &model.ItemLocation{
		ItemID: "B2", LocationID: 3, RequiresCertificate: true, UpdatedBy: "picker", UpdatedAt: now,
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.Equal(t, uint64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteByLocationsTx(t *testing.T) {
	repo, conn, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM item_location WHERE location_id IN (?, ?)`)).
		WithArgs(3, 4).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	tx, err := conn.Beginx()
	require.NoError(t, err)
	n, err := repo.DeleteByLocationsTx(context.Background(), tx, []uint64{3, 4})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.Equal(t, int64(3), n)

	n, err = repo.DeleteByLocationsTx(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
