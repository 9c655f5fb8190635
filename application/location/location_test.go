package location_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	applocation "github.com/muhammadheryan/item-location/application/location"
	"github.com/muhammadheryan/item-location/cmd/config"
	"github.com/muhammadheryan/item-location/constant"
	assignmentmocks "github.com/muhammadheryan/item-location/mocks/repository/assignment"
	leasemocks "github.com/muhammadheryan/item-location/mocks/repository/lease"
	locationmocks "github.com/muhammadheryan/item-location/mocks/repository/location"
	redismocks "github.com/muhammadheryan/item-location/mocks/repository/redis"
	txmocks "github.com/muhammadheryan/item-location/mocks/repository/tx"
	rabbitmocks "github.com/muhammadheryan/item-location/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/item-location/model"
	cerr "github.com/muhammadheryan/item-location/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	txRepo         *txmocks.TxRepository
	locationRepo   *locationmocks.LocationRepository
	leaseRepo      *leasemocks.LeaseRepository
	assignmentRepo *assignmentmocks.AssignmentRepository
	redisRepo      *redismocks.Repository
	publisher      *rabbitmocks.EventPublisher
}

func newFields(t *testing.T) fields {
	return fields{
		txRepo:         txmocks.NewTxRepository(t),
		locationRepo:   locationmocks.NewLocationRepository(t),
		leaseRepo:      leasemocks.NewLeaseRepository(t),
		assignmentRepo: assignmentmocks.NewAssignmentRepository(t),
		redisRepo:      redismocks.NewRepository(t),
		publisher:      rabbitmocks.NewEventPublisher(t),
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Lease: config.LeaseConfig{TTL: 2 * time.Minute, MaxTTL: 15 * time.Minute},
		Cache: config.CacheConfig{TreeTTL: 5 * time.Minute},
	}
}

func (f fields) app() applocation.LocationApp {
	return applocation.NewLocationApp(testConfig(), f.txRepo, f.locationRepo, f.leaseRepo, f.assignmentRepo, f.redisRepo, f.publisher)
}

func (f fields) expectCommit() {
	f.txRepo.On("BeginTx", mock.Anything).Return((*sqlx.Tx)(nil), nil).Once()
	f.txRepo.On("CommitTx", mock.Anything).Return(nil).Once()
}

func (f fields) expectRollback() {
	f.txRepo.On("BeginTx", mock.Anything).Return((*sqlx.Tx)(nil), nil).Once()
	f.txRepo.On("RollbackTx", mock.Anything).Return(nil).Once()
}

func TestLocationApp_Tree(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(f fields)
		wantLen  int
		wantErr  bool
	}{
		{
			name: "success: served from cache",
			mockCall: func(f fields) {
				f.redisRepo.On("GetLocations", mock.Anything).Return(sampleLocations(), true, nil).Once()
			},
			wantLen: 7,
		},
		{
			name: "success: cache miss loads from database and fills cache",
			mockCall: func(f fields) {
				f.redisRepo.On("GetLocations", mock.Anything).Return(nil, false, nil).Once()
				f.locationRepo.On("List", mock.Anything).Return(sampleLocations(), nil).Once()
				f.redisRepo.On("SetLocations", mock.Anything, sampleLocations(), 5*time.Minute).Return(nil).Once()
			},
			wantLen: 7,
		},
		{
			name: "success: cache error falls through",
			mockCall: func(f fields) {
				f.redisRepo.On("GetLocations", mock.Anything).Return(nil, false, errors.New("redis down")).Once()
				f.locationRepo.On("List", mock.Anything).Return(sampleLocations()[:2], nil).Once()
				f.redisRepo.On("SetLocations", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()
			},
			wantLen: 2,
		},
		{
			name: "error: database failure",
			mockCall: func(f fields) {
				f.redisRepo.On("GetLocations", mock.Anything).Return(nil, false, nil).Once()
				f.locationRepo.On("List", mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			tree, err := f.app().Tree(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, cerr.Is(err, constant.ErrInternal))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, tree.Len())
		})
	}
}

func TestLocationApp_CreateLocation(t *testing.T) {
	t.Run("error: unknown parent", func(t *testing.T) {
		f := newFields(t)
		f.locationRepo.On("GetByID", mock.Anything, uint64(42)).Return(nil, nil).Once()

		_, err := f.app().CreateLocation(context.Background(), &model.CreateLocationRequest{Name: "N3", ParentID: ptr(42), Type: constant.LocationTypeLevel})
		assert.True(t, cerr.Is(err, constant.ErrInvalidRequest))
	})

	t.Run("success: creates and invalidates cache", func(t *testing.T) {
		f := newFields(t)
		f.locationRepo.On("GetByID", mock.Anything, uint64(2)).Return(&model.WarehouseLocation{ID: 2, Name: "R1"}, nil).Once()
		f.locationRepo.On("Create", mock.Anything, mock.MatchedBy(func(l *model.WarehouseLocation) bool {
			return l.Name == "N3" && *l.ParentID == 2
		})).Return(&model.WarehouseLocation{ID: 9, Name: "N3", ParentID: ptr(2)}, nil).Once()
		f.redisRepo.On("InvalidateLocations", mock.Anything).Return(nil).Once()

		loc, err := f.app().CreateLocation(context.Background(), &model.CreateLocationRequest{Name: "N3", ParentID: ptr(2), Type: constant.LocationTypeLevel})
		require.NoError(t, err)
		assert.Equal(t, uint64(9), loc.ID)
	})
}

func TestLocationApp_SetMixed(t *testing.T) {
	loc := &model.WarehouseLocation{ID: 3, Name: "N1", IsMixed: true}

	t.Run("error: cannot unmix while two products are stored", func(t *testing.T) {
		f := newFields(t)
		f.locationRepo.On("GetByID", mock.Anything, uint64(3)).Return(loc, nil).Once()
		f.expectRollback()
		f.locationRepo.On("LockByIDsTx", mock.Anything, mock.Anything, []uint64{3}).Return([]model.WarehouseLocation{*loc}, nil).Once()
		f.assignmentRepo.On("ListByLocationTx", mock.Anything, mock.Anything, uint64(3)).Return([]model.ItemLocation{
			{ID: 1, ItemID: "A1", LocationID: 3},
			{ID: 2, ItemID: "B2", LocationID: 3},
		}, nil).Once()

		err := f.app().SetMixed(context.Background(), 3, false)
		assert.True(t, cerr.Is(err, constant.ErrAssignmentConflict))
	})

	t.Run("success: mark mixed", func(t *testing.T) {
		f := newFields(t)
		f.locationRepo.On("GetByID", mock.Anything, uint64(3)).Return(loc, nil).Once()
		f.expectCommit()
		f.locationRepo.On("LockByIDsTx", mock.Anything, mock.Anything, []uint64{3}).Return([]model.WarehouseLocation{*loc}, nil).Once()
		f.locationRepo.On("SetMixedTx", mock.Anything, mock.Anything, uint64(3), true).Return(nil).Once()
		f.redisRepo.On("InvalidateLocations", mock.Anything).Return(nil).Once()

		require.NoError(t, f.app().SetMixed(context.Background(), 3, true))
	})

	t.Run("error: not found", func(t *testing.T) {
		f := newFields(t)
		f.locationRepo.On("GetByID", mock.Anything, uint64(99)).Return(nil, nil).Once()

		err := f.app().SetMixed(context.Background(), 99, true)
		assert.True(t, cerr.Is(err, constant.ErrNotFound))
	})
}

func TestLocationApp_AcquireLease(t *testing.T) {
	loc := model.WarehouseLocation{ID: 3, Name: "N1"}
	tests := []struct {
		name     string
		owner    string
		ttl      time.Duration
		mockCall func(f fields)
		wantTTL  time.Duration
		wantErr  constant.ErrorType
	}{
		{
			name:  "success: free location",
			owner: "session-a",
			mockCall: func(f fields) {
				f.expectCommit()
				f.locationRepo.On("LockByIDsTx", mock.Anything, mock.Anything, []uint64{3}).Return([]model.WarehouseLocation{loc}, nil).Once()
				f.leaseRepo.On("GetTx", mock.Anything, mock.Anything, uint64(3)).Return(nil, nil).Once()
				f.leaseRepo.On("UpsertTx", mock.Anything, mock.Anything, mock.MatchedBy(func(l *model.LocationLease) bool {
					return l.Owner == "session-a" && l.LocationID == 3
				})).Return(nil).Once()
				f.publisher.On("PublishLeaseExpiration", mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantTTL: 2 * time.Minute,
		},
		{
			name:  "success: renew own lease with ttl clamped to max",
			owner: "session-a",
			ttl:   time.Hour,
			mockCall: func(f fields) {
				f.expectCommit()
				f.locationRepo.On("LockByIDsTx", mock.Anything, mock.Anything, []uint64{3}).Return([]model.WarehouseLocation{loc}, nil).Once()
				f.leaseRepo.On("GetTx", mock.Anything, mock.Anything, uint64(3)).
					Return(&model.LocationLease{LocationID: 3, Owner: "session-a", ExpiresAt: time.Now().Add(time.Minute)}, nil).Once()
				f.leaseRepo.On("UpsertTx", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				f.publisher.On("PublishLeaseExpiration", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
			},
			wantTTL: 15 * time.Minute,
		},
		{
			name:  "success: expired lease of another session is taken over",
			owner: "session-b",
			mockCall: func(f fields) {
				f.expectCommit()
				f.locationRepo.On("LockByIDsTx", mock.Anything, mock.Anything, []uint64{3}).Return([]model.WarehouseLocation{loc}, nil).Once()
				f.leaseRepo.On("GetTx", mock.Anything, mock.Anything, uint64(3)).
					Return(&model.LocationLease{LocationID: 3, Owner: "session-a", ExpiresAt: time.Now().Add(-time.Second)}, nil).Once()
				f.leaseRepo.On("UpsertTx", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				f.publisher.On("PublishLeaseExpiration", mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantTTL: 2 * time.Minute,
		},
		{
			name:  "error: held by another session",
			owner: "session-b",
			mockCall: func(f fields) {
				f.expectRollback()
				f.locationRepo.On("LockByIDsTx", mock.Anything, mock.Anything, []uint64{3}).Return([]model.WarehouseLocation{loc}, nil).Once()
				f.leaseRepo.On("GetTx", mock.Anything, mock.Anything, uint64(3)).
					Return(&model.LocationLease{LocationID: 3, Owner: "session-a", ExpiresAt: time.Now().Add(time.Minute)}, nil).Once()
			},
			wantErr: constant.ErrLocationLocked,
		},
		{
			name:  "error: unknown location",
			owner: "session-a",
			mockCall: func(f fields) {
				f.expectRollback()
				f.locationRepo.On("LockByIDsTx", mock.Anything, mock.Anything, []uint64{3}).Return([]model.WarehouseLocation{}, nil).Once()
			},
			wantErr: constant.ErrNotFound,
		},
		{
			name:     "error: empty owner",
			owner:    "",
			mockCall: func(f fields) {},
			wantErr:  constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			before := time.Now()
			lease, err := f.app().AcquireLease(context.Background(), 3, tt.owner, tt.ttl)
			if tt.wantErr != constant.Successful {
				require.Error(t, err)
				assert.True(t, cerr.Is(err, tt.wantErr), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.owner, lease.Owner)
			assert.WithinDuration(t, before.Add(tt.wantTTL), lease.ExpiresAt, 5*time.Second)
		})
	}
}

func TestLocationApp_ReleaseLease(t *testing.T) {
	t.Run("error: lease owned by another session", func(t *testing.T) {
		f := newFields(t)
		f.expectRollback()
		f.locationRepo.On("LockByIDsTx", mock.Anything, mock.Anything, []uint64{3}).Return([]model.WarehouseLocation{{ID: 3}}, nil).Once()
		f.leaseRepo.On("GetTx", mock.Anything, mock.Anything, uint64(3)).
			Return(&model.LocationLease{LocationID: 3, Owner: "session-a", ExpiresAt: time.Now().Add(time.Minute)}, nil).Once()

		err := f.app().ReleaseLease(context.Background(), 3, "session-b")
		assert.True(t, cerr.Is(err, constant.ErrLeaseNotHeld))
	})

	t.Run("success", func(t *testing.T) {
		f := newFields(t)
		f.expectCommit()
		f.locationRepo.On("LockByIDsTx", mock.Anything, mock.Anything, []uint64{3}).Return([]model.WarehouseLocation{{ID: 3}}, nil).Once()
		f.leaseRepo.On("GetTx", mock.Anything, mock.Anything, uint64(3)).
			Return(&model.LocationLease{LocationID: 3, Owner: "session-a", ExpiresAt: time.Now().Add(time.Minute)}, nil).Once()
		f.leaseRepo.On("DeleteTx", mock.Anything, mock.Anything, uint64(3)).Return(nil).Once()

		require.NoError(t, f.app().ReleaseLease(context.Background(), 3, "session-a"))
	})
}

func TestLocationApp_ExpireLease(t *testing.T) {
	f := newFields(t)
	f.leaseRepo.On("DeleteExpired", mock.Anything, uint64(3), mock.AnythingOfType("time.Time")).Return(int64(1), nil).Once()
	require.NoError(t, f.app().ExpireLease(context.Background(), 3))

	f.leaseRepo.On("DeleteExpired", mock.Anything, uint64(4), mock.Anything).Return(int64(0), errors.New("db down")).Once()
	err := f.app().ExpireLease(context.Background(), 4)
	assert.True(t, cerr.Is(err, constant.ErrInternal))
}
