package location

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/item-location/cmd/config"
	"github.com/muhammadheryan/item-location/constant"
	"github.com/muhammadheryan/item-location/model"
	assignmentrepo "github.com/muhammadheryan/item-location/repository/assignment"
	leaserepo "github.com/muhammadheryan/item-location/repository/lease"
	locationrepo "github.com/muhammadheryan/item-location/repository/location"
	redisrepo "github.com/muhammadheryan/item-location/repository/redis"
	txrepo "github.com/muhammadheryan/item-location/repository/tx"
	"github.com/muhammadheryan/item-location/thirdparty/rabbitmq"
	"github.com/muhammadheryan/item-location/utils/errors"
	"github.com/muhammadheryan/item-location/utils/logger"
	"github.com/muhammadheryan/item-location/utils/metrics"
	"go.uber.org/zap"
)

type LocationApp interface {
	Tree(ctx context.Context) (*Tree, error)
	InvalidateTree(ctx context.Context) error
	GetLocation(ctx context.Context, id uint64) (*model.LocationNode, error)
	CreateLocation(ctx context.Context, req *model.CreateLocationRequest) (*model.WarehouseLocation, error)
	SetMixed(ctx context.Context, id uint64, mixed bool) error
	AcquireLease(ctx context.Context, locationID uint64, owner string, ttl time.Duration) (*model.LocationLease, error)
	ReleaseLease(ctx context.Context, locationID uint64, owner string) error
	ExpireLease(ctx context.Context, locationID uint64) error
}

type locationAppImpl struct {
	config         *config.Config
	txRepo         txrepo.TxRepository
	locationRepo   locationrepo.LocationRepository
	leaseRepo      leaserepo.LeaseRepository
	assignmentRepo assignmentrepo.AssignmentRepository
	redisRepo      redisrepo.Repository
	publisher      rabbitmq.EventPublisher
}

func NewLocationApp(
	config *config.Config,
	txRepo txrepo.TxRepository,
	locationRepo locationrepo.LocationRepository,
	leaseRepo leaserepo.LeaseRepository,
	assignmentRepo assignmentrepo.AssignmentRepository,
	redisRepo redisrepo.Repository,
	publisher rabbitmq.EventPublisher,
) LocationApp {
	return &locationAppImpl{
		config:         config,
		txRepo:         txRepo,
		locationRepo:   locationRepo,
		leaseRepo:      leaseRepo,
		assignmentRepo: assignmentRepo,
		redisRepo:      redisRepo,
		publisher:      publisher,
	}
}

// Tree serves the hierarchy from the Redis cache when possible. Cache
// failures are logged and fall through to the database.
func (s *locationAppImpl) Tree(ctx context.Context) (*Tree, error) {
	cached, ok, err := s.redisRepo.GetLocations(ctx)
	if err != nil {
		logger.Warn("[Tree] cache read failed", zap.String("error", err.Error()))
	}
	if ok {
		return BuildTree(cached), nil
	}

	locations, err := s.locationRepo.List(ctx)
	if err != nil {
		logger.Error("[Tree] locationRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.redisRepo.SetLocations(ctx, locations, s.config.Cache.TreeTTL); err != nil {
		logger.Warn("[Tree] cache write failed", zap.String("error", err.Error()))
	}
	return BuildTree(locations), nil
}

func (s *locationAppImpl) InvalidateTree(ctx context.Context) error {
	if err := s.redisRepo.InvalidateLocations(ctx); err != nil {
		logger.Warn("[InvalidateTree] cache delete failed", zap.String("error", err.Error()))
		return err
	}
	return nil
}

func (s *locationAppImpl) GetLocation(ctx context.Context, id uint64) (*model.LocationNode, error) {
	tree, err := s.Tree(ctx)
	if err != nil {
		return nil, err
	}
	if node, ok := tree.Node(id); ok {
		return node, nil
	}

	// the cache may predate the location
	loc, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetLocation] locationRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if loc == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	_ = s.InvalidateTree(ctx)
	tree, err = s.Tree(ctx)
	if err != nil {
		return nil, err
	}
	if node, ok := tree.Node(id); ok {
		return node, nil
	}
	return &model.LocationNode{WarehouseLocation: *loc, Path: loc.Name}, nil
}

func (s *locationAppImpl) CreateLocation(ctx context.Context, req *model.CreateLocationRequest) (*model.WarehouseLocation, error) {
	if req.ParentID != nil {
		parent, err := s.locationRepo.GetByID(ctx, *req.ParentID)
		if err != nil {
			logger.Error("[CreateLocation] get parent", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if parent == nil {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
	}

	loc, err := s.locationRepo.Create(ctx, &model.WarehouseLocation{
		Name:     req.Name,
		ParentID: req.ParentID,
		Type:     req.Type,
		IsMixed:  req.IsMixed,
	})
	if err != nil {
		logger.Error("[CreateLocation] locationRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	_ = s.InvalidateTree(ctx)
	return loc, nil
}

// SetMixed toggles the mixed flag. Clearing it is refused while the
// location still holds more than one product.
func (s *locationAppImpl) SetMixed(ctx context.Context, id uint64, mixed bool) error {
	loc, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[SetMixed] locationRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if loc == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	err = txrepo.Run(ctx, s.txRepo, func(tx *sqlx.Tx) error {
		if _, err := s.locationRepo.LockByIDsTx(ctx, tx, []uint64{id}); err != nil {
			return err
		}
		if !mixed {
			rows, err := s.assignmentRepo.ListByLocationTx(ctx, tx, id)
			if err != nil {
				return err
			}
			if distinctItems(rows) > 1 {
				return errors.SetCustomError(constant.ErrAssignmentConflict)
			}
		}
		return s.locationRepo.SetMixedTx(ctx, tx, id, mixed)
	})
	if err != nil {
		if errors.Is(err, constant.ErrAssignmentConflict) {
			return err
		}
		if err == sql.ErrNoRows {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[SetMixed] update", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	_ = s.InvalidateTree(ctx)
	return nil
}

func (s *locationAppImpl) leaseTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return s.config.Lease.TTL
	}
	if ttl < time.Second {
		return time.Second
	}
	if ttl > s.config.Lease.MaxTTL {
		return s.config.Lease.MaxTTL
	}
	return ttl
}

// AcquireLease claims the location for owner, or renews owner's claim.
func (s *locationAppImpl) AcquireLease(ctx context.Context, locationID uint64, owner string, ttl time.Duration) (*model.LocationLease, error) {
	if owner == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	ttl = s.leaseTTL(ttl)

	var lease *model.LocationLease
	err := txrepo.Run(ctx, s.txRepo, func(tx *sqlx.Tx) error {
		locked, err := s.locationRepo.LockByIDsTx(ctx, tx, []uint64{locationID})
		if err != nil {
			return err
		}
		if len(locked) == 0 {
			return errors.SetCustomError(constant.ErrNotFound)
		}

		now := time.Now()
		current, err := s.leaseRepo.GetTx(ctx, tx, locationID)
		if err != nil {
			return err
		}
		if current.HeldByOther(owner, now) {
			return errors.SetCustomError(constant.ErrLocationLocked)
		}

		lease = &model.LocationLease{LocationID: locationID, Owner: owner, ExpiresAt: now.Add(ttl)}
		return s.leaseRepo.UpsertTx(ctx, tx, lease)
	})
	if err != nil {
		if errors.Is(err, constant.ErrNotFound) || errors.Is(err, constant.ErrLocationLocked) {
			metrics.Leases.WithLabelValues("acquire", "denied").Inc()
			return nil, err
		}
		logger.Error("[AcquireLease] tx", zap.Uint64("location_id", locationID), zap.String("error", err.Error()))
		metrics.Leases.WithLabelValues("acquire", "error").Inc()
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	metrics.Leases.WithLabelValues("acquire", "ok").Inc()

	if err := s.publisher.PublishLeaseExpiration(ctx, model.LeaseExpirationMessage{
		LocationID: lease.LocationID,
		Owner:      lease.Owner,
		ExpiresAt:  lease.ExpiresAt,
	}); err != nil {
		logger.Error("[AcquireLease] publish lease expiration", zap.String("error", err.Error()))
	}
	return lease, nil
}

func (s *locationAppImpl) ReleaseLease(ctx context.Context, locationID uint64, owner string) error {
	err := txrepo.Run(ctx, s.txRepo, func(tx *sqlx.Tx) error {
		if _, err := s.locationRepo.LockByIDsTx(ctx, tx, []uint64{locationID}); err != nil {
			return err
		}
		current, err := s.leaseRepo.GetTx(ctx, tx, locationID)
		if err != nil {
			return err
		}
		if current == nil || current.Owner != owner {
			return errors.SetCustomError(constant.ErrLeaseNotHeld)
		}
		return s.leaseRepo.DeleteTx(ctx, tx, locationID)
	})
	if err != nil {
		if errors.Is(err, constant.ErrLeaseNotHeld) {
			return err
		}
		logger.Error("[ReleaseLease] tx", zap.Uint64("location_id", locationID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	metrics.Leases.WithLabelValues("release", "ok").Inc()
	return nil
}

// ExpireLease drops the lease row only if it has run out; a renewed lease
// stays and gets its own expiration message.
func (s *locationAppImpl) ExpireLease(ctx context.Context, locationID uint64) error {
	n, err := s.leaseRepo.DeleteExpired(ctx, locationID, time.Now())
	if err != nil {
		logger.Error("[ExpireLease] leaseRepo.DeleteExpired", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if n > 0 {
		metrics.Leases.WithLabelValues("expire", "ok").Inc()
	}
	return nil
}

func distinctItems(rows []model.ItemLocation) int {
	seen := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		seen[r.ItemID] = struct{}{}
	}
	return len(seen)
}
