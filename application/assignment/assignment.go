package assignment

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/item-location/application/location"
	"github.com/muhammadheryan/item-location/constant"
	"github.com/muhammadheryan/item-location/model"
	assignmentrepo "github.com/muhammadheryan/item-location/repository/assignment"
	catalogrepo "github.com/muhammadheryan/item-location/repository/catalog"
	leaserepo "github.com/muhammadheryan/item-location/repository/lease"
	locationrepo "github.com/muhammadheryan/item-location/repository/location"
	txrepo "github.com/muhammadheryan/item-location/repository/tx"
	"github.com/muhammadheryan/item-location/thirdparty/rabbitmq"
	"github.com/muhammadheryan/item-location/utils/errors"
	"github.com/muhammadheryan/item-location/utils/logger"
	"github.com/muhammadheryan/item-location/utils/metrics"
	"go.uber.org/zap"
)

const (
	defaultPerPage = 20
	maxPerPage     = 200
)

type AssignmentApp interface {
	Check(ctx context.Context, req *model.ConflictCheckRequest, owner string) (*model.ConflictResult, error)
	Assign(ctx context.Context, req *model.AssignRequest, session *model.OperatorSession) (*model.AssignResponse, error)
	Update(ctx context.Context, id uint64, req *model.UpdateAssignmentRequest, session *model.OperatorSession) (*model.ItemLocation, error)
	Delete(ctx context.Context, id uint64, session *model.OperatorSession) error
	CleanupByProduct(ctx context.Context, itemID string, session *model.OperatorSession) (*model.CleanupResponse, error)
	CleanupByLocation(ctx context.Context, locationID uint64, includeDescendants bool, session *model.OperatorSession) (*model.CleanupResponse, error)
	List(ctx context.Context, filter *model.AssignmentFilter) (*model.AssignmentListResponse, error)
}

// TreeProvider is the part of the location app the store depends on.
type TreeProvider interface {
	Tree(ctx context.Context) (*location.Tree, error)
	InvalidateTree(ctx context.Context) error
}

type assignmentAppImpl struct {
	txRepo         txrepo.TxRepository
	assignmentRepo assignmentrepo.AssignmentRepository
	locationRepo   locationrepo.LocationRepository
	leaseRepo      leaserepo.LeaseRepository
	catalogRepo    catalogrepo.CatalogRepository
	tree           TreeProvider
	publisher      rabbitmq.EventPublisher
	now            func() time.Time
}

func NewAssignmentApp(
	txRepo txrepo.TxRepository,
	assignmentRepo assignmentrepo.AssignmentRepository,
	locationRepo locationrepo.LocationRepository,
	leaseRepo leaserepo.LeaseRepository,
	catalogRepo catalogrepo.CatalogRepository,
	tree TreeProvider,
	publisher rabbitmq.EventPublisher,
) AssignmentApp {
	return &assignmentAppImpl{
		txRepo:         txRepo,
		assignmentRepo: assignmentRepo,
		locationRepo:   locationRepo,
		leaseRepo:      leaseRepo,
		catalogRepo:    catalogRepo,
		tree:           tree,
		publisher:      publisher,
		now:            time.Now,
	}
}

// Check reports what would stand in the way of assigning the product to the
// location. It never writes.
func (s *assignmentAppImpl) Check(ctx context.Context, req *model.ConflictCheckRequest, owner string) (*model.ConflictResult, error) {
	loc, err := s.locationRepo.GetByID(ctx, req.LocationID)
	if err != nil {
		logger.Error("[Check] locationRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if loc == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	byItem, err := s.assignmentRepo.ListByItem(ctx, req.ItemID)
	if err != nil {
		logger.Error("[Check] assignmentRepo.ListByItem", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	atLocation, err := s.assignmentRepo.ListByLocation(ctx, req.LocationID)
	if err != nil {
		logger.Error("[Check] assignmentRepo.ListByLocation", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	result := evaluateConflicts(req.ItemID, req.LocationID, byItem, atLocation)
	result.LocationIsMixed = loc.IsMixed

	lease, err := s.leaseRepo.Get(ctx, req.LocationID)
	if err != nil {
		logger.Error("[Check] leaseRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if lease.HeldByOther(owner, s.now()) {
		result.IsLocked = true
		result.LockedBy = lease.Owner
	}

	if result.ConflictingProduct != nil {
		product, err := s.catalogRepo.GetProduct(ctx, result.ConflictingProduct.Code)
		if err != nil {
			logger.Warn("[Check] catalogRepo.GetProduct", zap.String("error", err.Error()))
		} else if product != nil {
			result.ConflictingProduct = product
		}
	}

	switch {
	case result.IsLocked:
		metrics.ConflictChecks.WithLabelValues("locked").Inc()
	case result.ProductHasOtherLocations || result.LocationHasOtherProducts:
		metrics.ConflictChecks.WithLabelValues("conflict").Inc()
	default:
		metrics.ConflictChecks.WithLabelValues("clear").Inc()
	}
	return result, nil
}

// Assign writes a new assignment with the side effects of req.Mode. All
// reads that decide the outcome are repeated under row locks inside the
// transaction, so a stale check surfaces as ErrAssignmentConflict.
func (s *assignmentAppImpl) Assign(ctx context.Context, req *model.AssignRequest, session *model.OperatorSession) (*model.AssignResponse, error) {
	if !req.Mode.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidMode)
	}
	clientID := normalizeClient(req.ClientID)
	if err := s.validateReferences(ctx, req.ItemID, clientID); err != nil {
		return nil, err
	}

	loc, err := s.locationRepo.GetByID(ctx, req.LocationID)
	if err != nil {
		logger.Error("[Assign] locationRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if loc == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	lockIDs := []uint64{req.LocationID}
	if req.Mode.Moves() {
		prior, err := s.assignmentRepo.ListByItem(ctx, req.ItemID)
		if err != nil {
			logger.Error("[Assign] assignmentRepo.ListByItem", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		for _, row := range prior {
			lockIDs = append(lockIDs, row.LocationID)
		}
	}
	lockIDs = uniqueSorted(lockIDs)

	resp := &model.AssignResponse{Mode: req.Mode}
	var (
		mixedChanged bool
		movedFrom    []uint64
	)
	err = txrepo.Run(ctx, s.txRepo, func(tx *sqlx.Tx) error {
		locked, err := s.lockLocations(ctx, tx, lockIDs, session.SessionID)
		if err != nil {
			return err
		}
		target, ok := locked[req.LocationID]
		if !ok {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		// the location locks do not cover the product's other locations
		exists, err := s.catalogRepo.LockProductTx(ctx, tx, req.ItemID)
		if err != nil {
			return err
		}
		if !exists {
			return errors.SetCustomError(constant.ErrInvalidRequest)
		}

		byItem, err := s.assignmentRepo.ListByItemTx(ctx, tx, req.ItemID)
		if err != nil {
			return err
		}
		atLocation, err := s.assignmentRepo.ListByLocationTx(ctx, tx, req.LocationID)
		if err != nil {
			return err
		}
		if findDuplicate(atLocation, req.ItemID, clientID, 0) != nil {
			return errors.SetCustomError(constant.ErrDuplicateAssignment)
		}

		conflict := evaluateConflicts(req.ItemID, req.LocationID, byItem, atLocation)
		if conflict.ProductHasOtherLocations {
			if !req.Mode.Moves() {
				return errors.SetCustomError(constant.ErrAssignmentConflict)
			}
			removeIDs := make([]uint64, 0, len(byItem))
			for _, row := range byItem {
				if row.LocationID == req.LocationID {
					continue
				}
				// assigned somewhere after we chose which rows to lock
				if _, ok := locked[row.LocationID]; !ok {
					return errors.SetCustomError(constant.ErrAssignmentConflict)
				}
				removeIDs = append(removeIDs, row.ID)
			}
			n, err := s.assignmentRepo.DeleteByIDsTx(ctx, tx, removeIDs)
			if err != nil {
				return err
			}
			resp.Removed = n
			movedFrom = conflict.OtherLocations
		}

		// a plain add or move must leave the pair conflict free, mixed or not
		if conflict.LocationHasOtherProducts && !req.Mode.Mixes() {
			return errors.SetCustomError(constant.ErrAssignmentConflict)
		}
		if req.Mode.Mixes() && !target.IsMixed {
			if err := s.locationRepo.SetMixedTx(ctx, tx, req.LocationID, true); err != nil {
				return err
			}
			mixedChanged = true
		}

		row := &model.ItemLocation{
			ItemID:              req.ItemID,
			LocationID:          req.LocationID,
			ClientID:            clientID,
			IsExclusive:         req.IsExclusive,
			RequiresCertificate: req.RequiresCertificate,
			UpdatedBy:           session.Username,
			UpdatedAt:           s.now().UTC().Truncate(time.Second),
		}
		id, err := s.assignmentRepo.InsertTx(ctx, tx, row)
		if err != nil {
			return err
		}
		row.ID = id
		resp.Assignment = row
		return nil
	})
	if err != nil {
		metrics.Assignments.WithLabelValues(string(req.Mode), resultLabel(err)).Inc()
		return nil, s.passOrInternal("[Assign] tx", err)
	}
	metrics.Assignments.WithLabelValues(string(req.Mode), "ok").Inc()

	if mixedChanged {
		_ = s.tree.InvalidateTree(ctx)
	}

	event := constant.AssignmentEventCreated
	if len(movedFrom) > 0 {
		event = constant.AssignmentEventMoved
	}
	s.publish(ctx, model.AssignmentEventMessage{
		Event:       event,
		ItemID:      req.ItemID,
		LocationIDs: append([]uint64{req.LocationID}, movedFrom...),
		Count:       1,
		Operator:    session.Username,
	})

	atLocation, err := s.List(ctx, &model.AssignmentFilter{LocationID: req.LocationID, PerPage: maxPerPage})
	if err != nil {
		// the write is committed; the refreshed list is best effort
		logger.Warn("[Assign] refresh list", zap.String("error", err.Error()))
	} else {
		resp.AtLocation = atLocation.Items
	}
	return resp, nil
}

func (s *assignmentAppImpl) Update(ctx context.Context, id uint64, req *model.UpdateAssignmentRequest, session *model.OperatorSession) (*model.ItemLocation, error) {
	current, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[Update] assignmentRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if current == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	clientID := normalizeClient(req.ClientID)
	if err := s.validateReferences(ctx, "", clientID); err != nil {
		return nil, err
	}

	var updated *model.ItemLocation
	err = txrepo.Run(ctx, s.txRepo, func(tx *sqlx.Tx) error {
		if _, err := s.lockLocations(ctx, tx, []uint64{current.LocationID}, session.SessionID); err != nil {
			return err
		}
		row, err := s.assignmentRepo.GetByIDTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if row == nil {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		if row.LocationID != current.LocationID {
			return errors.SetCustomError(constant.ErrAssignmentConflict)
		}

		atLocation, err := s.assignmentRepo.ListByLocationTx(ctx, tx, row.LocationID)
		if err != nil {
			return err
		}
		if findDuplicate(atLocation, row.ItemID, clientID, row.ID) != nil {
			return errors.SetCustomError(constant.ErrDuplicateAssignment)
		}

		row.ClientID = clientID
		row.IsExclusive = req.IsExclusive
		row.RequiresCertificate = req.RequiresCertificate
		row.UpdatedBy = session.Username
		row.UpdatedAt = s.now().UTC().Truncate(time.Second)
		if err := s.assignmentRepo.UpdateTx(ctx, tx, row); err != nil {
			return err
		}
		updated = row
		return nil
	})
	if err != nil {
		return nil, s.passOrInternal("[Update] tx", err)
	}

	s.publish(ctx, model.AssignmentEventMessage{
		Event:       constant.AssignmentEventUpdated,
		ItemID:      updated.ItemID,
		LocationIDs: []uint64{updated.LocationID},
		Count:       1,
		Operator:    session.Username,
	})
	return updated, nil
}

func (s *assignmentAppImpl) Delete(ctx context.Context, id uint64, session *model.OperatorSession) error {
	current, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[Delete] assignmentRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if current == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	err = txrepo.Run(ctx, s.txRepo, func(tx *sqlx.Tx) error {
		if _, err := s.lockLocations(ctx, tx, []uint64{current.LocationID}, session.SessionID); err != nil {
			return err
		}
		n, err := s.assignmentRepo.DeleteByIDsTx(ctx, tx, []uint64{id})
		if err != nil {
			return err
		}
		if n == 0 {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return s.passOrInternal("[Delete] tx", err)
	}
	metrics.Deletions.WithLabelValues("single").Inc()

	s.publish(ctx, model.AssignmentEventMessage{
		Event:       constant.AssignmentEventDeleted,
		ItemID:      current.ItemID,
		LocationIDs: []uint64{current.LocationID},
		Count:       1,
		Operator:    session.Username,
	})
	return nil
}

// CleanupByProduct removes every assignment of itemID.
func (s *assignmentAppImpl) CleanupByProduct(ctx context.Context, itemID string, session *model.OperatorSession) (*model.CleanupResponse, error) {
	rows, err := s.assignmentRepo.ListByItem(ctx, itemID)
	if err != nil {
		logger.Error("[CleanupByProduct] assignmentRepo.ListByItem", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	ids := make([]uint64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.LocationID)
	}
	ids = uniqueSorted(ids)

	var deleted int64
	err = txrepo.Run(ctx, s.txRepo, func(tx *sqlx.Tx) error {
		locked, err := s.lockLocations(ctx, tx, ids, session.SessionID)
		if err != nil {
			return err
		}
		if _, err := s.catalogRepo.LockProductTx(ctx, tx, itemID); err != nil {
			return err
		}
		current, err := s.assignmentRepo.ListByItemTx(ctx, tx, itemID)
		if err != nil {
			return err
		}
		for _, row := range current {
			// assigned somewhere after we chose which rows to lock
			if _, ok := locked[row.LocationID]; !ok {
				return errors.SetCustomError(constant.ErrAssignmentConflict)
			}
		}
		n, err := s.assignmentRepo.DeleteByItemTx(ctx, tx, itemID)
		if err != nil {
			return err
		}
		deleted = n
		return nil
	})
	if err != nil {
		return nil, s.passOrInternal("[CleanupByProduct] tx", err)
	}
	metrics.Deletions.WithLabelValues("by_product").Add(float64(deleted))

	s.publish(ctx, model.AssignmentEventMessage{
		Event:       constant.AssignmentEventCleanup,
		ItemID:      itemID,
		LocationIDs: ids,
		Count:       deleted,
		Operator:    session.Username,
	})
	return &model.CleanupResponse{Deleted: deleted}, nil
}

// CleanupByLocation removes every assignment at the location and, when
// includeDescendants is set, at every location below it.
func (s *assignmentAppImpl) CleanupByLocation(ctx context.Context, locationID uint64, includeDescendants bool, session *model.OperatorSession) (*model.CleanupResponse, error) {
	loc, err := s.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		logger.Error("[CleanupByLocation] locationRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if loc == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	ids := []uint64{locationID}
	if includeDescendants {
		tree, err := s.tree.Tree(ctx)
		if err != nil {
			return nil, err
		}
		ids = append(ids, tree.Descendants(locationID)...)
	}
	ids = uniqueSorted(ids)

	var deleted int64
	err = txrepo.Run(ctx, s.txRepo, func(tx *sqlx.Tx) error {
		if _, err := s.lockLocations(ctx, tx, ids, session.SessionID); err != nil {
			return err
		}
		n, err := s.assignmentRepo.DeleteByLocationsTx(ctx, tx, ids)
		if err != nil {
			return err
		}
		deleted = n
		return nil
	})
	if err != nil {
		return nil, s.passOrInternal("[CleanupByLocation] tx", err)
	}
	metrics.Deletions.WithLabelValues("by_location").Add(float64(deleted))

	s.publish(ctx, model.AssignmentEventMessage{
		Event:       constant.AssignmentEventCleanup,
		LocationIDs: ids,
		Count:       deleted,
		Operator:    session.Username,
	})
	return &model.CleanupResponse{Deleted: deleted}, nil
}

func (s *assignmentAppImpl) List(ctx context.Context, filter *model.AssignmentFilter) (*model.AssignmentListResponse, error) {
	f := *filter
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 {
		f.PerPage = defaultPerPage
	}
	if f.PerPage > maxPerPage {
		f.PerPage = maxPerPage
	}

	items, total, err := s.assignmentRepo.List(ctx, &f)
	if err != nil {
		logger.Error("[List] assignmentRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if len(items) > 0 {
		tree, err := s.tree.Tree(ctx)
		if err != nil {
			logger.Warn("[List] location tree unavailable", zap.String("error", err.Error()))
		}
		for i := range items {
			if tree != nil {
				items[i].LocationPath = tree.Path(items[i].LocationID)
			}
			if items[i].LocationPath == "" {
				items[i].LocationPath = items[i].LocationName
			}
		}
	}

	return &model.AssignmentListResponse{
		Items:      items,
		TotalCount: total,
		Page:       f.Page,
		PerPage:    f.PerPage,
	}, nil
}

// lockLocations row-locks ids and fails with ErrLocationLocked when any of
// them is leased to a session other than owner.
func (s *assignmentAppImpl) lockLocations(ctx context.Context, tx *sqlx.Tx, ids []uint64, owner string) (map[uint64]model.WarehouseLocation, error) {
	ids = uniqueSorted(ids)
	rows, err := s.locationRepo.LockByIDsTx(ctx, tx, ids)
	if err != nil {
		return nil, err
	}
	locked := make(map[uint64]model.WarehouseLocation, len(rows))
	for _, row := range rows {
		locked[row.ID] = row
	}
	if len(ids) == 0 {
		return locked, nil
	}

	leases, err := s.leaseRepo.ListByLocationsTx(ctx, tx, ids)
	if err != nil {
		return nil, err
	}
	now := s.now()
	for i := range leases {
		if leases[i].HeldByOther(owner, now) {
			return nil, errors.SetCustomError(constant.ErrLocationLocked)
		}
	}
	return locked, nil
}

func (s *assignmentAppImpl) validateReferences(ctx context.Context, itemID string, clientID *string) error {
	if itemID != "" {
		product, err := s.catalogRepo.GetProduct(ctx, itemID)
		if err != nil {
			logger.Error("[validateReferences] catalogRepo.GetProduct", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if product == nil {
			return errors.SetCustomError(constant.ErrInvalidRequest)
		}
	}
	if clientID != nil {
		customer, err := s.catalogRepo.GetCustomer(ctx, *clientID)
		if err != nil {
			logger.Error("[validateReferences] catalogRepo.GetCustomer", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if customer == nil {
			return errors.SetCustomError(constant.ErrInvalidRequest)
		}
	}
	return nil
}

func (s *assignmentAppImpl) publish(ctx context.Context, msg model.AssignmentEventMessage) {
	msg.OccurredAt = s.now().UTC()
	if err := s.publisher.PublishAssignmentEvent(ctx, msg); err != nil {
		logger.Error("[publish] PublishAssignmentEvent", zap.String("event", string(msg.Event)), zap.String("error", err.Error()))
	}
}

func (s *assignmentAppImpl) passOrInternal(op string, err error) error {
	if ce, ok := errors.As(err); ok {
		return ce
	}
	if err == sql.ErrNoRows {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	logger.Error(op, zap.String("error", err.Error()))
	return errors.SetCustomError(constant.ErrInternal)
}

func resultLabel(err error) string {
	ce, ok := errors.As(err)
	if !ok {
		return "error"
	}
	switch ce.Type() {
	case constant.ErrLocationLocked:
		return "locked"
	case constant.ErrAssignmentConflict:
		return "conflict"
	case constant.ErrDuplicateAssignment:
		return "duplicate"
	}
	return "rejected"
}

// normalizeClient maps an empty client id to general sale.
func normalizeClient(clientID *string) *string {
	if clientID == nil {
		return nil
	}
	v := strings.TrimSpace(*clientID)
	if v == "" {
		return nil
	}
	return &v
}
