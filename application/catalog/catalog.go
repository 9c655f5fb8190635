package catalog

import (
	"context"

	"github.com/muhammadheryan/item-location/constant"
	"github.com/muhammadheryan/item-location/model"
	catalogrepo "github.com/muhammadheryan/item-location/repository/catalog"
	"github.com/muhammadheryan/item-location/utils/errors"
	"github.com/muhammadheryan/item-location/utils/logger"
	"go.uber.org/zap"
)

// CatalogApp exposes the product and customer reference lists used by the
// assignment form.
type CatalogApp interface {
	ListProducts(ctx context.Context, q string, page, perPage int) (*model.ProductListResponse, error)
	GetProduct(ctx context.Context, code string) (*model.Product, error)
	ListCustomers(ctx context.Context, q string, page, perPage int) (*model.CustomerListResponse, error)
	GetCustomer(ctx context.Context, id string) (*model.Customer, error)
}

type catalogAppImpl struct {
	catalogRepo catalogrepo.CatalogRepository
}

func NewCatalogApp(catalogRepo catalogrepo.CatalogRepository) CatalogApp {
	return &catalogAppImpl{catalogRepo: catalogRepo}
}

func paging(page, perPage int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}
	return page, perPage
}

func (s *catalogAppImpl) ListProducts(ctx context.Context, q string, page, perPage int) (*model.ProductListResponse, error) {
	page, perPage = paging(page, perPage)

	items, total, err := s.catalogRepo.ListProducts(ctx, q, page, perPage)
	if err != nil {
		logger.Error("[ListProducts] error catalogRepo.ListProducts", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ProductListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

func (s *catalogAppImpl) GetProduct(ctx context.Context, code string) (*model.Product, error) {
	result, err := s.catalogRepo.GetProduct(ctx, code)
	if err != nil {
		logger.Error("[GetProduct] error catalogRepo.GetProduct", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if result == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return result, nil
}

func (s *catalogAppImpl) ListCustomers(ctx context.Context, q string, page, perPage int) (*model.CustomerListResponse, error) {
	page, perPage = paging(page, perPage)

	items, total, err := s.catalogRepo.ListCustomers(ctx, q, page, perPage)
	if err != nil {
		logger.Error("[ListCustomers] error catalogRepo.ListCustomers", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.CustomerListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

func (s *catalogAppImpl) GetCustomer(ctx context.Context, id string) (*model.Customer, error) {
	result, err := s.catalogRepo.GetCustomer(ctx, id)
	if err != nil {
		logger.Error("[GetCustomer] error catalogRepo.GetCustomer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if result == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return result, nil
}
