package transport

import (
	"net/http"
)

// ListProducts handler
// @Summary Product reference list
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search by code or name"
// @Param page query int false "Page"
// @Param per_page query int false "Per page"
// @Success 200 {object} model.ProductListResponse
// @Router /catalog/products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	res, err := s.CatalogApp.ListProducts(r.Context(), r.URL.Query().Get("q"), queryInt(r, "page"), queryInt(r, "per_page"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListCustomers handler
// @Summary Customer reference list
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search by id or name"
// @Param page query int false "Page"
// @Param per_page query int false "Per page"
// @Success 200 {object} model.CustomerListResponse
// @Router /catalog/customers [get]
func (s *RestHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	res, err := s.CatalogApp.ListCustomers(r.Context(), r.URL.Query().Get("q"), queryInt(r, "page"), queryInt(r, "per_page"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
