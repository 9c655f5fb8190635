package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	assignmentapp "github.com/muhammadheryan/item-location/application/assignment"
	catalogapp "github.com/muhammadheryan/item-location/application/catalog"
	locationapp "github.com/muhammadheryan/item-location/application/location"
	operatorapp "github.com/muhammadheryan/item-location/application/operator"
	"github.com/muhammadheryan/item-location/constant"
	"github.com/muhammadheryan/item-location/model"
	"github.com/muhammadheryan/item-location/utils/authz"
	utilsContext "github.com/muhammadheryan/item-location/utils/context"
	"github.com/muhammadheryan/item-location/utils/errors"
	"github.com/muhammadheryan/item-location/utils/metrics"
	validatorx "github.com/muhammadheryan/item-location/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	OperatorApp   operatorapp.OperatorApp
	LocationApp   locationapp.LocationApp
	AssignmentApp assignmentapp.AssignmentApp
	CatalogApp    catalogapp.CatalogApp
	Authz         authz.Authorizer
}

type Options struct {
	InternalAPIKey string
	MetricsEnabled bool
	MetricsPath    string
}

func NewTransport(rh *RestHandler, opts Options) http.Handler {
	mux := mux.NewRouter()
	guard := func(permission string, h http.HandlerFunc) http.HandlerFunc {
		return RequirePermission(rh.Authz, permission, h)
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	publicPaths := []string{}
	if opts.MetricsEnabled {
		mux.Handle(opts.MetricsPath, metrics.Handler()).Methods(http.MethodGet)
		publicPaths = append(publicPaths, opts.MetricsPath)
	}

	// Public routes
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// protected routes
	mux.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)

	mux.HandleFunc("/locations", guard(constant.PermLocationRead, rh.LocationTree)).Methods(http.MethodGet)
	mux.HandleFunc("/locations", guard(constant.PermLocationCreate, rh.CreateLocation)).Methods(http.MethodPost)
	mux.HandleFunc("/locations/{id}", guard(constant.PermLocationRead, rh.GetLocation)).Methods(http.MethodGet)
	mux.HandleFunc("/locations/{id}/mixed", guard(constant.PermLocationUpdate, rh.SetMixed)).Methods(http.MethodPut)
	mux.HandleFunc("/locations/{id}/lease", guard(constant.PermLeaseAcquire, rh.AcquireLease)).Methods(http.MethodPost)
	mux.HandleFunc("/locations/{id}/lease", guard(constant.PermLeaseAcquire, rh.ReleaseLease)).Methods(http.MethodDelete)

	mux.HandleFunc("/assignments", guard(constant.PermAssignmentRead, rh.ListAssignments)).Methods(http.MethodGet)
	mux.HandleFunc("/assignments", guard(constant.PermAssignmentCreate, rh.SubmitAssignment)).Methods(http.MethodPost)
	mux.HandleFunc("/assignments/check", guard(constant.PermAssignmentRead, rh.CheckConflicts)).Methods(http.MethodPost)
	mux.HandleFunc("/assignments/by-product/{itemId}", guard(constant.PermAssignmentDelete, rh.CleanupByProduct)).Methods(http.MethodDelete)
	mux.HandleFunc("/assignments/by-location/{id}", guard(constant.PermAssignmentDelete, rh.CleanupByLocation)).Methods(http.MethodDelete)
	mux.HandleFunc("/assignments/{id}", guard(constant.PermAssignmentUpdate, rh.UpdateAssignment)).Methods(http.MethodPut)
	mux.HandleFunc("/assignments/{id}", guard(constant.PermAssignmentDelete, rh.DeleteAssignment)).Methods(http.MethodDelete)

	mux.HandleFunc("/catalog/products", guard(constant.PermCatalogRead, rh.ListProducts)).Methods(http.MethodGet)
	mux.HandleFunc("/catalog/customers", guard(constant.PermCatalogRead, rh.ListCustomers)).Methods(http.MethodGet)

	// internal routes
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(opts.InternalAPIKey))
	internal.HandleFunc("/locations/{id}/lease/expire", rh.ExpireLease).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(rh.OperatorApp, publicPaths...))

	return mux
}

// Login handler
// @Summary Login operator
// @Description Login with username or email and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} Response
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.OperatorApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.OperatorApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout operator
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, ok := utilsContext.GetSession(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if err := s.OperatorApp.Logout(r.Context(), session); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
