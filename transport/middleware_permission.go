package transport

import (
	"net/http"

	"github.com/muhammadheryan/item-location/constant"
	"github.com/muhammadheryan/item-location/utils/authz"
	utilsContext "github.com/muhammadheryan/item-location/utils/context"
	"github.com/muhammadheryan/item-location/utils/errors"
	"github.com/muhammadheryan/item-location/utils/logger"
	"go.uber.org/zap"
)

// RequirePermission lets the request through only when the session's role
// is granted permission.
func RequirePermission(az authz.Authorizer, permission string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := utilsContext.GetSession(r.Context())
		if !ok {
			writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
			return
		}

		allowed, err := az.Can(r.Context(), session.Role, permission)
		if err != nil {
			logger.Error("[RequirePermission] authz.Can", zap.String("permission", permission), zap.String("error", err.Error()))
			writeError(w, errors.SetCustomError(constant.ErrInternal))
			return
		}
		if !allowed {
			writeError(w, errors.SetCustomError(constant.ErrForbidden))
			return
		}
		next(w, r)
	}
}
