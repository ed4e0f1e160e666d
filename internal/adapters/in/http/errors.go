package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/notifier"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// statusFor maps use case errors onto HTTP status codes. Order matters: an
// invalid access code is also a ValueIsInvalidError but must read as 404.
func statusFor(err error) int {
	switch {
	case errors.Is(err, queries.ErrInvalidOrExpiredCode),
		errors.Is(err, commands.ErrOrderNotFound),
		errors.Is(err, commands.ErrDriverNotFound),
		errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrForbiddenTransitionForDriver):
		return http.StatusForbidden
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrDriverAlreadyAssigned):
		return http.StatusConflict
	case errors.Is(err, services.ErrDriverCityMismatch):
		return http.StatusUnprocessableEntity
	case errors.Is(err, notifier.ErrDriverNotificationFailed),
		errors.Is(err, notifier.ErrVendorNotificationFailed),
		errors.Is(err, notifier.ErrDriverCancelNotificationFailed),
		errors.Is(err, notifier.ErrRequiredNotificationFailed):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
