package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"cargotrack/internal/core/application/usecases/commands"
	"cargotrack/internal/core/domain/model/employee"
	"cargotrack/internal/core/domain/model/order"
	"cargotrack/internal/core/domain/services"
	"cargotrack/internal/pkg/errs"
)

// errorResponse is the JSON error body returned to clients.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeDomainError maps domain and application errors to HTTP statuses:
//
//	400 — malformed input, unknown statuses, missing preconditions
//	403 — the actor is authenticated but not permitted
//	404 — the target object does not exist (or is scoped away)
//	409 — conflicts the caller must resolve by re-reading state
func writeDomainError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, services.ErrRoleNotPermitted),
		errors.Is(err, services.ErrBranchMismatch):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, services.ErrIllegalTransition),
		errors.Is(err, order.ErrStaleVersion),
		errors.Is(err, order.ErrDuplicateTrackNumber),
		errors.Is(err, employee.ErrDuplicateLogin):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, order.ErrUnknownStatus),
		errors.Is(err, employee.ErrUnknownRole),
		errors.Is(err, commands.ErrProblemReasonRequired),
		errors.Is(err, commands.ErrBranchRequired),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		status = http.StatusBadRequest
		message = err.Error()
	}

	return c.JSON(status, errorResponse{Code: status, Message: message})
}
