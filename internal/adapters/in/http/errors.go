package http

import (
	"errors"
	"net/http"

	"fulfilment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps domain errors onto HTTP status codes:
// missing objects are 404, duplicates 409, violated business rules 422,
// malformed input 400 and everything else 500.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrLimitExceeded), errors.Is(err, errs.ErrInvalidState):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
