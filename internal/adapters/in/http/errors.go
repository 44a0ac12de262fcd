package http

import (
	"errors"
	"log/slog"
	"net/http"

	"warehouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps an application error onto the HTTP status contract:
// validation failures are 400, missing objects 404, optimistic lock
// failures 409, anything else 500.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeErrorResponse(ctx, http.StatusNotFound, err)
	case errors.Is(err, errs.ErrVersionConflict):
		return writeErrorResponse(ctx, http.StatusConflict, err)
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return writeErrorResponse(ctx, http.StatusBadRequest, err)
	default:
		slog.Error("request failed", "path", ctx.Path(), "error", err)
		return writeErrorResponse(ctx, http.StatusInternalServerError, err)
	}
}

// writeBadRequest reports a malformed or rejected request body.
func writeBadRequest(ctx echo.Context, err error) error {
	return writeErrorResponse(ctx, http.StatusBadRequest, err)
}

func writeErrorResponse(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, errorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
