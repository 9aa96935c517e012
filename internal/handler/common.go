// Package handler implements the HTTP endpoints. Handlers bind and
// validate input, call into repositories or the booking lifecycle, and
// translate sentinel errors into status codes. No business rules live
// here.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pawcare/pet-care-booking/internal/middleware"
	"github.com/pawcare/pet-care-booking/internal/model"
	"github.com/pawcare/pet-care-booking/internal/repository"
	"github.com/pawcare/pet-care-booking/internal/service"
)

const dbTimeout = 5 * time.Second

// reqCtx derives a bounded context for repository calls from the request.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// currentUserID returns the authenticated caller's ID. Zero means the
// auth middleware did not run, which is a routing bug.
func currentUserID(c echo.Context) uint64 {
	id, _ := c.Get(middleware.CtxUserID).(uint64)
	return id
}

func isAdmin(c echo.Context) bool {
	role, _ := c.Get(middleware.CtxRole).(string)
	return role == model.RoleAdmin
}

// pathID parses the :id path parameter.
func pathID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}

// fail maps lifecycle and repository sentinels onto HTTP statuses. Any
// unrecognized error becomes a 500 with a generic body.
func fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrBookingNotFound),
		errors.Is(err, repository.ErrPetNotFound),
		errors.Is(err, repository.ErrTimeslotNotFound),
		errors.Is(err, repository.ErrServiceNotFound),
		errors.Is(err, repository.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrNoCapacity),
		errors.Is(err, service.ErrDateInPast),
		errors.Is(err, service.ErrDateTooFar),
		errors.Is(err, service.ErrPetInfoIncomplete),
		errors.Is(err, service.ErrServiceInactive),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrSameTimeslot):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	case errors.Is(err, service.ErrTerminalState),
		errors.Is(err, repository.ErrConflict),
		errors.Is(err, repository.ErrEmailExists):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrTokenInvalid):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}
