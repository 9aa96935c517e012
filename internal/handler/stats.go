package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawcare/pet-care-booking/internal/repository"
)

// StatsHandler serves the admin dashboard aggregates.
type StatsHandler struct {
	Bookings *repository.BookingRepo
}

func NewStatsHandler(b *repository.BookingRepo) *StatsHandler {
	return &StatsHandler{Bookings: b}
}

// Dashboard returns the booking aggregates in one response. Admin only.
func (h *StatsHandler) Dashboard(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	active, err := h.Bookings.CountActive(ctx)
	if err != nil {
		return fail(c, err)
	}
	revenue, err := h.Bookings.RevenueCompleted(ctx)
	if err != nil {
		return fail(c, err)
	}
	byService, err := h.Bookings.RevenueByService(ctx)
	if err != nil {
		return fail(c, err)
	}
	byStatus, err := h.Bookings.CountByStatus(ctx)
	if err != nil {
		return fail(c, err)
	}
	male, female, err := h.Bookings.PetGenderCounts(ctx)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"active_bookings":          active,
		"revenue_cents":            revenue,
		"revenue_by_service_cents": byService,
		"bookings_by_status":       byStatus,
		"pet_genders": echo.Map{
			"male":   male,
			"female": female,
		},
	})
}
