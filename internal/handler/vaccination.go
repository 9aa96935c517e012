package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawcare/pet-care-booking/internal/repository"
)

// VaccinationHandler serves the read side of the vaccination history.
// Records are written only by the booking lifecycle on completion.
type VaccinationHandler struct {
	History *repository.VaccinationHistoryRepo
	Pets    *repository.PetRepo
}

func NewVaccinationHandler(h *repository.VaccinationHistoryRepo, p *repository.PetRepo) *VaccinationHandler {
	return &VaccinationHandler{History: h, Pets: p}
}

// ListMine returns the caller's vaccination records.
func (h *VaccinationHandler) ListMine(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.History.ListByUser(ctx, currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"history": items})
}

// ListByPet returns one pet's records. The pet must belong to the caller.
func (h *VaccinationHandler) ListByPet(c echo.Context) error {
	petID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if _, err := h.Pets.GetByIDForUser(ctx, petID, currentUserID(c)); err != nil {
		return fail(c, err)
	}
	items, err := h.History.ListByPet(ctx, petID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"history": items})
}
