package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawcare/pet-care-booking/internal/model"
	"github.com/pawcare/pet-care-booking/internal/repository"
)

// TimeslotHandler exposes the bookable timeslots: public reads and
// admin-only capacity management. The availability counter itself is
// only ever moved by the booking lifecycle.
type TimeslotHandler struct {
	Timeslots *repository.TimeslotRepo
}

func NewTimeslotHandler(t *repository.TimeslotRepo) *TimeslotHandler {
	return &TimeslotHandler{Timeslots: t}
}

type createTimeslotReq struct {
	Hour     uint8  `json:"hour" validate:"lte=23"`
	Capacity uint32 `json:"capacity" validate:"required,gte=1"`
}

type updateTimeslotReq struct {
	Capacity uint32 `json:"capacity" validate:"required,gte=1"`
}

type timeslotResp struct {
	ID             uint64 `json:"id"`
	Hour           uint8  `json:"hour"`
	Capacity       uint32 `json:"capacity"`
	AvailableSlots uint32 `json:"available_slots"`
}

func toTimeslotResp(t model.Timeslot) timeslotResp {
	return timeslotResp{ID: t.ID, Hour: t.Hour, Capacity: t.Capacity, AvailableSlots: t.AvailableSlots}
}

// List returns all timeslots with their remaining availability.
func (h *TimeslotHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	slots, err := h.Timeslots.List(ctx)
	if err != nil {
		return fail(c, err)
	}
	out := make([]timeslotResp, 0, len(slots))
	for _, t := range slots {
		out = append(out, toTimeslotResp(t))
	}
	return c.JSON(http.StatusOK, echo.Map{"timeslots": out})
}

// Get returns one timeslot.
func (h *TimeslotHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	t, err := h.Timeslots.GetByID(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, toTimeslotResp(*t))
}

// Create adds a timeslot with availability seeded to capacity. Admin only.
func (h *TimeslotHandler) Create(c echo.Context) error {
	var req createTimeslotReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	t := &model.Timeslot{Hour: req.Hour, Capacity: req.Capacity}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Timeslots.Create(ctx, t); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, toTimeslotResp(*t))
}

// UpdateCapacity resizes a timeslot, shifting the free counter by the
// same delta. Admin only.
func (h *TimeslotHandler) UpdateCapacity(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req updateTimeslotReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Timeslots.UpdateCapacity(ctx, id, req.Capacity); err != nil {
		return fail(c, err)
	}
	t, err := h.Timeslots.GetByID(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, toTimeslotResp(*t))
}
