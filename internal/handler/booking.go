package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pawcare/pet-care-booking/internal/model"
	"github.com/pawcare/pet-care-booking/internal/repository"
	"github.com/pawcare/pet-care-booking/internal/service"
)

// BookingHandler exposes the booking lifecycle over HTTP. All
// transitions go through the lifecycle service; the repository is only
// used directly for reads.
type BookingHandler struct {
	Lifecycle *service.BookingService
	Bookings  *repository.BookingRepo
}

func NewBookingHandler(lc *service.BookingService, b *repository.BookingRepo) *BookingHandler {
	return &BookingHandler{Lifecycle: lc, Bookings: b}
}

// ----- DTOs -----

type petInfoReq struct {
	PetName string  `json:"pet_name" validate:"omitempty,max=120"`
	Species string  `json:"species" validate:"omitempty,max=60"`
	Breed   string  `json:"breed" validate:"omitempty,max=120"`
	Age     uint32  `json:"age" validate:"omitempty,lte=100"`
	Weight  float64 `json:"weight" validate:"omitempty,gte=0"`
	Notes   string  `json:"notes" validate:"omitempty,max=1000"`
}

type createBookingReq struct {
	ServiceID       uint64     `json:"service_id" validate:"required"`
	TimeslotID      uint64     `json:"timeslot_id" validate:"required"`
	AppointmentDate string     `json:"appointment_date" validate:"required,datetime=2006-01-02"`
	PetID           *uint64    `json:"pet_id"`
	PetInfo         petInfoReq `json:"pet_info"`
	CustomerName    string     `json:"customer_name" validate:"required,max=120"`
	Phone           string     `json:"phone" validate:"required,max=30"`
	Email           string     `json:"email" validate:"required,email"`
	Address         string     `json:"address" validate:"omitempty,max=255"`
}

type cancelReq struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type updateStatusReq struct {
	Status string `json:"status" validate:"required"`
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type changeTimeslotReq struct {
	TimeslotID uint64 `json:"timeslot_id" validate:"required"`
}

// Create books a service for the caller.
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	date, err := time.ParseInLocation("2006-01-02", req.AppointmentDate, time.UTC)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid appointment_date"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	b, err := h.Lifecycle.Create(ctx, currentUserID(c), service.CreateInput{
		ServiceID:       req.ServiceID,
		TimeslotID:      req.TimeslotID,
		AppointmentDate: date,
		PetID:           req.PetID,
		PetInfo: model.PetInfo{
			PetName: req.PetInfo.PetName,
			Species: req.PetInfo.Species,
			Breed:   req.PetInfo.Breed,
			Age:     req.PetInfo.Age,
			Weight:  req.PetInfo.Weight,
			Notes:   req.PetInfo.Notes,
		},
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"id":               b.ID,
		"status":           b.Status,
		"appointment_date": b.AppointmentDate.Format("2006-01-02"),
	})
}

// ListMine returns the caller's bookings, optionally filtered with
// ?status=.
func (h *BookingHandler) ListMine(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	userID := currentUserID(c)

	if raw := c.QueryParam("status"); raw != "" {
		status := model.BookingStatus(raw)
		if !status.Valid() {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
		}
		items, err := h.Bookings.ListByUserAndStatus(ctx, userID, status)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"bookings": items})
	}
	items, err := h.Bookings.ListByUser(ctx, userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": items})
}

// Get returns one booking. Customers only see their own.
func (h *BookingHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	d, err := h.Bookings.GetDetailByID(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	if !isAdmin(c) && d.UserID != currentUserID(c) {
		return fail(c, repository.ErrForbidden)
	}
	return c.JSON(http.StatusOK, d)
}

// ListAll returns every booking. Admin only.
func (h *BookingHandler) ListAll(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Bookings.ListAll(ctx)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": items})
}

// Cancel is the owner's self-service cancellation.
func (h *BookingHandler) Cancel(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req cancelReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Lifecycle.Cancel(ctx, currentUserID(c), id, req.Reason); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "booking cancelled"})
}

// UpdateStatus is the staff transition endpoint. Admin only.
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Lifecycle.UpdateStatus(ctx, id, model.BookingStatus(req.Status), req.Reason); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "status updated"})
}

// ChangeTimeslot moves a booking to another slot.
func (h *BookingHandler) ChangeTimeslot(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req changeTimeslotReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Lifecycle.ChangeTimeslot(ctx, currentUserID(c), id, req.TimeslotID, isAdmin(c)); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "timeslot changed"})
}

// Delete removes a booking, returning its slot place when still held.
func (h *BookingHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Lifecycle.Delete(ctx, currentUserID(c), id, isAdmin(c)); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "booking deleted"})
}
