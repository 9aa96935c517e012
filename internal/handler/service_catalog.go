package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawcare/pet-care-booking/internal/model"
	"github.com/pawcare/pet-care-booking/internal/repository"
)

// ServiceHandler exposes the care service catalog: public reads and
// admin-only writes.
type ServiceHandler struct {
	Services *repository.ServiceRepo
}

func NewServiceHandler(s *repository.ServiceRepo) *ServiceHandler {
	return &ServiceHandler{Services: s}
}

type serviceReq struct {
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	PriceCents  uint32 `json:"price_cents" validate:"required"`
	IsVaccine   bool   `json:"is_vaccine"`
	IsActive    bool   `json:"is_active"`
}

type serviceResp struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  uint32 `json:"price_cents"`
	IsVaccine   bool   `json:"is_vaccine"`
	IsActive    bool   `json:"is_active"`
}

func toServiceResp(s model.Service) serviceResp {
	return serviceResp{
		ID: s.ID, Name: s.Name, Description: s.Description,
		PriceCents: s.PriceCents, IsVaccine: s.IsVaccine, IsActive: s.IsActive,
	}
}

// List returns the catalog. The public view shows active services only;
// admins see everything.
func (h *ServiceHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	services, err := h.Services.List(ctx, !isAdmin(c))
	if err != nil {
		return fail(c, err)
	}
	out := make([]serviceResp, 0, len(services))
	for _, s := range services {
		out = append(out, toServiceResp(s))
	}
	return c.JSON(http.StatusOK, echo.Map{"services": out})
}

// Get returns one catalog service.
func (h *ServiceHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	s, err := h.Services.GetByID(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, toServiceResp(*s))
}

// Create adds a catalog service. Admin only.
func (h *ServiceHandler) Create(c echo.Context) error {
	var req serviceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	s := &model.Service{
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		IsVaccine:   req.IsVaccine,
		IsActive:    req.IsActive,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Services.Create(ctx, s); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, toServiceResp(*s))
}

// Update rewrites a catalog service. Admin only.
func (h *ServiceHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req serviceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	s := &model.Service{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		IsVaccine:   req.IsVaccine,
		IsActive:    req.IsActive,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Services.Update(ctx, s); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, toServiceResp(*s))
}
