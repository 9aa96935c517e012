package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawcare/pet-care-booking/internal/model"
	"github.com/pawcare/pet-care-booking/internal/repository"
)

// PetHandler manages the caller's pet profiles. Every operation is
// scoped to the authenticated owner.
type PetHandler struct {
	Pets *repository.PetRepo
}

func NewPetHandler(p *repository.PetRepo) *PetHandler { return &PetHandler{Pets: p} }

type petReq struct {
	Name       string  `json:"name" validate:"required,max=120"`
	Species    string  `json:"species" validate:"required,max=60"`
	Breed      string  `json:"breed" validate:"omitempty,max=120"`
	Age        uint32  `json:"age" validate:"omitempty,lte=100"`
	Weight     float64 `json:"weight" validate:"omitempty,gte=0"`
	Gender     string  `json:"gender" validate:"omitempty,oneof=male female"`
	Vaccinated bool    `json:"vaccinated"`
	Notes      string  `json:"notes" validate:"omitempty,max=1000"`
	ImageURL   string  `json:"image_url" validate:"omitempty,max=500"`
}

type petResp struct {
	ID         uint64  `json:"id"`
	Name       string  `json:"name"`
	Species    string  `json:"species"`
	Breed      string  `json:"breed"`
	Age        uint32  `json:"age"`
	Weight     float64 `json:"weight"`
	Gender     string  `json:"gender,omitempty"`
	Vaccinated bool    `json:"vaccinated"`
	Notes      string  `json:"notes,omitempty"`
	ImageURL   string  `json:"image_url,omitempty"`
}

func toPetResp(p model.Pet) petResp {
	return petResp{
		ID: p.ID, Name: p.Name, Species: p.Species, Breed: p.Breed,
		Age: p.Age, Weight: p.Weight, Gender: p.Gender,
		Vaccinated: p.Vaccinated, Notes: p.Notes, ImageURL: p.ImageURL,
	}
}

// List returns the caller's pets.
func (h *PetHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	pets, err := h.Pets.ListByUser(ctx, currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	out := make([]petResp, 0, len(pets))
	for _, p := range pets {
		out = append(out, toPetResp(p))
	}
	return c.JSON(http.StatusOK, echo.Map{"pets": out})
}

// Get returns one of the caller's pets.
func (h *PetHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	p, err := h.Pets.GetByIDForUser(ctx, id, currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, toPetResp(*p))
}

// Create adds a pet profile for the caller.
func (h *PetHandler) Create(c echo.Context) error {
	var req petReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	p := &model.Pet{
		UserID:     currentUserID(c),
		Name:       req.Name,
		Species:    req.Species,
		Breed:      req.Breed,
		Age:        req.Age,
		Weight:     req.Weight,
		Gender:     req.Gender,
		Vaccinated: req.Vaccinated,
		Notes:      req.Notes,
		ImageURL:   req.ImageURL,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Pets.Create(ctx, p); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, toPetResp(*p))
}

// Update rewrites one of the caller's pets.
func (h *PetHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req petReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	p := &model.Pet{
		ID:         id,
		UserID:     currentUserID(c),
		Name:       req.Name,
		Species:    req.Species,
		Breed:      req.Breed,
		Age:        req.Age,
		Weight:     req.Weight,
		Gender:     req.Gender,
		Vaccinated: req.Vaccinated,
		Notes:      req.Notes,
		ImageURL:   req.ImageURL,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Pets.Update(ctx, p); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, toPetResp(*p))
}

// Delete removes one of the caller's pets. Bookings keep their snapshot.
func (h *PetHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Pets.Delete(ctx, id, currentUserID(c)); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "pet deleted"})
}
