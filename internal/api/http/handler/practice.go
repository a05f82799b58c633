package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/juniperhealth/juniper_backend/internal/service/practice"
)

type PracticeHandler struct {
	svc practice.Service
}

func NewPracticeHandler(svc practice.Service) *PracticeHandler {
	return &PracticeHandler{svc: svc}
}

func mapPracticeError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, practice.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, practice.ErrStaffNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, practice.ErrSlugTaken):
		return conflict(c, err.Error())
	case errors.Is(err, practice.ErrEmailTaken):
		return conflict(c, err.Error())
	case errors.Is(err, practice.ErrInvalidTimezone):
		return badRequest(c, err.Error())
	case errors.Is(err, practice.ErrPasswordTooShort):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /api/v1/practices  (public: practice signup)
func (h *PracticeHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name     string  `json:"name"`
		Slug     string  `json:"slug"`
		Timezone string  `json:"timezone"`
		Phone    *string `json:"phone"`
		Address  *string `json:"address"`

		OwnerFirstName string `json:"owner_first_name"`
		OwnerLastName  string `json:"owner_last_name"`
		OwnerEmail     string `json:"owner_email"`
		OwnerPassword  string `json:"owner_password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" || body.Slug == "" || body.Timezone == "" {
		return badRequest(c, "name, slug and timezone are required")
	}
	if body.OwnerEmail == "" || body.OwnerPassword == "" {
		return badRequest(c, "owner_email and owner_password are required")
	}

	p, err := h.svc.Create(c.Context(), practice.CreatePracticeRequest{
		Name:           body.Name,
		Slug:           body.Slug,
		Timezone:       body.Timezone,
		Phone:          body.Phone,
		Address:        body.Address,
		OwnerFirstName: body.OwnerFirstName,
		OwnerLastName:  body.OwnerLastName,
		OwnerEmail:     body.OwnerEmail,
		OwnerPassword:  body.OwnerPassword,
	})
	if err != nil {
		return mapPracticeError(c, err)
	}

	return created(c, p)
}

// GET /api/v1/practice
func (h *PracticeHandler) Get(c fiber.Ctx) error {
	practiceID, valid := practiceIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	p, err := h.svc.GetByID(c.Context(), practiceID)
	if err != nil {
		return mapPracticeError(c, err)
	}

	return ok(c, p)
}

// POST /api/v1/practice/staff
func (h *PracticeHandler) AddStaff(c fiber.Ctx) error {
	practiceID, valid := practiceIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		FirstName     string  `json:"first_name"`
		LastName      string  `json:"last_name"`
		Email         string  `json:"email"`
		Password      string  `json:"password"`
		Role          string  `json:"role"`
		LicenseNumber *string `json:"license_number"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Email == "" || body.Password == "" {
		return badRequest(c, "email and password are required")
	}

	staff, err := h.svc.AddStaff(c.Context(), practiceID, practice.AddStaffRequest{
		FirstName:     body.FirstName,
		LastName:      body.LastName,
		Email:         body.Email,
		Password:      body.Password,
		Role:          body.Role,
		LicenseNumber: body.LicenseNumber,
	})
	if err != nil {
		return mapPracticeError(c, err)
	}

	return created(c, staff)
}

// GET /api/v1/practice/staff
func (h *PracticeHandler) ListStaff(c fiber.Ctx) error {
	practiceID, valid := practiceIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	staff, err := h.svc.ListStaff(c.Context(), practiceID)
	if err != nil {
		return mapPracticeError(c, err)
	}

	return ok(c, staff)
}

// DELETE /api/v1/practice/staff/:id
func (h *PracticeHandler) DeactivateStaff(c fiber.Ctx) error {
	practiceID, valid := practiceIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	staffID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid staff id")
	}

	if err := h.svc.DeactivateStaff(c.Context(), practiceID, staffID); err != nil {
		return mapPracticeError(c, err)
	}

	return noContent(c)
}
