package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/juniperhealth/juniper_backend/internal/service/client"
)

type ClientHandler struct {
	svc client.Service
}

func NewClientHandler(svc client.Service) *ClientHandler {
	return &ClientHandler{svc: svc}
}

func mapClientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, client.ErrNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /api/v1/clients
func (h *ClientHandler) List(c fiber.Ctx) error {
	practiceID, valid := practiceIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	req := client.ListRequest{
		Page:    fiber.Query(c, "page", 1),
		PerPage: fiber.Query(c, "per_page", 20),
	}
	if s := c.Query("search"); s != "" {
		req.Search = &s
	}
	if a := c.Query("active"); a != "" {
		active, err := strconv.ParseBool(a)
		if err != nil {
			return badRequest(c, "invalid active value")
		}
		req.Active = &active
	}

	result, err := h.svc.List(c.Context(), practiceID, req)
	if err != nil {
		return mapClientError(c, err)
	}

	return ok(c, result)
}

// GET /api/v1/clients/:id
func (h *ClientHandler) Get(c fiber.Ctx) error {
	practiceID, valid := practiceIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	clientID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid client id")
	}

	profile, err := h.svc.GetByID(c.Context(), practiceID, clientID)
	if err != nil {
		return mapClientError(c, err)
	}

	return ok(c, profile)
}

// POST /api/v1/clients
func (h *ClientHandler) Create(c fiber.Ctx) error {
	practiceID, valid := practiceIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		FirstName string  `json:"first_name"`
		LastName  string  `json:"last_name"`
		Email     *string `json:"email"`
		Phone     *string `json:"phone"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.FirstName == "" || body.LastName == "" {
		return badRequest(c, "first_name and last_name are required")
	}

	profile, err := h.svc.Create(c.Context(), practiceID, client.CreateRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Phone:     body.Phone,
	})
	if err != nil {
		return mapClientError(c, err)
	}

	return created(c, profile)
}

// PATCH /api/v1/clients/:id
func (h *ClientHandler) Update(c fiber.Ctx) error {
	practiceID, valid := practiceIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	clientID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid client id")
	}

	var body struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Email     *string `json:"email"`
		Phone     *string `json:"phone"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	profile, err := h.svc.Update(c.Context(), practiceID, clientID, client.UpdateRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Phone:     body.Phone,
	})
	if err != nil {
		return mapClientError(c, err)
	}

	return ok(c, profile)
}

// DELETE /api/v1/clients/:id
func (h *ClientHandler) Deactivate(c fiber.Ctx) error {
	practiceID, valid := practiceIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	clientID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid client id")
	}

	if err := h.svc.Deactivate(c.Context(), practiceID, clientID); err != nil {
		return mapClientError(c, err)
	}

	return noContent(c)
}
