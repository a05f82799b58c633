package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/juniperhealth/juniper_backend/internal/service/appointment"
)

type AppointmentHandler struct {
	svc appointment.Service
}

func NewAppointmentHandler(svc appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

// parseTimeFilter accepts RFC3339 or a bare UTC date for row filters.
func parseTimeFilter(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, appointment.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrInvalidTimeRange):
		return badRequest(c, err.Error())
	case errors.Is(err, appointment.ErrOverlapping):
		return conflict(c, err.Error())
	case errors.Is(err, appointment.ErrStaffBusy):
		return conflict(c, err.Error())
	case errors.Is(err, appointment.ErrAlreadyCompleted):
		return conflict(c, err.Error())
	case errors.Is(err, appointment.ErrAlreadyCancelled):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /api/v1/appointments
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	practiceID, valid := practiceIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	req := appointment.ListRequest{
		Page:    fiber.Query(c, "page", 1),
		PerPage: fiber.Query(c, "per_page", 50),
	}

	if s := c.Query("staff_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return badRequest(c, "invalid staff_id")
		}
		req.StaffID = &id
	}
	if s := c.Query("client_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return badRequest(c, "invalid client_id")
		}
		req.ClientID = &id
	}
	if s := c.Query("status"); s != "" {
		req.Status = &s
	}
	if s := c.Query("from"); s != "" {
		t, err := parseTimeFilter(s)
		if err != nil {
			return badRequest(c, "invalid from")
		}
		req.From = &t
	}
	if s := c.Query("to"); s != "" {
		t, err := parseTimeFilter(s)
		if err != nil {
			return badRequest(c, "invalid to")
		}
		req.To = &t
	}

	appts, err := h.svc.List(c.Context(), practiceID, req)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appts)
}

// GET /api/v1/appointments/:id
func (h *AppointmentHandler) Get(c fiber.Ctx) error {
	practiceID, valid := practiceIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.GetByID(c.Context(), practiceID, apptID)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// POST /api/v1/appointments
func (h *AppointmentHandler) Book(c fiber.Ctx) error {
	practiceID, valid := practiceIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		StaffID   uuid.UUID `json:"staff_id"`
		ClientID  uuid.UUID `json:"client_id"`
		Title     string    `json:"title"`
		StartTime time.Time `json:"start_time"`
		EndTime   time.Time `json:"end_time"`
		Cost      int64     `json:"cost"`
		Notes     *string   `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.StaffID == uuid.Nil || body.ClientID == uuid.Nil {
		return badRequest(c, "staff_id and client_id are required")
	}

	appt, err := h.svc.Book(c.Context(), practiceID, appointment.BookRequest{
		StaffID:   body.StaffID,
		ClientID:  body.ClientID,
		Title:     body.Title,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		Cost:      body.Cost,
		Notes:     body.Notes,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return created(c, appt)
}

// POST /api/v1/appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c fiber.Ctx) error {
	practiceID, valid := practiceIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Reason *string `json:"reason"`
	}
	// Body is optional on cancel
	_ = c.Bind().JSON(&body)

	if err := h.svc.Cancel(c.Context(), practiceID, apptID, appointment.CancelRequest{
		Reason: body.Reason,
	}); err != nil {
		return mapAppointmentError(c, err)
	}

	return noContent(c)
}

// POST /api/v1/appointments/:id/complete
func (h *AppointmentHandler) Complete(c fiber.Ctx) error {
	practiceID, valid := practiceIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.Complete(c.Context(), practiceID, apptID); err != nil {
		return mapAppointmentError(c, err)
	}

	return noContent(c)
}
