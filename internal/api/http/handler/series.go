package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/juniperhealth/juniper_backend/internal/service/calendar"
)

type SeriesHandler struct {
	svc calendar.Service
}

func NewSeriesHandler(svc calendar.Service) *SeriesHandler {
	return &SeriesHandler{svc: svc}
}

// GET /api/v1/series
func (h *SeriesHandler) List(c fiber.Ctx) error {
	practiceID, valid := practiceIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	series, err := h.svc.ListSeries(c.Context(), practiceID)
	if err != nil {
		return mapCalendarError(c, err)
	}

	return ok(c, series)
}

// POST /api/v1/series
func (h *SeriesHandler) Create(c fiber.Ctx) error {
	practiceID, valid := practiceIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		StaffID           uuid.UUID  `json:"staff_id"`
		ClientID          uuid.UUID  `json:"client_id"`
		Title             string     `json:"title"`
		Rule              string     `json:"rule"`
		SeriesStartDate   string     `json:"series_start_date"`
		StartHour         int8       `json:"start_hour"`
		StartMinute       int8       `json:"start_minute"`
		DurationMinutes   int        `json:"duration_minutes"`
		Timezone          string     `json:"timezone"`
		UntilDate         *time.Time `json:"until_date"`
		GenerationCapDays *int       `json:"generation_cap_days"`
		CostEstimate      *int64     `json:"cost_estimate"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.StaffID == uuid.Nil || body.ClientID == uuid.Nil {
		return badRequest(c, "staff_id and client_id are required")
	}
	if body.Rule == "" {
		return badRequest(c, "rule is required")
	}

	startDate, err := time.Parse("2006-01-02", body.SeriesStartDate)
	if err != nil {
		return badRequest(c, "invalid series_start_date, expected YYYY-MM-DD")
	}

	series, err := h.svc.CreateSeries(c.Context(), practiceID, calendar.CreateSeriesRequest{
		StaffID:           body.StaffID,
		ClientID:          body.ClientID,
		Title:             body.Title,
		Rule:              body.Rule,
		SeriesStartDate:   startDate,
		StartHour:         body.StartHour,
		StartMinute:       body.StartMinute,
		DurationMinutes:   body.DurationMinutes,
		Timezone:          body.Timezone,
		UntilDate:         body.UntilDate,
		GenerationCapDays: body.GenerationCapDays,
		CostEstimate:      body.CostEstimate,
	})
	if err != nil {
		return mapCalendarError(c, err)
	}

	return created(c, series)
}

// PATCH /api/v1/series/:id
func (h *SeriesHandler) Update(c fiber.Ctx) error {
	practiceID, valid := practiceIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	seriesID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid series id")
	}

	var body struct {
		Title             *string    `json:"title"`
		Rule              *string    `json:"rule"`
		StartHour         *int8      `json:"start_hour"`
		StartMinute       *int8      `json:"start_minute"`
		DurationMinutes   *int       `json:"duration_minutes"`
		UntilDate         *time.Time `json:"until_date"`
		GenerationCapDays *int       `json:"generation_cap_days"`
		CostEstimate      *int64     `json:"cost_estimate"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	series, err := h.svc.UpdateSeries(c.Context(), practiceID, seriesID, calendar.UpdateSeriesRequest{
		Title:             body.Title,
		Rule:              body.Rule,
		StartHour:         body.StartHour,
		StartMinute:       body.StartMinute,
		DurationMinutes:   body.DurationMinutes,
		UntilDate:         body.UntilDate,
		GenerationCapDays: body.GenerationCapDays,
		CostEstimate:      body.CostEstimate,
	})
	if err != nil {
		return mapCalendarError(c, err)
	}

	return ok(c, series)
}

// DELETE /api/v1/series/:id
func (h *SeriesHandler) Deactivate(c fiber.Ctx) error {
	practiceID, valid := practiceIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	seriesID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid series id")
	}

	if err := h.svc.DeactivateSeries(c.Context(), practiceID, seriesID); err != nil {
		return mapCalendarError(c, err)
	}

	return noContent(c)
}

// POST /api/v1/series/:id/materialize
func (h *SeriesHandler) Materialize(c fiber.Ctx) error {
	practiceID, valid := practiceIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	seriesID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid series id")
	}

	horizonDays := fiber.Query(c, "horizon_days", 0)

	count, err := h.svc.MaterializeSeries(c.Context(), practiceID, seriesID, horizonDays)
	if err != nil {
		return mapCalendarError(c, err)
	}

	return ok(c, fiber.Map{"materialized": count})
}
