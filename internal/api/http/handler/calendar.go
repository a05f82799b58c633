package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/juniperhealth/juniper_backend/internal/service/calendar"
)

type CalendarHandler struct {
	svc calendar.Service
}

func NewCalendarHandler(svc calendar.Service) *CalendarHandler {
	return &CalendarHandler{svc: svc}
}

func mapCalendarError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, calendar.ErrSeriesNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, calendar.ErrPracticeNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, calendar.ErrInvalidRule):
		return badRequest(c, err.Error())
	case errors.Is(err, calendar.ErrInvalidTimezone):
		return badRequest(c, err.Error())
	case errors.Is(err, calendar.ErrInvalidWindow):
		return badRequest(c, err.Error())
	case errors.Is(err, calendar.ErrSeriesInactive):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /api/v1/calendar?start_date=&end_date=&timezone=
//
// Bounds pass through raw: the service interprets bare dates in the resolved
// timezone, which the handler does not know (it may be the practice default).
func (h *CalendarHandler) GetCalendar(c fiber.Ctx) error {
	practiceID, valid := practiceIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	q := calendar.Query{
		Start:    c.Query("start_date"),
		End:      c.Query("end_date"),
		Timezone: c.Query("timezone"),
	}

	events, err := h.svc.GetCalendar(c.Context(), practiceID, q)
	if err != nil {
		return mapCalendarError(c, err)
	}

	return ok(c, events)
}
