package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/juniperhealth/juniper_backend/internal/api/http/handler"
	"github.com/juniperhealth/juniper_backend/pkg/authorize"
)

func (r *Router) registerCalendarRoutes(
	api fiber.Router,
	ch *handler.CalendarHandler,
	sh *handler.SeriesHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	// Unified calendar read: persisted appointments, virtual occurrences
	// and external busy blocks merged into one sorted list.
	api.Get("/calendar", authRequired, requirePerm(authorize.ResourceCalendar, authorize.ActionRead), ch.GetCalendar)

	series := api.Group("/series", authRequired)
	series.Get("/", requirePerm(authorize.ResourceAppointmentSeries, authorize.ActionList), sh.List)
	series.Post("/", requirePerm(authorize.ResourceAppointmentSeries, authorize.ActionCreate), sh.Create)
	series.Patch("/:id", requirePerm(authorize.ResourceAppointmentSeries, authorize.ActionUpdate), sh.Update)
	series.Delete("/:id", requirePerm(authorize.ResourceAppointmentSeries, authorize.ActionDelete), sh.Deactivate)
	series.Post("/:id/materialize", requirePerm(authorize.ResourceAppointmentSeries, authorize.ActionExecute), sh.Materialize)
}
