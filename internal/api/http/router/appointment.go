package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/juniperhealth/juniper_backend/internal/api/http/handler"
	"github.com/juniperhealth/juniper_backend/pkg/authorize"
)

func (r *Router) registerAppointmentRoutes(
	api fiber.Router,
	h *handler.AppointmentHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	group := api.Group("/appointments", authRequired)

	group.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionList), h.List)
	group.Get("/:id", requirePerm(authorize.ResourceAppointment, authorize.ActionRead), h.Get)
	group.Post("/", requirePerm(authorize.ResourceAppointment, authorize.ActionCreate), h.Book)
	group.Post("/:id/cancel", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), h.Cancel)
	group.Post("/:id/complete", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), h.Complete)
}
