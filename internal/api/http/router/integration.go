package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/juniperhealth/juniper_backend/internal/api/http/handler"
	"github.com/juniperhealth/juniper_backend/pkg/authorize"
)

func (r *Router) registerIntegrationRoutes(
	api fiber.Router,
	h *handler.IntegrationHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	group := api.Group("/integrations/calendar")

	// Public: provider push notifications carry no bearer token
	group.Post("/webhook", h.Webhook)

	group.Post("/connect", authRequired,
		requirePerm(authorize.ResourceCalendarConnection, authorize.ActionCreate), h.Connect)
	group.Delete("/connections/:staff_id", authRequired,
		requirePerm(authorize.ResourceCalendarConnection, authorize.ActionDelete), h.Disconnect)
}
