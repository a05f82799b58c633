package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/juniperhealth/juniper_backend/internal/api/http/handler"
	"github.com/juniperhealth/juniper_backend/pkg/authorize"
)

func (r *Router) registerClientRoutes(
	api fiber.Router,
	h *handler.ClientHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	group := api.Group("/clients", authRequired)

	group.Get("/", requirePerm(authorize.ResourceClientProfile, authorize.ActionList), h.List)
	group.Get("/:id", requirePerm(authorize.ResourceClientProfile, authorize.ActionRead), h.Get)
	group.Post("/", requirePerm(authorize.ResourceClientProfile, authorize.ActionCreate), h.Create)
	group.Patch("/:id", requirePerm(authorize.ResourceClientProfile, authorize.ActionUpdate), h.Update)
	group.Delete("/:id", requirePerm(authorize.ResourceClientProfile, authorize.ActionDelete), h.Deactivate)
}
