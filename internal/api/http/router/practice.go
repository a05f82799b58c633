package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/juniperhealth/juniper_backend/internal/api/http/handler"
	"github.com/juniperhealth/juniper_backend/pkg/authorize"
)

func (r *Router) registerPracticeRoutes(
	api fiber.Router,
	h *handler.PracticeHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	// Public: practice signup creates the tenant and its founding owner
	api.Post("/practices", h.Create)

	group := api.Group("/practice", authRequired)
	group.Get("/", requirePerm(authorize.ResourcePractice, authorize.ActionRead), h.Get)

	group.Get("/staff", requirePerm(authorize.ResourceStaffMember, authorize.ActionList), h.ListStaff)
	group.Post("/staff", requirePerm(authorize.ResourceStaffMember, authorize.ActionCreate), h.AddStaff)
	group.Delete("/staff/:id", requirePerm(authorize.ResourceStaffMember, authorize.ActionDelete), h.DeactivateStaff)
}
