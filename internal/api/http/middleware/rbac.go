package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/juniperhealth/juniper_backend/pkg/authorize"
	pasetotoken "github.com/juniperhealth/juniper_backend/pkg/paseto"
)

// RequirePermission checks if the authenticated staff member has the given
// permission in their practice domain. The practice comes from the token
// claims, so tenant scoping needs no extra header or lookup.
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		domain := authorize.DomainSys
		if claims.PracticeID != uuid.Nil {
			domain = authorize.PracticeDomain(claims.PracticeID.String())
		}

		subject := authorize.GroupSubject(claims.StaffID.String())
		if err := auth.MustEnforce(c.Context(), subject, domain, resource, action); err != nil {
			if err == authorize.ErrForbidden {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}
