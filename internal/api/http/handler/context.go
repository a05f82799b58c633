package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	pasetotoken "github.com/juniperhealth/juniper_backend/pkg/paseto"
)

// practiceIDFromClaims resolves the tenant for the request. Every protected
// route is scoped to the practice baked into the access token.
func practiceIDFromClaims(c fiber.Ctx) (uuid.UUID, bool) {
	claims, ok := pasetotoken.ClaimsFromFiber(c)
	if !ok || claims.PracticeID == uuid.Nil {
		return uuid.Nil, false
	}
	return claims.PracticeID, true
}

func staffIDFromClaims(c fiber.Ctx) (uuid.UUID, bool) {
	claims, ok := pasetotoken.ClaimsFromFiber(c)
	if !ok || claims.StaffID == uuid.Nil {
		return uuid.Nil, false
	}
	return claims.StaffID, true
}

func parseUUIDParam(c fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}
