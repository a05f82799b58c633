package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/juniperhealth/juniper_backend/config"
	"github.com/juniperhealth/juniper_backend/internal/service/extcal"
	"github.com/juniperhealth/juniper_backend/pkg/crypto"
)

// Google push notification headers.
const (
	headerChannelID     = "X-Goog-Channel-ID"
	headerResourceID    = "X-Goog-Resource-ID"
	headerResourceState = "X-Goog-Resource-State"
)

type IntegrationHandler struct {
	svc extcal.Service
	cfg *config.Config
}

func NewIntegrationHandler(svc extcal.Service, cfg *config.Config) *IntegrationHandler {
	return &IntegrationHandler{svc: svc, cfg: cfg}
}

// POST /api/v1/integrations/calendar/webhook  (public, called by the provider)
//
// The provider retries on any non-2xx, so the handler answers 200 even when a
// sync pass fails internally. The only exceptions: 400 for a request missing
// the channel header and 404 for a channel we no longer track, which tells
// the provider to stop delivering to it.
func (h *IntegrationHandler) Webhook(c fiber.Ctx) error {
	channelID := c.Get(headerChannelID)
	if channelID == "" {
		return badRequest(c, "missing channel id header")
	}

	n := extcal.Notification{
		ChannelID:     channelID,
		ResourceID:    c.Get(headerResourceID),
		ResourceState: c.Get(headerResourceState),
	}

	if err := h.svc.HandleNotification(c.Context(), n); err != nil {
		if errors.Is(err, extcal.ErrChannelNotFound) {
			return notFound(c, "unknown channel")
		}
		// Acked anyway so the provider does not retry-storm, but the
		// failure must leave a trace for operators.
		slog.Error("integration: calendar sync failed",
			"channel_id", channelID,
			"resource_state", n.ResourceState,
			"err", err,
		)
		return c.SendStatus(fiber.StatusOK)
	}

	return c.SendStatus(fiber.StatusOK)
}

// POST /api/v1/integrations/calendar/connect
func (h *IntegrationHandler) Connect(c fiber.Ctx) error {
	practiceID, valid := practiceIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}
	staffID, valid := staffIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		StaffID      *uuid.UUID `json:"staff_id"`
		AccountEmail string     `json:"account_email"`
		RefreshToken string     `json:"refresh_token"`
		CalendarID   string     `json:"calendar_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.AccountEmail == "" || body.RefreshToken == "" {
		return badRequest(c, "account_email and refresh_token are required")
	}

	// Admins may connect on behalf of another staff member.
	if body.StaffID != nil && *body.StaffID != uuid.Nil {
		staffID = *body.StaffID
	}

	// The refresh token never touches the database in the clear.
	key, err := crypto.KeyFromHex(h.cfg.Authentication.EncryptionKey)
	if err != nil {
		return internalError(c)
	}
	tokenEnc, err := crypto.Encrypt(key, body.RefreshToken)
	if err != nil {
		return internalError(c)
	}

	conn, err := h.svc.Connect(c.Context(), practiceID, extcal.ConnectRequest{
		StaffID:         staffID,
		AccountEmail:    body.AccountEmail,
		RefreshTokenEnc: tokenEnc,
		CalendarID:      body.CalendarID,
	})
	if err != nil {
		return mapIntegrationError(c, err)
	}

	return created(c, fiber.Map{
		"id":            conn.ID,
		"staff_id":      conn.StaffID,
		"provider":      conn.Provider,
		"account_email": conn.AccountEmail,
		"status":        conn.Status,
	})
}

// DELETE /api/v1/integrations/calendar/connections/:staff_id
func (h *IntegrationHandler) Disconnect(c fiber.Ctx) error {
	practiceID, valid := practiceIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	staffID, err := parseUUIDParam(c, "staff_id")
	if err != nil {
		return badRequest(c, "invalid staff id")
	}

	if err := h.svc.Disconnect(c.Context(), practiceID, staffID); err != nil {
		return mapIntegrationError(c, err)
	}

	return noContent(c)
}

func mapIntegrationError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, extcal.ErrConnectionNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, extcal.ErrChannelNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, extcal.ErrProviderAPI):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, extcal.ErrTokenRefresh):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	default:
		return internalError(c)
	}
}
