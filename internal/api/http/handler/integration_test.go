package handler

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/juniperhealth/juniper_backend/config"
	"github.com/juniperhealth/juniper_backend/internal/service/extcal"
)

// stubExtCalService lets each test pick what HandleNotification returns.
type stubExtCalService struct {
	notifyErr error
	notified  []extcal.Notification
}

func (s *stubExtCalService) HandleNotification(_ context.Context, n extcal.Notification) error {
	s.notified = append(s.notified, n)
	return s.notifyErr
}

func (s *stubExtCalService) Connect(context.Context, uuid.UUID, extcal.ConnectRequest) (extcal.Connection, error) {
	return extcal.Connection{}, nil
}

func (s *stubExtCalService) Disconnect(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

func webhookApp(svc extcal.Service) *fiber.App {
	h := NewIntegrationHandler(svc, &config.Config{})
	app := fiber.New()
	app.Post("/webhook", h.Webhook)
	return app
}

// captureLogs swaps the default logger for one writing into a buffer and
// restores it when the test finishes.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestWebhook_MissingChannelHeader(t *testing.T) {
	app := webhookApp(&stubExtCalService{})

	req := httptest.NewRequest("POST", "/webhook", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", res.StatusCode)
	}
}

func TestWebhook_UnknownChannel(t *testing.T) {
	app := webhookApp(&stubExtCalService{notifyErr: extcal.ErrChannelNotFound})

	req := httptest.NewRequest("POST", "/webhook", nil)
	req.Header.Set(headerChannelID, "chan-gone")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404", res.StatusCode)
	}
}

func TestWebhook_SyncFailureIsAckedAndLogged(t *testing.T) {
	buf := captureLogs(t)
	app := webhookApp(&stubExtCalService{notifyErr: errors.New("provider exploded")})

	req := httptest.NewRequest("POST", "/webhook", nil)
	req.Header.Set(headerChannelID, "chan-1")
	req.Header.Set(headerResourceState, "exists")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	// Still acked, so the provider does not retry.
	if res.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", res.StatusCode)
	}
	// But the failure must be visible to operators.
	logged := buf.String()
	if !strings.Contains(logged, "chan-1") || !strings.Contains(logged, "provider exploded") {
		t.Errorf("sync failure not logged, got: %q", logged)
	}
}

func TestWebhook_Success(t *testing.T) {
	buf := captureLogs(t)
	svc := &stubExtCalService{}
	app := webhookApp(svc)

	req := httptest.NewRequest("POST", "/webhook", nil)
	req.Header.Set(headerChannelID, "chan-1")
	req.Header.Set(headerResourceID, "res-1")
	req.Header.Set(headerResourceState, "exists")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if res.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", res.StatusCode)
	}
	if len(svc.notified) != 1 || svc.notified[0].ChannelID != "chan-1" {
		t.Errorf("service not invoked with the channel, got %+v", svc.notified)
	}
	if strings.Contains(buf.String(), "ERROR") {
		t.Errorf("unexpected error log on success: %q", buf.String())
	}
}
