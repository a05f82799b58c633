package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"

	"github.com/juniperhealth/juniper_backend/config"
	"github.com/juniperhealth/juniper_backend/internal/repo"
	entseries "github.com/juniperhealth/juniper_backend/internal/repo/appointmentseries"
	entconn "github.com/juniperhealth/juniper_backend/internal/repo/calendarconnection"
	entstaff "github.com/juniperhealth/juniper_backend/internal/repo/staffmember"
	"github.com/juniperhealth/juniper_backend/internal/service/calendar"
	"github.com/juniperhealth/juniper_backend/internal/service/extcal"
	"github.com/juniperhealth/juniper_backend/pkg/email"
)

// WorkerModule registers the NATS event workers and the cron jobs.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc          fx.Lifecycle
	NC          *nats.Conn
	DB          *repo.Client
	Cfg         *config.Config
	CalendarSvc calendar.Service
	Email       *email.Client
	Cron        *cron.Cron
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startMaterializeWorker(p.NC, p.DB, p.CalendarSvc, p.Cfg)
			startReconnectNoticeWorker(p.NC, p.DB, p.Email, p.Cfg)
			return registerMaterializeCron(p.Cron, p.CalendarSvc, p.Cfg)
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient, cron by ProvideCron
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// materialize_worker
// ---------------------------------------------------------------------------

// startMaterializeWorker persists occurrences for a series as soon as it is
// created or its recurrence edited, so the next calendar read already sees
// real rows instead of virtual occurrences.
func startMaterializeWorker(nc *nats.Conn, db *repo.Client, calSvc calendar.Service, cfg *config.Config) {
	subject := calendar.SubjectSeriesChanged + ".*"

	_, err := nc.Subscribe(subject, func(msg *nats.Msg) {
		seriesIDStr := strings.TrimSpace(string(msg.Data))
		seriesID, err := uuid.Parse(seriesIDStr)
		if err != nil {
			return
		}

		ctx := context.Background()

		sr, err := db.AppointmentSeries.Query().
			Where(entseries.ID(seriesID)).
			Only(ctx)
		if err != nil {
			slog.Warn("materialize_worker: series not found", "id", seriesIDStr, "err", err)
			return
		}

		count, err := calSvc.MaterializeSeries(ctx, sr.PracticeID, seriesID, cfg.Calendar.MaterializeHorizonDays)
		if err != nil {
			slog.Warn("materialize_worker: materialize failed", "series_id", seriesIDStr, "err", err)
			return
		}
		slog.Debug("materialize_worker: series materialized", "series_id", seriesIDStr, "count", count)
	})
	if err != nil {
		slog.Error("materialize_worker: subscribe failed", "err", err)
	}

	slog.Info("materialize_worker: started")
}

// ---------------------------------------------------------------------------
// reconnect_notice_worker
// ---------------------------------------------------------------------------

// startReconnectNoticeWorker emails a staff member when their external
// calendar connection stops refreshing, so busy blocks do not silently
// drift stale.
func startReconnectNoticeWorker(nc *nats.Conn, db *repo.Client, mail *email.Client, cfg *config.Config) {
	_, err := nc.Subscribe(extcal.SubjectConnectionDegraded, func(msg *nats.Msg) {
		connIDStr := strings.TrimSpace(string(msg.Data))
		connID, err := uuid.Parse(connIDStr)
		if err != nil {
			return
		}

		ctx := context.Background()

		conn, err := db.CalendarConnection.Query().
			Where(entconn.ID(connID)).
			Only(ctx)
		if err != nil {
			slog.Warn("reconnect_notice_worker: connection not found", "id", connIDStr, "err", err)
			return
		}

		staff, err := db.StaffMember.Query().
			Where(entstaff.ID(conn.StaffID)).
			Only(ctx)
		if err != nil {
			slog.Warn("reconnect_notice_worker: staff member not found", "id", conn.StaffID, "err", err)
			return
		}

		msgOut := email.BuildCalendarReconnectEmail(email.ReconnectNoticeData{
			FirstName:    staff.FirstName,
			Email:        staff.Email,
			AccountEmail: conn.AccountEmail,
			SettingsURL:  "https://" + cfg.Server.Domain + "/settings/integrations",
		})
		if err := mail.Send(ctx, msgOut); err != nil {
			slog.Warn("reconnect_notice_worker: send failed", "staff_id", staff.ID, "err", err)
			return
		}
		slog.Info("reconnect_notice_worker: reconnect notice sent", "staff_id", staff.ID)
	})
	if err != nil {
		slog.Error("reconnect_notice_worker: subscribe failed", "err", err)
	}

	slog.Info("reconnect_notice_worker: started")
}

// ---------------------------------------------------------------------------
// materialize_cron
// ---------------------------------------------------------------------------

// registerMaterializeCron keeps the persisted horizon rolling forward for
// every active series.
func registerMaterializeCron(c *cron.Cron, calSvc calendar.Service, cfg *config.Config) error {
	_, err := c.AddFunc(cfg.Calendar.MaterializeCron, func() {
		ctx := context.Background()
		if err := calSvc.MaterializeAllDue(ctx, cfg.Calendar.MaterializeHorizonDays); err != nil {
			slog.Error("materialize_cron: run failed", "err", err)
			return
		}
		slog.Debug("materialize_cron: run completed")
	})
	if err != nil {
		return err
	}

	slog.Info("materialize_cron: registered", "spec", cfg.Calendar.MaterializeCron)
	return nil
}
