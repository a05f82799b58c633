package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/juniperhealth/juniper_backend/config"
	"github.com/juniperhealth/juniper_backend/internal/api/http/handler"
	"github.com/juniperhealth/juniper_backend/internal/api/http/middleware"
	"github.com/juniperhealth/juniper_backend/internal/service/appointment"
	"github.com/juniperhealth/juniper_backend/internal/service/auth"
	"github.com/juniperhealth/juniper_backend/internal/service/calendar"
	"github.com/juniperhealth/juniper_backend/internal/service/client"
	"github.com/juniperhealth/juniper_backend/internal/service/extcal"
	"github.com/juniperhealth/juniper_backend/internal/service/practice"
	"github.com/juniperhealth/juniper_backend/pkg/authorize"
	pasetotoken "github.com/juniperhealth/juniper_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg            *config.Config
	Redis          *redis.Client
	Auth           authorize.IAuthorization
	AuthSvc        auth.Service
	PracticeSvc    practice.Service
	ClientSvc      client.Service
	CalendarSvc    calendar.Service
	AppointmentSvc appointment.Service
	ExtCalSvc      extcal.Service
	PasetoMgr      *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)

	// Permission helper
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	practiceH := handler.NewPracticeHandler(r.p.PracticeSvc)
	clientH := handler.NewClientHandler(r.p.ClientSvc)
	calendarH := handler.NewCalendarHandler(r.p.CalendarSvc)
	seriesH := handler.NewSeriesHandler(r.p.CalendarSvc)
	appointmentH := handler.NewAppointmentHandler(r.p.AppointmentSvc)
	integrationH := handler.NewIntegrationHandler(r.p.ExtCalSvc, r.p.Cfg)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerPracticeRoutes(api, practiceH, authRequired, requirePerm)
	r.registerClientRoutes(api, clientH, authRequired, requirePerm)
	r.registerCalendarRoutes(api, calendarH, seriesH, authRequired, requirePerm)
	r.registerAppointmentRoutes(api, appointmentH, authRequired, requirePerm)
	r.registerIntegrationRoutes(api, integrationH, authRequired, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
