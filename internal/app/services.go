package app

import (
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/juniperhealth/juniper_backend/config"
	"github.com/juniperhealth/juniper_backend/internal/repo"
	"github.com/juniperhealth/juniper_backend/internal/service/appointment"
	"github.com/juniperhealth/juniper_backend/internal/service/auth"
	"github.com/juniperhealth/juniper_backend/internal/service/calendar"
	"github.com/juniperhealth/juniper_backend/internal/service/client"
	"github.com/juniperhealth/juniper_backend/internal/service/extcal"
	"github.com/juniperhealth/juniper_backend/internal/service/practice"
	"github.com/juniperhealth/juniper_backend/pkg/authorize"
	pasetotoken "github.com/juniperhealth/juniper_backend/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuthService,
		ProvidePracticeService,
		ProvideClientService,
		ProvideCalendarService,
		ProvideAppointmentService,
		ProvideExtCalService,
		ProvidePasetoManager,
	),
)

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, paseto, cfg)
}

func ProvidePracticeService(db *repo.Client, auth authorize.IAuthorization) practice.Service {
	return practice.New(db, auth)
}

func ProvideClientService(db *repo.Client) client.Service {
	return client.New(db)
}

func ProvideCalendarService(db *repo.Client, nc *nats.Conn, cfg *config.Config) calendar.Service {
	return calendar.New(db, nc, cfg)
}

func ProvideAppointmentService(db *repo.Client) appointment.Service {
	return appointment.New(db)
}

func ProvideExtCalService(db *repo.Client, nc *nats.Conn, cfg *config.Config) (extcal.Service, error) {
	tokens, err := extcal.NewOAuthTokenSource(cfg)
	if err != nil {
		return nil, err
	}
	store := extcal.NewStore(db)
	provider := extcal.NewGoogleProvider(cfg.Calendar)
	return extcal.New(store, provider, tokens, nc, cfg), nil
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
