package bootstrap

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/muhammadchandra19/candlecache/pkg/httplib/healthcheck"
	"github.com/muhammadchandra19/candlecache/services/candle-cache/internal/rest"
)

// Rest holds the HTTP handlers of the candle cache service.
type Rest struct {
	BarsHandler     *rest.BarsHandler
	AdminHandler    *rest.AdminHandler
	SettingsHandler *rest.SettingsHandler
	Router          http.Handler
}

// registerRest registers the HTTP handlers.
func (b *Bootstrap) registerRest() {
	validate := validator.New()

	b.Rest.BarsHandler = rest.NewBarsHandler(b.Usecase.CandleUsecase, validate, b.Logger)
	b.Rest.AdminHandler = rest.NewAdminHandler(b.Usecase.AdminUsecase, b.Logger)
	b.Rest.SettingsHandler = rest.NewSettingsHandler(b.Usecase.SettingsUsecase, validate, b.Logger)

	health := healthcheck.HealthCheck{
		Probes: map[string]healthcheck.Probe{
			"redis": b.Redis.Ping,
		},
	}
	if b.QuestDB != nil {
		health.Probes["questdb"] = b.QuestDB.Ping
	}

	b.Rest.Router = rest.NewRouter(b.Rest.BarsHandler, b.Rest.AdminHandler, b.Rest.SettingsHandler, health, b.Logger)
}
