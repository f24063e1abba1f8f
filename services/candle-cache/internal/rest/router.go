package rest

import (
	"net/http"

	"github.com/muhammadchandra19/candlecache/pkg/httplib/healthcheck"
	"github.com/muhammadchandra19/candlecache/pkg/logger"
)

// NewRouter wires every route behind the request id, access log and health check middlewares.
func NewRouter(
	bars *BarsHandler,
	admin *AdminHandler,
	settings *SettingsHandler,
	health healthcheck.HealthCheck,
	log logger.Interface,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/bars", bars.GetBars)

	mux.HandleFunc("GET /admin/partitions/{symbol}/stats", admin.PartitionStats)
	mux.HandleFunc("GET /admin/partitions/{symbol}", admin.ListPartitions)
	mux.HandleFunc("DELETE /admin/partitions/{symbol}", admin.DeletePartitions)
	mux.HandleFunc("DELETE /admin/partitions", admin.DeleteAllPartitions)

	mux.HandleFunc("GET /admin/cache/keys", admin.ListCacheKeys)
	mux.HandleFunc("DELETE /admin/cache/keys", admin.DeleteCacheKeys)
	mux.HandleFunc("GET /admin/cache/info", admin.CacheInfo)

	mux.HandleFunc("GET /admin/counters", admin.Counters)
	mux.HandleFunc("DELETE /admin/counters", admin.ResetCounters)

	mux.HandleFunc("GET /admin/settings", settings.GetSettings)
	mux.HandleFunc("PUT /admin/settings/{key}", settings.SetSetting)

	return RequestID(health.Handler(AccessLog(log)(mux)))
}
