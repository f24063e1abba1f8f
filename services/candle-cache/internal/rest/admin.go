package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/muhammadchandra19/candlecache/pkg/logger"
	"github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/admin"
	barv1 "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/bar/v1"
)

// AdminHandler serves the /admin/partitions, /admin/cache and /admin/counters routes.
type AdminHandler struct {
	usecase admin.Usecase
	logger  logger.Interface
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(usecase admin.Usecase, logger logger.Interface) *AdminHandler {
	return &AdminHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// queryInt reads an optional integer query parameter; absent means zero.
func queryInt(r *http.Request, name string) (int, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, badRequest(name, "must be a positive integer")
	}
	return n, nil
}

func partitionFilter(r *http.Request) (barv1.PartitionFilter, error) {
	year, err := queryInt(r, "year")
	if err != nil {
		return barv1.PartitionFilter{}, err
	}
	month, err := queryInt(r, "month")
	if err != nil {
		return barv1.PartitionFilter{}, err
	}
	return barv1.PartitionFilter{
		Year:      year,
		Month:     time.Month(month),
		Timeframe: r.URL.Query().Get("timeframe"),
	}, nil
}

func cacheKeyFilter(r *http.Request) (barv1.CacheKeyFilter, error) {
	week, err := queryInt(r, "week")
	if err != nil {
		return barv1.CacheKeyFilter{}, err
	}
	year, err := queryInt(r, "year")
	if err != nil {
		return barv1.CacheKeyFilter{}, err
	}
	return barv1.CacheKeyFilter{
		Symbol:    r.URL.Query().Get("symbol"),
		Timeframe: r.URL.Query().Get("timeframe"),
		Week:      week,
		Year:      year,
	}, nil
}

func (h *AdminHandler) PartitionStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.usecase.PartitionStats(r.Context(), r.PathValue("symbol"))
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}
	writeSuccess(w, stats)
}

func (h *AdminHandler) ListPartitions(w http.ResponseWriter, r *http.Request) {
	keys, err := h.usecase.ListPartitions(r.Context(), r.PathValue("symbol"))
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}
	if keys == nil {
		keys = []barv1.PartitionKey{}
	}
	writeSuccess(w, keys)
}

func (h *AdminHandler) DeletePartitions(w http.ResponseWriter, r *http.Request) {
	filter, err := partitionFilter(r)
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	deleted, err := h.usecase.DeletePartitions(r.Context(), r.PathValue("symbol"), filter)
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}
	if deleted == nil {
		deleted = []barv1.PartitionKey{}
	}
	writeSuccess(w, map[string]any{"deleted": deleted})
}

func (h *AdminHandler) DeleteAllPartitions(w http.ResponseWriter, r *http.Request) {
	n, err := h.usecase.DeleteAllPartitions(r.Context())
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}
	writeSuccess(w, map[string]any{"symbols": n})
}

func (h *AdminHandler) ListCacheKeys(w http.ResponseWriter, r *http.Request) {
	filter, err := cacheKeyFilter(r)
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	keys, err := h.usecase.ListCacheKeys(r.Context(), filter)
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}
	writeSuccess(w, keys)
}

func (h *AdminHandler) DeleteCacheKeys(w http.ResponseWriter, r *http.Request) {
	filter, err := cacheKeyFilter(r)
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	n, err := h.usecase.DeleteCacheKeys(r.Context(), filter)
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}
	writeSuccess(w, map[string]any{"deleted": n})
}

func (h *AdminHandler) CacheInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.usecase.CacheInfo(r.Context())
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}
	writeSuccess(w, info)
}

func (h *AdminHandler) Counters(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, h.usecase.Counters())
}

func (h *AdminHandler) ResetCounters(w http.ResponseWriter, r *http.Request) {
	h.usecase.ResetCounters()
	writeSuccess(w, h.usecase.Counters())
}
