package rest

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/muhammadchandra19/candlecache/pkg/logger"
	"github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/settings"
)

type settingRequest struct {
	Value string `json:"value" validate:"required"`
}

// SettingsHandler serves GET /admin/settings and PUT /admin/settings/{key}.
type SettingsHandler struct {
	usecase  settings.Usecase
	validate *validator.Validate
	logger   logger.Interface
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(usecase settings.Usecase, validate *validator.Validate, logger logger.Interface) *SettingsHandler {
	return &SettingsHandler{
		usecase:  usecase,
		validate: validate,
		logger:   logger,
	}
}

func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, h.usecase.Snapshot())
}

func (h *SettingsHandler) SetSetting(w http.ResponseWriter, r *http.Request) {
	var req settingRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<12)).Decode(&req); err != nil {
		writeError(r.Context(), w, h.logger, badRequest("body", "must be a JSON object with a string value"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(r.Context(), w, h.logger, validationError(err))
		return
	}

	if err := h.usecase.Set(r.Context(), r.PathValue("key"), req.Value); err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}
	writeSuccess(w, h.usecase.Snapshot())
}
