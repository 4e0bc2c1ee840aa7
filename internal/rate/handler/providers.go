package handler

import (
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/wgopar/usd-conversions-agent/internal/domain"
)

const (
	defaultAttemptsLimit = 20
	maxAttemptsLimit     = 500
)

type ProviderStatusResponse struct {
	Providers []domain.ProviderStatus `json:"providers"`
}

type ProviderAttemptsResponse struct {
	Attempts []domain.ProviderAttempt `json:"attempts"`
}

// GetProviderStatus godoc
// @Summary Provider health
// @Description Latest background probe result for each rates provider
// @Tags Providers
// @Produce json
// @Success 200 {object} ProviderStatusResponse
// @Router /api/v1/providers/status [get]
func (h *Handler) GetProviderStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, ProviderStatusResponse{Providers: h.statuses.Snapshot()})
}

// GetProviderAttempts godoc
// @Summary Recent provider attempts
// @Description Audited provider calls, newest first. Available only with a database configured.
// @Tags Providers
// @Produce json
// @Param limit query int false "Max attempts to return (1-500)" default(20)
// @Success 200 {object} ProviderAttemptsResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse "audit disabled"
// @Failure 500 {object} errorResponse
// @Router /api/v1/providers/attempts [get]
func (h *Handler) GetProviderAttempts(w http.ResponseWriter, r *http.Request) {
	if h.attempts == nil {
		writeError(w, http.StatusNotFound, "provider attempt audit is disabled")
		return
	}

	limit := defaultAttemptsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxAttemptsLimit {
			writeError(w, http.StatusBadRequest, "limit must be an integer between 1 and 500")
			return
		}
		limit = n
	}

	attempts, err := h.attempts.ListRecent(r.Context(), limit)
	if err != nil {
		msg := "ups, couldn't list provider attempts this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetProviderAttempts", "limit": limit}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	writeJSON(w, http.StatusOK, ProviderAttemptsResponse{Attempts: attempts})
}
