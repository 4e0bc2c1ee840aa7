package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/wgopar/usd-conversions-agent/internal/domain"
	"github.com/wgopar/usd-conversions-agent/internal/rate"
)

type RatesService interface {
	Latest(ctx context.Context) (rate.View, error)
}

type SummaryService interface {
	Available() bool
	Generate(ctx context.Context, rates []domain.RateEntry, focus string, tone domain.Tone) (domain.MarketSummary, error)
}

type StatusSource interface {
	Snapshot() []domain.ProviderStatus
}

type AttemptLister interface {
	ListRecent(ctx context.Context, limit int) ([]domain.ProviderAttempt, error)
}

type Handler struct {
	rates     RatesService
	summaries SummaryService
	statuses  StatusSource
	attempts  AttemptLister
	manifest  Manifest
}

// NewHandler wires the HTTP surface. attempts may be nil when the audit store is disabled.
func NewHandler(rates RatesService, summaries SummaryService, statuses StatusSource, attempts AttemptLister, manifest Manifest) *Handler {
	return &Handler{
		rates:     rates,
		summaries: summaries,
		statuses:  statuses,
		attempts:  attempts,
		manifest:  manifest,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{Error: errorMsg})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// writeDomainError maps service errors onto HTTP statuses. Upstream failures keep their
// message so callers can see which provider broke.
func writeDomainError(w http.ResponseWriter, err error, handlerName string) {
	switch {
	case errors.Is(err, domain.ErrFocusTooLong), errors.Is(err, domain.ErrUnknownTone):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrAllProvidersFailed):
		logrus.WithError(err).WithField("handler", handlerName).Warn("no rates provider available")
		writeError(w, http.StatusBadGateway, err.Error())
	case errors.Is(err, domain.ErrGeneratorUnavailable):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, domain.ErrGeneratorEmptyResponse), errors.Is(err, domain.ErrTransport):
		logrus.WithError(err).WithField("handler", handlerName).Warn("upstream call failed")
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		msg := "ups, something went wrong this time"
		logrus.WithError(err).WithField("handler", handlerName).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
	}
}
