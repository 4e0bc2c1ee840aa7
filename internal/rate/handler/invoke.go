package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/wgopar/usd-conversions-agent/internal/domain"
	"github.com/wgopar/usd-conversions-agent/internal/rate"
)

const maxInvokeBodyBytes = 4 << 10

type RatesOutput struct {
	Base      string             `json:"base" example:"USD"`
	Rates     []domain.RateEntry `json:"rates"`
	UpdatedAt string             `json:"updatedAt" example:"Fri, 17 Oct 2025 00:02:31 +0000"`
	Provider  string             `json:"provider" example:"open.er-api.com"`
}

type RatesInvokeResponse struct {
	Output RatesOutput `json:"output"`
}

type SummaryInput struct {
	Focus string `json:"focus,omitempty" example:"JPY volatility"`
	Tone  string `json:"tone,omitempty" enums:"neutral,optimistic,cautious" example:"neutral"`
}

type SummaryInvokeRequest struct {
	Input SummaryInput `json:"input"`
}

type SummaryOutput struct {
	Base         string             `json:"base" example:"USD"`
	Rates        []domain.RateEntry `json:"rates"`
	UpdatedAt    string             `json:"updatedAt" example:"2025-10-17"`
	Summary      string             `json:"summary" example:"The dollar is broadly steady against majors."`
	Highlights   []string           `json:"highlights"`
	DataProvider string             `json:"dataProvider" example:"open.er-api.com"`
}

type SummaryInvokeResponse struct {
	Output SummaryOutput `json:"output"`
}

func ratesOutput(v rate.View) RatesOutput {
	return RatesOutput{
		Base:      v.Base.String(),
		Rates:     v.Rates,
		UpdatedAt: v.UpdatedAt,
		Provider:  v.Provider,
	}
}

// InvokeRates godoc
// @Summary Invoke the fx-rates entrypoint
// @Description Live USD rates for EUR, CNY, JPY, GBP and AUD. The input object is optional.
// @Tags Entrypoints
// @Accept json
// @Produce json
// @Success 200 {object} RatesInvokeResponse
// @Failure 502 {object} errorResponse "every provider failed"
// @Failure 500 {object} errorResponse
// @Router /entrypoints/fx-rates/invoke [post]
func (h *Handler) InvokeRates(w http.ResponseWriter, r *http.Request) {
	v, err := h.rates.Latest(r.Context())
	if err != nil {
		writeDomainError(w, err, "InvokeRates")
		return
	}
	writeJSON(w, http.StatusOK, RatesInvokeResponse{Output: ratesOutput(v)})
}

// GetRates godoc
// @Summary Get live USD rates
// @Tags Rates
// @Produce json
// @Success 200 {object} RatesOutput
// @Failure 502 {object} errorResponse
// @Router /api/v1/rates [get]
func (h *Handler) GetRates(w http.ResponseWriter, r *http.Request) {
	v, err := h.rates.Latest(r.Context())
	if err != nil {
		writeDomainError(w, err, "GetRates")
		return
	}
	writeJSON(w, http.StatusOK, ratesOutput(v))
}

// InvokeSummary godoc
// @Summary Invoke the fx-summary entrypoint
// @Description Live USD rates plus a short generated market brief
// @Tags Entrypoints
// @Accept json
// @Produce json
// @Param request body SummaryInvokeRequest false "Optional focus and tone"
// @Success 200 {object} SummaryInvokeResponse
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Failure 503 {object} errorResponse "text generator not configured"
// @Router /entrypoints/fx-summary/invoke [post]
func (h *Handler) InvokeSummary(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxInvokeBodyBytes)

	var req SummaryInvokeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	focus, err := domain.NormalizeFocus(req.Input.Focus)
	if err != nil {
		writeDomainError(w, err, "InvokeSummary")
		return
	}
	tone, err := domain.ParseTone(req.Input.Tone)
	if err != nil {
		writeDomainError(w, err, "InvokeSummary")
		return
	}

	// no point spending provider calls on a summary that cannot be produced
	if !h.summaries.Available() {
		writeDomainError(w, domain.ErrGeneratorUnavailable, "InvokeSummary")
		return
	}

	v, err := h.rates.Latest(r.Context())
	if err != nil {
		writeDomainError(w, err, "InvokeSummary")
		return
	}

	s, err := h.summaries.Generate(r.Context(), v.Rates, focus, tone)
	if err != nil {
		writeDomainError(w, err, "InvokeSummary")
		return
	}

	writeJSON(w, http.StatusOK, SummaryInvokeResponse{Output: SummaryOutput{
		Base:         v.Base.String(),
		Rates:        v.Rates,
		UpdatedAt:    v.UpdatedAt,
		Summary:      s.Summary,
		Highlights:   s.Highlights,
		DataProvider: v.Provider,
	}})
}
