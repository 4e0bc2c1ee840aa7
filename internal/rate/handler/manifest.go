package handler

import (
	"net/http"

	"github.com/wgopar/usd-conversions-agent/internal/config"
)

const (
	RatesEntrypointKey   = "fx-rates"
	SummaryEntrypointKey = "fx-summary"
)

type ManifestEntrypoint struct {
	Key         string `json:"key" example:"fx-rates"`
	Description string `json:"description"`
	Path        string `json:"path" example:"/entrypoints/fx-rates/invoke"`
	Price       string `json:"price,omitempty" example:"0.001"`
}

type ManifestPayments struct {
	Network        string `json:"network,omitempty" example:"base-sepolia"`
	PayTo          string `json:"payTo,omitempty"`
	FacilitatorURL string `json:"facilitatorUrl,omitempty"`
}

type Manifest struct {
	Name        string               `json:"name" example:"usd-conversions-agent"`
	Version     string               `json:"version" example:"0.1.0"`
	Description string               `json:"description"`
	Entrypoints []ManifestEntrypoint `json:"entrypoints"`
	Payments    *ManifestPayments    `json:"payments,omitempty"`
}

// NewManifest lists the fx-summary entrypoint only when withSummary is set.
func NewManifest(agent config.Agent, payments config.Payments, withSummary bool) Manifest {
	m := Manifest{
		Name:        agent.Name,
		Version:     agent.Version,
		Description: agent.Description,
		Entrypoints: []ManifestEntrypoint{{
			Key:         RatesEntrypointKey,
			Description: "Live USD exchange rates for EUR, CNY, JPY, GBP and AUD",
			Path:        "/entrypoints/" + RatesEntrypointKey + "/invoke",
			Price:       agent.RatesPrice,
		}},
	}
	if withSummary {
		m.Entrypoints = append(m.Entrypoints, ManifestEntrypoint{
			Key:         SummaryEntrypointKey,
			Description: "Live USD rates with a short generated market summary",
			Path:        "/entrypoints/" + SummaryEntrypointKey + "/invoke",
			Price:       agent.SummaryPrice,
		})
	}
	if payments != (config.Payments{}) {
		m.Payments = &ManifestPayments{
			Network:        payments.Network,
			PayTo:          payments.PayTo,
			FacilitatorURL: payments.FacilitatorURL,
		}
	}
	return m
}

// GetManifest godoc
// @Summary Agent manifest
// @Description Agent identity, callable entrypoints with prices and payment parameters
// @Tags Agent
// @Produce json
// @Success 200 {object} Manifest
// @Router /.well-known/agent.json [get]
func (h *Handler) GetManifest(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.manifest)
}
