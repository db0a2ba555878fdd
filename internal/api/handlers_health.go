package api

import (
	"net/http"
)

// ReadyResponse represents the readiness response
type ReadyResponse struct {
	Status     string   `json:"status" example:"ready"`
	Currencies []string `json:"currencies" example:"TWD,USD"`
}

// CurrencyLister reports the currencies with a registered formatter.
type CurrencyLister interface {
	Codes() []string
}

// HandleHealthz godoc
// @Summary Health check (liveness)
// @Description Always returns 200 OK if the service is running. Used for liveness probes.
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("OK"))
	}
}

// HandleReadyz godoc
// @Summary Readiness check
// @Description Returns 200 once at least one currency formatter is registered.
// @Tags health
// @Produce json
// @Success 200 {object} ReadyResponse "Formatters registered"
// @Failure 503 {object} ErrorResponse "No formatter registered"
// @Router /readyz [get]
func HandleReadyz(formatters CurrencyLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		codes := formatters.Codes()
		if len(codes) == 0 {
			writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "No currency formatters registered"})
			return
		}
		writeJSON(w, http.StatusOK, ReadyResponse{Status: "ready", Currencies: codes})
	}
}
