package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	repo "github.com/ricardomoraes/minimart-inventory/internal/repo"
)

// DashboardHandler godoc
// @Summary Key metrics for the landing dashboard
// @Description Product count, today's and this month's sales (UTC), low-stock list and the five most recent sales
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} repo.DashboardSummary
// @Failure 500 {string} string "Internal error"
// @Router /dashboard [get]
func DashboardHandler(w http.ResponseWriter, r *http.Request) {
	summary, err := reportRepo.Dashboard(time.Now().UTC())
	if err != nil {
		if errors.Is(err, repo.ErrStoreUnavailable) {
			http.Error(w, "store unavailable", http.StatusServiceUnavailable)
			return
		}
		http.Error(w, "could not build dashboard", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

// ReportHandler godoc
// @Summary Sales report: daily and monthly totals, top sellers, recent movements
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} repo.ReportSummary
// @Failure 500 {string} string "Internal error"
// @Router /reports [get]
func ReportHandler(w http.ResponseWriter, r *http.Request) {
	summary, err := reportRepo.Report(time.Now().UTC())
	if err != nil {
		if errors.Is(err, repo.ErrStoreUnavailable) {
			http.Error(w, "store unavailable", http.StatusServiceUnavailable)
			return
		}
		http.Error(w, "could not build report", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
