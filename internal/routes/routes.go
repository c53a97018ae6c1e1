// Package routes exposes the small operational HTTP surface: health,
// metrics, and a stats snapshot. The bot itself speaks only through Discord.
package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Fripe070/experienced/internal/db/repositories"
	"github.com/Fripe070/experienced/internal/logging"
)

type statsResponse struct {
	TotalLevels int64  `json:"total_levels"`
	BuildSHA    string `json:"build_sha"`
	Uptime      string `json:"uptime"`
}

// RegisterRoutes builds the ops router.
func RegisterRoutes(levels *repositories.LevelsRepository, buildSHA string, upSince time.Time) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/stats", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), 5*time.Second)
		defer cancel()

		total, err := levels.CountTotal(ctx)
		if err != nil {
			logging.Error("Failed to count levels for stats", "error", err.Error())
			http.Error(w, "stats unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(statsResponse{
			TotalLevels: total,
			BuildSHA:    buildSHA,
			Uptime:      time.Since(upSince).Round(time.Second).String(),
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
