package middleware

import (
	"net/http"

	"github.com/missionforge/backend/config"
	"github.com/rs/cors"
)

// AllowCors wraps the router handler with the configured CORS policy. An
// empty allow-list falls back to allowing every origin, which is only meant
// for local development.
func AllowCors(cfg config.Configs, handler http.Handler) http.Handler {
	allowedOrigins := cfg.ApiServer.AllowCORS
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	return cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Authorization"},
		AllowCredentials: true,
	}).Handler(handler)
}
