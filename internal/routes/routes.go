package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"CREDVAULT_BACK-END/internal/handlers"
)

// SetupRoutes configures all application routes on the given mux
func SetupRoutes(mux *http.ServeMux, authHandler *handlers.AuthHandler, credentialsHandler *handlers.CredentialsHandler, healthHandler *handlers.HealthHandler, staticDir string) {
	// Health check routes
	mux.HandleFunc("/healthz", healthHandler.HealthCheck)
	mux.HandleFunc("/livez", healthHandler.LivenessCheck)
	mux.HandleFunc("/readyz", healthHandler.ReadinessCheck)

	// Credential routes
	mux.HandleFunc("/api/credentials", credentialsHandler.List)
	mux.HandleFunc("/api/credentials/", credentialsHandler.GetByID)

	// Authentication routes
	mux.HandleFunc("/api/register", authHandler.Register)
	mux.HandleFunc("/api/login", authHandler.Login)

	// Swagger UI
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Browser pages (register/login forms)
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))
}
