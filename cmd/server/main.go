package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/stampworks/stampkeeper/internal/handlers"
	"github.com/stampworks/stampkeeper/internal/refdata"
	"github.com/stampworks/stampkeeper/internal/storage"
)

func main() {
	// Setup logger
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, using environment variables")
	}

	config := loadConfig()

	log.Info().
		Str("host", config.Host).
		Str("port", config.Port).
		Str("catalog", config.CatalogPath).
		Msg("Starting stampkeeper")

	catalog := storage.NewCatalog()
	if err := catalog.Load(config.CatalogPath); err != nil {
		log.Fatal().Err(err).Str("path", config.CatalogPath).Msg("Failed to load catalog")
	}
	log.Info().Int("stamps", catalog.TotalCount()).Msg("Catalog ready")

	var images *storage.ImageStore
	if config.MinIOEndpoint != "" {
		var err error
		images, err = storage.NewImageStore(
			config.MinIOEndpoint,
			config.MinIOPublicEndpoint,
			config.MinIOAccessKey,
			config.MinIOSecretKey,
			config.MinIOBucket,
			config.MinIOUseSSL,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize image store")
		}
	} else {
		log.Warn().Msg("MinIO not configured - image uploads will be disabled")
	}

	countryNames, err := refdata.LoadCountryNames(filepath.Join(config.RefDataDir, "country_names.json"))
	if err != nil {
		log.Warn().Err(err).Msg("Country name reference data unavailable")
	}
	commonwealth, err := refdata.LoadCommonwealth(filepath.Join(config.RefDataDir, "british_empire_commonwealth.json"))
	if err != nil {
		log.Warn().Err(err).Msg("Commonwealth reference data unavailable")
	}

	handler := handlers.NewHandler(catalog, images, countryNames, commonwealth)
	router := setupRouter(handler)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", config.Host, config.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("address", srv.Addr).Msg("Server starting...")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	// Headless equivalent of the save-before-exit prompt.
	if catalog.Modified() {
		if err := catalog.Save(""); err != nil {
			log.Error().Err(err).Msg("Failed to save catalog on shutdown")
		} else {
			log.Info().Str("path", catalog.Path()).Msg("Catalog saved on shutdown")
		}
	}

	log.Info().Msg("Server exited gracefully")
}

type Config struct {
	Host                string
	Port                string
	CatalogPath         string
	RefDataDir          string
	MinIOEndpoint       string
	MinIOPublicEndpoint string
	MinIOAccessKey      string
	MinIOSecretKey      string
	MinIOBucket         string
	MinIOUseSSL         bool
}

// loadConfig loads configuration from environment variables
func loadConfig() *Config {
	return &Config{
		Host:                getEnv("STAMPKEEPER_HOST", "127.0.0.1"),
		Port:                getEnv("STAMPKEEPER_PORT", "8080"),
		CatalogPath:         getEnv("CATALOG_PATH", "stamps.json"),
		RefDataDir:          getEnv("REFDATA_DIR", "data"),
		MinIOEndpoint:       getEnv("MINIO_ENDPOINT", ""),
		MinIOPublicEndpoint: getEnv("MINIO_PUBLIC_ENDPOINT", ""),
		MinIOAccessKey:      getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinIOSecretKey:      getEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinIOBucket:         getEnv("MINIO_BUCKET_NAME", "stamp-scans"),
		MinIOUseSSL:         getEnv("MINIO_USE_SSL", "false") == "true",
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// setupRouter configures all routes and middleware
func setupRouter(h *handlers.Handler) *mux.Router {
	r := mux.NewRouter()

	r.Use(loggingMiddleware)
	r.Use(recoveryMiddleware)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/stamps", h.ListStampsHandler).Methods("GET")
	api.HandleFunc("/stamps", h.CreateStampHandler).Methods("POST")
	api.HandleFunc("/stamps/{id}", h.GetStampHandler).Methods("GET")
	api.HandleFunc("/stamps/{id}", h.UpdateStampHandler).Methods("PUT")
	api.HandleFunc("/stamps/{id}", h.DeleteStampHandler).Methods("DELETE")
	api.HandleFunc("/stamps/{id}/image", h.UploadImageHandler).Methods("POST")

	api.HandleFunc("/stats/countries", h.CountryStatsHandler).Methods("GET")
	api.HandleFunc("/stats/decades", h.DecadeStatsHandler).Methods("GET")
	api.HandleFunc("/stats/summary", h.SummaryStatsHandler).Methods("GET")

	api.HandleFunc("/validate/name", h.ValidateNameHandler).Methods("GET")
	api.HandleFunc("/validate/image-path", h.ValidateImagePathHandler).Methods("GET")

	api.HandleFunc("/catalog", h.CatalogStatusHandler).Methods("GET")
	api.HandleFunc("/catalog/load", h.LoadCatalogHandler).Methods("POST")
	api.HandleFunc("/catalog/save", h.SaveCatalogHandler).Methods("POST")
	api.HandleFunc("/catalog/new", h.NewCatalogHandler).Methods("POST")

	api.HandleFunc("/reference/country-names", h.CountryNamesHandler).Methods("GET")
	api.HandleFunc("/reference/commonwealth", h.CommonwealthHandler).Methods("GET")

	r.HandleFunc("/health", h.HealthCheckHandler).Methods("GET")

	log.Info().Msg("Routes configured successfully")
	return r
}

// loggingMiddleware logs all HTTP requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", wrapped.statusCode).
			Dur("duration_ms", time.Since(start)).
			Str("remote_addr", r.RemoteAddr).
			Msg("HTTP request")
	})
}

// recoveryMiddleware recovers from panics
func recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Interface("error", err).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Msg("Panic recovered")

				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
