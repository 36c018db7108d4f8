package routes

import (
	"net/http"

	"github.com/weguard/weguard-backend/internal/api/handlers"
	"github.com/weguard/weguard-backend/internal/api/middleware"
	"github.com/weguard/weguard-backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	analysisHandler        *handlers.AnalysisHandler
	detectionResultHandler *handlers.DetectionResultHandler
	weatherAlertHandler    *handlers.WeatherAlertHandler
	treatmentHandler       *handlers.TreatmentHandler
	paddyPriceHandler      *handlers.PaddyPriceHandler
	chatHandler            *handlers.ChatHandler

	cacheMiddleware *middleware.CacheMiddleware
	allowedOrigins  []string
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	analysisHandler *handlers.AnalysisHandler,
	detectionResultHandler *handlers.DetectionResultHandler,
	weatherAlertHandler *handlers.WeatherAlertHandler,
	treatmentHandler *handlers.TreatmentHandler,
	paddyPriceHandler *handlers.PaddyPriceHandler,
	chatHandler *handlers.ChatHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	allowedOrigins []string,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:                    http.NewServeMux(),
		analysisHandler:        analysisHandler,
		detectionResultHandler: detectionResultHandler,
		weatherAlertHandler:    weatherAlertHandler,
		treatmentHandler:       treatmentHandler,
		paddyPriceHandler:      paddyPriceHandler,
		chatHandler:            chatHandler,
		cacheMiddleware:        cacheMiddleware,
		allowedOrigins:         allowedOrigins,
		metrics:                metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Leaf analysis endpoint
	r.mux.HandleFunc("POST /api/analysis", r.analysisHandler.AnalyzeScan)

	// Detection history endpoints
	r.mux.HandleFunc("GET /api/detection-results", r.detectionResultHandler.ListDetectionResults)
	r.mux.HandleFunc("POST /api/detection-results", r.detectionResultHandler.CreateDetectionResult)
	r.mux.HandleFunc("GET /api/detection-results/{id}", r.detectionResultHandler.GetDetectionResult)
	r.mux.HandleFunc("DELETE /api/detection-results/{id}", r.detectionResultHandler.DeleteDetectionResult)

	// Weather alert endpoints
	r.mux.HandleFunc("GET /api/weather-alerts", r.weatherAlertHandler.ListWeatherAlerts)
	r.mux.HandleFunc("POST /api/weather-alerts", r.weatherAlertHandler.CreateWeatherAlert)
	r.mux.HandleFunc("GET /api/weather-alerts/{id}", r.weatherAlertHandler.GetWeatherAlert)
	r.mux.HandleFunc("PUT /api/weather-alerts/{id}", r.weatherAlertHandler.UpdateWeatherAlert)
	r.mux.HandleFunc("PATCH /api/weather-alerts/{id}", r.weatherAlertHandler.ToggleWeatherAlert)
	r.mux.HandleFunc("DELETE /api/weather-alerts/{id}", r.weatherAlertHandler.DeleteWeatherAlert)

	// Treatment endpoints
	r.mux.HandleFunc("GET /api/treatments", r.treatmentHandler.ListTreatments)
	r.mux.HandleFunc("POST /api/treatments", r.treatmentHandler.CreateTreatment)
	r.mux.HandleFunc("GET /api/treatments/{id}", r.treatmentHandler.GetTreatment)
	r.mux.HandleFunc("PATCH /api/treatments/{id}", r.treatmentHandler.PatchTreatment)
	r.mux.HandleFunc("DELETE /api/treatments/{id}", r.treatmentHandler.DeleteTreatment)

	// Paddy price endpoints
	r.mux.HandleFunc("GET /api/paddy-prices", r.paddyPriceHandler.ListPaddyPrices)
	r.mux.HandleFunc("POST /api/paddy-prices", r.paddyPriceHandler.CreatePaddyPrice)
	r.mux.HandleFunc("GET /api/paddy-prices/{id}", r.paddyPriceHandler.GetPaddyPrice)
	r.mux.HandleFunc("PUT /api/paddy-prices/{id}", r.paddyPriceHandler.UpdatePaddyPrice)
	r.mux.HandleFunc("DELETE /api/paddy-prices/{id}", r.paddyPriceHandler.DeletePaddyPrice)

	// Advisory chat endpoint
	r.mux.HandleFunc("POST /api/chat", r.chatHandler.Chat)

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	handler = middleware.ResponseOptimization(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)

	return handler
}
