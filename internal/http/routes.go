package httpx

import (
	"log/slog"
	"net/http"

	"github.com/jobbox/jobbox-api/internal/observability/metrics"
	"github.com/jobbox/jobbox-api/internal/service"
)

// RouterServices holds all the services and settings needed by the HTTP router.
type RouterServices struct {
	Jobs         *service.JobService
	Users        *service.UserService
	Applications *service.ApplicationService
	SavedJobs    *service.SavedJobService
	// PageMaxLimit caps the limit query param for paginated listings.
	PageMaxLimit int
	// Logger for request logging and 5xx causes (optional; defaults to slog.Default).
	Logger *slog.Logger
}

// NewRouter creates and configures the HTTP router with the full middleware
// stack: panic recovery, request IDs, CORS, request logging, and Prometheus
// instrumentation.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	jobHandlers := &JobHandlers{Svc: services.Jobs, MaxLimit: services.PageMaxLimit, Logger: logger}
	userHandlers := &UserHandlers{Svc: services.Users, Logger: logger}
	appHandlers := &ApplicationHandlers{Svc: services.Applications, Logger: logger}
	savedHandlers := &SavedJobHandlers{Svc: services.SavedJobs, Logger: logger}

	registerJobRoutes(mux, jobHandlers)
	registerUserRoutes(mux, userHandlers)
	registerApplicationRoutes(mux, appHandlers)
	registerSavedJobRoutes(mux, savedHandlers)

	mux.HandleFunc("GET /{$}", rootHandler)
	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("GET /metrics", metrics.Handler())

	var handler http.Handler = mux
	handler = metrics.InstrumentHandler(handler)
	handler = Logging(logger)(handler)
	handler = CORS()(handler)
	handler = RequestID()(handler)
	handler = Recover(logger)(handler)
	return handler
}

func registerJobRoutes(mux *http.ServeMux, h *JobHandlers) {
	mux.HandleFunc("GET /jobs", h.List)
	mux.HandleFunc("GET /jobs-by-pagination", h.ListPaginated)
	mux.HandleFunc("GET /jobs/{id}", h.GetByID)
	mux.HandleFunc("GET /jobs/applied-by-email/{email}", h.ListByApplicantEmail)
	mux.HandleFunc("GET /featured-jobs", h.Featured)
	mux.HandleFunc("POST /jobs", h.Create)
	mux.HandleFunc("DELETE /jobs/{id}", h.Delete)
}

func registerUserRoutes(mux *http.ServeMux, h *UserHandlers) {
	mux.HandleFunc("GET /users", h.ListOrLookup)
	mux.HandleFunc("GET /users/{email}", h.GetByEmail)
	mux.HandleFunc("POST /users", h.Create)
	mux.HandleFunc("PATCH /users/{id}", h.UpdateRole)
	mux.HandleFunc("DELETE /users/{id}", h.Delete)
}

func registerApplicationRoutes(mux *http.ServeMux, h *ApplicationHandlers) {
	mux.HandleFunc("GET /applied-jobs/{userId}", h.ListByUser)
	mux.HandleFunc("POST /applied-jobs", h.Apply)
	mux.HandleFunc("DELETE /applied-jobs/{id}", h.Withdraw)
}

func registerSavedJobRoutes(mux *http.ServeMux, h *SavedJobHandlers) {
	mux.HandleFunc("GET /saved-jobs/{userId}", h.ListByUser)
	mux.HandleFunc("POST /saved-jobs", h.Save)
	mux.HandleFunc("DELETE /saved-jobs/{savedJobId}", h.Unsave)
}
