package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Route binds a name, method and path pattern to a handler.
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc http.HandlerFunc
}

// Routes is the list of routes a Router serves.
type Routes []Route

// Router is implemented by controllers that contribute routes.
type Router interface {
	Routes() Routes
}

// NewRouter registers every route of every router on a mux.Router, wrapped
// with request logging and metrics.
func NewRouter(logger *slog.Logger, metrics *Metrics, routers ...Router) *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	for _, api := range routers {
		for _, route := range api.Routes() {
			var handler http.Handler = route.HandlerFunc
			handler = instrument(handler, route.Name, logger, metrics)

			router.
				Methods(route.Method).
				Path(route.Pattern).
				Name(route.Name).
				Handler(handler)
		}
	}

	return router
}

// statusRecorder remembers the status code written through it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func instrument(inner http.Handler, name string, logger *slog.Logger, metrics *Metrics) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		inner.ServeHTTP(rec, r)

		metrics.observeRequest(name, rec.status)
		logger.Info("request",
			"component", "server",
			"method", r.Method,
			"uri", r.RequestURI,
			"route", name,
			"status", rec.status,
			"elapsed", time.Since(start),
		)
	})
}

// EncodeJSONResponse writes i as JSON with the given status (200 when nil).
func EncodeJSONResponse(i interface{}, status *int, w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	if status != nil {
		w.WriteHeader(*status)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	return json.NewEncoder(w).Encode(i)
}

func allowCORS(w http.ResponseWriter, method string) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", method)
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}
