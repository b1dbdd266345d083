package server

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Controller binds HTTP requests to a Service.
type Controller struct {
	service      *Service
	metrics      *Metrics
	errorHandler ErrorHandler
	maxBodyBytes int64
}

// DefaultMaxBodyBytes bounds request bodies unless WithMaxBodyBytes is given.
const DefaultMaxBodyBytes = 1 << 20

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithErrorHandler replaces DefaultErrorHandler.
func WithErrorHandler(h ErrorHandler) ControllerOption {
	return func(c *Controller) {
		c.errorHandler = h
	}
}

// WithMaxBodyBytes caps request bodies at n bytes; n <= 0 keeps the default.
func WithMaxBodyBytes(n int64) ControllerOption {
	return func(c *Controller) {
		if n > 0 {
			c.maxBodyBytes = n
		}
	}
}

// NewController creates a Controller.
func NewController(s *Service, opts ...ControllerOption) *Controller {
	controller := &Controller{
		service:      s,
		metrics:      s.metrics,
		errorHandler: DefaultErrorHandler,
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(controller)
	}

	return controller
}

// Routes returns every route of the API.
func (c *Controller) Routes() Routes {
	return Routes{
		{
			"Search",
			strings.ToUpper("Post"),
			"/v1/search",
			c.Search,
		},
		{
			"Overlay",
			strings.ToUpper("Post"),
			"/v1/overlay",
			c.Overlay,
		},
		{
			"Algorithms",
			strings.ToUpper("Get"),
			"/v1/algorithms",
			c.Algorithms,
		},
		{
			"Terrain",
			strings.ToUpper("Get"),
			"/v1/terrain",
			c.Terrain,
		},
		{
			"Health",
			strings.ToUpper("Get"),
			"/healthz",
			c.Health,
		},
		{
			"Metrics",
			strings.ToUpper("Get"),
			"/metrics",
			c.metrics.Handler().ServeHTTP,
		},
	}
}

func (c *Controller) decodeSearch(w http.ResponseWriter, r *http.Request) (SearchRequest, bool) {
	req := SearchRequest{}
	d := json.NewDecoder(http.MaxBytesReader(w, r.Body, c.maxBodyBytes))
	d.DisallowUnknownFields()
	if err := d.Decode(&req); err != nil {
		c.errorHandler(w, r, &ParsingError{Err: err}, nil)
		return req, false
	}
	if err := AssertSearchRequestRequired(req); err != nil {
		c.errorHandler(w, r, err, nil)
		return req, false
	}

	return req, true
}

// Search - run one search
func (c *Controller) Search(w http.ResponseWriter, r *http.Request) {
	req, ok := c.decodeSearch(w, r)
	if !ok {
		return
	}
	result, err := c.service.Search(r.Context(), req)
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	allowCORS(w, http.MethodPost)
	_ = EncodeJSONResponse(result.Body, &result.Code, w)
}

// Overlay - run one search and render it as GeoJSON
func (c *Controller) Overlay(w http.ResponseWriter, r *http.Request) {
	req, ok := c.decodeSearch(w, r)
	if !ok {
		return
	}
	result, err := c.service.Overlay(r.Context(), req)
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	allowCORS(w, http.MethodPost)
	_ = EncodeJSONResponse(result.Body, &result.Code, w)
}

func (c *Controller) Algorithms(w http.ResponseWriter, r *http.Request) {
	result, _ := c.service.Algorithms(r.Context())
	allowCORS(w, http.MethodGet)
	_ = EncodeJSONResponse(result.Body, &result.Code, w)
}

func (c *Controller) Terrain(w http.ResponseWriter, r *http.Request) {
	result, _ := c.service.Terrain(r.Context())
	allowCORS(w, http.MethodGet)
	_ = EncodeJSONResponse(result.Body, &result.Code, w)
}

func (c *Controller) Health(w http.ResponseWriter, r *http.Request) {
	result, _ := c.service.Health(r.Context())
	_ = EncodeJSONResponse(result.Body, &result.Code, w)
}
