// Package httpapi exposes the rate card and estimates as a small JSON API.
// Query values go through the same form as the terminal front end, so digit
// filtering and the 0 fallback behave identically.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/vovakirdan/hostcost/internal/estimate"
	"github.com/vovakirdan/hostcost/internal/pricing"
)

// LineItemResponse is one dimension of an estimate.
type LineItemResponse struct {
	Key      string          `json:"key"`
	Label    string          `json:"label"`
	Quantity uint64          `json:"quantity"`
	Rate     decimal.Decimal `json:"rate"`
	Amount   decimal.Decimal `json:"amount"`
}

// EstimateResponse is the body of GET /v1/estimate.
type EstimateResponse struct {
	Currency  string             `json:"currency"`
	Flat      decimal.Decimal    `json:"flat"`
	Items     []LineItemResponse `json:"items"`
	Total     decimal.Decimal    `json:"total"`
	Formatted string             `json:"formatted"`
}

// RateResponse is one entry of GET /v1/rates.
type RateResponse struct {
	Key   string          `json:"key"`
	Label string          `json:"label"`
	Rate  decimal.Decimal `json:"rate"`
}

// RatesResponse is the body of GET /v1/rates.
type RatesResponse struct {
	Currency string          `json:"currency"`
	Flat     decimal.Decimal `json:"flat"`
	Rates    []RateResponse  `json:"rates"`
}

// Server serves the JSON API.
type Server struct {
	pricing pricing.Model
	logger  *log.Logger
	http    *http.Server
}

// NewServer creates an API server listening on addr.
func NewServer(addr string, m pricing.Model, logger *log.Logger) *Server {
	s := &Server{pricing: m, logger: logger}
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Router builds the chi router. Exposed for tests.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.logRequests)
	r.Get("/healthz", s.handleHealth)
	r.Get("/v1/rates", s.handleRates)
	r.Get("/v1/estimate", s.handleEstimate)
	return r
}

// Serve accepts connections until Shutdown is called.
// A clean shutdown returns nil.
func (s *Server) Serve() error {
	s.logger.Info("starting HTTP API", "address", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP API")
	return s.http.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRates(w http.ResponseWriter, _ *http.Request) {
	resp := RatesResponse{
		Currency: pricing.CurrencySymbol,
		Flat:     s.pricing.Flat,
		Rates:    make([]RateResponse, 0, pricing.NumDimensions),
	}
	for _, d := range pricing.Dimensions() {
		resp.Rates = append(resp.Rates, RateResponse{
			Key:   d.Key(),
			Label: d.Label(),
			Rate:  s.pricing.Rate(d),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	values := make(map[string]string, pricing.NumDimensions)
	for _, d := range pricing.Dimensions() {
		if v := query.Get(d.Key()); v != "" {
			values[d.Key()] = v
		}
	}

	q := estimate.Quantities(estimate.NewForm(values))
	writeJSON(w, http.StatusOK, NewEstimateResponse(s.pricing.Breakdown(q)))
}

// NewEstimateResponse converts a breakdown to its wire form.
func NewEstimateResponse(b pricing.Breakdown) EstimateResponse {
	resp := EstimateResponse{
		Currency:  pricing.CurrencySymbol,
		Flat:      b.Flat,
		Items:     make([]LineItemResponse, 0, len(b.Items)),
		Total:     b.Total,
		Formatted: pricing.FormatDecimal(b.Total),
	}
	for _, item := range b.Items {
		resp.Items = append(resp.Items, LineItemResponse{
			Key:      item.Dimension.Key(),
			Label:    item.Dimension.Label(),
			Quantity: item.Quantity,
			Rate:     item.Rate,
			Amount:   item.Amount,
		})
	}
	return resp
}

// logRequests logs each request after it is served.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // Client may have gone away
	json.NewEncoder(w).Encode(v)
}
