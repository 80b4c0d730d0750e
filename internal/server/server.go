package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"checkout-domains/internal/domains"
	"checkout-domains/internal/env"
	"checkout-domains/internal/location"

	"go.uber.org/zap"
)

type Server struct {
	ctx    env.Context
	logger *zap.Logger
	http   *http.Server
}

type TrustResponse struct {
	Origin  string `json:"origin"`
	PayPal  bool   `json:"paypal"`
	Venmo   bool   `json:"venmo"`
	Trusted bool   `json:"trusted"`
}

type EndpointsResponse struct {
	LoggerDomain string `json:"logger_domain,omitempty"`
	AuthAPI      string `json:"auth_api"`
	OrderAPI     string `json:"order_api"`
	Error        string `json:"error,omitempty"`
}

func New(addr string, ctx env.Context, logger *zap.Logger) *Server {
	s := &Server{ctx: ctx, logger: logger}
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/v1/trust", s.handleTrust)
	mux.HandleFunc("/v1/endpoints", s.handleEndpoints)
	return mux
}

func (s *Server) ListenAndServe() error {
	s.logger.Info("server listening", zap.String("addr", s.http.Addr), zap.String("env", s.ctx.Env.String()))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) handleTrust(w http.ResponseWriter, r *http.Request) {
	origin := r.URL.Query().Get("origin")
	if origin == "" {
		http.Error(w, "origin is required", http.StatusBadRequest)
		return
	}
	loc, err := location.Parse(origin)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := s.ctx.WithLocation(loc)
	resp := TrustResponse{
		Origin:  loc.Origin(),
		PayPal:  domains.IsPayPalDomain(ctx),
		Venmo:   domains.IsVenmoDomain(ctx),
		Trusted: domains.IsPayPalTrustedDomain(ctx),
	}
	s.logger.Info("trust decision",
		zap.String("origin", resp.Origin),
		zap.Bool("paypal", resp.PayPal),
		zap.Bool("venmo", resp.Venmo),
		zap.Bool("trusted", resp.Trusted),
	)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleEndpoints(w http.ResponseWriter, r *http.Request) {
	resp := EndpointsResponse{
		AuthAPI:  domains.AuthAPIURL(s.ctx),
		OrderAPI: domains.OrderAPIURL(s.ctx),
	}
	loggerDomain, err := domains.PayPalLoggerDomain(s.ctx)
	if err != nil {
		s.logger.Warn("logger domain unresolved", zap.Error(err))
		resp.Error = err.Error()
		writeJSON(w, http.StatusInternalServerError, resp)
		return
	}
	resp.LoggerDomain = loggerDomain
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
