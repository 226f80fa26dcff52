// Package server exposes the tool registry over HTTP and over a
// line-delimited JSON stdio loop.
//
// HTTP routes:
//
//	GET  /healthz                     liveness and build version
//	GET  /v1/tools                    tool catalog
//	GET  /v1/tools/{name}/example     sample parameters
//	POST /v1/tools/{name}             render; body is {"data":…,"config":…}
//
// Failures are reported as {"code": "...", "message": "..."} with the
// status from [errors.HTTPStatus].
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/plotsvg/pkg/errors"
	"github.com/matzehuels/plotsvg/pkg/pipeline"
)

// DefaultMaxBodyBytes bounds request bodies and stdio lines.
const DefaultMaxBodyBytes = 8 << 20

// Server serves tool calls through a shared Runner.
type Server struct {
	Runner *pipeline.Runner
	Logger *log.Logger
	// MaxBodyBytes overrides DefaultMaxBodyBytes when positive.
	MaxBodyBytes int64
}

// New returns a server for runner.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{Runner: runner, Logger: logger}
}

// ErrorBody is the wire form of a failure.
type ErrorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// errorBody classifies err. Errors without a code are reported as
// INTERNAL_ERROR without their detail, which is logged instead.
func (s *Server) errorBody(err error) (int, ErrorBody) {
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge, ErrorBody{
			Code:    errors.ErrCodeInvalidInput,
			Message: "request body too large",
		}
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable, ErrorBody{Code: errors.ErrCodeInternal, Message: "request canceled"}
	}
	code := errors.GetCode(err)
	if code == "" {
		s.Logger.Error("unclassified failure", "err", err)
		return http.StatusInternalServerError, ErrorBody{Code: errors.ErrCodeInternal, Message: "internal error"}
	}
	return errors.HTTPStatus(code), ErrorBody{Code: code, Message: errors.UserMessage(err)}
}

func (s *Server) maxBody() int64 {
	if s.MaxBodyBytes > 0 {
		return s.MaxBodyBytes
	}
	return DefaultMaxBodyBytes
}

// ListenAndServe serves HTTP on addr until ctx is canceled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.Logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
