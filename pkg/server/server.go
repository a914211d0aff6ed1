// Package server exposes statement parsing over HTTP.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/stparse/stparse/pkg/config"
	"github.com/stparse/stparse/pkg/parser"
)

// Server handles HTTP requests for statement parsing.
type Server struct {
	config *config.Config
	logger *log.Logger
	mux    *http.ServeMux
	parser *parser.Parser
}

// New creates a new HTTP server.
func New(cfg *config.Config, logger *log.Logger) *Server {
	return &Server{
		config: cfg,
		logger: logger,
		mux:    http.NewServeMux(),
		parser: parser.New(logger,
			parser.WithNormalize(cfg.Parse.Normalize),
			parser.WithDeduplicate(cfg.Parse.Deduplicate),
		),
	}
}

// Start starts the HTTP server.
func (s *Server) Start(addr string) error {
	s.setupRoutes()
	return http.ListenAndServe(addr, s.mux)
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/healthz", s.withLogging(s.handleHealth))
	s.mux.HandleFunc("/api/parse", s.withLogging(s.handleParse))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}
	if err := s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

// handleParse accepts a statement either as a multipart upload under
// the "statement" field or as a raw request body, and returns the
// parse result as JSON.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	data, filename, err := readStatement(r)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "failed to read statement", err)
		return
	}
	if len(data) == 0 {
		s.respondError(w, r, http.StatusBadRequest, "empty statement", nil)
		return
	}

	result, err := s.parser.ProcessBytes(data, filename)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "failed to process statement", err)
		return
	}

	s.logger.Info("statement parsed",
		"file", filename,
		"type", result.StatementType,
		"transactions", len(result.Transactions),
		"errors", len(result.Errors),
	)

	if err := s.writeJSON(w, http.StatusOK, map[string]any{
		"status":         "success",
		"statement_type": result.StatementType,
		"transactions":   result.Transactions,
		"summary":        result.Summary(),
		"errors":         result.Errors,
		"warnings":       result.Warnings,
		"metadata":       result.Metadata,
	}); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

func readStatement(r *http.Request) ([]byte, string, error) {
	file, header, err := r.FormFile("statement")
	if err == nil {
		defer file.Close()
		data, err := io.ReadAll(file)
		return data, header.Filename, err
	}

	// Not a multipart upload; take the raw body as text.
	data, err := io.ReadAll(r.Body)
	return data, "statement.txt", err
}

// --- helpers ---

// writeJSON encodes v as JSON with the given status and writes headers.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// respondError logs the error and returns a minimal JSON error body.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		s.logger.Warn("request error", "status", status, "msg", message, "err", err, "method", r.Method, "path", r.URL.Path)
	} else {
		s.logger.Warn("request error", "status", status, "msg", message, "method", r.Method, "path", r.URL.Path)
	}
	_ = s.writeJSON(w, status, map[string]string{
		"status": "error",
		"error":  message,
	})
}

// withLogging wraps a handler to log request start/end and recover panics.
func (s *Server) withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug("http request", "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic recovered", "panic", rec, "method", r.Method, "path", r.URL.Path)
				s.respondError(w, r, http.StatusInternalServerError, "internal server error", fmt.Errorf("panic: %v", rec))
			}
		}()
		next(w, r)
	}
}
