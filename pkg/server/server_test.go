package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/stparse/stparse/pkg/config"
)

func testServer() *Server {
	cfg := &config.Config{}
	cfg.Parse.Normalize = true
	cfg.Parse.Deduplicate = true
	s := New(cfg, log.New(io.Discard))
	s.setupRoutes()
	return s
}

func TestHandleHealth(t *testing.T) {
	s := testServer()

	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestHandleParseRawBody(t *testing.T) {
	s := testServer()

	statement := "HDFC Bank Statement of Accounts\n01/01/2024 Amazon Purchase 500.00\n"
	req := httptest.NewRequest(http.MethodPost, "/api/parse", strings.NewReader(statement))
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	var body struct {
		Status        string `json:"status"`
		StatementType string `json:"statement_type"`
		Transactions  []struct {
			Description string `json:"description"`
		} `json:"transactions"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Status != "success" {
		t.Errorf("status = %q", body.Status)
	}
	if body.StatementType != "bank" {
		t.Errorf("statement_type = %q", body.StatementType)
	}
	if len(body.Transactions) != 1 || body.Transactions[0].Description != "Amazon Purchase" {
		t.Errorf("transactions = %+v", body.Transactions)
	}
}

func TestHandleParseRejectsGet(t *testing.T) {
	s := testServer()

	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/parse", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestHandleParseEmptyBody(t *testing.T) {
	s := testServer()

	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/parse", strings.NewReader("")))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
