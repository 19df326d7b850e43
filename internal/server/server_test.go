package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Kind    string          `json:"kind"`
	Errors  []string        `json:"errors"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(logs io.Writer) *fiber.App {
	return New(Options{Logger: NewLogger("json", logs)})
}

func do(t *testing.T, a *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp.StatusCode, env
}

func TestRoutes(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "health",
			method:     http.MethodGet,
			path:       "/health",
			wantStatus: fiber.StatusOK,
			wantBody:   `"healthy":true`,
		},
		{
			name:       "compile",
			method:     http.MethodPost,
			path:       "/compile",
			body:       `{"template": "$v{title: Hi {user.name}}", "values": {"user.name": "ann"}}`,
			wantStatus: fiber.StatusOK,
			wantBody:   `"title":"Hi ann"`,
		},
		{
			name:       "compile materialized",
			method:     http.MethodPost,
			path:       "/compile",
			body:       `{"template": "$v{title: T}$v{label: Go && link: https://example.com}", "materialize": true}`,
			wantStatus: fiber.StatusOK,
			wantBody:   `"components"`,
		},
		{
			name:       "check with warning",
			method:     http.MethodPost,
			path:       "/check",
			body:       `{"template": "$v{descripton: x}"}`,
			wantStatus: fiber.StatusOK,
			wantBody:   `"suggestions":["description"]`,
		},
		{
			name:       "check invalid template is still 200",
			method:     http.MethodPost,
			path:       "/check",
			body:       `{"template": "$v{image: nope}"}`,
			wantStatus: fiber.StatusOK,
			wantBody:   `"valid":false`,
		},
		{
			name:       "serialize",
			method:     http.MethodPost,
			path:       "/serialize",
			body:       `{"content": "hi", "embeds": [{"title": "T"}]}`,
			wantStatus: fiber.StatusOK,
			wantBody:   `{embed}$v{content: hi}$v{title: T}`,
		},
	}

	a := newTestApp(io.Discard)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := do(t, a, tt.method, tt.path, tt.body)
			if status != tt.wantStatus {
				t.Errorf("expected status %d, got %d (%+v)", tt.wantStatus, status, env)
			}
			if env.Status != "success" {
				t.Errorf("expected success envelope, got %+v", env)
			}
			if !strings.Contains(string(env.Data), tt.wantBody) {
				t.Errorf("expected data containing %q, got %s", tt.wantBody, env.Data)
			}
		})
	}
}

func TestCompileInvalidImage(t *testing.T) {
	status, env := do(t, newTestApp(io.Discard), http.MethodPost, "/compile", `{"template": "$v{image: not-a-url}"}`)

	if status != fiber.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", status)
	}
	if env.Kind != "invalid embed" {
		t.Errorf("expected kind %q, got %q", "invalid embed", env.Kind)
	}
	if !strings.Contains(env.Message, "image.url") {
		t.Errorf("expected image.url message, got %q", env.Message)
	}
}

func TestCompileFormatError(t *testing.T) {
	status, env := do(t, newTestApp(io.Discard), http.MethodPost, "/compile", `{"template": "title: x"}`)
	if status != fiber.StatusUnprocessableEntity || env.Kind != "format error" {
		t.Errorf("expected 422 format error, got %d %+v", status, env)
	}
}

func TestBadRequests(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
	}{
		{"malformed json", "/compile", `{"template":`},
		{"missing template", "/compile", `{"values": {}}`},
		{"missing check template", "/check", `{}`},
		{"empty serialize body", "/serialize", ``},
		{"bad serialize body", "/serialize", `not json`},
	}

	a := newTestApp(io.Discard)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := do(t, a, http.MethodPost, tt.path, tt.body)
			if status != fiber.StatusBadRequest {
				t.Errorf("expected 400, got %d", status)
			}
			if env.Status != "error" {
				t.Errorf("expected error envelope, got %+v", env)
			}
		})
	}
}

func TestNotFound(t *testing.T) {
	status, env := do(t, newTestApp(io.Discard), http.MethodGet, "/missing", "")
	if status != fiber.StatusNotFound || env.Status != "error" {
		t.Errorf("expected 404 error envelope, got %d %+v", status, env)
	}
}

func TestRequestLogger(t *testing.T) {
	var logs bytes.Buffer
	a := newTestApp(&logs)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := a.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	requestID := resp.Header.Get(RequestIDHeader)
	if requestID == "" {
		t.Fatal("expected request id header")
	}

	var entry map[string]interface{}
	if err := json.Unmarshal(logs.Bytes(), &entry); err != nil {
		t.Fatalf("expected one JSON log line, got %q: %v", logs.String(), err)
	}
	if entry["request_id"] != requestID {
		t.Errorf("expected request_id %q, got %v", requestID, entry["request_id"])
	}
	if entry["uri"] != "/health" {
		t.Errorf("expected uri /health, got %v", entry["uri"])
	}
}

func TestRequestLoggerKeepsClientID(t *testing.T) {
	var logs bytes.Buffer
	a := newTestApp(&logs)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "client-42")
	resp, err := a.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if got := resp.Header.Get(RequestIDHeader); got != "client-42" {
		t.Errorf("expected request id client-42, got %q", got)
	}
	if !strings.Contains(logs.String(), `"request_id":"client-42"`) {
		t.Errorf("log does not carry the client id: %s", logs.String())
	}
}
