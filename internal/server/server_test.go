package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MicahParks/keyfunc/v3"

	"github.com/bigkaa/parentlib/internal/api/generated"
	"github.com/bigkaa/parentlib/internal/api/middleware"
	"github.com/bigkaa/parentlib/internal/api/validation"
	"github.com/bigkaa/parentlib/internal/config"
)

// stubHandler реализует только маршруты, которые вызывают тесты.
type stubHandler struct {
	generated.ServerInterface
}

func (stubHandler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (stubHandler) GetTest(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (stubHandler) GetMe(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (stubHandler) GetResource(w http.ResponseWriter, _ *http.Request, _ generated.IdPath) {
	w.WriteHeader(http.StatusOK)
}

func (stubHandler) CreateCollection(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusCreated)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Port:               8080,
		CORSAllowedOrigins: []string{"http://localhost:5173"},
	}
}

func newTestJWTAuth(t *testing.T) *middleware.JWTAuth {
	t.Helper()
	kf, err := keyfunc.NewJWKSetJSON(json.RawMessage(`{"keys":[]}`))
	if err != nil {
		t.Fatalf("keyfunc: %v", err)
	}
	return middleware.NewJWTAuthWithKeyfunc(kf, "https://idp.test/realms/parentlib", nil, nil, testLogger())
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp generated.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("декодирование ошибки: %v; тело: %s", err, rec.Body.String())
	}
	return resp.Error.Code
}

func TestRouter_PublicAndProtectedPaths(t *testing.T) {
	router := NewRouter(testConfig(), testLogger(), stubHandler{}, newTestJWTAuth(t), nil)

	tests := []struct {
		path   string
		status int
	}{
		{"/health/live", http.StatusOK},
		{"/api/test", http.StatusOK},
		{"/api/users/me", http.StatusUnauthorized},
		{"/api/resources/7d0b6c84-3a56-4c1e-9b1f-2f4d5c6e7a8b", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rec.Code != tt.status {
				t.Errorf("status = %d, ожидался %d", rec.Code, tt.status)
			}
		})
	}
}

func TestRouter_ErrorEnvelope(t *testing.T) {
	router := NewRouter(testConfig(), testLogger(), stubHandler{}, nil, nil)

	tests := []struct {
		name   string
		method string
		path   string
		status int
		code   string
	}{
		{"некорректный uuid", http.MethodGet, "/api/resources/not-a-uuid", http.StatusBadRequest, "VALIDATION_ERROR"},
		{"неизвестный маршрут", http.MethodGet, "/api/unknown", http.StatusNotFound, "NOT_FOUND"},
		{"неподдерживаемый метод", http.MethodPut, "/api/users/me", http.StatusMethodNotAllowed, "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			if rec.Code != tt.status {
				t.Fatalf("status = %d, ожидался %d", rec.Code, tt.status)
			}
			if code := errorCode(t, rec); code != tt.code {
				t.Errorf("error.code = %q, ожидался %q", code, tt.code)
			}
		})
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := NewRouter(testConfig(), testLogger(), stubHandler{}, newTestJWTAuth(t), nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/users/me", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
	if rec.Code == http.StatusUnauthorized {
		t.Error("preflight не должен требовать JWT")
	}
}

func TestRouter_OpenAPIValidation(t *testing.T) {
	doc, err := generated.GetSwagger()
	if err != nil {
		t.Fatalf("GetSwagger: %v", err)
	}
	v, err := validation.New(doc, testLogger())
	if err != nil {
		t.Fatalf("validation.New: %v", err)
	}
	router := NewRouter(testConfig(), testLogger(), stubHandler{}, nil, v)

	req := httptest.NewRequest(http.MethodPost, "/api/collections", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, ожидался 400 (нет обязательного name)", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/collections", strings.NewReader(`{"name":"Сон"}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, ожидался 201", rec.Code)
	}
}
