package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func record(t *testing.T, fn func(c echo.Context) error) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	if err := fn(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return rec, env
}

func TestOK(t *testing.T) {
	rec, env := record(t, func(c echo.Context) error {
		return OK(c, map[string]string{"id": "abc"})
	})

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !env.IsSuccess {
		t.Error("expected isSuccess true")
	}
	if env.Message != "" {
		t.Errorf("expected empty message, got %q", env.Message)
	}
	data, ok := env.Data.(map[string]interface{})
	if !ok || data["id"] != "abc" {
		t.Errorf("unexpected data: %v", env.Data)
	}
}

func TestCreated(t *testing.T) {
	rec, env := record(t, func(c echo.Context) error {
		return Created(c, "new-id")
	})

	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	if !env.IsSuccess {
		t.Error("expected isSuccess true")
	}
}

func TestFail(t *testing.T) {
	rec, env := record(t, func(c echo.Context) error {
		return Fail(c, http.StatusNotFound, "Claim not found")
	})

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if env.IsSuccess {
		t.Error("expected isSuccess false")
	}
	if env.Message != "Claim not found" {
		t.Errorf("unexpected message: %q", env.Message)
	}
	if env.Data != nil {
		t.Errorf("expected null data, got %v", env.Data)
	}
}

func TestEnvelopeFieldNames(t *testing.T) {
	rec, _ := record(t, func(c echo.Context) error {
		return OK(c, nil)
	})

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	for _, key := range []string{"data", "message", "isSuccess"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing %q field in response body", key)
		}
	}
}
