package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func TestHandler_SearchProducts(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	p := validProduct()
	if err := svc.CreateProduct(context.Background(), p); err != nil {
		t.Fatalf("seed product: %v", err)
	}
	h := NewHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?search=lipid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.SearchProducts(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var payload struct {
		Data struct {
			Items      []*Product `json:"items"`
			TotalCount int        `json:"totalCount"`
		} `json:"data"`
		IsSuccess bool `json:"isSuccess"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !payload.IsSuccess || payload.Data.TotalCount != 1 {
		t.Errorf("unexpected payload: %+v", payload)
	}
}

func TestHandler_SearchProducts_BadIsCovered(t *testing.T) {
	h := NewHandler(NewService(newMockRepo()))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?isCovered=maybe", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.SearchProducts(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandler_GetProduct_NotFound(t *testing.T) {
	h := NewHandler(NewService(newMockRepo()))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	if err := h.GetProduct(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandler_ListDepartments(t *testing.T) {
	repo := newMockRepo()
	repo.depts = []*Department{
		{ID: uuid.New(), Name: "Emergency", DepartmentType: "Clinical", IsActive: true, CreatedDate: time.Now()},
	}
	h := NewHandler(NewService(repo))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListDepartments(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var payload struct {
		Data []*Department `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(payload.Data) != 1 || payload.Data[0].Name != "Emergency" {
		t.Errorf("unexpected departments: %v", payload.Data)
	}
}

func TestHandler_ListServiceCategories_EmptyIsArray(t *testing.T) {
	h := NewHandler(NewService(newMockRepo()))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListServiceCategories(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var payload struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if string(payload.Data) != "[]" {
		t.Errorf("expected empty array, got %s", payload.Data)
	}
}
