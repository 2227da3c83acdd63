package terminology

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nemsas/claims/internal/platform/api"
	"github.com/nemsas/claims/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(apiGroup *echo.Group) {
	g := apiGroup.Group("/settings", auth.RequireRole("admin", "billing", "provider"))
	g.GET("/classification-code", h.SearchCodes)
	g.GET("/classification-code/:code", h.GetCode)
}

func getLimit(c echo.Context) int {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return limit
}

// SearchCodes handles GET /settings/classification-code?CodeType=ICD10&Search=...
func (h *Handler) SearchCodes(c echo.Context) error {
	codeType := c.QueryParam("CodeType")
	search := c.QueryParam("Search")
	if search == "" {
		return api.Fail(c, http.StatusBadRequest, "Search parameter is required")
	}

	results, err := h.svc.Search(c.Request().Context(), codeType, search, getLimit(c))
	if err != nil {
		return api.Fail(c, http.StatusBadRequest, err.Error())
	}
	if results == nil {
		results = []*ClassificationCode{}
	}
	return api.OK(c, results)
}

func (h *Handler) GetCode(c echo.Context) error {
	code, err := h.svc.Lookup(c.Request().Context(), c.QueryParam("CodeType"), c.Param("code"))
	if err != nil {
		return api.Fail(c, http.StatusNotFound, "Code not found")
	}
	return api.OK(c, code)
}
