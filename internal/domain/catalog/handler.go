package catalog

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/nemsas/claims/internal/platform/api"
	"github.com/nemsas/claims/internal/platform/auth"
	"github.com/nemsas/claims/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(apiGroup *echo.Group) {
	g := apiGroup.Group("", auth.RequireRole("admin", "billing", "provider"))
	g.GET("/product", h.SearchProducts)
	g.GET("/product/:id", h.GetProduct)
	g.POST("/product", h.CreateProduct)
	g.GET("/department", h.ListDepartments)
	g.GET("/service-category", h.ListServiceCategories)
}

func (h *Handler) SearchProducts(c echo.Context) error {
	f := ProductFilter{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		Type:     c.QueryParam("type"),
	}
	if v := c.QueryParam("isCovered"); v != "" {
		covered, err := strconv.ParseBool(v)
		if err != nil {
			return api.Fail(c, http.StatusBadRequest, "invalid isCovered")
		}
		f.IsCovered = &covered
	}

	pg := pagination.FromContext(c)
	products, total, err := h.svc.SearchProducts(c.Request().Context(), f, pg.PageSize, pg.Offset())
	if err != nil {
		return api.Fail(c, http.StatusInternalServerError, "Failed to load products")
	}
	if products == nil {
		products = []*Product{}
	}
	return api.OK(c, pagination.NewPage(products, total, pg))
}

func (h *Handler) GetProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return api.Fail(c, http.StatusBadRequest, "invalid product id")
	}
	p, err := h.svc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return api.Fail(c, http.StatusNotFound, "Product not found")
	}
	return api.OK(c, p)
}

func (h *Handler) CreateProduct(c echo.Context) error {
	var p Product
	if err := c.Bind(&p); err != nil {
		return api.Fail(c, http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateProduct(c.Request().Context(), &p); err != nil {
		return api.Fail(c, http.StatusBadRequest, err.Error())
	}
	return api.Created(c, p)
}

func (h *Handler) ListDepartments(c echo.Context) error {
	departments, err := h.svc.ListDepartments(c.Request().Context())
	if err != nil {
		return api.Fail(c, http.StatusInternalServerError, "Failed to fetch departments")
	}
	if departments == nil {
		departments = []*Department{}
	}
	return api.OK(c, departments)
}

func (h *Handler) ListServiceCategories(c echo.Context) error {
	categories, err := h.svc.ListServiceCategories(c.Request().Context())
	if err != nil {
		return api.Fail(c, http.StatusInternalServerError, "Failed to fetch Service Categories")
	}
	if categories == nil {
		categories = []*ServiceCategory{}
	}
	return api.OK(c, categories)
}
