package patients

import (
	"net/http"

	"github.com/google/uuid"
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
	g := apiGroup.Group("/patient", auth.RequireRole("admin", "billing", "provider"))
	g.POST("", h.Register)
	g.GET("/:id", h.GetPatient)
}

func (h *Handler) Register(c echo.Context) error {
	var p Patient
	if err := c.Bind(&p); err != nil {
		return api.Fail(c, http.StatusBadRequest, err.Error())
	}
	reg, err := h.svc.Register(c.Request().Context(), &p)
	if err != nil {
		return api.Fail(c, http.StatusBadRequest, err.Error())
	}
	return api.Created(c, reg)
}

func (h *Handler) GetPatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return api.Fail(c, http.StatusBadRequest, "invalid patient id")
	}
	p, err := h.svc.GetPatient(c.Request().Context(), id)
	if err != nil {
		return api.Fail(c, http.StatusNotFound, "Patient not found")
	}
	return api.OK(c, p)
}
