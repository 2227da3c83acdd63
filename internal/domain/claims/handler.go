package claims

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

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
	g := apiGroup.Group("/nemsas-claims", auth.RequireRole("admin", "billing"))
	g.GET("/all-claims", h.ListClaims)
	g.GET("/export", h.ExportClaims)
	g.GET("/:id", h.GetClaim)
	g.POST("", h.CreateClaim)
	g.PUT("/:id", h.UpdateClaim)
	g.DELETE("/:id", h.DeleteClaim)
}

func (h *Handler) ListClaims(c echo.Context) error {
	f, err := filterFromQuery(c)
	if err != nil {
		return api.Fail(c, http.StatusBadRequest, err.Error())
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListClaims(c.Request().Context(), f, pg.PageSize, pg.Offset())
	if err != nil {
		return api.Fail(c, http.StatusInternalServerError, "Failed to load claims")
	}
	if items == nil {
		items = []*Claim{}
	}
	return api.OK(c, pagination.NewPage(items, total, pg))
}

func (h *Handler) GetClaim(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return api.Fail(c, http.StatusBadRequest, "invalid claim id")
	}
	cl, err := h.svc.GetClaim(c.Request().Context(), id)
	if err != nil {
		return api.Fail(c, http.StatusNotFound, "Claim not found")
	}
	return api.OK(c, cl)
}

func (h *Handler) CreateClaim(c echo.Context) error {
	var cl Claim
	if err := c.Bind(&cl); err != nil {
		return api.Fail(c, http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateClaim(c.Request().Context(), &cl); err != nil {
		return api.Fail(c, http.StatusBadRequest, err.Error())
	}
	return api.Created(c, cl)
}

func (h *Handler) UpdateClaim(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return api.Fail(c, http.StatusBadRequest, "invalid claim id")
	}
	var p UpdatePayload
	if err := c.Bind(&p); err != nil {
		return api.Fail(c, http.StatusBadRequest, err.Error())
	}
	cl, err := h.svc.UpdateClaim(c.Request().Context(), id, &p)
	if err != nil {
		return api.Fail(c, http.StatusBadRequest, err.Error())
	}
	return api.OK(c, cl)
}

func (h *Handler) DeleteClaim(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return api.Fail(c, http.StatusBadRequest, "invalid claim id")
	}
	if err := h.svc.DeleteClaim(c.Request().Context(), id); err != nil {
		return api.Fail(c, http.StatusInternalServerError, "Failed to delete claim")
	}
	return api.OK(c, nil)
}

// ExportClaims streams the active list filter as a report. IsExcel selects
// the spreadsheet format; anything else produces CSV.
func (h *Handler) ExportClaims(c echo.Context) error {
	f, err := filterFromQuery(c)
	if err != nil {
		return api.Fail(c, http.StatusBadRequest, err.Error())
	}
	items, _, err := h.svc.ListClaims(c.Request().Context(), f, pagination.MaxPageSize, 0)
	if err != nil {
		return api.Fail(c, http.StatusInternalServerError, "Failed to export claims")
	}

	isExcel, _ := strconv.ParseBool(c.QueryParam("IsExcel"))
	if isExcel {
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="claims.xlsx"`)
		c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Response().WriteHeader(http.StatusOK)
		return WriteExcel(c.Response(), items)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="claims.csv"`)
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().WriteHeader(http.StatusOK)
	return WriteCSV(c.Response(), items)
}

func filterFromQuery(c echo.Context) (ListFilter, error) {
	var f ListFilter
	if v := c.QueryParam("ProviderId"); v != "" {
		pid, err := uuid.Parse(v)
		if err != nil {
			return f, fmt.Errorf("invalid ProviderId")
		}
		f.ProviderID = pid
	}
	f.NEMSASID = c.QueryParam("NEMSASId")
	f.ClaimStatus = c.QueryParam("ClaimStatus")
	f.PatientNumber = c.QueryParam("PatientNumber")
	f.SortBy = c.QueryParam("SortBy")
	if v := c.QueryParam("StartDate"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return f, fmt.Errorf("invalid StartDate")
		}
		f.StartDate = &t
	}
	if v := c.QueryParam("EndDate"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return f, fmt.Errorf("invalid EndDate")
		}
		f.EndDate = &t
	}
	return f, nil
}
