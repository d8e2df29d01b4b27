package mapping

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/healthrec/healthrec/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the mapping endpoints on a group already guarded by
// the JWT middleware. GET /mappings/:patientId lists assignments for a
// patient; PUT and DELETE on the same path address a single mapping by its
// own id.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/mappings", h.ListMappings)
	api.POST("/mappings", h.CreateMapping)
	api.GET("/mappings/:patientId", h.GetDoctorsByPatient)
	api.PUT("/mappings/:id", h.UpdateMapping)
	api.DELETE("/mappings/:id", h.DeleteMapping)
}

func (h *Handler) CreateMapping(c echo.Context) error {
	var m Mapping
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateMapping(c.Request().Context(), &m); err != nil {
		if errors.Is(err, ErrInvalidReference) {
			return echo.NewHTTPError(http.StatusBadRequest, ErrInvalidReference.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *Handler) ListMappings(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListMappings(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) GetDoctorsByPatient(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("patientId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	items, err := h.svc.GetDoctorsByPatient(c.Request().Context(), patientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*Mapping{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) UpdateMapping(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var m Mapping
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	m.ID = id
	if err := h.svc.UpdateMapping(c.Request().Context(), &m); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "mapping not found")
		case errors.Is(err, ErrInvalidReference):
			return echo.NewHTTPError(http.StatusBadRequest, ErrInvalidReference.Error())
		default:
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	updated, err := h.svc.GetMapping(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "mapping not found")
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteMapping(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteMapping(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "mapping not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
