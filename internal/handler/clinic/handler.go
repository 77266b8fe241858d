package clinic

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vetlyst/directory-api/internal/handler"
	"github.com/vetlyst/directory-api/internal/model"
	"github.com/vetlyst/directory-api/internal/service/directory"
	apperrors "github.com/vetlyst/directory-api/pkg/errors"
)

type Handler struct {
	service directory.Servicer
}

func NewHandler(service directory.Servicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/clinics", h.ListClinics)
	r.GET("/clinics/:slug", h.GetClinicBySlug)
	r.GET("/cities", h.ListCities)
}

func (h *Handler) ListClinics(c *gin.Context) {
	var filter model.ClinicFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	clinics, err := h.service.ListClinics(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to fetch clinics"))
		return
	}

	if clinics == nil {
		clinics = []*model.Clinic{}
	}
	c.JSON(http.StatusOK, clinics)
}

func (h *Handler) GetClinicBySlug(c *gin.Context) {
	clinic, err := h.service.ResolveSlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, handler.NewErrorResponse("clinic not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to fetch clinic"))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(clinic))
}

func (h *Handler) ListCities(c *gin.Context) {
	cities, err := h.service.ListCities(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to fetch cities"))
		return
	}

	if cities == nil {
		cities = []string{}
	}
	c.JSON(http.StatusOK, cities)
}
