package api

import (
	"errors"
	"net/http"

	resdto "arenaos/internal/handler/dto/response"
	"arenaos/internal/handler/httperr"
	"arenaos/internal/pkg/errs"
	"arenaos/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VenueHandler struct {
	venueQueries queries.VenueQueries
}

func NewVenueHandler(venueQueries queries.VenueQueries) *VenueHandler {
	return &VenueHandler{venueQueries: venueQueries}
}

// @Summary List resources
// @Description List all bookable resources of the venue
// @Tags venue
// @Produce json
// @Success 200 {array} resdto.ResourceResponse
// @Router /resources [get]
func (h *VenueHandler) ListResources(c *gin.Context) {
	views, err := h.venueQueries.ListResources(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromResourceViews(views))
}

// @Summary Get resource
// @Description Get one bookable resource
// @Tags venue
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} resdto.ResourceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{id} [get]
func (h *VenueHandler) GetResource(c *gin.Context) {
	id, ok := pathUUID(c, "id", "Invalid resource id")
	if !ok {
		return
	}

	view, err := h.venueQueries.GetResource(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrResourceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromResourceView(view))
}

// @Summary Get policy
// @Description Current cancellation and check-in policy
// @Tags venue
// @Produce json
// @Success 200 {object} resdto.PolicyResponse
// @Router /policy [get]
func (h *VenueHandler) GetPolicy(c *gin.Context) {
	view, err := h.venueQueries.GetPolicy(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPolicyView(view))
}

// @Summary Get tenant
// @Description Venue operator profile including branding
// @Tags venue
// @Produce json
// @Success 200 {object} resdto.TenantResponse
// @Router /tenant [get]
func (h *VenueHandler) GetTenant(c *gin.Context) {
	view, err := h.venueQueries.GetTenant(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTenantView(view))
}
