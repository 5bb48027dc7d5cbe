package api

import (
	"errors"
	"net/http"

	reqdto "arenaos/internal/handler/dto/request"
	resdto "arenaos/internal/handler/dto/response"
	"arenaos/internal/handler/httperr"
	"arenaos/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminCommands commands.AdminCommands
}

func NewAdminHandler(adminCommands commands.AdminCommands) *AdminHandler {
	return &AdminHandler{adminCommands: adminCommands}
}

// @Summary Add resource
// @Description Register a new bookable resource
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddResourceRequest true "Resource"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/resources [post]
func (h *AdminHandler) AddResource(c *gin.Context) {
	var req reqdto.AddResourceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	id, err := h.adminCommands.AddResource(c.Request.Context(), commands.AddResourceParams{
		Name:            req.Name,
		Type:            req.Type,
		Mode:            req.Mode,
		Capacity:        req.Capacity,
		HourlyRateCents: req.HourlyRateCents,
		ImageURL:        req.ImageURL,
	})
	if err != nil {
		h.respondAdminError(c, err)
		return
	}

	c.JSON(http.StatusCreated, &resdto.CreatedResponse{ID: id})
}

// @Summary Add rate card
// @Description Register a pricing card for a resource type
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddRateCardRequest true "Rate card"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/rate-cards [post]
func (h *AdminHandler) AddRateCard(c *gin.Context) {
	var req reqdto.AddRateCardRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	id, err := h.adminCommands.AddRateCard(c.Request.Context(), commands.AddRateCardParams{
		Name:            req.Name,
		ResourceType:    req.ResourceType,
		BaseRateCents:   req.BaseRateCents,
		PeakRateCents:   req.PeakRateCents,
		PeakHours:       req.PeakHours,
		WeekendModifier: req.WeekendModifier,
	})
	if err != nil {
		h.respondAdminError(c, err)
		return
	}

	c.JSON(http.StatusCreated, &resdto.CreatedResponse{ID: id})
}

// @Summary Update policy
// @Description Replace the venue-wide booking policy
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdatePolicyRequest true "Policy"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/policy [put]
func (h *AdminHandler) UpdatePolicy(c *gin.Context) {
	var req reqdto.UpdatePolicyRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	err := h.adminCommands.UpdatePolicy(c.Request.Context(), commands.UpdatePolicyParams{
		CancelWindowHrs:    req.CancelWindowHrs,
		RefundPercentage:   req.RefundPercentage,
		GPSRadiusMeters:    req.GPSRadiusMeters,
		CheckInWindowMins:  req.CheckInWindowMins,
		NoShowPenaltyCents: req.NoShowPenaltyCents,
	})
	if err != nil {
		h.respondAdminError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Update branding
// @Description Replace the tenant's branding settings
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateBrandingRequest true "Branding"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Router /admin/branding [put]
func (h *AdminHandler) UpdateBranding(c *gin.Context) {
	var req reqdto.UpdateBrandingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	err := h.adminCommands.UpdateBranding(c.Request.Context(), commands.UpdateBrandingParams{
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		LogoURL:        req.LogoURL,
		BackgroundURL:  req.BackgroundURL,
	})
	if err != nil {
		h.respondAdminError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Update integration
// @Description Replace the payment collaborator settings
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateIntegrationRequest true "Integration"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Router /admin/integration [put]
func (h *AdminHandler) UpdateIntegration(c *gin.Context) {
	var req reqdto.UpdateIntegrationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	err := h.adminCommands.UpdateIntegration(c.Request.Context(), commands.UpdateIntegrationParams{
		APIKey:     req.APIKey,
		WebhookURL: req.WebhookURL,
	})
	if err != nil {
		h.respondAdminError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) respondAdminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrInvalidAdminInput):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Input failed validation", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
