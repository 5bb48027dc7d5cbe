package api

import (
	"errors"
	"net/http"

	"arenaos/internal/domain/user"
	reqdto "arenaos/internal/handler/dto/request"
	"arenaos/internal/handler/httperr"
	"arenaos/internal/handler/middleware"
	"arenaos/internal/pkg/errs"
	"arenaos/internal/pkg/geo"
	"arenaos/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

var errLocationRequired = errs.New("location required for check-in")

type CheckInHandler struct {
	checkInCommands commands.CheckInCommands
}

func NewCheckInHandler(checkInCommands commands.CheckInCommands) *CheckInHandler {
	return &CheckInHandler{checkInCommands: checkInCommands}
}

// @Summary Check in
// @Description Authorize physical entry for a confirmed booking
// @Tags check-in
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CheckInRequest true "Observed location"
// @Success 200 {object} commands.CheckInResult
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} commands.CheckInResult
// @Router /bookings/{id}/checkin [post]
func (h *CheckInHandler) CheckIn(c *gin.Context) {
	id, ok := pathUUID(c, "id", "Invalid booking id")
	if !ok {
		return
	}

	var req reqdto.CheckInRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	params := commands.CheckInParams{BookingID: id}
	if req.HasLocation() {
		params.Location = &geo.Point{Lat: *req.Lat, Lng: *req.Lng}
	} else {
		// Omitting the location is the desk's manual path. Players
		// must send a fix; only desk roles may vouch in person.
		role, hasRole := middleware.GetUserRole(c)
		if !hasRole || (role != user.RoleStaff && role != user.RoleAdmin) {
			httperr.AbortWithError(c, http.StatusBadRequest, errLocationRequired, "Location required for check-in", nil)
			return
		}
	}

	result, err := h.checkInCommands.Authorize(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCheckInRejected):
			c.JSON(http.StatusUnprocessableEntity, result)
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
