package api

import (
	"errors"
	"net/http"
	"time"

	"arenaos/internal/domain/booking"
	reqdto "arenaos/internal/handler/dto/request"
	resdto "arenaos/internal/handler/dto/response"
	"arenaos/internal/handler/httperr"
	"arenaos/internal/handler/middleware"
	"arenaos/internal/pkg/errs"
	"arenaos/internal/usecase/commands"
	"arenaos/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// errMissingIdentity means RequireAuth let a request through without
// populating the context, which is a wiring bug rather than user error.
var errMissingIdentity = errs.New("authenticated user missing from context")

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Book a resource for one or more consecutive hours
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal error", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	result, err := h.bookingCommands.Create(c.Request.Context(), commands.CreateBookingParams{
		ResourceID: req.ResourceID,
		UserID:     userID,
		Date:       date,
		StartHour:  req.StartHour,
		Duration:   req.Duration,
		Quantity:   req.Quantity,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrResourceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
		case errors.Is(err, commands.ErrSlotUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot no longer available", nil)
		case errors.Is(err, commands.ErrInvalidBookingRequest):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Booking failed validation", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateBookingResult(result))
}

// @Summary Get booking
// @Description Get booking by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, ok := pathUUID(c, "id", "Invalid booking id")
	if !ok {
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List my bookings
// @Description List all bookings for the current user
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Router /bookings [get]
func (h *BookingHandler) ListUserBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal error", nil)
		return
	}

	views, err := h.bookingQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	out := make([]*resdto.BookingResponse, len(views))
	for i, view := range views {
		out[i] = resdto.FromBookingView(view)
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Slot availability
// @Description Remaining capacity per hour for a resource on a date
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{id}/availability [get]
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	id, ok := pathUUID(c, "id", "Invalid resource id")
	if !ok {
		return
	}

	date, err := parseDateQuery(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	view, err := h.bookingQueries.Availability(c.Request.Context(), id, date)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrResourceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Confirm payment
// @Description Webhook-style confirmation that a booking's payment settled
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/confirm [post]
func (h *BookingHandler) ConfirmPayment(c *gin.Context) {
	id, ok := pathUUID(c, "id", "Invalid booking id")
	if !ok {
		return
	}

	if err := h.bookingCommands.ConfirmPayment(c.Request.Context(), id); err != nil {
		respondTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": booking.StatusConfirmed.String()})
}

// @Summary Complete booking
// @Description Close out a checked-in or no-show session
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/complete [post]
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	id, ok := pathUUID(c, "id", "Invalid booking id")
	if !ok {
		return
	}

	if err := h.bookingCommands.Complete(c.Request.Context(), id); err != nil {
		respondTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": booking.StatusCompleted.String()})
}

// @Summary Cancel booking
// @Description Cancel a booking and issue the policy refund
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.CancelBookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, ok := pathUUID(c, "id", "Invalid booking id")
	if !ok {
		return
	}

	result, err := h.bookingCommands.Cancel(c.Request.Context(), id)
	if err != nil {
		respondTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, &resdto.CancelBookingResponse{RefundCents: result.RefundCents})
}

func respondTransitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, commands.ErrInvalidStateTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "State does not allow this operation", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}

func parseDateQuery(c *gin.Context) (time.Time, error) {
	return time.Parse("2006-01-02", c.Query("date"))
}

func pathUUID(c *gin.Context, param, msg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
		return uuid.Nil, false
	}
	return id, true
}
