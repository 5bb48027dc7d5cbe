package api

import (
	"errors"
	"net/http"

	"arenaos/internal/domain/ledger"
	"arenaos/internal/domain/user"
	resdto "arenaos/internal/handler/dto/response"
	"arenaos/internal/handler/httperr"
	"arenaos/internal/handler/middleware"
	"arenaos/internal/pkg/errs"
	"arenaos/internal/usecase/commands"
	"arenaos/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LedgerHandler struct {
	ledgerCommands commands.LedgerCommands
	ledgerQueries  queries.LedgerQueries
}

func NewLedgerHandler(ledgerCommands commands.LedgerCommands, ledgerQueries queries.LedgerQueries) *LedgerHandler {
	return &LedgerHandler{
		ledgerCommands: ledgerCommands,
		ledgerQueries:  ledgerQueries,
	}
}

// @Summary List transactions
// @Description List the ledger entries for the current user. Staff may pass ?status= to see the venue-wide slice in that status instead.
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter venue-wide by status (staff only)"
// @Success 200 {array} resdto.TransactionResponse
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /transactions [get]
func (h *LedgerHandler) ListUserTransactions(c *gin.Context) {
	if status := c.Query("status"); status != "" {
		h.listByStatus(c, status)
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal error", nil)
		return
	}

	views, err := h.ledgerQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTransactionViews(views))
}

// listByStatus is the reconciliation view: every entry in one status
// across all users, so the desk can chase unsettled payments.
func (h *LedgerHandler) listByStatus(c *gin.Context, status string) {
	role, ok := middleware.GetUserRole(c)
	if !ok || (role != user.RoleStaff && role != user.RoleAdmin) {
		httperr.AbortWithError(c, http.StatusForbidden, errs.New("status filter requires staff role"), "Access denied", nil)
		return
	}

	views, err := h.ledgerQueries.ListByStatus(c.Request.Context(), status)
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidStatus) {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Unknown status", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTransactionViews(views))
}

// @Summary List booking transactions
// @Description List the ledger entries of one booking
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {array} resdto.TransactionResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings/{id}/transactions [get]
func (h *LedgerHandler) ListBookingTransactions(c *gin.Context) {
	id, ok := pathUUID(c, "id", "Invalid booking id")
	if !ok {
		return
	}

	views, err := h.ledgerQueries.ListByBooking(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTransactionViews(views))
}

// @Summary Verify transaction
// @Description Staff confirmation that a payment arrived out of band
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} commands.VerifyResult
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /transactions/{id}/verify [post]
func (h *LedgerHandler) VerifyTransaction(c *gin.Context) {
	id, ok := pathUUID(c, "id", "Invalid transaction id")
	if !ok {
		return
	}

	result, err := h.ledgerCommands.Verify(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTransactionNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Transaction not found", nil)
		case errors.Is(err, commands.ErrNotVerifiable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Transaction cannot be verified", nil)
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, commands.ErrInvalidStateTransition):
			httperr.AbortWithError(c, http.StatusConflict, err, "State does not allow this operation", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
