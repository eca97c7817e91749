package api

import (
	"net/http"

	"campus-booking/internal/handler/httperr"
	"campus-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// respondDomainError maps usecase sentinels onto HTTP statuses in one place,
// so every handler surfaces the same taxonomy. Matching goes through errs.Is
// because the sentinels are attached as marks, which the stdlib errors.Is
// cannot see.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrValidation), errs.Is(err, errs.ErrInvalidDecision):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
	case errs.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Operation not permitted", nil)
	case errs.Is(err, errs.ErrVenueNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Venue not found", nil)
	case errs.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errs.Is(err, errs.ErrSlotUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Requested slots are unavailable", nil)
	case errs.Is(err, errs.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Reservation is already decided", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
