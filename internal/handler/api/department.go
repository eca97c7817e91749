package api

import (
	"net/http"

	resdto "campus-booking/internal/handler/dto/response"
	"campus-booking/internal/handler/httperr"
	"campus-booking/internal/handler/middleware"
	"campus-booking/internal/pkg/errs"
	"campus-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DepartmentHandler struct {
	reservations queries.ReservationQueries
}

func NewDepartmentHandler(reservations queries.ReservationQueries) *DepartmentHandler {
	return &DepartmentHandler{reservations: reservations}
}

// @Summary Department queue
// @Description All reservations for a department's venues (department head only)
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department identifier"
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 403 {object} httperr.Response
// @Router /departments/{id}/reservations [get]
func (h *DepartmentHandler) ListDepartmentReservations(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("actor missing from context"), "Internal server error", nil)
		return
	}

	items, err := h.reservations.ListForDepartment(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationList(items))
}
