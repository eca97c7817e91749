package api

import (
	"net/http"

	reqdto "campus-booking/internal/handler/dto/request"
	resdto "campus-booking/internal/handler/dto/response"
	"campus-booking/internal/handler/httperr"
	"campus-booking/internal/handler/middleware"
	"campus-booking/internal/pkg/errs"
	"campus-booking/internal/usecase/commands"
	"campus-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VenueHandler struct {
	venues       queries.VenueQueries
	reservations queries.ReservationQueries
	commands     commands.ReservationCommands
}

func NewVenueHandler(
	venues queries.VenueQueries,
	reservations queries.ReservationQueries,
	cmds commands.ReservationCommands,
) *VenueHandler {
	return &VenueHandler{
		venues:       venues,
		reservations: reservations,
		commands:     cmds,
	}
}

// @Summary List venues
// @Description All bookable venues with their owning departments
// @Tags venues
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.VenueResponse
// @Router /venues [get]
func (h *VenueHandler) ListVenues(c *gin.Context) {
	views, err := h.venues.List(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromVenueList(views))
}

// @Summary Get venue
// @Tags venues
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Success 200 {object} resdto.VenueResponse
// @Failure 404 {object} httperr.Response
// @Router /venues/{id} [get]
func (h *VenueHandler) GetVenue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid venue ID format", nil)
		return
	}

	view, err := h.venues.GetByID(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromVenueView(view))
}

// @Summary Venue availability
// @Description Free slots for a venue on one date, in catalog order
// @Tags venues
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /venues/{id}/availability [get]
func (h *VenueHandler) GetAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid venue ID format", nil)
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("date query parameter required"), "Date query parameter required", nil)
		return
	}

	free, err := h.reservations.AvailableSlots(c.Request.Context(), id, date)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	slots := make([]string, len(free))
	for i, s := range free {
		slots[i] = s.String()
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		VenueID: id,
		Date:    date,
		Slots:   slots,
	})
}

// @Summary Venue schedule
// @Description Reservations for a venue, optionally bounded by date range
// @Tags venues
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /venues/{id}/reservations [get]
func (h *VenueHandler) ListVenueReservations(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("actor missing from context"), "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid venue ID format", nil)
		return
	}

	items, err := h.reservations.ListForVenue(c.Request.Context(), actor, id, c.Query("from"), c.Query("to"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationList(items))
}

// @Summary Block slots
// @Description Caretaker takes slots out of availability without approval
// @Tags venues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Param request body reqdto.CreateBlockRequest true "Block request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /venues/{id}/blocks [post]
func (h *VenueHandler) CreateBlock(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("actor missing from context"), "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid venue ID format", nil)
		return
	}

	var req reqdto.CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.Block(c.Request.Context(), actor, commands.BlockParams{
		VenueID: id,
		Date:    req.Date,
		Slots:   req.Slots,
		Reason:  req.Reason,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Remove block
// @Description Caretaker removes their own block; the slots reappear
// @Tags venues
// @Security BearerAuth
// @Param id path string true "Block reservation ID"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /blocks/{id} [delete]
func (h *VenueHandler) DeleteBlock(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("actor missing from context"), "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid block ID format", nil)
		return
	}

	if err := h.commands.Unblock(c.Request.Context(), actor, id); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
