package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FrozenBlaze69/SODISEN-sub000/internal/model"
	"github.com/FrozenBlaze69/SODISEN-sub000/internal/store"
)

// ReservationRequest books guest seats for one meal.
type ReservationRequest struct {
	ResidentID string           `json:"residentId"`
	Date       string           `json:"date"`
	MealPeriod model.MealPeriod `json:"mealPeriod"`
	GuestCount int              `json:"guestCount"`
	Note       string           `json:"note"`
}

func (r *ReservationRequest) validate() string {
	if r.ResidentID == "" {
		return "residentId is required"
	}
	if !apiDateRe.MatchString(r.Date) {
		return "date must be in YYYY-MM-DD format"
	}
	if r.MealPeriod != model.MealPeriodLunch && r.MealPeriod != model.MealPeriodDinner {
		return "mealPeriod must be lunch or dinner"
	}
	if r.GuestCount < 1 {
		return "guestCount must be at least 1"
	}
	return ""
}

// ReservationPatch is the partial-update payload for a reservation.
type ReservationPatch struct {
	GuestCount *int                     `json:"guestCount"`
	Note       *string                  `json:"note"`
	Status     *model.ReservationStatus `json:"status"`
}

// ListReservations returns reservations; ?date= limits to one day.
// GET /api/reservations
func (h *Handler) ListReservations(c *gin.Context) {
	date := c.Query("date")
	if date != "" && !apiDateRe.MatchString(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in YYYY-MM-DD format"})
		return
	}

	reservations, err := h.stores.Reservations.ListReservations(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reservations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations, "count": len(reservations)})
}

// CreateReservation books guest seats.
// POST /api/reservations
func (h *Handler) CreateReservation(c *gin.Context) {
	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	res := &model.Reservation{
		ResidentID: req.ResidentID,
		Date:       req.Date,
		MealPeriod: req.MealPeriod,
		GuestCount: req.GuestCount,
		Note:       req.Note,
	}
	if err := h.stores.Reservations.CreateReservation(c.Request.Context(), res); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create reservation"})
		return
	}
	c.JSON(http.StatusCreated, res)
}

// UpdateReservation patches one reservation.
// PATCH /api/reservations/:id
func (h *Handler) UpdateReservation(c *gin.Context) {
	var patch ReservationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if patch.GuestCount != nil && *patch.GuestCount < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "guestCount must be at least 1"})
		return
	}

	err := h.stores.Reservations.UpdateReservation(
		c.Request.Context(), c.Param("id"), patch.GuestCount, patch.Note, patch.Status)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update reservation"})
		return
	}

	res, err := h.stores.Reservations.GetReservation(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reservation"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// CancelReservation marks one reservation cancelled.
// DELETE /api/reservations/:id
func (h *Handler) CancelReservation(c *gin.Context) {
	err := h.stores.Reservations.CancelReservation(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel reservation"})
		return
	}
	c.Status(http.StatusNoContent)
}
