package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FrozenBlaze69/SODISEN-sub000/internal/config"
)

// ConfigResponse is the runtime-tunable slice of the configuration.
type ConfigResponse struct {
	FacilityName          string  `json:"facilityName"`
	GuestMealPrice        float64 `json:"guestMealPrice"`
	ReservationCutoffHour int     `json:"reservationCutoffHour"`
}

// ConfigPatch is the partial-update payload for the business settings.
type ConfigPatch struct {
	FacilityName          *string  `json:"facilityName"`
	GuestMealPrice        *float64 `json:"guestMealPrice"`
	ReservationCutoffHour *int     `json:"reservationCutoffHour"`
}

// GetConfig returns the business settings.
// GET /api/config
func (h *Handler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, ConfigResponse{
		FacilityName:          h.cfg.Business.FacilityName,
		GuestMealPrice:        h.cfg.Business.GuestMealPrice,
		ReservationCutoffHour: h.cfg.Business.ReservationCutoffHour,
	})
}

// UpdateConfig patches the business settings and persists them.
// PATCH /api/config
func (h *Handler) UpdateConfig(c *gin.Context) {
	var patch ConfigPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if patch.FacilityName != nil {
		h.cfg.Business.FacilityName = *patch.FacilityName
	}
	if patch.GuestMealPrice != nil {
		if *patch.GuestMealPrice < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "guestMealPrice must not be negative"})
			return
		}
		h.cfg.Business.GuestMealPrice = *patch.GuestMealPrice
	}
	if patch.ReservationCutoffHour != nil {
		if *patch.ReservationCutoffHour < 0 || *patch.ReservationCutoffHour > 23 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "reservationCutoffHour must be between 0 and 23"})
			return
		}
		h.cfg.Business.ReservationCutoffHour = *patch.ReservationCutoffHour
	}

	if err := config.SaveConfig(h.cfg); err != nil {
		h.log.Warn("failed to persist configuration")
	}

	h.GetConfig(c)
}
