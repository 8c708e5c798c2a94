package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/FrozenBlaze69/SODISEN-sub000/internal/model"
	"github.com/FrozenBlaze69/SODISEN-sub000/internal/store"
)

// ResidentRequest is the create/update payload for a resident.
type ResidentRequest struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Room      string   `json:"room"`
	Diets     []string `json:"diets"`
	Allergies []string `json:"allergies"`
	Notes     string   `json:"notes"`
	Active    *bool    `json:"active"`
}

func (r *ResidentRequest) validate() string {
	if strings.TrimSpace(r.FirstName) == "" || strings.TrimSpace(r.LastName) == "" {
		return "firstName and lastName are required"
	}
	return ""
}

// ListResidents returns residents; ?active=true limits to active ones.
// GET /api/residents
func (h *Handler) ListResidents(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	residents, err := h.stores.Residents.ListResidents(c.Request.Context(), activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list residents"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"residents": residents, "count": len(residents)})
}

// CreateResident registers a new resident.
// POST /api/residents
func (h *Handler) CreateResident(c *gin.Context) {
	var req ResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	res := &model.Resident{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Room:      strings.TrimSpace(req.Room),
		Diets:     req.Diets,
		Allergies: req.Allergies,
		Notes:     req.Notes,
		Active:    true,
	}
	if req.Active != nil {
		res.Active = *req.Active
	}

	if err := h.stores.Residents.CreateResident(c.Request.Context(), res); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create resident"})
		return
	}
	c.JSON(http.StatusCreated, res)
}

// GetResident returns one resident.
// GET /api/residents/:id
func (h *Handler) GetResident(c *gin.Context) {
	res, err := h.stores.Residents.GetResident(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "resident not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch resident"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// UpdateResident applies a partial update to one resident.
// PATCH /api/residents/:id
func (h *Handler) UpdateResident(c *gin.Context) {
	ctx := c.Request.Context()

	res, err := h.stores.Residents.GetResident(ctx, c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "resident not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch resident"})
		return
	}

	var req ResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if strings.TrimSpace(req.FirstName) != "" {
		res.FirstName = strings.TrimSpace(req.FirstName)
	}
	if strings.TrimSpace(req.LastName) != "" {
		res.LastName = strings.TrimSpace(req.LastName)
	}
	if strings.TrimSpace(req.Room) != "" {
		res.Room = strings.TrimSpace(req.Room)
	}
	if req.Diets != nil {
		res.Diets = req.Diets
	}
	if req.Allergies != nil {
		res.Allergies = req.Allergies
	}
	if req.Notes != "" {
		res.Notes = req.Notes
	}
	if req.Active != nil {
		res.Active = *req.Active
	}

	if err := h.stores.Residents.UpdateResident(ctx, res); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update resident"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteResident removes one resident.
// DELETE /api/residents/:id
func (h *Handler) DeleteResident(c *gin.Context) {
	err := h.stores.Residents.DeleteResident(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "resident not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete resident"})
		return
	}
	c.Status(http.StatusNoContent)
}
