package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FrozenBlaze69/SODISEN-sub000/internal/store"
)

// ListMenus returns every stored weekly menu, most recent first.
// GET /api/menus
func (h *Handler) ListMenus(c *gin.Context) {
	menus, err := h.stores.Menus.ListWeeklyMenus(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list menus"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menus": menus, "count": len(menus)})
}

// GetMenu returns one weekly menu.
// GET /api/menus/:id
func (h *Handler) GetMenu(c *gin.Context) {
	menu, err := h.stores.Menus.GetWeeklyMenu(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch menu"})
		return
	}
	c.JSON(http.StatusOK, menu)
}

// DeleteMenu removes one weekly menu.
// DELETE /api/menus/:id
func (h *Handler) DeleteMenu(c *gin.Context) {
	err := h.stores.Menus.DeleteWeeklyMenu(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete menu"})
		return
	}
	c.Status(http.StatusNoContent)
}
