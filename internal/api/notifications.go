package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/FrozenBlaze69/SODISEN-sub000/internal/model"
	"github.com/FrozenBlaze69/SODISEN-sub000/internal/store"
)

// NotificationRequest creates a dashboard notification.
type NotificationRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Level string `json:"level"`
}

var notificationLevels = map[string]bool{
	"":        true, // defaults to info in the store
	"info":    true,
	"warning": true,
	"alert":   true,
}

// ListNotifications returns notifications; ?unread=true limits to unread.
// GET /api/notifications
func (h *Handler) ListNotifications(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"

	notifications, err := h.stores.Notifications.ListNotifications(c.Request.Context(), unreadOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications, "count": len(notifications)})
}

// CreateNotification publishes a notification to the dashboard.
// POST /api/notifications
func (h *Handler) CreateNotification(c *gin.Context) {
	var req NotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	if !notificationLevels[req.Level] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "level must be one of info, warning, alert"})
		return
	}

	n := &model.Notification{
		Title: strings.TrimSpace(req.Title),
		Body:  req.Body,
		Level: req.Level,
	}
	if err := h.stores.Notifications.CreateNotification(c.Request.Context(), n); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create notification"})
		return
	}
	c.JSON(http.StatusCreated, n)
}

// MarkNotificationRead stamps one notification as read.
// POST /api/notifications/:id/read
func (h *Handler) MarkNotificationRead(c *gin.Context) {
	err := h.stores.Notifications.MarkNotificationRead(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark notification read"})
		return
	}
	c.Status(http.StatusNoContent)
}
