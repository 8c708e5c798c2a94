package api

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"github.com/FrozenBlaze69/SODISEN-sub000/internal/model"
)

var apiDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// AttendanceRequest marks one resident's presence at one meal.
type AttendanceRequest struct {
	ResidentID string           `json:"residentId"`
	Date       string           `json:"date"`
	MealPeriod model.MealPeriod `json:"mealPeriod"`
	Present    bool             `json:"present"`
}

func (r *AttendanceRequest) validate() string {
	if r.ResidentID == "" {
		return "residentId is required"
	}
	if !apiDateRe.MatchString(r.Date) {
		return "date must be in YYYY-MM-DD format"
	}
	if r.MealPeriod != model.MealPeriodLunch && r.MealPeriod != model.MealPeriodDinner {
		return "mealPeriod must be lunch or dinner"
	}
	return ""
}

// ListAttendance returns every attendance mark of one day.
// GET /api/attendance?date=YYYY-MM-DD
func (h *Handler) ListAttendance(c *gin.Context) {
	date := c.Query("date")
	if !apiDateRe.MatchString(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in YYYY-MM-DD format"})
		return
	}

	records, err := h.stores.Attendance.ListAttendance(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list attendance"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"attendance": records, "count": len(records)})
}

// RecordAttendance upserts one attendance mark.
// POST /api/attendance
func (h *Handler) RecordAttendance(c *gin.Context) {
	var req AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	rec := &model.AttendanceRecord{
		ResidentID: req.ResidentID,
		Date:       req.Date,
		MealPeriod: req.MealPeriod,
		Present:    req.Present,
	}
	if err := h.stores.Attendance.UpsertAttendance(c.Request.Context(), rec); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record attendance"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// AttendanceSummary returns the confirmed headcount per meal for one day.
// GET /api/attendance/summary?date=YYYY-MM-DD
func (h *Handler) AttendanceSummary(c *gin.Context) {
	date := c.Query("date")
	if !apiDateRe.MatchString(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in YYYY-MM-DD format"})
		return
	}

	summary, err := h.stores.Attendance.AttendanceSummary(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build attendance summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
