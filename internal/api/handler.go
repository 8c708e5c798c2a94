package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FrozenBlaze69/SODISEN-sub000/internal/config"
	"github.com/FrozenBlaze69/SODISEN-sub000/internal/model"
)

// MenuStore is the menu persistence surface the handlers need.
type MenuStore interface {
	SaveWeeklyMenu(ctx context.Context, menu *model.WeeklyMenu) error
	ListWeeklyMenus(ctx context.Context) ([]*model.WeeklyMenu, error)
	GetWeeklyMenu(ctx context.Context, id string) (*model.WeeklyMenu, error)
	DeleteWeeklyMenu(ctx context.Context, id string) error
}

// ResidentStore is the resident persistence surface the handlers need.
type ResidentStore interface {
	CreateResident(ctx context.Context, res *model.Resident) error
	ListResidents(ctx context.Context, activeOnly bool) ([]*model.Resident, error)
	GetResident(ctx context.Context, id string) (*model.Resident, error)
	UpdateResident(ctx context.Context, res *model.Resident) error
	DeleteResident(ctx context.Context, id string) error
}

// AttendanceStore is the attendance persistence surface the handlers need.
type AttendanceStore interface {
	UpsertAttendance(ctx context.Context, rec *model.AttendanceRecord) error
	ListAttendance(ctx context.Context, date string) ([]*model.AttendanceRecord, error)
	AttendanceSummary(ctx context.Context, date string) (*model.AttendanceSummary, error)
}

// ReservationStore is the reservation persistence surface the handlers need.
type ReservationStore interface {
	CreateReservation(ctx context.Context, res *model.Reservation) error
	ListReservations(ctx context.Context, date string) ([]*model.Reservation, error)
	GetReservation(ctx context.Context, id string) (*model.Reservation, error)
	UpdateReservation(ctx context.Context, id string, guestCount *int, note *string, status *model.ReservationStatus) error
	CancelReservation(ctx context.Context, id string) error
}

// NotificationStore is the notification persistence surface the handlers need.
type NotificationStore interface {
	CreateNotification(ctx context.Context, n *model.Notification) error
	ListNotifications(ctx context.Context, unreadOnly bool) ([]*model.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
}

// HealthChecker reports store reachability for the status endpoint.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Stores bundles the persistence collaborators handed to the handler.
type Stores struct {
	Menus         MenuStore
	Residents     ResidentStore
	Attendance    AttendanceStore
	Reservations  ReservationStore
	Notifications NotificationStore
	Health        HealthChecker
}

// Handler serves the dashboard JSON API.
type Handler struct {
	stores  Stores
	cfg     *config.AppConfig
	log     *zap.Logger
	started time.Time
}

// NewHandler creates the API handler.
func NewHandler(stores Stores, cfg *config.AppConfig, log *zap.Logger) *Handler {
	return &Handler{
		stores:  stores,
		cfg:     cfg,
		log:     log.Named("api"),
		started: time.Now(),
	}
}

// RegisterRoutes registers every API route on the given group.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/status", h.GetStatus)

	router.GET("/config", h.GetConfig)
	router.PATCH("/config", h.UpdateConfig)

	router.POST("/menus/import", h.ImportMenu)
	router.GET("/menus", h.ListMenus)
	router.GET("/menus/:id", h.GetMenu)
	router.DELETE("/menus/:id", h.DeleteMenu)

	router.GET("/residents", h.ListResidents)
	router.POST("/residents", h.CreateResident)
	router.GET("/residents/:id", h.GetResident)
	router.PATCH("/residents/:id", h.UpdateResident)
	router.DELETE("/residents/:id", h.DeleteResident)

	router.GET("/attendance", h.ListAttendance)
	router.POST("/attendance", h.RecordAttendance)
	router.GET("/attendance/summary", h.AttendanceSummary)

	router.GET("/reservations", h.ListReservations)
	router.POST("/reservations", h.CreateReservation)
	router.PATCH("/reservations/:id", h.UpdateReservation)
	router.DELETE("/reservations/:id", h.CancelReservation)

	router.GET("/notifications", h.ListNotifications)
	router.POST("/notifications", h.CreateNotification)
	router.POST("/notifications/:id/read", h.MarkNotificationRead)
}
