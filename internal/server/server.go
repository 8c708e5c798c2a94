package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FrozenBlaze69/SODISEN-sub000/internal/api"
	"github.com/FrozenBlaze69/SODISEN-sub000/internal/config"
	"github.com/FrozenBlaze69/SODISEN-sub000/internal/store"
)

// Server wires the HTTP surface to the document store.
type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *store.Mongo
	log    *zap.Logger
}

// New connects the store and builds the router.
func New(cfg *config.AppConfig, log *zap.Logger) (*Server, error) {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Mongo.TimeoutSeconds)*time.Second)
	defer cancel()

	db, err := store.NewMongo(ctx, cfg.Mongo.URI, cfg.Mongo.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	handler := api.NewHandler(api.Stores{
		Menus:         store.NewMenuRepository(db, log),
		Residents:     store.NewResidentRepository(db, log),
		Attendance:    store.NewAttendanceRepository(db, log),
		Reservations:  store.NewReservationRepository(db, log),
		Notifications: store.NewNotificationRepository(db, log),
		Health:        db,
	}, cfg, log)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.MaxMultipartMemory = cfg.Upload.MaxSizeMB * 1024 * 1024

	apiGroup := router.Group("/api")
	handler.RegisterRoutes(apiGroup)

	s := &Server{
		router: router,
		db:     db,
		log:    log.Named("server"),
		http: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
			Handler: router,
		},
	}
	return s, nil
}

// corsMiddleware allows the dashboard SPA, served elsewhere, to call the API.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// Run serves until Shutdown is called.
func (s *Server) Run() error {
	s.log.Info("listening", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the listener and closes the store connection.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.http.Shutdown(ctx); err != nil {
		return err
	}
	return s.db.Disconnect(ctx)
}
