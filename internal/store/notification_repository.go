package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/FrozenBlaze69/SODISEN-sub000/internal/model"
)

const notificationCollection = "notifications"

// NotificationRepository persists dashboard notifications.
type NotificationRepository struct {
	db  *Mongo
	log *zap.Logger
}

// NewNotificationRepository creates a notification repository.
func NewNotificationRepository(db *Mongo, log *zap.Logger) *NotificationRepository {
	return &NotificationRepository{
		db:  db,
		log: log.Named("notification-repository"),
	}
}

// CreateNotification inserts a new notification.
func (r *NotificationRepository) CreateNotification(ctx context.Context, n *model.Notification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.Level == "" {
		n.Level = "info"
	}
	n.CreatedAt = time.Now()

	if _, err := r.db.Collection(notificationCollection).InsertOne(ctx, n); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

// ListNotifications returns notifications newest first, optionally only the
// unread ones.
func (r *NotificationRepository) ListNotifications(ctx context.Context, unreadOnly bool) ([]*model.Notification, error) {
	filter := bson.M{}
	if unreadOnly {
		filter["read_at"] = bson.M{"$exists": false}
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection(notificationCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer cursor.Close(ctx)

	notifications := make([]*model.Notification, 0)
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return notifications, nil
}

// MarkNotificationRead stamps one notification as read.
func (r *NotificationRepository) MarkNotificationRead(ctx context.Context, id string) error {
	now := time.Now()
	res, err := r.db.Collection(notificationCollection).
		UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"read_at": now}})
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
