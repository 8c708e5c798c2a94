package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/FrozenBlaze69/SODISEN-sub000/internal/model"
)

const menuCollection = "weekly_menus"

// MenuRepository persists imported weekly menus, one document per upload.
type MenuRepository struct {
	db  *Mongo
	log *zap.Logger
}

// NewMenuRepository creates a menu repository.
func NewMenuRepository(db *Mongo, log *zap.Logger) *MenuRepository {
	return &MenuRepository{
		db:  db,
		log: log.Named("menu-repository"),
	}
}

// SaveWeeklyMenu stores one imported menu.
func (r *MenuRepository) SaveWeeklyMenu(ctx context.Context, menu *model.WeeklyMenu) error {
	if menu.ID == "" {
		menu.ID = uuid.New().String()
	}

	if _, err := r.db.Collection(menuCollection).InsertOne(ctx, menu); err != nil {
		return fmt.Errorf("failed to insert weekly menu: %w", err)
	}

	r.log.Info("weekly menu saved",
		zap.String("id", menu.ID),
		zap.String("week_of", menu.WeekOf),
		zap.Int("days", len(menu.Days)),
	)
	return nil
}

// ListWeeklyMenus returns all stored menus, most recent week first.
func (r *MenuRepository) ListWeeklyMenus(ctx context.Context) ([]*model.WeeklyMenu, error) {
	opts := options.Find().SetSort(bson.D{{Key: "week_of", Value: -1}})

	cursor, err := r.db.Collection(menuCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list weekly menus: %w", err)
	}
	defer cursor.Close(ctx)

	menus := make([]*model.WeeklyMenu, 0)
	if err := cursor.All(ctx, &menus); err != nil {
		return nil, fmt.Errorf("failed to decode weekly menus: %w", err)
	}
	return menus, nil
}

// GetWeeklyMenu fetches one menu by ID.
func (r *MenuRepository) GetWeeklyMenu(ctx context.Context, id string) (*model.WeeklyMenu, error) {
	var menu model.WeeklyMenu
	err := r.db.Collection(menuCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&menu)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weekly menu: %w", err)
	}
	return &menu, nil
}

// DeleteWeeklyMenu removes one menu by ID.
func (r *MenuRepository) DeleteWeeklyMenu(ctx context.Context, id string) error {
	res, err := r.db.Collection(menuCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete weekly menu: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
