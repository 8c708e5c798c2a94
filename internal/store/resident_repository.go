package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/FrozenBlaze69/SODISEN-sub000/internal/model"
)

const residentCollection = "residents"

// ResidentRepository persists the facility's resident records.
type ResidentRepository struct {
	db  *Mongo
	log *zap.Logger
}

// NewResidentRepository creates a resident repository.
func NewResidentRepository(db *Mongo, log *zap.Logger) *ResidentRepository {
	return &ResidentRepository{
		db:  db,
		log: log.Named("resident-repository"),
	}
}

// CreateResident inserts a new resident.
func (r *ResidentRepository) CreateResident(ctx context.Context, res *model.Resident) error {
	if res.ID == "" {
		res.ID = uuid.New().String()
	}
	now := time.Now()
	res.CreatedAt = now
	res.UpdatedAt = now

	if _, err := r.db.Collection(residentCollection).InsertOne(ctx, res); err != nil {
		return fmt.Errorf("failed to insert resident: %w", err)
	}

	r.log.Info("resident created", zap.String("id", res.ID), zap.String("room", res.Room))
	return nil
}

// ListResidents returns residents ordered by last name. When activeOnly is
// set, residents marked inactive are filtered out.
func (r *ResidentRepository) ListResidents(ctx context.Context, activeOnly bool) ([]*model.Resident, error) {
	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "last_name", Value: 1}})

	cursor, err := r.db.Collection(residentCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list residents: %w", err)
	}
	defer cursor.Close(ctx)

	residents := make([]*model.Resident, 0)
	if err := cursor.All(ctx, &residents); err != nil {
		return nil, fmt.Errorf("failed to decode residents: %w", err)
	}
	return residents, nil
}

// GetResident fetches one resident by ID.
func (r *ResidentRepository) GetResident(ctx context.Context, id string) (*model.Resident, error) {
	var res model.Resident
	err := r.db.Collection(residentCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&res)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch resident: %w", err)
	}
	return &res, nil
}

// UpdateResident replaces the stored record, refreshing the modification time.
func (r *ResidentRepository) UpdateResident(ctx context.Context, res *model.Resident) error {
	res.UpdatedAt = time.Now()

	result, err := r.db.Collection(residentCollection).
		ReplaceOne(ctx, bson.M{"_id": res.ID}, res)
	if err != nil {
		return fmt.Errorf("failed to update resident: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteResident removes one resident by ID.
func (r *ResidentRepository) DeleteResident(ctx context.Context, id string) error {
	res, err := r.db.Collection(residentCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete resident: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
