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

const attendanceCollection = "attendance"

// AttendanceRepository persists per-meal attendance marks, one document per
// (resident, date, meal period).
type AttendanceRepository struct {
	db  *Mongo
	log *zap.Logger
}

// NewAttendanceRepository creates an attendance repository.
func NewAttendanceRepository(db *Mongo, log *zap.Logger) *AttendanceRepository {
	return &AttendanceRepository{
		db:  db,
		log: log.Named("attendance-repository"),
	}
}

// UpsertAttendance records or updates one attendance mark.
func (r *AttendanceRepository) UpsertAttendance(ctx context.Context, rec *model.AttendanceRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	rec.UpdatedAt = time.Now()

	filter := bson.M{
		"resident_id": rec.ResidentID,
		"date":        rec.Date,
		"meal_period": rec.MealPeriod,
	}
	update := bson.M{
		"$set": bson.M{
			"resident_id": rec.ResidentID,
			"date":        rec.Date,
			"meal_period": rec.MealPeriod,
			"present":     rec.Present,
			"updated_at":  rec.UpdatedAt,
		},
		"$setOnInsert": bson.M{"_id": rec.ID},
	}

	_, err := r.db.Collection(attendanceCollection).
		UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert attendance: %w", err)
	}
	return nil
}

// ListAttendance returns every mark recorded for one day.
func (r *AttendanceRepository) ListAttendance(ctx context.Context, date string) ([]*model.AttendanceRecord, error) {
	cursor, err := r.db.Collection(attendanceCollection).Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer cursor.Close(ctx)

	records := make([]*model.AttendanceRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode attendance: %w", err)
	}
	return records, nil
}

// AttendanceSummary counts the confirmed headcount per meal period for one day.
func (r *AttendanceRepository) AttendanceSummary(ctx context.Context, date string) (*model.AttendanceSummary, error) {
	coll := r.db.Collection(attendanceCollection)

	lunch, err := coll.CountDocuments(ctx, bson.M{
		"date": date, "meal_period": model.MealPeriodLunch, "present": true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count lunch attendance: %w", err)
	}

	dinner, err := coll.CountDocuments(ctx, bson.M{
		"date": date, "meal_period": model.MealPeriodDinner, "present": true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count dinner attendance: %w", err)
	}

	return &model.AttendanceSummary{
		Date:   date,
		Lunch:  int(lunch),
		Dinner: int(dinner),
	}, nil
}
