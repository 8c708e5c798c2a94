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

const reservationCollection = "reservations"

// ReservationRepository persists guest-meal reservations.
type ReservationRepository struct {
	db  *Mongo
	log *zap.Logger
}

// NewReservationRepository creates a reservation repository.
func NewReservationRepository(db *Mongo, log *zap.Logger) *ReservationRepository {
	return &ReservationRepository{
		db:  db,
		log: log.Named("reservation-repository"),
	}
}

// CreateReservation inserts a new reservation, confirmed by default.
func (r *ReservationRepository) CreateReservation(ctx context.Context, res *model.Reservation) error {
	if res.ID == "" {
		res.ID = uuid.New().String()
	}
	if res.Status == "" {
		res.Status = model.ReservationConfirmed
	}
	res.CreatedAt = time.Now()

	if _, err := r.db.Collection(reservationCollection).InsertOne(ctx, res); err != nil {
		return fmt.Errorf("failed to insert reservation: %w", err)
	}

	r.log.Info("reservation created",
		zap.String("id", res.ID),
		zap.String("date", res.Date),
		zap.Int("guests", res.GuestCount),
	)
	return nil
}

// ListReservations returns reservations, optionally restricted to one day.
func (r *ReservationRepository) ListReservations(ctx context.Context, date string) ([]*model.Reservation, error) {
	filter := bson.M{}
	if date != "" {
		filter["date"] = date
	}
	opts := options.Find().SetSort(bson.D{
		{Key: "date", Value: 1},
		{Key: "meal_period", Value: 1},
	})

	cursor, err := r.db.Collection(reservationCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer cursor.Close(ctx)

	reservations := make([]*model.Reservation, 0)
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}
	return reservations, nil
}

// UpdateReservation patches guest count, note and status of one reservation.
func (r *ReservationRepository) UpdateReservation(ctx context.Context, id string, guestCount *int, note *string, status *model.ReservationStatus) error {
	set := bson.M{}
	if guestCount != nil {
		set["guest_count"] = *guestCount
	}
	if note != nil {
		set["note"] = *note
	}
	if status != nil {
		set["status"] = *status
	}
	if len(set) == 0 {
		return nil
	}

	res, err := r.db.Collection(reservationCollection).
		UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update reservation: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CancelReservation marks one reservation cancelled.
func (r *ReservationRepository) CancelReservation(ctx context.Context, id string) error {
	status := model.ReservationCancelled
	return r.UpdateReservation(ctx, id, nil, nil, &status)
}

// GetReservation fetches one reservation by ID.
func (r *ReservationRepository) GetReservation(ctx context.Context, id string) (*model.Reservation, error) {
	var res model.Reservation
	err := r.db.Collection(reservationCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&res)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservation: %w", err)
	}
	return &res, nil
}
