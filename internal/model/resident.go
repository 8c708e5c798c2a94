package model

import "time"

// Resident is one person living in the facility.
type Resident struct {
	ID        string    `json:"id" bson:"_id"`
	FirstName string    `json:"firstName" bson:"first_name"`
	LastName  string    `json:"lastName" bson:"last_name"`
	Room      string    `json:"room" bson:"room"`
	Diets     []string  `json:"diets" bson:"diets"`
	Allergies []string  `json:"allergies" bson:"allergies"`
	Notes     string    `json:"notes,omitempty" bson:"notes,omitempty"`
	Active    bool      `json:"active" bson:"active"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

// AttendanceRecord marks whether a resident takes a given meal on a given day.
// One record per (resident, date, meal period); upserted on change.
type AttendanceRecord struct {
	ID         string     `json:"id" bson:"_id"`
	ResidentID string     `json:"residentId" bson:"resident_id"`
	Date       string     `json:"date" bson:"date"`
	MealPeriod MealPeriod `json:"mealPeriod" bson:"meal_period"`
	Present    bool       `json:"present" bson:"present"`
	UpdatedAt  time.Time  `json:"updatedAt" bson:"updated_at"`
}

// AttendanceSummary aggregates one day's headcount per meal period.
type AttendanceSummary struct {
	Date   string `json:"date" bson:"_id"`
	Lunch  int    `json:"lunch" bson:"lunch"`
	Dinner int    `json:"dinner" bson:"dinner"`
}

// ReservationStatus is the lifecycle state of a guest-meal reservation.
type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Reservation books guest seats alongside a resident for one meal.
type Reservation struct {
	ID         string            `json:"id" bson:"_id"`
	ResidentID string            `json:"residentId" bson:"resident_id"`
	Date       string            `json:"date" bson:"date"`
	MealPeriod MealPeriod        `json:"mealPeriod" bson:"meal_period"`
	GuestCount int               `json:"guestCount" bson:"guest_count"`
	Note       string            `json:"note,omitempty" bson:"note,omitempty"`
	Status     ReservationStatus `json:"status" bson:"status"`
	CreatedAt  time.Time         `json:"createdAt" bson:"created_at"`
}

// Notification is a dashboard message shown to kitchen and care staff.
type Notification struct {
	ID        string     `json:"id" bson:"_id"`
	Title     string     `json:"title" bson:"title"`
	Body      string     `json:"body" bson:"body"`
	Level     string     `json:"level" bson:"level"` // info/warning/alert
	CreatedAt time.Time  `json:"createdAt" bson:"created_at"`
	ReadAt    *time.Time `json:"readAt,omitempty" bson:"read_at,omitempty"`
}
