package model

import "time"

// MealPeriod identifies one of the two daily service windows.
type MealPeriod string

const (
	MealPeriodLunch  MealPeriod = "lunch"
	MealPeriodDinner MealPeriod = "dinner"
)

// DishRole is the course position of a dish within a meal period.
type DishRole string

const (
	DishRoleStarter DishRole = "starter"
	DishRoleMain    DishRole = "main"
	DishRoleDessert DishRole = "dessert"
)

// DishCategory classifies a dish independently of its course position.
type DishCategory string

const (
	CategoryStarter DishCategory = "starter"
	CategoryMain    DishCategory = "main"
	CategoryDessert DishCategory = "dessert"
	CategoryDrink   DishCategory = "drink"
	CategorySnack   DishCategory = "snack"
)

// PlannedMealItem is one validated dish entry inside a meal slot.
// Immutable once constructed; owned by the slot that holds it.
type PlannedMealItem struct {
	Name         string   `json:"name" bson:"name"`
	Category     string   `json:"category" bson:"category"`
	DietTags     []string `json:"dietTags" bson:"diet_tags"`
	AllergenTags []string `json:"allergenTags" bson:"allergen_tags"`
	Description  string   `json:"description,omitempty" bson:"description,omitempty"`
}

// MealSlot holds up to one item per course role. Any role may be absent
// when the source rows never filled it.
type MealSlot struct {
	Starter *PlannedMealItem `json:"starter,omitempty" bson:"starter,omitempty"`
	Main    *PlannedMealItem `json:"main,omitempty" bson:"main,omitempty"`
	Dessert *PlannedMealItem `json:"dessert,omitempty" bson:"dessert,omitempty"`
}

// DayMeals is the fixed two-slot structure of one service day.
type DayMeals struct {
	Lunch  MealSlot `json:"lunch" bson:"lunch"`
	Dinner MealSlot `json:"dinner" bson:"dinner"`
}

// WeeklyDayPlan is the menu of a single calendar day. Date is the canonical
// YYYY-MM-DD aggregation key; DayOfWeek is the display label fixed at first
// encounter of the date during ingestion.
type WeeklyDayPlan struct {
	Date      string   `json:"date" bson:"date"`
	DayOfWeek string   `json:"dayOfWeek" bson:"day_of_week"`
	Meals     DayMeals `json:"meals" bson:"meals"`
}

// WeeklyMenu is one persisted upload: the ordered day plans plus import metadata.
type WeeklyMenu struct {
	ID         string          `json:"id" bson:"_id"`
	WeekOf     string          `json:"weekOf" bson:"week_of"`
	Days       []WeeklyDayPlan `json:"days" bson:"days"`
	SourceFile string          `json:"sourceFile" bson:"source_file"`
	ImportedAt time.Time       `json:"importedAt" bson:"imported_at"`
}
