package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/FrozenBlaze69/SODISEN-sub000/internal/model"
)

// Column names as they appear in the header row of an uploaded menu sheet.
const (
	ColDate         = "Date"
	ColDayName      = "Jour"
	ColMealPeriod   = "TypeRepas"
	ColDishRole     = "RolePlat"
	ColDishName     = "NomPlat"
	ColCategory     = "CategoriePlat"
	ColDietTags     = "TagsRegime"
	ColAllergenTags = "TagsAllergene"
	ColDescription  = "DescriptionPlat"
)

// RawRow is one decoded spreadsheet row: column name to untyped cell value
// (number, native date, string, or absent).
type RawRow map[string]any

// mealPeriodVariants enumerates the accepted TypeRepas spellings.
var mealPeriodVariants = map[string]model.MealPeriod{
	"Déjeuner": model.MealPeriodLunch,
	"Dîner":    model.MealPeriodDinner,
}

// dishRoleVariants enumerates the accepted RolePlat spellings. The starter
// course is accepted with and without the accent.
var dishRoleVariants = map[string]model.DishRole{
	"Principal": model.DishRoleMain,
	"Dessert":   model.DishRoleDessert,
	"Entree":    model.DishRoleStarter,
	"Entrée":    model.DishRoleStarter,
}

// dishCategories enumerates the accepted CategoriePlat values.
var dishCategories = map[string]bool{
	"starter": true,
	"main":    true,
	"dessert": true,
	"drink":   true,
	"snack":   true,
}

// FieldError is one schema violation on one field of a row.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RowError collects every schema violation of a single row. Row is the
// 1-based index of the row in the uploaded data.
type RowError struct {
	Row           int          `json:"row"`
	RawDate       string       `json:"rawDate"`
	ProcessedDate string       `json:"processedDate"`
	Fields        []FieldError `json:"fields"`
}

func (e *RowError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s - %s", f.Field, f.Message))
	}
	return fmt.Sprintf("Row %d (original date: '%s', processed date: '%s'): %s",
		e.Row, e.RawDate, e.ProcessedDate, strings.Join(parts, ", "))
}

// newRowError builds a RowError from the raw and normalized date values.
// A normalized value that never became a string is reported as N/A.
func newRowError(row int, rawDate, normalized any, fields []FieldError) *RowError {
	processed := "N/A"
	if s, ok := normalized.(string); ok {
		processed = s
	}
	return &RowError{
		Row:           row,
		RawDate:       fmt.Sprintf("%v", rawDate),
		ProcessedDate: processed,
		Fields:        fields,
	}
}

// IngestError aggregates every rejected row of one ingestion call.
type IngestError struct {
	Rows []*RowError
}

func (e *IngestError) Error() string {
	lines := make([]string, 0, len(e.Rows))
	for _, r := range e.Rows {
		lines = append(lines, r.Error())
	}
	return strings.Join(lines, "\n")
}

// menuRow is one row after schema validation, with enums resolved.
type menuRow struct {
	date         string
	dayName      string
	period       model.MealPeriod
	role         model.DishRole
	name         string
	category     string
	dietTags     string
	allergenTags string
	description  string
}

// validateRow checks one raw row (date already normalized) against the menu
// schema. Every violated field is reported; the row is usable only when the
// returned slice is empty.
func validateRow(row RawRow, normalizedDate any) (menuRow, []FieldError) {
	var mr menuRow
	var errs []FieldError

	if s, ok := normalizedDate.(string); ok && isoDateRe.MatchString(s) {
		mr.date = s
	} else {
		errs = append(errs, FieldError{ColDate, "must be a valid date in YYYY-MM-DD format"})
	}

	if s, ok := optionalString(row[ColDayName]); ok {
		mr.dayName = strings.TrimSpace(s)
	} else {
		errs = append(errs, FieldError{ColDayName, "must be a string"})
	}

	if s, ok := row[ColMealPeriod].(string); ok {
		if period, known := mealPeriodVariants[strings.TrimSpace(s)]; known {
			mr.period = period
		} else {
			errs = append(errs, FieldError{ColMealPeriod, enumMessage(mealPeriodKeys())})
		}
	} else {
		errs = append(errs, FieldError{ColMealPeriod, enumMessage(mealPeriodKeys())})
	}

	if s, ok := row[ColDishRole].(string); ok {
		if role, known := dishRoleVariants[strings.TrimSpace(s)]; known {
			mr.role = role
		} else {
			errs = append(errs, FieldError{ColDishRole, enumMessage(dishRoleKeys())})
		}
	} else {
		errs = append(errs, FieldError{ColDishRole, enumMessage(dishRoleKeys())})
	}

	if s, ok := row[ColDishName].(string); ok && strings.TrimSpace(s) != "" {
		mr.name = strings.TrimSpace(s)
	} else {
		errs = append(errs, FieldError{ColDishName, "dish name is required"})
	}

	if s, ok := row[ColCategory].(string); ok && dishCategories[strings.TrimSpace(s)] {
		mr.category = strings.TrimSpace(s)
	} else {
		errs = append(errs, FieldError{ColCategory, enumMessage(categoryKeys())})
	}

	if s, ok := optionalString(row[ColDietTags]); ok {
		mr.dietTags = s
	} else {
		errs = append(errs, FieldError{ColDietTags, "must be a string"})
	}

	if s, ok := optionalString(row[ColAllergenTags]); ok {
		mr.allergenTags = s
	} else {
		errs = append(errs, FieldError{ColAllergenTags, "must be a string"})
	}

	if s, ok := optionalString(row[ColDescription]); ok {
		mr.description = strings.TrimSpace(s)
	} else {
		errs = append(errs, FieldError{ColDescription, "must be a string"})
	}

	return mr, errs
}

// optionalString accepts an absent value as the empty string and rejects any
// present non-string value.
func optionalString(v any) (string, bool) {
	if v == nil {
		return "", true
	}
	s, ok := v.(string)
	return s, ok
}

func enumMessage(accepted []string) string {
	return "must be one of " + strings.Join(accepted, ", ")
}

func mealPeriodKeys() []string { return sortedKeys(mealPeriodVariants) }
func dishRoleKeys() []string   { return sortedKeys(dishRoleVariants) }
func categoryKeys() []string   { return sortedKeys(dishCategories) }

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
