package parser

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/FrozenBlaze69/SODISEN-sub000/internal/model"
)

var (
	// ErrNoData reports an empty row sequence.
	ErrNoData = errors.New("no data found in the uploaded file")
	// ErrNoPlan reports a non-empty row sequence that produced no day plan.
	ErrNoPlan = errors.New("no valid menu plan could be extracted")
)

// Ingestor folds decoded spreadsheet rows into an ordered weekly menu plan.
// It holds no per-call state; one Ingestor may serve any number of calls.
type Ingestor struct {
	weekdayName WeekdayNamer
}

// Option configures an Ingestor.
type Option func(*Ingestor)

// WithWeekdayNamer replaces the locale used to derive day-of-week labels.
func WithWeekdayNamer(fn WeekdayNamer) Option {
	return func(in *Ingestor) {
		in.weekdayName = fn
	}
}

// NewIngestor creates an ingestor with French weekday naming.
func NewIngestor(opts ...Option) *Ingestor {
	in := &Ingestor{weekdayName: FrenchWeekdayName}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Ingest normalizes, validates and aggregates raw menu rows into day plans
// sorted ascending by date. Row errors are collected across the whole batch;
// a single rejected row fails the call with an *IngestError carrying every
// rejection, and no partial plan is returned. Fully blank rows are skipped.
func (in *Ingestor) Ingest(rows []RawRow) ([]model.WeeklyDayPlan, error) {
	if len(rows) == 0 {
		return nil, ErrNoData
	}

	plans := make(map[string]*model.WeeklyDayPlan)
	var rowErrs []*RowError

	for i, raw := range rows {
		if isBlankRow(raw) {
			continue
		}

		rawDate := raw[ColDate]
		normalized := NormalizeDate(rawDate)

		mr, fieldErrs := validateRow(raw, normalized)
		if len(fieldErrs) > 0 {
			rowErrs = append(rowErrs, newRowError(i+1, rawDate, normalized, fieldErrs))
			continue
		}

		plan, ok := plans[mr.date]
		if !ok {
			label, err := in.dayLabel(mr)
			if err != nil {
				rowErrs = append(rowErrs, newRowError(i+1, rawDate, normalized, []FieldError{
					{Field: ColDate, Message: err.Error()},
				}))
				continue
			}
			plan = &model.WeeklyDayPlan{Date: mr.date, DayOfWeek: label}
			plans[mr.date] = plan
		}

		slot := &plan.Meals.Lunch
		if mr.period == model.MealPeriodDinner {
			slot = &plan.Meals.Dinner
		}

		item := &model.PlannedMealItem{
			Name:         mr.name,
			Category:     mr.category,
			DietTags:     splitTags(mr.dietTags),
			AllergenTags: splitTags(mr.allergenTags),
			Description:  mr.description,
		}

		// Duplicate (date, meal, role) rows: last write wins.
		switch mr.role {
		case model.DishRoleStarter:
			slot.Starter = item
		case model.DishRoleMain:
			slot.Main = item
		case model.DishRoleDessert:
			slot.Dessert = item
		}
	}

	if len(rowErrs) > 0 {
		return nil, &IngestError{Rows: rowErrs}
	}
	if len(plans) == 0 {
		return nil, ErrNoPlan
	}

	out := make([]model.WeeklyDayPlan, 0, len(plans))
	for _, p := range plans {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out, nil
}

// dayLabel picks the day-of-week display name for a newly seen date: the
// supplied Jour value when present, otherwise the locale name of the
// weekday. The label is fixed at first encounter and never recomputed.
func (in *Ingestor) dayLabel(mr menuRow) (string, error) {
	if mr.dayName != "" {
		return capitalizeFirst(mr.dayName), nil
	}
	t, err := time.Parse(canonicalDateLayout, mr.date)
	if err != nil {
		return "", errors.New("could not derive the day of week from the date")
	}
	return capitalizeFirst(in.weekdayName(t.Weekday())), nil
}

// splitTags turns a comma-separated tag string into trimmed, non-empty
// entries, input order preserved.
func splitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// isBlankRow reports a row whose every cell is absent or blank. Trailing
// formatting rows in real spreadsheets decode this way.
func isBlankRow(row RawRow) bool {
	for _, v := range row {
		switch d := v.(type) {
		case nil:
		case string:
			if strings.TrimSpace(d) != "" {
				return false
			}
		default:
			return false
		}
	}
	return true
}
