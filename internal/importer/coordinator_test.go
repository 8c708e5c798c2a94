package importer

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/FrozenBlaze69/SODISEN-sub000/internal/model"
	"github.com/FrozenBlaze69/SODISEN-sub000/internal/parser"
)

type fakeMenuSaver struct {
	saved []*model.WeeklyMenu
	err   error
}

func (f *fakeMenuSaver) SaveWeeklyMenu(_ context.Context, menu *model.WeeklyMenu) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, menu)
	return nil
}

func TestCoordinator_Import(t *testing.T) {
	t.Parallel()

	buf := buildWorkbook(t, menuHeader, [][]any{
		{"2024-07-29", nil, "Déjeuner", "Principal", "Poulet", "main", nil, nil, nil},
		{"2024-07-29", nil, "Déjeuner", "Dessert", "Fruit", "dessert", nil, nil, nil},
		{"2024-07-30", nil, "Dîner", "Entrée", "Potage", "starter", nil, nil, nil},
	})

	saver := &fakeMenuSaver{}
	report, err := NewCoordinator(saver, zap.NewNop()).Import(context.Background(), "menus_semaine.xlsx", buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.DayCount != 2 || report.RowCount != 3 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if report.WeekOf != "2024-07-29" {
		t.Fatalf("week-of must be the earliest date: %s", report.WeekOf)
	}
	if len(saver.saved) != 1 {
		t.Fatalf("want one persisted menu, got %d", len(saver.saved))
	}

	menu := saver.saved[0]
	if menu.ID == "" || menu.SourceFile != "menus_semaine.xlsx" {
		t.Fatalf("menu metadata mismatch: %+v", menu)
	}
	if len(menu.Days) != 2 || menu.Days[0].Meals.Lunch.Main.Name != "Poulet" {
		t.Fatalf("menu days mismatch: %+v", menu.Days)
	}
}

func TestCoordinator_RejectsUnsupportedExtension(t *testing.T) {
	t.Parallel()

	saver := &fakeMenuSaver{}
	_, err := NewCoordinator(saver, zap.NewNop()).
		Import(context.Background(), "menus.csv", nil)
	if !errors.Is(err, ErrUnsupportedFileType) {
		t.Fatalf("want ErrUnsupportedFileType, got %v", err)
	}
	if len(saver.saved) != 0 {
		t.Fatalf("nothing may be persisted on a rejected file")
	}
}

func TestCoordinator_RowErrorsAbortBeforeSave(t *testing.T) {
	t.Parallel()

	buf := buildWorkbook(t, menuHeader, [][]any{
		{"2024-07-29", nil, "Déjeuner", "Principal", "Poulet", "main", nil, nil, nil},
		{"2024-07-30", nil, "Déjeuner", "Principal", "Gratin", "invalid", nil, nil, nil},
	})

	saver := &fakeMenuSaver{}
	_, err := NewCoordinator(saver, zap.NewNop()).Import(context.Background(), "menus.xlsx", buf)

	var ingErr *parser.IngestError
	if !errors.As(err, &ingErr) {
		t.Fatalf("want *parser.IngestError, got %v", err)
	}
	if len(saver.saved) != 0 {
		t.Fatalf("nothing may be persisted when any row is rejected")
	}
}

func TestCoordinator_CorruptWorkbook(t *testing.T) {
	t.Parallel()

	_, err := NewCoordinator(&fakeMenuSaver{}, zap.NewNop()).
		Import(context.Background(), "menus.xlsx", bytes.NewReader([]byte("junk")))

	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("want *DecodeError, got %v", err)
	}
	if !strings.Contains(decErr.Error(), "failed to process the uploaded file") {
		t.Fatalf("unexpected message: %s", decErr.Error())
	}
}

func TestCoordinator_EmptyWorkbook(t *testing.T) {
	t.Parallel()

	buf := buildWorkbook(t, menuHeader, nil)

	_, err := NewCoordinator(&fakeMenuSaver{}, zap.NewNop()).
		Import(context.Background(), "menus.xlsx", buf)
	if !errors.Is(err, parser.ErrNoData) {
		t.Fatalf("want ErrNoData, got %v", err)
	}
}
