package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/FrozenBlaze69/SODISEN-sub000/internal/model"
	"github.com/FrozenBlaze69/SODISEN-sub000/internal/parser"
)

// ErrUnsupportedFileType rejects an upload before any parsing starts.
var ErrUnsupportedFileType = errors.New("unsupported file type: expected an .xlsx or .xlsm workbook")

var allowedExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
}

// DecodeError reports a workbook that could not be read at all (corrupt or
// truncated file). Unlike row-level rejections it carries a single message.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to process the uploaded file: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// MenuSaver persists one imported weekly menu.
type MenuSaver interface {
	SaveWeeklyMenu(ctx context.Context, menu *model.WeeklyMenu) error
}

// ImportReport summarizes one completed upload, day plans included for
// immediate display.
type ImportReport struct {
	MenuID     string                `json:"menuId"`
	Filename   string                `json:"filename"`
	WeekOf     string                `json:"weekOf"`
	Days       []model.WeeklyDayPlan `json:"days"`
	DayCount   int                   `json:"dayCount"`
	RowCount   int                   `json:"rowCount"`
	Duration   time.Duration         `json:"duration"`
	ImportedAt time.Time             `json:"importedAt"`
}

// Coordinator runs one menu upload end to end: decode, ingest, persist.
// All-or-nothing: any ingestion error aborts before anything is written.
type Coordinator struct {
	store    MenuSaver
	ingestor *parser.Ingestor
	log      *zap.Logger
}

// NewCoordinator creates an import coordinator.
func NewCoordinator(store MenuSaver, log *zap.Logger) *Coordinator {
	return &Coordinator{
		store:    store,
		ingestor: parser.NewIngestor(),
		log:      log.Named("importer"),
	}
}

// Import processes one uploaded workbook and persists the resulting menu.
// Ingestion errors (per-row rejections, empty data) are returned as-is so
// the caller can relay the full diagnostic to whoever fixes the sheet.
func (c *Coordinator) Import(ctx context.Context, filename string, r io.Reader) (*ImportReport, error) {
	start := time.Now()

	if !allowedExtensions[strings.ToLower(filepath.Ext(filename))] {
		return nil, ErrUnsupportedFileType
	}

	rows, err := DecodeWorkbook(r)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	plans, err := c.ingestor.Ingest(rows)
	if err != nil {
		return nil, err
	}

	menu := &model.WeeklyMenu{
		ID:         uuid.New().String(),
		WeekOf:     plans[0].Date,
		Days:       plans,
		SourceFile: filepath.Base(filename),
		ImportedAt: time.Now(),
	}

	if err := c.store.SaveWeeklyMenu(ctx, menu); err != nil {
		return nil, fmt.Errorf("failed to save imported menu: %w", err)
	}

	c.log.Info("menu imported",
		zap.String("menu_id", menu.ID),
		zap.String("file", menu.SourceFile),
		zap.Int("days", len(plans)),
		zap.Int("rows", len(rows)),
	)

	return &ImportReport{
		MenuID:     menu.ID,
		Filename:   menu.SourceFile,
		WeekOf:     menu.WeekOf,
		Days:       plans,
		DayCount:   len(plans),
		RowCount:   len(rows),
		Duration:   time.Since(start),
		ImportedAt: menu.ImportedAt,
	}, nil
}
