package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FrozenBlaze69/SODISEN-sub000/internal/importer"
	"github.com/FrozenBlaze69/SODISEN-sub000/internal/parser"
)

// ImportMenu ingests an uploaded menu spreadsheet.
// POST /api/menus/import
func (h *Handler) ImportMenu(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no uploaded file found"})
		return
	}
	defer file.Close()

	if maxBytes := h.cfg.Upload.MaxSizeMB * 1024 * 1024; header.Size > maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "uploaded file is too large"})
		return
	}

	coordinator := importer.NewCoordinator(h.stores.Menus, h.log)
	report, err := coordinator.Import(c.Request.Context(), header.Filename, file)
	if err != nil {
		h.log.Warn("menu import failed",
			zap.String("file", header.Filename),
			zap.Error(err),
		)

		var ingErr *parser.IngestError
		var decErr *importer.DecodeError
		switch {
		case errors.Is(err, importer.ErrUnsupportedFileType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.As(err, &decErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": decErr.Error()})
		case errors.As(err, &ingErr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":     err.Error(),
				"rowErrors": ingErr.Rows,
			})
		case errors.Is(err, parser.ErrNoData), errors.Is(err, parser.ErrNoPlan):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process the uploaded file"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"days":   report.Days,
		"count":  report.DayCount,
		"report": report,
	})
}
