package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cargotrack/cargotrack/internal/upload"
	"github.com/cargotrack/cargotrack/models"
)

// listMaintenanceFiles handles GET /api/v1/maintenance/:id/files
func (s *Server) listMaintenanceFiles(c echo.Context) error {
	id, apiErr := parseUintParam(c, "id")
	if apiErr != nil {
		return apiErr
	}

	files, err := s.storage.ListMaintenanceFiles(id)
	if err != nil {
		return storageError(err)
	}

	return c.JSON(http.StatusOK, files)
}

// uploadMaintenanceFile handles POST /api/v1/maintenance/:id/files
func (s *Server) uploadMaintenanceFile(c echo.Context) error {
	id, apiErr := parseUintParam(c, "id")
	if apiErr != nil {
		return apiErr
	}

	header, err := c.FormFile("file")
	if err != nil {
		return BadRequestError("Missing file", "Multipart field 'file' is required")
	}

	// The extension check runs before any lookup so unsupported types are
	// rejected even for maintenance jobs that do not exist.
	category, ext, err := upload.Classify(header.Filename)
	if err != nil {
		return BadRequestError("Unsupported file type", err.Error())
	}

	if header.Size > s.uploads.MaxSize() {
		return BadRequestError(
			"File too large",
			fmt.Sprintf("upload is %d bytes, maximum is %d", header.Size, s.uploads.MaxSize()),
		)
	}

	if _, err := s.storage.GetMaintenance(id); err != nil {
		return storageError(err)
	}

	src, err := header.Open()
	if err != nil {
		return InternalError("Failed to read upload", err.Error())
	}
	defer src.Close()

	path, size, err := s.uploads.Save(category, id, ext, src)
	if err != nil {
		if errors.Is(err, upload.ErrTooLarge) {
			return BadRequestError("File too large", err.Error())
		}
		return InternalError("Failed to store file", err.Error())
	}

	record := &models.ReportFile{
		MaintenanceID: id,
		Category:      category,
		FileName:      header.Filename,
		StoredPath:    path,
		Size:          size,
		CreatedAt:     time.Now().UTC(),
	}

	replacedPath, err := s.storage.AddMaintenanceFile(record)
	if err != nil {
		// Keep disk and database consistent when the insert fails.
		_ = s.uploads.Remove(path)
		return storageError(err)
	}
	if replacedPath != "" {
		_ = s.uploads.Remove(replacedPath)
	}

	return c.JSON(http.StatusCreated, record)
}
