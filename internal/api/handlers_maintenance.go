package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cargotrack/cargotrack/models"
)

// scheduleDateLayout is the day/month/year form maintenance dates arrive in.
const scheduleDateLayout = "02/01/2006"

// CreateMaintenanceRequest is the body of POST /api/v1/maintenance.
type CreateMaintenanceRequest struct {
	ContainerID     string `json:"container_id" validate:"required"`
	MaintenanceType string `json:"maintenance_type" validate:"required"`
	Date            string `json:"date" validate:"required"`
}

// listMaintenance handles GET /api/v1/maintenance
func (s *Server) listMaintenance(c echo.Context) error {
	limit, offset := parsePagination(c)

	jobs, err := s.storage.ListMaintenance()
	if err != nil {
		return storageError(err)
	}

	return c.JSON(http.StatusOK, listResponse(jobs, limit, offset))
}

// getMaintenance handles GET /api/v1/maintenance/:id
func (s *Server) getMaintenance(c echo.Context) error {
	id, apiErr := parseUintParam(c, "id")
	if apiErr != nil {
		return apiErr
	}

	job, err := s.storage.GetMaintenance(id)
	if err != nil {
		return storageError(err)
	}

	return c.JSON(http.StatusOK, job)
}

// createMaintenance handles POST /api/v1/maintenance
func (s *Server) createMaintenance(c echo.Context) error {
	var req CreateMaintenanceRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestError("Invalid request body", "Failed to parse JSON: "+err.Error())
	}

	if fieldErrors := s.validate.Struct(&req); len(fieldErrors) > 0 {
		return ValidationError("Validation failed", fieldErrors)
	}

	mType, err := models.ParseMaintenanceType(req.MaintenanceType)
	if err != nil {
		return BadRequestError("Invalid maintenance type", err.Error())
	}

	scheduledFor, err := time.Parse(scheduleDateLayout, req.Date)
	if err != nil {
		return BadRequestError("Invalid date", "Date must be in DD/MM/YYYY form. Got: "+req.Date)
	}

	job, err := s.storage.CreateMaintenance(req.ContainerID, mType, scheduledFor)
	if err != nil {
		return storageError(err)
	}

	return c.JSON(http.StatusCreated, job)
}
