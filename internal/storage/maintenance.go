package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/cargotrack/cargotrack/models"
)

// CreateMaintenance schedules a maintenance job for a container. The
// container existence check and the insert share one transaction.
func (s *Storage) CreateMaintenance(containerID string, mType models.MaintenanceType, scheduledFor time.Time) (*models.Maintenance, error) {
	var job *models.Maintenance
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var container models.Container
		if err := tx.First(&container, "id = ?", containerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("container", containerID)
			}
			return err
		}

		job = &models.Maintenance{
			ContainerID:  container.ID,
			Type:         mType,
			Status:       models.MaintenanceScheduled,
			ScheduledFor: scheduledFor,
		}
		return tx.Create(job).Error
	})
	if err != nil {
		return nil, err
	}
	return job, nil
}

// ListMaintenance returns all maintenance jobs with their evidence files.
func (s *Storage) ListMaintenance() ([]*models.Maintenance, error) {
	var jobs []*models.Maintenance
	err := s.db.
		Preload("Files").
		Order("id").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetMaintenance returns one maintenance job with container and files.
func (s *Storage) GetMaintenance(id uint) (*models.Maintenance, error) {
	var job models.Maintenance
	err := s.db.
		Preload("Container").
		Preload("Files").
		First(&job, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("maintenance", id)
		}
		return nil, err
	}
	return &job, nil
}

// ListMaintenanceFiles returns the evidence files of one maintenance job,
// or ErrNotFound when the job itself does not exist.
func (s *Storage) ListMaintenanceFiles(maintenanceID uint) ([]models.ReportFile, error) {
	if err := s.db.First(&models.Maintenance{}, maintenanceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("maintenance", maintenanceID)
		}
		return nil, err
	}

	var files []models.ReportFile
	err := s.db.
		Where("maintenance_id = ?", maintenanceID).
		Order("id").
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

// AddMaintenanceFile records an evidence file for a maintenance job. A job
// keeps any number of images but at most one report: inserting a second
// report replaces the previous row, and the path of the replaced file is
// returned so the caller can remove it from disk after commit.
func (s *Storage) AddMaintenanceFile(file *models.ReportFile) (replacedPath string, err error) {
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Maintenance{}, file.MaintenanceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("maintenance", file.MaintenanceID)
			}
			return err
		}

		if file.Category == models.FileCategoryReport {
			var previous models.ReportFile
			err := tx.
				Where("maintenance_id = ? AND category = ?", file.MaintenanceID, models.FileCategoryReport).
				First(&previous).Error
			switch {
			case err == nil:
				if err := tx.Delete(&previous).Error; err != nil {
					return err
				}
				replacedPath = previous.StoredPath
			case errors.Is(err, gorm.ErrRecordNotFound):
				// first report for this job
			default:
				return err
			}
		}

		return tx.Create(file).Error
	})
	if err != nil {
		return "", err
	}
	return replacedPath, nil
}
