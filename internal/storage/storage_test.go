package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cargotrack/cargotrack/internal/config"
	"github.com/cargotrack/cargotrack/models"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	cfg := &config.Config{
		Storage: config.StorageConfig{
			Driver:          "sqlite",
			DSN:             filepath.Join(t.TempDir(), "test.db"),
			MaxOpenConns:    1,
			MaxIdleConns:    1,
			ConnMaxLifetime: time.Hour,
		},
	}

	s, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

// seedFixtures inserts the minimum reference rows the workflows depend on.
func seedFixtures(t *testing.T, s *Storage) {
	t.Helper()

	require.NoError(t, s.db.Create(&models.Location{ID: 1, Label: "Rotterdam", Latitude: 51.885, Longitude: 4.286, Altitude: 2}).Error)
	require.NoError(t, s.db.Create(&models.ContainerMetaData{ID: 1, Length: 10, Height: 10, Width: 10, Volume: 28, Weight: 20_000}).Error)
	require.NoError(t, s.db.Create(&models.Container{ID: "ASML 12345 4", LocationID: 1, MetaDataID: 1, CycleCount: 3}).Error)
	require.NoError(t, s.db.Create(&models.Product{ID: 1, Name: "Big Machine", Price: 10_000_000}).Error)
	require.NoError(t, s.db.Create(&models.Client{ID: 1, Name: "TSMC", Address: "123 Strong Street av."}).Error)
}

func TestCreateOrderSea(t *testing.T) {
	s := newTestStorage(t)
	seedFixtures(t, s)

	res, err := s.CreateOrder(CreateOrderParams{
		ContainerID: "ASML 12345 4",
		Transport:   models.TransportSea,
		ProductID:   1,
		ClientID:    1,
	})
	require.NoError(t, err)

	assert.Equal(t, "ASML 12345 4", res.Order.ContainerID)
	assert.Equal(t, res.Shipment.ID, res.Order.ShipmentID)
	assert.Equal(t, models.ShipmentPreparing, res.Shipment.Status)
	assert.Equal(t, models.TransportSea, res.Shipment.TransportType)
	assert.Equal(t, uint(1), res.Shipment.LocationID)
	assert.Equal(t, float64(14_000), res.Estimate.Cost)

	// Sea transit is exactly two weeks.
	assert.Equal(t, 14*24*time.Hour, res.Shipment.EndTime.Sub(res.Shipment.StartTime))
	assert.False(t, res.Shipment.EndTime.Before(res.Shipment.StartTime))

	// Both rows are visible after commit.
	order, err := s.GetOrder(res.Order.ID)
	require.NoError(t, err)
	require.NotNil(t, order.Shipment)
	assert.Equal(t, res.Shipment.ID, order.Shipment.ID)
}

func TestCreateOrderUnknownContainerWritesNothing(t *testing.T) {
	s := newTestStorage(t)
	seedFixtures(t, s)

	_, err := s.CreateOrder(CreateOrderParams{
		ContainerID: "NO SUCH BOX",
		Transport:   models.TransportAir,
		ProductID:   1,
		ClientID:    1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	var shipments, orders int64
	require.NoError(t, s.db.Model(&models.Shipment{}).Count(&shipments).Error)
	require.NoError(t, s.db.Model(&models.ClientOrder{}).Count(&orders).Error)
	assert.Zero(t, shipments)
	assert.Zero(t, orders)
}

func TestCreateOrderUnknownProductRollsBack(t *testing.T) {
	s := newTestStorage(t)
	seedFixtures(t, s)

	_, err := s.CreateOrder(CreateOrderParams{
		ContainerID: "ASML 12345 4",
		Transport:   models.TransportLand,
		ProductID:   99,
		ClientID:    1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	var shipments int64
	require.NoError(t, s.db.Model(&models.Shipment{}).Count(&shipments).Error)
	assert.Zero(t, shipments)
}

func TestDeleteContainer(t *testing.T) {
	s := newTestStorage(t)
	seedFixtures(t, s)

	// Unknown id affects zero rows and reports not found.
	err := s.DeleteContainer("NO SUCH BOX")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.DeleteContainer("ASML 12345 4"))

	containers, err := s.ListContainers()
	require.NoError(t, err)
	assert.Empty(t, containers)

	// A second delete of the same id is a not-found, not a no-op.
	assert.ErrorIs(t, s.DeleteContainer("ASML 12345 4"), ErrNotFound)
}

func TestCreateMaintenance(t *testing.T) {
	s := newTestStorage(t)
	seedFixtures(t, s)

	when := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	job, err := s.CreateMaintenance("ASML 12345 4", models.MaintenanceDeepClean, when)
	require.NoError(t, err)
	assert.Equal(t, models.MaintenanceScheduled, job.Status)
	assert.Equal(t, models.MaintenanceDeepClean, job.Type)
	assert.True(t, job.ScheduledFor.Equal(when))

	_, err = s.CreateMaintenance("NO SUCH BOX", models.MaintenanceDeepClean, when)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddMaintenanceFile(t *testing.T) {
	s := newTestStorage(t)
	seedFixtures(t, s)

	job, err := s.CreateMaintenance("ASML 12345 4", models.MaintenanceOutsideRepairs, time.Now())
	require.NoError(t, err)

	// Images accumulate.
	for i, name := range []string{"before.jpg", "after.png"} {
		_, err := s.AddMaintenanceFile(&models.ReportFile{
			MaintenanceID: job.ID,
			Category:      models.FileCategoryImage,
			FileName:      name,
			StoredPath:    "/uploads/images/" + name,
			Size:          int64(100 * (i + 1)),
		})
		require.NoError(t, err)
	}

	// The first report inserts cleanly.
	replaced, err := s.AddMaintenanceFile(&models.ReportFile{
		MaintenanceID: job.ID,
		Category:      models.FileCategoryReport,
		FileName:      "inspection.pdf",
		StoredPath:    "/uploads/reports/inspection.pdf",
	})
	require.NoError(t, err)
	assert.Empty(t, replaced)

	// A second report replaces the first and reports its path.
	replaced, err = s.AddMaintenanceFile(&models.ReportFile{
		MaintenanceID: job.ID,
		Category:      models.FileCategoryReport,
		FileName:      "inspection-v2.pdf",
		StoredPath:    "/uploads/reports/inspection-v2.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/reports/inspection.pdf", replaced)

	files, err := s.ListMaintenanceFiles(job.ID)
	require.NoError(t, err)
	require.Len(t, files, 3) // two images plus one report

	reports := 0
	for _, f := range files {
		if f.Category == models.FileCategoryReport {
			reports++
			assert.Equal(t, "inspection-v2.pdf", f.FileName)
		}
	}
	assert.Equal(t, 1, reports)

	// Unknown maintenance id.
	_, err = s.AddMaintenanceFile(&models.ReportFile{MaintenanceID: 999, Category: models.FileCategoryImage, FileName: "x.jpg"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.ListMaintenanceFiles(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSeedIsIdempotent(t *testing.T) {
	s := newTestStorage(t)

	require.NoError(t, s.Seed())
	require.NoError(t, s.Seed())

	locations, err := s.ListLocations()
	require.NoError(t, err)
	assert.Len(t, locations, 3)

	containers, err := s.ListContainers()
	require.NoError(t, err)
	assert.Len(t, containers, 10)

	info, err := s.GetInfo()
	require.NoError(t, err)
	assert.Equal(t, int64(10), info.Containers)
	assert.Equal(t, int64(20), info.Orders)
}
