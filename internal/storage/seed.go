package storage

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/cargotrack/cargotrack/models"
)

// Seed populates the database with reference data and a handful of sample
// shipments, orders and maintenance jobs. It is idempotent: when locations
// already exist the seed is skipped.
func (s *Storage) Seed() error {
	var locationCount int64
	if err := s.db.Model(&models.Location{}).Count(&locationCount).Error; err != nil {
		return err
	}
	if locationCount > 0 {
		log.Println("Seed data already exists, skipping...")
		return nil
	}

	log.Println("Seeding database with initial data...")

	locations := []models.Location{
		{ID: 1, Label: "Rotterdam", Latitude: 51.885, Longitude: 4.286, Altitude: 2},
		{ID: 2, Label: "Enschede", Latitude: 52.21833, Longitude: 6.89583, Altitude: 45},
		{ID: 3, Label: "Eindhoven", Latitude: 51.4416, Longitude: 5.4697, Altitude: 23},
	}
	if err := s.db.Create(&locations).Error; err != nil {
		return fmt.Errorf("failed to seed locations: %w", err)
	}

	lengthOptions := []float64{5, 10, 15, 20, 25}
	weightOptions := []float64{10_000, 20_000, 30_000, 35_000}
	var metaData []models.ContainerMetaData
	for i := 1; i <= 5; i++ {
		metaData = append(metaData, models.ContainerMetaData{
			ID:     uint(i),
			Length: lengthOptions[rand.Intn(len(lengthOptions))],
			Height: lengthOptions[rand.Intn(len(lengthOptions))],
			Width:  lengthOptions[rand.Intn(len(lengthOptions))],
			Volume: 28,
			Weight: weightOptions[rand.Intn(len(weightOptions))],
		})
	}
	if err := s.db.Create(&metaData).Error; err != nil {
		return fmt.Errorf("failed to seed container meta data: %w", err)
	}

	var containers []models.Container
	seen := make(map[string]bool)
	for len(containers) < 10 {
		id := fmt.Sprintf("ASML %05d 4", 10000+rand.Intn(90000))
		if seen[id] {
			continue
		}
		seen[id] = true
		containers = append(containers, models.Container{
			ID:         id,
			LocationID: uint(1 + rand.Intn(3)),
			MetaDataID: uint(1 + rand.Intn(5)),
			CycleCount: 1 + rand.Intn(20),
		})
	}
	if err := s.db.Create(&containers).Error; err != nil {
		return fmt.Errorf("failed to seed containers: %w", err)
	}

	products := []models.Product{
		{ID: 1, Name: "Big Machine", Price: 10_000_000},
		{ID: 2, Name: "Bigger Machine", Price: 20_000_000},
		{ID: 3, Name: "Biggest Machine", Price: 50_000_000},
	}
	if err := s.db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	clients := []models.Client{
		{ID: 1, Name: "John Doe", Address: "One Beer Street"},
		{ID: 2, Name: "TSMC", Address: "123 Strong Street av."},
		{ID: 3, Name: "Philips", Address: "Eindhoven 12"},
	}
	if err := s.db.Create(&clients).Error; err != nil {
		return fmt.Errorf("failed to seed clients: %w", err)
	}

	now := time.Now().UTC()
	transports := []models.TransportType{
		models.TransportSea, models.TransportAir, models.TransportLand, models.TransportLand,
	}
	statuses := []models.ShipmentStatus{
		models.ShipmentPreparing, models.ShipmentInTransit, models.ShipmentCleared, models.ShipmentReturned,
	}
	var shipments []models.Shipment
	for i := 0; i < 4; i++ {
		start := now.AddDate(0, 0, -7*(i+1))
		shipments = append(shipments, models.Shipment{
			ID:            uint(i + 1),
			LocationID:    uint(1 + i%3),
			StartTime:     start,
			EndTime:       now.AddDate(0, 0, 7*(i+1)),
			TransportType: transports[i],
			Status:        statuses[rand.Intn(len(statuses))],
		})
	}
	if err := s.db.Create(&shipments).Error; err != nil {
		return fmt.Errorf("failed to seed shipments: %w", err)
	}

	var orders []models.ClientOrder
	for i := 1; i <= 20; i++ {
		orders = append(orders, models.ClientOrder{
			ID:          uint(i),
			ContainerID: containers[rand.Intn(len(containers))].ID,
			ProductID:   products[rand.Intn(len(products))].ID,
			ShipmentID:  shipments[rand.Intn(len(shipments))].ID,
			ClientID:    clients[rand.Intn(len(clients))].ID,
		})
	}
	if err := s.db.Create(&orders).Error; err != nil {
		return fmt.Errorf("failed to seed orders: %w", err)
	}

	maintenanceTypes := []models.MaintenanceType{
		models.MaintenanceDeepClean, models.MaintenanceOutsideRepairs,
	}
	maintenanceStatuses := []models.MaintenanceStatus{
		models.MaintenanceScheduled, models.MaintenanceQualityControl,
		models.MaintenanceInProgress, models.MaintenanceCompleted,
	}
	var jobs []models.Maintenance
	for i := 1; i <= 5; i++ {
		jobs = append(jobs, models.Maintenance{
			ID:           uint(i),
			ContainerID:  containers[rand.Intn(len(containers))].ID,
			Type:         maintenanceTypes[rand.Intn(len(maintenanceTypes))],
			Status:       maintenanceStatuses[rand.Intn(len(maintenanceStatuses))],
			ScheduledFor: now.AddDate(0, 0, rand.Intn(30)),
		})
	}
	if err := s.db.Create(&jobs).Error; err != nil {
		return fmt.Errorf("failed to seed maintenance: %w", err)
	}

	log.Println("Done seeding database")
	return nil
}
