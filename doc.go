// Package cargotrack is a logistics tracking backend for container shipments.
//
// # Overview
//
// CargoTrack keeps containers, shipments, client orders and maintenance
// records in a relational store and exposes them over a REST API.
//
// The system consists of three main components:
//   - API Server: REST API for orders, containers and maintenance
//   - Storage Layer: GORM-backed relational storage (SQLite or PostgreSQL)
//   - Upload Store: on-disk evidence files for maintenance jobs
//
// # Architecture
//
//	┌─────────────────┐
//	│  API Server     │
//	│  (Echo REST)    │
//	└────────┬────────┘
//	         │
//	┌────────▼────────┐       ┌─────────────────┐
//	│  Storage Layer  │       │  Upload Store   │
//	│  (GORM)         │       │  (evidence)     │
//	└─────────────────┘       └─────────────────┘
//
// # Core Features
//
// Order workflow:
//   - Atomic order creation: shipment and order insert together or not at all
//   - Arrival and cost estimation per transport mode (sea, air, land)
//
// Maintenance:
//   - Scheduled deep cleans and outside repairs per container
//   - Evidence uploads: accumulated images, single replaceable report
//
// REST API:
//   - Orders, containers, maintenance and reference data under /api/v1
//   - JWT login for the configured operator credential
//
// # Quick Start
//
// Start the server with the default configuration:
//
//	cargotrack server
//
// Seed the database with sample data:
//
//	cargotrack seed
//
// See the internal packages for implementation details.
package cargotrack
