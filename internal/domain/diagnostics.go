package domain

import "context"

const (
	BackendRunning = "running"

	ConfigSet    = "set"
	ConfigNotSet = "not set"

	DatabaseAvailable   = "available"
	DatabaseUnavailable = "unavailable"

	ConnectionConnected     = "connected"
	ConnectionNotConfigured = "not configured"
	ConnectionError         = "error"

	DriverNone     = "none"
	DriverMongo    = "mongodb"
	DriverPostgres = "postgres"

	MaxReportedCollections   = 10
	DiagnosticErrorMaxLength = 120
)

// DiagnosticsReport is the body of GET /test
type DiagnosticsReport struct {
	Backend          string   `json:"backend" example:"running"`
	Database         string   `json:"database" example:"available"`
	DatabaseURL      string   `json:"database_url" example:"set"`
	DatabaseName     string   `json:"database_name" example:"set"`
	ConnectionStatus string   `json:"connection_status" example:"connected"`
	Driver           string   `json:"driver" example:"mongodb"`
	Collections      []string `json:"collections"`
}

// DatabaseInspector exposes read-only introspection of the configured store
type DatabaseInspector interface {
	Driver() string
	CollectionNames(ctx context.Context) ([]string, error)
}

// DocumentStore is a connected store: persistence, introspection and lifecycle
type DocumentStore interface {
	ContactRepository
	DatabaseInspector
	Close(ctx context.Context) error
}

type DiagnosticsUsecase interface {
	Report(ctx context.Context) *DiagnosticsReport
}
