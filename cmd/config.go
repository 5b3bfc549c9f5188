package cmd

// Storage backend names accepted in Config.StorageBackend.
const (
	StorageBackendMemory   = "memory"
	StorageBackendPostgres = "postgres"
)

// Config carries all runtime settings of the service. Values are read from
// the environment in cmd/app.
type Config struct {
	HTTPPort string

	// StorageBackend selects the repository deployment: "memory" keeps
	// orders in process with a snapshot file, "postgres" stores them in a
	// database.
	StorageBackend string
	SnapshotPath   string

	// OrderVariant selects the status vocabulary and number prefix:
	// "purchase" or "sales".
	OrderVariant string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	ReportSchedule   string
	ReportMaxAgeDays int
}
