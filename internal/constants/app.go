package constants

// Application Information
const (
	AppName    = "Roster Query Service"
	AppVersion = "1.0.0"
)

// Environment Types
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Default Application Settings
const (
	DefaultPort        = "8080"
	DefaultEnvironment = EnvDevelopment
)

// Dataset Sources
const (
	DatasetSourceMemory   = "memory"
	DatasetSourcePostgres = "postgres"
	DatasetSourceSQLite   = "sqlite"
)

// Dataset provisioning defaults, matching the reference dataset.
const (
	DefaultDatasetSeed = 123
	DefaultDatasetSize = 100
)

// Cache Key Prefixes
const (
	CacheKeyPrefix   = "roster:"
	CacheKeySnapshot = CacheKeyPrefix + "snapshot:"
)

// Log Levels
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)
