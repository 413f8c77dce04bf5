package config

import "time"

// Defaults
const (
	DefaultPort             = 8080
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultLogDir           = "logs"
	DefaultEnvironment      = "dev"
	DefaultVersion          = "dev"
	DefaultSaveSlot         = "main"
	DefaultSQLitePath       = "data/pixelfarm.db"
	DefaultSaveDir          = "data/saves"
	DefaultTickInterval     = time.Second
	DefaultAutosaveInterval = 30 * time.Second

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
)

// Save backends
const (
	SaveBackendSQLite   = "sqlite"
	SaveBackendPostgres = "postgres"
	SaveBackendFile     = "file"
)

// SaveBackends lists every accepted SAVE_BACKEND value
var SaveBackends = []string{SaveBackendSQLite, SaveBackendPostgres, SaveBackendFile}
