package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new session log
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingPixelFarm   = "Starting PixelFarm"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Save Store Configuration
// =============================================================================

const (
	// SaveCacheSize is how many slots the save cache holds
	SaveCacheSize = 16

	// SaveCacheTTL is how long a cached slot stays valid
	SaveCacheTTL = 10 * time.Minute
)

const (
	LogMsgSaveStoreOpened     = "Save store opened"
	LogMsgMigrationsApplied   = "Database migrations applied"
	ErrMsgFailedOpenSQLite    = "failed to open sqlite save store"
	ErrMsgFailedOpenFileStore = "failed to open file save store"
	ErrMsgFailedConnectDB     = "failed to connect to database"
	ErrMsgFailedMigrateDB     = "failed to migrate database"
	ErrMsgUnknownSaveBackend  = "unknown save backend"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgSSESubscriberRegistered    = "SSE subscriber registered"
	LogMsgDiscordDisabled            = "Discord notifications disabled"
	ErrMsgFailedStartDiscord         = "failed to start discord notifier"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgFinalSaveFailed      = "Final save failed"
	LogMsgFinalSaveWritten     = "Final save written"
	LogMsgCloseFailed          = "Failed to close component"
)
