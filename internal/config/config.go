package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	Version     string

	// HTTP
	APIKey         string   // empty disables API key checks
	TrustedProxies []string // proxies whose X-Forwarded-For is believed

	// Saves
	SaveBackend string // "sqlite", "postgres", "file"
	SaveSlot    string
	SQLitePath  string
	SaveDir     string
	DBUser      string
	DBPassword  string
	DBHost      string
	DBPort      string
	DBName      string

	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// Simulation
	TickInterval     time.Duration
	AutosaveInterval time.Duration
	RNGSeed          uint64 // 0 seeds from entropy

	// Optional integrations
	TextureAPIURL    string
	TextureAPIKey    string
	DiscordToken     string
	DiscordChannelID string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnvAsInt("PORT", DefaultPort),
		LogLevel:          getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:         getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:            getEnv("LOG_DIR", DefaultLogDir),
		Environment:       getEnv("ENVIRONMENT", DefaultEnvironment),
		Version:           getEnv("VERSION", DefaultVersion),
		APIKey:            getEnv("API_KEY", ""),
		TrustedProxies:    getEnvAsList("TRUSTED_PROXIES"),
		SaveBackend:       getEnv("SAVE_BACKEND", SaveBackendSQLite),
		SaveSlot:          getEnv("SAVE_SLOT", DefaultSaveSlot),
		SQLitePath:        getEnv("SQLITE_PATH", DefaultSQLitePath),
		SaveDir:           getEnv("SAVE_DIR", DefaultSaveDir),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "pixelfarm"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
		TickInterval:      getEnvAsDuration("TICK_INTERVAL", DefaultTickInterval),
		AutosaveInterval:  getEnvAsDuration("AUTOSAVE_INTERVAL", DefaultAutosaveInterval),
		TextureAPIURL:     getEnv("TEXTURE_API_URL", ""),
		TextureAPIKey:     getEnv("TEXTURE_API_KEY", ""),
		DiscordToken:      getEnv("DISCORD_TOKEN", ""),
		DiscordChannelID:  getEnv("DISCORD_CHANNEL_ID", ""),
	}

	if seed := getEnv("RNG_SEED", ""); seed != "" {
		n, err := strconv.ParseUint(seed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid RNG_SEED value: %w", err)
		}
		cfg.RNGSeed = n
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT value: %d", c.Port)
	}
	if !slices.Contains(SaveBackends, c.SaveBackend) {
		return fmt.Errorf("invalid SAVE_BACKEND %q: expected one of %v", c.SaveBackend, SaveBackends)
	}
	if c.SaveSlot == "" {
		return fmt.Errorf("SAVE_SLOT must not be empty")
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("TICK_INTERVAL must be positive, got %s", c.TickInterval)
	}
	if c.AutosaveInterval < c.TickInterval {
		return fmt.Errorf("AUTOSAVE_INTERVAL (%s) must not be shorter than TICK_INTERVAL (%s)", c.AutosaveInterval, c.TickInterval)
	}
	if (c.DiscordToken == "") != (c.DiscordChannelID == "") {
		return fmt.Errorf("DISCORD_TOKEN and DISCORD_CHANNEL_ID must be set together")
	}
	return nil
}

// DiscordEnabled reports whether notifications should be mirrored to Discord
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != "" && c.DiscordChannelID != ""
}

// TextureEnabled reports whether the forest texture service is configured
func (c *Config) TextureEnabled() bool {
	return c.TextureAPIURL != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnvAsDuration parses a Go duration string, falling back to the default when unset or invalid
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return d
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
