package logger

import (
	"log/slog"
	"strings"
)

// Config describes how the process-wide slog handler is built
type Config struct {
	Level       string // debug, info, warn, error
	Format      string // json or text
	ServiceName string
	Version     string
	Environment string
	AddSource   bool
}

func NewConfig(level, format, serviceName, version, environment string, addSource bool) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   addSource,
	}
}

// CLIConfig is used by farmctl. Engine logging is noise for a one-shot
// command, so only warnings show unless verbose is set.
func CLIConfig(verbose bool) Config {
	cfg := Config{
		Level:       LogLevelWarn,
		Format:      LogFormatText,
		ServiceName: CLIServiceName,
		Version:     DefaultVersion,
		Environment: EnvironmentDev,
	}
	if verbose {
		cfg.Level = LogLevelDebug
		cfg.AddSource = true
	}
	return cfg
}

// LogLevel maps Level onto slog, falling back to info for unknown names
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn, LogLevelWarning:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, LogFormatJSON)
}

func (c Config) baseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	}
}
