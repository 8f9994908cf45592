package logger

import (
	"os"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

var log *zap.Logger

// DefaultConfig returns a standard zap.Config object with custom settings.
func DefaultConfig() zap.Config {
	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zap.InfoLevel),
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	if path := os.Getenv("CERTVAULT_LOG_FILE"); path != "" {
		cfg.OutputPaths = append(cfg.OutputPaths, path)
	}
	if os.Getenv("CERTVAULT_DEBUG") != "" {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg
}

// InitializeWithConfig initializes the logger with a custom zap.Config.
func InitializeWithConfig(cfg zap.Config) {
	var err error
	log, err = cfg.Build()
	if err != nil {
		// Fallback to console-only logging if file logging fails
		cfg.OutputPaths = []string{"stderr"}
		log, err = cfg.Build()
		if err != nil {
			panic("failed to initialize logger with fallback config: " + err.Error())
		}
	}
	zap.ReplaceGlobals(log)
	otelzap.ReplaceGlobals(otelzap.New(log))
}

// Initialize initializes the logger with the default configuration.
func Initialize() {
	InitializeWithConfig(DefaultConfig())
}

// L returns the global logger instance.
func L() *zap.Logger {
	if log == nil {
		Initialize()
	}
	return log
}

// Sync flushes any buffered log entries. Should be called before the application exits.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
