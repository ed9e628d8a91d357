package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/palemoky/musical-chairs/internal/config"
)

const maxLogSize = 10 * 1024 * 1024

var (
	debugLog *os.File
	logPath  string
)

// Init configures the global zerolog logger. With cfg.File set, logs go to
// ~/.musical-chairs/debug.log so they do not interleave with the game
// output on stdout; otherwise to stderr.
func Init(cfg config.LogConfig) error {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"}
	if cfg.File {
		f, err := openLogFile()
		if err != nil {
			return err
		}
		out = f
	}

	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	if logPath != "" {
		log.Info().Str("path", logPath).Msg("Logger initialized")
	}
	return nil
}

func openLogFile() (*os.File, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	logDir := filepath.Join(homeDir, ".musical-chairs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logPath = filepath.Join(logDir, "debug.log")
	debugLog, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	// Rotate once the file passes 10MB
	if info, err := debugLog.Stat(); err == nil && info.Size() > maxLogSize {
		_ = debugLog.Close()
		backupPath := filepath.Join(logDir, fmt.Sprintf("debug.log.%d", time.Now().Unix()))
		_ = os.Rename(logPath, backupPath)
		debugLog, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to create new log file: %w", err)
		}
	}
	return debugLog, nil
}

// Close closes the debug log file
func Close() {
	if debugLog != nil {
		_ = debugLog.Close()
		debugLog = nil
	}
}

// LogPanic logs a recovered panic with its stack trace
func LogPanic(r any) {
	log.Error().Interface("panic", r).Str("stack", string(debug.Stack())).Msg("recovered panic")
}

// GetLogPath returns the current log file path, empty when logging to stderr
func GetLogPath() string {
	return logPath
}
