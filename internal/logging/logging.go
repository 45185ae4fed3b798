package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Init initializes the logging system, writing logs to ~/.quadro/logs/quadro.log
// Uses text format for human readability.
func Init() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	return InitFile(filepath.Join(homeDir, ".quadro", "logs", "quadro.log"))
}

// InitFile points the global logger at logPath, creating parent directories
// as needed. The terminal belongs to the UI, so nothing is logged to stderr.
func InitFile(logPath string) error {
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return err
	}

	// Open log file in append mode
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return nil
}

// Discard drops all log output. Used when the log file cannot be opened and
// stderr must stay clean for command output.
func Discard() {
	Logger = slog.New(slog.DiscardHandler)
	slog.SetDefault(Logger)
}
