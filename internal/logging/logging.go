package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Init initializes the logging system, writing logs to
// ~/.switchboard/logs/switchboard.log. Uses text format for human
// readability. Logging to a file keeps slog output off the terminal
// the board is drawing on.
func Init() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	logDir := filepath.Join(homeDir, ".switchboard", "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	logPath := filepath.Join(logDir, "switchboard.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file.
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return nil
}
