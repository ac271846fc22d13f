package debug

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// EnvVar names the environment variable that enables logging.
const EnvVar = "WIDARK_DEBUG"

var (
	mu      sync.Mutex
	logFile *os.File
	logger  *slog.Logger
	loaded  bool

	// stderr receives the one line reporting an unusable EnvVar path.
	stderr io.Writer = os.Stderr
)

// Init starts logging to the file at path, replacing any previous target.
// Directories are created as needed.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	loaded = true
	closeLocked()

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	logFile = f
	logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return nil
}

// SetOutput sends log records to w. Passing nil disables logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	loaded = true
	closeLocked()
	if w != nil {
		logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	logger = nil
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Enabled reports whether records are currently written anywhere.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	loadLocked()
	return logger != nil
}

// loadLocked initializes from the environment on first use.
func loadLocked() {
	if loaded {
		return
	}
	loaded = true
	if path := os.Getenv(EnvVar); path != "" {
		if err := initLocked(path); err != nil {
			fmt.Fprintf(stderr, "%s: logging disabled: %v\n", EnvVar, err)
		}
	}
}

// Log writes a debug record with structured key/value attributes.
func Log(msg string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	loadLocked()
	if logger == nil {
		return
	}
	logger.Debug(msg, args...)
}

// Logf formats a message and writes it as a debug record.
func Logf(format string, args ...any) {
	Log(fmt.Sprintf(format, args...))
}
