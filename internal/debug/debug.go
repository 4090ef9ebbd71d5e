package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable that enables logging.
const EnvVar = "LIVEDSL_DEBUG"

var (
	out      io.Writer
	file     *os.File
	mu       sync.Mutex
	loadOnce sync.Once
)

// Init enables debug logging to the file at path, creating its directory
// if needed.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	closeLocked()
	file = f
	out = f
	return nil
}

// SetOutput sends log lines to w. Pass nil to disable logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	out = w
}

// Close closes the debug log file, if one is open.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	out = nil
	if file != nil {
		err := file.Close()
		file = nil
		return err
	}
	return nil
}

// Enabled returns true if logging is enabled.
func Enabled() bool {
	loadEnv()
	mu.Lock()
	defer mu.Unlock()
	return out != nil
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	loadEnv()
	mu.Lock()
	defer mu.Unlock()

	if out == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(out, "[%s] %s\n", timestamp, fmt.Sprintf(format, args...))
	if file != nil {
		file.Sync()
	}
}

// loadEnv enables logging from the environment on first use.
func loadEnv() {
	loadOnce.Do(func() {
		path := os.Getenv(EnvVar)
		if path == "" {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if out == nil {
			initLocked(path)
		}
	})
}
