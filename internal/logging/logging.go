// v0
// internal/logging/logging.go
package logging

import (
	"io"
	"log/slog"
	"os"
)

// DualLogger writes every record to stdout and, when the target file opens, to
// that file as well.
type DualLogger struct {
	Logger *slog.Logger
	file   *os.File
}

// New builds the dual logger for path. An unopenable path degrades to
// stdout-only instead of failing startup.
func New(path string) *DualLogger {
	writers := []io.Writer{os.Stdout}
	var file *os.File
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			file = f
			writers = append(writers, f)
		}
	}
	h := slog.NewTextHandler(io.MultiWriter(writers...), &slog.HandlerOptions{Level: slog.LevelInfo})
	lg := slog.New(h)
	if path != "" && file == nil {
		lg.Warn("log file unavailable, stdout only", "path", path)
	}
	return &DualLogger{Logger: lg, file: file}
}

// Close releases the log file when one was opened.
func (d *DualLogger) Close() error {
	if d.file == nil {
		return nil
	}
	return d.file.Close()
}
