package events

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultMaxBytes is the rotation threshold for log files (10MB).
	DefaultMaxBytes = 10 * 1024 * 1024

	// maxBackups is how many rotated files are kept (.1 newest, .5 oldest).
	maxBackups = 5
)

// pkgLogger reports handler panics when no logger option is given.
var pkgLogger = logrus.New()

func defaultLogger() logrus.FieldLogger {
	return pkgLogger
}

// SetDefaultLogger replaces the package-level logger used by registries
// created without WithLogger. Passing a logger with logrus.PanicLevel
// output discarded effectively silences the library.
func SetDefaultLogger(logger *logrus.Logger) {
	pkgLogger = logger
}

// NewRotatingLogger returns a logrus logger writing JSON lines to path
// through a RotatingFileWriter, for owners that want handler failures on
// disk rather than stderr. The caller closes the returned writer.
func NewRotatingLogger(path string, maxBytes int64) (*logrus.Logger, *RotatingFileWriter, error) {
	w, err := NewRotatingFileWriter(path, maxBytes)
	if err != nil {
		return nil, nil, err
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger, w, nil
}

// RotatingFileWriter is an io.WriteCloser that rotates its file once it
// grows past maxBytes, renaming the old contents to path.1 and shifting
// earlier backups up to path.5.
type RotatingFileWriter struct {
	path     string
	maxBytes int64
	file     *os.File
	size     int64
	mu       sync.Mutex
}

// NewRotatingFileWriter opens (or creates) the file at path. A maxBytes
// of zero or less falls back to DefaultMaxBytes.
func NewRotatingFileWriter(path string, maxBytes int64) (*RotatingFileWriter, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	w := &RotatingFileWriter{
		path:     path,
		maxBytes: maxBytes,
	}
	if err := w.open(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *RotatingFileWriter) open() error {
	file, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to stat log file: %w", err)
	}

	w.file = file
	w.size = info.Size()
	return nil
}

// Write appends p, rotating first when the file would grow past the
// threshold.
func (w *RotatingFileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.size+int64(len(p)) > w.maxBytes {
		if err := w.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := w.file.Write(p)
	w.size += int64(n)
	return n, err
}

func (w *RotatingFileWriter) rotate() error {
	if w.file != nil {
		if err := w.file.Close(); err != nil {
			return fmt.Errorf("failed to close log file for rotation: %w", err)
		}
	}

	// Shift backups: .4 -> .5, ..., .1 -> .2. Failures here lose old
	// backups but never block new writes.
	for i := maxBackups - 1; i >= 1; i-- {
		old := fmt.Sprintf("%s.%d", w.path, i)
		if _, err := os.Stat(old); err != nil {
			continue
		}
		next := fmt.Sprintf("%s.%d", w.path, i+1)
		os.Remove(next)
		os.Rename(old, next)
	}

	backup := w.path + ".1"
	if _, err := os.Stat(w.path); err == nil {
		os.Remove(backup)
		if err := os.Rename(w.path, backup); err != nil {
			os.Remove(w.path)
		}
	}

	return w.open()
}

// Close closes the underlying file. Further writes fail.
func (w *RotatingFileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}

var _ io.WriteCloser = (*RotatingFileWriter)(nil)
