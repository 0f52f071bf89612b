package app

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "weaver.log"
	maxLogSize  = 10 * 1024 * 1024
)

// Logs hands out prefixed loggers that share one destination.
type Logs struct {
	out  io.Writer
	file *os.File
}

// SetupLogging routes logs to logs/weaver.log when debug is set and to stderr
// otherwise. An oversized log file is rotated aside first.
func SetupLogging(debug bool) (*Logs, error) {
	if !debug {
		return &Logs{out: os.Stderr}, nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	path := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("weaver-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			return nil, fmt.Errorf("rotate log: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(f)
	return &Logs{out: f, file: f}, nil
}

// Logger returns a logger writing with the given bracketed prefix.
func (l *Logs) Logger(name string) *log.Logger {
	out := io.Writer(os.Stderr)
	if l != nil && l.out != nil {
		out = l.out
	}
	return log.New(out, "["+name+"] ", log.LstdFlags|log.Lmicroseconds)
}

// Close releases the log file, if any.
func (l *Logs) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	return l.file.Close()
}
