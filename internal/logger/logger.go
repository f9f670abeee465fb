// Package logger provides TUI-safe leveled logging.
//
// The terminal belongs to the Bubble Tea program, so log lines go to a file
// opened with tea.LogToFile. Until Init is called every helper is a no-op.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

const prefix = "patina"

var (
	mu       sync.Mutex
	instance *Logger
)

// Logger writes leveled lines to a single destination.
type Logger struct {
	out  *log.Logger
	file *os.File
}

// Init opens path for appending and routes all helpers to it.
func Init(path string) error {
	f, err := tea.LogToFile(path, prefix)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	instance = &Logger{
		out:  log.New(f, prefix+" ", log.LstdFlags|log.Lmicroseconds),
		file: f,
	}
	return nil
}

// SetOutput routes all helpers to w. It is meant for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		instance = nil
		return
	}
	instance = &Logger{out: log.New(w, "", 0)}
}

// Debug logs a debug message
func Debug(format string, args ...any) { write("DEBUG", format, args...) }

// Info logs an info message
func Info(format string, args ...any) { write("INFO", format, args...) }

// Error logs an error message
func Error(format string, args ...any) { write("ERROR", format, args...) }

func write(level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		return
	}
	instance.out.Printf("[%s] %s", level, fmt.Sprintf(format, args...))
}

// Close flushes and closes the log file opened by Init.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		return nil
	}
	f := instance.file
	instance = nil
	if f == nil {
		return nil
	}
	return f.Close()
}
