package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/baditaflorin/l"

	"github.com/emiliopalmerini/ufcompare/internal/ports"
)

// Config controls where and how logs are written.
type Config struct {
	File  string // empty means stdout
	JSON  bool
	Debug bool
}

// StdLogger adapts l.Logger to ports.Logger.
type StdLogger struct {
	logger l.Logger
	debug  bool
	file   *os.File
}

// New creates a logger from cfg.
func New(cfg Config) (*StdLogger, error) {
	var output io.Writer = os.Stdout
	var file *os.File
	if cfg.File != "" {
		var err error
		file, err = os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	// l closes any io.Closer it is given; stdout and the log file stay ours.
	logger, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output:     writerOnly{output},
		JsonFormat: cfg.JSON,
		MinLevel:   minLevel(cfg.Debug),
		AsyncWrite: true,
		BufferSize: 1024 * 1024, // 1MB buffer
		AddSource:  false,
		Metrics:    false,
	})
	if err != nil {
		if file != nil {
			_ = file.Close()
		}
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &StdLogger{logger: logger, debug: cfg.Debug, file: file}, nil
}

type writerOnly struct{ io.Writer }

func minLevel(debug bool) slog.Level {
	if debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// Debug logs a debug message when debug logging is enabled.
func (s *StdLogger) Debug(msg string, keysAndValues ...any) {
	if !s.debug {
		return
	}
	s.logger.Debug(msg, keysAndValues...)
}

// Info logs an info message.
func (s *StdLogger) Info(msg string, keysAndValues ...any) {
	s.logger.Info(msg, keysAndValues...)
}

// Warn logs a warning message.
func (s *StdLogger) Warn(msg string, keysAndValues ...any) {
	s.logger.Warn(msg, keysAndValues...)
}

// Error logs an error message.
func (s *StdLogger) Error(msg string, keysAndValues ...any) {
	s.logger.Error(msg, keysAndValues...)
}

// Close flushes and closes the logger.
func (s *StdLogger) Close() error {
	err := s.logger.Close()
	if s.file != nil {
		if cerr := s.file.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

var _ ports.Logger = (*StdLogger)(nil)
