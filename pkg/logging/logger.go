/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logger.go
Description: Structured logging for mentor. Wraps logrus with a small configuration
surface (level, format, optional log directory) and helpers that record each engine
operation with consistent field names.
*/

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// LogLevel represents the logging level
type LogLevel string

const (
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warning"
	LogLevelError   LogLevel = "error"
)

// LogFormat represents the log output format
type LogFormat string

const (
	LogFormatJSON   LogFormat = "json"
	LogFormatText   LogFormat = "text"
	LogFormatCustom LogFormat = "custom"
)

// LogFilePrefix names every log file written to OutputDir
const LogFilePrefix = "mentor_"

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level     LogLevel  `json:"level"`
	Format    LogFormat `json:"format"`
	OutputDir string    `json:"output_dir"`
	MaxFiles  int       `json:"max_files"`
	Timestamp bool      `json:"timestamp"`
	Caller    bool      `json:"caller"`
	Colors    bool      `json:"colors"`
	// Output receives console output; nil means stderr
	Output io.Writer `json:"-"`
}

// DefaultConfig returns the configuration used when none is supplied
func DefaultConfig() *LoggerConfig {
	return &LoggerConfig{
		Level:     LogLevelWarning,
		Format:    LogFormatCustom,
		MaxFiles:  10,
		Timestamp: true,
		Colors:    false,
	}
}

// Validate checks the configuration
func (c *LoggerConfig) Validate() error {
	switch c.Level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError:
	default:
		return fmt.Errorf("invalid log level: %q", c.Level)
	}
	switch c.Format {
	case LogFormatJSON, LogFormatText, LogFormatCustom:
	default:
		return fmt.Errorf("invalid log format: %q", c.Format)
	}
	if c.MaxFiles < 0 {
		return fmt.Errorf("max files must be non-negative")
	}
	return nil
}

// Logger is the mentor logger
type Logger struct {
	config     *LoggerConfig
	logger     *logrus.Logger
	fileHandle *os.File
	startTime  time.Time
	sessionID  string
}

// NewLogger creates a logger from config; nil selects DefaultConfig
func NewLogger(config *LoggerConfig) (*Logger, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger config: %w", err)
	}

	l := &Logger{
		config:    config,
		logger:    logrus.New(),
		startTime: time.Now(),
	}
	if err := l.setup(); err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return l, nil
}

func (l *Logger) setup() error {
	level, err := logrus.ParseLevel(string(l.config.Level))
	if err != nil {
		return err
	}
	l.logger.SetLevel(level)
	l.setFormatter()
	l.logger.SetReportCaller(l.config.Caller)

	console := l.config.Output
	if console == nil {
		console = os.Stderr
	}
	l.logger.SetOutput(console)

	if l.config.OutputDir != "" {
		return l.setupFileOutput(console)
	}
	return nil
}

func (l *Logger) setFormatter() {
	switch l.config.Format {
	case LogFormatJSON:
		l.logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat:  time.RFC3339Nano,
			DisableTimestamp: !l.config.Timestamp,
		})
	case LogFormatText:
		l.logger.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
			FullTimestamp:   l.config.Timestamp,
			DisableColors:   !l.config.Colors,
		})
	default:
		l.logger.SetFormatter(&CustomFormatter{
			Timestamp: l.config.Timestamp,
			Caller:    l.config.Caller,
			Colors:    l.config.Colors,
		})
	}
}

func (l *Logger) setupFileOutput(console io.Writer) error {
	if err := os.MkdirAll(l.config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	name := fmt.Sprintf("%s%s.log", LogFilePrefix, l.startTime.Format("2006-01-02_15-04-05.000000"))
	file, err := os.OpenFile(filepath.Join(l.config.OutputDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	l.fileHandle = file
	l.logger.SetOutput(io.MultiWriter(console, file))

	if l.config.MaxFiles > 0 {
		if err := CleanupOldLogs(l.config.OutputDir, l.config.MaxFiles); err != nil {
			return err
		}
	}
	return nil
}

// SetSessionID tags every subsequent entry with session_id
func (l *Logger) SetSessionID(id string) { l.sessionID = id }

// SessionID returns the current session tag
func (l *Logger) SessionID() string { return l.sessionID }

// FilePath returns the active log file, or "" when logging to the console only
func (l *Logger) FilePath() string {
	if l.fileHandle == nil {
		return ""
	}
	return l.fileHandle.Name()
}

// Close flushes and closes the log file
func (l *Logger) Close() error {
	if l.fileHandle == nil {
		return nil
	}
	err := l.fileHandle.Close()
	l.fileHandle = nil
	return err
}

// GetLogger returns the underlying logrus logger
func (l *Logger) GetLogger() *logrus.Logger {
	return l.logger
}

func (l *Logger) entry(fields logrus.Fields) *logrus.Entry {
	e := logrus.NewEntry(l.logger)
	if l.sessionID != "" {
		e = e.WithField("session_id", l.sessionID)
	}
	if len(fields) > 0 {
		e = e.WithFields(fields)
	}
	return e
}

// LogLoad records a model built from a description
func (l *Logger) LogLoad(source, kind string, states int, elapsed time.Duration) {
	l.entry(logrus.Fields{
		"op":       "load",
		"source":   source,
		"kind":     kind,
		"states":   states,
		"duration": elapsed,
	}).Info("Model loaded")
}

// LogAccept records one membership query
func (l *Logger) LogAccept(kind, input string, accepted bool, steps int) {
	l.entry(logrus.Fields{
		"op":       "accept",
		"kind":     kind,
		"input":    input,
		"accepted": accepted,
		"steps":    steps,
	}).Debug("Input simulated")
}

// LogConversion records a conversion between kinds
func (l *Logger) LogConversion(from, to string, statesBefore, statesAfter int, elapsed time.Duration) {
	l.entry(logrus.Fields{
		"op":            "convert",
		"from":          from,
		"to":            to,
		"states_before": statesBefore,
		"states_after":  statesAfter,
		"duration":      elapsed,
	}).Info("Model converted")
}

// LogComparison records an equivalence check
func (l *Logger) LogComparison(left, right string, equivalent bool, witness string) {
	fields := logrus.Fields{
		"op":         "compare",
		"left":       left,
		"right":      right,
		"equivalent": equivalent,
	}
	if !equivalent {
		fields["witness"] = witness
	}
	l.entry(fields).Info("Models compared")
}

// LogGeneration records a language enumeration
func (l *Logger) LogGeneration(kind string, requested, produced int, elapsed time.Duration) {
	l.entry(logrus.Fields{
		"op":        "generate",
		"kind":      kind,
		"requested": requested,
		"produced":  produced,
		"duration":  elapsed,
	}).Info("Words generated")
}

// LogBound records an operation that hit one of its safety bounds
func (l *Logger) LogBound(op string, err error) {
	l.entry(logrus.Fields{"op": op, "error": err.Error()}).Warn("Bound exceeded")
}

// Debug logs a debug message
func (l *Logger) Debug(message string, fields logrus.Fields) {
	l.entry(fields).Debug(message)
}

// Info logs an info message
func (l *Logger) Info(message string, fields logrus.Fields) {
	l.entry(fields).Info(message)
}

// Warning logs a warning message
func (l *Logger) Warning(message string, fields logrus.Fields) {
	l.entry(fields).Warn(message)
}

// Error logs an error message
func (l *Logger) Error(message string, fields logrus.Fields) {
	l.entry(fields).Error(message)
}
