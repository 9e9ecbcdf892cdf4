/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: formatter.go
Description: Human-readable log formatter. Prints timestamp, level, an operation tag
taken from the "op" field, the message and the remaining fields in key order.
*/

package logging

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// CustomFormatter renders entries as single readable lines
type CustomFormatter struct {
	Timestamp bool
	Caller    bool
	Colors    bool
}

// Format formats a log entry
func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var output strings.Builder

	if f.Timestamp {
		timestamp := entry.Time.Format("2006-01-02 15:04:05.000")
		output.WriteString(f.paint(36, timestamp))
		output.WriteByte(' ')
	}

	level := strings.ToUpper(entry.Level.String())
	output.WriteString(f.paint(f.getLevelColor(entry.Level), level))
	output.WriteByte(' ')

	if op, ok := entry.Data["op"].(string); ok && op != "" {
		output.WriteString(f.paint(35, "["+strings.ToUpper(op)+"]"))
		output.WriteByte(' ')
	}

	if f.Caller && entry.HasCaller() {
		caller := fmt.Sprintf("[%s:%d]", entry.Caller.File, entry.Caller.Line)
		output.WriteString(f.paint(33, caller))
		output.WriteByte(' ')
	}

	output.WriteString(entry.Message)

	if fields := f.formatFields(entry.Data); fields != "" {
		output.WriteByte(' ')
		output.WriteString(fields)
	}

	output.WriteByte('\n')
	return []byte(output.String()), nil
}

func (f *CustomFormatter) paint(color int, s string) string {
	if !f.Colors {
		return s
	}
	return fmt.Sprintf("\033[%dm%s\033[0m", color, s)
}

// getLevelColor returns the ANSI color code for a log level
func (f *CustomFormatter) getLevelColor(level logrus.Level) int {
	switch level {
	case logrus.DebugLevel, logrus.TraceLevel:
		return 37
	case logrus.InfoLevel:
		return 32
	case logrus.WarnLevel:
		return 33
	case logrus.ErrorLevel:
		return 31
	default:
		return 35
	}
}

// formatFields renders fields sorted by key, skipping the op tag
func (f *CustomFormatter) formatFields(fields logrus.Fields) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == "op" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		value := f.formatValue(k, fields[k])
		if f.Colors {
			parts = append(parts, fmt.Sprintf("\033[34m%s\033[0m=\033[32m%s\033[0m", k, value))
		} else {
			parts = append(parts, fmt.Sprintf("%s=%s", k, value))
		}
	}
	return strings.Join(parts, " ")
}

// formatValue formats a field value appropriately
func (f *CustomFormatter) formatValue(key string, value interface{}) string {
	switch v := value.(type) {
	case time.Duration:
		return v.String()
	case time.Time:
		return v.Format("15:04:05.000")
	case string:
		if key == "session_id" && len(v) > 8 {
			return v[:8]
		}
		if len(v) > 50 {
			return fmt.Sprintf("%q...", v[:50])
		}
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
