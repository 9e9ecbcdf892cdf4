/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Log directory maintenance: retention of mentor log files and a summary
of what the directory holds.
*/

package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// LogStats holds statistics about log files
type LogStats struct {
	TotalFiles int       `json:"total_files"`
	TotalSize  int64     `json:"total_size"`
	OldestFile time.Time `json:"oldest_file"`
	NewestFile time.Time `json:"newest_file"`
}

type logFile struct {
	path    string
	modTime time.Time
	size    int64
}

func listLogs(dir string) ([]logFile, error) {
	paths, err := filepath.Glob(filepath.Join(dir, LogFilePrefix+"*.log"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob log files: %w", err)
	}
	files := make([]logFile, 0, len(paths))
	for _, p := range paths {
		st, err := os.Stat(p)
		if err != nil {
			continue
		}
		files = append(files, logFile{path: p, modTime: st.ModTime(), size: st.Size()})
	}
	sort.Slice(files, func(i, j int) bool {
		if files[i].modTime.Equal(files[j].modTime) {
			return files[i].path < files[j].path
		}
		return files[i].modTime.Before(files[j].modTime)
	})
	return files, nil
}

// CleanupOldLogs keeps the newest maxFiles log files in dir and removes the rest
func CleanupOldLogs(dir string, maxFiles int) error {
	files, err := listLogs(dir)
	if err != nil {
		return err
	}
	if len(files) <= maxFiles {
		return nil
	}
	for _, f := range files[:len(files)-maxFiles] {
		if err := os.Remove(f.path); err != nil {
			return fmt.Errorf("failed to remove file %s: %w", f.path, err)
		}
	}
	return nil
}

// GetLogStats summarizes the log files in dir
func GetLogStats(dir string) (*LogStats, error) {
	files, err := listLogs(dir)
	if err != nil {
		return nil, err
	}
	stats := &LogStats{TotalFiles: len(files)}
	for i, f := range files {
		stats.TotalSize += f.size
		if i == 0 {
			stats.OldestFile = f.modTime
		}
		stats.NewestFile = f.modTime
	}
	return stats, nil
}
