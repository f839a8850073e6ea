package main

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
	logFileName = "starfall.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes the stdlib logger. Without debug the logger is
// discarded entirely; the terminal owns stdout and stderr while the
// screen is up, so nothing may print through them. With debug, lines
// go to logs/starfall.log with microsecond timestamps and short file
// names, and an oversized previous log is rotated aside under a
// timestamped name before the new one opens.
//
// Returns the open log file for the caller to close, nil when logging
// is disabled or the file could not be prepared.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir,
			fmt.Sprintf("starfall-%s.log", time.Now().Format("20060102-150405")))
		os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	return f
}
