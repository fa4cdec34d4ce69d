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
	logFileName = "trainers.log"
	maxLogSize  = 10 << 20 // 10 MiB
)

// setupLogging routes the standard logger to a rotated file in debug mode and discards it otherwise
// The terminal owns stdout and stderr while the UI runs, so logs never go there
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
		rotated := filepath.Join(logDir, fmt.Sprintf("trainers_%s.log", time.Now().Format("20060102_150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	log.Printf("=== trainers started (pid %d) ===", os.Getpid())
	return f
}

// logService owns the log file for the lifetime of the run
type logService struct {
	debug bool
	file  *os.File
}

func (s *logService) Name() string { return "log" }

func (s *logService) Dependencies() []string { return nil }

func (s *logService) Init() error { return nil }

func (s *logService) Start() error {
	s.file = setupLogging(s.debug)
	return nil
}

func (s *logService) Stop() error {
	if s.file == nil {
		return nil
	}
	log.SetOutput(io.Discard)
	err := s.file.Close()
	s.file = nil
	return err
}
