package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

const (
	logDir      = "logs"
	logFileName = "vi-shooter.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging opens the debug log under dir, rotating it once it exceeds maxLogSize
// With debug off it returns a disabled logger and a nil file; the terminal belongs to the game
func setupLogging(dir string, debug bool) (zerolog.Logger, *os.File, error) {
	if !debug {
		return zerolog.Nop(), nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return zerolog.Nop(), nil, eris.Wrapf(err, "failed to create log directory %s", dir)
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, "vi-shooter-"+time.Now().Format("20060102-150405")+".log")
		if err := os.Rename(logPath, rotated); err != nil {
			return zerolog.Nop(), nil, eris.Wrap(err, "failed to rotate log file")
		}
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, eris.Wrapf(err, "failed to open log file %s", logPath)
	}

	log := zerolog.New(file).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()
	return log, file, nil
}
