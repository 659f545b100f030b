// Package logger builds the arbor logger used across jaskcalc.
//
// The terminal UI owns stdout, so logs only ever go to a file (or to memory
// in tests).
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ternarybob/arbor"
	arborcommon "github.com/ternarybob/arbor/common"
	"github.com/ternarybob/arbor/models"

	"github.com/jask/jaskcalc/internal/config"
)

// Setup creates a file logger from cfg.
func Setup(cfg config.LoggingConfig) (arbor.ILogger, error) {
	if cfg.File == "" {
		return nil, fmt.Errorf("logging.file is empty")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir log dir: %w", err)
	}
	l := arbor.NewLogger().
		WithFileWriter(writerConfig(cfg, models.LogWriterTypeFile, cfg.File)).
		WithLevelFromString(cfg.Level)
	return l, nil
}

// Memory returns a logger that keeps entries in memory only.
func Memory() arbor.ILogger {
	return arbor.NewLogger().WithMemoryWriter(writerConfig(config.LoggingConfig{}, models.LogWriterTypeMemory, ""))
}

func writerConfig(cfg config.LoggingConfig, writerType models.LogWriterType, filename string) models.WriterConfiguration {
	outputType := models.OutputFormatLogfmt
	if cfg.Format == "json" {
		outputType = models.OutputFormatJSON
	}
	return models.WriterConfiguration{
		Type:       writerType,
		FileName:   filename,
		TimeFormat: "15:04:05.000",
		OutputType: outputType,
		MaxSize:    10 * 1024 * 1024,
		MaxBackups: 3,
	}
}

// Stop flushes pending log entries. Safe to call more than once.
func Stop() {
	arborcommon.Stop()
}
