// Package controller provides output adapters for displaying tracing progress and results.
package controller

import (
	"time"

	m "github.com/mouse-blink/peptrace/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeTrace StartMode = iota
	ModeScore
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithTraceMode sets the UI to full tracing mode.
func WithTraceMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeTrace
	}
}

// WithScoreMode sets the UI to link scoring mode.
func WithScoreMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeScore
	}
}

// UI defines the interface for displaying a tracing run.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayRunInfo(source m.Path, peaks int, threads int)
	DisplayStageStarted(stage string, index, total int)
	DisplayStageCompleted(stage string, items int, elapsed time.Duration)
	DisplayModel(report m.Report, saved m.Path, err error) error
	DisplayRankedLinks(links []m.DirectedLink, err error) error
}
