package ui

import (
	"go.uber.org/zap"

	"github.com/lumibag/lumibag/internal/logging"
	"github.com/lumibag/lumibag/internal/pattern"
)

// LogSurface is the headless surface: it logs a one-line summary per frame
// at debug level. Used on the daemon when no LED hardware is attached.
type LogSurface struct{}

// Apply implements show.Surface.
func (LogSurface) Apply(f *pattern.Frame) error {
	lit := 0
	for _, c := range f {
		if c != pattern.Off {
			lit++
		}
	}
	logging.Debug("frame", zap.Int("lit", lit), zap.Int("pixels", pattern.NumPixels))
	return nil
}
