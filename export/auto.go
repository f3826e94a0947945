package export

import (
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/chordgrid/layout"
	"github.com/jsphweid/chordgrid/model"
	"go.uber.org/zap"
)

// AutoExporter rewrites the printable page after edits. Bursts of Trigger
// calls closer together than the wait collapse into one write.
type AutoExporter struct {
	path      string
	snapshot  func() model.Song
	debounced func(func())
	logger    *zap.Logger

	mu      sync.Mutex
	lastErr error
	writes  int
}

func NewAutoExporter(path string, wait time.Duration, snapshot func() model.Song, logger *zap.Logger) *AutoExporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AutoExporter{
		path:      path,
		snapshot:  snapshot,
		debounced: debounce.New(wait),
		logger:    logger,
	}
}

func (a *AutoExporter) Trigger() {
	a.debounced(func() {
		_ = a.Flush()
	})
}

// Flush writes the page now.
func (a *AutoExporter) Flush() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	err := WriteHTMLFile(a.path, layout.ProjectSong(a.snapshot()))
	a.lastErr = err
	if err != nil {
		a.logger.Error("auto export failed", zap.String("path", a.path), zap.Error(err))
		return err
	}
	a.writes++
	a.logger.Debug("exported sheet", zap.String("path", a.path))
	return nil
}

// Writes reports how many pages were written and the last error seen.
func (a *AutoExporter) Writes() (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.writes, a.lastErr
}
