package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/budget-tracker-dev/budget-tracker/internal/config"
	"github.com/budget-tracker-dev/budget-tracker/internal/ledger"
	"github.com/budget-tracker-dev/budget-tracker/internal/logging"
	"github.com/budget-tracker-dev/budget-tracker/internal/paths"
)

// app bundles what every command needs once the data directory is known:
// config, ledger service, and the file-backed logger. The ledger is not
// loaded yet; commands that read it call Load themselves (edit must be
// able to open a broken file).
type app struct {
	dataDir string
	cfg     *config.Config
	svc     *ledger.Service
	logger  *log.Logger
	closer  io.Closer
}

// openApp resolves the data directory (flag value, or the default
// location) and wires up config, logger, and ledger service.
func openApp(dataDir string) (*app, error) {
	var err error
	if dataDir == "" {
		dataDir, err = paths.EnsureDataDir()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.LoadOrDefault(filepath.Join(dataDir, paths.ConfigFile))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger, closer, err := logging.Open(filepath.Join(dataDir, cfg.Log.File), cfg.Log.Level)
	if err != nil {
		// The log is best-effort; the ledger still works without it.
		logger = logging.Discard()
		closer = nil
	}

	return &app{
		dataDir: dataDir,
		cfg:     cfg,
		svc:     ledger.NewService(filepath.Join(dataDir, cfg.Ledger.File)),
		logger:  logger,
		closer:  closer,
	}, nil
}

func (a *app) close() {
	if a.closer != nil {
		_ = a.closer.Close()
	}
}

func (a *app) logPath() string {
	return filepath.Join(a.dataDir, a.cfg.Log.File)
}
