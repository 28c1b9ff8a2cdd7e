package pyenv

import (
	"context"
	"fmt"
	"os"
	"strings"

	"dash-launcher/core/manifest"
	"dash-launcher/core/runner"
	"dash-launcher/core/server"

	"go.uber.org/zap"
)

// Env performs operations against the deployment's Python environment.
type Env struct {
	cfg    Config
	run    runner.Runner
	logger *zap.Logger
}

// New creates a new environment handle.
func New(cfg Config, run runner.Runner, logger *zap.Logger) *Env {
	return &Env{
		cfg:    cfg,
		run:    run,
		logger: logger,
	}
}

// Config returns the environment configuration.
func (e *Env) Config() Config {
	return e.cfg
}

// UpgradeInstaller upgrades pip itself. A stale pip is the most common cause
// of resolution failures on the platform's base images.
func (e *Env) UpgradeInstaller(ctx context.Context) error {
	_, err := e.run.Run(ctx, runner.Command{
		Binary: e.cfg.Python,
		Args:   []string{"-m", "pip", "install", "--upgrade", "pip"},
		Dir:    e.cfg.Root,
	})
	if err != nil {
		return fmt.Errorf("upgrade pip: %w", err)
	}
	return nil
}

// InstallRequirements parses the manifest and installs it with pip. The
// manifest is parsed before pip runs so a missing or malformed file fails
// here, without any installer subprocess being started. There is no retry
// and no rollback of packages already installed.
func (e *Env) InstallRequirements(ctx context.Context) (*manifest.Manifest, error) {
	m, err := manifest.Load(e.cfg.ManifestPath())
	if err != nil {
		return nil, err
	}

	e.logger.Info("Installing dependencies",
		zap.Int("count", len(m.Requirements)),
		zap.Strings("packages", m.Names()),
	)

	_, err = e.run.Run(ctx, runner.Command{
		Binary: e.cfg.Python,
		Args:   []string{"-m", "pip", "install", "-r", e.cfg.Manifest},
		Dir:    e.cfg.Root,
	})
	if err != nil {
		return nil, fmt.Errorf("install requirements: %w", err)
	}
	return m, nil
}

// ToolkitVersion probes the dashboard toolkit and returns the reported
// version line. The probe is diagnostic: callers log the result but must not
// gate on it.
func (e *Env) ToolkitVersion(ctx context.Context) (string, error) {
	res, err := e.run.Run(ctx, runner.Command{
		Binary: e.cfg.Python,
		Args:   []string{"-m", server.Toolkit, "version"},
		Dir:    e.cfg.Root,
	})
	if err != nil {
		return "", fmt.Errorf("toolkit probe: %w", err)
	}
	return strings.TrimSpace(res.Output), nil
}

// PythonPath returns the PYTHONPATH value with the deployment root appended.
// An existing value is extended, never replaced, so platform-provided paths
// survive.
func (e *Env) PythonPath() string {
	existing := os.Getenv("PYTHONPATH")
	if existing == "" {
		return e.cfg.Root
	}
	return existing + string(os.PathListSeparator) + e.cfg.Root
}
