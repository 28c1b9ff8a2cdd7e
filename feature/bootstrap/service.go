package bootstrap

import (
	"context"
	"fmt"
	"os"

	"dash-launcher/core/config"
	"dash-launcher/core/manifest"
	"dash-launcher/core/pyenv"
	"dash-launcher/core/runner"

	"go.uber.org/zap"
)

// Step is one gate of the bootstrap sequence.
type Step struct {
	// Name is printed as a banner before the step runs. On failure it is the
	// last thing in the platform log, so it has to localize the step.
	Name string
	// Fatal steps abort the sequence on failure; the rest only log.
	Fatal bool
	Run   func(ctx context.Context) error
}

// Service drives the bootstrap sequence: a linear chain of fallible steps
// ending in an exec into the dashboard server. There is no retry, no partial
// rollback and no supervision; the hosting platform owns restarts.
type Service struct {
	cfg    *config.Config
	env    *pyenv.Env
	run    runner.Runner
	logger *zap.Logger
}

// NewService creates a new bootstrap service.
func NewService(cfg *config.Config, run runner.Runner, logger *zap.Logger) *Service {
	return &Service{
		cfg:    cfg,
		env:    pyenv.New(cfg.Python, run, logger),
		run:    run,
		logger: logger,
	}
}

// steps returns the bootstrap gates in execution order. The final exec is
// not a step: it never returns on success.
func (s *Service) steps() []Step {
	steps := []Step{
		{Name: "Resolving deployment root", Fatal: true, Run: s.resolveRoot},
	}

	if s.cfg.Python.UpgradePip {
		steps = append(steps, Step{Name: "Upgrading package installer", Fatal: true, Run: s.env.UpgradeInstaller})
	}

	steps = append(steps,
		Step{Name: "Installing dependencies", Fatal: true, Run: func(ctx context.Context) error {
			_, err := s.env.InstallRequirements(ctx)
			return err
		}},
		Step{Name: "Verifying dashboard toolkit", Fatal: false, Run: s.verifyToolkit},
	)

	return steps
}

// Launch runs every bootstrap gate and hands the process over to the
// dashboard server. On success it never returns.
func (s *Service) Launch(ctx context.Context) error {
	for _, step := range s.steps() {
		s.logger.Info(step.Name)
		if err := step.Run(ctx); err != nil {
			if step.Fatal {
				return fmt.Errorf("%s: %w", step.Name, err)
			}
			s.logger.Warn("Step failed, continuing", zap.String("step", step.Name), zap.Error(err))
		}
	}
	return s.exec()
}

// Preflight runs the non-mutating gates only: deployment root, manifest
// parse, toolkit probe. Nothing is installed and no server is started.
func (s *Service) Preflight(ctx context.Context) error {
	s.logger.Info("Resolving deployment root")
	if err := s.resolveRoot(ctx); err != nil {
		return fmt.Errorf("resolving deployment root: %w", err)
	}

	s.logger.Info("Checking dependency manifest")
	m, err := manifest.Load(s.cfg.Python.ManifestPath())
	if err != nil {
		return fmt.Errorf("checking dependency manifest: %w", err)
	}
	s.logger.Info("Manifest parsed", zap.Int("count", len(m.Requirements)), zap.Strings("packages", m.Names()))

	s.logger.Info("Verifying dashboard toolkit")
	if err := s.verifyToolkit(ctx); err != nil {
		s.logger.Warn("Toolkit not available, launch would install it first", zap.Error(err))
	}

	return nil
}

// resolveRoot verifies the deployment root exists before anything touches
// the environment.
func (s *Service) resolveRoot(context.Context) error {
	root := s.cfg.Python.Root
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("deployment root %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("deployment root %s is not a directory", root)
	}
	return nil
}

// verifyToolkit probes the toolkit version. Diagnostic only: the install
// step is what actually guarantees the toolkit, so a probe failure is logged
// by the caller, never fatal.
func (s *Service) verifyToolkit(ctx context.Context) error {
	version, err := s.env.ToolkitVersion(ctx)
	if err != nil {
		return err
	}
	s.logger.Info("Toolkit available", zap.String("version", version))
	return nil
}

// exec builds the server command and replaces the launcher with it. The
// child inherits an extended PYTHONPATH so the dashboard can import from
// the deployment root.
func (s *Service) exec() error {
	cmd := runner.Command{
		Binary: s.cfg.Python.Python,
		Args:   s.cfg.Server.Args(),
		Dir:    s.cfg.Python.Root,
		Env:    []string{"PYTHONPATH=" + s.env.PythonPath()},
	}

	s.logger.Info("Starting dashboard server",
		zap.String("address", s.cfg.Server.Address),
		zap.String("port", s.cfg.Server.Port),
		zap.String("app", s.cfg.Server.App),
	)
	// The process image is about to be replaced; flush buffered log output.
	_ = s.logger.Sync()

	return s.run.Exec(cmd)
}
