package bootstrap

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"dash-launcher/core/config"
	"dash-launcher/core/logger"
	"dash-launcher/core/pyenv"
	"dash-launcher/core/runner"
	"dash-launcher/core/runner/mocks"
	"dash-launcher/core/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testConfig builds a launcher config rooted at a temp deployment dir.
func testConfig(t *testing.T, withManifest bool) *config.Config {
	t.Helper()
	root := t.TempDir()
	if withManifest {
		require.NoError(t, os.WriteFile(
			filepath.Join(root, "requirements.txt"),
			[]byte("streamlit==1.29.0\npandas>=2.0\n"),
			0o644,
		))
	}
	return &config.Config{
		Server: server.Config{Port: "8000", Address: "0.0.0.0", App: "src/dashboard_interactive.py"},
		Python: pyenv.Config{Root: root, Manifest: "requirements.txt", Python: "python3", UpgradePip: true},
		Log:    logger.Config{Level: "info", Format: "console"},
	}
}

// isPip matches a python -m pip invocation by subcommand.
func isPip(sub string) func(runner.Command) bool {
	return func(cmd runner.Command) bool {
		return len(cmd.Args) >= 3 && cmd.Args[0] == "-m" && cmd.Args[1] == "pip" && cmd.Args[2] == sub
	}
}

func isToolkitProbe(cmd runner.Command) bool {
	return len(cmd.Args) >= 2 && cmd.Args[0] == "-m" && cmd.Args[1] == server.Toolkit
}

func TestService_Launch(t *testing.T) {
	cfg := testConfig(t, true)

	run := new(mocks.Runner)
	run.On("Run", mock.Anything, mock.MatchedBy(isPip("install"))).Return(&runner.Result{}, nil)
	run.On("Run", mock.Anything, mock.MatchedBy(isToolkitProbe)).
		Return(&runner.Result{Output: "Streamlit, version 1.29.0"}, nil)

	var launched runner.Command
	run.On("Exec", mock.Anything).Run(func(args mock.Arguments) {
		launched = args.Get(0).(runner.Command)
	}).Return(nil)

	svc := NewService(cfg, run, zap.NewNop())
	require.NoError(t, svc.Launch(context.Background()))

	assert.Equal(t, "python3", launched.Binary)
	assert.Equal(t, cfg.Python.Root, launched.Dir)
	assert.Contains(t, launched.Args, "--server.port=8000")
	assert.Contains(t, launched.Args, "--server.address=0.0.0.0")
	assert.Contains(t, launched.Args, "--server.headless=true")
	assert.Contains(t, launched.Args, "--server.enableCORS=false")
	assert.Contains(t, launched.Args, "--server.enableXsrfProtection=false")
	assert.Contains(t, launched.Args, "--browser.gatherUsageStats=false")
	require.Len(t, launched.Env, 1)
	assert.Contains(t, launched.Env[0], "PYTHONPATH=")
	assert.Contains(t, launched.Env[0], cfg.Python.Root)
}

func TestService_Launch_Rerun(t *testing.T) {
	cfg := testConfig(t, true)

	run := new(mocks.Runner)
	run.On("Run", mock.Anything, mock.MatchedBy(isPip("install"))).Return(&runner.Result{}, nil)
	run.On("Run", mock.Anything, mock.MatchedBy(isToolkitProbe)).
		Return(&runner.Result{Output: "Streamlit, version 1.29.0"}, nil)

	var launches []runner.Command
	run.On("Exec", mock.Anything).Run(func(args mock.Arguments) {
		launches = append(launches, args.Get(0).(runner.Command))
	}).Return(nil)

	svc := NewService(cfg, run, zap.NewNop())

	// A second run over an already-satisfied manifest succeeds trivially and
	// launches the server with the same configuration.
	require.NoError(t, svc.Launch(context.Background()))
	require.NoError(t, svc.Launch(context.Background()))

	require.Len(t, launches, 2)
	assert.Equal(t, launches[0], launches[1])
}

func TestService_Launch_PortFromConfig(t *testing.T) {
	cfg := testConfig(t, true)
	cfg.Server.Port = "9999"
	cfg.Python.UpgradePip = false

	run := new(mocks.Runner)
	run.On("Run", mock.Anything, mock.Anything).Return(&runner.Result{}, nil)

	var launched runner.Command
	run.On("Exec", mock.Anything).Run(func(args mock.Arguments) {
		launched = args.Get(0).(runner.Command)
	}).Return(nil)

	svc := NewService(cfg, run, zap.NewNop())
	require.NoError(t, svc.Launch(context.Background()))

	assert.Contains(t, launched.Args, "--server.port=9999")
	assert.NotContains(t, launched.Args, "--server.port=8000")
}

func TestService_Launch_MissingRoot(t *testing.T) {
	cfg := testConfig(t, true)
	cfg.Python.Root = filepath.Join(cfg.Python.Root, "gone")

	run := new(mocks.Runner)
	svc := NewService(cfg, run, zap.NewNop())

	err := svc.Launch(context.Background())
	require.Error(t, err)

	// The first gate failed: nothing was installed, nothing was launched.
	run.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
	run.AssertNotCalled(t, "Exec", mock.Anything)
}

func TestService_Launch_MissingManifest(t *testing.T) {
	cfg := testConfig(t, false)
	cfg.Python.UpgradePip = false

	run := new(mocks.Runner)
	svc := NewService(cfg, run, zap.NewNop())

	err := svc.Launch(context.Background())
	require.ErrorIs(t, err, fs.ErrNotExist)

	// No installer subprocess and no server process may ever start.
	run.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
	run.AssertNotCalled(t, "Exec", mock.Anything)
}

func TestService_Launch_InstallFailure(t *testing.T) {
	cfg := testConfig(t, true)
	cfg.Python.UpgradePip = false

	run := new(mocks.Runner)
	run.On("Run", mock.Anything, mock.MatchedBy(isPip("install"))).
		Return(&runner.Result{ExitCode: 1}, errors.New("python3: exit status 1"))

	svc := NewService(cfg, run, zap.NewNop())

	err := svc.Launch(context.Background())
	require.Error(t, err)
	run.AssertNotCalled(t, "Exec", mock.Anything)
}

func TestService_Launch_ToolkitProbeIsDiagnostic(t *testing.T) {
	cfg := testConfig(t, true)
	cfg.Python.UpgradePip = false

	run := new(mocks.Runner)
	run.On("Run", mock.Anything, mock.MatchedBy(isPip("install"))).Return(&runner.Result{}, nil)
	run.On("Run", mock.Anything, mock.MatchedBy(isToolkitProbe)).
		Return(&runner.Result{ExitCode: 1}, errors.New("python3: exit status 1"))
	run.On("Exec", mock.Anything).Return(nil)

	svc := NewService(cfg, run, zap.NewNop())

	// A failed version probe must not block the launch.
	require.NoError(t, svc.Launch(context.Background()))
	run.AssertCalled(t, "Exec", mock.Anything)
}

func TestService_Launch_UpgradeInstallerFailure(t *testing.T) {
	cfg := testConfig(t, true)

	run := new(mocks.Runner)
	run.On("Run", mock.Anything, mock.MatchedBy(isPip("install"))).
		Return(&runner.Result{ExitCode: 1}, errors.New("python3: exit status 1")).Once()

	svc := NewService(cfg, run, zap.NewNop())

	// A broken installer blocks dependency installation, so it is fatal.
	err := svc.Launch(context.Background())
	require.Error(t, err)
	run.AssertNotCalled(t, "Exec", mock.Anything)
}

func TestService_Preflight(t *testing.T) {
	t.Run("Passes", func(t *testing.T) {
		cfg := testConfig(t, true)

		run := new(mocks.Runner)
		run.On("Run", mock.Anything, mock.MatchedBy(isToolkitProbe)).
			Return(&runner.Result{Output: "Streamlit, version 1.29.0"}, nil)

		svc := NewService(cfg, run, zap.NewNop())
		assert.NoError(t, svc.Preflight(context.Background()))

		// Preflight never installs and never launches.
		run.AssertNotCalled(t, "Exec", mock.Anything)
	})

	t.Run("MissingManifest", func(t *testing.T) {
		cfg := testConfig(t, false)

		svc := NewService(cfg, new(mocks.Runner), zap.NewNop())
		assert.ErrorIs(t, svc.Preflight(context.Background()), fs.ErrNotExist)
	})

	t.Run("ToolkitProbeFailureIsNotFatal", func(t *testing.T) {
		cfg := testConfig(t, true)

		run := new(mocks.Runner)
		run.On("Run", mock.Anything, mock.MatchedBy(isToolkitProbe)).
			Return(&runner.Result{ExitCode: 1}, errors.New("python3: exit status 1"))

		svc := NewService(cfg, run, zap.NewNop())
		assert.NoError(t, svc.Preflight(context.Background()))
	})
}

func TestService_Steps_Order(t *testing.T) {
	cfg := testConfig(t, true)
	svc := NewService(cfg, new(mocks.Runner), zap.NewNop())

	var names []string
	for _, s := range svc.steps() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{
		"Resolving deployment root",
		"Upgrading package installer",
		"Installing dependencies",
		"Verifying dashboard toolkit",
	}, names)

	// Skipping the installer upgrade removes exactly that step.
	cfg.Python.UpgradePip = false
	assert.Len(t, svc.steps(), 3)
}
