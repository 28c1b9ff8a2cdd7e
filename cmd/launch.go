package cmd

import (
	"log"

	"dash-launcher/core/config"
	"dash-launcher/core/logger"
	"dash-launcher/core/runner"
	"dash-launcher/feature/bootstrap"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// launchCmd represents the launch command
var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Bootstrap the environment and start the dashboard server",
	Long: `Runs the full bootstrap sequence: resolves the deployment root, upgrades
the package installer, installs the dependency manifest, probes the dashboard
toolkit and execs into the server process. On success this command never
returns; the server's exit code becomes the launcher's.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		// No deferred Sync: the success path never returns (the process image
		// is replaced) and Service.exec flushes before the hand-off.

		// Tag every line of this attempt so the platform log stream can be
		// filtered to a single launch.
		logg = logger.WithLaunchID(logg, uuid.NewString())
		zap.ReplaceGlobals(logg)

		// 3. Run the bootstrap sequence. Exec replaces the process image, so
		// reaching the Fatal below means a step failed.
		svc := bootstrap.NewService(cfg, runner.NewHost(), logg)
		if err := svc.Launch(cmd.Context()); err != nil {
			logg.Fatal("Bootstrap failed", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(launchCmd)
}
