package cmd

import (
	"fmt"

	"dash-launcher/core/config"
	"dash-launcher/core/logger"
	"dash-launcher/core/runner"
	"dash-launcher/feature/bootstrap"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// preflightCmd represents the preflight command
var preflightCmd = &cobra.Command{
	Use:   "preflight",
	Short: "Check the deployment without installing or launching anything",
	Long: `Runs the non-mutating bootstrap gates: verifies the deployment root
exists, parses the dependency manifest and probes the dashboard toolkit.
Nothing is installed and no server process is started. Exits non-zero if a
fatal gate fails, which makes it usable as a deploy-time smoke check.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()
		logg = logger.WithLaunchID(logg, uuid.NewString())

		svc := bootstrap.NewService(cfg, runner.NewHost(), logg)
		if err := svc.Preflight(cmd.Context()); err != nil {
			return err
		}

		logg.Info("Preflight passed")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(preflightCmd)
}
