package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"dash-launcher/core/config"
	"dash-launcher/core/manifest"

	"github.com/spf13/cobra"
)

var jsonFlag bool

// requirementsCmd represents the requirements command
var requirementsCmd = &cobra.Command{
	Use:   "requirements",
	Short: "Parse and print the dependency manifest",
	Long: `Reads the requirements file of the deployment and prints the declared
packages with their version constraints. Exits non-zero if the manifest is
missing or contains a malformed specifier.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		m, err := manifest.Load(cfg.Python.ManifestPath())
		if err != nil {
			return err
		}

		if jsonFlag {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(m)
		}

		for _, r := range m.Requirements {
			fmt.Println(r.String())
		}
		return nil
	},
}

func init() {
	requirementsCmd.Flags().BoolVar(&jsonFlag, "json", false, "print the parsed manifest as JSON")
	RootCmd.AddCommand(requirementsCmd)
}
