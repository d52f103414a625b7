package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versioningCmd is the parent command for bucket versioning.
var versioningCmd = &cobra.Command{
	Use:   "versioning",
	Short: "Show or change bucket versioning",
}

var versioningGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the versioning status (Enabled, Suspended or Disabled)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment()
		if err != nil {
			return err
		}
		svc, err := env.bucketService()
		if err != nil {
			return err
		}

		status, err := svc.GetVersioningStatus(cmd.Context(), env.bucket())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), status)
		return nil
	},
}

var versioningSetCmd = &cobra.Command{
	Use:       "set <Enabled|Suspended>",
	Short:     "Enable or suspend versioning",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"Enabled", "Suspended"},
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment()
		if err != nil {
			return err
		}
		svc, err := env.bucketService()
		if err != nil {
			return err
		}

		if err := svc.SetVersioning(cliContext(cmd.Context()), env.bucket(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Versioning of %s set to %s\n", env.bucket(), args[0])
		return nil
	},
}

func init() {
	versioningCmd.AddCommand(versioningGetCmd, versioningSetCmd)
	RootCmd.AddCommand(versioningCmd)
}
