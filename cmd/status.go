package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// statusCmd reports the bucket configuration.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check that the bucket exists and report versioning and lifecycle",
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

		report, err := svc.Status(cmd.Context(), env.bucket())
		if err != nil {
			return err
		}
		if !report.ExpiryRuleActive {
			env.logger.Warn("Expiry rule is not active. Run 'lifecycle apply' to install it.", zap.String("bucket", env.bucket()))
		}
		return printJSON(cmd.OutOrStdout(), report)
	},
}

func init() {
	RootCmd.AddCommand(statusCmd)
}
