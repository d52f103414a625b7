package cmd

import (
	"fmt"

	"bucket-manager/feature/bucket"

	"github.com/spf13/cobra"
)

// lifecycleCmd is the parent command for lifecycle rules.
var lifecycleCmd = &cobra.Command{
	Use:   "lifecycle",
	Short: "Show or apply bucket lifecycle rules",
}

var lifecycleApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Install the rule expiring every object after 30 days",
	Long: `Replaces the bucket lifecycle configuration with a single enabled rule
that deletes every object 30 days after creation.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment()
		if err != nil {
			return err
		}
		svc, err := env.bucketService()
		if err != nil {
			return err
		}

		if err := svc.ApplyLifecycleRule(cliContext(cmd.Context()), env.bucket()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Rule %s applied to %s\n", bucket.ExpiryRuleID, env.bucket())
		return nil
	},
}

var lifecycleShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the installed lifecycle rules",
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

		rules, err := svc.GetLifecycle(cmd.Context(), env.bucket())
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), rules)
	},
}

func init() {
	lifecycleCmd.AddCommand(lifecycleApplyCmd, lifecycleShowCmd)
	RootCmd.AddCommand(lifecycleCmd)
}
