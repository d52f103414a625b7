package cmd

import (
	"fmt"
	"os"

	"bucket-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// bucketFlag overrides storage.bucket for the CLI subcommands.
var bucketFlag string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "bucket-manager",
	Short: "Bucket Manager Service",
	Long: `Bucket Manager is a thin service over S3-compatible object storage.
It manages objects, versioning and lifecycle rules, and searches text objects line by line.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding with ISO8601 timestamps reads better on a terminal
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&bucketFlag, "bucket", "b", "", "Bucket name (defaults to storage.bucket)")
}
