package cmd

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	uploadKey  string
	yesConfirm bool
)

// objectsCmd is the parent command for object operations.
var objectsCmd = &cobra.Command{
	Use:   "objects",
	Short: "List, upload, delete and presign objects",
}

var objectsListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List every object key in the bucket",
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

		keys, err := svc.ListObjects(cmd.Context(), env.bucket())
		if err != nil {
			return err
		}
		for _, k := range keys {
			fmt.Fprintln(cmd.OutOrStdout(), k)
		}
		return nil
	},
}

var objectsUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a local file",
	Long:  `Uploads a local file. The object key defaults to the file's base name.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment()
		if err != nil {
			return err
		}
		svc, err := env.bucketService()
		if err != nil {
			return err
		}

		path := args[0]
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()

		stat, err := f.Stat()
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", path, err)
		}

		key := uploadKey
		if key == "" {
			key = filepath.Base(path)
		}

		res, err := svc.UploadObject(cliContext(cmd.Context()), env.bucket(), key, f, stat.Size(), mime.TypeByExtension(filepath.Ext(path)))
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), res)
	},
}

var objectsRemoveCmd = &cobra.Command{
	Use:   "rm <key>",
	Short: "Delete an object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment()
		if err != nil {
			return err
		}
		svc, err := env.bucketService()
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleting %s/%s\n", env.bucket(), args[0])
		if !confirmDestructiveAction(yesConfirm) {
			env.logger.Warn("Operation cancelled by user. No changes were made.")
			return nil
		}
		return svc.DeleteObject(cliContext(cmd.Context()), env.bucket(), args[0])
	},
}

var objectsURLCmd = &cobra.Command{
	Use:   "url <key>",
	Short: "Print a one hour presigned download URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment()
		if err != nil {
			return err
		}
		svc, err := env.bucketService()
		if err != nil {
			return err
		}

		u, err := svc.GetDownloadURL(cmd.Context(), env.bucket(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), u)
		return nil
	},
}

var objectsVersionsCmd = &cobra.Command{
	Use:   "versions <key>",
	Short: "List the stored versions of an object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment()
		if err != nil {
			return err
		}
		svc, err := env.bucketService()
		if err != nil {
			return err
		}

		versions, err := svc.ListObjectVersions(cmd.Context(), env.bucket(), args[0])
		if err != nil {
			return err
		}
		env.logger.Debug("Listed versions", zap.String("key", args[0]), zap.Int("count", len(versions)))
		return printJSON(cmd.OutOrStdout(), versions)
	},
}

func init() {
	objectsCmd.AddCommand(objectsListCmd, objectsUploadCmd, objectsRemoveCmd, objectsURLCmd, objectsVersionsCmd)

	objectsUploadCmd.Flags().StringVarP(&uploadKey, "key", "k", "", "Object key (defaults to the file name)")
	objectsRemoveCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm the deletion (non-interactive)")

	RootCmd.AddCommand(objectsCmd)
}
