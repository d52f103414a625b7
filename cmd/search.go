package cmd

import (
	"errors"

	"bucket-manager/feature/search"

	"github.com/spf13/cobra"
)

var caseSensitive bool

// searchCmd searches a text object line by line.
var searchCmd = &cobra.Command{
	Use:   "search <key> <word>",
	Short: "Search a text object for a word",
	Long: `Downloads a text object (UTF-8, falling back to Latin-1) and prints every
line containing the word with per-line and total occurrence counts.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment()
		if err != nil {
			return err
		}

		svc := search.NewService(env.client, env.cfg.Search, env.logger, nil)
		res, err := svc.FindWord(cmd.Context(), env.bucket(), args[0], args[1], caseSensitive)
		if err != nil {
			return err
		}
		if err := printJSON(cmd.OutOrStdout(), res); err != nil {
			return err
		}
		if res.Error != "" {
			return errors.New(res.Error)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().BoolVarP(&caseSensitive, "case-sensitive", "c", false, "Match case exactly")
	RootCmd.AddCommand(searchCmd)
}
