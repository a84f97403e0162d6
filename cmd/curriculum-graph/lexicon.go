// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/curriculum-graph/internal/lexicon"
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Inspect the keyword and pattern tables",
}

var lexiconDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Write the effective lexicon as YAML",
	Long: `Dump writes the keyword tables in use as YAML: the built-in defaults,
overlaid with the file named by --lexicon when set. The output is a valid
starting point for a custom lexicon file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lex, err := lexicon.Load(viper.GetString("lexicon"))
		if err != nil {
			return err
		}
		return lex.Dump(cmd.OutOrStdout())
	},
}

func init() {
	lexiconCmd.AddCommand(lexiconDumpCmd)
	rootCmd.AddCommand(lexiconCmd)
}
