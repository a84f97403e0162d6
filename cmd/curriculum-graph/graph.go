// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph ID...",
	Short: "Print the combined graph of several stored records",
	Long: `Graph loads the stored records and builds one graph over them: a root,
one node per training direction, each discipline's subgraph, and links
between sections that share a name across disciplines. Unknown ids are
skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		rt, err := newRuntime(true)
		if err != nil {
			return err
		}
		defer rt.close()

		m, err := rt.svc.Combine(cmd.Context(), args)
		if err != nil {
			return err
		}
		return writeFormatted(cmd.OutOrStdout(), format, m)
	},
}

func init() {
	graphCmd.Flags().String("format", "json", "output format: json or yaml")
	rootCmd.AddCommand(graphCmd)
}
