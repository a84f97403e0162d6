// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "Manage stored records (list, get, delete, export)",
}

// --- list subcommand ---

var filesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored files, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(true)
		if err != nil {
			return err
		}
		defer rt.close()

		files, err := rt.svc.List(cmd.Context())
		if err != nil {
			return err
		}
		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return writeFormatted(cmd.OutOrStdout(), "json", files)
		}
		writeFileTable(cmd.OutOrStdout(), files)
		return nil
	},
}

// --- get subcommand ---

var filesGetCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Print a stored record with its graph",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		rt, err := newRuntime(true)
		if err != nil {
			return err
		}
		defer rt.close()

		a, err := rt.svc.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return writeFormatted(cmd.OutOrStdout(), format, a)
	},
}

// --- delete subcommand ---

var filesDeleteCmd = &cobra.Command{
	Use:   "delete ID...",
	Short: "Delete stored records",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(true)
		if err != nil {
			return err
		}
		defer rt.close()

		for _, id := range args {
			if err := rt.svc.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", id)
		}
		return nil
	},
}

// --- export subcommand ---

var filesExportCmd = &cobra.Command{
	Use:   "export [ID...]",
	Short: "Export stored records to YAML or JSON",
	Long: `Export writes stored records with their file metadata. Without ids
every stored record is exported. Output goes to stdout unless --output
names a file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		rt, err := newRuntime(true)
		if err != nil {
			return err
		}
		defer rt.close()

		w := cmd.OutOrStdout()
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating %s: %w", output, err)
			}
			defer f.Close()
			w = f
		}

		if err := rt.store.Export(cmd.Context(), w, format, args...); err != nil {
			return err
		}
		if output != "" {
			fmt.Fprintf(os.Stderr, "Exported to %s\n", output)
		}
		return nil
	},
}

func init() {
	filesListCmd.Flags().Bool("json", false, "output as JSON")
	filesGetCmd.Flags().String("format", "json", "output format: json or yaml")
	filesExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	filesExportCmd.Flags().StringP("output", "o", "", "write to this file instead of stdout")

	filesCmd.AddCommand(filesListCmd)
	filesCmd.AddCommand(filesGetCmd)
	filesCmd.AddCommand(filesDeleteCmd)
	filesCmd.AddCommand(filesExportCmd)

	rootCmd.AddCommand(filesCmd)
}
