package main

import (
	"fmt"

	"github.com/spf13/cobra"

	pserver "github.com/HendryAvila/portfolio-mcp/internal/server"
	"github.com/HendryAvila/portfolio-mcp/internal/updater"
)

func newVersionCommand(a *app) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "portfolio-mcp v%s\n", pserver.Version)
			if !check {
				return nil
			}

			res, err := updater.NewChecker().Check(cmd.Context(), pserver.Version)
			if err != nil {
				return fmt.Errorf("checking for updates: %w", err)
			}
			if res.UpdateAvailable {
				fmt.Fprintf(out, "Update available: v%s -> v%s\n  %s\n", res.CurrentVersion, res.LatestVersion, res.ReleaseURL)
			} else {
				fmt.Fprintf(out, "Up to date.\n")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "query GitHub for the latest release")
	return cmd
}
