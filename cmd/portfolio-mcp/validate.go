package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/HendryAvila/portfolio-mcp/internal/portfolio"
	"github.com/HendryAvila/portfolio-mcp/internal/source"
)

func newValidateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the dataset and report what was found",
		Long: `Discover and load the portfolio dataset the same way serve does, then print
the location, record count and categories. Exits non-zero if loading fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := source.NewLoader(source.WithLogger(a.logger))
			ds, err := loader.Discover(cmd.Context(), a.cfg.DataPath)
			if err != nil {
				return err
			}
			a.logger.Debug("validated", zap.String("path", ds.Location))

			cats := portfolio.NewStore(ds.Records).Categories()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d records, %d categories\n", ds.Location, cats.TotalItems, len(cats.Categories))
			for _, c := range cats.Categories {
				fmt.Fprintf(out, "  - %s\n", c)
			}
			for _, w := range ds.Warnings {
				fmt.Fprintf(out, "warning: %s\n", w)
			}
			return nil
		},
	}
}
