package main

import (
	"context"
	"fmt"
	"os"

	"sroireport/api"
	"sroireport/cmd"
	"sroireport/internal"
	"sroireport/internal/domain"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var (
	reportID  string
	reportCsv bool
)

var rootCmd = &cobra.Command{
	Use:           "sroi",
	Short:         "Operator tools for sroi reports",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the computed report for one sroi calculation",
	RunE: func(c *cobra.Command, args []string) error {
		return withHandler(func(handler *api.ApiHandler) error {
			return runReport(c, handler)
		})
	},
}

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Check whether the database is reachable",
	RunE: func(c *cobra.Command, args []string) error {
		return withHandler(func(handler *api.ApiHandler) error {
			state := handler.ConnectivityService.Probe(context.Background())
			fmt.Fprintln(c.OutOrStdout(), state.Display())
			if state.Status == domain.ConnectivityError {
				return fmt.Errorf("probe failed: %s", state.Message)
			}
			return nil
		})
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportID, "id", "", "sroi calculation id (defaults to report.defaultId)")
	reportCmd.Flags().BoolVar(&reportCsv, "csv", false, "print the category breakdown as csv")
	rootCmd.AddCommand(reportCmd, probeCmd)
}

func withHandler(fn func(handler *api.ApiHandler) error) error {
	handler, err := cmd.InitializeDependencies()
	if err != nil {
		return err
	}
	defer cmd.CloseDependencies(handler)

	return fn(handler)
}

func runReport(c *cobra.Command, handler *api.ApiHandler) error {
	id := handler.DefaultReportID
	if reportID != "" {
		parsed, err := uuid.Parse(reportID)
		if err != nil {
			return fmt.Errorf("invalid --id %q: %w", reportID, err)
		}
		id = parsed
	}

	view, err := handler.ReportService.GetReport(context.Background(), id)
	if err != nil {
		return err
	}

	if reportCsv {
		out, err := internal.BreakdownCSV(*view)
		if err != nil {
			return err
		}
		fmt.Fprint(c.OutOrStdout(), string(out))
		return nil
	}

	internal.Pprint(view)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
