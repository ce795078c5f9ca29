package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/tutortrack/internal/export"
)

func newExportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the report or schedule to a file",
	}
	cmd.AddCommand(newExportReportCmd(a), newExportScheduleCmd(a))
	return cmd
}

func newExportReportCmd(a *app) *cobra.Command {
	var (
		flags  reportFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export the monthly report as an Excel workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := flags.query(a)
			if err != nil {
				return err
			}
			tr, gw, err := a.openTracker(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer gw.Close()

			buf, filename, err := export.ReportWorkbook(tr.Report(q))
			if err != nil {
				return err
			}
			if output == "" {
				output = filename
			}
			if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default tutortrack-report-<month>.xlsx)")
	return cmd
}

func newExportScheduleCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Export the weekly schedule as an iCalendar file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, gw, err := a.openTracker(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer gw.Close()

			cal, err := export.ScheduleCalendar(tr.Schedule(), tr.Now())
			if err != nil {
				return err
			}
			if output == "" {
				output = export.ScheduleFilename
			}
			if err := os.WriteFile(output, []byte(cal), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default "+export.ScheduleFilename+")")
	return cmd
}
