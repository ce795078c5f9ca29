package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mmynk/tutortrack/internal/calculator"
	"github.com/mmynk/tutortrack/internal/export"
	"github.com/mmynk/tutortrack/internal/models"
	"github.com/mmynk/tutortrack/internal/service"
)

// reportFlags are shared by the report and export report commands.
type reportFlags struct {
	month     string
	student   string
	breakdown bool
}

func (f *reportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.month, "month", "m", "", "month to report, YYYY-MM (default current month)")
	cmd.Flags().StringVarP(&f.student, "student", "s", "", "restrict to one student id")
	cmd.Flags().BoolVar(&f.breakdown, "breakdown", false, "add today and this-week sub-totals")
}

func (f *reportFlags) query(a *app) (calculator.ReportQuery, error) {
	return service.ParseReportQuery(f.month, f.student, f.breakdown || a.cfg.Report.Breakdown)
}

func newReportCmd(a *app) *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the monthly earnings report",
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

			return printReport(cmd.OutOrStdout(), tr.Report(q))
		},
	}
	flags.register(cmd)
	return cmd
}

// printReport renders a report as an aligned text table.
func printReport(out io.Writer, r models.Report) error {
	fmt.Fprintf(out, "Report %s\n", r.Month)
	if r.Empty {
		fmt.Fprintln(out, "No data")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STUDENT\tHOURS\tEARNINGS\tPRICES")
	for _, row := range r.Rows {
		prices := make([]string, len(row.Prices))
		for i, p := range row.Prices {
			prices[i] = export.Currency(p)
		}
		fmt.Fprintf(w, "%s\t%.2f\t%s\t%s\n", row.StudentName, row.TotalHours, export.Currency(row.TotalEarnings), strings.Join(prices, ", "))
	}
	fmt.Fprintf(w, "TOTAL\t%.2f\t%s\t\n", r.Total.Hours, export.Currency(r.Total.Earnings))
	if r.Day != nil {
		fmt.Fprintf(w, "Today\t%.2f\t%s\t\n", r.Day.Hours, export.Currency(r.Day.Earnings))
	}
	if r.Week != nil {
		fmt.Fprintf(w, "This week\t%.2f\t%s\t\n", r.Week.Hours, export.Currency(r.Week.Earnings))
	}
	return w.Flush()
}
