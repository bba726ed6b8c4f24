package calcount

import (
	"database/sql"
	"fmt"
	"io"
	"strconv"

	"github.com/dch42/calcount/internal/service"
	"github.com/spf13/cobra"
)

var listDate string

var listCmd = &cobra.Command{
	Use:   "list [N]",
	Short: "Show the calorie log for today or the last N logged days",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n <= 0 {
					return fmt.Errorf("invalid day count %q", args[0])
				}
				reports, err := service.ReportDays(sqldb, n)
				if err != nil {
					return err
				}
				if len(reports) == 0 {
					fmt.Fprintln(out, "No food logged yet. Add an entry with `calcount add 'Food Name' 190 16`.")
					return nil
				}
				for i := range reports {
					printDayReport(out, &reports[i])
				}
				return nil
			}

			date, err := parseDateOrToday(listDate)
			if err != nil {
				return err
			}
			report, err := service.ReportDay(sqldb, date)
			if err != nil {
				return err
			}
			printDayReport(out, report)
			return nil
		})
	},
}

func printDayReport(out io.Writer, r *service.DayReport) {
	fmt.Fprintf(out, "\nCalorie Log: %s\n", r.Date)
	fmt.Fprintln(out, "FOOD\tCALORIES\tPROTEIN")
	for _, e := range r.Entries {
		fmt.Fprintf(out, "%s\t%dkcal\t%dg\n", e.Name, e.Calories, e.Protein)
	}
	fmt.Fprintf(out, "Total: %d calories / %dg protein\n", r.TotalCalories, r.TotalProtein)
	switch r.Status {
	case service.StatusRemaining:
		fmt.Fprintf(out, "%d calories remaining\n", r.Amount)
	case service.StatusOver:
		fmt.Fprintf(out, "%d calories over budget\n", r.Amount)
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listDate, "date", "", "Date to list YYYY-MM-DD (default today)")
}
