package calcount

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dch42/calcount/internal/service"
	"github.com/spf13/cobra"
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Record and review weight measurements",
}

var weightAddCmd = &cobra.Command{
	Use:   "add WEIGHT",
	Short: "Record a weight measurement (lbs)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := service.ParseWeightEntry(args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.AddWeight(sqldb, entry, time.Now()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %g lbs\n", entry.Weight)
			return nil
		})
	},
}

var weightLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the weight log and cumulative trend",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			out := cmd.OutOrStdout()
			history, err := service.WeightHistory(sqldb)
			if errors.Is(err, service.ErrNoWeightData) {
				// empty log is not an error for a read-only view
				fmt.Fprintf(out, "%v\n", err)
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(out, "\nWeight Log")
			fmt.Fprintln(out, "DATE\tWEIGHT")
			for i := len(history) - 1; i >= 0; i-- {
				fmt.Fprintf(out, "%s\t%g\n", history[i].Date, history[i].Weight)
			}

			change, err := service.Change(history)
			if errors.Is(err, service.ErrInsufficientWeightData) {
				fmt.Fprintln(out, "\nRecord another weight to see your trend.")
				return nil
			}
			if err != nil {
				return err
			}
			if change < 0 {
				fmt.Fprintf(out, "\nRecorded gain: %g lbs\n", -change)
			} else {
				fmt.Fprintf(out, "\nRecorded loss: %g lbs\n", change)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(weightCmd)
	weightCmd.AddCommand(weightAddCmd, weightLogCmd)
}
