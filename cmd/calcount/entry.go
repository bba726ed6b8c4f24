package calcount

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dch42/calcount/internal/service"
	"github.com/spf13/cobra"
)

var removeDate string

var addCmd = &cobra.Command{
	Use:   "add NAME CALORIES PROTEIN",
	Short: "Add a food entry to today's log",
	Long:  "Adds a food entry, e.g.: calcount add 'Protein Bar' 190 16\nNegative calories are allowed and subtract from the day's total.",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := service.ParseFoodEntry(args)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.AddFood(sqldb, entry, time.Now()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%dkcal / %dg protein)\n", entry.Name, entry.Calories, entry.Protein)
			return nil
		})
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove NAME CALORIES PROTEIN",
	Short: "Remove matching food entries from a day's log",
	Long:  "Removes every entry whose name, calories, protein, and date match exactly.",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := service.ParseFoodEntry(args)
		if err != nil {
			return err
		}
		date, err := parseDateOrToday(removeDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			removed, err := service.RemoveFood(sqldb, entry, date)
			if err != nil {
				return err
			}
			if removed == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No entry matching %s %d %d on %s\n", entry.Name, entry.Calories, entry.Protein, date)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d entr%s\n", removed, pluralY(removed))
			return nil
		})
	},
}

func pluralY(n int64) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}

func init() {
	rootCmd.AddCommand(addCmd, removeCmd)
	removeCmd.Flags().StringVar(&removeDate, "date", "", "Date of the entry YYYY-MM-DD (default today)")
}
