package calcount

import (
	"database/sql"
	"fmt"
	"io"

	"github.com/dch42/calcount/internal/model"
	"github.com/dch42/calcount/internal/service"
	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Review caloric goals",
}

var goalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active caloric goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			goal, err := service.ActiveGoal(sqldb)
			if err != nil {
				return err
			}
			printGoal(cmd.OutOrStdout(), goal)
			return nil
		})
	},
}

var goalHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show every goal ever set, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			goals, err := service.GoalHistory(sqldb)
			if err != nil {
				return err
			}
			if len(goals) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No goals set yet. Run `calcount init` to set one.")
				return nil
			}
			for i := range goals {
				fmt.Fprintf(cmd.OutOrStdout(), "\n[%s %s]\n", goals[i].Date, goals[i].Time)
				printGoal(cmd.OutOrStdout(), &goals[i])
			}
			return nil
		})
	},
}

func printGoal(out io.Writer, goal *model.Goal) {
	fmt.Fprintf(out, "Weekly target: %g lbs\n", goal.WeeklyTarget)
	if goal.Mode == model.ModeZigzag {
		fmt.Fprintln(out, "Schedule: zigzag")
		for i, name := range weekdayNames {
			fmt.Fprintf(out, "\t%s\t%d calories\n", name, int(goal.Week[i]))
		}
		return
	}
	fmt.Fprintf(out, "Daily budget: %d calories\n", int(goal.Budget))
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalShowCmd, goalHistoryCmd)
}
