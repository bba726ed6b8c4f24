package calcount

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dch42/calcount/internal/model"
	"github.com/dch42/calcount/internal/service"
	"github.com/spf13/cobra"
)

var (
	exportOut   string
	exportTable string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a log table to CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(exportOut) == "" {
			return fmt.Errorf("--out is required")
		}
		return withDB(func(sqldb *sql.DB) error {
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("create export csv: %w", err)
			}
			defer f.Close()
			w := csv.NewWriter(f)
			defer w.Flush()

			switch strings.ToLower(strings.TrimSpace(exportTable)) {
			case "", "food":
				if err := exportFoodCSV(sqldb, w); err != nil {
					return err
				}
			case "weight":
				if err := exportWeightCSV(sqldb, w); err != nil {
					return err
				}
			case "goal":
				if err := exportGoalCSV(sqldb, w); err != nil {
					return err
				}
			default:
				return fmt.Errorf("invalid --table %q (use food, weight, or goal)", exportTable)
			}

			w.Flush()
			if err := w.Error(); err != nil {
				return fmt.Errorf("write export csv: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", exportOut)
			return nil
		})
	},
}

func exportFoodCSV(sqldb *sql.DB, w *csv.Writer) error {
	entries, err := service.AllFood(sqldb)
	if err != nil {
		return err
	}
	if err := w.Write([]string{"name", "calories", "protein", "time", "date"}); err != nil {
		return fmt.Errorf("write export csv header: %w", err)
	}
	for _, e := range entries {
		record := []string{e.Name, strconv.Itoa(e.Calories), strconv.Itoa(e.Protein), e.Time, e.Date}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write export csv row: %w", err)
		}
	}
	return nil
}

func exportWeightCSV(sqldb *sql.DB, w *csv.Writer) error {
	history, err := service.WeightHistory(sqldb)
	if err != nil {
		return err
	}
	if err := w.Write([]string{"weight", "time", "date"}); err != nil {
		return fmt.Errorf("write export csv header: %w", err)
	}
	for _, e := range history {
		record := []string{strconv.FormatFloat(e.Weight, 'f', -1, 64), e.Time, e.Date}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write export csv row: %w", err)
		}
	}
	return nil
}

func exportGoalCSV(sqldb *sql.DB, w *csv.Writer) error {
	goals, err := service.GoalHistory(sqldb)
	if err != nil {
		return err
	}
	header := []string{"weekly_target", "mode", "budget", "budget_mon", "budget_tue", "budget_wed", "budget_thu", "budget_fri", "budget_sat", "budget_sun", "time", "date"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write export csv header: %w", err)
	}
	for _, g := range goals {
		record := []string{strconv.FormatFloat(g.WeeklyTarget, 'f', -1, 64), string(g.Mode)}
		if g.Mode == model.ModeFlat {
			record = append(record, strconv.FormatFloat(g.Budget, 'f', -1, 64), "", "", "", "", "", "", "")
		} else {
			record = append(record, "")
			for _, v := range g.Week {
				record = append(record, strconv.FormatFloat(v, 'f', -1, 64))
			}
		}
		record = append(record, g.Time, g.Date)
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write export csv row: %w", err)
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output CSV file path")
	exportCmd.Flags().StringVar(&exportTable, "table", "food", "Table to export: food, weight, or goal")
}
