package calcount

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/dch42/calcount/internal/model"
	"github.com/dch42/calcount/internal/prompt"
	"github.com/dch42/calcount/internal/service"
	"github.com/spf13/cobra"
)

var initZigzag bool

var initCmd = &cobra.Command{
	Use:   "init [age sex height weight weekly-target activity]",
	Short: "Calculate TDEE and set your caloric goal",
	Long: `Computes your BMR and TDEE from a short profile and derives the daily
caloric budget needed to hit your weekly weight-change target. With no
arguments the profile is collected interactively; for scripted use pass
exactly six fields: age, sex (m/f), height (feet.inches), weight (lbs),
weekly target (lbs/week), activity level (1-5).`,
	Args: cobra.MaximumNArgs(6),
	RunE: func(cmd *cobra.Command, args []string) error {
		var profile model.Profile
		var err error
		if len(args) > 0 {
			profile, err = service.ParseProfile(args)
		} else {
			profile, err = collectProfile(cmd)
		}
		if err != nil {
			return err
		}

		goal, bmr, tdee, err := service.PlanGoal(profile, initZigzag)
		if err != nil {
			return err
		}

		return withDB(func(sqldb *sql.DB) error {
			if err := service.SetGoal(sqldb, goal, time.Now()); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\nResults:\n\n\tBMR: ~%d calories\n\tTDEE: ~%d calories\n\n", int(bmr), int(tdee))
			if goal.Mode == model.ModeZigzag {
				fmt.Fprintf(out, "To lose %g lbs/week on a zigzag schedule, aim for:\n", goal.WeeklyTarget)
				for i, name := range weekdayNames {
					fmt.Fprintf(out, "\t%s\t%d calories\n", name, int(goal.Week[i]))
				}
				fmt.Fprintln(out, "\nGood luck!")
			} else {
				fmt.Fprintf(out, "To lose %g lbs/week, you will need to consume %d calories/day.\nGood luck!\n", goal.WeeklyTarget, int(goal.Budget))
			}
			return nil
		})
	},
}

var weekdayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func collectProfile(cmd *cobra.Command) (model.Profile, error) {
	out := cmd.OutOrStdout()
	p := prompt.New(cmd.InOrStdin(), out)

	fmt.Fprint(out, "Please answer the following questions.\nThey will be used to calculate your BMR, TDEE, and the caloric budget required to reach your weight goal.\n\n")

	age, err := prompt.Until(p, "Please enter your age: ", func(s string) (int, error) {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("age must be a positive integer")
		}
		return n, nil
	})
	if err != nil {
		return model.Profile{}, err
	}
	sex, err := prompt.Until(p, "Please enter your sex (m/f): ", service.ParseSex)
	if err != nil {
		return model.Profile{}, err
	}
	height, err := prompt.Until(p, "Please enter your height (feet.inches): ", parseFloatField("height"))
	if err != nil {
		return model.Profile{}, err
	}
	weight, err := prompt.Until(p, "Please enter your weight (lbs): ", parseFloatField("weight"))
	if err != nil {
		return model.Profile{}, err
	}
	target, err := prompt.Until(p, "Please enter desired weight loss per week (lbs): ", parseFloatField("weekly target"))
	if err != nil {
		return model.Profile{}, err
	}

	fmt.Fprint(out, "\nAverage Daily Activity Level:\n\n")
	for level := model.Sedentary; level <= model.ExtraActive; level++ {
		fmt.Fprintf(out, "%d : %s\n", level, service.ActivityDescription(level))
	}
	fmt.Fprintln(out)
	activity, err := prompt.Until(p, "Please enter the option that most closely resembles your average activity level (1-5): ", service.ParseActivityLevel)
	if err != nil {
		return model.Profile{}, err
	}

	heightCm, weightKg := service.ToMetric(height, weight)
	return model.Profile{
		Age:          age,
		Sex:          sex,
		HeightCm:     heightCm,
		WeightKg:     weightKg,
		WeeklyTarget: target,
		Activity:     activity,
	}, nil
}

func parseFloatField(name string) func(string) (float64, error) {
	return func(s string) (float64, error) {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%s must be a number", name)
		}
		return v, nil
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initZigzag, "zigzag", false, "Spread the weekly budget unevenly across the week")
}
