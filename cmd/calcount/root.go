package calcount

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "calcount",
	Short: "calcount tracks caloric intake and weight from your terminal",
	Long:  "calcount is a local-first calorie and weight tracking CLI: it derives a daily caloric budget from your BMR/TDEE and weekly weight-loss target, then reconciles logged food entries against it.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
