package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"timr/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export activities as CSV",
	Long: `Export activities for a calendar-day window as delimited text. The
delimiter comes from the config file unless overridden.

Examples:
  timr export --all --out activities.csv
  timr export --range 2026-08-01,2026-08-31 --delimiter ";"`,
	Run: withApp(func(cmd *cobra.Command, args []string) {
		filter, err := filterFromFlags(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		result, err := activities.Activities(filter, time.Now())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		delimiter := cfg.CSVDelimiter
		if override, _ := cmd.Flags().GetString("delimiter"); override != "" {
			delimiter = override
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			fmt.Println(export.CSV(result, delimiter))
			return
		}
		if err := export.WriteFile(result, delimiter, out); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("📄 Exported %d activities to %s\n", len(result), out)
	}),
}

func init() {
	addFilterFlags(exportCmd)
	exportCmd.Flags().StringP("out", "o", "", "Write to a file instead of stdout")
	exportCmd.Flags().StringP("delimiter", "d", "", "Field delimiter (default from config)")
}
