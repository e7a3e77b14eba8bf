package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"timr/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the current configuration",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		fmt.Printf("default-activity-type    %s\n", cfg.DefaultActivityType)
		fmt.Printf("default-duration-minutes %d\n", cfg.DefaultDurationMinutes)
		fmt.Printf("rounding-minutes         %d\n", cfg.RoundingMinutes)
		fmt.Printf("default-start-time       %s\n", cfg.DefaultStartTime)
		fmt.Printf("csv-delimiter            %s\n", cfg.CSVDelimiter)
	}),
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a configuration value",
	Long: `Change a configuration value and write it back to the config file.

Keys: default-activity-type, default-duration-minutes, rounding-minutes,
default-start-time, csv-delimiter`,
	Args: cobra.ExactArgs(2),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		key, value := args[0], args[1]
		switch key {
		case "default-activity-type":
			cfg.DefaultActivityType = value
		case "default-duration-minutes":
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 {
				fmt.Printf("Error: %s must be a positive integer\n", key)
				return
			}
			cfg.DefaultDurationMinutes = n
		case "rounding-minutes":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				fmt.Printf("Error: %s must be a non-negative integer\n", key)
				return
			}
			cfg.RoundingMinutes = n
		case "default-start-time":
			cfg.DefaultStartTime = value
		case "csv-delimiter":
			cfg.CSVDelimiter = value
		default:
			fmt.Printf("Error: unknown config key %q\n", key)
			return
		}

		path, err := config.Path()
		if err == nil {
			err = cfg.Save(path)
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Set %s = %s\n", key, value)
	}),
}

func init() {
	configCmd.AddCommand(configSetCmd)
}
