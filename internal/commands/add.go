package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"timr/internal/models"
	"timr/internal/service"
)

var addCmd = &cobra.Command{
	Use:   "add [description]",
	Short: "Record a completed activity",
	Long: `Record an activity that already happened. Without --end the activity
gets the configured default duration.

Examples:
  timr add "Sprint review" -t MEETING --start 14:00 --end 15:00
  timr add "Deploy fix" --on 2026-08-28 --start 10:15`,
	Args: cobra.MinimumNArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		now := time.Now()
		state := service.DefaultEditorState(cfg, now)
		state.Description = strings.Join(args, " ")

		day := now
		if on, _ := cmd.Flags().GetString("on"); on != "" {
			parsed, err := parseDate(on)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			day = parsed
			state.Start = cfg.DefaultStartDate(day)
			state.End = state.Start.Add(cfg.DefaultDuration())
		}

		if raw, _ := cmd.Flags().GetString("type"); raw != "" {
			state.Type = models.ParseActivityType(strings.ToUpper(raw))
		}

		if raw, _ := cmd.Flags().GetString("start"); raw != "" {
			start, err := parseDateTime(raw, day)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			state.Start = start
		}

		if raw, _ := cmd.Flags().GetString("end"); raw != "" {
			end, err := parseDateTime(raw, day)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			state.End = end
		} else {
			state.IncludeEnd = false
		}

		activity, err := activities.AddCompleted(state)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✅ Added %s activity #%d: %s (%s)\n",
			activity.Type.DisplayName(), activity.ID, activity.Description,
			activity.DurationText(now))
	}),
}

func init() {
	addCmd.Flags().StringP("type", "t", "", "Activity type")
	addCmd.Flags().String("on", "", "Calendar day as YYYY-MM-DD (default: today)")
	addCmd.Flags().String("start", "", "Start time as HH:mm or YYYY-MM-DDTHH:mm")
	addCmd.Flags().String("end", "", "End time as HH:mm or YYYY-MM-DDTHH:mm (default: start + default duration)")
}
