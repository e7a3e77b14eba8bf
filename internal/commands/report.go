package commands

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"timr/internal/models"
	"timr/internal/timeutil"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Sum time per activity type",
	Long:  "Sum elapsed time per activity type over a calendar-day window. A running activity counts up to now.",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		filter, err := filterFromFlags(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		now := time.Now()
		from, to, ok := filter.Bounds(now)
		if !ok {
			// Durations always need a window; All spans the recorded history.
			all, err := activities.Activities(models.FilterAll(), now)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if len(all) == 0 {
				fmt.Println("No activities found.")
				return
			}
			from = timeutil.StartOfDay(all[0].StartTime)
			to = timeutil.EndOfDay(now)
		}

		totals, err := activities.Durations(from, to, now)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Println(headerStyle.Render(filter.Title()))
		if len(totals) == 0 {
			fmt.Println("No tracked time in this window.")
			return
		}

		types := make([]models.ActivityType, 0, len(totals))
		for t := range totals {
			types = append(types, t)
		}
		sort.Slice(types, func(i, j int) bool { return totals[types[i]] > totals[types[j]] })

		var grand time.Duration
		fmt.Printf("%-15s %s\n", "TYPE", "TIME")
		fmt.Println(strings.Repeat("-", 26))
		for _, t := range types {
			fmt.Printf("%-15s %s\n", t.DisplayName(), formatDuration(totals[t]))
			grand += totals[t]
		}
		fmt.Println(strings.Repeat("-", 26))
		fmt.Printf("%-15s %s\n", "Total", totalStyle.Render(formatDuration(grand)))
	}),
}

// formatDuration renders a duration as "3h 25m" or "45m".
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	if minutes >= 60 {
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}

func init() {
	addFilterFlags(reportCmd)
}
