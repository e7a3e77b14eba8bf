package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"timr/internal/models"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List activities",
	Long: `List activities for a calendar-day window.

Examples:
  timr ls                    # today
  timr ls --yesterday
  timr ls --on 2026-08-28
  timr ls --from 2026-08-01
  timr ls --range 2026-08-01,2026-08-31
  timr ls --all`,
	Run: withApp(func(cmd *cobra.Command, args []string) {
		filter, err := filterFromFlags(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		now := time.Now()
		result, err := activities.Activities(filter, now)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Println(headerStyle.Render(filter.Title()))
		if len(result) == 0 {
			fmt.Println("No activities found.")
			return
		}

		fmt.Printf("%-4s %-11s %-11s %-14s %-10s %s\n",
			"ID", "START", "END", "TYPE", "STATUS", "DESCRIPTION")
		fmt.Println(strings.Repeat("-", 80))
		for _, activity := range result {
			end := "-"
			if activity.EndTime != nil {
				end = activity.EndTime.Format("15:04")
			}
			description := activity.Description
			if len(description) > 40 {
				description = description[:37] + "..."
			}
			fmt.Printf("%-4d %-11s %-11s %-14s %-19s %s\n",
				activity.ID,
				activity.StartTime.Format("01-02 15:04"),
				end,
				activity.Type.DisplayName(),
				renderStatus(string(activity.Status)),
				description)
		}
		fmt.Println(totalStyle.Render("Total: " + models.TotalDurationText(result, now)))
	}),
}

// filterFromFlags resolves the shared date-window flags into a filter.
// With no flags the window is today.
func filterFromFlags(cmd *cobra.Command) (models.DateFilter, error) {
	if all, _ := cmd.Flags().GetBool("all"); all {
		return models.FilterAll(), nil
	}
	if yesterday, _ := cmd.Flags().GetBool("yesterday"); yesterday {
		return models.FilterYesterday(), nil
	}
	if on, _ := cmd.Flags().GetString("on"); on != "" {
		date, err := parseDate(on)
		if err != nil {
			return models.DateFilter{}, err
		}
		return models.FilterOn(date), nil
	}
	if from, _ := cmd.Flags().GetString("from"); from != "" {
		date, err := parseDate(from)
		if err != nil {
			return models.DateFilter{}, err
		}
		return models.FilterFrom(date), nil
	}
	if rangeRaw, _ := cmd.Flags().GetString("range"); rangeRaw != "" {
		parts := strings.SplitN(rangeRaw, ",", 2)
		if len(parts) != 2 {
			return models.DateFilter{}, fmt.Errorf("invalid range %q, expected FROM,TO", rangeRaw)
		}
		a, err := parseDate(strings.TrimSpace(parts[0]))
		if err != nil {
			return models.DateFilter{}, err
		}
		b, err := parseDate(strings.TrimSpace(parts[1]))
		if err != nil {
			return models.DateFilter{}, err
		}
		return models.FilterRange(a, b), nil
	}
	return models.FilterToday(), nil
}

// addFilterFlags registers the shared date-window flags on cmd.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("all", false, "Every recorded activity")
	cmd.Flags().Bool("yesterday", false, "Yesterday's activities")
	cmd.Flags().String("on", "", "One calendar day (YYYY-MM-DD)")
	cmd.Flags().String("from", "", "From a day until now (YYYY-MM-DD)")
	cmd.Flags().String("range", "", "Inclusive day range (YYYY-MM-DD,YYYY-MM-DD)")
}

func init() {
	addFilterFlags(listCmd)
}
