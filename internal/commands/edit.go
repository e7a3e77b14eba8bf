package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"timr/internal/models"
)

var editCmd = &cobra.Command{
	Use:   "edit [activity-id]",
	Short: "Edit an activity's fields",
	Long: `Edit an existing activity. Only the flags you pass change; --no-end
clears the end time.

Examples:
  timr edit 12 --desc "Incident follow-up" -t PROBLEM
  timr edit 12 --end 17:30
  timr edit 12 --status PAUSED`,
	Args: cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: invalid activity ID '%s'\n", args[0])
			return
		}

		source, err := activities.Activity(id)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if source == nil {
			fmt.Printf("Activity #%d not found\n", id)
			return
		}

		state := models.EditorStateFrom(*source)
		if source.EndTime == nil {
			state.IncludeEnd = false
		}

		if desc, _ := cmd.Flags().GetString("desc"); desc != "" {
			state.Description = desc
		}
		if raw, _ := cmd.Flags().GetString("type"); raw != "" {
			state.Type = models.ParseActivityType(strings.ToUpper(raw))
		}
		if raw, _ := cmd.Flags().GetString("status"); raw != "" {
			state.Status = models.ParseActivityStatus(strings.ToUpper(raw))
		}
		if raw, _ := cmd.Flags().GetString("start"); raw != "" {
			start, err := parseDateTime(raw, source.StartTime)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			state.Start = start
		}
		if raw, _ := cmd.Flags().GetString("end"); raw != "" {
			end, err := parseDateTime(raw, source.StartTime)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			state.End = end
			state.IncludeEnd = true
		}
		if noEnd, _ := cmd.Flags().GetBool("no-end"); noEnd {
			state.IncludeEnd = false
		}

		updated, err := activities.Update(*source, state)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✏️  Updated activity #%d: %s\n", updated.ID, updated.Description)
	}),
}

var copyCmd = &cobra.Command{
	Use:   "copy [activity-id]",
	Short: "Record a completed copy of an activity",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: invalid activity ID '%s'\n", args[0])
			return
		}

		source, err := activities.Activity(id)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if source == nil {
			fmt.Printf("Activity #%d not found\n", id)
			return
		}

		state := models.EditorStateFrom(*source)
		if on, _ := cmd.Flags().GetString("on"); on != "" {
			day, err := parseDate(on)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			span := state.End.Sub(state.Start)
			state.Start = time.Date(day.Year(), day.Month(), day.Day(),
				state.Start.Hour(), state.Start.Minute(), 0, 0, day.Location())
			state.End = state.Start.Add(span)
		}

		copied, err := activities.Copy(state)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("📋 Copied activity #%d to #%d: %s\n", source.ID, copied.ID, copied.Description)
	}),
}

var deleteCmd = &cobra.Command{
	Use:     "rm [activity-id]",
	Aliases: []string{"delete"},
	Short:   "Delete an activity",
	Args:    cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: invalid activity ID '%s'\n", args[0])
			return
		}

		if err := activities.Delete(id); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Deleted activity #%d\n", id)
	}),
}

func init() {
	editCmd.Flags().String("desc", "", "New description")
	editCmd.Flags().StringP("type", "t", "", "Activity type")
	editCmd.Flags().String("status", "", "Status: ACTIVE, PAUSED, COMPLETED")
	editCmd.Flags().String("start", "", "Start time as HH:mm or YYYY-MM-DDTHH:mm")
	editCmd.Flags().String("end", "", "End time as HH:mm or YYYY-MM-DDTHH:mm")
	editCmd.Flags().Bool("no-end", false, "Clear the end time")
	copyCmd.Flags().String("on", "", "Move the copy to this day (YYYY-MM-DD)")
}
