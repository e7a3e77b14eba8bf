package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"timr/internal/models"
	"timr/internal/timeutil"
)

var startCmd = &cobra.Command{
	Use:   "start [description]",
	Short: "Start tracking a new activity",
	Long: `Start tracking a new activity. Any activity still running is completed
first, with its end set to the new activity's start.

Examples:
  timr start "Fix login redirect" --type BUG
  timr start --job 3               # description from a saved job
  timr start "Standup" -t MEETING --at 09:30`,
	Args: cobra.ArbitraryArgs,
	Run: withApp(func(cmd *cobra.Command, args []string) {
		description := strings.Join(args, " ")

		jobID, _ := cmd.Flags().GetInt64("job")
		if jobID > 0 {
			job, err := jobs.Job(jobID)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if job == nil {
				fmt.Printf("Error: job #%d not found\n", jobID)
				return
			}
			description = job.Description
		}

		activityType := cfg.ActivityType()
		if raw, _ := cmd.Flags().GetString("type"); raw != "" {
			activityType = models.ParseActivityType(strings.ToUpper(raw))
		}

		startTime := time.Now()
		if at, _ := cmd.Flags().GetString("at"); at != "" {
			startTime = timeutil.ClockOn(at, startTime)
		}

		activity, err := activities.Start(activityType, description, startTime)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("⏱️  Started %s activity #%d: %s\n",
			activity.Type.DisplayName(), activity.ID, activity.Description)
		fmt.Printf("Started at: %s\n", mutedStyle.Render(activity.StartTime.Format("15:04:05")))
	}),
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running activity",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		activity, err := activities.Stop(time.Now())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if activity == nil {
			fmt.Println("No activity is currently running")
			return
		}

		fmt.Printf("⏹️  Stopped activity #%d: %s\n", activity.ID, activity.Description)
		fmt.Printf("Ended at: %s (%s)\n",
			mutedStyle.Render(activity.EndTime.Format("15:04:05")),
			activity.DurationText(time.Now()))
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the running activity",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		active, err := activities.ActiveActivities()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(active) == 0 {
			fmt.Println("No activity is currently running")
			return
		}

		activity := active[0]
		fmt.Printf("⏱️  Tracking %s activity #%d: %s\n",
			activity.Type.DisplayName(), activity.ID, activity.Description)
		fmt.Printf("Started at: %s\n", mutedStyle.Render(activity.StartTime.Format("15:04:05")))
		fmt.Printf("Elapsed: %s\n", activity.DurationText(time.Now()))
	}),
}

var restartCmd = &cobra.Command{
	Use:   "restart [activity-id]",
	Short: "Start a fresh activity cloned from an earlier one",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: invalid activity ID '%s'\n", args[0])
			return
		}

		activity, err := activities.Restart(id, time.Now())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if activity == nil {
			fmt.Printf("Activity #%d not found\n", id)
			return
		}

		fmt.Printf("⏱️  Restarted as activity #%d: %s\n", activity.ID, activity.Description)
	}),
}

func init() {
	startCmd.Flags().StringP("type", "t", "", "Activity type: BUG, DEVELOP, GENERAL, INFRA, MEETING, OUT_OF_OFFICE, PROBLEM, SUPPORT")
	startCmd.Flags().Int64P("job", "j", 0, "Seed the description from a saved job")
	startCmd.Flags().String("at", "", "Start time as HH:mm (default: now)")
}
