package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var jobCmd = &cobra.Command{
	Use:   "job",
	Short: "Manage saved description templates",
	Long: `Jobs are saved descriptions you start activities from with
'timr start --job N'.`,
}

var jobAddCmd = &cobra.Command{
	Use:   "add [description]",
	Short: "Save a new job",
	Args:  cobra.MinimumNArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		job, err := jobs.AddJob(strings.Join(args, " "))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("💾 Saved job #%d: %s\n", job.ID, job.Description)
	}),
}

var jobListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List saved jobs",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		list, err := jobs.ListJobs()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(list) == 0 {
			fmt.Println("No jobs saved. Use 'timr job add \"description\"' to create one.")
			return
		}
		for _, job := range list {
			fmt.Printf("%-4d %s\n", job.ID, job.Description)
		}
	}),
}

var jobEditCmd = &cobra.Command{
	Use:   "edit [job-id] [description]",
	Short: "Change a job's description",
	Args:  cobra.MinimumNArgs(2),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: invalid job ID '%s'\n", args[0])
			return
		}
		job, err := jobs.Job(id)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if job == nil {
			fmt.Printf("Job #%d not found\n", id)
			return
		}
		job.Description = strings.Join(args[1:], " ")
		updated, err := jobs.UpdateJob(*job)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✏️  Updated job #%d: %s\n", updated.ID, updated.Description)
	}),
}

var jobDeleteCmd = &cobra.Command{
	Use:     "rm [job-id]",
	Aliases: []string{"delete"},
	Short:   "Delete a job",
	Args:    cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: invalid job ID '%s'\n", args[0])
			return
		}
		if err := jobs.DeleteJob(id); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Deleted job #%d\n", id)
	}),
}

func init() {
	jobCmd.AddCommand(jobAddCmd)
	jobCmd.AddCommand(jobListCmd)
	jobCmd.AddCommand(jobEditCmd)
	jobCmd.AddCommand(jobDeleteCmd)
}
