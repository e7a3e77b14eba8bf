package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"timr/internal/config"
	"timr/internal/repository"
	"timr/internal/service"
	"timr/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	cfg        *config.Config
	st         *store.Store
	activities *service.ActivityService
	jobs       *service.JobService
)

var rootCmd = &cobra.Command{
	Use:   "timr",
	Short: "A CLI activity tracker",
	Long: `timr tracks typed work activities over time. Start and stop sessions,
backfill completed ones, and report how your days split across activity types.`,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if st != nil {
			st.Close()
		}
	},
}

// initApp loads configuration and opens the database. The process cannot
// run without its database, so an open failure exits immediately.
func initApp() {
	cfgPath, err := config.Path()
	if err == nil {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dbPath, err := store.DefaultPath()
	if err == nil {
		st, err = store.Open(dbPath)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	activities = service.NewActivityService(repository.NewActivityRepository(st), cfg)
	jobs = service.NewJobService(repository.NewJobRepository(st))
}

// withApp wraps a command function to wire up config and database first.
func withApp(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		initApp()
		fn(cmd, args)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("timr %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(restartCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(jobCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
