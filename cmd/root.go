package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const app = "careeriq"

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          app,
		Short:        "careeriq canonicalizes job-listing exports and reports hiring demand",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "a config file (default is careeriq.yaml in current directory)")
	root.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	root.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	root.AddCommand(
		newRunCommand(),
		newExportCommand(),
		newSendCommand(),
		newOptionsCommand(),
		newVersionCommand(),
	)
	return root
}

// Execute executes the root command. SIGINT and SIGTERM cancel in-flight work.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCommand().ExecuteContext(ctx)
}

func addScopeFlags(c *cobra.Command) {
	c.Flags().StringSliceP("role", "r", nil, `role categories to include, e.g. "Data Engineer"`)
	c.Flags().StringSliceP("location", "l", nil, "cities to include (aliases such as bangalore are accepted)")
	c.Flags().StringSliceP("experience", "e", nil, "experience bands to include: 0-1, 1-2, 2-5, 5-10, 10+")
	c.Flags().StringSliceP("source", "s", nil, "override configured sources with path[:profile] entries")
}
