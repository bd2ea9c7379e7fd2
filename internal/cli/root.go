package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/iiot-workflow/wfinit/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "wfinit [project-path]",
	Short: "Scaffold the .claude-workflow structure for a project",
	Long: `wfinit creates the .claude-workflow directory tree for a project, copies
optional starter templates, writes config.yml and seeds the state-tracking
documents (current phase, parallel tasks, dependency backlog, feature-to-code
map, requirements traceability matrix).

Usage patterns:
  wfinit                     Initialize in the current directory
  wfinit ./plant-monitor     Initialize in ./plant-monitor (created if missing)

Examples:
  wfinit --project-name "Plant Monitor" --platforms gateway,hmi
  wfinit ./plant --template-source ../claude-workflow-template
  wfinit status ./plant
  wfinit show current-phase ./plant`,
	Args:          cobra.MaximumNArgs(1),
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInit,
}

// Execute runs the root command with a context cancelled on interrupt.
// The error, if any, has already been printed to stderr.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), symError()+" "+err.Error())
		return err
	}
	return nil
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("wfinit %s\n", version.GetFullVersion()))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Write structured logs to stderr")
}
