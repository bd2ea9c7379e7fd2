package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iiot-workflow/wfinit/internal/cli/wizard"
	"github.com/iiot-workflow/wfinit/internal/config"
	"github.com/iiot-workflow/wfinit/internal/ui"
	"github.com/iiot-workflow/wfinit/internal/workflow"
)

// initFlagKeys maps init flags to option keys. Only flags the user set are
// applied, so environment values and the options file are not clobbered by
// flag defaults.
var initFlagKeys = map[string]string{
	"project-name":    config.KeyProjectName,
	"project-type":    config.KeyProjectType,
	"platforms":       config.KeyPlatforms,
	"template-source": config.KeyTemplateSource,
}

// headless decides whether --interactive may prompt. Replaced in tests.
var headless = ui.NewHeadlessManager()

// runWizard collects options interactively. Replaced in tests.
var runWizard = wizard.Run

func init() {
	f := rootCmd.Flags()
	f.String("project-name", "", "Project name (default: \"My Project\")")
	f.String("project-type", workflow.DefaultProjectType, "Project type")
	f.String("platforms", "", "Comma-separated list of platforms ("+strings.Join(workflow.PlatformIDs(), ",")+")")
	f.String("template-source", "", "Path to a template source containing a .claude-workflow directory")
	f.String("config", "", "YAML or JSON options file (project_name, project_type, platforms, template_source)")
	f.Bool("interactive", false, "Prompt for options when a terminal is attached")
	f.Bool("backup", false, "Copy existing generated files into state-history/ before overwriting them")
	f.BoolP("quiet", "q", false, "Suppress progress output")
}

// runInit resolves options and runs the Initializer against the project path.
func runInit(cmd *cobra.Command, args []string) error {
	logger := commandLogger(cmd)

	overrides := make(map[string]any)
	for flag, key := range initFlagKeys {
		if cmd.Flags().Changed(flag) {
			overrides[key] = getStringFlag(cmd, flag)
		}
	}

	opts, err := config.Load(config.LoadOptions{
		OptionsFile: getStringFlag(cmd, "config"),
		Overrides:   overrides,
	})
	if err != nil {
		return err
	}

	if getBoolFlag(cmd, "interactive") {
		if headless.IsHeadless() {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), symWarning()+" --interactive ignored: no terminal attached")
		} else {
			answers, err := runWizard(wizard.WizardResult{
				ProjectName: opts.ProjectName,
				ProjectType: opts.ProjectType,
				Platforms:   opts.Platforms,
			})
			if err != nil {
				if errors.Is(err, wizard.ErrCancelled) {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Initialization cancelled.")
					return nil
				}
				return err
			}
			opts.ProjectName = answers.ProjectName
			opts.ProjectType = answers.ProjectType
			opts.Platforms = answers.Platforms
		}
	}

	var reporter workflow.Reporter = workflow.NewConsoleReporter(cmd.OutOrStdout())
	if getBoolFlag(cmd, "quiet") {
		reporter = workflow.NopReporter{}
	}

	initializer, err := workflow.New(projectPathArg(args, 0),
		workflow.WithReporter(reporter),
		workflow.WithLogger(logger),
		workflow.WithBackup(getBoolFlag(cmd, "backup")),
	)
	if err != nil {
		return err
	}

	logger.Debug("options resolved",
		"projectName", opts.ProjectName,
		"projectType", opts.ProjectType,
		"platforms", opts.Platforms,
		"templateSource", opts.TemplateSource,
	)

	if _, err := initializer.Initialize(cmd.Context(), opts.ConfigData(), opts.TemplateSource); err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}
	return nil
}
