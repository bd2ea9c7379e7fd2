package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iiot-workflow/wfinit/internal/workflow"
)

var statusCmd = &cobra.Command{
	Use:   "status [project-path]",
	Short: "Show configuration and completeness of an initialized workflow",
	Long: `Read back .claude-workflow/config.yml, report missing directories or
generated documents, and count authored REQ/FE/SOL/ADR/IMP documents.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	logger := commandLogger(cmd)
	out := cmd.OutOrStdout()

	st, err := workflow.Inspect(projectPathArg(args, 0))
	if err != nil {
		return err
	}
	logger.Debug("workflow inspected",
		"root", st.ProjectRoot,
		"missingDirs", len(st.MissingDirs),
		"missingDocs", len(st.MissingDocuments),
	)

	_, _ = fmt.Fprintln(out, cliPrimary.Render("Workflow status"))
	_, _ = fmt.Fprintln(out)

	enabled := strings.Join(st.EnabledPlatforms(), ", ")
	if enabled == "" {
		enabled = cliMuted.Render("none")
	}
	counts := make([]string, 0, len(workflow.ArtifactKinds))
	for _, kind := range workflow.ArtifactKinds {
		counts = append(counts, fmt.Sprintf("%s %d", kind.Prefix, st.Artifacts[kind.Prefix]))
	}

	pairs := []kvPair{{"Root", st.ProjectRoot}}
	if st.ConfigError == nil {
		pairs = append(pairs,
			kvPair{"Project", st.ProjectName},
			kvPair{"Type", st.ProjectType},
			kvPair{"Version", st.Version},
			kvPair{"Platforms", enabled},
		)
	}
	pairs = append(pairs, kvPair{"Documents", strings.Join(counts, " · ")})
	_, _ = fmt.Fprintln(out, renderKeyValueLines(pairs))
	_, _ = fmt.Fprintln(out)

	if st.ConfigError != nil {
		_, _ = fmt.Fprintf(out, "%s config: %v\n", symWarning(), st.ConfigError)
	}
	if len(st.MissingDirs) == 0 {
		_, _ = fmt.Fprintf(out, "%s All %d directories present\n", symSuccess(), len(workflow.Directories))
	} else {
		_, _ = fmt.Fprintf(out, "%s %d directories missing\n", symWarning(), len(st.MissingDirs))
		for _, d := range st.MissingDirs {
			_, _ = fmt.Fprintln(out, "    "+cliMuted.Render(d))
		}
	}
	if len(st.MissingDocuments) == 0 {
		_, _ = fmt.Fprintf(out, "%s All %d generated documents present\n", symSuccess(), len(workflow.Documents()))
	} else {
		_, _ = fmt.Fprintf(out, "%s %d generated documents missing\n", symWarning(), len(st.MissingDocuments))
		for _, d := range st.MissingDocuments {
			_, _ = fmt.Fprintln(out, "    "+cliMuted.Render(d))
		}
	}
	if !st.Complete() {
		_, _ = fmt.Fprintln(out, cliMuted.Render("Run wfinit again to restore missing entries."))
	}

	return nil
}
