package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iiot-workflow/wfinit/internal/ui"
	"github.com/iiot-workflow/wfinit/internal/workflow"
)

var showCmd = &cobra.Command{
	Use:   "show <document> [project-path]",
	Short: "Print a generated workflow document",
	Long: `Print one of the generated documents. Output is rendered as markdown when
stdout is a terminal, unless --raw is given.

Documents: ` + strings.Join(workflow.DocumentKeys(), ", "),
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: workflow.DocumentKeys(),
	RunE:      runShow,
}

// renderMarkdown renders documents for terminal output. Replaced in tests.
var renderMarkdown = ui.RenderMarkdown

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().Bool("raw", false, "Print the file contents without markdown rendering")
	showCmd.Flags().Int("width", ui.DefaultWordWrap, "Word wrap width for rendered output")
}

func runShow(cmd *cobra.Command, args []string) error {
	key := args[0]
	data, err := workflow.ReadDocument(projectPathArg(args, 1), key)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if getBoolFlag(cmd, "raw") || !ui.IsTerminal(out) {
		_, err := out.Write(data)
		return err
	}

	md := string(data)
	if doc, _ := workflow.LookupDocument(key); doc.Key == workflow.ConfigDocument.Key {
		md = "```yaml\n" + md + "```\n"
	}

	width, _ := cmd.Flags().GetInt("width")
	rendered, err := renderMarkdown(md, width)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, rendered)
	return err
}
