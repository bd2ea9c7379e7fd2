package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// newLogger returns a discarding logger unless verbose is set, in which case
// records at debug level and above go to w as text.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// commandLogger builds the logger for cmd from the persistent --verbose flag.
func commandLogger(cmd *cobra.Command) *slog.Logger {
	return newLogger(cmd.ErrOrStderr(), getBoolFlag(cmd, "verbose")).With("command", cmd.Name())
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// projectPathArg returns the optional positional project path, defaulting to ".".
func projectPathArg(args []string, index int) string {
	if len(args) > index && args[index] != "" {
		return args[index]
	}
	return "."
}
