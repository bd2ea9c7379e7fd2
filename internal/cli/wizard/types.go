// Package wizard provides the interactive huh-based prompts that collect
// initialization options when wfinit runs with --interactive.
package wizard

import "errors"

// WizardResult holds the user's answers.
type WizardResult struct {
	ProjectName string   // Display name written to config.yml
	ProjectType string   // Project type written to config.yml
	Platforms   []string // Enabled platform IDs
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
)

// Brand colors shared by the wizard theme.
const (
	ColorPrimary   = "#DA7756"
	ColorSecondary = "#A78BFA"
	ColorSuccess   = "#10B981"
	ColorError     = "#EF4444"
	ColorText      = "#F9FAFB"
	ColorMuted     = "#6B7280"
	ColorBorder    = "#4B5563"
)
