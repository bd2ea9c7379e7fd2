// Package workflow scaffolds the .claude-workflow tree for a project: the
// directory manifest, optional template copy, config.yml, the state-tracking
// documents and the README. It also inspects an existing tree for the status
// and show commands.
package workflow

import "errors"

// Sentinel errors for the workflow package.
var (
	// ErrNotInitialized indicates the project root has no .claude-workflow directory.
	ErrNotInitialized = errors.New("workflow not initialized")

	// ErrUnknownDocument indicates a document key that is not part of the generated set.
	ErrUnknownDocument = errors.New("unknown document")

	// ErrTemplateSourceNotDir indicates the template source path exists but is not a directory.
	ErrTemplateSourceNotDir = errors.New("template source is not a directory")
)
