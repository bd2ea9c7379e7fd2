package template

import (
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/iiot-workflow/wfinit/internal/defs"
)

// DocumentContext provides data for rendering the generated workflow documents.
// All fields are exported for use with Go's text/template package.
type DocumentContext struct {
	// Project
	ProjectName string // Display name written to config.yml
	ProjectType string // e.g., "application"
	ProjectDir  string // Base name of the project root directory

	// Config
	Version   string          // Project version written to config.yml
	Platforms []PlatformEntry // Fixed-order platform table

	Date string // YYYY-MM-DD at run time
}

// PlatformEntry is a single row of the config.yml platform table.
type PlatformEntry struct {
	ID      string
	Name    string
	Enabled bool
}

// DefaultProjectVersion is the version recorded for a freshly initialized project.
const DefaultProjectVersion = "1.0.0"

// ContextOption configures a DocumentContext.
type ContextOption func(*DocumentContext)

// NewDocumentContext creates a DocumentContext dated today, then applies any
// provided options.
func NewDocumentContext(opts ...ContextOption) *DocumentContext {
	ctx := &DocumentContext{
		Version: DefaultProjectVersion,
		Date:    time.Now().Format(defs.DateLayout),
	}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// WithProject sets the project display name and type.
func WithProject(name, projectType string) ContextOption {
	return func(c *DocumentContext) {
		c.ProjectName = name
		c.ProjectType = projectType
	}
}

// WithProjectDir sets the project directory name. macOS reports decomposed
// (NFD) file names, so the name is normalized to NFC before rendering.
func WithProjectDir(dir string) ContextOption {
	return func(c *DocumentContext) {
		c.ProjectDir = norm.NFC.String(dir)
	}
}

// WithPlatforms sets the platform table.
func WithPlatforms(entries []PlatformEntry) ContextOption {
	return func(c *DocumentContext) {
		c.Platforms = entries
	}
}

// WithTime stamps Date from t.
func WithTime(t time.Time) ContextOption {
	return func(c *DocumentContext) {
		c.Date = t.Format(defs.DateLayout)
	}
}
