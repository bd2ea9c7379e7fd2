package workflow

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iiot-workflow/wfinit/internal/defs"
)

// Step identifies one stage of Initialize.
type Step int

const (
	StepDirectories Step = iota
	StepTemplates
	StepConfig
	StepState
	StepReadme
)

// String returns the step name used in log records.
func (s Step) String() string {
	switch s {
	case StepDirectories:
		return "directories"
	case StepTemplates:
		return "templates"
	case StepConfig:
		return "config"
	case StepState:
		return "state"
	case StepReadme:
		return "readme"
	default:
		return "unknown"
	}
}

// Reporter receives progress events from the Initializer.
type Reporter interface {
	Begin()
	StepStarted(step Step)
	StepDone(step Step)
	TemplateCopied(name string)
	TemplateMissing(name string)
	TemplatesSkipped()
	FileOverwritten(relPath string)
	Finished(result *Result)
}

// NopReporter discards every event.
type NopReporter struct{}

func (NopReporter) Begin() {}
func (NopReporter) StepStarted(Step) {}
func (NopReporter) StepDone(Step) {}
func (NopReporter) TemplateCopied(string) {}
func (NopReporter) TemplateMissing(string) {}
func (NopReporter) TemplatesSkipped() {}
func (NopReporter) FileOverwritten(string) {}
func (NopReporter) Finished(*Result) {}

var stepMessages = map[Step][2]string{
	StepDirectories: {"📁 Creating directory structure...", "✅ Directory structure created"},
	StepTemplates:   {"📄 Copying template files...", "✅ Template files copied"},
	StepConfig:      {"⚙️  Creating configuration...", "✅ Configuration created"},
	StepState:       {"📊 Creating initial state files...", "✅ Initial state files created"},
}

// ConsoleReporter prints the progress transcript to a writer, one line per event.
type ConsoleReporter struct {
	w       io.Writer
	success lipgloss.Style
	warn    lipgloss.Style
	primary lipgloss.Style
	muted   lipgloss.Style
}

// NewConsoleReporter creates a ConsoleReporter writing to w. Colors are
// enabled only when w is a terminal.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	r := lipgloss.NewRenderer(w)
	return &ConsoleReporter{
		w:       w,
		success: r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}),
		warn:    r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"}),
		primary: r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"}),
		muted:   r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}),
	}
}

func (c *ConsoleReporter) println(s string) {
	_, _ = fmt.Fprintln(c.w, s)
}

func (c *ConsoleReporter) rule() {
	c.println(c.muted.Render(strings.Repeat("=", 60)))
}

// Begin prints the banner.
func (c *ConsoleReporter) Begin() {
	c.rule()
	c.println(c.primary.Render("🚀 Claude Code Workflow Initialization"))
	c.rule()
	c.println("")
}

// StepStarted prints the step heading. The README step is silent.
func (c *ConsoleReporter) StepStarted(step Step) {
	if msg, ok := stepMessages[step]; ok {
		c.println(msg[0])
	}
}

// StepDone prints the step completion line followed by a blank line.
func (c *ConsoleReporter) StepDone(step Step) {
	if msg, ok := stepMessages[step]; ok {
		c.println(c.success.Render(msg[1]))
		c.println("")
	}
}

// TemplateCopied prints a copied template.
func (c *ConsoleReporter) TemplateCopied(name string) {
	c.println("  " + c.success.Render("✅ Copied "+name))
}

// TemplateMissing prints a template that was not found in the source.
func (c *ConsoleReporter) TemplateMissing(name string) {
	c.println("  " + c.warn.Render("⚠️  Template not found: "+name))
}

// TemplatesSkipped prints the notice shown when no template source was given.
func (c *ConsoleReporter) TemplatesSkipped() {
	c.println(c.warn.Render("⚠️  跳过模板复制（未指定模板源）"))
	c.println("")
}

// FileOverwritten prints a generated file that replaced an existing one.
func (c *ConsoleReporter) FileOverwritten(relPath string) {
	c.println("  " + c.warn.Render("⚠️  Overwriting "+relPath))
}

// Finished prints the completion block and next steps.
func (c *ConsoleReporter) Finished(result *Result) {
	c.rule()
	c.println(c.success.Render("✅ 初始化完成！"))
	c.rule()
	c.println("")
	if result != nil && result.BackupPath != "" {
		c.println(c.muted.Render("💾 备份目录: " + result.BackupPath))
		c.println("")
	}
	c.println("📝 下一步:")
	c.println("1. 审查配置文件: " + defs.WorkflowDir + "/" + defs.ConfigYML)
	c.println("2. 启动 Claude Code")
	c.println("3. 开始第一个需求: '我们需要添加[新功能]'")
	c.println("")
}
