package wizard

import (
	"slices"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/iiot-workflow/wfinit/internal/workflow"
)

// platformOptions lists every platform as "id - display name", preselecting
// the IDs in selected.
func platformOptions(selected []string) []huh.Option[string] {
	opts := make([]huh.Option[string], len(workflow.Platforms))
	for i, p := range workflow.Platforms {
		opts[i] = huh.NewOption(p.ID+" - "+p.Name, p.ID).
			Selected(slices.Contains(selected, p.ID))
	}
	return opts
}

// normalize trims answers and reorders platforms to config.yml order.
func normalize(r *WizardResult) {
	r.ProjectName = strings.TrimSpace(r.ProjectName)
	r.ProjectType = strings.TrimSpace(r.ProjectType)
	r.Platforms = workflow.ParsePlatformList(strings.Join(r.Platforms, ","))
	slices.SortStableFunc(r.Platforms, func(a, b string) int {
		return slices.Index(workflow.PlatformIDs(), a) - slices.Index(workflow.PlatformIDs(), b)
	})
}

// buildFields creates one field per question, bound to result.
func buildFields(result *WizardResult) []huh.Field {
	name := huh.NewInput().
		Title("Project name").
		Description("Written to config.yml as project.name").
		Placeholder(workflow.DefaultProjectName).
		Value(&result.ProjectName)

	projectType := huh.NewInput().
		Title("Project type").
		Placeholder(workflow.DefaultProjectType).
		Value(&result.ProjectType)

	platforms := huh.NewMultiSelect[string]().
		Title("Platforms").
		Description("Space to toggle, enter to confirm").
		Options(platformOptions(result.Platforms)...).
		Value(&result.Platforms)

	return []huh.Field{name, projectType, platforms}
}
