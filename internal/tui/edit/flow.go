package edit

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"

	"github.com/minigame-tools/confpatch/internal/batch"
	"github.com/minigame-tools/confpatch/internal/filesystem"
	"github.com/minigame-tools/confpatch/internal/models"
	"github.com/minigame-tools/confpatch/internal/tui"
)

// Flow orchestrates the interactive batch edit using huh forms.
type Flow struct {
	fs       filesystem.FileSystem
	projects []*models.Project
	driver   *batch.Driver
	theme    *huh.Theme
}

// Result captures the successful output of the flow.
type Result struct {
	SelectedProjects []string
	Edits            models.EditSet
	Report           *batch.Report
}

// NewFlow constructs a Flow over the scanned projects.
func NewFlow(fs filesystem.FileSystem, projects []*models.Project) *Flow {
	return &Flow{
		fs:       fs,
		projects: projects,
		driver:   batch.NewDriver(fs),
		theme:    tui.NewHuhTheme(),
	}
}

// Run executes the forms sequentially; returns nil result on user abort.
func (f *Flow) Run() (*Result, error) {
	selected, err := f.selectProjects()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}
	if len(selected) == 0 {
		return nil, nil
	}

	edits, err := f.inputValues(selected)
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}
	if edits.IsEmpty() {
		return nil, nil
	}

	confirmed, err := f.confirm(selected, edits)
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}
	if !confirmed {
		return nil, nil
	}

	report := f.driver.Apply(selected, edits)

	names := make([]string, len(selected))
	for i, project := range selected {
		names[i] = project.Name
	}

	return &Result{
		SelectedProjects: names,
		Edits:            edits,
		Report:           report,
	}, nil
}

func (f *Flow) selectProjects() ([]*models.Project, error) {
	selected := make([]*models.Project, 0, len(f.projects))
	opts := make([]huh.Option[*models.Project], 0, len(f.projects))
	for _, project := range f.projects {
		label := fmt.Sprintf("%s (%s)", project.Name, project.AppID)
		if project.LoadErr != nil {
			label = fmt.Sprintf("%s (descriptor broken)", project.Name)
		}
		opts = append(opts, huh.NewOption(label, project).Selected(project.Selected))
	}

	keyMap := huh.NewDefaultKeyMap()
	keyMap.MultiSelect.Filter.SetEnabled(false)
	keyMap.MultiSelect.Toggle.SetKeys(" ")
	keyMap.MultiSelect.Toggle.SetHelp("space", "toggle selection")
	keyMap.MultiSelect.Submit.SetKeys("enter")
	keyMap.MultiSelect.Submit.SetHelp("enter", "continue")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[*models.Project]().
				Options(opts...).
				Value(&selected),
		).
			Title("Project Selection").
			Description("Select projects to rewrite."),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen()).
		WithKeyMap(keyMap)

	if err := form.Run(); err != nil {
		return nil, err
	}

	return selected, nil
}

func (f *Flow) inputValues(selected []*models.Project) (models.EditSet, error) {
	appID := commonValue(selected, models.FieldAppID)
	projectName := ""
	platformIDs := commonValue(selected, models.FieldPlatformIDs)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("App ID").
				Description("Applied to the descriptor and to the script mirror when present. Leave empty to keep.").
				Value(&appID),
			huh.NewInput().
				Title("Project name").
				Description("Leave empty to keep each project's current name.").
				Value(&projectName),
			huh.NewInput().
				Title("Platform IDs").
				Description("Comma-separated, e.g. id1,id2. Leave empty to keep.").
				Value(&platformIDs),
		).
			Title("New Values").
			Description(fmt.Sprintf("Applies to %d selected project(s).", len(selected))),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen())

	if err := form.Run(); err != nil {
		return models.EditSet{}, err
	}

	var edits models.EditSet
	if v := strings.TrimSpace(appID); v != "" {
		edits.AppID = &v
	}
	if v := strings.TrimSpace(projectName); v != "" {
		edits.ProjectName = &v
	}
	if v := strings.TrimSpace(platformIDs); v != "" {
		edits.PlatformIDs = models.ParsePlatformIDs(v)
	}

	return edits, nil
}

func (f *Flow) confirm(selected []*models.Project, edits models.EditSet) (bool, error) {
	fields := make([]string, 0, 3)
	for _, field := range edits.Fields() {
		fields = append(fields, field.String())
	}

	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Rewrite %s in %d project(s)?", strings.Join(fields, ", "), len(selected))).
				Affirmative("Apply").
				Negative("Cancel").
				Value(&confirmed),
		),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen())

	if err := form.Run(); err != nil {
		return false, err
	}

	return confirmed, nil
}

// commonValue prefills an input when every selected project agrees on the
// current value
func commonValue(projects []*models.Project, field models.Field) string {
	if len(projects) == 0 {
		return ""
	}

	value := projects[0].CurrentValue(field)
	for _, project := range projects[1:] {
		if project.CurrentValue(field) != value {
			return ""
		}
	}
	return value
}
