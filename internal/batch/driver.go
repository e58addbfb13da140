// Package batch fans operator-entered field values out over a set of
// discovered projects. Failures are isolated per project and per field;
// a broken project never aborts the rest of the run.
package batch

import (
	"fmt"

	"github.com/minigame-tools/confpatch/internal/descriptor"
	"github.com/minigame-tools/confpatch/internal/filesystem"
	"github.com/minigame-tools/confpatch/internal/models"
	"github.com/minigame-tools/confpatch/internal/script"
)

// Driver applies one EditSet across many projects.
//
// Commit policy: the descriptor and the script are independent files, so
// each is written as soon as all of its own staged patches succeed. A
// failure on one side never rolls back or blocks the other; the report
// names exactly what happened per field.
type Driver struct {
	fs          filesystem.FileSystem
	descriptors *descriptor.Store
}

// NewDriver creates a new Driver
func NewDriver(fs filesystem.FileSystem) *Driver {
	return &Driver{
		fs:          fs,
		descriptors: descriptor.NewStore(fs),
	}
}

// Apply runs the edits over every given project in order and returns the
// aggregated report. Projects are expected to be pre-filtered to the
// operator's selection.
func (d *Driver) Apply(projects []*models.Project, edits models.EditSet) *Report {
	report := NewReport()

	for _, project := range projects {
		report.Results = append(report.Results, d.applyProject(project, edits))
	}

	return report
}

func (d *Driver) applyProject(project *models.Project, edits models.EditSet) *ProjectResult {
	result := &ProjectResult{
		Project: project.Name,
		Path:    project.RootPath,
	}

	d.applyDescriptor(project, edits, result)
	d.applyScript(project, edits, result)

	result.Unchanged = len(result.Changed) == 0 && len(result.Failed) == 0
	return result
}

// applyDescriptor stages and writes the descriptor-side edits (app id and
// project name)
func (d *Driver) applyDescriptor(project *models.Project, edits models.EditSet, result *ProjectResult) {
	if edits.AppID == nil && edits.ProjectName == nil {
		return
	}

	doc, err := d.descriptors.Read(project.DescriptorPath)
	if err != nil {
		if edits.AppID != nil {
			result.fail(models.FieldAppID, err.Error())
		}
		if edits.ProjectName != nil {
			result.fail(models.FieldProjectName, err.Error())
		}
		return
	}

	var staged []models.Field
	if edits.AppID != nil {
		if current, _ := doc.GetString(descriptor.KeyAppID); current != *edits.AppID {
			doc = doc.WithString(descriptor.KeyAppID, *edits.AppID)
			staged = append(staged, models.FieldAppID)
		}
	}
	if edits.ProjectName != nil {
		if current, _ := doc.GetString(descriptor.KeyProjectName); current != *edits.ProjectName {
			doc = doc.WithString(descriptor.KeyProjectName, *edits.ProjectName)
			staged = append(staged, models.FieldProjectName)
		}
	}

	if len(staged) == 0 {
		return
	}

	if err := d.descriptors.Write(project.DescriptorPath, doc); err != nil {
		for _, field := range staged {
			result.fail(field, err.Error())
		}
		return
	}

	for _, field := range staged {
		result.markChanged(field)
	}
	if edits.AppID != nil {
		project.AppID = *edits.AppID
	}
	if edits.ProjectName != nil {
		project.ProjectName = *edits.ProjectName
		project.Name = *edits.ProjectName
	}
}

// applyScript stages and writes the script-side edits (app id mirror and
// platform id list). A project without a script mirror is skipped without
// error for the app id, per the sync rule; a platform id edit has nowhere
// to go and is reported.
func (d *Driver) applyScript(project *models.Project, edits models.EditSet, result *ProjectResult) {
	if edits.AppID == nil && edits.PlatformIDs == nil {
		return
	}

	if !project.HasScript() {
		if edits.PlatformIDs != nil {
			result.fail(models.FieldPlatformIDs, "no script file in project")
		}
		return
	}

	data, err := d.fs.ReadFile(project.ScriptPath)
	if err != nil {
		reason := fmt.Sprintf("failed to read script: %v", err)
		if edits.AppID != nil {
			result.fail(models.FieldAppID, reason)
		}
		if edits.PlatformIDs != nil {
			result.fail(models.FieldPlatformIDs, reason)
		}
		return
	}

	text := string(data)
	original := text
	var staged []models.Field

	if edits.AppID != nil {
		if current, ok := script.ExtractAppID(text); !ok {
			result.fail(models.FieldAppID, "script has no app id assignment")
		} else if current != *edits.AppID {
			patched, patchErr := script.PatchAppID(text, *edits.AppID)
			if patchErr != nil {
				result.fail(models.FieldAppID, patchErr.Error())
			} else {
				text = patched
				staged = append(staged, models.FieldAppID)
			}
		}
	}

	if edits.PlatformIDs != nil {
		if current, ok := script.ExtractPlatformIDs(text); !ok {
			result.fail(models.FieldPlatformIDs, "script has no platform id assignment")
		} else if !models.EqualPlatformIDs(current, edits.PlatformIDs) {
			patched, patchErr := script.PatchPlatformIDs(text, edits.PlatformIDs)
			if patchErr != nil {
				result.fail(models.FieldPlatformIDs, patchErr.Error())
			} else {
				text = patched
				staged = append(staged, models.FieldPlatformIDs)
			}
		}
	}

	if text == original {
		return
	}

	if err := d.fs.WriteFile(project.ScriptPath, []byte(text), 0644); err != nil {
		reason := fmt.Sprintf("failed to write script: %v", err)
		for _, field := range staged {
			result.fail(field, reason)
		}
		return
	}

	// Only fields whose patch actually landed update the in-memory record
	for _, field := range staged {
		result.markChanged(field)
		switch field {
		case models.FieldAppID:
			project.ScriptAppID = *edits.AppID
		case models.FieldPlatformIDs:
			project.PlatformIDs = append([]string(nil), edits.PlatformIDs...)
		}
	}
}
