package models

import (
	"path/filepath"
)

// Project represents one discovered mini-game project.
type Project struct {
	// Name is the display name (projectname from the descriptor, or the
	// directory base name when the descriptor has none)
	Name string

	// RootPath is the absolute path to the project root
	RootPath string

	// DescriptorPath is the path to project.config.json
	DescriptorPath string

	// ScriptPath is the path to the companion script file, "" when none
	// was found
	ScriptPath string

	// PreviewPaths are images in the project tree matching the preview
	// criteria (750px wide)
	PreviewPaths []string

	// AppID is the current application identifier from the descriptor
	AppID string

	// ScriptAppID is the current app id mirror from the script, "" when
	// the script has no recognizable assignment
	ScriptAppID string

	// ProjectName is the current display name from the descriptor
	ProjectName string

	// PlatformIDs is the current platform id list from the script
	PlatformIDs []string

	// Selected marks the project for batch operations
	Selected bool

	// LoadErr records a descriptor parse failure during scanning. The
	// project stays in the list so batch runs can report it.
	LoadErr error
}

// NewProject creates a Project rooted at the descriptor's directory
func NewProject(descriptorPath string) *Project {
	root := filepath.Dir(descriptorPath)
	return &Project{
		Name:           filepath.Base(root),
		RootPath:       root,
		DescriptorPath: descriptorPath,
		Selected:       true,
	}
}

// HasScript reports whether a companion script file was found
func (p *Project) HasScript() bool {
	return p.ScriptPath != ""
}

// CurrentValue returns the project's current value for a field, rendered
// as the editable string form used by the presentation layer.
func (p *Project) CurrentValue(field Field) string {
	switch field {
	case FieldAppID:
		return p.AppID
	case FieldProjectName:
		return p.ProjectName
	case FieldPlatformIDs:
		return JoinPlatformIDs(p.PlatformIDs)
	}
	return ""
}
