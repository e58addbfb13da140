// Package preset stores reusable edit sets as markdown files with YAML
// frontmatter under the .confpatch directory, so an operator can re-run
// the same batch rewrite across machines and sessions.
package preset

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/minigame-tools/confpatch/internal/filesystem"
	"github.com/minigame-tools/confpatch/internal/models"
)

// Dirname is the preset directory, relative to the scan root
const Dirname = ".confpatch"

// Preset is one stored edit set plus a free-form note
type Preset struct {
	// ID is the unique identifier (filename without extension)
	ID string

	// Edits holds the stored field values; unset fields are not edited
	Edits models.EditSet

	// Note is the markdown body describing the batch
	Note string

	// FilePath is the path to the preset file
	FilePath string
}

// matter is the frontmatter layout of a preset file
type matter struct {
	AppID       *string  `yaml:"appid"`
	ProjectName *string  `yaml:"projectname"`
	PlatformIDs []string `yaml:"douyinIds"`
}

// Manager handles preset operations
type Manager struct {
	fs        filesystem.FileSystem
	presetDir string
}

// NewManager creates a new preset manager
func NewManager(fs filesystem.FileSystem, presetDir string) *Manager {
	return &Manager{
		fs:        fs,
		presetDir: presetDir,
	}
}

// GenerateID generates a unique, human-friendly preset ID
// Format: adjective_animal_nanoid (e.g., "bright_falcon_V1StGXR8")
func (m *Manager) GenerateID() (string, error) {
	id, err := generatePresetID()
	if err != nil {
		return "", fmt.Errorf("failed to generate ID: %w", err)
	}
	return id, nil
}

// ReadAll reads every preset file from the preset directory
func (m *Manager) ReadAll() ([]*Preset, error) {
	if !m.fs.Exists(m.presetDir) {
		return []*Preset{}, nil
	}

	entries, err := m.fs.ReadDir(m.presetDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset directory: %w", err)
	}

	var presets []*Preset
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		filePath := filepath.Join(m.presetDir, entry.Name())
		preset, err := m.Read(filePath)
		if err != nil {
			fmt.Printf("Warning: failed to read preset %s: %v\n", entry.Name(), err)
			continue
		}

		presets = append(presets, preset)
	}

	return presets, nil
}

// Read reads a single preset file
func (m *Manager) Read(filePath string) (*Preset, error) {
	data, err := m.fs.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return m.Parse(filePath, data)
}

// Get resolves a preset by ID
func (m *Manager) Get(id string) (*Preset, error) {
	filePath := filepath.Join(m.presetDir, id+".md")
	if !m.fs.Exists(filePath) {
		return nil, fmt.Errorf("preset %s not found", id)
	}
	return m.Read(filePath)
}

// Parse parses preset data from bytes
func (m *Manager) Parse(filePath string, data []byte) (*Preset, error) {
	var fields matter
	rest, err := frontmatter.Parse(bytes.NewReader(data), &fields)
	if err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	edits := models.EditSet{
		AppID:       fields.AppID,
		ProjectName: fields.ProjectName,
		PlatformIDs: fields.PlatformIDs,
	}
	if edits.IsEmpty() {
		return nil, fmt.Errorf("no tracked fields found in preset frontmatter")
	}

	id := strings.TrimSuffix(filepath.Base(filePath), ".md")

	return &Preset{
		ID:       id,
		Edits:    edits,
		Note:     strings.TrimSpace(string(rest)),
		FilePath: filePath,
	}, nil
}

// Write creates a new preset file
func (m *Manager) Write(preset *Preset) error {
	if !m.fs.Exists(m.presetDir) {
		if err := m.fs.MkdirAll(m.presetDir, 0755); err != nil {
			return fmt.Errorf("failed to create preset directory: %w", err)
		}
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	if preset.Edits.AppID != nil {
		buf.WriteString(fmt.Sprintf("appid: %q\n", *preset.Edits.AppID))
	}
	if preset.Edits.ProjectName != nil {
		buf.WriteString(fmt.Sprintf("projectname: %q\n", *preset.Edits.ProjectName))
	}
	if preset.Edits.PlatformIDs != nil {
		quoted := make([]string, len(preset.Edits.PlatformIDs))
		for i, id := range preset.Edits.PlatformIDs {
			quoted[i] = fmt.Sprintf("%q", id)
		}
		buf.WriteString(fmt.Sprintf("douyinIds: [%s]\n", strings.Join(quoted, ", ")))
	}
	buf.WriteString("---\n\n")
	buf.WriteString(preset.Note)
	buf.WriteString("\n")

	filePath := filepath.Join(m.presetDir, preset.ID+".md")
	if err := m.fs.WriteFile(filePath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write preset file: %w", err)
	}

	preset.FilePath = filePath
	return nil
}
