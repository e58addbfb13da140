package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	huh "github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/minigame-tools/confpatch/internal/filesystem"
	"github.com/minigame-tools/confpatch/internal/models"
	"github.com/minigame-tools/confpatch/internal/preset"
	"github.com/minigame-tools/confpatch/internal/tui"
)

// PresetCommand handles the preset command
type PresetCommand struct {
	fs filesystem.FileSystem
}

// NewPresetCommand creates a new preset command
func NewPresetCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &PresetCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "preset [dir]",
		Short: "Create or list stored edit presets",
		Long: `Presets are stored edit sets under .confpatch/, reusable with
'confpatch apply --preset <id>'. Without --list, a new preset is created
interactively.`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().Bool("list", false, "List stored presets instead of creating one")

	return cobraCmd
}

// Run executes the preset command
func (c *PresetCommand) Run(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot(c.fs, args)
	if err != nil {
		return err
	}

	manager := preset.NewManager(c.fs, filepath.Join(root, preset.Dirname))

	if list, _ := cmd.Flags().GetBool("list"); list {
		return c.list(cmd, manager)
	}

	return c.create(cmd, manager)
}

func (c *PresetCommand) list(cmd *cobra.Command, manager *preset.Manager) error {
	presets, err := manager.ReadAll()
	if err != nil {
		return err
	}

	if len(presets) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No presets stored.")
		return nil
	}

	for _, p := range presets {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", p.ID)
		if p.Edits.AppID != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "    appid:     %s\n", *p.Edits.AppID)
		}
		if p.Edits.ProjectName != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "    name:      %s\n", *p.Edits.ProjectName)
		}
		if p.Edits.PlatformIDs != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "    douyinIds: %s\n", models.JoinPlatformIDs(p.Edits.PlatformIDs))
		}
		if p.Note != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "    note:      %s\n", firstLine(p.Note))
		}
	}

	return nil
}

func (c *PresetCommand) create(cmd *cobra.Command, manager *preset.Manager) error {
	var appID, projectName, platformIDs, note string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("App ID").
				Description("Leave empty to exclude from the preset.").
				Value(&appID),
			huh.NewInput().
				Title("Project name").
				Value(&projectName),
			huh.NewInput().
				Title("Platform IDs").
				Description("Comma-separated.").
				Value(&platformIDs),
			huh.NewText().
				Title("Note").
				Lines(4).
				Placeholder("What is this preset for?").
				Value(&note),
		).
			Title("New Preset"),
	).
		WithTheme(tui.NewHuhTheme()).
		WithShowHelp(true)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
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
	if edits.IsEmpty() {
		return fmt.Errorf("preset needs at least one field value")
	}

	id, err := manager.GenerateID()
	if err != nil {
		return err
	}

	p := &preset.Preset{
		ID:    id,
		Edits: edits,
		Note:  strings.TrimSpace(note),
	}
	if err := manager.Write(p); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", tui.SuccessStyle.Render("✓ Preset created"))
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", p.FilePath)
	return nil
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
