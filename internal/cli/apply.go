package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minigame-tools/confpatch/internal/batch"
	"github.com/minigame-tools/confpatch/internal/filesystem"
	"github.com/minigame-tools/confpatch/internal/models"
	"github.com/minigame-tools/confpatch/internal/preset"
)

// ApplyCommand handles the apply command
type ApplyCommand struct {
	fs filesystem.FileSystem
}

// NewApplyCommand creates a new apply command
func NewApplyCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &ApplyCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "apply [dir]",
		Short: "Apply new field values across projects non-interactively",
		Long: `Applies new tracked field values across all (or selected) projects
under a directory, without the interactive form.

Failures are isolated per project and per field: a malformed descriptor
or a script without the expected assignment is reported and skipped,
never aborting the rest of the batch.`,
		Example: `  # Rewrite the app id everywhere under ./games
  confpatch apply ./games --appid tt9000000000000000

  # Rewrite platform ids for two projects only
  confpatch apply ./games --ids id1,id2 --project game-a --project game-b

  # Run a stored preset and keep a markdown report
  confpatch apply ./games --preset bright_falcon_V1StGXR8 --report report.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("appid", "", "New application identifier")
	cobraCmd.Flags().String("name", "", "New project display name")
	cobraCmd.Flags().String("ids", "", "New platform id list, comma-separated")
	cobraCmd.Flags().String("preset", "", "Preset ID to load values from (flags override)")
	cobraCmd.Flags().StringArray("project", nil, "Only apply to the named project(s); repeatable")
	cobraCmd.Flags().String("report", "", "Write a markdown report to this path")

	return cobraCmd
}

// Run executes the apply command
func (c *ApplyCommand) Run(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot(c.fs, args)
	if err != nil {
		return err
	}

	edits, err := c.collectEdits(cmd, root)
	if err != nil {
		return err
	}
	if edits.IsEmpty() {
		return fmt.Errorf("nothing to apply: set --appid, --name, --ids, or --preset")
	}

	projects, err := scanProjects(c.fs, root)
	if err != nil {
		return err
	}

	names, _ := cmd.Flags().GetStringArray("project")
	projects, err = filterProjects(projects, names)
	if err != nil {
		return err
	}

	report := batch.NewDriver(c.fs).Apply(projects, edits)

	fmt.Fprint(cmd.OutOrStdout(), report.Describe())
	fmt.Fprintf(cmd.OutOrStdout(), "\nRun %s: %s\n", report.RunID, report.Summary())

	if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
		if err := c.writeReport(report, reportPath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", reportPath)
	}

	if report.HasFailures() {
		return fmt.Errorf("%d project(s) had failed fields", report.FailedCount())
	}

	return nil
}

// collectEdits merges preset values with flag overrides
func (c *ApplyCommand) collectEdits(cmd *cobra.Command, root string) (models.EditSet, error) {
	var edits models.EditSet

	if presetID, _ := cmd.Flags().GetString("preset"); presetID != "" {
		manager := preset.NewManager(c.fs, filepath.Join(root, preset.Dirname))
		p, err := manager.Get(presetID)
		if err != nil {
			return models.EditSet{}, fmt.Errorf("failed to load preset: %w", err)
		}
		edits = p.Edits
	}

	if v, _ := cmd.Flags().GetString("appid"); strings.TrimSpace(v) != "" {
		trimmed := strings.TrimSpace(v)
		edits.AppID = &trimmed
	}
	if v, _ := cmd.Flags().GetString("name"); strings.TrimSpace(v) != "" {
		trimmed := strings.TrimSpace(v)
		edits.ProjectName = &trimmed
	}
	if v, _ := cmd.Flags().GetString("ids"); strings.TrimSpace(v) != "" {
		edits.PlatformIDs = models.ParsePlatformIDs(v)
	}

	return edits, nil
}

func (c *ApplyCommand) writeReport(report *batch.Report, path string) error {
	rendered, err := batch.RenderMarkdown(report)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if err := c.fs.WriteFile(path, []byte(rendered), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
