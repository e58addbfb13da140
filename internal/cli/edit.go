package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minigame-tools/confpatch/internal/filesystem"
	"github.com/minigame-tools/confpatch/internal/tui/edit"
)

// EditCommand handles the edit command
type EditCommand struct {
	fs filesystem.FileSystem
}

// NewEditCommand creates a new edit command
func NewEditCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &EditCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "edit [dir]",
		Short: "Batch-edit projects interactively",
		Long: `Scans for projects, then walks through project selection, value
entry, and confirmation before rewriting the files.`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}

	return cobraCmd
}

// Run executes the edit command
func (c *EditCommand) Run(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot(c.fs, args)
	if err != nil {
		return err
	}

	projects, err := scanProjects(c.fs, root)
	if err != nil {
		return err
	}

	flow := edit.NewFlow(c.fs, projects)
	result, err := flow.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	if result == nil {
		return nil
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), edit.RenderResult(result))

	return nil
}
