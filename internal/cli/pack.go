package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minigame-tools/confpatch/internal/archive"
	"github.com/minigame-tools/confpatch/internal/filesystem"
)

// PackCommand handles the pack command
type PackCommand struct {
	fs filesystem.FileSystem
}

// NewPackCommand creates a new pack command
func NewPackCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &PackCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "pack [dir]",
		Short: "Zip project directories for upload",
		Long: `Packs each discovered project tree into a zip archive named after
its project name, next to the scan root unless --out is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringArray("project", nil, "Only pack the named project(s); repeatable")
	cobraCmd.Flags().String("out", "", "Directory to write archives to (default: scan root)")

	return cobraCmd
}

// Run executes the pack command
func (c *PackCommand) Run(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot(c.fs, args)
	if err != nil {
		return err
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

	outDir, _ := cmd.Flags().GetString("out")
	if outDir == "" {
		outDir = root
	}
	if !c.fs.Exists(outDir) {
		if err := c.fs.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	packer := archive.NewPacker(c.fs)
	failed := 0
	for _, project := range projects {
		zipPath, err := packer.Pack(project, outDir)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "✗ %s: %v\n", project.Name, err)
			failed++
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s -> %s\n", project.Name, zipPath)
	}

	if failed > 0 {
		return fmt.Errorf("%d project(s) failed to pack", failed)
	}

	return nil
}
