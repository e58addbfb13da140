package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minigame-tools/confpatch/internal/filesystem"
)

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "confpatch",
		Short: "Batch-edit mini-game project configuration",
		Long: `A tool for batch-editing mini-game project configuration.

confpatch scans a directory tree for project descriptors, shows the
tracked fields (app id, project name, platform ids), and rewrites new
values across many projects at once with minimal disturbance to the
underlying files.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to `confpatch edit` when no subcommand is provided.
			return (&EditCommand{fs: fs}).Run(cmd, args)
		},
	}

	rootCmd.AddCommand(NewScanCommand(fs))
	rootCmd.AddCommand(NewEditCommand(fs))
	rootCmd.AddCommand(NewApplyCommand(fs))
	rootCmd.AddCommand(NewPresetCommand(fs))
	rootCmd.AddCommand(NewPackCommand(fs))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()

	rootCmd := NewRootCommand(fs)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
