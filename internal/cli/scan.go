package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minigame-tools/confpatch/internal/filesystem"
	"github.com/minigame-tools/confpatch/internal/models"
)

// ScanCommand handles the scan command
type ScanCommand struct {
	fs filesystem.FileSystem
}

// ProjectInfo is one project in the scan output
type ProjectInfo struct {
	Name        string   `json:"name"`
	Path        string   `json:"path"`
	AppID       string   `json:"appId"`
	ScriptAppID string   `json:"scriptAppId,omitempty"`
	ProjectName string   `json:"projectName"`
	PlatformIDs []string `json:"platformIds,omitempty"`
	ScriptPath  string   `json:"scriptPath,omitempty"`
	Previews    int      `json:"previews"`
	Error       string   `json:"error,omitempty"`
}

// ScanOutput is the complete scan output
type ScanOutput struct {
	Root     string        `json:"root"`
	Projects []ProjectInfo `json:"projects"`
}

// NewScanCommand creates a new scan command
func NewScanCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &ScanCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "List discovered projects and their tracked fields",
		Long: `Scans a directory tree for project descriptors and lists each
project's current tracked field values.`,
		Example: `  # Scan the working directory
  confpatch scan

  # Output JSON for scripting
  confpatch scan ./games --format json > projects.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("format", "text", "Output format: text or json")

	return cobraCmd
}

// Run executes the scan command
func (c *ScanCommand) Run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	root, err := resolveRoot(c.fs, args)
	if err != nil {
		return err
	}

	projects, err := scanProjects(c.fs, root)
	if err != nil {
		return err
	}

	output := ScanOutput{Root: root}
	for _, project := range projects {
		info := ProjectInfo{
			Name:        project.Name,
			Path:        project.RootPath,
			AppID:       project.AppID,
			ScriptAppID: project.ScriptAppID,
			ProjectName: project.ProjectName,
			PlatformIDs: project.PlatformIDs,
			ScriptPath:  project.ScriptPath,
			Previews:    len(project.PreviewPaths),
		}
		if project.LoadErr != nil {
			info.Error = project.LoadErr.Error()
		}
		output.Projects = append(output.Projects, info)
	}

	if format == "json" {
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal scan output: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Found %d project(s) under %s\n\n", len(output.Projects), root)
	for _, info := range output.Projects {
		marker := "✓"
		if info.Error != "" {
			marker = "✗"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, info.Name)
		fmt.Fprintf(cmd.OutOrStdout(), "    path:      %s\n", info.Path)
		if info.Error != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "    error:     %s\n", info.Error)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "    appid:     %s\n", info.AppID)
		if info.ScriptAppID != "" && info.ScriptAppID != info.AppID {
			fmt.Fprintf(cmd.OutOrStdout(), "    appid(js): %s\n", info.ScriptAppID)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "    name:      %s\n", info.ProjectName)
		if len(info.PlatformIDs) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "    douyinIds: %s\n", models.JoinPlatformIDs(info.PlatformIDs))
		}
		if info.Previews > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "    previews:  %d image(s)\n", info.Previews)
		}
	}

	return nil
}
