package cli

import (
	"fmt"

	"github.com/minigame-tools/confpatch/internal/filesystem"
	"github.com/minigame-tools/confpatch/internal/models"
	"github.com/minigame-tools/confpatch/internal/scanner"
)

// resolveRoot returns the scan root: the positional argument when given,
// the working directory otherwise
func resolveRoot(fs filesystem.FileSystem, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	cwd, err := fs.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return cwd, nil
}

// scanProjects runs the scanner over the root
func scanProjects(fs filesystem.FileSystem, root string) ([]*models.Project, error) {
	projects, err := scanner.New(fs).Scan(root)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, fmt.Errorf("no projects found under %s", root)
	}
	return projects, nil
}

// filterProjects keeps projects whose name matches one of the given
// names; an empty filter keeps everything
func filterProjects(projects []*models.Project, names []string) ([]*models.Project, error) {
	if len(names) == 0 {
		return projects, nil
	}

	nameSet := make(map[string]struct{}, len(names))
	for _, name := range names {
		nameSet[name] = struct{}{}
	}

	filtered := make([]*models.Project, 0, len(projects))
	for _, project := range projects {
		if _, ok := nameSet[project.Name]; ok {
			filtered = append(filtered, project)
		}
	}

	if len(filtered) == 0 {
		return nil, fmt.Errorf("no projects matched the --project filter")
	}

	return filtered, nil
}
