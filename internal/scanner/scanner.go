package scanner

import (
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
	"github.com/tidwall/gjson"

	"github.com/minigame-tools/confpatch/internal/descriptor"
	"github.com/minigame-tools/confpatch/internal/filesystem"
	"github.com/minigame-tools/confpatch/internal/models"
	"github.com/minigame-tools/confpatch/internal/script"
)

// scriptCandidates are the well-known companion script locations,
// checked in order before falling back to a fuzzy walk
var scriptCandidates = []string{
	filepath.Join("assets", "main", "index.js"),
	"application.js",
}

// defaultMaxDepth bounds the descriptor search below the scan root
const defaultMaxDepth = 5

// Scanner discovers mini-game projects under a base directory
type Scanner struct {
	fs       filesystem.FileSystem
	store    *descriptor.Store
	maxDepth int
}

// Option configures scanner behavior
type Option func(*Scanner)

// WithMaxDepth overrides how deep below the root descriptors are searched
func WithMaxDepth(depth int) Option {
	return func(s *Scanner) {
		s.maxDepth = depth
	}
}

// New creates a new Scanner
func New(fs filesystem.FileSystem, options ...Option) *Scanner {
	s := &Scanner{
		fs:       fs,
		store:    descriptor.NewStore(fs),
		maxDepth: defaultMaxDepth,
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// Scan walks the tree under root and returns a project record for every
// descriptor file found, in lexical path order. A malformed descriptor
// still yields a record (with LoadErr set) so batch runs can report it.
func (s *Scanner) Scan(root string) ([]*models.Project, error) {
	if !s.fs.Exists(root) {
		return nil, fmt.Errorf("scan root %s does not exist", root)
	}

	ignore, err := s.loadRootGitIgnore(root)
	if err != nil {
		return nil, err
	}

	var projects []*models.Project
	err = s.fs.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path == root {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if ignore != nil {
			if match := ignore.Relative(rel, entry.IsDir()); match != nil && match.Ignore() {
				if entry.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}

		if entry.IsDir() {
			// A directory at the depth limit can only contain entries
			// beyond it
			if strings.Count(rel, "/")+1 >= s.maxDepth {
				return filepath.SkipDir
			}
			return nil
		}

		if filepath.Base(path) != descriptor.Filename {
			return nil
		}

		projects = append(projects, s.buildProject(path))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	return projects, nil
}

// buildProject assembles the record for one discovered descriptor
func (s *Scanner) buildProject(descriptorPath string) *models.Project {
	project := models.NewProject(descriptorPath)

	data, err := s.fs.ReadFile(descriptorPath)
	if err != nil {
		project.LoadErr = fmt.Errorf("failed to read descriptor: %w", err)
		return project
	}

	// Cheap validity sniff before the full order-preserving parse
	if !gjson.ValidBytes(data) {
		project.LoadErr = fmt.Errorf("%w at %s", descriptor.ErrMalformed, descriptorPath)
	} else if doc, parseErr := descriptor.Parse(data); parseErr != nil {
		project.LoadErr = fmt.Errorf("%w at %s: %v", descriptor.ErrMalformed, descriptorPath, parseErr)
	} else {
		project.AppID, _ = doc.GetString(descriptor.KeyAppID)
		if name, ok := doc.GetString(descriptor.KeyProjectName); ok && name != "" {
			project.Name = name
			project.ProjectName = name
		}
	}

	s.attachScript(project)
	project.PreviewPaths = s.findPreviewImages(project.RootPath)

	return project
}

// attachScript resolves the companion script and reads its current values
func (s *Scanner) attachScript(project *models.Project) {
	scriptPath, ok := s.findScript(project.RootPath)
	if !ok {
		return
	}

	data, err := s.fs.ReadFile(scriptPath)
	if err != nil {
		return
	}
	text := string(data)

	project.ScriptPath = scriptPath
	project.ScriptAppID, _ = script.ExtractAppID(text)
	project.PlatformIDs, _ = script.ExtractPlatformIDs(text)
}

// findScript tries the well-known candidate paths first, then falls back
// to walking the project tree for any .js file mentioning a tracked key
func (s *Scanner) findScript(projectRoot string) (string, bool) {
	for _, candidate := range scriptCandidates {
		target := filepath.Join(projectRoot, candidate)
		if !s.fs.Exists(target) {
			continue
		}
		data, err := s.fs.ReadFile(target)
		if err != nil {
			continue
		}
		if script.MentionsTrackedField(string(data)) {
			return target, true
		}
	}

	var found string
	_ = s.fs.WalkDir(projectRoot, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil || entry.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".js" {
			return nil
		}

		data, err := s.fs.ReadFile(path)
		if err != nil {
			return nil
		}
		if script.MentionsTrackedField(string(data)) {
			found = path
			return filepath.SkipAll
		}
		return nil
	})

	return found, found != ""
}

func (s *Scanner) loadRootGitIgnore(root string) (gitignore.GitIgnore, error) {
	ignorePath := filepath.Join(root, ".gitignore")
	if !s.fs.Exists(ignorePath) {
		return nil, nil
	}

	data, err := s.fs.ReadFile(ignorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read .gitignore: %w", err)
	}

	return gitignore.New(bytes.NewReader(data), root, nil), nil
}
