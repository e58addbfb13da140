package scanner

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/minigame-tools/confpatch/internal/descriptor"
	"github.com/minigame-tools/confpatch/internal/filesystem"
)

// TreeBuilder helps create test project trees
type TreeBuilder struct {
	fs   *filesystem.MockFileSystem
	root string
}

// NewTreeBuilder creates a new TreeBuilder rooted at root
func NewTreeBuilder(root string) *TreeBuilder {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir(root)
	fs.SetCurrentDir(root)

	return &TreeBuilder{
		fs:   fs,
		root: root,
	}
}

// AddProject adds a project with a well-formed descriptor. Extra keys
// beyond the tracked ones are included so preservation is observable.
func (tb *TreeBuilder) AddProject(path, appID, projectName string) *TreeBuilder {
	content := fmt.Sprintf(`{
  "appid": %q,
  "projectname": %q,
  "setting": {
    "es6": true,
    "minified": false
  },
  "compileType": "minigame",
  "libVersion": 2
}
`, appID, projectName)

	tb.fs.AddFile(filepath.Join(tb.root, path, descriptor.Filename), []byte(content))
	return tb
}

// AddMalformedProject adds a project whose descriptor is not valid JSON
func (tb *TreeBuilder) AddMalformedProject(path string) *TreeBuilder {
	tb.fs.AddFile(filepath.Join(tb.root, path, descriptor.Filename), []byte(`{"appid": "tt1", `))
	return tb
}

// AddScript adds a companion script in the minified-bundle form the
// platform emits
func (tb *TreeBuilder) AddScript(projectPath, scriptRel, appID string, platformIDs []string) *TreeBuilder {
	quoted := make([]string, len(platformIDs))
	for i, id := range platformIDs {
		quoted[i] = fmt.Sprintf("%q", id)
	}

	content := fmt.Sprintf(
		`"use strict";var d=e.exports;d.rewardVideoAd=void 0,d.nowid=0,d.appId=%q,d.douyinIds=[%s],e._RF.pop();`,
		appID, strings.Join(quoted, ","),
	)

	tb.fs.AddFile(filepath.Join(tb.root, projectPath, scriptRel), []byte(content))
	return tb
}

// AddFile adds an arbitrary file under the root
func (tb *TreeBuilder) AddFile(rel string, content []byte) *TreeBuilder {
	tb.fs.AddFile(filepath.Join(tb.root, rel), content)
	return tb
}

// Build returns the mock filesystem
func (tb *TreeBuilder) Build() *filesystem.MockFileSystem {
	return tb.fs
}
