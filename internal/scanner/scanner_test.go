package scanner

import (
	"bytes"
	"image"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScan_DiscoversProjects(t *testing.T) {
	fs := NewTreeBuilder("/work").
		AddProject("games/jump", "tt_jump", "jump-jump").
		AddProject("games/runner", "tt_runner", "endless-runner").
		AddFile("games/README.md", []byte("not a project")).
		Build()

	scanner := New(fs)

	projects, err := scanner.Scan("/work")
	require.NoError(t, err)
	require.Len(t, projects, 2)

	require.Equal(t, "jump-jump", projects[0].Name)
	require.Equal(t, "tt_jump", projects[0].AppID)
	require.Equal(t, filepath.Join("/work", "games", "jump"), projects[0].RootPath)
	require.NoError(t, projects[0].LoadErr)

	require.Equal(t, "endless-runner", projects[1].Name)
	require.Equal(t, "tt_runner", projects[1].AppID)
}

func TestScan_MissingRoot(t *testing.T) {
	fs := NewTreeBuilder("/work").Build()

	_, err := New(fs).Scan("/elsewhere")
	require.Error(t, err)
}

func TestScan_MalformedDescriptorStaysListed(t *testing.T) {
	fs := NewTreeBuilder("/work").
		AddProject("good", "tt_good", "good-game").
		AddMalformedProject("broken").
		Build()

	projects, err := New(fs).Scan("/work")
	require.NoError(t, err)
	require.Len(t, projects, 2)

	byName := map[string]bool{}
	for _, p := range projects {
		byName[filepath.Base(p.RootPath)] = p.LoadErr != nil
	}

	require.False(t, byName["good"])
	require.True(t, byName["broken"])
}

func TestScan_FallsBackToDirectoryNameWithoutProjectName(t *testing.T) {
	fs := NewTreeBuilder("/work").
		AddFile("unnamed/project.config.json", []byte(`{"appid": "tt_x"}`)).
		Build()

	projects, err := New(fs).Scan("/work")
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, "unnamed", projects[0].Name)
	require.Equal(t, "tt_x", projects[0].AppID)
}

func TestScan_HonorsGitIgnore(t *testing.T) {
	fs := NewTreeBuilder("/work").
		AddFile(".gitignore", []byte("build/\n")).
		AddProject("keep", "tt_keep", "kept").
		AddProject("build/dist", "tt_drop", "dropped").
		Build()

	projects, err := New(fs).Scan("/work")
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, "kept", projects[0].Name)
}

func TestScan_RespectsMaxDepth(t *testing.T) {
	// descriptors live at depth 3 and 5 below the root; the limit counts
	// the descriptor file itself
	fs := NewTreeBuilder("/work").
		AddProject("a/shallow", "tt_shallow", "shallow").
		AddProject("a/b/c/deep", "tt_deep", "deep").
		Build()

	projects, err := New(fs, WithMaxDepth(3)).Scan("/work")
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, "shallow", projects[0].Name)

	projects, err = New(fs).Scan("/work")
	require.NoError(t, err)
	require.Len(t, projects, 2)
}

func TestScan_DescriptorAtTheDepthLimitIsFound(t *testing.T) {
	fs := NewTreeBuilder("/work").
		AddProject("a/b/c/edge", "tt_edge", "edge").
		AddProject("a/b/c/d/beyond", "tt_beyond", "beyond").
		Build()

	projects, err := New(fs).Scan("/work")
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, "edge", projects[0].Name)
}

func TestScan_AttachesScriptFromCandidatePath(t *testing.T) {
	fs := NewTreeBuilder("/work").
		AddProject("jump", "tt_jump", "jump-jump").
		AddScript("jump", filepath.Join("assets", "main", "index.js"), "tt_jump", []string{"dy1", "dy2"}).
		Build()

	projects, err := New(fs).Scan("/work")
	require.NoError(t, err)
	require.Len(t, projects, 1)

	project := projects[0]
	require.True(t, project.HasScript())
	require.Equal(t, filepath.Join("/work", "jump", "assets", "main", "index.js"), project.ScriptPath)
	require.Equal(t, "tt_jump", project.ScriptAppID)
	require.Equal(t, []string{"dy1", "dy2"}, project.PlatformIDs)
}

func TestScan_FuzzyScriptFallback(t *testing.T) {
	fs := NewTreeBuilder("/work").
		AddProject("jump", "tt_jump", "jump-jump").
		AddFile("jump/libs/vendor.js", []byte(`var unrelated = true;`)).
		AddScript("jump", filepath.Join("src", "bundle.oddname.js"), "tt_jump", []string{"dy1"}).
		Build()

	projects, err := New(fs).Scan("/work")
	require.NoError(t, err)
	require.Len(t, projects, 1)

	project := projects[0]
	require.True(t, project.HasScript())
	require.Equal(t, filepath.Join("/work", "jump", "src", "bundle.oddname.js"), project.ScriptPath)
	require.Equal(t, []string{"dy1"}, project.PlatformIDs)
}

func TestScan_NoScriptLeavesProjectWithoutOne(t *testing.T) {
	fs := NewTreeBuilder("/work").
		AddProject("bare", "tt_bare", "bare-game").
		Build()

	projects, err := New(fs).Scan("/work")
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.False(t, projects[0].HasScript())
	require.Empty(t, projects[0].PlatformIDs)
}

func TestScan_FindsPreviewImagesByWidth(t *testing.T) {
	fs := NewTreeBuilder("/work").
		AddProject("jump", "tt_jump", "jump-jump").
		AddFile("jump/preview.png", encodePNG(t, 750, 1334)).
		AddFile("jump/icon.png", encodePNG(t, 192, 192)).
		AddFile("jump/notes.txt", []byte("not an image")).
		Build()

	projects, err := New(fs).Scan("/work")
	require.NoError(t, err)
	require.Len(t, projects, 1)

	require.Equal(t, []string{filepath.Join("/work", "jump", "preview.png")}, projects[0].PreviewPaths)
}

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()

	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
