package archive

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/minigame-tools/confpatch/internal/filesystem"
	"github.com/minigame-tools/confpatch/internal/models"
)

func TestPack_ArchivesProjectTree(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/work/jump/project.config.json", []byte(`{"appid": "tt1"}`))
	fs.AddFile("/work/jump/assets/main/index.js", []byte(`d.appId="tt1";`))
	fs.AddFile("/work/jump/previous.zip", []byte("stale archive"))
	fs.AddDir("/out")

	project := models.NewProject("/work/jump/project.config.json")
	project.Name = "jump-jump"

	zipPath, err := NewPacker(fs).Pack(project, "/out")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/out", "jump-jump.zip"), zipPath)

	data, err := fs.ReadFile(zipPath)
	require.NoError(t, err)

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	entries := map[string]string{}
	for _, file := range reader.File {
		rc, openErr := file.Open()
		require.NoError(t, openErr)
		content, readErr := io.ReadAll(rc)
		require.NoError(t, readErr)
		require.NoError(t, rc.Close())
		entries[file.Name] = string(content)
	}

	require.Len(t, entries, 2)
	require.Equal(t, `{"appid": "tt1"}`, entries["jump-jump/project.config.json"])
	require.Equal(t, `d.appId="tt1";`, entries["jump-jump/assets/main/index.js"])

	// earlier archives are never packed into the new one
	require.NotContains(t, entries, "jump-jump/previous.zip")
}

func TestPack_FallsBackToDirectoryName(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/work/unnamed/project.config.json", []byte(`{}`))
	fs.AddDir("/out")

	project := models.NewProject("/work/unnamed/project.config.json")
	project.Name = ""

	zipPath, err := NewPacker(fs).Pack(project, "/out")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/out", "unnamed.zip"), zipPath)
}
