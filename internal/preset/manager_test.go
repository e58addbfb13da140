package preset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/minigame-tools/confpatch/internal/filesystem"
	"github.com/minigame-tools/confpatch/internal/models"
)

func newTestManager() (*Manager, *filesystem.MockFileSystem) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/work")
	return NewManager(fs, filepath.Join("/work", Dirname)), fs
}

func stringPtr(s string) *string {
	return &s
}

func TestManager_WriteReadRoundTrip(t *testing.T) {
	manager, _ := newTestManager()

	preset := &Preset{
		ID: "bright_falcon_V1StGXR8",
		Edits: models.EditSet{
			AppID:       stringPtr("tt_release"),
			ProjectName: stringPtr("jump-jump"),
			PlatformIDs: []string{"dy1", "dy2"},
		},
		Note: "Release channel values for the spring batch.",
	}

	require.NoError(t, manager.Write(preset))
	require.Equal(t, filepath.Join("/work", Dirname, "bright_falcon_V1StGXR8.md"), preset.FilePath)

	loaded, err := manager.Get("bright_falcon_V1StGXR8")
	require.NoError(t, err)

	require.Equal(t, preset.ID, loaded.ID)
	require.Equal(t, "tt_release", *loaded.Edits.AppID)
	require.Equal(t, "jump-jump", *loaded.Edits.ProjectName)
	require.Equal(t, []string{"dy1", "dy2"}, loaded.Edits.PlatformIDs)
	require.Equal(t, "Release channel values for the spring batch.", loaded.Note)
}

func TestManager_WriteOmitsUnsetFields(t *testing.T) {
	manager, _ := newTestManager()

	preset := &Preset{
		ID:    "only_appid",
		Edits: models.EditSet{AppID: stringPtr("tt1")},
	}

	require.NoError(t, manager.Write(preset))

	loaded, err := manager.Get("only_appid")
	require.NoError(t, err)
	require.Equal(t, "tt1", *loaded.Edits.AppID)
	require.Nil(t, loaded.Edits.ProjectName)
	require.Nil(t, loaded.Edits.PlatformIDs)
}

func TestManager_ParseRejectsEmptyEditSet(t *testing.T) {
	manager, _ := newTestManager()

	_, err := manager.Parse("empty.md", []byte("---\nunrelated: true\n---\n\nJust a note.\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "no tracked fields")
}

func TestManager_GetMissingPreset(t *testing.T) {
	manager, _ := newTestManager()

	_, err := manager.Get("does_not_exist")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestManager_ReadAll(t *testing.T) {
	manager, fs := newTestManager()

	require.NoError(t, manager.Write(&Preset{
		ID:    "first",
		Edits: models.EditSet{AppID: stringPtr("tt1")},
	}))
	require.NoError(t, manager.Write(&Preset{
		ID:    "second",
		Edits: models.EditSet{PlatformIDs: []string{"dy1"}},
	}))

	// non-preset files in the directory are skipped
	fs.AddFile(filepath.Join("/work", Dirname, "notes.txt"), []byte("ignore me"))

	presets, err := manager.ReadAll()
	require.NoError(t, err)
	require.Len(t, presets, 2)
}

func TestManager_ReadAllWithoutDirectory(t *testing.T) {
	manager, _ := newTestManager()

	presets, err := manager.ReadAll()
	require.NoError(t, err)
	require.Empty(t, presets)
}
