package descriptor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/minigame-tools/confpatch/internal/filesystem"
)

func TestStore_ReadWriteRoundTrip(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/projects/jump/project.config.json", []byte(sampleDescriptor))

	store := NewStore(fs)

	doc, err := store.Read("/projects/jump/project.config.json")
	require.NoError(t, err)

	updated := doc.WithString(KeyAppID, "tt_new_app")
	require.NoError(t, store.Write("/projects/jump/project.config.json", updated))

	reread, err := store.Read("/projects/jump/project.config.json")
	require.NoError(t, err)

	appid, ok := reread.GetString(KeyAppID)
	require.True(t, ok)
	require.Equal(t, "tt_new_app", appid)

	name, ok := reread.GetString(KeyProjectName)
	require.True(t, ok)
	require.Equal(t, "jump-jump", name)
}

func TestStore_ReadMissingFile(t *testing.T) {
	store := NewStore(filesystem.NewMockFileSystem())

	_, err := store.Read("/nowhere/project.config.json")
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrMalformed))
}

func TestStore_ReadMalformedFile(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/projects/broken/project.config.json", []byte(`{"appid": `))

	store := NewStore(fs)

	_, err := store.Read("/projects/broken/project.config.json")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformed))
}
