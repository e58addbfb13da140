package preset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func TestGeneratePresetID(t *testing.T) {
	ids := make(map[string]bool)

	for i := 0; i < 10; i++ {
		id, err := generatePresetID()
		require.NoError(t, err)

		parts := strings.Split(id, "_")
		require.Len(t, parts, 3, "expected adjective_animal_nanoid format: %s", id)

		require.Truef(t, contains(adjectives, parts[0]), "first part should be adjective: %s", parts[0])
		require.Truef(t, contains(animals, parts[1]), "second part should be animal: %s", parts[1])
		require.Len(t, parts[2], 8, "nanoid portion wrong length: %s", parts[2])

		require.Falsef(t, ids[id], "duplicate ID generated: %s", id)
		ids[id] = true
	}

	require.Len(t, ids, 10)
}
