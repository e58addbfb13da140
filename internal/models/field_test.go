package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	for _, valid := range []string{"appid", "projectname", "douyinIds"} {
		field, err := ParseField(valid)
		require.NoError(t, err)
		require.True(t, field.IsValid())
		require.Equal(t, valid, field.String())
	}

	_, err := ParseField("version")
	require.Error(t, err)
}

func TestField_Source(t *testing.T) {
	require.Equal(t, SourceDescriptor, FieldAppID.Source())
	require.Equal(t, SourceDescriptor, FieldProjectName.Source())
	require.Equal(t, SourceScript, FieldPlatformIDs.Source())
}

func TestProject_CurrentValue(t *testing.T) {
	project := &Project{
		AppID:       "tt1",
		ProjectName: "jump-jump",
		PlatformIDs: []string{"dy1", "dy2"},
	}

	require.Equal(t, "tt1", project.CurrentValue(FieldAppID))
	require.Equal(t, "jump-jump", project.CurrentValue(FieldProjectName))
	require.Equal(t, "dy1,dy2", project.CurrentValue(FieldPlatformIDs))
}
