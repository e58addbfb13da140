package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEditSet_IsEmpty(t *testing.T) {
	require.True(t, EditSet{}.IsEmpty())

	appID := "tt1"
	require.False(t, EditSet{AppID: &appID}.IsEmpty())
	require.False(t, EditSet{PlatformIDs: []string{}}.IsEmpty())
}

func TestEditSet_FieldsInFixedOrder(t *testing.T) {
	appID := "tt1"
	name := "renamed"

	edits := EditSet{
		PlatformIDs: []string{"dy1"},
		ProjectName: &name,
		AppID:       &appID,
	}

	require.Equal(t, []Field{FieldAppID, FieldProjectName, FieldPlatformIDs}, edits.Fields())
}

func TestParsePlatformIDs(t *testing.T) {
	cases := []struct {
		input    string
		expected []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b ", []string{"a", "b"}},
		{`"a", 'b'`, []string{"a", "b"}},
		{"a,,b,", []string{"a", "b"}},
		{"", []string{}},
		{" , ", []string{}},
	}

	for _, tc := range cases {
		require.Equal(t, tc.expected, ParsePlatformIDs(tc.input), "input %q", tc.input)
	}
}

func TestJoinPlatformIDs_RoundTripsThroughParse(t *testing.T) {
	ids := []string{"dy_one", "dy_two", "dy_three"}
	require.Equal(t, ids, ParsePlatformIDs(JoinPlatformIDs(ids)))
}

func TestEqualPlatformIDs(t *testing.T) {
	require.True(t, EqualPlatformIDs(nil, nil))
	require.True(t, EqualPlatformIDs([]string{"a"}, []string{"a"}))
	require.False(t, EqualPlatformIDs([]string{"a"}, []string{"b"}))
	require.False(t, EqualPlatformIDs([]string{"a"}, []string{"a", "b"}))
	require.True(t, EqualPlatformIDs(nil, []string{}))
}
