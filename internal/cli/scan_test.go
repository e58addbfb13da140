package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/minigame-tools/confpatch/internal/scanner"
)

func TestScanCommand_JSONOutput(t *testing.T) {
	fs := scanner.NewTreeBuilder("/work").
		AddProject("games/jump", "tt_jump", "jump-jump").
		AddScript("games/jump", "application.js", "tt_jump", []string{"dy1", "dy2"}).
		AddProject("games/runner", "tt_runner", "endless-runner").
		Build()

	var out bytes.Buffer
	cmd := NewScanCommand(fs)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"/work", "--format", "json"})

	require.NoError(t, cmd.Execute())

	var output ScanOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &output))

	require.Equal(t, "/work", output.Root)
	require.Len(t, output.Projects, 2)

	jump := output.Projects[0]
	require.Equal(t, "jump-jump", jump.Name)
	require.Equal(t, "tt_jump", jump.AppID)
	require.Equal(t, []string{"dy1", "dy2"}, jump.PlatformIDs)
	require.NotEmpty(t, jump.ScriptPath)
	require.Empty(t, jump.Error)

	runner := output.Projects[1]
	require.Equal(t, "endless-runner", runner.Name)
	require.Empty(t, runner.ScriptPath)
}

func TestScanCommand_TextOutputMarksBrokenProjects(t *testing.T) {
	fs := scanner.NewTreeBuilder("/work").
		AddProject("good", "tt_good", "good-game").
		AddMalformedProject("broken").
		Build()

	var out bytes.Buffer
	cmd := NewScanCommand(fs)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"/work"})

	require.NoError(t, cmd.Execute())

	text := out.String()
	require.Contains(t, text, "Found 2 project(s)")
	require.Contains(t, text, "✓ good-game")
	require.Contains(t, text, "✗ broken")
	require.Contains(t, text, "error:")
}

func TestScanCommand_UsesWorkingDirectoryWithoutArgument(t *testing.T) {
	fs := scanner.NewTreeBuilder("/work").
		AddProject("jump", "tt_jump", "jump-jump").
		Build()

	var out bytes.Buffer
	cmd := NewScanCommand(fs)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "jump-jump")
}

func TestScanCommand_NoProjects(t *testing.T) {
	fs := scanner.NewTreeBuilder("/work").Build()

	cmd := NewScanCommand(fs)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"/work"})

	require.Error(t, cmd.Execute())
}
