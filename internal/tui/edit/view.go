package edit

import (
	"fmt"
	"strings"

	"github.com/minigame-tools/confpatch/internal/tui"
)

// RenderResult renders a summary after a flow run.
func RenderResult(result *Result) string {
	var b strings.Builder

	if result.Report.HasFailures() {
		b.WriteString(tui.WarnStyle.Render("⚠ Batch finished with failures"))
	} else {
		b.WriteString(tui.SuccessStyle.Render("✓ Batch applied"))
	}
	b.WriteString("\n\n")
	b.WriteString(result.Report.Describe())
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Run %s: %s\n", result.Report.RunID, result.Report.Summary()))

	return b.String()
}
