package script

import (
	"errors"
	"strings"

	"github.com/minigame-tools/confpatch/internal/models"
)

// ErrFieldNotFound marks a script with no recognizable assignment for the
// requested field. The text is returned unmodified in that case; the
// caller decides whether to skip or report.
var ErrFieldNotFound = errors.New("field not found in script")

// PatchAppID replaces the app id literal in the first recognized
// assignment, keeping the original quote style and every other byte of
// the file.
func PatchAppID(text, newValue string) (string, error) {
	span, ok := Locate(text, models.FieldAppID)
	if !ok {
		return text, ErrFieldNotFound
	}

	return text[:span.Start] + sanitizeLiteral(newValue) + text[span.End:], nil
}

// PatchPlatformIDs replaces the bracketed id list in the first recognized
// assignment with a freshly rendered double-quoted, comma-separated
// sequence. Text outside the brackets is untouched.
func PatchPlatformIDs(text string, ids []string) (string, error) {
	span, ok := Locate(text, models.FieldPlatformIDs)
	if !ok {
		return text, ErrFieldNotFound
	}

	rendered := make([]string, 0, len(ids))
	for _, id := range ids {
		rendered = append(rendered, `"`+sanitizeLiteral(id)+`"`)
	}

	return text[:span.Start] + strings.Join(rendered, ", ") + text[span.End:], nil
}

// sanitizeLiteral strips quote characters and backslashes from a value so
// the rewritten assignment stays well-formed and re-matchable. The
// identifiers we edit never legitimately contain them.
func sanitizeLiteral(s string) string {
	return strings.NewReplacer(`"`, "", `'`, "", `\`, "").Replace(s)
}
