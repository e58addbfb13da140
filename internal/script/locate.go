// Package script extracts and rewrites configuration assignments in the
// companion script files via pattern matching. It is deliberately not a
// JavaScript parser: the files are often minified bundles, and the point
// is to touch only the matched value and leave every other byte alone.
package script

import (
	"regexp"
	"strings"

	"github.com/minigame-tools/confpatch/internal/models"
)

// Span is a byte-offset range into the script text covering the value of
// one recognized assignment. For the app id the span excludes the quotes;
// for the platform id list it covers the inside of the brackets.
type Span struct {
	Start int
	End   int
}

// Recognized assignment forms, covering both plain assignments
// (appId="x") and object-literal members (appId: "x"). Only the first
// occurrence in document order is authoritative; later duplicates are
// ignored.
var (
	appIDPattern       = regexp.MustCompile(`appId\s*[=:]\s*(["'])([^"']*)(["'])`)
	platformIDsPattern = regexp.MustCompile(`douyinIds\s*[=:]\s*\[([^\]]*)\]`)
)

// Locate finds the value span of a field assignment in the script text.
// It returns false when no recognized assignment exists; the caller
// reports the field as absent rather than synthesizing one.
func Locate(text string, field models.Field) (Span, bool) {
	switch field {
	case models.FieldAppID:
		m := appIDPattern.FindStringSubmatchIndex(text)
		if m == nil {
			return Span{}, false
		}
		return Span{Start: m[4], End: m[5]}, true
	case models.FieldPlatformIDs:
		m := platformIDsPattern.FindStringSubmatchIndex(text)
		if m == nil {
			return Span{}, false
		}
		return Span{Start: m[2], End: m[3]}, true
	default:
		return Span{}, false
	}
}

// ExtractAppID returns the current app id value, or false when the
// script has no recognizable assignment
func ExtractAppID(text string) (string, bool) {
	span, ok := Locate(text, models.FieldAppID)
	if !ok {
		return "", false
	}
	return text[span.Start:span.End], true
}

// ExtractPlatformIDs returns the current platform id list, or false when
// the script has no recognizable assignment. Empty tokens are dropped.
func ExtractPlatformIDs(text string) ([]string, bool) {
	span, ok := Locate(text, models.FieldPlatformIDs)
	if !ok {
		return nil, false
	}

	inner := text[span.Start:span.End]
	ids := []string{}
	for _, part := range strings.Split(inner, ",") {
		id := strings.TrimSpace(part)
		id = strings.Trim(id, `"'`)
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids, true
}

// MentionsTrackedField is a cheap pre-check used by the scanner to skip
// unrelated script files before pattern matching
func MentionsTrackedField(text string) bool {
	return strings.Contains(text, "appId") || strings.Contains(text, "douyinIds")
}
