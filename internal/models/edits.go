package models

import (
	"strings"
)

// EditSet carries the operator-entered new values for a batch run. A nil
// pointer (or nil slice) means the field was not edited.
type EditSet struct {
	AppID       *string
	ProjectName *string
	PlatformIDs []string
}

// IsEmpty reports whether no field was edited
func (e EditSet) IsEmpty() bool {
	return e.AppID == nil && e.ProjectName == nil && e.PlatformIDs == nil
}

// Fields returns the edited fields in a fixed order
func (e EditSet) Fields() []Field {
	var fields []Field
	if e.AppID != nil {
		fields = append(fields, FieldAppID)
	}
	if e.ProjectName != nil {
		fields = append(fields, FieldProjectName)
	}
	if e.PlatformIDs != nil {
		fields = append(fields, FieldPlatformIDs)
	}
	return fields
}

// ParsePlatformIDs splits operator input into a platform id list. Input is
// comma-separated; whitespace and surrounding quotes per token are
// dropped, empty tokens too.
func ParsePlatformIDs(input string) []string {
	ids := []string{}
	for _, part := range strings.Split(input, ",") {
		id := strings.TrimSpace(part)
		id = strings.Trim(id, `"'`)
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// JoinPlatformIDs renders a platform id list back into the editable
// comma-separated form
func JoinPlatformIDs(ids []string) string {
	return strings.Join(ids, ",")
}

// EqualPlatformIDs compares two id lists element-wise
func EqualPlatformIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
