package models

import (
	"fmt"
)

// Field identifies one of the tracked configuration fields.
//
// The vocabulary is deliberately closed: the tool edits exactly these
// fields and nothing else.
type Field string

const (
	// FieldAppID is the application identifier. It lives in the
	// descriptor ("appid") and is mirrored in the script file ("appId").
	FieldAppID Field = "appid"

	// FieldProjectName is the display name ("projectname" in the descriptor).
	FieldProjectName Field = "projectname"

	// FieldPlatformIDs is the platform identifier list ("douyinIds" in
	// the script file).
	FieldPlatformIDs Field = "douyinIds"
)

// IsValid checks if the field is part of the tracked vocabulary
func (f Field) IsValid() bool {
	switch f {
	case FieldAppID, FieldProjectName, FieldPlatformIDs:
		return true
	default:
		return false
	}
}

// String returns the string representation of Field
func (f Field) String() string {
	return string(f)
}

// SourceKind describes which document a field is read from and written to.
type SourceKind string

const (
	SourceDescriptor SourceKind = "descriptor"
	SourceScript     SourceKind = "script"
)

// Source returns the document kind a field lives in. The app id is
// descriptor-owned; its script mirror is handled by the sync rule.
func (f Field) Source() SourceKind {
	if f == FieldPlatformIDs {
		return SourceScript
	}
	return SourceDescriptor
}

// ParseField parses a string into a Field
func ParseField(s string) (Field, error) {
	f := Field(s)
	if !f.IsValid() {
		return "", fmt.Errorf("unknown field: %s (must be appid, projectname, or douyinIds)", s)
	}
	return f, nil
}
