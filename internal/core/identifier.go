package core

import (
	"fmt"
	"strings"

	"anonapi/internal/shared"
	"anonapi/internal/types"
)

// sourceKinds is the fixed registration order tried during parsing.
// First match wins.
var sourceKinds = []types.SourceKind{
	types.SourceKindBase,
	types.SourceKindFolder,
	types.SourceKindStudyInstanceUID,
	types.SourceKindAccessionNumber,
	types.SourceKindFileSelection,
	types.SourceKindPACSResource,
}

var pathKinds = map[types.SourceKind]struct{}{
	types.SourceKindFolder:        {},
	types.SourceKindFileSelection: {},
}

var pacsKinds = map[types.SourceKind]struct{}{
	types.SourceKindPACSResource:     {},
	types.SourceKindStudyInstanceUID: {},
	types.SourceKindAccessionNumber:  {},
}

// ParseIdentifier casts a "<kind>:<value>" string to an Identifier.
// The split happens at the first colon only; the value keeps any
// further colons (Windows paths).
func ParseIdentifier(raw string) (types.Identifier, error) {
	kind, value, found := strings.Cut(raw, ":")
	if !found {
		return types.Identifier{}, NewUnknownSourceIdentifierError(raw, "there should be a ':' between kind and value")
	}
	for _, known := range sourceKinds {
		if string(known) == kind {
			return types.Identifier{Kind: known, Value: value}, nil
		}
	}
	return types.Identifier{}, NewUnknownSourceIdentifierError(
		raw, fmt.Sprintf("known kinds: %s", kindNames()))
}

// IdentifierForObject maps a domain object to its identifier kind. The
// set of object kinds is fixed, so this is an exhaustive type switch
// rather than open-ended dispatch.
func IdentifierForObject(obj any) (types.Identifier, error) {
	switch v := obj.(type) {
	case types.FileSelection:
		return types.Identifier{Kind: types.SourceKindFileSelection, Value: v.DataFilePath}, nil
	default:
		return types.Identifier{}, NewUnknownSourceObjectError(fmt.Sprintf("%T", obj))
	}
}

func IdentifierString(id types.Identifier) string {
	return fmt.Sprintf("%s:%s", id.Kind, id.Value)
}

// IsPathKind reports whether the identifier kind carries a filesystem
// path as its value.
func IsPathKind(kind types.SourceKind) bool {
	_, ok := pathKinds[kind]
	return ok
}

// IsPACSKind reports whether the identifier kind refers to data inside
// the PACS system.
func IsPACSKind(kind types.SourceKind) bool {
	_, ok := pacsKinds[kind]
	return ok
}

// KindMatches reports whether kind satisfies a query kind. A query for
// pacs_resource matches every PACS kind, and a query for base matches
// any registered kind.
func KindMatches(kind types.SourceKind, query types.SourceKind) bool {
	if kind == query {
		return true
	}
	switch query {
	case types.SourceKindBase:
		return true
	case types.SourceKindPACSResource:
		return IsPACSKind(kind)
	default:
		return false
	}
}

// IsAbsoluteIdentifier reports whether a path-kind identifier holds an
// absolute path. Non-path kinds are never relative and never absolute.
func IsAbsoluteIdentifier(id types.Identifier) bool {
	return IsPathKind(id.Kind) && shared.IsAbsolutePath(id.Value)
}

func IsRelativeIdentifier(id types.Identifier) bool {
	return IsPathKind(id.Kind) && !shared.IsAbsolutePath(id.Value)
}

func kindNames() string {
	names := make([]string, 0, len(sourceKinds))
	for _, kind := range sourceKinds {
		names = append(names, string(kind))
	}
	return strings.Join(names, ", ")
}
