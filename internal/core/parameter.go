// Package core holds the parameter and mapping domain model: typed
// identifiers and parameters, the de-duplicated parameter set, the
// mapping grid with its line-oriented serialization, and batch id
// merging. Everything here is pure; file and network I/O live in the
// adapters.
package core

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"anonapi/internal/shared"
	"anonapi/internal/types"
)

// JobFields is the fixed column order of the mapping grid.
var JobFields = []types.FieldName{
	types.FieldSource,
	types.FieldPatientID,
	types.FieldPatientName,
	types.FieldDescription,
}

// GlobalFields are the option fields that apply to every row unless the
// row overrides them.
var GlobalFields = []types.FieldName{
	types.FieldRootSourcePath,
	types.FieldDestinationPath,
	types.FieldProject,
	types.FieldPIMSKey,
}

var allFields = append(append([]types.FieldName{}, JobFields...), GlobalFields...)

// NewParameter builds a plain-valued parameter. Empty values are valid;
// a parameter without a value is absent, not broken.
func NewParameter(field types.FieldName, value string) types.Parameter {
	return types.Parameter{Field: field, Value: value}
}

// NewSourceParameter builds the source parameter holding an Identifier.
func NewSourceParameter(id types.Identifier) types.Parameter {
	return types.Parameter{Field: types.FieldSource, Source: &id}
}

// ParseParameterLine splits "<field_name>,<value>" at the first comma
// and dispatches to ParseFieldValue.
func ParseParameterLine(line string) (types.Parameter, error) {
	field, value, found := strings.Cut(line, ",")
	if !found {
		return types.Parameter{}, NewParameterParsingError(line, "there should be a ',' between field name and value")
	}
	return ParseFieldValue(types.FieldName(field), value)
}

// ParseFieldValue looks the field name up against every registered
// parameter field and constructs the matching parameter. An identifier
// parse failure inside a source value is wrapped so the caller sees
// both messages.
func ParseFieldValue(field types.FieldName, value string) (types.Parameter, error) {
	if !KnownField(field) {
		return types.Parameter{}, NewParameterParsingError(
			fmt.Sprintf("%s,%s", field, value),
			fmt.Sprintf("unknown field '%s', known fields: %s", field, fieldNames()))
	}
	if field == types.FieldSource {
		if value == "" {
			return types.Parameter{Field: types.FieldSource}, nil
		}
		id, err := ParseIdentifier(value)
		if err != nil {
			return types.Parameter{}, NewParameterParsingError(value, errText(err))
		}
		return NewSourceParameter(id), nil
	}
	return NewParameter(field, value), nil
}

func KnownField(field types.FieldName) bool {
	for _, known := range allFields {
		if known == field {
			return true
		}
	}
	return false
}

// RenderParameter is the inverse of ParseParameterLine.
func RenderParameter(p types.Parameter) string {
	return fmt.Sprintf("%s,%s", p.Field, ParameterValue(p))
}

// ParameterValue renders the payload as text: the identifier string for
// source parameters, the plain value otherwise.
func ParameterValue(p types.Parameter) string {
	if p.Field == types.FieldSource {
		if p.Source == nil {
			return ""
		}
		return IdentifierString(*p.Source)
	}
	return p.Value
}

func HasValue(p types.Parameter) bool {
	return ParameterValue(p) != ""
}

// IsPathParameter reports whether the parameter payload is a filesystem
// path: the two path option fields, and source parameters whose
// identifier is path-kind.
func IsPathParameter(p types.Parameter) bool {
	switch p.Field {
	case types.FieldDestinationPath, types.FieldRootSourcePath:
		return true
	case types.FieldSource:
		return p.Source != nil && IsPathKind(p.Source.Kind)
	default:
		return false
	}
}

func parameterPath(p types.Parameter) string {
	if p.Field == types.FieldSource {
		return p.Source.Value
	}
	return p.Value
}

func IsAbsoluteParameter(p types.Parameter) bool {
	return IsPathParameter(p) && shared.IsAbsolutePath(parameterPath(p))
}

func IsRelativeParameter(p types.Parameter) bool {
	return IsPathParameter(p) && !shared.IsAbsolutePath(parameterPath(p))
}

// AsAbsolute returns a copy of a path parameter with its path rooted
// under root. An already-absolute path is validated to sit under root
// and returned unchanged; a relative path is prefixed with root. The
// input parameter is never mutated.
func AsAbsolute(p types.Parameter, root string) (types.Parameter, error) {
	if !IsPathParameter(p) {
		return types.Parameter{}, NewParameterParsingError(
			RenderParameter(p), fmt.Sprintf("field '%s' does not hold a path", p.Field))
	}
	path := parameterPath(p)
	if shared.IsAbsolutePath(path) {
		if _, ok := shared.RelativeTo(path, root); !ok {
			return types.Parameter{}, NewPathNotUnderRootError(path, root)
		}
		return p, nil
	}
	absolute := filepath.Join(root, path)
	if p.Field == types.FieldSource {
		return NewSourceParameter(types.Identifier{Kind: p.Source.Kind, Value: absolute}), nil
	}
	return NewParameter(p.Field, absolute), nil
}

const pseudoNameAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// PseudoPatientName returns a random placeholder pseudonym, used to
// pre-fill rows added from bulk folder scans so the row is valid before
// a human edits it.
func PseudoPatientName() string {
	return "autogenerated_" + shared.RandomToken(5, pseudoNameAlphabet)
}

// PseudoPatientID returns a random 8-digit placeholder id.
func PseudoPatientID() string {
	return "auto_" + shared.RandomToken(8, "0123456789")
}

// PseudoDescription returns a placeholder description stamped with the
// given date.
func PseudoDescription(now time.Time) string {
	return "auto generated_" + now.Format("January 02, 2006")
}

func fieldNames() string {
	names := make([]string, 0, len(allFields))
	for _, field := range allFields {
		names = append(names, string(field))
	}
	return strings.Join(names, ", ")
}
