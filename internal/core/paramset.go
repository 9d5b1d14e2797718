package core

import (
	"anonapi/internal/types"
)

// ParameterSet is a collection of parameters de-duplicated by field:
// at most one parameter per field is retained. Treat as an immutable
// view once built.
type ParameterSet struct {
	parameters []types.Parameter
}

// NewParameterSet builds a set from explicit parameters plus defaults.
// Defaults are a strict fallback: a field present in parameters always
// wins over the same field in defaults. Insertion order is preserved,
// defaults first.
func NewParameterSet(parameters []types.Parameter, defaults []types.Parameter) ParameterSet {
	index := map[types.FieldName]int{}
	var merged []types.Parameter
	for _, lists := range [][]types.Parameter{defaults, parameters} {
		for _, p := range lists {
			if at, found := index[p.Field]; found {
				merged[at] = p
				continue
			}
			index[p.Field] = len(merged)
			merged = append(merged, p)
		}
	}
	return ParameterSet{parameters: merged}
}

// Get returns the parameter for a field, if present.
func (s ParameterSet) Get(field types.FieldName) (types.Parameter, bool) {
	for _, p := range s.parameters {
		if p.Field == field {
			return p, true
		}
	}
	return types.Parameter{}, false
}

// Value returns the rendered value for a field, or "" when absent.
func (s ParameterSet) Value(field types.FieldName) string {
	p, found := s.Get(field)
	if !found {
		return ""
	}
	return ParameterValue(p)
}

// All returns the parameters in insertion order.
func (s ParameterSet) All() []types.Parameter {
	return append([]types.Parameter(nil), s.parameters...)
}

// SourceIdentifier returns the identifier held by the source parameter,
// if the set has one with a value.
func (s ParameterSet) SourceIdentifier() (types.Identifier, bool) {
	p, found := s.Get(types.FieldSource)
	if !found || p.Source == nil {
		return types.Identifier{}, false
	}
	return *p.Source, true
}

// SourcesOfKind returns every source parameter whose identifier kind
// matches the query, honoring kind subtyping (a pacs_resource query
// matches all PACS kinds).
func (s ParameterSet) SourcesOfKind(query types.SourceKind) []types.Parameter {
	var matches []types.Parameter
	for _, p := range s.parameters {
		if p.Field == types.FieldSource && p.Source != nil && KindMatches(p.Source.Kind, query) {
			matches = append(matches, p)
		}
	}
	return matches
}

// IsPathSource reports whether the parameter points at data on a share
// or disk.
func IsPathSource(p types.Parameter) bool {
	return p.Field == types.FieldSource && p.Source != nil && IsPathKind(p.Source.Kind)
}

// IsPACSSource reports whether the parameter points at data inside the
// PACS system.
func IsPACSSource(p types.Parameter) bool {
	return p.Field == types.FieldSource && p.Source != nil && IsPACSKind(p.Source.Kind)
}
