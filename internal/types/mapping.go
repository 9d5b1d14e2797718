package types

// Identifier names where source data comes from. The text form is
// "<kind>:<value>"; the value may itself contain colons (Windows paths),
// so text is split at the first colon only.
type Identifier struct {
	Kind  SourceKind
	Value string
}

// Parameter is a single named, optionally-empty value used in job
// creation or mapping options. For FieldSource the payload lives in
// Source and Value is empty.
type Parameter struct {
	Field  FieldName
	Value  string
	Source *Identifier
}

// Mapping is the persisted table of global options plus per-job rows
// describing a batch of anonymization jobs to create. Row order is
// user-entered order and is preserved across load/save.
type Mapping struct {
	Options     []Parameter
	Rows        [][]Parameter
	Description string
	Dialect     Dialect
}
