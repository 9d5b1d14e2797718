package core

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"anonapi/internal/types"
)

// Section markers of the mapping file. Any other leading "## " token
// fails the whole load.
const (
	sectionDescription = "## Description"
	sectionDialect     = "## Dialect"
	sectionOptions     = "## Options"
	sectionGrid        = "## Grid"
)

// NewMapping returns an empty mapping with every global option present
// (empty options are still written out) and the given dialect.
func NewMapping(dialect types.Dialect, description string) types.Mapping {
	options := make([]types.Parameter, 0, len(GlobalFields))
	for _, field := range GlobalFields {
		options = append(options, NewParameter(field, ""))
	}
	return types.Mapping{
		Options:     options,
		Description: description,
		Dialect:     dialect,
	}
}

// ExampleMapping is the template written by `map init`: root source
// path pointing at the mapping's own folder plus two example rows.
func ExampleMapping(folder string, dialect types.Dialect, now time.Time) types.Mapping {
	mapping := NewMapping(dialect, "Mapping created "+now.Format("January 02, 2006"))
	SetOption(&mapping, NewParameter(types.FieldRootSourcePath, folder))
	_ = AddRow(&mapping,
		NewSourceParameter(types.Identifier{Kind: types.SourceKindFolder, Value: "example/folder1"}),
		NewParameter(types.FieldPatientID, "patient1"),
		NewParameter(types.FieldPatientName, "example_name_1"),
		NewParameter(types.FieldDescription, "All files from folder1"))
	_ = AddRow(&mapping,
		NewSourceParameter(types.Identifier{Kind: types.SourceKindStudyInstanceUID, Value: "123.12121212.12345678"}),
		NewParameter(types.FieldPatientID, "patient2"),
		NewParameter(types.FieldPatientName, "example_name_2"),
		NewParameter(types.FieldDescription, "Retrieved from PACS, then anonymized"))
	return mapping
}

// SetOption replaces or appends a global option. Option order is kept
// stable so saves stay deterministic.
func SetOption(m *types.Mapping, option types.Parameter) {
	for i, existing := range m.Options {
		if existing.Field == option.Field {
			m.Options[i] = option
			return
		}
	}
	m.Options = append(m.Options, option)
}

// AddRow appends one row built from the given parameters, normalized to
// the fixed grid column order. Missing job fields become absent values.
// Duplicate source identifiers across rows are permitted; deciding what
// to submit is up to the user.
func AddRow(m *types.Mapping, parameters ...types.Parameter) error {
	byField := map[types.FieldName]types.Parameter{}
	for _, p := range parameters {
		if !isJobField(p.Field) {
			return NewParameterParsingError(RenderParameter(p),
				fmt.Sprintf("field '%s' is not a job-level field", p.Field))
		}
		if strings.ContainsAny(ParameterValue(p), "\r\n") {
			return NewParameterParsingError(RenderParameter(p),
				"value may not contain line breaks")
		}
		byField[p.Field] = p
	}
	row := make([]types.Parameter, 0, len(JobFields))
	for _, field := range JobFields {
		if p, found := byField[field]; found {
			row = append(row, p)
			continue
		}
		empty, err := ParseFieldValue(field, "")
		if err != nil {
			return err
		}
		row = append(row, empty)
	}
	m.Rows = append(m.Rows, row)
	return nil
}

// RowSets returns one ParameterSet per row, each merging the row's own
// parameters over the mapping options as defaults. A row inherits the
// global destination, project and root path unless it carries its own.
func RowSets(m types.Mapping) []ParameterSet {
	sets := make([]ParameterSet, 0, len(m.Rows))
	for _, row := range m.Rows {
		sets = append(sets, NewParameterSet(row, m.Options))
	}
	return sets
}

// ValidateMapping checks the invariants a mapping must hold before it
// is written out. The persisted form is line-oriented, so a mapping
// that would serialize into something DeserializeMapping cannot read
// back (multi-line cell values, a description line that looks like a
// section marker) is rejected here instead of written.
func ValidateMapping(ctx context.Context, m types.Mapping) error {
	assert.NotEmpty(ctx, string(m.Dialect), "mapping dialect must be set")
	if m.Dialect != types.DialectLF && m.Dialect != types.DialectCRLF {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown mapping dialect '%s'", m.Dialect))
	}
	if m.Description != "" {
		for _, line := range strings.Split(m.Description, "\n") {
			if strings.HasPrefix(line, "## ") {
				return errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("mapping description line '%s' would be read back as a section marker", line))
			}
		}
	}
	for _, option := range m.Options {
		if !isGlobalField(option.Field) {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("field '%s' is not a mapping option", option.Field))
		}
		if strings.ContainsAny(ParameterValue(option), "\r\n") {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("option '%s' may not contain line breaks", option.Field))
		}
	}
	for _, row := range m.Rows {
		for _, p := range row {
			if strings.ContainsAny(ParameterValue(p), "\r\n") {
				return errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("row value for '%s' may not contain line breaks", p.Field))
			}
		}
	}
	return nil
}

// SerializeMapping writes the line-oriented text form. The persisted
// dialect fixes the line ending so that re-saving unchanged content on
// any machine reproduces the same bytes.
func SerializeMapping(m types.Mapping, w io.Writer) error {
	ending := lineEnding(m.Dialect)
	writeLine := func(line string) error {
		_, err := io.WriteString(w, line+ending)
		return err
	}
	if err := writeLine(sectionDescription); err != nil {
		return err
	}
	if m.Description != "" {
		for _, line := range strings.Split(m.Description, "\n") {
			if err := writeLine(line); err != nil {
				return err
			}
		}
	}
	if err := writeLine(sectionDialect); err != nil {
		return err
	}
	if err := writeLine(string(m.Dialect)); err != nil {
		return err
	}
	if err := writeLine(sectionOptions); err != nil {
		return err
	}
	records := csv.NewWriter(w)
	records.UseCRLF = m.Dialect == types.DialectCRLF
	for _, option := range m.Options {
		if err := records.Write([]string{string(option.Field), ParameterValue(option)}); err != nil {
			return err
		}
	}
	records.Flush()
	if err := records.Error(); err != nil {
		return err
	}
	if err := writeLine(sectionGrid); err != nil {
		return err
	}
	header := make([]string, 0, len(JobFields))
	for _, field := range JobFields {
		header = append(header, string(field))
	}
	if err := records.Write(header); err != nil {
		return err
	}
	for _, row := range m.Rows {
		byField := map[types.FieldName]types.Parameter{}
		for _, p := range row {
			byField[p.Field] = p
		}
		cells := make([]string, 0, len(JobFields))
		for _, field := range JobFields {
			cells = append(cells, ParameterValue(byField[field]))
		}
		if err := records.Write(cells); err != nil {
			return err
		}
	}
	records.Flush()
	return records.Error()
}

// DeserializeMapping parses the persisted text form. Any unrecognized
// leading token or field name fails the whole load; a corrupt or
// foreign file never yields a partial mapping.
func DeserializeMapping(r io.Reader) (types.Mapping, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return types.Mapping{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read mapping").
			WithCause(err)
	}
	text := string(data)
	lines := strings.Split(text, "\n")

	const (
		inNone = iota
		inDescription
		inDialect
		inOptions
		inGrid
	)
	section := inNone
	sawGrid := false
	var descriptionLines []string
	var mapping types.Mapping
	var header []types.FieldName

	for i, raw := range lines {
		lineNo := i + 1
		line := strings.TrimRight(raw, "\r")
		if strings.HasPrefix(line, "## ") {
			switch line {
			case sectionDescription:
				section = inDescription
			case sectionDialect:
				section = inDialect
			case sectionOptions:
				section = inOptions
			case sectionGrid:
				section = inGrid
				sawGrid = true
			default:
				return types.Mapping{}, NewMappingLoadError(lineNo, line, "unrecognized section marker")
			}
			continue
		}
		switch section {
		case inNone:
			if strings.TrimSpace(line) == "" {
				continue
			}
			return types.Mapping{}, NewMappingLoadError(lineNo, line, "content before any section marker")
		case inDescription:
			descriptionLines = append(descriptionLines, line)
		case inDialect:
			if strings.TrimSpace(line) == "" {
				continue
			}
			dialect := types.Dialect(strings.TrimSpace(line))
			if dialect != types.DialectLF && dialect != types.DialectCRLF {
				return types.Mapping{}, NewMappingLoadError(lineNo, line, "unknown dialect, expected lf or crlf")
			}
			mapping.Dialect = dialect
		case inOptions:
			if strings.TrimSpace(line) == "" {
				continue
			}
			option, err := parseOptionLine(line)
			if err != nil {
				return types.Mapping{}, NewMappingLoadError(lineNo, line, errText(err))
			}
			if !isGlobalField(option.Field) {
				return types.Mapping{}, NewMappingLoadError(lineNo, line,
					fmt.Sprintf("field '%s' is not a mapping option", option.Field))
			}
			mapping.Options = append(mapping.Options, option)
		case inGrid:
			if strings.TrimSpace(line) == "" {
				continue
			}
			record, err := parseCSVLine(line)
			if err != nil {
				return types.Mapping{}, NewMappingLoadError(lineNo, line, errText(err))
			}
			if header == nil {
				header, err = parseGridHeader(record)
				if err != nil {
					return types.Mapping{}, NewMappingLoadError(lineNo, line, errText(err))
				}
				continue
			}
			if len(record) > len(header) {
				return types.Mapping{}, NewMappingLoadError(lineNo, line, "row has more cells than the header")
			}
			row := make([]types.Parameter, 0, len(header))
			for idx, field := range header {
				cell := ""
				if idx < len(record) {
					cell = record[idx]
				}
				p, err := ParseFieldValue(field, cell)
				if err != nil {
					return types.Mapping{}, NewMappingLoadError(lineNo, line, errText(err))
				}
				row = append(row, p)
			}
			mapping.Rows = append(mapping.Rows, row)
		}
	}
	if !sawGrid {
		return types.Mapping{}, NewMappingLoadError(len(lines), "", "missing '## Grid' section")
	}
	mapping.Description = joinDescription(descriptionLines)
	if mapping.Dialect == "" {
		// Legacy files carry no dialect marker; infer it from the bytes.
		mapping.Dialect = types.DialectLF
		if strings.Contains(text, "\r\n") {
			mapping.Dialect = types.DialectCRLF
		}
	}
	return mapping, nil
}

// DisplayString renders a human-readable overview of options and rows.
func DisplayString(m types.Mapping) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Mapping with %d rows\n", len(m.Rows))
	if m.Description != "" {
		fmt.Fprintf(&b, "%s\n", m.Description)
	}
	b.WriteString("\nOptions:\n")
	for _, option := range m.Options {
		fmt.Fprintf(&b, "  %s: %s\n", option.Field, ParameterValue(option))
	}
	b.WriteString("\n")
	table := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	for i, field := range JobFields {
		if i > 0 {
			fmt.Fprint(table, "\t")
		}
		fmt.Fprint(table, field)
	}
	fmt.Fprintln(table)
	for _, row := range m.Rows {
		byField := map[types.FieldName]types.Parameter{}
		for _, p := range row {
			byField[p.Field] = p
		}
		for i, field := range JobFields {
			if i > 0 {
				fmt.Fprint(table, "\t")
			}
			fmt.Fprint(table, ParameterValue(byField[field]))
		}
		fmt.Fprintln(table)
	}
	table.Flush()
	return b.String()
}

func parseOptionLine(line string) (types.Parameter, error) {
	record, err := parseCSVLine(line)
	if err != nil {
		return types.Parameter{}, err
	}
	value := ""
	if len(record) > 1 {
		// Hand-edited unquoted values may contain commas; everything
		// after the field name is the value.
		value = strings.Join(record[1:], ",")
	}
	return ParseFieldValue(types.FieldName(record[0]), value)
}

func parseGridHeader(record []string) ([]types.FieldName, error) {
	header := make([]types.FieldName, 0, len(record))
	for _, cell := range record {
		field := types.FieldName(strings.TrimSpace(cell))
		if !isJobField(field) {
			return nil, fmt.Errorf("header field '%s' is not a job-level field", field)
		}
		header = append(header, field)
	}
	return header, nil
}

func parseCSVLine(line string) ([]string, error) {
	reader := csv.NewReader(strings.NewReader(line))
	reader.FieldsPerRecord = -1
	return reader.Read()
}

func joinDescription(lines []string) string {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

func lineEnding(dialect types.Dialect) string {
	if dialect == types.DialectCRLF {
		return "\r\n"
	}
	return "\n"
}

func isJobField(field types.FieldName) bool {
	for _, known := range JobFields {
		if known == field {
			return true
		}
	}
	return false
}

func isGlobalField(field types.FieldName) bool {
	for _, known := range GlobalFields {
		if known == field {
			return true
		}
	}
	return false
}

func errText(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
