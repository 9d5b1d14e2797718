package core

import (
	"errors"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anonapi/internal/types"
)

func builderMsg(t *testing.T, err error) string {
	t.Helper()
	var builder *errbuilder.ErrBuilder
	require.True(t, errors.As(err, &builder), "expected an errbuilder error, got %v", err)
	return builder.Msg
}

func TestParseIdentifier(t *testing.T) {
	tests := []struct {
		raw   string
		kind  types.SourceKind
		value string
	}{
		{"base:something", types.SourceKindBase, "something"},
		{"folder:/tmp/data", types.SourceKindFolder, "/tmp/data"},
		{"study_instance_uid:123.1234.567", types.SourceKindStudyInstanceUID, "123.1234.567"},
		{"accession_number:12345678.1234567", types.SourceKindAccessionNumber, "12345678.1234567"},
		{"pacs_resource:key123", types.SourceKindPACSResource, "key123"},
		{"fileselection:a_folder/fileselection.txt", types.SourceKindFileSelection, "a_folder/fileselection.txt"},
	}
	for _, tt := range tests {
		id, err := ParseIdentifier(tt.raw)
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.kind, id.Kind)
		assert.Equal(t, tt.value, id.Value)
		assert.Equal(t, tt.raw, IdentifierString(id))
	}
}

func TestParseIdentifierSplitsAtFirstColonOnly(t *testing.T) {
	id, err := ParseIdentifier(`fileselection:C:\data\sel.txt`)
	require.NoError(t, err)
	assert.Equal(t, types.SourceKindFileSelection, id.Kind)
	assert.Equal(t, `C:\data\sel.txt`, id.Value)
}

func TestParseIdentifierUnknownKind(t *testing.T) {
	_, err := ParseIdentifier("bogus:1")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	assert.Contains(t, builderMsg(t, err), MsgUnknownSourceIdentifier)
	assert.Contains(t, builderMsg(t, err), "folder")
}

func TestParseIdentifierWithoutColon(t *testing.T) {
	_, err := ParseIdentifier("no-colon-here")
	require.Error(t, err)
	assert.Contains(t, builderMsg(t, err), MsgUnknownSourceIdentifier)
}

func TestIdentifierForObject(t *testing.T) {
	selection := types.FileSelection{DataFilePath: "/tmp/study/fileselection.txt"}
	id, err := IdentifierForObject(selection)
	require.NoError(t, err)
	assert.Equal(t, types.SourceKindFileSelection, id.Kind)
	assert.Equal(t, "/tmp/study/fileselection.txt", id.Value)
}

func TestIdentifierForObjectUnknownType(t *testing.T) {
	_, err := IdentifierForObject(42)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	assert.Contains(t, builderMsg(t, err), MsgUnknownSourceObject)
}

func TestKindMatches(t *testing.T) {
	tests := []struct {
		kind    types.SourceKind
		query   types.SourceKind
		matches bool
	}{
		{types.SourceKindFolder, types.SourceKindFolder, true},
		{types.SourceKindStudyInstanceUID, types.SourceKindPACSResource, true},
		{types.SourceKindAccessionNumber, types.SourceKindPACSResource, true},
		{types.SourceKindPACSResource, types.SourceKindPACSResource, true},
		{types.SourceKindFolder, types.SourceKindPACSResource, false},
		{types.SourceKindFolder, types.SourceKindBase, true},
		{types.SourceKindFolder, types.SourceKindFileSelection, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.matches, KindMatches(tt.kind, tt.query),
			"kind %s query %s", tt.kind, tt.query)
	}
}

func TestIdentifierPathness(t *testing.T) {
	folder := types.Identifier{Kind: types.SourceKindFolder, Value: "data/case1"}
	assert.True(t, IsRelativeIdentifier(folder))
	assert.False(t, IsAbsoluteIdentifier(folder))

	absolute := types.Identifier{Kind: types.SourceKindFolder, Value: `\\server\share\case1`}
	assert.True(t, IsAbsoluteIdentifier(absolute))

	uid := types.Identifier{Kind: types.SourceKindStudyInstanceUID, Value: "123.4"}
	assert.False(t, IsRelativeIdentifier(uid))
	assert.False(t, IsAbsoluteIdentifier(uid))
}
