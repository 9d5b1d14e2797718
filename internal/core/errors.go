package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Message prefixes used to classify errors across package boundaries.
// The CLI exit-code mapping and parts of the app layer switch on these,
// so they must stay stable.
const (
	MsgUnknownSourceIdentifier = "unknown source identifier"
	MsgUnknownSourceObject     = "unknown source object"
	MsgParameterParse          = "cannot parse parameter"
	MsgMappingLoad             = "invalid mapping file"
	MsgPathNotUnderRoot        = "path not under root"
	MsgPathOutsideMapping      = "path outside mapping folder"
	MsgJobCreation             = "job creation failed"
)

func NewUnknownSourceIdentifierError(raw string, reason string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("%s '%s': %s", MsgUnknownSourceIdentifier, raw, reason))
}

func NewUnknownSourceObjectError(typeName string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("%s: no identifier kind is registered for %s", MsgUnknownSourceObject, typeName))
}

func NewParameterParsingError(raw string, reason string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("%s '%s': %s", MsgParameterParse, raw, reason))
}

func NewMappingLoadError(line int, content string, reason string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("%s: line %d '%s': %s", MsgMappingLoad, line, content, reason))
}

func NewPathNotUnderRootError(path string, root string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("%s: '%s' is absolute but not under '%s'", MsgPathNotUnderRoot, path, root))
}

func NewPathOutsideMappingError(path string, folder string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("%s: '%s' is not inside '%s'", MsgPathOutsideMapping, path, folder))
}

func NewJobCreationError(source string, cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(fmt.Sprintf("%s for source %s: %v", MsgJobCreation, source, cause)).
		WithCause(cause)
}

func IsMappingLoadError(err error) bool { return hasMsgPrefix(err, MsgMappingLoad) }

func IsJobCreationError(err error) bool { return hasMsgPrefix(err, MsgJobCreation) }

func IsPathOutsideMappingError(err error) bool { return hasMsgPrefix(err, MsgPathOutsideMapping) }

func hasMsgPrefix(err error, prefix string) bool {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) {
		return strings.HasPrefix(builder.Msg, prefix)
	}
	return false
}
