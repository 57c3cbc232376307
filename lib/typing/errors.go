package typing

import (
	"errors"
	"fmt"
	"strings"
)

// SchemaError is returned when the input header is missing columns that we need to build a sample.
type SchemaError struct {
	missingColumns []string
}

func NewSchemaError(missingColumns []string) SchemaError {
	return SchemaError{missingColumns: missingColumns}
}

func (s SchemaError) Error() string {
	quoted := make([]string, len(s.missingColumns))
	for i, column := range s.missingColumns {
		quoted[i] = fmt.Sprintf("%q", column)
	}

	return fmt.Sprintf("header is missing required columns: %s", strings.Join(quoted, ", "))
}

func (s SchemaError) MissingColumns() []string {
	return s.missingColumns
}

func IsSchemaError(err error) bool {
	return errors.As(err, &SchemaError{})
}

type ParseErrorKind string

const (
	NotANumber      ParseErrorKind = "not_a_number"
	NonFiniteNumber ParseErrorKind = "non_finite_number"
)

type ParseError struct {
	message string
	kind    ParseErrorKind
}

func NewParseError(message string, kind ParseErrorKind) ParseError {
	return ParseError{message: message, kind: kind}
}

func (p ParseError) Error() string {
	return p.message
}

func (p ParseError) GetKind() ParseErrorKind {
	return p.kind
}

func BuildParseError(err error) (ParseError, bool) {
	var parseError ParseError
	if errors.As(err, &parseError) {
		return parseError, true
	}

	return ParseError{}, false
}
