package converters

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/artie-labs/sampler/lib/typing"
)

// Float64Converter accepts decimal literals only: an optional sign, digits with an optional fraction and an optional exponent.
// Surrounding whitespace is ignored. Hexadecimal floats, digit separators, NaN and infinities are rejected.
type Float64Converter struct{}

func (Float64Converter) Convert(value string) (float64, error) {
	return parseDecimalLiteral(value)
}

func parseDecimalLiteral(value string) (float64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, typing.NewParseError("failed to parse float64, value is empty", typing.NotANumber)
	}

	// [strconv.ParseFloat] also understands hexadecimal floats like 0x1p-2 and underscores like 1_000, neither is a decimal literal.
	if strings.ContainsAny(trimmed, "xX_") {
		return 0, typing.NewParseError(fmt.Sprintf("failed to parse float64, %q is not a decimal literal", value), typing.NotANumber)
	}

	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, typing.NewParseError(fmt.Sprintf("failed to parse float64, %q overflows float64", value), typing.NonFiniteNumber)
		}

		return 0, typing.NewParseError(fmt.Sprintf("failed to parse float64: %v", err), typing.NotANumber)
	}

	return requireFinite(parsed)
}

func requireFinite(value float64) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, typing.NewParseError(fmt.Sprintf("failed to parse float64, %v is not a finite number", value), typing.NonFiniteNumber)
	}

	return value, nil
}
