package gtin

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// GTIN is a validated Global Trade Item Number. Values are immutable and
// comparable with ==; the zero value holds no code.
type GTIN struct {
	code   string
	format Format
}

// Parse validates candidate and wraps it in a GTIN.
// Use IsValid first to check a string without constructing an error.
func Parse(candidate string) (GTIN, error) {
	if !IsValid(candidate) {
		return GTIN{}, fmt.Errorf("%w: %q is not a valid GTIN", ErrInvalidFormat, candidate)
	}
	// IsValid guarantees a known length.
	format, _ := ForLength(len(candidate))
	return GTIN{code: candidate, format: format}, nil
}

// ParseWithCheckDigit completes partial with its check digit and returns the resulting GTIN.
func ParseWithCheckDigit(partial string) (GTIN, error) {
	code, err := WithCheckDigit(partial)
	if err != nil {
		return GTIN{}, err
	}
	return Parse(code)
}

// MustParse is like Parse but panics on invalid input.
func MustParse(candidate string) GTIN {
	g, err := Parse(candidate)
	if err != nil {
		panic(err)
	}
	return g
}

func (g GTIN) Format() Format { return g.format }

// Len returns the number of digits, including the check digit.
func (g GTIN) Len() int { return len(g.code) }

func (g GTIN) IsZero() bool { return g.code == "" }

// CheckDigit returns the trailing check digit. It returns 0 for the zero value.
func (g GTIN) CheckDigit() int {
	if g.IsZero() {
		return 0
	}
	return int(g.code[len(g.code)-1] - '0')
}

// DigitAt returns the digit at position, counted from 0 on the left.
func (g GTIN) DigitAt(position int) (int, error) {
	if position < 0 || position >= len(g.code) {
		return 0, fmt.Errorf("%w: position %d, length %d", ErrIndexOutOfRange, position, len(g.code))
	}
	return int(g.code[position] - '0'), nil
}

// Payload returns the code without its check digit.
func (g GTIN) Payload() string {
	if g.IsZero() {
		return ""
	}
	return g.code[:len(g.code)-1]
}

// GTIN14 returns g left-padded with zeros to 14 digits, the canonical GS1
// form used for comparing codes of different lengths. Padding keeps the
// checksum intact because weights are anchored on the check digit.
func (g GTIN) GTIN14() GTIN {
	if g.IsZero() || g.format == GTIN14 {
		return g
	}
	return GTIN{code: strings.Repeat("0", GTIN14.Length()-len(g.code)) + g.code, format: GTIN14}
}

func (g GTIN) String() string { return g.code }

func (g GTIN) Equal(other GTIN) bool { return g.code == other.code }

// Hash returns a stable hash of the code. Equal GTINs hash equally.
func (g GTIN) Hash() uint64 {
	return xxhash.Sum64String(g.code)
}
