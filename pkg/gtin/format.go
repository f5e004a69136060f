package gtin

import (
	"fmt"
	"strconv"
	"strings"
)

// Format identifies one of the GTIN lengths defined by GS1.
// The zero value is not a valid format.
type Format uint8

const (
	// GTIN8 is EAN-8, the short version of EAN-13 for extremely small products.
	GTIN8 Format = iota + 1
	// GTIN12 is UPC-A, the standard version of the UPC code.
	GTIN12
	// GTIN13 is EAN-13, primarily used at the point of sale.
	GTIN13
	// GTIN14 is EAN-14/ITF-14, commonly used for traded goods.
	GTIN14
)

type formatInfo struct {
	name   string
	length int
}

// Indexed by Format; entry 0 is the invalid zero value.
var catalog = [...]formatInfo{
	{},
	GTIN8:  {name: "GTIN_8", length: 8},
	GTIN12: {name: "GTIN_12", length: 12},
	GTIN13: {name: "GTIN_13", length: 13},
	GTIN14: {name: "GTIN_14", length: 14},
}

// Formats returns every known format in ascending length order.
func Formats() []Format {
	return []Format{GTIN8, GTIN12, GTIN13, GTIN14}
}

// ForLength returns the format whose code length is n.
func ForLength(n int) (Format, error) {
	switch n {
	case 8:
		return GTIN8, nil
	case 12:
		return GTIN12, nil
	case 13:
		return GTIN13, nil
	case 14:
		return GTIN14, nil
	}
	return 0, fmt.Errorf("%w: length %d does not match any known GTIN format", ErrUnknownFormat, n)
}

// FormatByName returns the format with the given symbolic name, e.g. "GTIN_13".
// The match is exact.
func FormatByName(name string) (Format, error) {
	for _, f := range Formats() {
		if catalog[f].name == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: name %q does not match any known GTIN format", ErrUnknownFormat, name)
}

// ParseFormat is a lenient lookup accepting the symbolic name ("GTIN_13"),
// the display name ("GTIN-13", case-insensitive) or the bare length ("13").
func ParseFormat(s string) (Format, error) {
	if f, err := FormatByName(s); err == nil {
		return f, nil
	}
	trimmed := strings.TrimSpace(s)
	upper := strings.ToUpper(trimmed)
	for _, prefix := range []string{"GTIN-", "GTIN_", "GTIN"} {
		if rest, ok := strings.CutPrefix(upper, prefix); ok {
			trimmed = rest
			break
		}
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
	return ForLength(n)
}

// IsValid reports whether f is one of the four known formats.
func (f Format) IsValid() bool {
	return f >= GTIN8 && f <= GTIN14
}

// Length returns the number of digits of a code in this format, including
// the check digit. It returns 0 for the zero value.
func (f Format) Length() int {
	if !f.IsValid() {
		return 0
	}
	return catalog[f].length
}

// Name returns the symbolic name of the format, e.g. "GTIN_12".
func (f Format) Name() string {
	if !f.IsValid() {
		return ""
	}
	return catalog[f].name
}

// String renders the format as "GTIN-" followed by its length, e.g. "GTIN-12".
func (f Format) String() string {
	if !f.IsValid() {
		return "GTIN-unknown"
	}
	return "GTIN-" + strconv.Itoa(catalog[f].length)
}

func (f Format) MarshalText() ([]byte, error) {
	if !f.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, uint8(f))
	}
	return []byte(f.String()), nil
}

func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
