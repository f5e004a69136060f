package gtin

import (
	"database/sql/driver"
	"fmt"
)

func (g GTIN) MarshalText() ([]byte, error) {
	return []byte(g.code), nil
}

// UnmarshalText parses text with Parse. Empty text is rejected like any
// other malformed code.
func (g *GTIN) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Scan implements sql.Scanner. A NULL column fails with ErrNilInput;
// use sql.Null[GTIN] for nullable columns.
func (g *GTIN) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		return fmt.Errorf("%w: cannot scan NULL into GTIN", ErrNilInput)
	case string:
		return g.UnmarshalText([]byte(v))
	case []byte:
		return g.UnmarshalText(v)
	default:
		return fmt.Errorf("%w: cannot scan %T into GTIN", ErrInvalidFormat, src)
	}
}

// Value implements driver.Valuer. The zero GTIN is stored as NULL.
func (g GTIN) Value() (driver.Value, error) {
	if g.IsZero() {
		return nil, nil
	}
	return g.code, nil
}
