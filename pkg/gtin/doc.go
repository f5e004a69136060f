// Package gtin validates, parses and constructs Global Trade Item Numbers
// (GTIN-8, GTIN-12, GTIN-13 and GTIN-14, covering EAN-8, UPC-A, EAN-13 and
// EAN/ITF-14 payloads).
//
// The package has two halves. The format catalog (Format, Formats, ForLength,
// FormatByName) enumerates the four supported lengths. The codec functions
// check strings structurally (MatchesFormat*), verify the GS1 Modulo-10
// checksum (IsValid*), compute check digits for partial codes
// (CalculateCheckDigit, WithCheckDigit) and construct the immutable GTIN
// value (Parse, ParseWithCheckDigit, MustParse).
//
// # Usage
//
//	import "github.com/dmitrymomot/gtinkit/pkg/gtin"
//
//	if gtin.IsValid("4006381333931") {
//	    // ...
//	}
//
//	g, err := gtin.Parse("4006381333931")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(g.Format(), g.CheckDigit()) // GTIN-13 1
//
//	code, err := gtin.WithCheckDigit("1061414100041") // "10614141000415"
//
// # Checksum
//
// Digits are weighted 3 and 1 alternately, anchored so the check digit always
// carries weight 1. A code is valid when the weighted sum is divisible by 10.
//
// # Error Handling
//
// Predicates return false for malformed input and never fail. Constructors
// wrap one of the sentinel errors, so callers can branch with errors.Is:
//
//	if errors.Is(err, gtin.ErrInvalidFormat) {
//	    // bad code or checksum
//	}
//
// ErrNilInput is only produced where absence is representable, e.g. scanning
// a NULL database column.
//
// GTIN implements encoding.TextMarshaler, encoding.TextUnmarshaler,
// sql.Scanner and driver.Valuer, so it can be used directly in JSON, YAML
// and database models. All functions are pure and safe for concurrent use.
package gtin
