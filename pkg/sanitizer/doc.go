// Package sanitizer cleans raw GTIN input before it reaches gtin.Parse.
//
// Codes copied from packaging, spreadsheets or scanners often carry digit
// group separators, surrounding whitespace or full-width digits. The helpers
// here remove that noise without hiding real mistakes: letters and other
// unexpected characters are left in place so validation still rejects them.
//
//	code := sanitizer.NormalizeGTIN(" ４００６-3813 33931 ") // "4006381333931"
//	g, err := gtin.Parse(code)
//
// FormatGTIN does the reverse for display, grouping digits the way they are
// printed under the barcode.
//
// Apply and Compose build pipelines from any func(T) T transforms:
//
//	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.ExtractNumbers)
//
// The package is stateless and safe for concurrent use.
package sanitizer
