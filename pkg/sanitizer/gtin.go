package sanitizer

import (
	"strings"

	"golang.org/x/text/width"
)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// FoldWidth maps full-width characters such as "４００６" to their ASCII
// equivalents. Input from East Asian IMEs often arrives in full-width form.
func FoldWidth(s string) string {
	return width.Fold.String(s)
}

// RemoveGTINSeparators drops spaces, dashes, dots, slashes and underscores
// that appear between digit groups of printed codes.
// Other characters are kept so malformed input still fails validation.
func RemoveGTINSeparators(s string) string {
	return gtinSeparatorRegex.ReplaceAllString(s, "")
}

// ExtractNumbers concatenates all digit sequences, useful for ID extraction from mixed content.
func ExtractNumbers(s string) string {
	return strings.Join(digitRegex.FindAllString(s, -1), "")
}

// NormalizeGTIN prepares user input for gtin.Parse: folds full-width digits,
// trims and strips separators, e.g. " 4006-3813 33931 " becomes "4006381333931".
var NormalizeGTIN = Compose(FoldWidth, Trim, RemoveGTINSeparators)

// FormatGTIN groups the digits the way they are printed under the barcode:
// 4-4 for GTIN-8, 1-5-5-1 for GTIN-12, 1-6-6 for GTIN-13 and 1-2-5-5-1 for GTIN-14.
// Input of any other length is returned unchanged.
func FormatGTIN(code string) string {
	var groups []int
	switch len(code) {
	case 8:
		groups = []int{4, 4}
	case 12:
		groups = []int{1, 5, 5, 1}
	case 13:
		groups = []int{1, 6, 6}
	case 14:
		groups = []int{1, 2, 5, 5, 1}
	default:
		return code
	}

	var b strings.Builder
	pos := 0
	for i, n := range groups {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(code[pos : pos+n])
		pos += n
	}
	return b.String()
}
