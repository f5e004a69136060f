package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	digitRegex = regexp.MustCompile(`[0-9]+`)

	// Separators people type or print between GTIN digit groups.
	gtinSeparatorRegex = regexp.MustCompile(`[\s\-.·_/]+`)
)
