package validator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/gtinkit/pkg/gtin"
)

// ValidGTIN validates that value is a GTIN of any supported length with a correct check digit.
func ValidGTIN(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return gtin.IsValid(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid GTIN",
			TranslationKey: "validation.gtin",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidGTINFormat validates that value is a valid GTIN of exactly the given format.
func ValidGTINFormat(field, value string, format gtin.Format) Rule {
	return Rule{
		Check: func() bool {
			return format.IsValid() && gtin.IsValidFormat(value, format)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be a valid %s", format),
			TranslationKey: "validation.gtin_format",
			TranslationValues: map[string]any{
				"field":  field,
				"format": format.String(),
				"length": format.Length(),
			},
		},
	}
}

func ValidGTIN8(field, value string) Rule  { return ValidGTINFormat(field, value, gtin.GTIN8) }
func ValidGTIN12(field, value string) Rule { return ValidGTINFormat(field, value, gtin.GTIN12) }
func ValidGTIN13(field, value string) Rule { return ValidGTINFormat(field, value, gtin.GTIN13) }
func ValidGTIN14(field, value string) Rule { return ValidGTINFormat(field, value, gtin.GTIN14) }

// GTINFormatIn validates that value is a valid GTIN whose format is one of formats,
// e.g. point-of-sale systems that only accept GTIN-8, GTIN-12 and GTIN-13.
func GTINFormatIn(field, value string, formats ...gtin.Format) Rule {
	names := make([]string, 0, len(formats))
	for _, f := range formats {
		names = append(names, f.String())
	}

	return Rule{
		Check: func() bool {
			g, err := gtin.Parse(value)
			if err != nil {
				return false
			}
			return slices.Contains(formats, g.Format())
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be one of: " + strings.Join(names, ", "),
			TranslationKey: "validation.gtin_format_in",
			TranslationValues: map[string]any{
				"field":   field,
				"formats": names,
			},
		},
	}
}

// ValidGTINPartial validates that value is a GTIN without its check digit,
// i.e. one digit shorter than a supported format.
func ValidGTINPartial(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := gtin.CalculateCheckDigit(value)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid partial GTIN",
			TranslationKey: "validation.gtin_partial",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
