// Package validator provides declarative validation rules for GTIN input
// fields, built on the gtin package.
//
// A Rule bundles a boolean Check function with translation-friendly error
// metadata. Rules are evaluated with Apply, which aggregates failures into
// ValidationErrors, a slice type implementing the error interface, so several
// field-level problems bubble up in a single error return.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.ValidGTIN13("ean", req.EAN),
//	    validator.GTINFormatIn("barcode", req.Barcode, gtin.GTIN8, gtin.GTIN12, gtin.GTIN13),
//	    validator.ValidGTINPartial("case_code", req.CaseCode),
//	)
//	if err != nil {
//	    if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	        // iterate over field-level messages or translate them
//	    }
//	}
//
// # Error Handling
//
// errors.Is(err, ErrValidationFailed) matches any ValidationErrors and
// ExtractValidationErrors recovers the slice from a wrapped error. Individual
// field errors can be inspected with Has, Get and Fields.
//
// Translation keys: validation.gtin, validation.gtin_format,
// validation.gtin_format_in and validation.gtin_partial.
//
// The package is stateless and goroutine-safe.
package validator
