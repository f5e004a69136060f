package logger

import (
	"fmt"
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Code records a GTIN or candidate string under the key "code".
func Code(code string) slog.Attr {
	return slog.String("code", code)
}

// GTINFormat records a format under the key "format".
// A nil format returns an empty Attr.
func GTINFormat(f fmt.Stringer) slog.Attr {
	if f == nil {
		return slog.Attr{}
	}
	return slog.String("format", f.String())
}

// Valid records a validation outcome under the key "valid".
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

// Count records a number of processed items under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Command records the CLI command under the key "command".
func Command(name string) slog.Attr {
	return slog.String("command", name)
}
