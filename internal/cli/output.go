package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/gtinkit/pkg/gtin"
	"github.com/dmitrymomot/gtinkit/pkg/sanitizer"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// report describes one processed argument.
type report struct {
	Input      string `json:"input" yaml:"input"`
	Code       string `json:"code,omitempty" yaml:"code,omitempty"`
	Valid      bool   `json:"valid" yaml:"valid"`
	Format     string `json:"format,omitempty" yaml:"format,omitempty"`
	CheckDigit *int   `json:"check_digit,omitempty" yaml:"check_digit,omitempty"`
	Payload    string `json:"payload,omitempty" yaml:"payload,omitempty"`
	GTIN14     string `json:"gtin14,omitempty" yaml:"gtin14,omitempty"`
	Display    string `json:"display,omitempty" yaml:"display,omitempty"`
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`
}

func reportFor(input string, g gtin.GTIN) report {
	digit := g.CheckDigit()
	return report{
		Input:      input,
		Code:       g.String(),
		Valid:      true,
		Format:     g.Format().String(),
		CheckDigit: &digit,
		Payload:    g.Payload(),
		GTIN14:     g.GTIN14().String(),
		Display:    sanitizer.FormatGTIN(g.String()),
	}
}

func validOutput(output string) error {
	switch output {
	case outputText, outputJSON, outputYAML:
		return nil
	}
	return fmt.Errorf("invalid output %q: must be %q, %q or %q", output, outputText, outputJSON, outputYAML)
}

// render writes reports as JSON or YAML, or one line per report using line for text output.
func render(w io.Writer, output string, reports []report, line func(report) string) error {
	switch output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, r := range reports {
			if _, err := fmt.Fprintln(w, line(r)); err != nil {
				return err
			}
		}
		return nil
	}
}

func checkDigitText(r report) string {
	if r.Error != "" {
		return r.Input + "\terror\t" + r.Error
	}
	return r.Input + "\t" + strconv.Itoa(*r.CheckDigit)
}
