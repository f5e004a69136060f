package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/gtinkit/pkg/gtin"
	"github.com/dmitrymomot/gtinkit/pkg/logger"
)

func (a *app) inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "inspect CODE...",
		Short:   "Show format, check digit, payload and GTIN-14 form of codes",
		Example: `  gtin inspect -o yaml 4006381333931`,
		Args:    requireArgs("code"),
		RunE: func(cmd *cobra.Command, args []string) error {
			reports := make([]report, 0, len(args))
			for _, input := range args {
				code := a.prepare(input)
				g, err := gtin.Parse(code)
				if err != nil {
					a.log.DebugContext(cmd.Context(), "rejected code", logger.Code(code), logger.Error(err))
					reports = append(reports, report{Input: input, Code: code, Error: err.Error()})
					continue
				}
				a.log.DebugContext(cmd.Context(), "inspected code", logger.Code(code), logger.GTINFormat(g.Format()))
				reports = append(reports, reportFor(input, g))
			}
			return a.finish(cmd, reports, inspectText)
		},
	}
}

func inspectText(r report) string {
	if r.Error != "" {
		return r.Input + "\terror\t" + r.Error
	}
	var b strings.Builder
	fmt.Fprintf(&b, "code:        %s\n", r.Code)
	fmt.Fprintf(&b, "format:      %s\n", r.Format)
	fmt.Fprintf(&b, "check digit: %d\n", *r.CheckDigit)
	fmt.Fprintf(&b, "payload:     %s\n", r.Payload)
	fmt.Fprintf(&b, "gtin-14:     %s\n", r.GTIN14)
	fmt.Fprintf(&b, "display:     %s", r.Display)
	return b.String()
}
