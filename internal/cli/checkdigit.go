package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/gtinkit/pkg/gtin"
	"github.com/dmitrymomot/gtinkit/pkg/logger"
)

func (a *app) checkDigitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "check-digit PARTIAL...",
		Short:   "Calculate the check digit of GTINs given without it",
		Example: `  gtin check-digit 7351353 1061414100041`,
		Args:    requireArgs("partial code"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.finish(cmd, a.completeAll(cmd, args), checkDigitText)
		},
	}
}

func (a *app) completeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "complete PARTIAL...",
		Short:   "Append the check digit to GTINs given without it",
		Example: `  gtin complete 7351353 1061414100041`,
		Args:    requireArgs("partial code"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.finish(cmd, a.completeAll(cmd, args), completeText)
		},
	}
}

func (a *app) completeAll(cmd *cobra.Command, args []string) []report {
	reports := make([]report, 0, len(args))
	for _, input := range args {
		partial := a.prepare(input)
		g, err := gtin.ParseWithCheckDigit(partial)
		if err != nil {
			a.log.DebugContext(cmd.Context(), "rejected partial code", logger.Code(partial), logger.Error(err))
			reports = append(reports, report{Input: input, Code: partial, Error: err.Error()})
			continue
		}
		reports = append(reports, reportFor(input, g))
	}
	return reports
}

func completeText(r report) string {
	if r.Error != "" {
		return r.Input + "\terror\t" + r.Error
	}
	return r.Code
}
