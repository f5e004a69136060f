package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/gtinkit/pkg/gtin"
	"github.com/dmitrymomot/gtinkit/pkg/logger"
)

func (a *app) validateCmd() *cobra.Command {
	var formatFlag string

	c := &cobra.Command{
		Use:   "validate CODE...",
		Short: "Check format and check digit of GTIN codes",
		Example: `  gtin validate 4006381333931 73513537
  gtin validate --format GTIN-12 734092309436
  gtin validate -n "4 006381 333931"`,
		Args: requireArgs("code"),
		RunE: func(cmd *cobra.Command, args []string) error {
			var format gtin.Format
			if formatFlag != "" {
				f, err := gtin.ParseFormat(formatFlag)
				if err != nil {
					return err
				}
				format = f
			}

			reports := make([]report, 0, len(args))
			for _, input := range args {
				code := a.prepare(input)
				r := report{Input: input, Code: code}
				if gtin.IsValidFormat(code, format) {
					g := gtin.MustParse(code)
					r = reportFor(input, g)
				} else if format.IsValid() && !gtin.MatchesFormatOf(code, format) {
					r.Error = "expected " + format.String()
				}
				a.log.DebugContext(cmd.Context(), "validated code",
					logger.Code(code),
					logger.Valid(r.Valid),
				)
				reports = append(reports, r)
			}

			return a.finish(cmd, reports, validateText)
		},
	}

	c.Flags().StringVarP(&formatFlag, "format", "f", "", "require a specific format (GTIN-8, GTIN_12, 13, ...)")
	return c
}

func validateText(r report) string {
	if r.Valid {
		return r.Input + "\tvalid\t" + r.Format
	}
	if r.Error != "" {
		return r.Input + "\tinvalid\t" + r.Error
	}
	return r.Input + "\tinvalid"
}
