package main

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/svglet/pkg/errors"
	"github.com/arthur-debert/svglet/pkg/scale"
)

var ticksCount int

var ticksCmd = &cobra.Command{
	Use:   "ticks <min> <max>",
	Short: "Show the nice axis bounds and tick values for a data range",
	Long: `Ticks computes the rounded axis bounds svglet would pick for the raw
data range [min, max] and lists the resulting tick values.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		min, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return errors.Wrapf(err, errors.ErrInvalidInput, "min %q is not a number", args[0])
		}
		max, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return errors.Wrapf(err, errors.ErrInvalidInput, "max %q is not a number", args[1])
		}
		if min > max {
			return errors.Newf(errors.ErrInvalidInput, "min %v is greater than max %v", min, max)
		}

		nice := scale.NiceScale(min, max, ticksCount)
		ticks := scale.Ticks(nice.Min, nice.Max, nice.Step)

		if !plainOutput() {
			data := pterm.TableData{{"tick"}}
			for _, t := range ticks {
				data = append(data, []string{formatFloat(t)})
			}
			pterm.Info.Printfln("range [%s, %s] -> nice [%s, %s], step %s",
				formatFloat(min), formatFloat(max),
				formatFloat(nice.Min), formatFloat(nice.Max), formatFloat(nice.Step))
			return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
		}

		fmt.Fprintf(cmd.OutOrStdout(), "min=%s max=%s step=%s\n",
			formatFloat(nice.Min), formatFloat(nice.Max), formatFloat(nice.Step))
		for _, t := range ticks {
			fmt.Fprintln(cmd.OutOrStdout(), formatFloat(t))
		}
		return nil
	},
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func init() {
	ticksCmd.Flags().IntVar(&ticksCount, "ticks", scale.DefaultTicks, "Approximate number of ticks")
}
