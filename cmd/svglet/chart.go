package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/svglet/pkg/chart"
	"github.com/arthur-debert/svglet/pkg/config"
	"github.com/arthur-debert/svglet/pkg/errors"
	"github.com/arthur-debert/svglet/pkg/logging"
	"github.com/arthur-debert/svglet/pkg/paths"
	"github.com/arthur-debert/svglet/pkg/svg"
)

var (
	chartOutput string
	chartPretty bool
)

var chartCmd = &cobra.Command{
	Use:   "chart <definition-file>",
	Short: "Render a chart definition to SVG",
	Long: `Chart reads a chart definition (.toml, .yaml or .yml), computes the
axis geometry and writes the rendered SVG document to stdout or to the file
given with --output. Definitions not found as given are also looked up in
the XDG config directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.GetLogger("cmd.chart")
		defer logging.LogDuration(time.Now(), "chart render")

		path := paths.ConfigSearch(args[0])
		cf, err := config.Load(path)
		if err != nil {
			return err
		}
		logger.Info().Str("definition", path).Str("chart", cf.String()).Msg("Rendering chart")

		cfg, err := cf.ToChart()
		if err != nil {
			return err
		}
		desc, err := chart.Build(cfg)
		if err != nil {
			return err
		}

		out := svg.NewRenderer(logger).Render(desc, svg.Options{Pretty: chartPretty})
		if chartOutput == "" {
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		}
		if err := os.WriteFile(chartOutput, []byte(out+"\n"), 0644); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", chartOutput)
		}
		logger.Info().Str("path", chartOutput).Int("bytes", len(out)).Msg("Chart written")
		return nil
	},
}

func init() {
	chartCmd.Flags().StringVarP(&chartOutput, "output", "o", "", "Write the document to a file instead of stdout")
	chartCmd.Flags().BoolVar(&chartPretty, "pretty", false, "Indent the output with two spaces per level")
}
