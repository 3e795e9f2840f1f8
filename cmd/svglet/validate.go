package main

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/svglet/pkg/errors"
	"github.com/arthur-debert/svglet/pkg/logging"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.svg>",
	Short: "Check that an SVG document is well-formed",
	Long: `Validate parses the given document and reports whether it is
well-formed XML with an svg root element. It does not validate attribute
values against the SVG grammar.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.GetLogger("cmd.validate")

		doc := etree.NewDocument()
		if err := doc.ReadFromFile(args[0]); err != nil {
			return errors.Wrapf(err, errors.ErrDocumentParse, "%s is not well-formed", args[0])
		}
		root := doc.Root()
		if root == nil {
			return errors.Newf(errors.ErrDocumentParse, "%s has no root element", args[0])
		}
		if root.Tag != "svg" {
			return errors.Newf(errors.ErrDocumentRoot, "%s root element is <%s>, want <svg>", args[0], root.Tag)
		}

		count := countElements(root)
		logger.Debug().Str("path", args[0]).Int("elements", count).Msg("Document validated")
		fmt.Fprintf(cmd.OutOrStdout(), "%s: well-formed svg, %d elements\n", formatBold(args[0]), count)
		return nil
	},
}

func countElements(el *etree.Element) int {
	n := 1
	for _, child := range el.ChildElements() {
		n += countElements(child)
	}
	return n
}
