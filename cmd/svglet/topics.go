package main

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/svglet/pkg/errors"
)

//go:embed guides/*.md
var guidesFS embed.FS

var topicsCmd = &cobra.Command{
	Use:   "topics [name]",
	Short: "Read the built-in guides",
	Long: `Topics lists the built-in guides, or renders one to the terminal
when a name is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			names, err := guideNames()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Available topics:")
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
			}
			return nil
		}

		content, err := guidesFS.ReadFile("guides/" + args[0] + ".md")
		if err != nil {
			return errors.Newf(errors.ErrNotFound, "no topic named %q, try `svglet topics`", args[0])
		}
		fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(string(content)))
		return nil
	},
}

// renderMarkdown converts markdown to terminal output, falling back to the
// plain text on any renderer failure.
func renderMarkdown(content string) string {
	var options []glamour.TermRendererOption
	if plainOutput() {
		options = append(options, glamour.WithStylePath("notty"))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

func guideNames() ([]string, error) {
	entries, err := guidesFS.ReadDir("guides")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "embedded guides are unreadable")
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(names)
	return names, nil
}
