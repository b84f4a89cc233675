package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hsproject/pkg/io"
	"github.com/matzehuels/hsproject/pkg/render"
)

var graphFormats = []string{render.FormatDOT, render.FormatSVG, render.FormatPDF, render.FormatPNG}

type graphFlags struct {
	format   string
	output   string
	detailed bool
	collapse bool
}

// graphCommand creates the "graph" command.
func (c *CLI) graphCommand() *cobra.Command {
	var flags graphFlags

	cmd := &cobra.Command{
		Use:   "graph <file>",
		Short: "Draw the project tree with Graphviz",
		Example: `  hsproject graph level.hopscotch > level.dot
  hsproject graph level.hopscotch --format svg -o level.svg --collapse`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(graphFormats, flags.format) {
				return fmt.Errorf("invalid format %q (want one of %v)", flags.format, graphFormats)
			}
			input, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			p, err := io.Parse(input)
			if err != nil {
				return err
			}

			prog := newProgress(loggerFromContext(cmd.Context()))
			dot := render.ToDOT(p, render.Options{Detailed: flags.detailed, CollapseBlocks: flags.collapse})
			out, err := render.RenderFormat(dot, flags.format)
			if err != nil {
				return err
			}
			if err := c.writeOutput(flags.output, out); err != nil {
				return err
			}
			prog.done("Rendered " + flags.format)
			if flags.output != "" {
				c.ui.file(flags.output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", render.FormatDOT, "output format: dot, svg, pdf or png")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&flags.detailed, "detailed", false, "include filename and geometry in object labels")
	cmd.Flags().BoolVar(&flags.collapse, "collapse", false, "draw one node per block list")
	return cmd
}
