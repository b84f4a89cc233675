package cli

import (
	"cmp"
	"encoding/json"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hsproject/pkg/codec"
	"github.com/matzehuels/hsproject/pkg/io"
	"github.com/matzehuels/hsproject/pkg/project"
)

// inspectReport is the --json output of inspect.
type inspectReport struct {
	Counts    project.Counts `json:"counts"`
	Sentinels int            `json:"sentinels"`
	Tags      []tagCount     `json:"tags"`
	Gaps      []codec.Gap    `json:"gaps"`
}

type tagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// inspectCommand creates the "inspect" command.
func (c *CLI) inspectCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show project counts, block types and unresolved references",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			rep, err := inspect(input)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(c.out)
				enc.SetIndent("", "  ")
				return enc.Encode(rep)
			}
			c.printInspect(args[0], rep)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}

func inspect(input []byte) (*inspectReport, error) {
	rep := &inspectReport{Gaps: []codec.Gap{}, Tags: []tagCount{}}
	p, err := io.ParseWith(input, codec.ResolveOptions{
		OnGap: func(g codec.Gap) { rep.Gaps = append(rep.Gaps, g) },
	})
	if err != nil {
		return nil, err
	}
	rep.Counts = p.Count()

	byTag := map[string]int{}
	for b := range p.Blocks() {
		if b.IsSentinel() {
			rep.Sentinels++
		}
		byTag[b.String()]++
	}
	for tag, n := range byTag {
		rep.Tags = append(rep.Tags, tagCount{Tag: tag, Count: n})
	}
	slices.SortFunc(rep.Tags, func(a, b tagCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Tag, b.Tag)
	})
	return rep, nil
}

func (c *CLI) printInspect(name string, rep *inspectReport) {
	ui := newPrinter(c.out)
	ui.title(name)
	ui.keyValue("scenes", rep.Counts.Scenes)
	ui.keyValue("objects", rep.Counts.Objects)
	ui.keyValue("rules", rep.Counts.Rules)
	ui.keyValue("events", rep.Counts.Events)
	ui.keyValue("blocks", rep.Counts.Blocks)
	if rep.Sentinels > 0 {
		ui.keyValue("sentinels", rep.Sentinels)
	}

	if len(rep.Tags) > 0 {
		ui.info("Block types")
		for _, t := range rep.Tags {
			ui.detail("%-8s %d", t.Tag, t.Count)
		}
	}

	if len(rep.Gaps) == 0 {
		ui.success("All references resolved")
		return
	}
	ui.warning("%d unresolved references", len(rep.Gaps))
	for _, g := range rep.Gaps {
		ui.detail("%s %q %s", g.Kind, g.ID, g.Detail)
	}
}
