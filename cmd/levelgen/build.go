package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/milk9111/levelgen/level"
)

var (
	dumpResult bool
	printASCII bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a level once and print a summary",
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().BoolVar(&dumpResult, "dump", false, "dump the full build result")
	buildCmd.Flags().BoolVar(&printASCII, "ascii", false, "print the generated grid as text")
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	store, _, err := templateStore()
	if err != nil {
		return err
	}
	_, res, err := buildLevel(ctx, newBuilder(store))
	if res != nil {
		out := cmd.OutOrStdout()
		printSummary(out, res)
		if printASCII && res.Grid != nil {
			fmt.Fprint(out, renderASCII(res.Grid))
		}
		if dumpResult {
			dump(out, res)
		}
	}
	return err
}

func printSummary(w io.Writer, res *level.Result) {
	fmt.Fprintf(w, "level %s (seed %d, %dx%d, boundary %d)\n",
		res.Name, res.Seed, res.Params.SizeX, res.Params.SizeY, res.Params.BoundsDist)
	fmt.Fprintf(w, "  tiles %d, entities %d, objects %d (%d cleared)\n", res.Tiles, res.Entities, res.Objects, res.Cleared)
	for _, p := range res.Placements {
		fmt.Fprintf(w, "  structure %s at (%d,%d) after %d attempts\n", p.TemplateID, p.Origin.X, p.Origin.Y, p.Attempts)
	}
	for _, id := range res.Skipped {
		fmt.Fprintf(w, "  structure %s skipped\n", id)
	}
	for _, warn := range res.Warnings {
		fmt.Fprintf(w, "  warning: %s\n", warn)
	}
}

func dump(w io.Writer, res *level.Result) {
	cfg := spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true, DisableCapacities: true}
	summary := *res
	summary.World = nil
	summary.Grid = nil
	cfg.Fdump(w, summary)
	if res.Grid != nil {
		cfg.Fdump(w, res.Grid.Spawns())
	}
}
