package main

import (
	"fmt"
	"github.com/spf13/cobra"

	"github.com/milk9111/levelgen/levels"
	"github.com/milk9111/levelgen/prefabs"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available levels and structure templates",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "levels:")
	for _, name := range levels.Names(levelsDir) {
		fmt.Fprintf(out, "  %s\n", name)
	}

	var ids []string
	if redisAddr != "" {
		ctx, cancel := signalContext()
		defer cancel()
		store, err := newRedisStore()
		if err != nil {
			return err
		}
		if ids, err = store.IDs(ctx); err != nil {
			return err
		}
	} else {
		var err error
		if ids, err = prefabs.NewStore(templatesDir).IDs(); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, "structures:")
	for _, id := range ids {
		fmt.Fprintf(out, "  %s\n", id)
	}
	return nil
}
