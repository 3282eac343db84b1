package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/milk9111/levelgen/prefabs"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the level whenever a script, manifest or template changes",
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	store, files, err := templateStore()
	if err != nil {
		return err
	}
	builder := newBuilder(store)

	var dirs []string
	for _, dir := range []string{levelsDir, filepath.Join(levelsDir, "hooks"), filepath.Join(templatesDir, "structures"), templatesDir} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		return errors.Errorf("levelgen: nothing to watch: create %s or %s", levelsDir, templatesDir)
	}

	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		return errors.Wrap(err, "levelgen: watch")
	}
	defer w.Close()

	out := cmd.OutOrStdout()
	rebuild := func() {
		if _, res, err := buildLevel(ctx, builder); res != nil {
			printSummary(out, res)
		} else if err != nil {
			cmd.PrintErrf("levelgen: %v\n", err)
		}
	}

	cmd.PrintErrf("levelgen: watching %v\n", dirs)
	rebuild()
	for {
		select {
		case <-ctx.Done():
			return nil
		case name, ok := <-w.Events:
			if !ok {
				return nil
			}
			if files != nil {
				files.Invalidate(name)
			}
			cmd.PrintErrf("levelgen: %s changed\n", name)
			rebuild()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			cmd.PrintErrf("levelgen: watch: %v\n", err)
		}
	}
}
