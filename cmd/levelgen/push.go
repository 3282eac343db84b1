package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/milk9111/levelgen/prefabs"
)

var templateID string

var pushCmd = &cobra.Command{
	Use:   "push-template <file>...",
	Short: "Validate structure template files and upload them to Redis",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPush,
}

func init() {
	pushCmd.Flags().StringVar(&templateID, "id", "", "template id (defaults to the file name without extension; single file only)")
}

func runPush(cmd *cobra.Command, args []string) error {
	if redisAddr == "" {
		return errors.New("levelgen: push-template needs --redis")
	}
	if templateID != "" && len(args) > 1 {
		return errors.New("levelgen: --id only applies to a single file")
	}

	ctx, cancel := signalContext()
	defer cancel()

	store, err := newRedisStore()
	if err != nil {
		return err
	}

	for _, file := range args {
		id := templateID
		if id == "" {
			var ok bool
			if id, ok = prefabs.TemplateID(file); !ok {
				return errors.Errorf("levelgen: %s: expected a .yaml, .yml or .json file", file)
			}
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return errors.Wrapf(err, "levelgen: read %s", file)
		}
		tpl, err := store.Put(ctx, id, data)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "pushed %s (%dx%d, %d entities, %d level objects)\n",
			tpl.ID, tpl.Width, tpl.Height, len(tpl.Entities), len(tpl.LevelObjects))
	}
	return nil
}
