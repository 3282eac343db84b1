// Command levelgen builds levels from level manifests and scripts.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/milk9111/levelgen/level"
	"github.com/milk9111/levelgen/levels"
	"github.com/milk9111/levelgen/prefabs"
	"github.com/milk9111/levelgen/redisstore"
	"github.com/milk9111/levelgen/structure"
)

var (
	levelName         string
	levelsDir         string
	templatesDir      string
	redisAddr         string
	seed              int64
	deferDecorRemoval bool
)

var rootCmd = &cobra.Command{
	Use:   "levelgen",
	Short: "Procedural level generator",
	Long: `levelgen runs level-description scripts, places structure templates and
optionally runs a tengo hook to produce a level.`,
	SilenceUsage: true,
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&levelName, "level", "caves", "level manifest name (basename, .yaml optional)")
	pf.StringVar(&levelsDir, "levels-dir", levels.DefaultDir, "directory overriding the embedded level manifests and scripts")
	pf.StringVar(&templatesDir, "templates-dir", prefabs.DefaultDir, "directory overriding the embedded structure templates")
	pf.StringVar(&redisAddr, "redis", "", "read structure templates from this Redis endpoint instead of files")
	pf.Int64Var(&seed, "seed", 0, "random seed; 0 uses the manifest seed or a fresh one")
	pf.BoolVar(&deferDecorRemoval, "defer-decor-removal", false, "only clear decoration under accepted structure positions")

	rootCmd.AddCommand(buildCmd, watchCmd, viewCmd, pushCmd, listCmd)
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// templateStore returns the Redis store when --redis is set and the file
// store otherwise. The file store is also returned so callers can
// invalidate it on change.
func templateStore() (structure.Store, *prefabs.Store, error) {
	if redisAddr != "" {
		store, err := newRedisStore()
		return store, nil, err
	}
	files := prefabs.NewStore(templatesDir)
	return files, files, nil
}

func newRedisStore() (*redisstore.Store, error) {
	client, err := redisstore.NewClient(redisAddr)
	if err != nil {
		return nil, err
	}
	return redisstore.NewRedis(&redisstore.Config{Client: client})
}

func newBuilder(store structure.Store) *level.Builder {
	return level.NewBuilder(&level.Config{
		Store:             store,
		Logger:            log.Default(),
		DeferDecorRemoval: deferDecorRemoval,
	})
}

// buildLevel loads the selected manifest and builds it once.
func buildLevel(ctx context.Context, builder *level.Builder) (*levels.Manifest, *level.Result, error) {
	m, err := levels.LoadManifest(levelsDir, levelName)
	if err != nil {
		return nil, nil, err
	}
	res, err := builder.BuildManifest(ctx, m, levelsDir, seed)
	return m, res, err
}
