// Package cli implements the greenlight command-line interface.  The CLI
// runs the full engine in-process against the built-in catalog and a local
// file-backed version store; no server or database is required.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	appanalysis "github.com/slatedeck/GreenLight-Intelligence/internal/application/analysis"
	"github.com/slatedeck/GreenLight-Intelligence/internal/application/development"
	infracatalog "github.com/slatedeck/GreenLight-Intelligence/internal/infrastructure/catalog"
	"github.com/slatedeck/GreenLight-Intelligence/internal/infrastructure/database/filestore"
	"github.com/slatedeck/GreenLight-Intelligence/internal/infrastructure/database/redis"
	"github.com/slatedeck/GreenLight-Intelligence/internal/infrastructure/monitoring/logging"
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	storeDir string
	seed     int64
	seedSet  bool
	jsonOut  bool
	verbose  bool
}

// app is the lazily-built service stack behind the commands.
type app struct {
	flags    *rootFlags
	analyzer *appanalysis.Service
	devsvc   *development.Service
	logger   logging.Logger
}

// options converts the --seed flag into analysis options.
func (a *app) options() appanalysis.Options {
	if a.flags.seedSet {
		return appanalysis.WithSeed(a.flags.seed)
	}
	return appanalysis.Options{}
}

// build wires the in-process stack.
func (a *app) build() error {
	level := "warn"
	if a.flags.verbose {
		level = "debug"
	}
	logger, err := logging.NewLogger(logging.LogConfig{Level: level, Format: "console"})
	if err != nil {
		return err
	}
	a.logger = logger

	provider := infracatalog.NewMemoryProvider()
	a.analyzer = appanalysis.NewService(provider, nil, nil, nil, logger)

	repo, err := filestore.NewVersionRepository(a.flags.storeDir)
	if err != nil {
		return err
	}
	a.devsvc = development.NewService(a.analyzer, repo, redis.NewLocalLocker(), nil, logger)
	return nil
}

// printJSON renders any value as indented JSON on stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// NewRootCommand assembles the command tree.
func NewRootCommand(version string) *cobra.Command {
	flags := &rootFlags{}
	application := &app{flags: flags}

	root := &cobra.Command{
		Use:           "greenlight",
		Short:         "Commercial-viability scoring for screenwriting concepts",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentPreRunE = func(*cobra.Command, []string) error {
		flags.seedSet = root.PersistentFlags().Changed("seed")
		return application.build()
	}
	root.PersistentFlags().StringVar(&flags.storeDir, "store", defaultStoreDir(), "version-history directory")
	root.PersistentFlags().Int64Var(&flags.seed, "seed", 0, "fixed RNG seed for reproducible output")
	root.PersistentFlags().BoolVar(&flags.jsonOut, "json", false, "emit JSON instead of markdown")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "verbose logging")

	root.AddCommand(
		newAnalyzeCommand(application),
		newCompareCommand(application),
		newHistoryCommand(application),
		newSaveCommand(application),
		newWhatIfCommand(application),
		newRewriteCommand(application),
	)
	return root
}

func defaultStoreDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".greenlight/versions"
	}
	return home + "/.greenlight/versions"
}

// Execute runs the CLI.
func Execute(version string) {
	if err := NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
