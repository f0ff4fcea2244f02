package main

import (
	"fmt"
	"io"

	"github.com/finconsult/sipcalc/internal/calculation"
	"github.com/finconsult/sipcalc/internal/config"
	"github.com/finconsult/sipcalc/internal/logging"
	"github.com/finconsult/sipcalc/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app holds the state shared by every command for one invocation.
type app struct {
	configPath string
	logLevel   string
	cacheName  string
	format     string

	plan planFlags

	log    *logrus.Logger
	cache  store.Cache
	engine *calculation.PlanningEngine
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "sipcalc",
		Short: "Step-up SIP projection with LTCG tax and withdrawal sustainability",
		Long: "Project a monthly SIP that steps up every year, estimate long-term capital gains tax\n" +
			"on the outcome, and check how long a fixed monthly withdrawal can be sustained.",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { a.teardown() },
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Plan file (YAML or TOML); defaults to the example plan")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (overrides SIPCALC_LOG_LEVEL)")
	root.PersistentFlags().StringVar(&a.cacheName, "cache", "", "Report cache: none, memory, sqlite or redis (overrides SIPCALC_CACHE)")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", "console", "Output format")

	root.AddCommand(
		newProjectCmd(a),
		newCompareCmd(a),
		newWithdrawCmd(a),
		newAskCmd(a),
		newInitCmd(a),
		newInteractiveCmd(a),
	)
	return root
}

// setup loads process settings, configures logging and opens the cache.
// A cache that cannot be opened is logged and skipped.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		settings.LogLevel = a.logLevel
	}
	if a.cacheName != "" {
		settings.Cache = store.Backend(a.cacheName)
	}

	a.log = logging.New(settings.LogLevel, settings.Environment, cmd.ErrOrStderr())
	a.engine = calculation.NewPlanningEngine()
	a.engine.SetLogger(logging.NewEngineLogger(a.log))

	cache, err := store.Open(settings.Cache, settings.StoreOptions())
	if err != nil {
		a.log.Warnf("cache unavailable, running uncached: %v", err)
		return nil
	}
	if cache != nil {
		a.log.Debugf("using %s cache", settings.Cache)
		a.cache = cache
		a.engine.SetCache(cache)
	}
	return nil
}

func (a *app) teardown() {
	if a.cache == nil {
		return
	}
	if err := a.cache.Close(); err != nil {
		a.log.Warnf("closing cache: %v", err)
	}
	a.cache = nil
}

func writeLine(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
}
