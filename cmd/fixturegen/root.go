package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/spf13/cobra"

	"fixturegen-go/internal/config"
	"fixturegen-go/internal/driver"
	"fixturegen-go/internal/metrics"
	"fixturegen-go/internal/sample"
	"fixturegen-go/internal/sink"
	"fixturegen-go/internal/util"
)

const defaultConfigPath = "config.yaml"

var now = time.Now

// overrides holds flag values; each is applied only when its flag was set.
type overrides struct {
	configPath  string
	outDir      string
	start       string
	end         string
	location    string
	seed        int64
	format      string
	manifest    bool
	logLevel    string
	pretty      bool
	metricsFile string
	dryRun      bool
}

func newRootCmd() *cobra.Command {
	var o overrides
	cmd := &cobra.Command{
		Use:   "fixturegen",
		Short: "Generate synthetic exchange account fixtures",
		Long: `fixturegen fabricates spot trades, futures trades, deposits, withdrawals and
staking rewards for every day of a window and writes them as JSON fixtures.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, o)
			if err != nil {
				log := util.NewLogger(cmd.OutOrStdout(), o.logLevel, o.pretty)
				log.Error().Err(err).Msg("resolve config")
				return err
			}
			return generate(cmd.OutOrStdout(), cfg, o.dryRun)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&o.configPath, "config", "", "config file location (default is <CWD>/config.yaml, optional)")
	flags.StringVar(&o.outDir, "out", "", "output directory")
	flags.StringVar(&o.start, "start", "", "first day, YYYY-MM-DD")
	flags.StringVar(&o.end, "end", "", "last day, YYYY-MM-DD (default now)")
	flags.StringVar(&o.location, "location", "", "time zone days are cut in")
	flags.Int64Var(&o.seed, "seed", 0, "random seed (0 draws a fresh one)")
	flags.StringVar(&o.format, "format", "", "output format: json|jsonl")
	flags.BoolVar(&o.manifest, "manifest", false, "also write manifest.json")
	flags.StringVar(&o.logLevel, "log-level", "", "log level")
	flags.BoolVar(&o.pretty, "pretty", false, "pretty console logs")
	flags.StringVar(&o.metricsFile, "metrics-file", "", "write Prometheus textfile metrics here")
	flags.BoolVar(&o.dryRun, "dry-run", false, "generate in memory and report sizes without writing files")

	cmd.AddCommand(newConfigCmd())
	return cmd
}

func resolveConfig(cmd *cobra.Command, o overrides) (*config.Config, error) {
	path := o.configPath
	if path == "" {
		path = defaultConfigPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		if o.configPath != "" || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = config.Default()
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("out") {
		cfg.Output.Dir = o.outDir
	}
	if changed("start") {
		cfg.Window.Start = o.start
	}
	if changed("end") {
		cfg.Window.End = o.end
	}
	if changed("location") {
		cfg.Window.Location = o.location
	}
	if changed("seed") {
		cfg.Seed = o.seed
	}
	if changed("format") {
		cfg.Output.Format = o.format
	}
	if changed("manifest") {
		cfg.Output.Manifest = o.manifest
	}
	if changed("log-level") {
		cfg.App.LogLevel = o.logLevel
	}
	if changed("pretty") {
		cfg.App.PrettyLogs = o.pretty
	}
	if changed("metrics-file") {
		cfg.App.MetricsFile = o.metricsFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func generate(w io.Writer, cfg *config.Config, dryRun bool) error {
	log := util.NewLogger(w, cfg.App.LogLevel, cfg.App.PrettyLogs)

	start, end, err := cfg.Window.Bounds(now())
	if err != nil {
		return err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = sample.Seed()
	}

	var (
		out sink.Sink
		mem *sink.Memory
	)
	if dryRun {
		mem = sink.NewMemory()
		out = mem
	} else if out, err = newSink(cfg.Output); err != nil {
		log.Error().Err(err).Str("dir", cfg.Output.Dir).Msg("prepare output")
		return err
	}

	ev := log.Info().Str("format", cfg.Output.Format).Int64("seed", seed).Bool("dry_run", dryRun)
	if located, ok := out.(interface{ Path() string }); ok {
		ev = ev.Str("path", located.Path())
	}
	ev.Msg("generating fixtures")
	_, runErr := driver.New(out, log).Run(driver.Options{
		Start:    start,
		End:      end,
		Seed:     seed,
		Manifest: cfg.Output.Manifest,
	}, sample.New(seed))
	if runErr != nil {
		log.Error().Err(runErr).Msg("generation failed")
	}
	if mem != nil {
		for _, name := range mem.Names() {
			data, _ := mem.Bytes(name)
			log.Info().Str("file", name).Int("bytes", len(data)).Msg("dry run, not written")
		}
	}

	if cfg.App.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.App.MetricsFile); err != nil {
			log.Warn().Err(err).Str("path", cfg.App.MetricsFile).Msg("write metrics textfile")
		}
	}
	return runErr
}

func newSink(out config.Output) (sink.Sink, error) {
	if out.Format == config.FormatJSONL {
		return sink.NewJSONL(out.Dir)
	}
	return sink.NewDir(out.Dir, out.Indent)
}
