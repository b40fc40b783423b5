// Command octbench times octree lookups against linear scans over a sweep of
// batch sizes and appends one tab-separated line per size to the output file.
//
// Usage:
//
//	octbench [flags] <output.tsv>
//
// Settings come from flags, OCTBENCH_* environment variables and an optional
// config file (--config), in that order of precedence.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/octree/bench"
	"github.com/katalvlaran/octree/internal/logging"
)

const appName = "octbench"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	config, out, err := loadConfig(args)
	if err != nil {
		return err
	}

	log, err := logging.New(appName, config)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	var settings struct {
		Bench bench.Config `mapstructure:"bench"`
	}
	if err := config.Unmarshal(&settings); err != nil {
		return fmt.Errorf("decode bench settings: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runID := uuid.New()
	opts := []bench.Option{bench.WithLogger(log), bench.WithRunID(runID)}

	tsv, err := bench.OpenTSVFile(out)
	if err != nil {
		return err
	}
	defer tsv.Close()
	opts = append(opts, bench.WithSink(tsv))

	if dsn := config.GetString("db"); dsn != "" {
		db, err := bench.OpenSQLiteSink(ctx, dsn)
		if err != nil {
			return err
		}
		defer db.Close()
		opts = append(opts, bench.WithSink(db))
	}

	var metrics *bench.Metrics
	textfile := config.GetString("metrics")
	if textfile != "" {
		metrics = bench.NewMetrics(map[string]string{"run_id": runID.String()})
		opts = append(opts, bench.WithMetrics(metrics))
	}

	runner, err := bench.NewRunner(settings.Bench, opts...)
	if err != nil {
		return err
	}
	rows, runErr := runner.Run(ctx)

	if metrics != nil {
		if err := metrics.WriteTextfile(textfile); err != nil {
			log.Error("write metrics textfile", zap.String("path", textfile), zap.Error(err))
		}
	}
	if errors.Is(runErr, context.Canceled) {
		log.Warn("sweep interrupted", zap.Int("rows", len(rows)))
		return nil
	}

	return runErr
}

// loadConfig merges defaults, config file, environment and flags, and
// returns the positional output path.
func loadConfig(args []string) (*viper.Viper, string, error) {
	config := viper.New()
	logging.SetDefaults(config)
	def := bench.DefaultConfig()
	config.SetDefault("bench.initpoints", def.InitPoints)
	config.SetDefault("bench.deltapoints", def.DeltaPoints)
	config.SetDefault("bench.increments", def.Increments)
	config.SetDefault("bench.runs", def.Runs)
	config.SetDefault("bench.minpoints", def.MinPoints)
	config.SetDefault("bench.maxtolerance", def.MaxTolerance)
	config.SetDefault("bench.maxvariation", def.MaxVariation)
	config.SetDefault("bench.maxgroup", def.MaxGroup)
	config.SetDefault("bench.seed", def.Seed)
	config.SetDefault("db", "")
	config.SetDefault("metrics", "")

	flags := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	flags.String("config", "", "config file (yaml, json or toml)")
	flags.String("db", "", "also store rows in this SQLite database")
	flags.String("metrics", "", "write Prometheus metrics to this textfile")
	flags.Int("init-points", def.InitPoints, "smallest batch size")
	flags.Int("delta-points", def.DeltaPoints, "batch size increment")
	flags.Int("increments", def.Increments, "number of batch sizes")
	flags.Int("runs", def.Runs, "runs per batch size")
	flags.Int("min-points", def.MinPoints, "skip batch sizes below this")
	flags.Float64("max-tolerance", def.MaxTolerance, "query tolerance upper bound")
	flags.Float64("max-variation", def.MaxVariation, "query perturbation half-width")
	flags.Int("max-group", def.MaxGroup, "largest run of points sharing coordinates")
	flags.Int64("seed", def.Seed, "random seed")
	flags.String("log-level", "info", "debug, info, warn or error")
	flags.String("log-dir", "", "write logs to <dir>/octbench.log")
	if err := flags.Parse(args); err != nil {
		return nil, "", err
	}

	bind := map[string]string{
		"db":                 "db",
		"metrics":            "metrics",
		"bench.initpoints":   "init-points",
		"bench.deltapoints":  "delta-points",
		"bench.increments":   "increments",
		"bench.runs":         "runs",
		"bench.minpoints":    "min-points",
		"bench.maxtolerance": "max-tolerance",
		"bench.maxvariation": "max-variation",
		"bench.maxgroup":     "max-group",
		"bench.seed":         "seed",
		"logger.level":       "log-level",
		"logger.dir":         "log-dir",
	}
	for key, flag := range bind {
		if err := config.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return nil, "", err
		}
	}

	config.SetEnvPrefix(appName)
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()

	if file, _ := flags.GetString("config"); file != "" {
		config.SetConfigFile(file)
		if err := config.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("read config: %w", err)
		}
	}

	if flags.NArg() != 1 {
		return nil, "", fmt.Errorf("expected exactly one output file, got %d arguments", flags.NArg())
	}

	return config, flags.Arg(0), nil
}
