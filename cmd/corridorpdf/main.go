package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"

	corridorpdf "github.com/alnah/go-corridorpdf"
	"github.com/alnah/go-corridorpdf/internal/config"
	"github.com/alnah/go-corridorpdf/internal/logging"
	"github.com/alnah/go-corridorpdf/internal/yamlutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	ctx, stop := notifyContext(context.Background())
	code := run(ctx, os.Args[1:], DefaultEnv())
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, env *Environment) int {
	if len(args) > 0 {
		switch args[0] {
		case "help":
			printUsage(env.Stdout)
			return ExitSuccess
		case "version":
			printVersion(env.Stdout)
			return ExitSuccess
		case "doctor":
			return runDoctorCmd(args[1:], env)
		}
	}

	flags, positional, err := parseFlags(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		return ExitUsage
	}
	if flags.version {
		printVersion(env.Stdout)
		return ExitSuccess
	}

	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	cfg, err := loadConfig(flags, envCfg)
	if err != nil {
		configName := flags.common.config
		if configName == "" {
			configName = envCfg.ConfigPath
		}
		return report(env.Stderr, err, errorHint(err, nil, configName))
	}

	if flags.printConfig {
		return printConfig(env.Stdout, env.Stderr, cfg)
	}

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	if err := validateWorkers(workers); err != nil {
		return report(env.Stderr, err, "")
	}

	logger, closeLog, err := logging.New(logging.Options{
		Verbose:    flags.common.verbose,
		Quiet:      flags.common.quiet,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
		Console:    env.Stderr,
	})
	if err != nil {
		return report(env.Stderr, fmt.Errorf("opening log: %w", err), "")
	}
	defer func() { _ = closeLog() }()

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(logger.Sugar().Debugf))

	params, err := newConversionParams(cfg, env.Now())
	if err != nil {
		return report(env.Stderr, err, "")
	}
	opts, err := converterOptions(cfg, logger)
	if err != nil {
		return report(env.Stderr, err, "")
	}

	poolSize := corridorpdf.ResolvePoolSize(workers)
	logger.Debug("starting conversion",
		zap.Int("pool_size", poolSize),
		zap.String("backend", cfg.Render.Backend),
		zap.String("theme", cfg.Theme.Name))

	pool, err := env.NewPool(poolSize, opts...)
	if err != nil {
		return report(env.Stderr, err, errorHint(err, cfg, ""))
	}
	defer func() {
		if err := pool.Close(); err != nil {
			logger.Warn("closing converters", zap.Error(err))
		}
	}()

	if err := runConvert(ctx, positional, flags, params, pool, env, logger); err != nil {
		var batch *batchError
		if errors.As(err, &batch) {
			return report(env.Stderr, err, "")
		}
		return report(env.Stderr, err, errorHint(err, cfg, ""))
	}
	return ExitSuccess
}

// report writes err with its hint and returns the matching exit code.
func report(w io.Writer, err error, hint string) int {
	fmt.Fprintf(w, "error: %v%s\n", err, hint)
	return exitCodeFor(err)
}

// printConfig writes the effective configuration as YAML.
func printConfig(stdout, stderr io.Writer, cfg *config.Config) int {
	data, err := yamlutil.Marshal(cfg)
	if err != nil {
		return report(stderr, err, "")
	}
	_, _ = stdout.Write(data)
	return ExitSuccess
}

// printVersion writes the version line.
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "corridorpdf %s\n", Version)
}
