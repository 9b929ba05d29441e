// Command ridgesim replays scripted scenarios against levels headlessly
// and reports whether their movement checks hold. It runs the same
// systems the game does, at the same fixed step, with no window.
//
// Usage:
//
//	ridgesim [-levels dir] [-v] scenario.yaml...
package main

import (
	"flag"
	"os"

	"github.com/spindleworks/ridgerun/assets"
	cfg "github.com/spindleworks/ridgerun/config"
	"github.com/spindleworks/ridgerun/sim"
	"go.uber.org/zap"
)

func main() {
	levelsDir := flag.String("levels", "", "load levels from this directory instead of the embedded set")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	logger := newLogger(*verbose)
	defer func() { _ = logger.Sync() }()

	if flag.NArg() == 0 {
		logger.Fatal("usage: ridgesim [-levels dir] [-v] scenario.yaml...")
	}

	if *levelsDir != "" {
		cfg.Debug.LevelsDir = *levelsDir
	}
	levels, _ := assets.Loader().MustLoadLevels()

	runner := sim.NewRunner(logger)
	failed := 0
	for _, path := range flag.Args() {
		sc, err := sim.LoadScenarioFile(path)
		if err != nil {
			logger.Error("bad scenario", zap.String("path", path), zap.Error(err))
			failed++
			continue
		}
		lvl, ok := levels[sc.Level]
		if !ok {
			logger.Error("unknown level",
				zap.String("scenario", sc.Name),
				zap.String("level", sc.Level),
			)
			failed++
			continue
		}
		res, err := runner.Run(lvl, sc)
		if err != nil {
			logger.Error("run error", zap.String("scenario", sc.Name), zap.Error(err))
			failed++
			continue
		}
		if !res.Passed() {
			failed++
		}
	}

	if failed > 0 {
		logger.Error("scenarios failed", zap.Int("failed", failed), zap.Int("total", flag.NArg()))
		os.Exit(1)
	}
	logger.Info("all scenarios passed", zap.Int("total", flag.NArg()))
}

func newLogger(verbose bool) *zap.Logger {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	config := zap.Config{
		Level:            level,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}

	logger, err := config.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
