package main

import (
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/henderiw/rangeindex/pkg/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbosity  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rangeindex",
		Short:         "Resolve points against a static set of non-overlapping ranges",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbosity)
		},
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the YAML range configuration")
	cmd.PersistentFlags().StringVar(&verbosity, "verbosity", "info", "Logging verbosity - choose from [info, debug, trace]")

	cmd.AddCommand(
		newFindCmd(),
		newIPCmd(),
		newSelectCmd(),
		newDumpCmd(),
	)
	return cmd
}

func setupLogging(verbosity string) {
	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.StampMilli,
		FullTimestamp:   true,
	})
	log.SetOutput(os.Stderr)

	switch verbosity {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "trace":
		log.SetLevel(log.TraceLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// indexLogger forwards index construction events to logrus.
func indexLogger() logr.Logger {
	v := 0
	if log.IsLevelEnabled(log.DebugLevel) {
		v = 1
	}
	return funcr.New(func(prefix, args string) {
		log.Debug(args)
	}, funcr.Options{Verbosity: v})
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfigFile(configPath)
	if err != nil {
		return nil, err
	}
	log.Debugf("loaded %d ranges and %d ip ranges, closure %s", len(cfg.Ranges), len(cfg.IPRanges), cfg.GetClosure())
	return cfg, nil
}
