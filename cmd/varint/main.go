package main

import (
	"fmt"
	"log"
	"os"

	getopt "github.com/pborman/getopt/v2"
	"github.com/pborman/options"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type config struct {
	optSet *getopt.Set

	Help     bool   `getopt:"-h --help         Display this help"`
	Width    int    `getopt:"--width=bits      Integer width, 32 or 64. Default:"`
	Signed   bool   `getopt:"--signed          Treat values as signed and apply the zig-zag transform"`
	Check    bool   `getopt:"--check           Cross-check every result against the protobuf runtime encoder"`
	LogLevel string `getopt:"--log-level=level Logging level: debug, info, warn, error. Default:"`
}

func main() {
	cfg := &config{
		Width:    64,
		LogLevel: "info",
	}

	// operate over a private set rather than the package globals
	o := getopt.New()
	if err := options.RegisterSet("", cfg, o); err != nil {
		log.Fatalf("option set registration failed: %s", err)
	}
	cfg.optSet = o
	o.SetParameters("encode VALUE... | decode HEX...")

	if err := o.Getopt(os.Args, nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		o.PrintUsage(os.Stderr)
		os.Exit(2)
	}
	if cfg.Help {
		o.PrintUsage(os.Stdout)
		return
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("invalid --log-level: %s", err)
	}
	defer logger.Sync() //nolint:errcheck

	args := o.Args()
	if len(args) < 2 {
		o.PrintUsage(os.Stderr)
		os.Exit(2)
	}

	cmd := &command{
		width:  cfg.Width,
		signed: cfg.Signed,
		check:  cfg.Check,
		logger: logger,
	}
	if err := cmd.run(args[0], args[1:], os.Stdout); err != nil {
		logger.Error("varint failed", zap.String("command", args[0]), zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.Set(level); err != nil {
		return nil, err
	}
	var cfg zap.Config
	if lvl == zapcore.DebugLevel {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "console"
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
