// Command gac is a unified CLI for decoding and encoding GAME_A/GAME_B
// archive members.
//
// Usage:
//
//	gac <command> [options]
//
// Commands:
//
//	convert   Auto-detect direction and convert a single file
//	decode    Force the decode pipeline on a file
//	encode    Force the encode pipeline on a file
//	batch     Walk a directory and convert every regular file in it
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"

	"github.com/ashfallgames/gacodec/config"
	gaclog "github.com/ashfallgames/gacodec/log"
)

var version = "dev"

type globalOptions struct {
	Version  func() `short:"V" long:"version" description:"Print version and exit"`
	Config   string `long:"config" description:"Path to config file" default:".gacrc.yml"`
	Workers  int    `short:"w" long:"workers" description:"Number of parallel workers (0 = use config/default)"`
	LogLevel string `long:"log-level" description:"Override the configured log level"`
}

func main() {
	var globals globalOptions
	globals.Version = func() {
		fmt.Printf("gac %s\n", version)
		os.Exit(0)
	}

	parser := flags.NewParser(&globals, flags.Default)
	parser.Name = "gac"
	parser.LongDescription = "A toolkit for decoding and encoding GAME_A/GAME_B archive members"

	addConvertCommand(parser, &globals)
	addDecodeCommand(parser, &globals)
	addEncodeCommand(parser, &globals)
	addBatchCommand(parser, &globals)

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
			if flagsErr.Type == flags.ErrCommandRequired {
				parser.WriteHelp(os.Stderr)
				os.Exit(1)
			}
		}
		os.Exit(1)
	}
}

// loadConfig loads the configured file, then overlays any global flags
// the user passed, giving them the final say (spec.md-expansion §4.9).
func loadConfig(g *globalOptions) config.Config {
	cfg, err := config.Load(g.Config)
	if err != nil {
		cfg = config.DefaultConfig()
	}
	cfg = cfg.ApplyWorkers(g.Workers)
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	return cfg
}

func setupLogging(cfg config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var w io.Writer = os.Stderr
	if cfg.LogFormat != "json" {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	zlog := zerolog.New(w).Level(level).With().Timestamp().Logger()
	gaclog.SetLogger(gaclog.NewZerologAdapter(zlog))
}
