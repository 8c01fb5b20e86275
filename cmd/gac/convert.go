package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/ashfallgames/gacodec/archive"
)

type convertCommand struct {
	globals *globalOptions
	Output  string `short:"o" long:"output" description:"Output path (default: <file>.out)"`
	Game    string `short:"g" long:"game" description:"Game tag to use when encoding (a|b)" default:"a"`
	Args    struct {
		File string `positional-arg-name:"file" description:"File to convert" required:"true"`
	} `positional-args:"yes"`
}

func (c *convertCommand) Execute(args []string) error {
	cfg := loadConfig(c.globals)
	setupLogging(cfg)

	data, err := os.ReadFile(c.Args.File)
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.Args.File, err)
	}

	out := c.Output
	if out == "" {
		out = c.Args.File + ".out"
	}

	if archive.IsEncoded(data) {
		_, payload, err := archive.Decode(c.Args.File, data)
		if err != nil {
			return reportCodecError(err)
		}
		return os.WriteFile(out, payload, 0o644)
	}

	game, err := parseGameTag(c.Game)
	if err != nil {
		return err
	}
	encoded := archive.Encode(c.Args.File, game, data)
	return os.WriteFile(out, encoded, 0o644)
}

func addConvertCommand(parser *flags.Parser, globals *globalOptions) {
	cmd := &convertCommand{globals: globals}
	_, err := parser.AddCommand("convert",
		"Auto-detect direction and convert a single file",
		"Reads a file, detects whether it is an encoded archive member or a\n"+
			"raw payload from its magic prefix, and writes the converted form\n"+
			"to the output path.",
		cmd)
	if err != nil {
		panic(err)
	}
}
