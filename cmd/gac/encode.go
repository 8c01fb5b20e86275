package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/ashfallgames/gacodec/archive"
)

type encodeCommand struct {
	globals *globalOptions
	Output  string `short:"o" long:"output" description:"Output path (default: <file>.out)"`
	Game    string `short:"g" long:"game" description:"Game tag to encode for (a|b)" default:"a" required:"true"`
	Args    struct {
		File string `positional-arg-name:"file" description:"Raw payload file" required:"true"`
	} `positional-args:"yes"`
}

func (c *encodeCommand) Execute(args []string) error {
	cfg := loadConfig(c.globals)
	setupLogging(cfg)

	game, err := parseGameTag(c.Game)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(c.Args.File)
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.Args.File, err)
	}

	encoded := archive.Encode(c.Args.File, game, data)

	out := c.Output
	if out == "" {
		out = c.Args.File + ".out"
	}
	return os.WriteFile(out, encoded, 0o644)
}

func addEncodeCommand(parser *flags.Parser, globals *globalOptions) {
	cmd := &encodeCommand{globals: globals}
	_, err := parser.AddCommand("encode",
		"Force the encode pipeline on a file",
		"Always runs the encode pipeline against the given game tag,\n"+
			"regardless of whether the input already looks encoded.",
		cmd)
	if err != nil {
		panic(err)
	}
}
