package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/ashfallgames/gacodec/archive"
)

type decodeCommand struct {
	globals *globalOptions
	Output  string `short:"o" long:"output" description:"Output path (default: <file>.decoded)"`
	Args    struct {
		File string `positional-arg-name:"file" description:"Encoded archive member" required:"true"`
	} `positional-args:"yes"`
}

func (c *decodeCommand) Execute(args []string) error {
	cfg := loadConfig(c.globals)
	setupLogging(cfg)

	data, err := os.ReadFile(c.Args.File)
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.Args.File, err)
	}

	_, payload, err := archive.Decode(c.Args.File, data)
	if err != nil {
		return reportCodecError(err)
	}

	out := c.Output
	if out == "" {
		out = c.Args.File + ".decoded"
	}
	return os.WriteFile(out, payload, 0o644)
}

func addDecodeCommand(parser *flags.Parser, globals *globalOptions) {
	cmd := &decodeCommand{globals: globals}
	_, err := parser.AddCommand("decode",
		"Force the decode pipeline on a file",
		"Always runs the decode pipeline, failing with NotEncoded if the\n"+
			"magic prefix does not match.",
		cmd)
	if err != nil {
		panic(err)
	}
}
