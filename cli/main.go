package main

import (
	"fmt"
	"os"

	"github.com/BertoldVdb/preset-tools/uasset"
	"github.com/alecthomas/kong"
)

type Context struct {
	logf uasset.LogFunc
}

var CLI struct {
	LogLevel int `optional help:"Higher values give more output."`

	Generate GenerateCmd `cmd help:"Generate a game preset for a custom map."`
	Batch    BatchCmd    `cmd help:"Generate all presets listed in a YAML manifest."`
	Show     ShowCmd     `cmd help:"Print the fields and upgrades stored in a preset."`
	Diff     DiffCmd     `cmd help:"Hexdump the data segment of a preset, marking bytes that differ from the template."`
}

func main() {
	k, err := kong.New(&CLI,
		kong.Name("presetgen"),
		kong.Description("Generate game presets for Pseudoregalia custom maps."),
		kong.NamedMapper("upgrades", upgradeListMapper{}))
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx, err := k.Parse(os.Args[1:])
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	c := &Context{
		logf: func(level int, format string, param ...interface{}) {
			if level > CLI.LogLevel {
				return
			}
			str := fmt.Sprintf(format, param...)
			fmt.Printf("preset(%d): %s\n", level, str)
		},
	}

	err = ctx.Run(c)
	ctx.FatalIfErrorf(err)
}
