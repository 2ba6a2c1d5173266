package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/BertoldVdb/preset-tools/preset"
	"github.com/fatih/color"
	"github.com/inancgumus/screen"
)

type ShowCmd struct {
	Preset string `arg optional help:"Path stem of the preset, omit for the built-in template."`
	Loop   bool   `optional help:"Reload and redraw until interrupted."`
}

func printPreset(w io.Writer, opts preset.Options) {
	on := color.New(color.FgGreen)
	off := color.New(color.FgRed)

	fmt.Fprintf(w, "Title:      %s\n", opts.Title)
	fmt.Fprintf(w, "Author:     %s\n", opts.Author)
	fmt.Fprintf(w, "Level:      %s\n", opts.Level)
	fmt.Fprintf(w, "Start tag:  %s\n", opts.StartTag)
	fmt.Fprintln(w, "Upgrades:")
	for _, u := range preset.AllUpgrades() {
		state := off.Sprint("off")
		if opts.Upgrades[u] {
			state = on.Sprint("on")
		}
		fmt.Fprintf(w, "  %-16s %-14s %s\n", u, "("+u.Description()+")", state)
	}
}

func (s *ShowCmd) Run(c *Context) error {
	for {
		startTime := time.Now()

		asset, err := loadTemplate(s.Preset, c.logf)
		if err != nil {
			return err
		}
		opts, err := preset.Inspect(asset)
		if err != nil {
			return err
		}

		if s.Loop {
			screen.Clear()
			screen.MoveTopLeft()
		}
		printPreset(os.Stdout, opts)

		if !s.Loop {
			break
		}
		d := time.Since(startTime)
		td := 200 * time.Millisecond
		if d < td {
			time.Sleep(td - d)
		}
	}

	return nil
}
