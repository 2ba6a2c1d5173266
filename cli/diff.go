package main

import (
	"fmt"

	"github.com/BertoldVdb/preset-tools/preset"
)

type DiffCmd struct {
	Preset  string `arg help:"Path stem of the preset."`
	Against string `optional help:"Path stem to compare with instead of the built-in template."`
}

func diffMarks(a []byte, b []byte) ([]bool, int) {
	mark := make([]bool, len(a))
	n := 0
	for i := range a {
		if i >= len(b) || a[i] != b[i] {
			mark[i] = true
			n++
		}
	}
	return mark, n
}

func (d *DiffCmd) Run(c *Context) error {
	_, data, err := readAssetFiles(d.Preset)
	if err != nil {
		return err
	}

	var ref []byte
	if d.Against != "" {
		_, ref, err = readAssetFiles(d.Against)
		if err != nil {
			return err
		}
	} else {
		out, err := serializeAsset(preset.NewTemplate(), preset.TemplateName)
		if err != nil {
			return err
		}
		ref = out.data
	}

	mark, n := diffMarks(data, ref)
	fmt.Print(hexdump(0, data, mark))
	fmt.Printf("%d of %d bytes differ (reference has %d bytes).\n", n, len(data), len(ref))
	return nil
}
