package main

import (
	"reflect"
	"strings"

	"github.com/BertoldVdb/preset-tools/preset"
	"github.com/alecthomas/kong"
)

/* upgradeListMapper decodes comma separated upgrade names, eg.
 * --enable dream_breaker,slide. Repeating the flag appends. */
type upgradeListMapper struct{}

func (upgradeListMapper) Decode(ctx *kong.DecodeContext, target reflect.Value) error {
	var value string
	err := ctx.Scan.PopValueInto("upgrades", &value)
	if err != nil {
		return err
	}

	for _, name := range strings.Split(value, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		u, err := preset.ParseUpgrade(name)
		if err != nil {
			return err
		}
		target.Set(reflect.Append(target, reflect.ValueOf(u)))
	}
	return nil
}
