package main

import (
	"github.com/BertoldVdb/preset-tools/preset"
)

type UpgradeFlags struct {
	DreamBreaker   bool `optional help:"Enable upgrade (attack)."`
	Slide          bool `optional help:"Enable upgrade (slide)."`
	Indignation    bool `optional help:"Enable upgrade (power boost)."`
	SunGreaves     bool `optional help:"Enable upgrade (air kick)."`
	Sunsetter      bool `optional help:"Enable upgrade (plunge)."`
	SolarWind      bool `optional help:"Enable upgrade (slide jump)."`
	ClingGem       bool `optional help:"Enable upgrade (wall ride)."`
	AscendantLight bool `optional help:"Enable upgrade (bounce attack)."`
	Strikebreak    bool `optional help:"Enable upgrade (charge attack)."`
	SoulCutter     bool `optional help:"Enable upgrade (projectile)."`
	HeliacalPower  bool `optional help:"Enable upgrade (extra kick)."`

	Enable []preset.Upgrade `optional type:"upgrades" help:"Comma separated upgrades to enable, eg. dream_breaker,slide."`
}

func (f *UpgradeFlags) upgrades() map[preset.Upgrade]bool {
	m := map[preset.Upgrade]bool{
		preset.DreamBreaker:   f.DreamBreaker,
		preset.Slide:          f.Slide,
		preset.Indignation:    f.Indignation,
		preset.SunGreaves:     f.SunGreaves,
		preset.Sunsetter:      f.Sunsetter,
		preset.SolarWind:      f.SolarWind,
		preset.ClingGem:       f.ClingGem,
		preset.AscendantLight: f.AscendantLight,
		preset.Strikebreak:    f.Strikebreak,
		preset.SoulCutter:     f.SoulCutter,
		preset.HeliacalPower:  f.HeliacalPower,
	}
	for _, u := range f.Enable {
		m[u] = true
	}
	return m
}

type GenerateCmd struct {
	Output string `required short:"o" help:"Filename stem for output preset uasset file (without extension)."`

	Title  string `required help:"Title of game preset."`
	Author string `required help:"Author of game preset."`
	Level  string `required help:"Name of level asset."`
	Tag    string `optional help:"PlayerStartTag of spawn point." default:"gameStart"`

	Upgrades UpgradeFlags `embed`

	Template string `optional help:"Path stem of a .uasset/.uexp pair to patch instead of the built-in template."`
}

func (g *GenerateCmd) options() preset.Options {
	return preset.Options{
		Title:    g.Title,
		Author:   g.Author,
		Level:    g.Level,
		StartTag: g.Tag,
		Upgrades: g.Upgrades.upgrades(),
	}
}

func generate(c *Context, template string, output string, opts preset.Options) (serializedAsset, error) {
	asset, err := loadTemplate(template, c.logf)
	if err != nil {
		return serializedAsset{}, err
	}

	if err := (preset.Config{LogFunc: c.logf}).Patch(asset, opts); err != nil {
		return serializedAsset{}, err
	}

	return serializeAsset(asset, output)
}

func (g *GenerateCmd) Run(c *Context) error {
	out, err := generate(c, g.Template, g.Output, g.options())
	if err != nil {
		return err
	}
	return out.writeFiles(c.logf)
}
