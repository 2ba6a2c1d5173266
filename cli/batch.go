package main

import (
	"fmt"
	"os"

	"github.com/BertoldVdb/preset-tools/preset"
	"github.com/goccy/go-yaml"
)

type manifestPreset struct {
	Output   string   `yaml:"output"`
	Title    string   `yaml:"title"`
	Author   string   `yaml:"author"`
	Level    string   `yaml:"level"`
	Tag      *string  `yaml:"tag"`
	Upgrades []string `yaml:"upgrades"`
}

type manifest struct {
	Template string           `yaml:"template"`
	Presets  []manifestPreset `yaml:"presets"`
}

func parseManifest(data []byte) (*manifest, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (p *manifestPreset) options() (preset.Options, error) {
	opts := preset.Options{
		Title:    p.Title,
		Author:   p.Author,
		Level:    p.Level,
		StartTag: preset.DefaultStartTag,
		Upgrades: make(map[preset.Upgrade]bool),
	}
	if p.Tag != nil {
		opts.StartTag = *p.Tag
	}

	for _, name := range p.Upgrades {
		u, err := preset.ParseUpgrade(name)
		if err != nil {
			return opts, err
		}
		opts.Upgrades[u] = true
	}
	return opts, nil
}

type BatchCmd struct {
	Manifest string `arg type:"existingfile" help:"YAML file listing the presets to generate."`
}

/* Run builds every preset in memory first, so a bad entry leaves no files behind. */
func (b *BatchCmd) Run(c *Context) error {
	data, err := os.ReadFile(b.Manifest)
	if err != nil {
		return err
	}

	m, err := parseManifest(data)
	if err != nil {
		return fmt.Errorf("Failed to parse manifest: %w", err)
	}

	var outputs []serializedAsset
	for i, p := range m.Presets {
		if p.Output == "" {
			return fmt.Errorf("preset %d: no output given", i)
		}
		opts, err := p.options()
		if err != nil {
			return fmt.Errorf("preset %d (%s): %w", i, p.Output, err)
		}

		out, err := generate(c, m.Template, p.Output, opts)
		if err != nil {
			return fmt.Errorf("preset %d (%s): %w", i, p.Output, err)
		}
		outputs = append(outputs, out)
	}

	for _, out := range outputs {
		if err := out.writeFiles(c.logf); err != nil {
			return err
		}
	}
	fmt.Printf("Generated %d presets.\n", len(outputs))
	return nil
}
