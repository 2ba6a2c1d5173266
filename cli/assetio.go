package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BertoldVdb/preset-tools/preset"
	"github.com/BertoldVdb/preset-tools/uasset"
)

/* withExtension replaces the extension of the last path element, if any. */
func withExtension(stem string, ext string) string {
	base := filepath.Base(stem)
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		stem = stem[:len(stem)-len(base)+i]
	}
	return stem + "." + ext
}

func readAssetFiles(stem string) ([]byte, []byte, error) {
	header, err := os.ReadFile(withExtension(stem, "uasset"))
	if err != nil {
		return nil, nil, err
	}
	data, err := os.ReadFile(withExtension(stem, "uexp"))
	if err != nil {
		return nil, nil, err
	}
	return header, data, nil
}

func loadAsset(stem string, logf uasset.LogFunc) (*uasset.Asset, error) {
	header, data, err := readAssetFiles(stem)
	if err != nil {
		return nil, err
	}

	a, err := uasset.Read(header, data, logf)
	if err != nil {
		return nil, fmt.Errorf("Failed to parse %s: %w", stem, err)
	}
	return a, nil
}

/* loadTemplate returns the built-in template when stem is empty. */
func loadTemplate(stem string, logf uasset.LogFunc) (*uasset.Asset, error) {
	if stem == "" {
		logf(1, "Using built-in template %s", preset.TemplateName)
		return preset.NewTemplate(), nil
	}
	logf(1, "Using template %s", stem)
	return loadAsset(stem, logf)
}

type serializedAsset struct {
	stem   string
	header []byte
	data   []byte
}

func serializeAsset(a *uasset.Asset, stem string) (serializedAsset, error) {
	var header, data bytes.Buffer
	if err := a.Write(&header, &data); err != nil {
		return serializedAsset{}, fmt.Errorf("Failed to serialize %s: %w", stem, err)
	}
	return serializedAsset{stem: stem, header: header.Bytes(), data: data.Bytes()}, nil
}

func (s serializedAsset) writeFiles(logf uasset.LogFunc) error {
	headerPath := withExtension(s.stem, "uasset")
	if err := os.WriteFile(headerPath, s.header, 0644); err != nil {
		return err
	}
	dataPath := withExtension(s.stem, "uexp")
	if err := os.WriteFile(dataPath, s.data, 0644); err != nil {
		return err
	}

	logf(1, "Wrote %s (%d bytes) and %s (%d bytes)", headerPath, len(s.header), dataPath, len(s.data))
	return nil
}
