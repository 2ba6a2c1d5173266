package preset

import (
	"bytes"
	"errors"
	"testing"

	"github.com/BertoldVdb/preset-tools/uasset"
	"github.com/google/go-cmp/cmp"
)

func testRow(t *testing.T, a *uasset.Asset) *uasset.Row {
	t.Helper()
	dt, ok := a.GetExport(1).(*uasset.DataTableExport)
	if !ok {
		t.Fatal("template has no DataTable")
	}
	return &dt.Table.Data[0]
}

func upgradesMap(t *testing.T, a *uasset.Asset) *uasset.MapProperty {
	t.Helper()
	for _, p := range testRow(t, a).Value {
		if m, ok := p.(*uasset.MapProperty); ok {
			return m
		}
	}
	t.Fatal("row has no map property")
	return nil
}

func stringFields(t *testing.T, a *uasset.Asset) map[string]*string {
	t.Helper()
	fields := make(map[string]*string)
	for _, p := range testRow(t, a).Value {
		if s, ok := p.(*uasset.StrProperty); ok {
			fields[s.Name.String()] = s.Value
		}
	}
	return fields
}

type mapValue struct {
	Key   string
	Value int32
}

func mapValues(t *testing.T, a *uasset.Asset) []mapValue {
	t.Helper()
	var values []mapValue
	for _, e := range upgradesMap(t, a).Value {
		values = append(values, mapValue{
			Key:   e.Key.(*uasset.NameProperty).Value.String(),
			Value: e.Value.(*uasset.IntProperty).Value,
		})
	}
	return values
}

func TestPatchAllUpgradeCombinations(t *testing.T) {
	keys := []string{"attack", "slide", "SlideJump", "Light", "airKick", "projectile", "plunge", "powerBoost", "extraKick", "chargeAttack", "wallRide"}

	for bits := 0; bits < 1<<len(keys); bits++ {
		opts := Options{Upgrades: make(map[Upgrade]bool)}
		var want []mapValue
		for i, k := range keys {
			on := bits&(1<<i) != 0
			u, ok := UpgradeByKey(k)
			if !ok {
				t.Fatalf("no upgrade for key %s", k)
			}
			opts.Upgrades[u] = on
			want = append(want, mapValue{Key: k, Value: bool2int(on)})
		}

		a := NewTemplate()
		if err := Patch(a, opts); err != nil {
			t.Fatalf("bits %x: %v", bits, err)
		}
		if diff := cmp.Diff(want, mapValues(t, a)); diff != "" {
			t.Fatalf("bits %x (-want +got):\n%s", bits, diff)
		}
	}
}

func TestPatchStrings(t *testing.T) {
	values := []string{"", "Hub", "Zone_Library", "quote \" back\\slash", "日本語 ünïcode", "tab\tnew\nline", "nul\x00inside", "emoji 🎮"}

	for _, f := range []Field{FieldTitle, FieldAuthor, FieldLevel, FieldStartTag} {
		for _, v := range values {
			opts := Options{Title: "T", Author: "A", Level: "L", StartTag: "S"}
			opts.setField(f, v)

			a := NewTemplate()
			if err := Patch(a, opts); err != nil {
				t.Fatalf("%s=%q: %v", f, v, err)
			}

			want := map[string]*string{
				FieldTitle.PropertyName():    strp(opts.Title),
				FieldAuthor.PropertyName():   strp(opts.Author),
				FieldLevel.PropertyName():    strp(opts.Level),
				FieldStartTag.PropertyName(): strp(opts.StartTag),
			}
			if diff := cmp.Diff(want, stringFields(t, a)); diff != "" {
				t.Errorf("%s=%q (-want +got):\n%s", f, v, diff)
			}
		}
	}
}

func strp(s string) *string {
	return &s
}

func TestPatchPreservesShape(t *testing.T) {
	a := NewTemplate()
	before := testRow(t, a)
	var names []string
	for _, p := range before.Value {
		names = append(names, p.Type()+" "+p.Header().Name.String())
	}

	opts := Options{Title: "x"}
	opts.Enable(AllUpgrades()...)
	if err := Patch(a, opts); err != nil {
		t.Fatal(err)
	}

	var after []string
	for _, p := range testRow(t, a).Value {
		after = append(after, p.Type()+" "+p.Header().Name.String())
	}
	if diff := cmp.Diff(names, after); diff != "" {
		t.Errorf("property list changed (-want +got):\n%s", diff)
	}
	if n := len(upgradesMap(t, a).Value); n != 11 {
		t.Errorf("map has %d entries", n)
	}
}

func TestPatchIsIdempotent(t *testing.T) {
	opts := Options{Title: "Hub", Author: "A", Level: "L1", StartTag: "start"}
	opts.Enable(Sunsetter, ClingGem)

	a, b := NewTemplate(), NewTemplate()
	for _, x := range []*uasset.Asset{a, b} {
		if err := Patch(x, opts); err != nil {
			t.Fatal(err)
		}
	}
	if diff := cmp.Diff(a.Exports, b.Exports); diff != "" {
		t.Errorf("exports differ (-a +b):\n%s", diff)
	}

	if err := Patch(a, opts); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a.Exports, b.Exports); diff != "" {
		t.Errorf("second patch changed the asset (-a +b):\n%s", diff)
	}

	var ah, ad, bh, bd bytes.Buffer
	if err := a.Write(&ah, &ad); err != nil {
		t.Fatal(err)
	}
	if err := b.Write(&bh, &bd); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(ah.Bytes(), bh.Bytes()) || !bytes.Equal(ad.Bytes(), bd.Bytes()) {
		t.Error("serialized presets differ")
	}
}

func TestPatchScenario(t *testing.T) {
	type scenarioTest struct {
		name     string
		upgrades []Upgrade
		enabled  map[string]bool
	}

	tests := []scenarioTest{
		{name: "all off"},
		{
			name:     "attack and slide",
			upgrades: []Upgrade{DreamBreaker, Slide},
			enabled:  map[string]bool{"attack": true, "slide": true},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := Options{Title: "Hub", Author: "A", Level: "L1", StartTag: "start"}
			opts.Enable(tc.upgrades...)

			a := NewTemplate()
			if err := Patch(a, opts); err != nil {
				t.Fatal(err)
			}

			values := mapValues(t, a)
			if len(values) != 11 {
				t.Fatalf("map has %d entries", len(values))
			}
			for _, v := range values {
				if want := bool2int(tc.enabled[v.Key]); v.Value != want {
					t.Errorf("%s = %d, want %d", v.Key, v.Value, want)
				}
			}

			fields := stringFields(t, a)
			for f, want := range map[Field]string{FieldTitle: "Hub", FieldAuthor: "A", FieldLevel: "L1", FieldStartTag: "start"} {
				if got := fields[f.PropertyName()]; got == nil || *got != want {
					t.Errorf("%s = %v, want %q", f, got, want)
				}
			}
		})
	}
}

func TestPatchErrors(t *testing.T) {
	type errorTest struct {
		name   string
		modify func(a *uasset.Asset)
		err    error
		bad    string
	}

	row := func(a *uasset.Asset) *uasset.Row {
		return &a.Exports[0].(*uasset.DataTableExport).Table.Data[0]
	}
	entry := func(a *uasset.Asset) *uasset.MapEntry {
		for _, p := range row(a).Value {
			if m, ok := p.(*uasset.MapProperty); ok {
				return &m.Value[3]
			}
		}
		return nil
	}

	tests := []errorTest{
		{
			name: "raw export",
			modify: func(a *uasset.Asset) {
				a.Exports[0] = &uasset.RawExport{ExportHeader: *a.Exports[0].Header()}
			},
			err: ErrorWrongExportKind,
		},
		{
			name:   "no exports",
			modify: func(a *uasset.Asset) { a.Exports = nil },
			err:    ErrorWrongExportKind,
		},
		{
			name: "unknown upgrade key",
			modify: func(a *uasset.Asset) {
				entry(a).Key = &uasset.NameProperty{Value: uasset.NewFName("unknownFlag")}
			},
			err: ErrorUnrecognizedUpgradeKey,
			bad: "unknownFlag",
		},
		{
			name: "key is not a name",
			modify: func(a *uasset.Asset) {
				entry(a).Key = &uasset.StrProperty{Value: strp("attack")}
			},
			err: ErrorUnexpectedPropertyShape,
		},
		{
			name: "value is not an int",
			modify: func(a *uasset.Asset) {
				entry(a).Value = &uasset.BoolProperty{}
			},
			err: ErrorUnexpectedPropertyShape,
		},
		{
			name: "unknown string field",
			modify: func(a *uasset.Asset) {
				r := row(a)
				r.Value = append(r.Value, &uasset.StrProperty{
					PropertyHeader: uasset.PropertyHeader{Name: uasset.NewFName("Subtitle_3_00000000000000000000000000000000")},
				})
			},
			err: ErrorUnrecognizedStringField,
			bad: "Subtitle_3_00000000000000000000000000000000",
		},
		{
			name: "other property kind",
			modify: func(a *uasset.Asset) {
				r := row(a)
				r.Value = append(r.Value, &uasset.IntProperty{
					PropertyHeader: uasset.PropertyHeader{Name: uasset.NewFName("Difficulty_7_00000000000000000000000000000000")},
				})
			},
			err: ErrorUnexpectedExportShape,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewTemplate()
			tc.modify(a)

			err := Patch(a, Options{})
			if !errors.Is(err, tc.err) {
				t.Fatalf("got %v, want %v", err, tc.err)
			}

			var nameErr *NameError
			if tc.bad != "" {
				if !errors.As(err, &nameErr) || nameErr.Name != tc.bad {
					t.Errorf("got %v, want name %q", err, tc.bad)
				}
			}

			if _, err := Inspect(a); !errors.Is(err, tc.err) {
				t.Errorf("Inspect: got %v, want %v", err, tc.err)
			}
		})
	}
}

func TestPatchWrongExportLeavesRowsAlone(t *testing.T) {
	a := NewTemplate()
	dt := a.Exports[0].(*uasset.DataTableExport)
	a.Exports[0] = &uasset.RawExport{ExportHeader: dt.ExportHeader}

	if err := Patch(a, Options{Title: "changed"}); !errors.Is(err, ErrorWrongExportKind) {
		t.Fatalf("got %v", err)
	}
	for _, p := range dt.Table.Data[0].Value {
		if s, ok := p.(*uasset.StrProperty); ok && s.Value != nil && *s.Value == "changed" {
			t.Errorf("%s was modified", s.Name)
		}
	}
}

func expectPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Error("no panic")
		}
	}()
	f()
}

func TestPatchTemplateDriftPanics(t *testing.T) {
	a := NewTemplate()
	upgradesMap(t, a).Name = uasset.NewFName("Upgrades_13_00000000000000000000000000000000")
	expectPanic(t, func() { Patch(a, Options{}) })

	b := NewTemplate()
	b.Exports[0].(*uasset.DataTableExport).Table.Data = nil
	expectPanic(t, func() { Patch(b, Options{}) })
}

func TestInspectAfterPatch(t *testing.T) {
	opts := Options{Title: "Hub", Author: "A", Level: "L1", StartTag: "start", Upgrades: make(map[Upgrade]bool)}
	for _, u := range AllUpgrades() {
		opts.Upgrades[u] = u%3 == 0
	}

	a := NewTemplate()
	if err := Patch(a, opts); err != nil {
		t.Fatal(err)
	}

	var header, data bytes.Buffer
	if err := a.Write(&header, &data); err != nil {
		t.Fatal(err)
	}
	b, err := uasset.Read(header.Bytes(), data.Bytes(), nil)
	if err != nil {
		t.Fatal(err)
	}

	got, err := Inspect(b)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(opts, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestPatchLogs(t *testing.T) {
	var lines int
	c := Config{LogFunc: func(level int, format string, param ...interface{}) {
		lines++
	}}
	if err := c.Patch(NewTemplate(), Options{}); err != nil {
		t.Fatal(err)
	}
	/* One line for the row, one per upgrade and one per string field */
	if lines != 1+11+4 {
		t.Errorf("got %d log lines", lines)
	}
}
