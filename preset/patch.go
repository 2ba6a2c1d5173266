package preset

import (
	"fmt"

	"github.com/BertoldVdb/preset-tools/uasset"
)

/* The preset DataTable is the first export of the package */
const presetExport = uasset.PackageIndex(1)

const DefaultStartTag = "gameStart"

type Options struct {
	Title    string
	Author   string
	Level    string
	StartTag string

	Upgrades map[Upgrade]bool
}

func (o *Options) field(f Field) string {
	switch f {
	case FieldTitle:
		return o.Title
	case FieldAuthor:
		return o.Author
	case FieldLevel:
		return o.Level
	case FieldStartTag:
		return o.StartTag
	}
	panic("unknown field")
}

func (o *Options) setField(f Field, value string) {
	switch f {
	case FieldTitle:
		o.Title = value
	case FieldAuthor:
		o.Author = value
	case FieldLevel:
		o.Level = value
	case FieldStartTag:
		o.StartTag = value
	}
}

/* Enable turns on the given upgrades */
func (o *Options) Enable(us ...Upgrade) {
	if o.Upgrades == nil {
		o.Upgrades = make(map[Upgrade]bool)
	}
	for _, u := range us {
		o.Upgrades[u] = true
	}
}

func bool2int(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

type Config struct {
	LogFunc uasset.LogFunc
}

func (c Config) log(level int, format string, param ...interface{}) {
	if c.LogFunc != nil {
		c.LogFunc(level, format, param...)
	}
}

/* Patch rewrites the preset row of a template asset in place using the default
 * configuration. */
func Patch(asset *uasset.Asset, opts Options) error {
	return Config{}.Patch(asset, opts)
}

func presetRow(asset *uasset.Asset) (*uasset.Row, error) {
	export, ok := asset.GetExport(presetExport).(*uasset.DataTableExport)
	if !ok {
		return nil, ErrorWrongExportKind
	}

	if len(export.Table.Data) == 0 {
		panic("preset table has no rows")
	}
	return &export.Table.Data[0], nil
}

func upgradeEntry(e uasset.MapEntry) (*uasset.NameProperty, *uasset.IntProperty, error) {
	k, ok := e.Key.(*uasset.NameProperty)
	if !ok {
		return nil, nil, fmt.Errorf("%w: key is %s, not a NameProperty", ErrorUnexpectedPropertyShape, e.Key.Type())
	}
	v, ok := e.Value.(*uasset.IntProperty)
	if !ok {
		return nil, nil, fmt.Errorf("%w: value is %s, not an IntProperty", ErrorUnexpectedPropertyShape, e.Value.Type())
	}
	return k, v, nil
}

func checkUpgradesName(prop *uasset.MapProperty) {
	if name := prop.Name.String(); name != UpgradesPropertyName {
		panic(fmt.Sprintf("unexpected map property %q in template", name))
	}
}

/* Patch overwrites the upgrade flags and the four string fields of row 0.
 * Asset shape problems abort with an error; the asset may then be partially
 * modified and must not be written. */
func (c Config) Patch(asset *uasset.Asset, opts Options) error {
	row, err := presetRow(asset)
	if err != nil {
		return err
	}
	c.log(2, "Patching row %s (%d properties)", row.Name, len(row.Value))

	for _, prop := range row.Value {
		switch prop := prop.(type) {
		case *uasset.MapProperty:
			checkUpgradesName(prop)

			for _, e := range prop.Value {
				k, v, err := upgradeEntry(e)
				if err != nil {
					return err
				}

				keyName := k.Value.String()
				u, ok := UpgradeByKey(keyName)
				if !ok {
					return &NameError{Err: ErrorUnrecognizedUpgradeKey, Name: keyName}
				}
				v.Value = bool2int(opts.Upgrades[u])
				c.log(3, "Upgrade %s (%s) = %d", keyName, u, v.Value)
			}

		case *uasset.StrProperty:
			name := prop.Name.String()
			f, ok := FieldByName(name)
			if !ok {
				return &NameError{Err: ErrorUnrecognizedStringField, Name: name}
			}
			prop.Replace(opts.field(f))
			c.log(3, "Field %s = %q", f, opts.field(f))

		default:
			return fmt.Errorf("%w: %s %s", ErrorUnexpectedExportShape, prop.Type(), prop.Header().Name)
		}
	}

	return nil
}

/* Inspect reads the preset row back into Options. It accepts exactly the
 * shapes Patch accepts. Upgrades with a non-zero value count as enabled. */
func Inspect(asset *uasset.Asset) (Options, error) {
	var opts Options

	row, err := presetRow(asset)
	if err != nil {
		return opts, err
	}

	opts.Upgrades = make(map[Upgrade]bool)
	for _, prop := range row.Value {
		switch prop := prop.(type) {
		case *uasset.MapProperty:
			checkUpgradesName(prop)

			for _, e := range prop.Value {
				k, v, err := upgradeEntry(e)
				if err != nil {
					return opts, err
				}
				u, ok := UpgradeByKey(k.Value.String())
				if !ok {
					return opts, &NameError{Err: ErrorUnrecognizedUpgradeKey, Name: k.Value.String()}
				}
				opts.Upgrades[u] = v.Value != 0
			}

		case *uasset.StrProperty:
			name := prop.Name.String()
			f, ok := FieldByName(name)
			if !ok {
				return opts, &NameError{Err: ErrorUnrecognizedStringField, Name: name}
			}
			if prop.Value != nil {
				opts.setField(f, *prop.Value)
			}

		default:
			return opts, fmt.Errorf("%w: %s %s", ErrorUnexpectedExportShape, prop.Type(), prop.Header().Name)
		}
	}

	return opts, nil
}
