package preset

import "github.com/BertoldVdb/preset-tools/uasset"

const (
	TemplateName    = "Preset_th1"
	TemplateVersion = uasset.VersionUE51

	rowStructPackage = "/Game/Data/Presets/PresetStruct"
	rowStructName    = "PresetStruct"
)

const (
	pkgFilterEditorOnly = 0x80000000

	rfPublic        = 0x1
	rfStandalone    = 0x2
	rfTransactional = 0x8
)

func str(s string) *string {
	return &s
}

/* NewTemplate builds the Preset_th1 table: one DataTable export with a single
 * row and every upgrade disabled. Every call returns an independent asset. */
func NewTemplate() *uasset.Asset {
	a := uasset.New(TemplateVersion)
	a.PackageFlags = pkgFilterEditorOnly

	coreUObject := uasset.NewFName("/Script/CoreUObject")
	engine := uasset.NewFName("/Script/Engine")

	enginePkg := a.AddImport(uasset.Import{
		ClassPackage: coreUObject,
		ClassName:    uasset.NewFName("Package"),
		ObjectName:   engine,
	})
	dataTableClass := a.AddImport(uasset.Import{
		ClassPackage: coreUObject,
		ClassName:    uasset.NewFName("Class"),
		OuterIndex:   enginePkg,
		ObjectName:   uasset.NewFName("DataTable"),
	})
	structPkg := a.AddImport(uasset.Import{
		ClassPackage: coreUObject,
		ClassName:    uasset.NewFName("Package"),
		ObjectName:   uasset.NewFName(rowStructPackage),
	})
	rowStruct := a.AddImport(uasset.Import{
		ClassPackage: engine,
		ClassName:    uasset.NewFName("UserDefinedStruct"),
		OuterIndex:   structPkg,
		ObjectName:   uasset.NewFName(rowStructName),
	})
	defaultObject := a.AddImport(uasset.Import{
		ClassPackage: engine,
		ClassName:    uasset.NewFName("DataTable"),
		OuterIndex:   enginePkg,
		ObjectName:   uasset.NewFName("Default__DataTable"),
	})

	upgradeMap := &uasset.MapProperty{
		PropertyHeader: uasset.PropertyHeader{Name: uasset.NewFName(UpgradesPropertyName)},
		KeyType:        uasset.NewFName(uasset.TypeName),
		ValueType:      uasset.NewFName(uasset.TypeInt),
	}
	for _, u := range AllUpgrades() {
		upgradeMap.Value = append(upgradeMap.Value, uasset.MapEntry{
			Key:   &uasset.NameProperty{Value: uasset.NewFName(u.Key())},
			Value: &uasset.IntProperty{},
		})
	}

	field := func(f Field, value string) uasset.Property {
		return &uasset.StrProperty{
			PropertyHeader: uasset.PropertyHeader{Name: uasset.NewFName(f.PropertyName())},
			Value:          str(value),
		}
	}

	/* Struct member order */
	row := uasset.Row{
		Name: uasset.NewFName("th1"),
		Value: []uasset.Property{
			field(FieldLevel, "th1"),
			field(FieldStartTag, DefaultStartTag),
			field(FieldAuthor, ""),
			upgradeMap,
			field(FieldTitle, "th1"),
		},
	}

	a.AddExport(&uasset.DataTableExport{
		ExportHeader: uasset.ExportHeader{
			ClassIndex:    dataTableClass,
			TemplateIndex: defaultObject,
			ObjectName:    uasset.NewFName(TemplateName),
			ObjectFlags:   rfPublic | rfStandalone | rfTransactional,
		},
		Properties: []uasset.Property{
			&uasset.ObjectProperty{
				PropertyHeader: uasset.PropertyHeader{Name: uasset.NewFName("RowStruct")},
				Value:          rowStruct,
			},
		},
		Table: uasset.DataTable{Data: []uasset.Row{row}},
	})

	return a
}
