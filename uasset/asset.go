package uasset

import "fmt"

const PackageFileTag uint32 = 0x9E2A83C1

/* PackageIndex n > 0 is export n-1, n < 0 is import -n-1, 0 is null. */
type PackageIndex int32

func ExportIndex(i int) PackageIndex {
	return PackageIndex(i + 1)
}

func ImportIndex(i int) PackageIndex {
	return PackageIndex(-i - 1)
}

func (p PackageIndex) IsExport() bool {
	return p > 0
}

func (p PackageIndex) IsImport() bool {
	return p < 0
}

func (p PackageIndex) IsNull() bool {
	return p == 0
}

func (p PackageIndex) String() string {
	switch {
	case p.IsExport():
		return fmt.Sprintf("export %d", int(p)-1)
	case p.IsImport():
		return fmt.Sprintf("import %d", int(-p)-1)
	}
	return "null"
}

type Import struct {
	ClassPackage FName
	ClassName    FName
	OuterIndex   PackageIndex
	ObjectName   FName
}

type ExportHeader struct {
	ClassIndex    PackageIndex
	SuperIndex    PackageIndex
	TemplateIndex PackageIndex
	OuterIndex    PackageIndex
	ObjectName    FName
	ObjectFlags   uint32
}

func (h *ExportHeader) Header() *ExportHeader {
	return h
}

/* Export is implemented by *DataTableExport and *RawExport. */
type Export interface {
	Header() *ExportHeader
	isExport()
}

type Row struct {
	Name  FName
	Value []Property
}

type DataTable struct {
	Data []Row
}

type DataTableExport struct {
	ExportHeader

	/* Tagged properties of the DataTable object itself (RowStruct etc.) */
	Properties []Property
	Table      DataTable
}

/* RawExport holds the serialized body of an export class this package does
 * not decode. */
type RawExport struct {
	ExportHeader
	Data []byte
}

func (*DataTableExport) isExport() {}
func (*RawExport) isExport()       {}

type Asset struct {
	Version         EngineVersion
	LicenseeVersion int32
	CustomVersions  []CustomVersion
	FolderName      string
	PackageFlags    uint32

	Names   *NameMap
	Imports []Import
	Exports []Export
}

func New(version EngineVersion) *Asset {
	return &Asset{
		Version:    version,
		FolderName: "None",
		Names:      NewNameMap(),
	}
}

/* GetExport returns nil when the index does not name an existing export. */
func (a *Asset) GetExport(index PackageIndex) Export {
	if !index.IsExport() || int(index) > len(a.Exports) {
		return nil
	}
	return a.Exports[index-1]
}

func (a *Asset) GetImport(index PackageIndex) *Import {
	i := int(-index) - 1
	if !index.IsImport() || i >= len(a.Imports) {
		return nil
	}
	return &a.Imports[i]
}

/* AddImport appends an import and returns its package index. */
func (a *Asset) AddImport(imp Import) PackageIndex {
	a.Imports = append(a.Imports, imp)
	return ImportIndex(len(a.Imports) - 1)
}

func (a *Asset) AddExport(exp Export) PackageIndex {
	a.Exports = append(a.Exports, exp)
	return ExportIndex(len(a.Exports) - 1)
}

/* ClassName resolves the class of an export through the import table. */
func (a *Asset) ClassName(exp Export) string {
	return a.classOf(*exp.Header())
}
