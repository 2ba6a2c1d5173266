package uasset

import (
	"fmt"
	"io"
)

/* Each export table entry: four indices, FName, flags, size and offset. */
const exportEntrySize = 4*4 + 8 + 4 + 8 + 8

func writeProperties(w *writer, props []Property) error {
	for _, p := range props {
		if err := writeProperty(w, p); err != nil {
			return err
		}
	}
	writeNone(w)
	return nil
}

func writeDataTable(w *writer, dt *DataTableExport) error {
	if err := writeProperties(w, dt.Properties); err != nil {
		return err
	}
	w.i32(0)

	w.i32(int32(len(dt.Table.Data)))
	for i, row := range dt.Table.Data {
		w.fname(row.Name)
		if err := writeProperties(w, row.Value); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	return nil
}

func (a *Asset) writeSummary(w *writer, s summary) {
	w.u32(PackageFileTag)
	w.i32(s.version.legacy)
	w.i32(s.version.ue4)
	if s.version.legacy <= -8 {
		w.i32(s.version.ue5)
	}
	w.i32(a.LicenseeVersion)

	w.i32(int32(len(a.CustomVersions)))
	for _, c := range a.CustomVersions {
		w.guid(c.Key)
		w.i32(c.Version)
	}

	w.i32(s.totalHeaderSize)
	w.fstring(&a.FolderName)
	w.u32(a.PackageFlags)
	w.i32(s.nameCount)
	w.i32(s.nameOffset)
	w.i32(s.importCount)
	w.i32(s.importOffset)
	w.i32(s.exportCount)
	w.i32(s.exportOffset)
	w.i64(s.bulkDataStartOffset)
}

/* Write serializes the asset into its header and data segments. The asset
 * itself is not modified; names missing from the name map are appended to a
 * copy. Nothing is written to either writer unless serialization succeeds. */
func (a *Asset) Write(header io.Writer, data io.Writer) error {
	version, ok := engineObjectVersions[a.Version]
	if !ok {
		return fmt.Errorf("%w: %s", ErrorUnsupportedVersion, a.Version)
	}

	names := a.Names.clone()

	/* Bodies first, they may add names */
	type location struct {
		offset, size int
	}
	body := newWriter(names)
	locations := make([]location, len(a.Exports))
	for i, exp := range a.Exports {
		start := body.Len()
		switch e := exp.(type) {
		case *DataTableExport:
			if err := writeDataTable(body, e); err != nil {
				return fmt.Errorf("export %d (%s): %w", i, e.ObjectName, err)
			}
		case *RawExport:
			body.raw(e.Data)
		default:
			return fmt.Errorf("export %d: %w: %T", i, ErrorUnsupportedType, exp)
		}
		locations[i] = location{offset: start, size: body.Len() - start}
	}
	body.u32(PackageFileTag)

	imports := newWriter(names)
	for _, imp := range a.Imports {
		imports.fname(imp.ClassPackage)
		imports.fname(imp.ClassName)
		imports.index(imp.OuterIndex)
		imports.fname(imp.ObjectName)
	}

	/* Export names must be in the map before it is serialized */
	for _, exp := range a.Exports {
		names.Add(exp.Header().ObjectName.Value)
	}

	nameTable := newWriter(names)
	for _, e := range names.Entries() {
		nameTable.fstring(&e.Value)
		nameTable.u16(e.NonCaseHash)
		nameTable.u16(e.CaseHash)
	}

	s := summary{
		version:     version,
		nameCount:   int32(names.Len()),
		importCount: int32(len(a.Imports)),
		exportCount: int32(len(a.Exports)),
	}

	/* The summary has a fixed size for a given asset, measure it first */
	probe := newWriter(names)
	a.writeSummary(probe, s)

	s.nameOffset = int32(probe.Len())
	s.importOffset = s.nameOffset + int32(nameTable.Len())
	s.exportOffset = s.importOffset + int32(imports.Len())
	s.totalHeaderSize = s.exportOffset + int32(len(a.Exports)*exportEntrySize)
	s.bulkDataStartOffset = int64(s.totalHeaderSize) + int64(body.Len())

	exports := newWriter(names)
	for i, exp := range a.Exports {
		h := exp.Header()
		exports.index(h.ClassIndex)
		exports.index(h.SuperIndex)
		exports.index(h.TemplateIndex)
		exports.index(h.OuterIndex)
		exports.fname(h.ObjectName)
		exports.u32(h.ObjectFlags)
		exports.i64(int64(locations[i].size))
		exports.i64(int64(s.totalHeaderSize) + int64(locations[i].offset))
	}

	out := newWriter(names)
	a.writeSummary(out, s)
	out.raw(nameTable.Bytes())
	out.raw(imports.Bytes())
	out.raw(exports.Bytes())

	if out.Len() != int(s.totalHeaderSize) {
		panic("header size changed between passes")
	}

	if _, err := header.Write(out.Bytes()); err != nil {
		return err
	}
	_, err := data.Write(body.Bytes())
	return err
}
