package uasset

import (
	"encoding/binary"
	"fmt"
)

type CustomVersion struct {
	Key     [16]byte
	Version int32
}

type summary struct {
	version         objectVersion
	licensee        int32
	customVersions  []CustomVersion
	totalHeaderSize int32
	folderName      string
	packageFlags    uint32

	nameCount, nameOffset     int32
	importCount, importOffset int32
	exportCount, exportOffset int32

	bulkDataStartOffset int64
}

func readSummary(r *reader) (summary, error) {
	var s summary

	if tag := r.u32(); r.err == nil && tag != PackageFileTag {
		return s, fmt.Errorf("%w: header starts with %08x", ErrorBadTag, tag)
	}

	s.version.legacy = r.i32()
	if r.err == nil && s.version.legacy != -7 && s.version.legacy != -8 {
		return s, fmt.Errorf("%w: legacy file version %d", ErrorUnsupportedVersion, s.version.legacy)
	}
	s.version.ue4 = r.i32()
	if s.version.legacy <= -8 {
		s.version.ue5 = r.i32()
	}
	s.licensee = r.i32()

	n := r.i32()
	for i := int32(0); i < n && r.err == nil; i++ {
		s.customVersions = append(s.customVersions, CustomVersion{Key: r.guid(), Version: r.i32()})
	}

	s.totalHeaderSize = r.i32()
	if folder := r.fstring(); folder != nil {
		s.folderName = *folder
	}
	s.packageFlags = r.u32()
	s.nameCount = r.i32()
	s.nameOffset = r.i32()
	s.importCount = r.i32()
	s.importOffset = r.i32()
	s.exportCount = r.i32()
	s.exportOffset = r.i32()
	s.bulkDataStartOffset = r.i64()

	return s, r.err
}

/* seek positions the reader at a table offset taken from the summary. */
func (r *reader) seek(offset int32) {
	if offset < 0 || int(offset) > len(r.buf) {
		r.fail(fmt.Errorf("%w: offset %d outside %d byte header", ErrorBadIndex, offset, len(r.buf)))
		return
	}
	r.pos = int(offset)
}

/* Read parses a split package: header is the .uasset segment, data the
 * .uexp segment. */
func Read(header []byte, data []byte, logf LogFunc) (*Asset, error) {
	r := newReader(header, NewNameMap())

	s, err := readSummary(r)
	if err != nil {
		return nil, err
	}

	version, err := versionFromObject(s.version)
	if err != nil {
		return nil, err
	}
	logf.log(2, "Package version %s, %d names, %d imports, %d exports", version, s.nameCount, s.importCount, s.exportCount)

	if int(s.totalHeaderSize) != len(header) {
		return nil, fmt.Errorf("%w: header claims %d bytes, segment has %d", ErrorTruncated, s.totalHeaderSize, len(header))
	}

	a := &Asset{
		Version:         version,
		LicenseeVersion: s.licensee,
		FolderName:      s.folderName,
		PackageFlags:    s.packageFlags,
		CustomVersions:  s.customVersions,
		Names:           r.names,
	}

	r.seek(s.nameOffset)
	for i := int32(0); i < s.nameCount && r.err == nil; i++ {
		value := r.fstring()
		e := NameEntry{NonCaseHash: r.u16(), CaseHash: r.u16()}
		if value == nil {
			r.fail(fmt.Errorf("%w: empty name map entry %d", ErrorBadString, i))
			break
		}
		e.Value = *value
		a.Names.addEntry(e)
	}
	if r.err != nil {
		return nil, fmt.Errorf("name map: %w", r.err)
	}

	r.seek(s.importOffset)
	for i := int32(0); i < s.importCount && r.err == nil; i++ {
		a.Imports = append(a.Imports, Import{
			ClassPackage: r.fname(),
			ClassName:    r.fname(),
			OuterIndex:   r.index(),
			ObjectName:   r.fname(),
		})
	}
	if r.err != nil {
		return nil, fmt.Errorf("import table: %w", r.err)
	}

	type location struct {
		size, offset int64
	}
	var locations []location
	var headers []ExportHeader

	r.seek(s.exportOffset)
	for i := int32(0); i < s.exportCount && r.err == nil; i++ {
		headers = append(headers, ExportHeader{
			ClassIndex:    r.index(),
			SuperIndex:    r.index(),
			TemplateIndex: r.index(),
			OuterIndex:    r.index(),
			ObjectName:    r.fname(),
			ObjectFlags:   r.u32(),
		})
		locations = append(locations, location{size: r.i64(), offset: r.i64()})
	}
	if r.err != nil {
		return nil, fmt.Errorf("export table: %w", r.err)
	}

	if len(data) < 4 || binary.LittleEndian.Uint32(data[len(data)-4:]) != PackageFileTag {
		return nil, fmt.Errorf("%w: data segment does not end with package tag", ErrorBadTag)
	}

	for i, h := range headers {
		start := locations[i].offset - int64(s.totalHeaderSize)
		end := start + locations[i].size
		if start < 0 || locations[i].size < 0 || end > int64(len(data)-4) {
			return nil, fmt.Errorf("export %d (%s): %w: serial range %d+%d", i, h.ObjectName, ErrorBadIndex, locations[i].offset, locations[i].size)
		}
		body := data[start:end]

		var exp Export
		if a.classOf(h) == "DataTable" {
			dt, err := readDataTable(newReader(body, a.Names), h)
			if err != nil {
				return nil, fmt.Errorf("export %d (%s): %w", i, h.ObjectName, err)
			}
			logf.log(2, "Export %d (%s): DataTable with %d rows", i, h.ObjectName, len(dt.Table.Data))
			exp = dt
		} else {
			raw := make([]byte, len(body))
			copy(raw, body)
			exp = &RawExport{ExportHeader: h, Data: raw}
			logf.log(2, "Export %d (%s): %d raw bytes", i, h.ObjectName, len(raw))
		}
		a.Exports = append(a.Exports, exp)
	}

	return a, nil
}

func (a *Asset) classOf(h ExportHeader) string {
	if imp := a.GetImport(h.ClassIndex); imp != nil {
		return imp.ObjectName.String()
	}
	if e := a.GetExport(h.ClassIndex); e != nil {
		return e.Header().ObjectName.String()
	}
	return ""
}

func readProperties(r *reader) ([]Property, error) {
	var props []Property
	for {
		p, err := readProperty(r)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return props, nil
		}
		props = append(props, p)
	}
}

func readDataTable(r *reader, h ExportHeader) (*DataTableExport, error) {
	dt := &DataTableExport{ExportHeader: h}

	var err error
	if dt.Properties, err = readProperties(r); err != nil {
		return nil, err
	}

	if zero := r.i32(); r.err == nil && zero != 0 {
		return nil, fmt.Errorf("%w: expected 0 after properties, got %d", ErrorMalformedExport, zero)
	}

	n := r.i32()
	if r.err == nil && (n < 0 || int(n) > r.remaining()) {
		return nil, fmt.Errorf("%w: row count %d", ErrorMalformedExport, n)
	}
	for i := int32(0); i < n && r.err == nil; i++ {
		row := Row{Name: r.fname()}
		if row.Value, err = readProperties(r); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		dt.Table.Data = append(dt.Table.Data, row)
	}
	if r.err != nil {
		return nil, r.err
	}
	if r.remaining() != 0 {
		return nil, fmt.Errorf("%w: %d bytes after rows", ErrorTrailingData, r.remaining())
	}
	return dt, nil
}
