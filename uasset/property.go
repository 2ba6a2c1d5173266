package uasset

import "fmt"

const (
	TypeInt    = "IntProperty"
	TypeBool   = "BoolProperty"
	TypeFloat  = "FloatProperty"
	TypeStr    = "StrProperty"
	TypeName   = "NameProperty"
	TypeObject = "ObjectProperty"
	TypeMap    = "MapProperty"
)

/* PropertyHeader holds the tag fields every tagged property carries. Map
 * entries are untagged and leave it zero. */
type PropertyHeader struct {
	Name       FName
	ArrayIndex int32
	GUID       *[16]byte
}

func (h *PropertyHeader) Header() *PropertyHeader {
	return h
}

/* Property is implemented only by the types in this package. */
type Property interface {
	Header() *PropertyHeader
	Type() string
	isProperty()
}

type IntProperty struct {
	PropertyHeader
	Value int32
}

type BoolProperty struct {
	PropertyHeader
	Value bool
}

type FloatProperty struct {
	PropertyHeader
	Value float32
}

type StrProperty struct {
	PropertyHeader
	Value *string
}

type NameProperty struct {
	PropertyHeader
	Value FName
}

type ObjectProperty struct {
	PropertyHeader
	Value PackageIndex
}

type MapEntry struct {
	Key   Property
	Value Property
}

type MapProperty struct {
	PropertyHeader
	KeyType   FName
	ValueType FName

	KeysToRemove []Property
	Value        []MapEntry
}

/* RawProperty keeps a property of a type this package does not decode. Tag
 * holds the type specific tag bytes, Data the serialized value. */
type RawProperty struct {
	PropertyHeader
	TypeName FName
	Tag      []byte
	Data     []byte
}

func (*IntProperty) Type() string    { return TypeInt }
func (*BoolProperty) Type() string   { return TypeBool }
func (*FloatProperty) Type() string  { return TypeFloat }
func (*StrProperty) Type() string    { return TypeStr }
func (*NameProperty) Type() string   { return TypeName }
func (*ObjectProperty) Type() string { return TypeObject }
func (*MapProperty) Type() string    { return TypeMap }
func (p *RawProperty) Type() string  { return p.TypeName.Value }

func (*IntProperty) isProperty()    {}
func (*BoolProperty) isProperty()   {}
func (*FloatProperty) isProperty()  {}
func (*StrProperty) isProperty()    {}
func (*NameProperty) isProperty()   {}
func (*ObjectProperty) isProperty() {}
func (*MapProperty) isProperty()    {}
func (*RawProperty) isProperty()    {}

/* Replace sets a new payload, keeping the previous one reachable for the caller. */
func (p *StrProperty) Replace(value string) *string {
	old := p.Value
	p.Value = &value
	return old
}

/* readTag consumes the type specific bytes that follow the array index. */
func readTag(r *reader, typ FName) (tag []byte, keyType FName, valueType FName) {
	start := r.pos
	switch typ.Value {
	case TypeMap:
		keyType = r.fname()
		valueType = r.fname()
	case TypeBool:
		r.u8()
	case "StructProperty":
		r.fname()
		r.guid()
	case "ByteProperty", "EnumProperty", "ArrayProperty", "SetProperty":
		r.fname()
	}
	if r.err == nil {
		tag = r.buf[start:r.pos]
	}
	return tag, keyType, valueType
}

/* readProperty returns nil when the None terminator is reached. */
func readProperty(r *reader) (Property, error) {
	name := r.fname()
	if r.err != nil {
		return nil, r.err
	}
	if name.IsNone() {
		return nil, nil
	}

	typ := r.fname()
	size := r.i32()
	arrayIndex := r.i32()
	tag, keyType, valueType := readTag(r, typ)

	var guid *[16]byte
	if r.u8() != 0 {
		g := r.guid()
		guid = &g
	}
	data := r.bytes(int(size))
	if r.err != nil {
		return nil, fmt.Errorf("property %s: %w", name, r.err)
	}

	header := PropertyHeader{Name: name, ArrayIndex: arrayIndex, GUID: guid}
	vr := newReader(data, r.names)

	var p Property
	switch typ.Value {
	case TypeBool:
		if size != 0 {
			return nil, fmt.Errorf("property %s: %w: bool with %d byte value", name, ErrorTrailingData, size)
		}
		return &BoolProperty{PropertyHeader: header, Value: tag[0] != 0}, nil

	case TypeMap:
		if !untaggedSupported(keyType.Value) || !untaggedSupported(valueType.Value) {
			break
		}
		m := &MapProperty{PropertyHeader: header, KeyType: keyType, ValueType: valueType}
		for i, n := 0, int(vr.i32()); i < n && vr.err == nil; i++ {
			k, err := readUntagged(vr, keyType.Value)
			if err != nil {
				return nil, fmt.Errorf("property %s: %w", name, err)
			}
			m.KeysToRemove = append(m.KeysToRemove, k)
		}
		for i, n := 0, int(vr.i32()); i < n && vr.err == nil; i++ {
			k, err := readUntagged(vr, keyType.Value)
			if err != nil {
				return nil, fmt.Errorf("property %s: %w", name, err)
			}
			v, err := readUntagged(vr, valueType.Value)
			if err != nil {
				return nil, fmt.Errorf("property %s: %w", name, err)
			}
			m.Value = append(m.Value, MapEntry{Key: k, Value: v})
		}
		p = m

	default:
		if untaggedSupported(typ.Value) {
			v, err := readUntagged(vr, typ.Value)
			if err != nil {
				return nil, fmt.Errorf("property %s: %w", name, err)
			}
			*v.Header() = header
			p = v
		}
	}

	if p == nil {
		return &RawProperty{PropertyHeader: header, TypeName: typ, Tag: tag, Data: data}, nil
	}
	if vr.err != nil {
		return nil, fmt.Errorf("property %s: %w", name, vr.err)
	}
	if vr.remaining() != 0 {
		return nil, fmt.Errorf("property %s: %w: %d bytes left", name, ErrorTrailingData, vr.remaining())
	}
	return p, nil
}

func untaggedSupported(typ string) bool {
	switch typ {
	case TypeInt, TypeBool, TypeFloat, TypeStr, TypeName, TypeObject:
		return true
	}
	return false
}

func readUntagged(r *reader, typ string) (Property, error) {
	var p Property
	switch typ {
	case TypeInt:
		p = &IntProperty{Value: r.i32()}
	case TypeBool:
		p = &BoolProperty{Value: r.u8() != 0}
	case TypeFloat:
		p = &FloatProperty{Value: r.f32()}
	case TypeStr:
		p = &StrProperty{Value: r.fstring()}
	case TypeName:
		p = &NameProperty{Value: r.fname()}
	case TypeObject:
		p = &ObjectProperty{Value: r.index()}
	default:
		return nil, fmt.Errorf("%w: %s", ErrorUnsupportedType, typ)
	}
	return p, r.err
}

func writeUntagged(w *writer, typ string, p Property) error {
	if p.Type() != typ {
		return fmt.Errorf("%w: %s in %s slot", ErrorTypeMismatch, p.Type(), typ)
	}

	switch v := p.(type) {
	case *IntProperty:
		w.i32(v.Value)
	case *BoolProperty:
		if v.Value {
			w.u8(1)
		} else {
			w.u8(0)
		}
	case *FloatProperty:
		w.f32(v.Value)
	case *StrProperty:
		w.fstring(v.Value)
	case *NameProperty:
		w.fname(v.Value)
	case *ObjectProperty:
		w.index(v.Value)
	default:
		return fmt.Errorf("%w: %s", ErrorUnsupportedType, typ)
	}
	return nil
}

func writeProperty(w *writer, p Property) error {
	h := p.Header()

	vw := newWriter(w.names)
	var tag []byte

	switch v := p.(type) {
	case *BoolProperty:
		if v.Value {
			tag = []byte{1}
		} else {
			tag = []byte{0}
		}

	case *MapProperty:
		tw := newWriter(w.names)
		tw.fname(v.KeyType)
		tw.fname(v.ValueType)
		tag = tw.Bytes()

		vw.i32(int32(len(v.KeysToRemove)))
		for _, k := range v.KeysToRemove {
			if err := writeUntagged(vw, v.KeyType.Value, k); err != nil {
				return fmt.Errorf("property %s: %w", h.Name, err)
			}
		}
		vw.i32(int32(len(v.Value)))
		for _, e := range v.Value {
			if err := writeUntagged(vw, v.KeyType.Value, e.Key); err != nil {
				return fmt.Errorf("property %s: %w", h.Name, err)
			}
			if err := writeUntagged(vw, v.ValueType.Value, e.Value); err != nil {
				return fmt.Errorf("property %s: %w", h.Name, err)
			}
		}

	case *RawProperty:
		tag = v.Tag
		vw.raw(v.Data)

	default:
		if err := writeUntagged(vw, p.Type(), p); err != nil {
			return fmt.Errorf("property %s: %w", h.Name, err)
		}
	}

	typ := NewFName(p.Type())
	if raw, ok := p.(*RawProperty); ok {
		typ = raw.TypeName
	}

	w.fname(h.Name)
	w.fname(typ)
	w.i32(int32(vw.Len()))
	w.i32(h.ArrayIndex)
	w.raw(tag)
	if h.GUID != nil {
		w.u8(1)
		w.guid(*h.GUID)
	} else {
		w.u8(0)
	}
	w.raw(vw.Bytes())
	return nil
}

func writeNone(w *writer) {
	w.fname(NewFName("None"))
}
