package uasset

import (
	"fmt"
	"strings"

	"github.com/sigurn/crc16"
)

var nameHashTable = crc16.MakeTable(crc16.CRC16_XMODEM)

/* FName is a reference into the name map. Number 0 means no suffix, n means
 * the name is printed as Value_(n-1). */
type FName struct {
	Value  string
	Number int32
}

func NewFName(value string) FName {
	return FName{Value: value}
}

func (n FName) IsNone() bool {
	return n.Value == "None" && n.Number == 0
}

func (n FName) String() string {
	if n.Number > 0 {
		return fmt.Sprintf("%s_%d", n.Value, n.Number-1)
	}
	return n.Value
}

type NameEntry struct {
	Value string

	NonCaseHash uint16
	CaseHash    uint16
}

func newNameEntry(value string) NameEntry {
	return NameEntry{
		Value:       value,
		NonCaseHash: crc16.Checksum([]byte(strings.ToLower(value)), nameHashTable),
		CaseHash:    crc16.Checksum([]byte(value), nameHashTable),
	}
}

/* NameMap keeps entries in serialized order. Lookups are case sensitive. */
type NameMap struct {
	entries []NameEntry
	index   map[string]int
}

func NewNameMap(values ...string) *NameMap {
	m := &NameMap{index: make(map[string]int)}
	for _, v := range values {
		m.Add(v)
	}
	return m
}

func (m *NameMap) Len() int {
	return len(m.entries)
}

func (m *NameMap) Entries() []NameEntry {
	return m.entries
}

func (m *NameMap) Get(i int32) (string, error) {
	if i < 0 || int(i) >= len(m.entries) {
		return "", fmt.Errorf("%w: name %d of %d", ErrorBadIndex, i, len(m.entries))
	}
	return m.entries[i].Value, nil
}

func (m *NameMap) Lookup(value string) (int32, bool) {
	i, ok := m.index[value]
	return int32(i), ok
}

/* Add returns the index of value, appending it when it is not present yet.
 * Existing indices never move. */
func (m *NameMap) Add(value string) int32 {
	if i, ok := m.index[value]; ok {
		return int32(i)
	}
	m.addEntry(newNameEntry(value))
	return int32(len(m.entries) - 1)
}

func (m *NameMap) addEntry(e NameEntry) {
	if _, ok := m.index[e.Value]; !ok {
		m.index[e.Value] = len(m.entries)
	}
	m.entries = append(m.entries, e)
}

func (m *NameMap) clone() *NameMap {
	c := &NameMap{
		entries: make([]NameEntry, len(m.entries)),
		index:   make(map[string]int, len(m.index)),
	}
	copy(c.entries, m.entries)
	for k, v := range m.index {
		c.index[k] = v
	}
	return c
}
