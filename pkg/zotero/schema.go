package zotero

import (
	"sort"
)

// Presence is the wire-presence rule of a single member.
type Presence uint8

const (
	// AlwaysPresent members are emitted even when empty ([] or {}).
	AlwaysPresent Presence = iota
	// OmitIfEmpty members are only emitted when non-empty and decode to the zero value when absent.
	OmitIfEmpty
	// DefaultIfAbsent members get FieldPolicy.Default when absent and are always emitted.
	DefaultIfAbsent
)

var presenceString = map[Presence]string{
	AlwaysPresent:   "always-present",
	OmitIfEmpty:     "omit-if-empty",
	DefaultIfAbsent: "default-if-absent",
}

func (p Presence) String() string {
	if s, ok := presenceString[p]; ok {
		return s
	}
	return "unknown"
}

// FieldPolicy is one row of a record's field table.
type FieldPolicy struct {
	Name     string // Go field name
	Wire     string // member name in the Zotero JSON
	Presence Presence
	Default  string // only meaningful for DefaultIfAbsent
}

func (fp FieldPolicy) absent() string {
	if fp.Presence == DefaultIfAbsent {
		return fp.Default
	}
	return ""
}

// field binds a policy row to the storage of one record instance.
type field struct {
	FieldPolicy
	value value
}

// binder is implemented by every record that is encoded through the field table.
type binder interface {
	bind() []field
}

func policies(fields []field) []FieldPolicy {
	result := make([]FieldPolicy, 0, len(fields))
	for _, f := range fields {
		result = append(result, f.FieldPolicy)
	}
	return result
}

// normalize puts every empty member into its absent state: nil collections become empty,
// default-if-absent members get their default.
func normalize(fields []field) {
	for _, f := range fields {
		if f.value.empty() {
			f.value.reset(f.absent())
		}
	}
}

func withPresence(fields []field, wire string, presence Presence) []field {
	for i := range fields {
		if fields[i].Wire == wire {
			fields[i].Presence = presence
		}
	}
	return fields
}

func str(name, wire string, p *string) field {
	return field{FieldPolicy{Name: name, Wire: wire, Presence: OmitIfEmpty}, stringValue{p}}
}

func discriminant(p *string, itemType string) field {
	return field{
		FieldPolicy{Name: "ItemType", Wire: "itemType", Presence: DefaultIfAbsent, Default: itemType},
		discriminantValue{p: p, want: itemType},
	}
}

func creators(p *[]Creator) field {
	return field{FieldPolicy{Name: "Creators", Wire: "creators", Presence: AlwaysPresent}, creatorsValue{p}}
}

func parent(p *string) field {
	return field{FieldPolicy{Name: "ParentItem", Wire: "parentItem", Presence: OmitIfEmpty}, stringOrFalseValue{p}}
}

/* *******************************
item type registry
******************************* */

var registry = map[string]func() ItemData{}

func registerItemType(itemType string, ctor func() ItemData) {
	registry[itemType] = ctor
}

// NewItemData returns the default record of the given item type.
func NewItemData(itemType string) (ItemData, bool) {
	ctor, ok := registry[itemType]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// ItemTypes lists the registered item types in lexical order.
func ItemTypes() []string {
	result := make([]string, 0, len(registry))
	for itemType := range registry {
		result = append(result, itemType)
	}
	sort.Strings(result)
	return result
}

// Schema returns the field table of a registered item type.
func Schema(itemType string) ([]FieldPolicy, bool) {
	d, ok := NewItemData(itemType)
	if !ok {
		return nil, false
	}
	return d.Fields(), true
}
