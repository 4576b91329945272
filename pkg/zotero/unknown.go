package zotero

import (
	"encoding/json"
)

// Unknown holds the data of an item type without a registered record. The shared
// members are decoded; everything else is kept verbatim in Extra and written back on encode.
type Unknown struct {
	ItemDataBase
	Extra map[string]json.RawMessage
}

func NewUnknown() *Unknown {
	u := &Unknown{Extra: map[string]json.RawMessage{}}
	normalize(u.bind())
	return u
}

func (u *Unknown) bind() []field {
	return u.fields(str("ItemType", "itemType", &u.ItemType))
}

func (u *Unknown) decodeMembers(path string, members map[string]json.RawMessage) error {
	fields := u.bind()
	if err := decodeMembers(path, members, fields); err != nil {
		return err
	}
	declared := map[string]bool{}
	for _, f := range fields {
		declared[f.Wire] = true
	}
	u.Extra = map[string]json.RawMessage{}
	for name, raw := range members {
		if !declared[name] {
			u.Extra[name] = append(json.RawMessage(nil), raw...)
		}
	}
	return nil
}

func (u *Unknown) Fields() []FieldPolicy {
	return policies(u.bind())
}

func (u *Unknown) UnmarshalJSON(data []byte) error {
	members, err := parseObject("", data)
	if err != nil {
		return err
	}
	return u.decodeMembers("", members)
}

func (u Unknown) MarshalJSON() ([]byte, error) {
	return encodeObject(u.bind(), u.Extra)
}

func (u *Unknown) clone() *Unknown {
	result := &Unknown{ItemDataBase: u.ItemDataBase.clone(), Extra: make(map[string]json.RawMessage, len(u.Extra))}
	for name, raw := range u.Extra {
		result.Extra[name] = append(json.RawMessage(nil), raw...)
	}
	return result
}

func (u *Unknown) Clone() ItemData {
	return u.clone()
}
