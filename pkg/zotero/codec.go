package zotero

import (
	"bytes"
	"encoding/json"
	"sort"

	"emperror.dev/errors"
)

// parseObject splits a JSON object into its members. null and an empty document are
// read as an empty object.
func parseObject(path string, raw []byte) (map[string]json.RawMessage, error) {
	members := map[string]json.RawMessage{}
	switch jsonKind(raw) {
	case "null", "nothing":
		return members, nil
	case "object":
	default:
		return nil, mismatch(path, "object", raw)
	}
	if err := json.Unmarshal(raw, &members); err != nil {
		if path == "" {
			return nil, errors.Wrap(err, "cannot unmarshal object")
		}
		return nil, errors.Wrapf(err, "cannot unmarshal %s", path)
	}
	return members, nil
}

// decodeMembers applies the field table to the members of one object.
// Members without a row are ignored.
func decodeMembers(path string, members map[string]json.RawMessage, fields []field) error {
	for _, f := range fields {
		raw, ok := members[f.Wire]
		if !ok || isNull(raw) {
			f.value.reset(f.absent())
			continue
		}
		if err := f.value.decode(joinPath(path, f.Wire), raw); err != nil {
			return err
		}
	}
	return nil
}

func decodeObject(path string, raw []byte, fields []field) error {
	members, err := parseObject(path, raw)
	if err != nil {
		return err
	}
	return decodeMembers(path, members, fields)
}

// encodeObject writes the members of the field table in table order followed by extra
// members (sorted) that are not part of the table.
func encodeObject(fields []field, extra map[string]json.RawMessage) ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	first := true
	member := func(name string, v any) error {
		data, err := marshal(v)
		if err != nil {
			return errors.Wrapf(err, "cannot marshal %s", name)
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		key, _ := marshal(name)
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(data)
		return nil
	}

	declared := map[string]bool{}
	for _, f := range fields {
		declared[f.Wire] = true
		var v any
		switch f.Presence {
		case OmitIfEmpty:
			if f.value.empty() {
				continue
			}
			v = f.value.encode()
		case DefaultIfAbsent:
			if f.value.empty() {
				v = f.Default
			} else {
				v = f.value.encode()
			}
		default:
			v = f.value.encode()
		}
		if err := member(f.Wire, v); err != nil {
			return nil, err
		}
	}

	names := make([]string, 0, len(extra))
	for name := range extra {
		if !declared[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		if err := member(name, extra[name]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshal is json.Marshal without HTML escaping; note bodies are HTML.
func marshal(v any) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func unmarshalRecord(raw []byte, r binder) error {
	return decodeObject("", raw, r.bind())
}

func marshalRecord(r binder) ([]byte, error) {
	return encodeObject(r.bind(), nil)
}

// decodeData selects the record type by the itemType member and decodes into it.
// Types without a registered record decode into *Unknown.
func decodeData(path string, raw []byte) (ItemData, error) {
	members, err := parseObject(path, raw)
	if err != nil {
		return nil, err
	}
	var itemType string
	if m, ok := members["itemType"]; ok && !isNull(m) {
		if itemType, err = decodeString(joinPath(path, "itemType"), m); err != nil {
			return nil, err
		}
	}
	var d ItemData
	if ctor, ok := registry[itemType]; ok {
		d = ctor()
	} else {
		d = NewUnknown()
	}
	switch r := d.(type) {
	case *Unknown:
		err = r.decodeMembers(path, members)
	case binder:
		err = decodeMembers(path, members, r.bind())
	default:
		err = errors.Errorf("item type %s cannot be decoded", itemType)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// DecodeData decodes the data object of an item, dispatching on its itemType member.
func DecodeData(raw []byte) (ItemData, error) {
	d, err := decodeData("", raw)
	if err != nil {
		return nil, withPayload(err, raw)
	}
	return d, nil
}

// DecodeDataAs decodes a data object of a known item type. A missing itemType member
// defaults to itemType; a different one is a schema mismatch.
func DecodeDataAs(itemType string, raw []byte) (ItemData, error) {
	d, ok := NewItemData(itemType)
	if !ok {
		return nil, errors.WithDetails(ErrUnknownItemType, "itemType", itemType)
	}
	if err := json.Unmarshal(raw, d); err != nil {
		return nil, withPayload(err, raw)
	}
	return d, nil
}

// EncodeData returns the wire form of a data object.
func EncodeData(d ItemData) ([]byte, error) {
	return marshal(d)
}

// EncodeDataList returns the array body expected by the write endpoints.
func EncodeDataList(items ...ItemData) ([]byte, error) {
	if items == nil {
		items = []ItemData{}
	}
	return marshal(items)
}
