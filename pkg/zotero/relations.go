package zotero

import (
	"encoding/json"
)

// Relations maps a predicate such as "dc:relation" or "owl:sameAs" to object URIs.
type Relations map[string][]string

// Add appends uri to the objects of predicate.
func (r Relations) Add(predicate, uri string) {
	r[predicate] = append(r[predicate], uri)
}

func (r Relations) Get(predicate string) []string {
	return r[predicate]
}

func (r Relations) Clone() Relations {
	result := make(Relations, len(r))
	for predicate, uris := range r {
		result[predicate] = append([]string{}, uris...)
	}
	return result
}

// relations are either an object or, when empty, an empty array.
// Objects are single URIs or URI lists.
func (r *Relations) decode(path string, raw json.RawMessage) error {
	result := Relations{}
	if jsonKind(raw) == "array" {
		elems, err := parseArray(path, raw)
		if err != nil {
			return err
		}
		if len(elems) > 0 {
			return mismatch(path, "object", raw)
		}
		*r = result
		return nil
	}
	members, err := parseObject(path, raw)
	if err != nil {
		return err
	}
	for predicate, m := range members {
		memberPath := joinPath(path, predicate)
		switch jsonKind(m) {
		case "null":
			continue
		case "string":
			uri, err := decodeString(memberPath, m)
			if err != nil {
				return err
			}
			result[predicate] = []string{uri}
		case "array":
			var uris []string
			if err := (stringsValue{&uris}).decode(memberPath, m); err != nil {
				return err
			}
			result[predicate] = uris
		default:
			return mismatch(memberPath, "string or array", m)
		}
	}
	*r = result
	return nil
}

func (r *Relations) UnmarshalJSON(data []byte) error {
	return r.decode("", data)
}

// MarshalJSON writes single objects as plain strings, as the API does.
func (r Relations) MarshalJSON() ([]byte, error) {
	extra := make(map[string]json.RawMessage, len(r))
	for predicate, uris := range r {
		var v any = uris
		switch len(uris) {
		case 0:
			v = []string{}
		case 1:
			v = uris[0]
		}
		data, err := marshal(v)
		if err != nil {
			return nil, err
		}
		extra[predicate] = data
	}
	return encodeObject(nil, extra)
}
