package zotero

import (
	"encoding/json"
	"strconv"

	"emperror.dev/errors"
)

// value adapts the storage of one member to the generic codec.
type value interface {
	empty() bool
	// reset puts the member into its absent state; def is the default of default-if-absent members.
	reset(def string)
	decode(path string, raw json.RawMessage) error
	encode() any
}

func decodeString(path string, raw json.RawMessage) (string, error) {
	if jsonKind(raw) != "string" {
		return "", mismatch(path, "string", raw)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", errors.Wrapf(err, "cannot unmarshal %s", path)
	}
	return s, nil
}

func parseArray(path string, raw json.RawMessage) ([]json.RawMessage, error) {
	if jsonKind(raw) != "array" {
		return nil, mismatch(path, "array", raw)
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, errors.Wrapf(err, "cannot unmarshal %s", path)
	}
	return elems, nil
}

type stringValue struct{ p *string }

func (v stringValue) empty() bool      { return *v.p == "" }
func (v stringValue) reset(def string) { *v.p = def }
func (v stringValue) encode() any      { return *v.p }

func (v stringValue) decode(path string, raw json.RawMessage) error {
	s, err := decodeString(path, raw)
	if err != nil {
		return err
	}
	*v.p = s
	return nil
}

// discriminantValue is the itemType member of a typed record; it only accepts its own tag.
type discriminantValue struct {
	p    *string
	want string
}

func (v discriminantValue) empty() bool      { return *v.p == "" }
func (v discriminantValue) reset(def string) { *v.p = def }
func (v discriminantValue) encode() any      { return *v.p }

func (v discriminantValue) decode(path string, raw json.RawMessage) error {
	s, err := decodeString(path, raw)
	if err != nil {
		return err
	}
	if s != v.want {
		return &SchemaMismatchError{Path: path, Expected: strconv.Quote(v.want), Got: strconv.Quote(s)}
	}
	*v.p = s
	return nil
}

type intValue[T ~int | ~int64] struct{ p *T }

func (v intValue[T]) empty() bool      { return *v.p == 0 }
func (v intValue[T]) reset(def string) { *v.p = 0 }
func (v intValue[T]) encode() any      { return int64(*v.p) }

func (v intValue[T]) decode(path string, raw json.RawMessage) error {
	if jsonKind(raw) != "number" {
		return mismatch(path, "integer", raw)
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err != nil {
		return &SchemaMismatchError{Path: path, Expected: "integer", Got: string(raw)}
	}
	*v.p = T(n)
	return nil
}

// flagValue reads true/false as well as 1/0, which is how the API reports "deleted".
type flagValue struct{ p *bool }

func (v flagValue) empty() bool      { return !*v.p }
func (v flagValue) reset(def string) { *v.p = false }

func (v flagValue) encode() any {
	if *v.p {
		return 1
	}
	return 0
}

func (v flagValue) decode(path string, raw json.RawMessage) error {
	switch jsonKind(raw) {
	case "boolean":
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return errors.Wrapf(err, "cannot unmarshal %s", path)
		}
		*v.p = b
	case "number":
		var f float64
		if err := json.Unmarshal(raw, &f); err != nil {
			return errors.Wrapf(err, "cannot unmarshal %s", path)
		}
		*v.p = f != 0
	default:
		return mismatch(path, "boolean", raw)
	}
	return nil
}

// stringOrFalseValue: zotero reports some missing strings (parentItem, parsedDate) as false
type stringOrFalseValue struct{ p *string }

func (v stringOrFalseValue) empty() bool      { return *v.p == "" }
func (v stringOrFalseValue) reset(def string) { *v.p = "" }
func (v stringOrFalseValue) encode() any      { return *v.p }

func (v stringOrFalseValue) decode(path string, raw json.RawMessage) error {
	if jsonKind(raw) == "boolean" && string(raw) == "false" {
		*v.p = ""
		return nil
	}
	s, err := decodeString(path, raw)
	if err != nil {
		return err
	}
	*v.p = s
	return nil
}

type stringsValue struct{ p *[]string }

func (v stringsValue) empty() bool      { return len(*v.p) == 0 }
func (v stringsValue) reset(def string) { *v.p = []string{} }

func (v stringsValue) encode() any {
	if *v.p == nil {
		return []string{}
	}
	return *v.p
}

func (v stringsValue) decode(path string, raw json.RawMessage) error {
	elems, err := parseArray(path, raw)
	if err != nil {
		return err
	}
	result := make([]string, 0, len(elems))
	for i, elem := range elems {
		s, err := decodeString(indexPath(path, i), elem)
		if err != nil {
			return err
		}
		result = append(result, s)
	}
	*v.p = result
	return nil
}

type creatorsValue struct{ p *[]Creator }

func (v creatorsValue) empty() bool      { return len(*v.p) == 0 }
func (v creatorsValue) reset(def string) { *v.p = []Creator{} }

func (v creatorsValue) encode() any {
	if *v.p == nil {
		return []Creator{}
	}
	return *v.p
}

func (v creatorsValue) decode(path string, raw json.RawMessage) error {
	elems, err := parseArray(path, raw)
	if err != nil {
		return err
	}
	result := make([]Creator, len(elems))
	for i, elem := range elems {
		if err := result[i].decode(indexPath(path, i), elem); err != nil {
			return err
		}
	}
	*v.p = result
	return nil
}

type tagsValue struct{ p *[]Tag }

func (v tagsValue) empty() bool      { return len(*v.p) == 0 }
func (v tagsValue) reset(def string) { *v.p = []Tag{} }

func (v tagsValue) encode() any {
	if *v.p == nil {
		return []Tag{}
	}
	return *v.p
}

func (v tagsValue) decode(path string, raw json.RawMessage) error {
	elems, err := parseArray(path, raw)
	if err != nil {
		return err
	}
	result := make([]Tag, len(elems))
	for i, elem := range elems {
		if err := result[i].decode(indexPath(path, i), elem); err != nil {
			return err
		}
	}
	*v.p = result
	return nil
}

type relationsValue struct{ p *Relations }

func (v relationsValue) empty() bool      { return len(*v.p) == 0 }
func (v relationsValue) reset(def string) { *v.p = Relations{} }

func (v relationsValue) encode() any {
	if *v.p == nil {
		return Relations{}
	}
	return *v.p
}

func (v relationsValue) decode(path string, raw json.RawMessage) error {
	return v.p.decode(path, raw)
}

// rawValue keeps a member verbatim, e.g. the library/links/meta passthrough of the envelope.
type rawValue struct{ p *json.RawMessage }

func (v rawValue) empty() bool      { return len(*v.p) == 0 }
func (v rawValue) reset(def string) { *v.p = nil }
func (v rawValue) encode() any      { return *v.p }

func (v rawValue) decode(path string, raw json.RawMessage) error {
	*v.p = append(json.RawMessage(nil), raw...)
	return nil
}

// dataValue is the typed data payload of an Item.
type dataValue struct{ p *ItemData }

func (v dataValue) empty() bool      { return *v.p == nil }
func (v dataValue) reset(def string) { *v.p = nil }
func (v dataValue) encode() any      { return *v.p }

func (v dataValue) decode(path string, raw json.RawMessage) error {
	d, err := decodeData(path, raw)
	if err != nil {
		return err
	}
	*v.p = d
	return nil
}
