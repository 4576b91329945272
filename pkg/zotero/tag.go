package zotero

import (
	"encoding/json"
)

// TagType classifies how a tag was assigned. The API leaves the member out for manual tags.
type TagType int64

const (
	TagManual    TagType = 0
	TagAutomatic TagType = 1
)

type Tag struct {
	Tag  string
	Type TagType
}

func NewTag(label string) Tag {
	return Tag{Tag: label}
}

func NewAutomaticTag(label string) Tag {
	return Tag{Tag: label, Type: TagAutomatic}
}

func (t *Tag) bind() []field {
	return []field{
		{FieldPolicy{Name: "Tag", Wire: "tag", Presence: AlwaysPresent}, stringValue{&t.Tag}},
		{FieldPolicy{Name: "Type", Wire: "type", Presence: OmitIfEmpty}, intValue[TagType]{&t.Type}},
	}
}

func (t *Tag) decode(path string, raw json.RawMessage) error {
	return decodeObject(path, raw, t.bind())
}

func (t *Tag) UnmarshalJSON(data []byte) error {
	return t.decode("", data)
}

func (t Tag) MarshalJSON() ([]byte, error) {
	return encodeObject(t.bind(), nil)
}

// TagLabels returns the labels in order.
func TagLabels(tags []Tag) []string {
	result := make([]string, 0, len(tags))
	for _, t := range tags {
		result = append(result, t.Tag)
	}
	return result
}

func HasTag(tags []Tag, label string) bool {
	for _, t := range tags {
		if t.Tag == label {
			return true
		}
	}
	return false
}
