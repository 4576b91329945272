package zotero

import (
	"encoding/json"
	"strconv"
)

// Item is the envelope the API returns for one item. Library, Links and Meta are
// passed through untouched.
type Item struct {
	Key     string
	Version int64
	Library json.RawMessage
	Links   json.RawMessage
	Meta    json.RawMessage
	Data    ItemData
}

// Library is the typed view of Item.Library.
type Library struct {
	Type  string
	Id    int64
	Name  string
	Links json.RawMessage
}

// ItemMeta is the typed view of Item.Meta.
type ItemMeta struct {
	CreatorSummary string
	ParsedDate     string
	NumChildren    int64
}

func (item *Item) bind() []field {
	return []field{
		str("Key", "key", &item.Key),
		{FieldPolicy{Name: "Version", Wire: "version", Presence: AlwaysPresent}, intValue[int64]{&item.Version}},
		{FieldPolicy{Name: "Library", Wire: "library", Presence: OmitIfEmpty}, rawValue{&item.Library}},
		{FieldPolicy{Name: "Links", Wire: "links", Presence: OmitIfEmpty}, rawValue{&item.Links}},
		{FieldPolicy{Name: "Meta", Wire: "meta", Presence: OmitIfEmpty}, rawValue{&item.Meta}},
		{FieldPolicy{Name: "Data", Wire: "data", Presence: OmitIfEmpty}, dataValue{&item.Data}},
	}
}

func (item *Item) decode(path string, raw []byte) error {
	if err := decodeObject(path, raw, item.bind()); err != nil {
		return err
	}
	if item.Data == nil || item.Key == "" || item.Data.GetKey() == "" {
		return nil
	}
	if item.Data.GetKey() != item.Key {
		return &SchemaMismatchError{
			Path:     joinPath(path, "data.key"),
			Expected: strconv.Quote(item.Key),
			Got:      strconv.Quote(item.Data.GetKey()),
		}
	}
	return nil
}

func (item *Item) UnmarshalJSON(data []byte) error {
	return item.decode("", data)
}

func (item Item) MarshalJSON() ([]byte, error) {
	return encodeObject(item.bind(), nil)
}

// GetType returns the item type of the payload, or "" for an item without data.
func (item *Item) GetType() string {
	if item.Data == nil {
		return ""
	}
	return item.Data.GetItemType()
}

func (item *Item) ParseLibrary() (Library, error) {
	lib := Library{}
	err := decodeObject("library", item.Library, []field{
		str("Type", "type", &lib.Type),
		{FieldPolicy{Name: "Id", Wire: "id", Presence: OmitIfEmpty}, intValue[int64]{&lib.Id}},
		str("Name", "name", &lib.Name),
		{FieldPolicy{Name: "Links", Wire: "links", Presence: OmitIfEmpty}, rawValue{&lib.Links}},
	})
	return lib, err
}

func (item *Item) ParseMeta() (ItemMeta, error) {
	meta := ItemMeta{}
	err := decodeObject("meta", item.Meta, []field{
		str("CreatorSummary", "creatorSummary", &meta.CreatorSummary),
		{FieldPolicy{Name: "ParsedDate", Wire: "parsedDate", Presence: OmitIfEmpty}, stringOrFalseValue{&meta.ParsedDate}},
		{FieldPolicy{Name: "NumChildren", Wire: "numChildren", Presence: OmitIfEmpty}, intValue[int64]{&meta.NumChildren}},
	})
	return meta, err
}

// DecodeItem decodes a single item envelope.
func DecodeItem(raw []byte) (*Item, error) {
	item := &Item{}
	if err := item.decode("", raw); err != nil {
		return nil, withPayload(err, raw)
	}
	return item, nil
}

// DecodeItems decodes the array returned by the list endpoints.
func DecodeItems(raw []byte) ([]Item, error) {
	elems, err := parseArray("", raw)
	if err != nil {
		return nil, withPayload(err, raw)
	}
	items := make([]Item, len(elems))
	for i, elem := range elems {
		if err := items[i].decode(indexPath("", i), elem); err != nil {
			return nil, withPayload(err, raw)
		}
	}
	return items, nil
}

// EncodeItem returns the wire form of an item envelope without HTML escaping.
func EncodeItem(item *Item) ([]byte, error) {
	return marshal(item)
}
