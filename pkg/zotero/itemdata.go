package zotero

import (
	"encoding/json"
	"reflect"
)

// ItemData is the contract shared by the data records of all item types.
// Accessors are total: decoding, the constructors and the builders never leave a
// shared member nil.
type ItemData interface {
	GetKey() string
	SetKey(key string)
	GetVersion() int64
	SetVersion(version int64)
	GetItemType() string
	GetTags() []Tag
	SetTags(tags []Tag)
	GetCollections() []string
	SetCollections(keys []string)
	GetRelations() Relations
	SetRelations(relations Relations)
	GetDateAdded() string
	SetDateAdded(date string)
	GetDateModified() string
	SetDateModified(date string)
	IsDeleted() bool
	SetDeleted(deleted bool)

	// Fields returns the field table used to encode and decode the record.
	Fields() []FieldPolicy
	Clone() ItemData

	json.Marshaler
	json.Unmarshaler
}

// Authored is implemented by item types carrying a creator list.
type Authored interface {
	GetCreators() []Creator
	SetCreators(creators []Creator)
}

// Child is implemented by item types that may hang below a parent item (notes, attachments).
type Child interface {
	GetParentItem() string
	SetParentItem(key string)
}

// ItemDataBase holds the members every item type has. Wire names and presence rules
// live in the field table built by fields.
type ItemDataBase struct {
	Key          string
	Version      int64
	ItemType     string
	Tags         []Tag
	Collections  []string
	Relations    Relations
	DateAdded    string
	DateModified string
	Deleted      bool
}

func (b *ItemDataBase) GetKey() string           { return b.Key }
func (b *ItemDataBase) SetKey(key string)        { b.Key = key }
func (b *ItemDataBase) GetVersion() int64        { return b.Version }
func (b *ItemDataBase) SetVersion(version int64) { b.Version = version }
func (b *ItemDataBase) GetItemType() string      { return b.ItemType }
func (b *ItemDataBase) GetTags() []Tag           { return b.Tags }
func (b *ItemDataBase) GetCollections() []string { return b.Collections }
func (b *ItemDataBase) GetRelations() Relations  { return b.Relations }
func (b *ItemDataBase) GetDateAdded() string     { return b.DateAdded }
func (b *ItemDataBase) SetDateAdded(date string) { b.DateAdded = date }
func (b *ItemDataBase) GetDateModified() string  { return b.DateModified }
func (b *ItemDataBase) IsDeleted() bool          { return b.Deleted }
func (b *ItemDataBase) SetDeleted(deleted bool)  { b.Deleted = deleted }

func (b *ItemDataBase) SetDateModified(date string) { b.DateModified = date }

func (b *ItemDataBase) SetTags(tags []Tag) {
	if tags == nil {
		tags = []Tag{}
	}
	b.Tags = tags
}

func (b *ItemDataBase) SetCollections(keys []string) {
	if keys == nil {
		keys = []string{}
	}
	b.Collections = keys
}

func (b *ItemDataBase) SetRelations(relations Relations) {
	if relations == nil {
		relations = Relations{}
	}
	b.Relations = relations
}

// fields builds the complete table of a record: the identifying members, the type's own
// members, then the remaining shared members.
func (b *ItemDataBase) fields(itemType field, own ...field) []field {
	fs := []field{
		str("Key", "key", &b.Key),
		{FieldPolicy{Name: "Version", Wire: "version", Presence: OmitIfEmpty}, intValue[int64]{&b.Version}},
		itemType,
	}
	fs = append(fs, own...)
	return append(fs,
		field{FieldPolicy{Name: "Tags", Wire: "tags", Presence: AlwaysPresent}, tagsValue{&b.Tags}},
		field{FieldPolicy{Name: "Collections", Wire: "collections", Presence: AlwaysPresent}, stringsValue{&b.Collections}},
		field{FieldPolicy{Name: "Relations", Wire: "relations", Presence: AlwaysPresent}, relationsValue{&b.Relations}},
		str("DateAdded", "dateAdded", &b.DateAdded),
		str("DateModified", "dateModified", &b.DateModified),
		field{FieldPolicy{Name: "Deleted", Wire: "deleted", Presence: OmitIfEmpty}, flagValue{&b.Deleted}},
	)
}

func (b ItemDataBase) clone() ItemDataBase {
	b.Tags = append([]Tag{}, b.Tags...)
	b.Collections = append([]string{}, b.Collections...)
	b.Relations = b.Relations.Clone()
	return b
}

// Contributors carries the creator list of regular item types.
type Contributors struct {
	Creators []Creator
}

func (c *Contributors) GetCreators() []Creator { return c.Creators }

func (c *Contributors) SetCreators(creators []Creator) {
	if creators == nil {
		creators = []Creator{}
	}
	c.Creators = creators
}

func (c Contributors) clone() Contributors {
	c.Creators = append([]Creator{}, c.Creators...)
	return c
}

// ParentRef links a child item to its parent.
type ParentRef struct {
	ParentItem string
}

func (p *ParentRef) GetParentItem() string    { return p.ParentItem }
func (p *ParentRef) SetParentItem(key string) { p.ParentItem = key }

// Equal reports whether two records are structurally identical.
func Equal(a, b ItemData) bool {
	return reflect.DeepEqual(a, b)
}
