package zotero_test

import (
	"testing"

	"github.com/je4/zotdata/pkg/zotero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDataAs_Defaults(t *testing.T) {
	testCases := []struct {
		itemType string
		encoded  string
	}{
		{zotero.ItemTypePreprint, `{"itemType":"preprint","creators":[],"tags":[],"collections":[],"relations":{}}`},
		{zotero.ItemTypeBook, `{"itemType":"book","creators":[],"tags":[],"collections":[],"relations":{}}`},
		{zotero.ItemTypeWebpage, `{"itemType":"webpage","creators":[],"tags":[],"collections":[],"relations":{}}`},
		{zotero.ItemTypeNote, `{"itemType":"note","tags":[],"relations":{}}`},
		{zotero.ItemTypeAttachment, `{"itemType":"attachment","tags":[],"relations":{}}`},
	}
	for _, tc := range testCases {
		t.Run(tc.itemType, func(t *testing.T) {
			for _, raw := range []string{`{}`, `null`} {
				d, err := zotero.DecodeDataAs(tc.itemType, []byte(raw))
				require.NoError(t, err)
				assert.Equal(t, tc.itemType, d.GetItemType())
				assert.NotNil(t, d.GetTags())
				assert.NotNil(t, d.GetCollections())
				assert.NotNil(t, d.GetRelations())
				if a, ok := d.(zotero.Authored); ok {
					assert.NotNil(t, a.GetCreators())
				}

				got, err := zotero.EncodeData(d)
				require.NoError(t, err)
				assert.Equal(t, tc.encoded, string(got))
			}
		})
	}
}

func TestDecodeData_Dispatch(t *testing.T) {
	for _, itemType := range zotero.ItemTypes() {
		d, err := zotero.DecodeData([]byte(`{"itemType":"` + itemType + `"}`))
		require.NoError(t, err, itemType)
		assert.Equal(t, itemType, d.GetItemType())

		empty, ok := zotero.NewItemData(itemType)
		require.True(t, ok)
		assert.IsType(t, empty, d)
	}
}

func TestDecodeData_UnknownMembersIgnored(t *testing.T) {
	withExtra, err := zotero.DecodeData([]byte(`{"itemType":"book","title":"Politeia","inPublications":true,"foo":{"bar":[1,2]},` +
		`"creators":[{"creatorType":"author","firstName":"","lastName":"Plato","orcid":"0000"}],` +
		`"tags":[{"tag":"philosophy","colour":"red"}]}`))
	require.NoError(t, err)
	withoutExtra, err := zotero.DecodeData([]byte(`{"itemType":"book","title":"Politeia",` +
		`"creators":[{"creatorType":"author","firstName":"","lastName":"Plato"}],` +
		`"tags":[{"tag":"philosophy"}]}`))
	require.NoError(t, err)
	assert.True(t, zotero.Equal(withExtra, withoutExtra))

	got, err := zotero.EncodeData(withExtra)
	require.NoError(t, err)
	assert.Equal(t, `{"itemType":"book","title":"Politeia","creators":[{"creatorType":"author","firstName":"","lastName":"Plato"}],"tags":[{"tag":"philosophy"}],"collections":[],"relations":{}}`, string(got))
}

func TestDecodeData_Mismatch(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		path     string
		expected string
		got      string
	}{
		{"creators scalar", `{"itemType":"preprint","creators":"Bubeck"}`, "creators", "array", "string"},
		{"tags object", `{"itemType":"preprint","tags":{"tag":"x"}}`, "tags", "array", "object"},
		{"tag label number", `{"itemType":"book","tags":[{"tag":"a"},{"tag":7}]}`, "tags[1].tag", "string", "number"},
		{"title array", `{"itemType":"book","title":["a"]}`, "title", "string", "array"},
		{"creator name", `{"itemType":"book","creators":[{"name":5}]}`, "creators[0].name", "string", "number"},
		{"both name forms", `{"itemType":"book","creators":[{"lastName":"Plato"},{"name":"ACM","lastName":"x"}]}`, "creators[1]", "either firstName/lastName or name", "both"},
		{"collections element", `{"itemType":"book","collections":["ABCD2345",3]}`, "collections[1]", "string", "number"},
		{"version string", `{"itemType":"book","version":"12"}`, "version", "integer", "string"},
		{"version fraction", `{"itemType":"book","version":1.5}`, "version", "integer", "1.5"},
		{"deleted string", `{"itemType":"book","deleted":"yes"}`, "deleted", "boolean", "string"},
		{"itemType number", `{"itemType":12}`, "itemType", "string", "number"},
		{"not an object", `["book"]`, "", "object", "array"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := zotero.DecodeData([]byte(tc.raw))
			assert.Nil(t, d)
			require.ErrorIs(t, err, zotero.ErrSchemaMismatch)

			var sm *zotero.SchemaMismatchError
			require.ErrorAs(t, err, &sm)
			assert.Equal(t, tc.path, sm.Path)
			assert.Equal(t, tc.expected, sm.Expected)
			assert.Equal(t, tc.got, sm.Got)
			assert.Equal(t, tc.raw, string(sm.Payload))
		})
	}
}

func TestDecodeDataAs_Discriminant(t *testing.T) {
	_, err := zotero.DecodeDataAs(zotero.ItemTypeBook, []byte(`{"itemType":"preprint"}`))
	var sm *zotero.SchemaMismatchError
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, "itemType", sm.Path)
	assert.Equal(t, `"book"`, sm.Expected)
	assert.Equal(t, `"preprint"`, sm.Got)

	_, err = zotero.DecodeDataAs("patent", []byte(`{}`))
	require.ErrorIs(t, err, zotero.ErrUnknownItemType)
	assert.NotErrorIs(t, err, zotero.ErrSchemaMismatch)
}

func TestDeleted(t *testing.T) {
	for raw, deleted := range map[string]bool{
		`{"itemType":"note","deleted":1}`:     true,
		`{"itemType":"note","deleted":true}`:  true,
		`{"itemType":"note","deleted":0}`:     false,
		`{"itemType":"note","deleted":false}`: false,
		`{"itemType":"note","deleted":null}`:  false,
	} {
		d, err := zotero.DecodeData([]byte(raw))
		require.NoError(t, err, raw)
		assert.Equal(t, deleted, d.IsDeleted(), raw)

		got, err := zotero.EncodeData(d)
		require.NoError(t, err)
		if deleted {
			assert.Contains(t, string(got), `"deleted":1`)
		} else {
			assert.NotContains(t, string(got), `"deleted"`)
		}
	}
}

func TestAttachment_NullAndFalse(t *testing.T) {
	d, err := zotero.DecodeData([]byte(`{"itemType":"attachment","parentItem":false,"md5":null,"mtime":null,"linkMode":"linked_url"}`))
	require.NoError(t, err)
	a := d.(*zotero.Attachment)
	assert.Equal(t, "", a.GetParentItem())
	assert.Equal(t, "", a.MD5)
	assert.Equal(t, int64(0), a.Mtime)

	got, err := zotero.EncodeData(a)
	require.NoError(t, err)
	assert.Equal(t, `{"itemType":"attachment","linkMode":"linked_url","tags":[],"relations":{}}`, string(got))

	d, err = zotero.DecodeData([]byte(`{"itemType":"attachment","parentItem":"HPXL75GC","md5":"9e107d9d372bb6826bd81d3542a419d6","mtime":1679763299000,"collections":["ABCD2345"]}`))
	require.NoError(t, err)
	a = d.(*zotero.Attachment)
	assert.Equal(t, "HPXL75GC", a.GetParentItem())
	assert.Equal(t, int64(1679763299000), a.Mtime)

	got, err = zotero.EncodeData(a)
	require.NoError(t, err)
	assert.JSONEq(t, `{"itemType":"attachment","parentItem":"HPXL75GC","md5":"9e107d9d372bb6826bd81d3542a419d6","mtime":1679763299000,"tags":[],"collections":["ABCD2345"],"relations":{}}`, string(got))
}

func TestNote_HTMLNotEscaped(t *testing.T) {
	d, err := zotero.DecodeData([]byte(`{"itemType":"note","note":"<p>Plato &amp; Aristotle</p>"}`))
	require.NoError(t, err)
	got, err := zotero.EncodeData(d)
	require.NoError(t, err)
	assert.Contains(t, string(got), `"note":"<p>Plato &amp; Aristotle</p>"`)
}

func TestUnknown_Passthrough(t *testing.T) {
	raw := `{"key":"ABCD2345","version":7,"itemType":"patent","title":"Perpetuum mobile","issuingAuthority":"EPO","tags":[{"tag":"physics"}],"collections":["BCDE3456"],"relations":{},"dateAdded":"2023-03-25T16:54:59Z"}`
	d, err := zotero.DecodeData([]byte(raw))
	require.NoError(t, err)

	u, ok := d.(*zotero.Unknown)
	require.True(t, ok)
	assert.Equal(t, "patent", u.GetItemType())
	assert.Equal(t, "ABCD2345", u.GetKey())
	assert.Equal(t, []zotero.Tag{zotero.NewTag("physics")}, u.GetTags())
	assert.Len(t, u.Extra, 2)
	assert.JSONEq(t, `"EPO"`, string(u.Extra["issuingAuthority"]))

	got, err := zotero.EncodeData(u)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(got))

	_, known := zotero.Schema("patent")
	assert.False(t, known)
}

func TestSchema(t *testing.T) {
	fields, ok := zotero.Schema(zotero.ItemTypePreprint)
	require.True(t, ok)
	require.Greater(t, len(fields), 3)
	assert.Equal(t, "key", fields[0].Wire)
	assert.Equal(t, "version", fields[1].Wire)
	assert.Equal(t, zotero.FieldPolicy{Name: "ItemType", Wire: "itemType", Presence: zotero.DefaultIfAbsent, Default: "preprint"}, fields[2])

	byWire := map[string]zotero.FieldPolicy{}
	for _, f := range fields {
		byWire[f.Wire] = f
	}
	assert.Equal(t, zotero.AlwaysPresent, byWire["creators"].Presence)
	assert.Equal(t, zotero.AlwaysPresent, byWire["tags"].Presence)
	assert.Equal(t, zotero.OmitIfEmpty, byWire["rights"].Presence)
	assert.Equal(t, "DOI", byWire["DOI"].Name)
	assert.Equal(t, "ArchiveID", byWire["archiveID"].Name)
	assert.Equal(t, fields, zotero.NewPreprint().Fields())

	fields, ok = zotero.Schema(zotero.ItemTypeNote)
	require.True(t, ok)
	for _, f := range fields {
		if f.Wire == "collections" {
			assert.Equal(t, zotero.OmitIfEmpty, f.Presence)
		}
		assert.NotEqual(t, "creators", f.Wire)
	}
	assert.Equal(t, "omit-if-empty", zotero.OmitIfEmpty.String())
}

func TestItemTypes(t *testing.T) {
	assert.Equal(t, []string{
		"attachment", "book", "bookSection", "computerProgram", "conferencePaper", "document",
		"journalArticle", "note", "preprint", "report", "thesis", "webpage",
	}, zotero.ItemTypes())
}

func TestEncodeDataList(t *testing.T) {
	got, err := zotero.EncodeDataList()
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	note := zotero.NewNoteBuilder().Note("<p>x</p>").Build()
	got, err = zotero.EncodeDataList(note)
	require.NoError(t, err)
	assert.Equal(t, `[{"itemType":"note","note":"<p>x</p>","tags":[],"relations":{}}]`, string(got))
}

func TestClone(t *testing.T) {
	orig := zotero.NewBookBuilder().
		Title("Politeia").
		AddCreator(zotero.NewPerson("author", "", "Plato")).
		AddTag(zotero.NewTag("philosophy")).
		Relate("dc:relation", "http://zotero.org/users/1/items/ABCD2345").
		Build()
	c := orig.Clone().(*zotero.Book)
	require.True(t, zotero.Equal(orig, c))

	c.Tags[0].Tag = "changed"
	c.Creators[0].LastName = "Aristotle"
	c.Relations.Add("dc:relation", "http://zotero.org/users/1/items/BCDE3456")
	assert.Equal(t, "philosophy", orig.Tags[0].Tag)
	assert.Equal(t, "Plato", orig.Creators[0].LastName)
	assert.Len(t, orig.Relations.Get("dc:relation"), 1)
	assert.False(t, zotero.Equal(orig, c))
}
