package zotero_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/je4/zotdata/pkg/zotero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadPreprint(t *testing.T) []byte {
	t.Helper()
	raw, err := os.ReadFile("testdata/preprint_item.json")
	require.NoError(t, err)
	return raw
}

func TestDecodeItem_Preprint(t *testing.T) {
	item, err := zotero.DecodeItem(loadPreprint(t))
	require.NoError(t, err)

	assert.Equal(t, "HPXL75GC", item.Key)
	assert.Equal(t, int64(355), item.Version)
	assert.Equal(t, zotero.ItemTypePreprint, item.GetType())

	p, ok := item.Data.(*zotero.Preprint)
	require.True(t, ok, "data decoded as %T", item.Data)
	assert.Equal(t, "Sparks of Artificial General Intelligence: Early experiments with GPT-4", p.Title)
	assert.Equal(t, "arXiv:2303.12712", p.ArchiveID)
	assert.Equal(t, "arXiv", p.Repository)
	assert.Equal(t, "", p.Rights)
	assert.Equal(t, "", p.DOI)
	assert.Equal(t, int64(355), p.GetVersion())
	assert.True(t, p.IsDeleted())

	require.Len(t, p.Creators, 14)
	assert.Equal(t, zotero.NewPerson("author", "Sébastien", "Bubeck"), p.Creators[0])
	assert.Equal(t, "Ribeiro, Marco Tulio", p.Creators[12].String())
	assert.Equal(t, "Zhang", p.Creators[13].LastName)

	require.Len(t, p.Tags, 3)
	assert.Equal(t, zotero.TagAutomatic, p.Tags[0].Type)
	assert.Equal(t, zotero.NewTag("plato-read"), p.Tags[2])
	assert.True(t, zotero.HasTag(p.Tags, "plato-read"))

	assert.NotNil(t, p.GetCollections())
	assert.Empty(t, p.GetCollections())
	assert.NotNil(t, p.GetRelations())
	assert.Empty(t, p.GetRelations())
}

func TestItem_RoundTrip(t *testing.T) {
	raw := loadPreprint(t)
	item, err := zotero.DecodeItem(raw)
	require.NoError(t, err)

	// empty strings are not written back
	var expected map[string]any
	require.NoError(t, json.Unmarshal(raw, &expected))
	data := expected["data"].(map[string]any)
	for name, v := range data {
		if v == "" {
			delete(data, name)
		}
	}
	want, err := json.Marshal(expected)
	require.NoError(t, err)

	got, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(got))
	assert.NotContains(t, string(got), `"rights"`)

	again, err := zotero.DecodeItem(got)
	require.NoError(t, err)
	assert.True(t, zotero.Equal(item.Data, again.Data))
}

func TestItem_LibraryAndMeta(t *testing.T) {
	item, err := zotero.DecodeItem(loadPreprint(t))
	require.NoError(t, err)

	lib, err := item.ParseLibrary()
	require.NoError(t, err)
	assert.Equal(t, "user", lib.Type)
	assert.Equal(t, int64(8071408), lib.Id)
	assert.Equal(t, "ju6ge", lib.Name)
	assert.NotEmpty(t, lib.Links)

	meta, err := item.ParseMeta()
	require.NoError(t, err)
	assert.Equal(t, "Bubeck et al.", meta.CreatorSummary)
	assert.Equal(t, "2023-03-22", meta.ParsedDate)
	assert.Equal(t, int64(1), meta.NumChildren)
}

func TestItem_WithoutData(t *testing.T) {
	item, err := zotero.DecodeItem([]byte(`{"key":"ABCD2345","version":3}`))
	require.NoError(t, err)
	assert.Nil(t, item.Data)
	assert.Equal(t, "", item.GetType())

	meta, err := item.ParseMeta()
	require.NoError(t, err)
	assert.Equal(t, zotero.ItemMeta{}, meta)

	got, err := json.Marshal(item)
	require.NoError(t, err)
	assert.Equal(t, `{"key":"ABCD2345","version":3}`, string(got))
}

func TestItem_KeyMismatch(t *testing.T) {
	raw := []byte(`{"key":"ABCD2345","version":1,"data":{"key":"BCDE3456","itemType":"note"}}`)
	_, err := zotero.DecodeItem(raw)
	require.ErrorIs(t, err, zotero.ErrSchemaMismatch)

	var sm *zotero.SchemaMismatchError
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, "data.key", sm.Path)
	assert.Equal(t, raw, sm.Payload)
}

func TestDecodeItems(t *testing.T) {
	raw := []byte(`[
		{"key":"ABCD2345","version":1,"data":{"key":"ABCD2345","itemType":"note","note":"<p>a</p>"}},
		{"key":"BCDE3456","version":2,"data":{"key":"BCDE3456","itemType":"book","title":"Politeia"}}
	]`)
	items, err := zotero.DecodeItems(raw)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, zotero.ItemTypeNote, items[0].GetType())
	assert.Equal(t, "Politeia", items[1].Data.(*zotero.Book).Title)

	_, err = zotero.DecodeItems([]byte(`[{"key":"ABCD2345"},{"data":{"itemType":"book","tags":{}}}]`))
	var sm *zotero.SchemaMismatchError
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, "[1].data.tags", sm.Path)
	assert.Equal(t, "array", sm.Expected)
	assert.Equal(t, "object", sm.Got)

	_, err = zotero.DecodeItems([]byte(`{"key":"ABCD2345"}`))
	require.ErrorIs(t, err, zotero.ErrSchemaMismatch)
}
