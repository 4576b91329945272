package zotero_test

import (
	"encoding/json"
	"testing"

	"github.com/je4/zotdata/pkg/zotero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreator_Variants(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		creator zotero.Creator
		encoded string
	}{
		{
			name:    "person",
			raw:     `{"creatorType":"editor","firstName":"Yin Tat","lastName":"Lee"}`,
			creator: zotero.NewPerson("editor", "Yin Tat", "Lee"),
			encoded: `{"creatorType":"editor","firstName":"Yin Tat","lastName":"Lee"}`,
		},
		{
			name:    "last name only",
			raw:     `{"creatorType":"author","lastName":"Plato"}`,
			creator: zotero.NewPerson("author", "", "Plato"),
			encoded: `{"creatorType":"author","firstName":"","lastName":"Plato"}`,
		},
		{
			name:    "organization",
			raw:     `{"creatorType":"contributor","name":"OpenAI"}`,
			creator: zotero.NewOrganization("contributor", "OpenAI"),
			encoded: `{"creatorType":"contributor","name":"OpenAI"}`,
		},
		{
			name:    "missing creator type",
			raw:     `{"name":"OpenAI"}`,
			creator: zotero.NewOrganization(zotero.DefaultCreatorType, "OpenAI"),
			encoded: `{"creatorType":"author","name":"OpenAI"}`,
		},
		{
			name:    "unnamed",
			raw:     `{"creatorType":"editor"}`,
			creator: zotero.Creator{CreatorType: "editor", Kind: zotero.NameUnnamed},
			encoded: `{"creatorType":"editor"}`,
		},
		{
			name:    "null name is absent",
			raw:     `{"creatorType":"author","name":null,"lastName":"Plato"}`,
			creator: zotero.NewPerson("author", "", "Plato"),
			encoded: `{"creatorType":"author","firstName":"","lastName":"Plato"}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var c zotero.Creator
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &c))
			assert.Equal(t, tc.creator, c)

			got, err := json.Marshal(c)
			require.NoError(t, err)
			assert.Equal(t, tc.encoded, string(got))
		})
	}
}

func TestCreator_BothNameForms(t *testing.T) {
	var c zotero.Creator
	err := json.Unmarshal([]byte(`{"firstName":"Sam","name":"OpenAI"}`), &c)
	require.ErrorIs(t, err, zotero.ErrSchemaMismatch)
}

func TestCreator_String(t *testing.T) {
	assert.Equal(t, "Bubeck, Sébastien", zotero.NewPerson("author", "Sébastien", "Bubeck").String())
	assert.Equal(t, "Plato", zotero.NewPerson("author", "", "Plato").String())
	assert.Equal(t, "OpenAI", zotero.NewOrganization("author", "OpenAI").String())
	assert.Equal(t, "", zotero.Creator{}.String())
}

func TestTag(t *testing.T) {
	var tag zotero.Tag
	require.NoError(t, json.Unmarshal([]byte(`{"tag":"Computer Science - Artificial Intelligence","type":1}`), &tag))
	assert.Equal(t, zotero.NewAutomaticTag("Computer Science - Artificial Intelligence"), tag)

	got, err := json.Marshal(zotero.NewTag("plato-read"))
	require.NoError(t, err)
	assert.Equal(t, `{"tag":"plato-read"}`, string(got))

	got, err = json.Marshal(zotero.Tag{Tag: "plato-read", Type: zotero.TagManual})
	require.NoError(t, err)
	assert.Equal(t, `{"tag":"plato-read"}`, string(got))

	got, err = json.Marshal(zotero.Tag{})
	require.NoError(t, err)
	assert.Equal(t, `{"tag":""}`, string(got))

	assert.Equal(t, []string{"a", "b"}, zotero.TagLabels([]zotero.Tag{zotero.NewTag("a"), zotero.NewAutomaticTag("b")}))
}
