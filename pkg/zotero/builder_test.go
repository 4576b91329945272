package zotero_test

import (
	"testing"

	"github.com/je4/zotdata/pkg/zotero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_MatchesDecodedDefaults(t *testing.T) {
	builders := map[string]func() zotero.ItemData{
		zotero.ItemTypePreprint:        func() zotero.ItemData { return zotero.NewPreprintBuilder().Build() },
		zotero.ItemTypeJournalArticle:  func() zotero.ItemData { return zotero.NewJournalArticleBuilder().Build() },
		zotero.ItemTypeBook:            func() zotero.ItemData { return zotero.NewBookBuilder().Build() },
		zotero.ItemTypeBookSection:     func() zotero.ItemData { return zotero.NewBookSectionBuilder().Build() },
		zotero.ItemTypeConferencePaper: func() zotero.ItemData { return zotero.NewConferencePaperBuilder().Build() },
		zotero.ItemTypeThesis:          func() zotero.ItemData { return zotero.NewThesisBuilder().Build() },
		zotero.ItemTypeReport:          func() zotero.ItemData { return zotero.NewReportBuilder().Build() },
		zotero.ItemTypeWebpage:         func() zotero.ItemData { return zotero.NewWebpageBuilder().Build() },
		zotero.ItemTypeDocument:        func() zotero.ItemData { return zotero.NewDocumentBuilder().Build() },
		zotero.ItemTypeComputerProgram: func() zotero.ItemData { return zotero.NewComputerProgramBuilder().Build() },
		zotero.ItemTypeNote:            func() zotero.ItemData { return zotero.NewNoteBuilder().Build() },
		zotero.ItemTypeAttachment:      func() zotero.ItemData { return zotero.NewAttachmentBuilder().Build() },
	}
	assert.Len(t, builders, len(zotero.ItemTypes()))

	for itemType, build := range builders {
		t.Run(itemType, func(t *testing.T) {
			decoded, err := zotero.DecodeDataAs(itemType, []byte(`{}`))
			require.NoError(t, err)
			built := build()
			assert.Equal(t, decoded, built)
			assert.True(t, zotero.Equal(decoded, built))

			def, ok := zotero.NewItemData(itemType)
			require.True(t, ok)
			assert.Equal(t, def, built)
		})
	}
}

func TestBuilder_Sparks(t *testing.T) {
	p := zotero.NewPreprintBuilder().
		Key("HPXL75GC").
		Version(355).
		Title("Sparks of Artificial General Intelligence: Early experiments with GPT-4").
		AddCreator(zotero.NewPerson("author", "Sébastien", "Bubeck")).
		AddCreator(zotero.NewPerson("author", "Varun", "Chandrasekaran")).
		Repository("arXiv").
		ArchiveID("arXiv:2303.12712").
		Rights("").
		Tags(zotero.NewAutomaticTag("Computer Science - Artificial Intelligence")).
		AddTag(zotero.NewTag("plato-read")).
		Build()

	assert.Equal(t, zotero.ItemTypePreprint, p.GetItemType())
	assert.Equal(t, "", p.Rights)
	assert.Len(t, p.GetCreators(), 2)

	got, err := zotero.EncodeData(p)
	require.NoError(t, err)
	assert.Equal(t, `{"key":"HPXL75GC","version":355,"itemType":"preprint",`+
		`"title":"Sparks of Artificial General Intelligence: Early experiments with GPT-4",`+
		`"creators":[{"creatorType":"author","firstName":"Sébastien","lastName":"Bubeck"},{"creatorType":"author","firstName":"Varun","lastName":"Chandrasekaran"}],`+
		`"repository":"arXiv","archiveID":"arXiv:2303.12712",`+
		`"tags":[{"tag":"Computer Science - Artificial Intelligence","type":1},{"tag":"plato-read"}],`+
		`"collections":[],"relations":{}}`, string(got))

	decoded, err := zotero.DecodeDataAs(zotero.ItemTypePreprint, got)
	require.NoError(t, err)
	assert.True(t, zotero.Equal(p, decoded))
}

func TestBuilder_SharedSetters(t *testing.T) {
	b := zotero.NewNoteBuilder().
		ParentItem("HPXL75GC").
		Note("<p>read chapter 2</p>").
		Collections("ABCD2345").
		Relate("dc:relation", "http://zotero.org/users/1/items/BCDE3456").
		DateAdded("2023-03-25T16:54:59Z").
		DateModified("2023-03-25T16:55:11Z").
		Deleted(true)
	first := b.Build()

	got, err := zotero.EncodeData(first)
	require.NoError(t, err)
	assert.Equal(t, `{"itemType":"note","parentItem":"HPXL75GC","note":"<p>read chapter 2</p>",`+
		`"tags":[],"collections":["ABCD2345"],"relations":{"dc:relation":"http://zotero.org/users/1/items/BCDE3456"},`+
		`"dateAdded":"2023-03-25T16:54:59Z","dateModified":"2023-03-25T16:55:11Z","deleted":1}`, string(got))

	// the builder keeps staging after Build
	second := b.Note("<p>done</p>").Collections().Relations(nil).Build()
	assert.Equal(t, "<p>read chapter 2</p>", first.Note)
	assert.Equal(t, []string{"ABCD2345"}, first.GetCollections())
	assert.Equal(t, "<p>done</p>", second.Note)
	assert.Equal(t, []string{}, second.GetCollections())
	assert.Equal(t, zotero.Relations{}, second.GetRelations())
}

func TestBuilder_Creators(t *testing.T) {
	b := zotero.NewBookSectionBuilder().
		Creators(zotero.NewPerson("editor", "Gunther", "Eigler"), zotero.NewOrganization("author", "ACM")).
		BookTitle("Platon Werke").
		Pages("1-10")
	s := b.Build()
	require.Len(t, s.Creators, 2)
	assert.Equal(t, "ACM", s.Creators[1].Name)
	assert.Equal(t, "Platon Werke", s.BookTitle)

	s.Creators[0].LastName = "changed"
	assert.Equal(t, "Eigler", b.Build().Creators[0].LastName)

	empty := b.Creators().Build()
	assert.NotNil(t, empty.Creators)
	assert.Empty(t, empty.Creators)
}
