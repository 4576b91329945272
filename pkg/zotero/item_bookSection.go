package zotero

const ItemTypeBookSection = "bookSection"

// BookSection is a chapter or contribution inside an edited book.
type BookSection struct {
	ItemDataBase
	Contributors

	Title           string
	AbstractNote    string
	BookTitle       string
	Series          string
	SeriesNumber    string
	Volume          string
	NumberOfVolumes string
	Edition         string
	Place           string
	Publisher       string
	Date            string
	Pages           string
	Language        string
	ISBN            string
	ShortTitle      string
	URL             string
	AccessDate      string
	Archive         string
	ArchiveLocation string
	LibraryCatalog  string
	CallNumber      string
	Rights          string
	Extra           string
	CitationKey     string
}

func NewBookSection() *BookSection {
	p := &BookSection{}
	normalize(p.bind())
	return p
}

func (p *BookSection) bind() []field {
	return p.fields(
		discriminant(&p.ItemType, ItemTypeBookSection),
		str("Title", "title", &p.Title),
		creators(&p.Creators),
		str("AbstractNote", "abstractNote", &p.AbstractNote),
		str("BookTitle", "bookTitle", &p.BookTitle),
		str("Series", "series", &p.Series),
		str("SeriesNumber", "seriesNumber", &p.SeriesNumber),
		str("Volume", "volume", &p.Volume),
		str("NumberOfVolumes", "numberOfVolumes", &p.NumberOfVolumes),
		str("Edition", "edition", &p.Edition),
		str("Place", "place", &p.Place),
		str("Publisher", "publisher", &p.Publisher),
		str("Date", "date", &p.Date),
		str("Pages", "pages", &p.Pages),
		str("Language", "language", &p.Language),
		str("ISBN", "ISBN", &p.ISBN),
		str("ShortTitle", "shortTitle", &p.ShortTitle),
		str("URL", "url", &p.URL),
		str("AccessDate", "accessDate", &p.AccessDate),
		str("Archive", "archive", &p.Archive),
		str("ArchiveLocation", "archiveLocation", &p.ArchiveLocation),
		str("LibraryCatalog", "libraryCatalog", &p.LibraryCatalog),
		str("CallNumber", "callNumber", &p.CallNumber),
		str("Rights", "rights", &p.Rights),
		str("Extra", "extra", &p.Extra),
		str("CitationKey", "citationKey", &p.CitationKey),
	)
}

func (p *BookSection) Fields() []FieldPolicy {
	return policies(p.bind())
}

func (p *BookSection) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, p)
}

func (p BookSection) MarshalJSON() ([]byte, error) {
	return marshalRecord(&p)
}

func (p *BookSection) clone() *BookSection {
	result := *p
	result.ItemDataBase = p.ItemDataBase.clone()
	result.Contributors = p.Contributors.clone()
	return &result
}

func (p *BookSection) Clone() ItemData {
	return p.clone()
}

func init() {
	registerItemType(ItemTypeBookSection, func() ItemData { return NewBookSection() })
}

type BookSectionBuilder struct {
	record *BookSection
	sharedSetters[BookSectionBuilder]
	creatorSetters[BookSectionBuilder]
}

func NewBookSectionBuilder() *BookSectionBuilder {
	b := &BookSectionBuilder{record: NewBookSection()}
	b.sharedSetters = sharedSetters[BookSectionBuilder]{builder: b, base: &b.record.ItemDataBase}
	b.creatorSetters = creatorSetters[BookSectionBuilder]{builder: b, list: &b.record.Contributors}
	return b
}

func (b *BookSectionBuilder) Title(v string) *BookSectionBuilder {
	b.record.Title = v
	return b
}

func (b *BookSectionBuilder) AbstractNote(v string) *BookSectionBuilder {
	b.record.AbstractNote = v
	return b
}

func (b *BookSectionBuilder) BookTitle(v string) *BookSectionBuilder {
	b.record.BookTitle = v
	return b
}

func (b *BookSectionBuilder) Series(v string) *BookSectionBuilder {
	b.record.Series = v
	return b
}

func (b *BookSectionBuilder) SeriesNumber(v string) *BookSectionBuilder {
	b.record.SeriesNumber = v
	return b
}

func (b *BookSectionBuilder) Volume(v string) *BookSectionBuilder {
	b.record.Volume = v
	return b
}

func (b *BookSectionBuilder) NumberOfVolumes(v string) *BookSectionBuilder {
	b.record.NumberOfVolumes = v
	return b
}

func (b *BookSectionBuilder) Edition(v string) *BookSectionBuilder {
	b.record.Edition = v
	return b
}

func (b *BookSectionBuilder) Place(v string) *BookSectionBuilder {
	b.record.Place = v
	return b
}

func (b *BookSectionBuilder) Publisher(v string) *BookSectionBuilder {
	b.record.Publisher = v
	return b
}

func (b *BookSectionBuilder) Date(v string) *BookSectionBuilder {
	b.record.Date = v
	return b
}

func (b *BookSectionBuilder) Pages(v string) *BookSectionBuilder {
	b.record.Pages = v
	return b
}

func (b *BookSectionBuilder) Language(v string) *BookSectionBuilder {
	b.record.Language = v
	return b
}

func (b *BookSectionBuilder) ISBN(v string) *BookSectionBuilder {
	b.record.ISBN = v
	return b
}

func (b *BookSectionBuilder) ShortTitle(v string) *BookSectionBuilder {
	b.record.ShortTitle = v
	return b
}

func (b *BookSectionBuilder) URL(v string) *BookSectionBuilder {
	b.record.URL = v
	return b
}

func (b *BookSectionBuilder) AccessDate(v string) *BookSectionBuilder {
	b.record.AccessDate = v
	return b
}

func (b *BookSectionBuilder) Archive(v string) *BookSectionBuilder {
	b.record.Archive = v
	return b
}

func (b *BookSectionBuilder) ArchiveLocation(v string) *BookSectionBuilder {
	b.record.ArchiveLocation = v
	return b
}

func (b *BookSectionBuilder) LibraryCatalog(v string) *BookSectionBuilder {
	b.record.LibraryCatalog = v
	return b
}

func (b *BookSectionBuilder) CallNumber(v string) *BookSectionBuilder {
	b.record.CallNumber = v
	return b
}

func (b *BookSectionBuilder) Rights(v string) *BookSectionBuilder {
	b.record.Rights = v
	return b
}

func (b *BookSectionBuilder) Extra(v string) *BookSectionBuilder {
	b.record.Extra = v
	return b
}

func (b *BookSectionBuilder) CitationKey(v string) *BookSectionBuilder {
	b.record.CitationKey = v
	return b
}

func (b *BookSectionBuilder) Build() *BookSection {
	p := b.record.clone()
	normalize(p.bind())
	return p
}
