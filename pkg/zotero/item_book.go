package zotero

const ItemTypeBook = "book"

type Book struct {
	ItemDataBase
	Contributors

	Title           string
	AbstractNote    string
	Series          string
	SeriesNumber    string
	Volume          string
	NumberOfVolumes string
	Edition         string
	Place           string
	Publisher       string
	Date            string
	NumPages        string
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

func NewBook() *Book {
	p := &Book{}
	normalize(p.bind())
	return p
}

func (p *Book) bind() []field {
	return p.fields(
		discriminant(&p.ItemType, ItemTypeBook),
		str("Title", "title", &p.Title),
		creators(&p.Creators),
		str("AbstractNote", "abstractNote", &p.AbstractNote),
		str("Series", "series", &p.Series),
		str("SeriesNumber", "seriesNumber", &p.SeriesNumber),
		str("Volume", "volume", &p.Volume),
		str("NumberOfVolumes", "numberOfVolumes", &p.NumberOfVolumes),
		str("Edition", "edition", &p.Edition),
		str("Place", "place", &p.Place),
		str("Publisher", "publisher", &p.Publisher),
		str("Date", "date", &p.Date),
		str("NumPages", "numPages", &p.NumPages),
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

func (p *Book) Fields() []FieldPolicy {
	return policies(p.bind())
}

func (p *Book) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, p)
}

func (p Book) MarshalJSON() ([]byte, error) {
	return marshalRecord(&p)
}

func (p *Book) clone() *Book {
	result := *p
	result.ItemDataBase = p.ItemDataBase.clone()
	result.Contributors = p.Contributors.clone()
	return &result
}

func (p *Book) Clone() ItemData {
	return p.clone()
}

func init() {
	registerItemType(ItemTypeBook, func() ItemData { return NewBook() })
}

type BookBuilder struct {
	record *Book
	sharedSetters[BookBuilder]
	creatorSetters[BookBuilder]
}

func NewBookBuilder() *BookBuilder {
	b := &BookBuilder{record: NewBook()}
	b.sharedSetters = sharedSetters[BookBuilder]{builder: b, base: &b.record.ItemDataBase}
	b.creatorSetters = creatorSetters[BookBuilder]{builder: b, list: &b.record.Contributors}
	return b
}

func (b *BookBuilder) Title(v string) *BookBuilder {
	b.record.Title = v
	return b
}

func (b *BookBuilder) AbstractNote(v string) *BookBuilder {
	b.record.AbstractNote = v
	return b
}

func (b *BookBuilder) Series(v string) *BookBuilder {
	b.record.Series = v
	return b
}

func (b *BookBuilder) SeriesNumber(v string) *BookBuilder {
	b.record.SeriesNumber = v
	return b
}

func (b *BookBuilder) Volume(v string) *BookBuilder {
	b.record.Volume = v
	return b
}

func (b *BookBuilder) NumberOfVolumes(v string) *BookBuilder {
	b.record.NumberOfVolumes = v
	return b
}

func (b *BookBuilder) Edition(v string) *BookBuilder {
	b.record.Edition = v
	return b
}

func (b *BookBuilder) Place(v string) *BookBuilder {
	b.record.Place = v
	return b
}

func (b *BookBuilder) Publisher(v string) *BookBuilder {
	b.record.Publisher = v
	return b
}

func (b *BookBuilder) Date(v string) *BookBuilder {
	b.record.Date = v
	return b
}

func (b *BookBuilder) NumPages(v string) *BookBuilder {
	b.record.NumPages = v
	return b
}

func (b *BookBuilder) Language(v string) *BookBuilder {
	b.record.Language = v
	return b
}

func (b *BookBuilder) ISBN(v string) *BookBuilder {
	b.record.ISBN = v
	return b
}

func (b *BookBuilder) ShortTitle(v string) *BookBuilder {
	b.record.ShortTitle = v
	return b
}

func (b *BookBuilder) URL(v string) *BookBuilder {
	b.record.URL = v
	return b
}

func (b *BookBuilder) AccessDate(v string) *BookBuilder {
	b.record.AccessDate = v
	return b
}

func (b *BookBuilder) Archive(v string) *BookBuilder {
	b.record.Archive = v
	return b
}

func (b *BookBuilder) ArchiveLocation(v string) *BookBuilder {
	b.record.ArchiveLocation = v
	return b
}

func (b *BookBuilder) LibraryCatalog(v string) *BookBuilder {
	b.record.LibraryCatalog = v
	return b
}

func (b *BookBuilder) CallNumber(v string) *BookBuilder {
	b.record.CallNumber = v
	return b
}

func (b *BookBuilder) Rights(v string) *BookBuilder {
	b.record.Rights = v
	return b
}

func (b *BookBuilder) Extra(v string) *BookBuilder {
	b.record.Extra = v
	return b
}

func (b *BookBuilder) CitationKey(v string) *BookBuilder {
	b.record.CitationKey = v
	return b
}

func (b *BookBuilder) Build() *Book {
	p := b.record.clone()
	normalize(p.bind())
	return p
}
