package zotero

const ItemTypePreprint = "preprint"

// Preprint is the data of a preprint (arXiv, SSRN, ...).
type Preprint struct {
	ItemDataBase
	Contributors

	Title           string
	AbstractNote    string
	Genre           string
	Repository      string
	ArchiveID       string
	Place           string
	Date            string
	Series          string
	SeriesNumber    string
	DOI             string
	CitationKey     string
	URL             string
	AccessDate      string
	Archive         string
	ArchiveLocation string
	ShortTitle      string
	Language        string
	LibraryCatalog  string
	CallNumber      string
	Rights          string
	Extra           string
}

func NewPreprint() *Preprint {
	p := &Preprint{}
	normalize(p.bind())
	return p
}

func (p *Preprint) bind() []field {
	return p.fields(
		discriminant(&p.ItemType, ItemTypePreprint),
		str("Title", "title", &p.Title),
		creators(&p.Creators),
		str("AbstractNote", "abstractNote", &p.AbstractNote),
		str("Genre", "genre", &p.Genre),
		str("Repository", "repository", &p.Repository),
		str("ArchiveID", "archiveID", &p.ArchiveID),
		str("Place", "place", &p.Place),
		str("Date", "date", &p.Date),
		str("Series", "series", &p.Series),
		str("SeriesNumber", "seriesNumber", &p.SeriesNumber),
		str("DOI", "DOI", &p.DOI),
		str("CitationKey", "citationKey", &p.CitationKey),
		str("URL", "url", &p.URL),
		str("AccessDate", "accessDate", &p.AccessDate),
		str("Archive", "archive", &p.Archive),
		str("ArchiveLocation", "archiveLocation", &p.ArchiveLocation),
		str("ShortTitle", "shortTitle", &p.ShortTitle),
		str("Language", "language", &p.Language),
		str("LibraryCatalog", "libraryCatalog", &p.LibraryCatalog),
		str("CallNumber", "callNumber", &p.CallNumber),
		str("Rights", "rights", &p.Rights),
		str("Extra", "extra", &p.Extra),
	)
}

func (p *Preprint) Fields() []FieldPolicy {
	return policies(p.bind())
}

func (p *Preprint) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, p)
}

func (p Preprint) MarshalJSON() ([]byte, error) {
	return marshalRecord(&p)
}

func (p *Preprint) clone() *Preprint {
	result := *p
	result.ItemDataBase = p.ItemDataBase.clone()
	result.Contributors = p.Contributors.clone()
	return &result
}

func (p *Preprint) Clone() ItemData {
	return p.clone()
}

func init() {
	registerItemType(ItemTypePreprint, func() ItemData { return NewPreprint() })
}

type PreprintBuilder struct {
	record *Preprint
	sharedSetters[PreprintBuilder]
	creatorSetters[PreprintBuilder]
}

func NewPreprintBuilder() *PreprintBuilder {
	b := &PreprintBuilder{record: NewPreprint()}
	b.sharedSetters = sharedSetters[PreprintBuilder]{builder: b, base: &b.record.ItemDataBase}
	b.creatorSetters = creatorSetters[PreprintBuilder]{builder: b, list: &b.record.Contributors}
	return b
}

func (b *PreprintBuilder) Title(v string) *PreprintBuilder {
	b.record.Title = v
	return b
}

func (b *PreprintBuilder) AbstractNote(v string) *PreprintBuilder {
	b.record.AbstractNote = v
	return b
}

func (b *PreprintBuilder) Genre(v string) *PreprintBuilder {
	b.record.Genre = v
	return b
}

func (b *PreprintBuilder) Repository(v string) *PreprintBuilder {
	b.record.Repository = v
	return b
}

func (b *PreprintBuilder) ArchiveID(v string) *PreprintBuilder {
	b.record.ArchiveID = v
	return b
}

func (b *PreprintBuilder) Place(v string) *PreprintBuilder {
	b.record.Place = v
	return b
}

func (b *PreprintBuilder) Date(v string) *PreprintBuilder {
	b.record.Date = v
	return b
}

func (b *PreprintBuilder) Series(v string) *PreprintBuilder {
	b.record.Series = v
	return b
}

func (b *PreprintBuilder) SeriesNumber(v string) *PreprintBuilder {
	b.record.SeriesNumber = v
	return b
}

func (b *PreprintBuilder) DOI(v string) *PreprintBuilder {
	b.record.DOI = v
	return b
}

func (b *PreprintBuilder) CitationKey(v string) *PreprintBuilder {
	b.record.CitationKey = v
	return b
}

func (b *PreprintBuilder) URL(v string) *PreprintBuilder {
	b.record.URL = v
	return b
}

func (b *PreprintBuilder) AccessDate(v string) *PreprintBuilder {
	b.record.AccessDate = v
	return b
}

func (b *PreprintBuilder) Archive(v string) *PreprintBuilder {
	b.record.Archive = v
	return b
}

func (b *PreprintBuilder) ArchiveLocation(v string) *PreprintBuilder {
	b.record.ArchiveLocation = v
	return b
}

func (b *PreprintBuilder) ShortTitle(v string) *PreprintBuilder {
	b.record.ShortTitle = v
	return b
}

func (b *PreprintBuilder) Language(v string) *PreprintBuilder {
	b.record.Language = v
	return b
}

func (b *PreprintBuilder) LibraryCatalog(v string) *PreprintBuilder {
	b.record.LibraryCatalog = v
	return b
}

func (b *PreprintBuilder) CallNumber(v string) *PreprintBuilder {
	b.record.CallNumber = v
	return b
}

func (b *PreprintBuilder) Rights(v string) *PreprintBuilder {
	b.record.Rights = v
	return b
}

func (b *PreprintBuilder) Extra(v string) *PreprintBuilder {
	b.record.Extra = v
	return b
}

// Build returns a copy of the staged record with defaults applied. The builder stays usable.
func (b *PreprintBuilder) Build() *Preprint {
	p := b.record.clone()
	normalize(p.bind())
	return p
}
