package zotero

const ItemTypeConferencePaper = "conferencePaper"

type ConferencePaper struct {
	ItemDataBase
	Contributors

	Title            string
	AbstractNote     string
	Date             string
	ProceedingsTitle string
	ConferenceName   string
	Place            string
	Publisher        string
	Volume           string
	Pages            string
	Series           string
	Language         string
	DOI              string
	ISBN             string
	ShortTitle       string
	URL              string
	AccessDate       string
	Archive          string
	ArchiveLocation  string
	LibraryCatalog   string
	CallNumber       string
	Rights           string
	Extra            string
	CitationKey      string
}

func NewConferencePaper() *ConferencePaper {
	p := &ConferencePaper{}
	normalize(p.bind())
	return p
}

func (p *ConferencePaper) bind() []field {
	return p.fields(
		discriminant(&p.ItemType, ItemTypeConferencePaper),
		str("Title", "title", &p.Title),
		creators(&p.Creators),
		str("AbstractNote", "abstractNote", &p.AbstractNote),
		str("Date", "date", &p.Date),
		str("ProceedingsTitle", "proceedingsTitle", &p.ProceedingsTitle),
		str("ConferenceName", "conferenceName", &p.ConferenceName),
		str("Place", "place", &p.Place),
		str("Publisher", "publisher", &p.Publisher),
		str("Volume", "volume", &p.Volume),
		str("Pages", "pages", &p.Pages),
		str("Series", "series", &p.Series),
		str("Language", "language", &p.Language),
		str("DOI", "DOI", &p.DOI),
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

func (p *ConferencePaper) Fields() []FieldPolicy {
	return policies(p.bind())
}

func (p *ConferencePaper) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, p)
}

func (p ConferencePaper) MarshalJSON() ([]byte, error) {
	return marshalRecord(&p)
}

func (p *ConferencePaper) clone() *ConferencePaper {
	result := *p
	result.ItemDataBase = p.ItemDataBase.clone()
	result.Contributors = p.Contributors.clone()
	return &result
}

func (p *ConferencePaper) Clone() ItemData {
	return p.clone()
}

func init() {
	registerItemType(ItemTypeConferencePaper, func() ItemData { return NewConferencePaper() })
}

type ConferencePaperBuilder struct {
	record *ConferencePaper
	sharedSetters[ConferencePaperBuilder]
	creatorSetters[ConferencePaperBuilder]
}

func NewConferencePaperBuilder() *ConferencePaperBuilder {
	b := &ConferencePaperBuilder{record: NewConferencePaper()}
	b.sharedSetters = sharedSetters[ConferencePaperBuilder]{builder: b, base: &b.record.ItemDataBase}
	b.creatorSetters = creatorSetters[ConferencePaperBuilder]{builder: b, list: &b.record.Contributors}
	return b
}

func (b *ConferencePaperBuilder) Title(v string) *ConferencePaperBuilder {
	b.record.Title = v
	return b
}

func (b *ConferencePaperBuilder) AbstractNote(v string) *ConferencePaperBuilder {
	b.record.AbstractNote = v
	return b
}

func (b *ConferencePaperBuilder) Date(v string) *ConferencePaperBuilder {
	b.record.Date = v
	return b
}

func (b *ConferencePaperBuilder) ProceedingsTitle(v string) *ConferencePaperBuilder {
	b.record.ProceedingsTitle = v
	return b
}

func (b *ConferencePaperBuilder) ConferenceName(v string) *ConferencePaperBuilder {
	b.record.ConferenceName = v
	return b
}

func (b *ConferencePaperBuilder) Place(v string) *ConferencePaperBuilder {
	b.record.Place = v
	return b
}

func (b *ConferencePaperBuilder) Publisher(v string) *ConferencePaperBuilder {
	b.record.Publisher = v
	return b
}

func (b *ConferencePaperBuilder) Volume(v string) *ConferencePaperBuilder {
	b.record.Volume = v
	return b
}

func (b *ConferencePaperBuilder) Pages(v string) *ConferencePaperBuilder {
	b.record.Pages = v
	return b
}

func (b *ConferencePaperBuilder) Series(v string) *ConferencePaperBuilder {
	b.record.Series = v
	return b
}

func (b *ConferencePaperBuilder) Language(v string) *ConferencePaperBuilder {
	b.record.Language = v
	return b
}

func (b *ConferencePaperBuilder) DOI(v string) *ConferencePaperBuilder {
	b.record.DOI = v
	return b
}

func (b *ConferencePaperBuilder) ISBN(v string) *ConferencePaperBuilder {
	b.record.ISBN = v
	return b
}

func (b *ConferencePaperBuilder) ShortTitle(v string) *ConferencePaperBuilder {
	b.record.ShortTitle = v
	return b
}

func (b *ConferencePaperBuilder) URL(v string) *ConferencePaperBuilder {
	b.record.URL = v
	return b
}

func (b *ConferencePaperBuilder) AccessDate(v string) *ConferencePaperBuilder {
	b.record.AccessDate = v
	return b
}

func (b *ConferencePaperBuilder) Archive(v string) *ConferencePaperBuilder {
	b.record.Archive = v
	return b
}

func (b *ConferencePaperBuilder) ArchiveLocation(v string) *ConferencePaperBuilder {
	b.record.ArchiveLocation = v
	return b
}

func (b *ConferencePaperBuilder) LibraryCatalog(v string) *ConferencePaperBuilder {
	b.record.LibraryCatalog = v
	return b
}

func (b *ConferencePaperBuilder) CallNumber(v string) *ConferencePaperBuilder {
	b.record.CallNumber = v
	return b
}

func (b *ConferencePaperBuilder) Rights(v string) *ConferencePaperBuilder {
	b.record.Rights = v
	return b
}

func (b *ConferencePaperBuilder) Extra(v string) *ConferencePaperBuilder {
	b.record.Extra = v
	return b
}

func (b *ConferencePaperBuilder) CitationKey(v string) *ConferencePaperBuilder {
	b.record.CitationKey = v
	return b
}

func (b *ConferencePaperBuilder) Build() *ConferencePaper {
	p := b.record.clone()
	normalize(p.bind())
	return p
}
