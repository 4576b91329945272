package zotero

const ItemTypeDocument = "document"

// Document is the catch-all type for material that fits nowhere else.
type Document struct {
	ItemDataBase
	Contributors

	Title           string
	AbstractNote    string
	Publisher       string
	Date            string
	Language        string
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

func NewDocument() *Document {
	p := &Document{}
	normalize(p.bind())
	return p
}

func (p *Document) bind() []field {
	return p.fields(
		discriminant(&p.ItemType, ItemTypeDocument),
		str("Title", "title", &p.Title),
		creators(&p.Creators),
		str("AbstractNote", "abstractNote", &p.AbstractNote),
		str("Publisher", "publisher", &p.Publisher),
		str("Date", "date", &p.Date),
		str("Language", "language", &p.Language),
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

func (p *Document) Fields() []FieldPolicy {
	return policies(p.bind())
}

func (p *Document) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, p)
}

func (p Document) MarshalJSON() ([]byte, error) {
	return marshalRecord(&p)
}

func (p *Document) clone() *Document {
	result := *p
	result.ItemDataBase = p.ItemDataBase.clone()
	result.Contributors = p.Contributors.clone()
	return &result
}

func (p *Document) Clone() ItemData {
	return p.clone()
}

func init() {
	registerItemType(ItemTypeDocument, func() ItemData { return NewDocument() })
}

type DocumentBuilder struct {
	record *Document
	sharedSetters[DocumentBuilder]
	creatorSetters[DocumentBuilder]
}

func NewDocumentBuilder() *DocumentBuilder {
	b := &DocumentBuilder{record: NewDocument()}
	b.sharedSetters = sharedSetters[DocumentBuilder]{builder: b, base: &b.record.ItemDataBase}
	b.creatorSetters = creatorSetters[DocumentBuilder]{builder: b, list: &b.record.Contributors}
	return b
}

func (b *DocumentBuilder) Title(v string) *DocumentBuilder {
	b.record.Title = v
	return b
}

func (b *DocumentBuilder) AbstractNote(v string) *DocumentBuilder {
	b.record.AbstractNote = v
	return b
}

func (b *DocumentBuilder) Publisher(v string) *DocumentBuilder {
	b.record.Publisher = v
	return b
}

func (b *DocumentBuilder) Date(v string) *DocumentBuilder {
	b.record.Date = v
	return b
}

func (b *DocumentBuilder) Language(v string) *DocumentBuilder {
	b.record.Language = v
	return b
}

func (b *DocumentBuilder) ShortTitle(v string) *DocumentBuilder {
	b.record.ShortTitle = v
	return b
}

func (b *DocumentBuilder) URL(v string) *DocumentBuilder {
	b.record.URL = v
	return b
}

func (b *DocumentBuilder) AccessDate(v string) *DocumentBuilder {
	b.record.AccessDate = v
	return b
}

func (b *DocumentBuilder) Archive(v string) *DocumentBuilder {
	b.record.Archive = v
	return b
}

func (b *DocumentBuilder) ArchiveLocation(v string) *DocumentBuilder {
	b.record.ArchiveLocation = v
	return b
}

func (b *DocumentBuilder) LibraryCatalog(v string) *DocumentBuilder {
	b.record.LibraryCatalog = v
	return b
}

func (b *DocumentBuilder) CallNumber(v string) *DocumentBuilder {
	b.record.CallNumber = v
	return b
}

func (b *DocumentBuilder) Rights(v string) *DocumentBuilder {
	b.record.Rights = v
	return b
}

func (b *DocumentBuilder) Extra(v string) *DocumentBuilder {
	b.record.Extra = v
	return b
}

func (b *DocumentBuilder) CitationKey(v string) *DocumentBuilder {
	b.record.CitationKey = v
	return b
}

func (b *DocumentBuilder) Build() *Document {
	p := b.record.clone()
	normalize(p.bind())
	return p
}
