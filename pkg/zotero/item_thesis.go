package zotero

const ItemTypeThesis = "thesis"

// Thesis covers dissertations as well as master and bachelor theses; ThesisType tells them apart.
type Thesis struct {
	ItemDataBase
	Contributors

	Title           string
	AbstractNote    string
	ThesisType      string
	University      string
	Place           string
	Date            string
	NumPages        string
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

func NewThesis() *Thesis {
	p := &Thesis{}
	normalize(p.bind())
	return p
}

func (p *Thesis) bind() []field {
	return p.fields(
		discriminant(&p.ItemType, ItemTypeThesis),
		str("Title", "title", &p.Title),
		creators(&p.Creators),
		str("AbstractNote", "abstractNote", &p.AbstractNote),
		str("ThesisType", "thesisType", &p.ThesisType),
		str("University", "university", &p.University),
		str("Place", "place", &p.Place),
		str("Date", "date", &p.Date),
		str("NumPages", "numPages", &p.NumPages),
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

func (p *Thesis) Fields() []FieldPolicy {
	return policies(p.bind())
}

func (p *Thesis) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, p)
}

func (p Thesis) MarshalJSON() ([]byte, error) {
	return marshalRecord(&p)
}

func (p *Thesis) clone() *Thesis {
	result := *p
	result.ItemDataBase = p.ItemDataBase.clone()
	result.Contributors = p.Contributors.clone()
	return &result
}

func (p *Thesis) Clone() ItemData {
	return p.clone()
}

func init() {
	registerItemType(ItemTypeThesis, func() ItemData { return NewThesis() })
}

type ThesisBuilder struct {
	record *Thesis
	sharedSetters[ThesisBuilder]
	creatorSetters[ThesisBuilder]
}

func NewThesisBuilder() *ThesisBuilder {
	b := &ThesisBuilder{record: NewThesis()}
	b.sharedSetters = sharedSetters[ThesisBuilder]{builder: b, base: &b.record.ItemDataBase}
	b.creatorSetters = creatorSetters[ThesisBuilder]{builder: b, list: &b.record.Contributors}
	return b
}

func (b *ThesisBuilder) Title(v string) *ThesisBuilder {
	b.record.Title = v
	return b
}

func (b *ThesisBuilder) AbstractNote(v string) *ThesisBuilder {
	b.record.AbstractNote = v
	return b
}

func (b *ThesisBuilder) ThesisType(v string) *ThesisBuilder {
	b.record.ThesisType = v
	return b
}

func (b *ThesisBuilder) University(v string) *ThesisBuilder {
	b.record.University = v
	return b
}

func (b *ThesisBuilder) Place(v string) *ThesisBuilder {
	b.record.Place = v
	return b
}

func (b *ThesisBuilder) Date(v string) *ThesisBuilder {
	b.record.Date = v
	return b
}

func (b *ThesisBuilder) NumPages(v string) *ThesisBuilder {
	b.record.NumPages = v
	return b
}

func (b *ThesisBuilder) Language(v string) *ThesisBuilder {
	b.record.Language = v
	return b
}

func (b *ThesisBuilder) ShortTitle(v string) *ThesisBuilder {
	b.record.ShortTitle = v
	return b
}

func (b *ThesisBuilder) URL(v string) *ThesisBuilder {
	b.record.URL = v
	return b
}

func (b *ThesisBuilder) AccessDate(v string) *ThesisBuilder {
	b.record.AccessDate = v
	return b
}

func (b *ThesisBuilder) Archive(v string) *ThesisBuilder {
	b.record.Archive = v
	return b
}

func (b *ThesisBuilder) ArchiveLocation(v string) *ThesisBuilder {
	b.record.ArchiveLocation = v
	return b
}

func (b *ThesisBuilder) LibraryCatalog(v string) *ThesisBuilder {
	b.record.LibraryCatalog = v
	return b
}

func (b *ThesisBuilder) CallNumber(v string) *ThesisBuilder {
	b.record.CallNumber = v
	return b
}

func (b *ThesisBuilder) Rights(v string) *ThesisBuilder {
	b.record.Rights = v
	return b
}

func (b *ThesisBuilder) Extra(v string) *ThesisBuilder {
	b.record.Extra = v
	return b
}

func (b *ThesisBuilder) CitationKey(v string) *ThesisBuilder {
	b.record.CitationKey = v
	return b
}

func (b *ThesisBuilder) Build() *Thesis {
	p := b.record.clone()
	normalize(p.bind())
	return p
}
