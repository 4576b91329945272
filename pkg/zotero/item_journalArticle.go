package zotero

const ItemTypeJournalArticle = "journalArticle"

type JournalArticle struct {
	ItemDataBase
	Contributors

	Title               string
	AbstractNote        string
	PublicationTitle    string
	Volume              string
	Issue               string
	Pages               string
	Date                string
	Series              string
	SeriesTitle         string
	SeriesText          string
	JournalAbbreviation string
	Language            string
	DOI                 string
	ISSN                string
	ShortTitle          string
	URL                 string
	AccessDate          string
	Archive             string
	ArchiveLocation     string
	LibraryCatalog      string
	CallNumber          string
	Rights              string
	Extra               string
	CitationKey         string
}

func NewJournalArticle() *JournalArticle {
	p := &JournalArticle{}
	normalize(p.bind())
	return p
}

func (p *JournalArticle) bind() []field {
	return p.fields(
		discriminant(&p.ItemType, ItemTypeJournalArticle),
		str("Title", "title", &p.Title),
		creators(&p.Creators),
		str("AbstractNote", "abstractNote", &p.AbstractNote),
		str("PublicationTitle", "publicationTitle", &p.PublicationTitle),
		str("Volume", "volume", &p.Volume),
		str("Issue", "issue", &p.Issue),
		str("Pages", "pages", &p.Pages),
		str("Date", "date", &p.Date),
		str("Series", "series", &p.Series),
		str("SeriesTitle", "seriesTitle", &p.SeriesTitle),
		str("SeriesText", "seriesText", &p.SeriesText),
		str("JournalAbbreviation", "journalAbbreviation", &p.JournalAbbreviation),
		str("Language", "language", &p.Language),
		str("DOI", "DOI", &p.DOI),
		str("ISSN", "ISSN", &p.ISSN),
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

func (p *JournalArticle) Fields() []FieldPolicy {
	return policies(p.bind())
}

func (p *JournalArticle) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, p)
}

func (p JournalArticle) MarshalJSON() ([]byte, error) {
	return marshalRecord(&p)
}

func (p *JournalArticle) clone() *JournalArticle {
	result := *p
	result.ItemDataBase = p.ItemDataBase.clone()
	result.Contributors = p.Contributors.clone()
	return &result
}

func (p *JournalArticle) Clone() ItemData {
	return p.clone()
}

func init() {
	registerItemType(ItemTypeJournalArticle, func() ItemData { return NewJournalArticle() })
}

type JournalArticleBuilder struct {
	record *JournalArticle
	sharedSetters[JournalArticleBuilder]
	creatorSetters[JournalArticleBuilder]
}

func NewJournalArticleBuilder() *JournalArticleBuilder {
	b := &JournalArticleBuilder{record: NewJournalArticle()}
	b.sharedSetters = sharedSetters[JournalArticleBuilder]{builder: b, base: &b.record.ItemDataBase}
	b.creatorSetters = creatorSetters[JournalArticleBuilder]{builder: b, list: &b.record.Contributors}
	return b
}

func (b *JournalArticleBuilder) Title(v string) *JournalArticleBuilder {
	b.record.Title = v
	return b
}

func (b *JournalArticleBuilder) AbstractNote(v string) *JournalArticleBuilder {
	b.record.AbstractNote = v
	return b
}

func (b *JournalArticleBuilder) PublicationTitle(v string) *JournalArticleBuilder {
	b.record.PublicationTitle = v
	return b
}

func (b *JournalArticleBuilder) Volume(v string) *JournalArticleBuilder {
	b.record.Volume = v
	return b
}

func (b *JournalArticleBuilder) Issue(v string) *JournalArticleBuilder {
	b.record.Issue = v
	return b
}

func (b *JournalArticleBuilder) Pages(v string) *JournalArticleBuilder {
	b.record.Pages = v
	return b
}

func (b *JournalArticleBuilder) Date(v string) *JournalArticleBuilder {
	b.record.Date = v
	return b
}

func (b *JournalArticleBuilder) Series(v string) *JournalArticleBuilder {
	b.record.Series = v
	return b
}

func (b *JournalArticleBuilder) SeriesTitle(v string) *JournalArticleBuilder {
	b.record.SeriesTitle = v
	return b
}

func (b *JournalArticleBuilder) SeriesText(v string) *JournalArticleBuilder {
	b.record.SeriesText = v
	return b
}

func (b *JournalArticleBuilder) JournalAbbreviation(v string) *JournalArticleBuilder {
	b.record.JournalAbbreviation = v
	return b
}

func (b *JournalArticleBuilder) Language(v string) *JournalArticleBuilder {
	b.record.Language = v
	return b
}

func (b *JournalArticleBuilder) DOI(v string) *JournalArticleBuilder {
	b.record.DOI = v
	return b
}

func (b *JournalArticleBuilder) ISSN(v string) *JournalArticleBuilder {
	b.record.ISSN = v
	return b
}

func (b *JournalArticleBuilder) ShortTitle(v string) *JournalArticleBuilder {
	b.record.ShortTitle = v
	return b
}

func (b *JournalArticleBuilder) URL(v string) *JournalArticleBuilder {
	b.record.URL = v
	return b
}

func (b *JournalArticleBuilder) AccessDate(v string) *JournalArticleBuilder {
	b.record.AccessDate = v
	return b
}

func (b *JournalArticleBuilder) Archive(v string) *JournalArticleBuilder {
	b.record.Archive = v
	return b
}

func (b *JournalArticleBuilder) ArchiveLocation(v string) *JournalArticleBuilder {
	b.record.ArchiveLocation = v
	return b
}

func (b *JournalArticleBuilder) LibraryCatalog(v string) *JournalArticleBuilder {
	b.record.LibraryCatalog = v
	return b
}

func (b *JournalArticleBuilder) CallNumber(v string) *JournalArticleBuilder {
	b.record.CallNumber = v
	return b
}

func (b *JournalArticleBuilder) Rights(v string) *JournalArticleBuilder {
	b.record.Rights = v
	return b
}

func (b *JournalArticleBuilder) Extra(v string) *JournalArticleBuilder {
	b.record.Extra = v
	return b
}

func (b *JournalArticleBuilder) CitationKey(v string) *JournalArticleBuilder {
	b.record.CitationKey = v
	return b
}

func (b *JournalArticleBuilder) Build() *JournalArticle {
	p := b.record.clone()
	normalize(p.bind())
	return p
}
