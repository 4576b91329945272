package zotero

const ItemTypeReport = "report"

type Report struct {
	ItemDataBase
	Contributors

	Title           string
	AbstractNote    string
	ReportNumber    string
	ReportType      string
	SeriesTitle     string
	Place           string
	Institution     string
	Date            string
	Pages           string
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

func NewReport() *Report {
	p := &Report{}
	normalize(p.bind())
	return p
}

func (p *Report) bind() []field {
	return p.fields(
		discriminant(&p.ItemType, ItemTypeReport),
		str("Title", "title", &p.Title),
		creators(&p.Creators),
		str("AbstractNote", "abstractNote", &p.AbstractNote),
		str("ReportNumber", "reportNumber", &p.ReportNumber),
		str("ReportType", "reportType", &p.ReportType),
		str("SeriesTitle", "seriesTitle", &p.SeriesTitle),
		str("Place", "place", &p.Place),
		str("Institution", "institution", &p.Institution),
		str("Date", "date", &p.Date),
		str("Pages", "pages", &p.Pages),
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

func (p *Report) Fields() []FieldPolicy {
	return policies(p.bind())
}

func (p *Report) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, p)
}

func (p Report) MarshalJSON() ([]byte, error) {
	return marshalRecord(&p)
}

func (p *Report) clone() *Report {
	result := *p
	result.ItemDataBase = p.ItemDataBase.clone()
	result.Contributors = p.Contributors.clone()
	return &result
}

func (p *Report) Clone() ItemData {
	return p.clone()
}

func init() {
	registerItemType(ItemTypeReport, func() ItemData { return NewReport() })
}

type ReportBuilder struct {
	record *Report
	sharedSetters[ReportBuilder]
	creatorSetters[ReportBuilder]
}

func NewReportBuilder() *ReportBuilder {
	b := &ReportBuilder{record: NewReport()}
	b.sharedSetters = sharedSetters[ReportBuilder]{builder: b, base: &b.record.ItemDataBase}
	b.creatorSetters = creatorSetters[ReportBuilder]{builder: b, list: &b.record.Contributors}
	return b
}

func (b *ReportBuilder) Title(v string) *ReportBuilder {
	b.record.Title = v
	return b
}

func (b *ReportBuilder) AbstractNote(v string) *ReportBuilder {
	b.record.AbstractNote = v
	return b
}

func (b *ReportBuilder) ReportNumber(v string) *ReportBuilder {
	b.record.ReportNumber = v
	return b
}

func (b *ReportBuilder) ReportType(v string) *ReportBuilder {
	b.record.ReportType = v
	return b
}

func (b *ReportBuilder) SeriesTitle(v string) *ReportBuilder {
	b.record.SeriesTitle = v
	return b
}

func (b *ReportBuilder) Place(v string) *ReportBuilder {
	b.record.Place = v
	return b
}

func (b *ReportBuilder) Institution(v string) *ReportBuilder {
	b.record.Institution = v
	return b
}

func (b *ReportBuilder) Date(v string) *ReportBuilder {
	b.record.Date = v
	return b
}

func (b *ReportBuilder) Pages(v string) *ReportBuilder {
	b.record.Pages = v
	return b
}

func (b *ReportBuilder) Language(v string) *ReportBuilder {
	b.record.Language = v
	return b
}

func (b *ReportBuilder) ShortTitle(v string) *ReportBuilder {
	b.record.ShortTitle = v
	return b
}

func (b *ReportBuilder) URL(v string) *ReportBuilder {
	b.record.URL = v
	return b
}

func (b *ReportBuilder) AccessDate(v string) *ReportBuilder {
	b.record.AccessDate = v
	return b
}

func (b *ReportBuilder) Archive(v string) *ReportBuilder {
	b.record.Archive = v
	return b
}

func (b *ReportBuilder) ArchiveLocation(v string) *ReportBuilder {
	b.record.ArchiveLocation = v
	return b
}

func (b *ReportBuilder) LibraryCatalog(v string) *ReportBuilder {
	b.record.LibraryCatalog = v
	return b
}

func (b *ReportBuilder) CallNumber(v string) *ReportBuilder {
	b.record.CallNumber = v
	return b
}

func (b *ReportBuilder) Rights(v string) *ReportBuilder {
	b.record.Rights = v
	return b
}

func (b *ReportBuilder) Extra(v string) *ReportBuilder {
	b.record.Extra = v
	return b
}

func (b *ReportBuilder) CitationKey(v string) *ReportBuilder {
	b.record.CitationKey = v
	return b
}

func (b *ReportBuilder) Build() *Report {
	p := b.record.clone()
	normalize(p.bind())
	return p
}
