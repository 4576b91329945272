package zotero

const ItemTypeComputerProgram = "computerProgram"

// ComputerProgram is software; zotero uses "programmer" as its primary creator type.
type ComputerProgram struct {
	ItemDataBase
	Contributors

	Title               string
	AbstractNote        string
	SeriesTitle         string
	VersionNumber       string
	Date                string
	System              string
	Place               string
	Company             string
	ProgrammingLanguage string
	ISBN                string
	ShortTitle          string
	URL                 string
	Rights              string
	Archive             string
	ArchiveLocation     string
	LibraryCatalog      string
	CallNumber          string
	AccessDate          string
	Extra               string
	CitationKey         string
}

func NewComputerProgram() *ComputerProgram {
	p := &ComputerProgram{}
	normalize(p.bind())
	return p
}

func (p *ComputerProgram) bind() []field {
	return p.fields(
		discriminant(&p.ItemType, ItemTypeComputerProgram),
		str("Title", "title", &p.Title),
		creators(&p.Creators),
		str("AbstractNote", "abstractNote", &p.AbstractNote),
		str("SeriesTitle", "seriesTitle", &p.SeriesTitle),
		str("VersionNumber", "versionNumber", &p.VersionNumber),
		str("Date", "date", &p.Date),
		str("System", "system", &p.System),
		str("Place", "place", &p.Place),
		str("Company", "company", &p.Company),
		str("ProgrammingLanguage", "programmingLanguage", &p.ProgrammingLanguage),
		str("ISBN", "ISBN", &p.ISBN),
		str("ShortTitle", "shortTitle", &p.ShortTitle),
		str("URL", "url", &p.URL),
		str("Rights", "rights", &p.Rights),
		str("Archive", "archive", &p.Archive),
		str("ArchiveLocation", "archiveLocation", &p.ArchiveLocation),
		str("LibraryCatalog", "libraryCatalog", &p.LibraryCatalog),
		str("CallNumber", "callNumber", &p.CallNumber),
		str("AccessDate", "accessDate", &p.AccessDate),
		str("Extra", "extra", &p.Extra),
		str("CitationKey", "citationKey", &p.CitationKey),
	)
}

func (p *ComputerProgram) Fields() []FieldPolicy {
	return policies(p.bind())
}

func (p *ComputerProgram) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, p)
}

func (p ComputerProgram) MarshalJSON() ([]byte, error) {
	return marshalRecord(&p)
}

func (p *ComputerProgram) clone() *ComputerProgram {
	result := *p
	result.ItemDataBase = p.ItemDataBase.clone()
	result.Contributors = p.Contributors.clone()
	return &result
}

func (p *ComputerProgram) Clone() ItemData {
	return p.clone()
}

func init() {
	registerItemType(ItemTypeComputerProgram, func() ItemData { return NewComputerProgram() })
}

type ComputerProgramBuilder struct {
	record *ComputerProgram
	sharedSetters[ComputerProgramBuilder]
	creatorSetters[ComputerProgramBuilder]
}

func NewComputerProgramBuilder() *ComputerProgramBuilder {
	b := &ComputerProgramBuilder{record: NewComputerProgram()}
	b.sharedSetters = sharedSetters[ComputerProgramBuilder]{builder: b, base: &b.record.ItemDataBase}
	b.creatorSetters = creatorSetters[ComputerProgramBuilder]{builder: b, list: &b.record.Contributors}
	return b
}

func (b *ComputerProgramBuilder) Title(v string) *ComputerProgramBuilder {
	b.record.Title = v
	return b
}

func (b *ComputerProgramBuilder) AbstractNote(v string) *ComputerProgramBuilder {
	b.record.AbstractNote = v
	return b
}

func (b *ComputerProgramBuilder) SeriesTitle(v string) *ComputerProgramBuilder {
	b.record.SeriesTitle = v
	return b
}

func (b *ComputerProgramBuilder) VersionNumber(v string) *ComputerProgramBuilder {
	b.record.VersionNumber = v
	return b
}

func (b *ComputerProgramBuilder) Date(v string) *ComputerProgramBuilder {
	b.record.Date = v
	return b
}

func (b *ComputerProgramBuilder) System(v string) *ComputerProgramBuilder {
	b.record.System = v
	return b
}

func (b *ComputerProgramBuilder) Place(v string) *ComputerProgramBuilder {
	b.record.Place = v
	return b
}

func (b *ComputerProgramBuilder) Company(v string) *ComputerProgramBuilder {
	b.record.Company = v
	return b
}

func (b *ComputerProgramBuilder) ProgrammingLanguage(v string) *ComputerProgramBuilder {
	b.record.ProgrammingLanguage = v
	return b
}

func (b *ComputerProgramBuilder) ISBN(v string) *ComputerProgramBuilder {
	b.record.ISBN = v
	return b
}

func (b *ComputerProgramBuilder) ShortTitle(v string) *ComputerProgramBuilder {
	b.record.ShortTitle = v
	return b
}

func (b *ComputerProgramBuilder) URL(v string) *ComputerProgramBuilder {
	b.record.URL = v
	return b
}

func (b *ComputerProgramBuilder) Rights(v string) *ComputerProgramBuilder {
	b.record.Rights = v
	return b
}

func (b *ComputerProgramBuilder) Archive(v string) *ComputerProgramBuilder {
	b.record.Archive = v
	return b
}

func (b *ComputerProgramBuilder) ArchiveLocation(v string) *ComputerProgramBuilder {
	b.record.ArchiveLocation = v
	return b
}

func (b *ComputerProgramBuilder) LibraryCatalog(v string) *ComputerProgramBuilder {
	b.record.LibraryCatalog = v
	return b
}

func (b *ComputerProgramBuilder) CallNumber(v string) *ComputerProgramBuilder {
	b.record.CallNumber = v
	return b
}

func (b *ComputerProgramBuilder) AccessDate(v string) *ComputerProgramBuilder {
	b.record.AccessDate = v
	return b
}

func (b *ComputerProgramBuilder) Extra(v string) *ComputerProgramBuilder {
	b.record.Extra = v
	return b
}

func (b *ComputerProgramBuilder) CitationKey(v string) *ComputerProgramBuilder {
	b.record.CitationKey = v
	return b
}

func (b *ComputerProgramBuilder) Build() *ComputerProgram {
	p := b.record.clone()
	normalize(p.bind())
	return p
}
