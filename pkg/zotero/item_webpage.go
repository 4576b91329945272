package zotero

const ItemTypeWebpage = "webpage"

// Webpage has no archive or catalog members.
type Webpage struct {
	ItemDataBase
	Contributors

	Title        string
	AbstractNote string
	WebsiteTitle string
	WebsiteType  string
	Date         string
	ShortTitle   string
	URL          string
	AccessDate   string
	Language     string
	Rights       string
	Extra        string
	CitationKey  string
}

func NewWebpage() *Webpage {
	p := &Webpage{}
	normalize(p.bind())
	return p
}

func (p *Webpage) bind() []field {
	return p.fields(
		discriminant(&p.ItemType, ItemTypeWebpage),
		str("Title", "title", &p.Title),
		creators(&p.Creators),
		str("AbstractNote", "abstractNote", &p.AbstractNote),
		str("WebsiteTitle", "websiteTitle", &p.WebsiteTitle),
		str("WebsiteType", "websiteType", &p.WebsiteType),
		str("Date", "date", &p.Date),
		str("ShortTitle", "shortTitle", &p.ShortTitle),
		str("URL", "url", &p.URL),
		str("AccessDate", "accessDate", &p.AccessDate),
		str("Language", "language", &p.Language),
		str("Rights", "rights", &p.Rights),
		str("Extra", "extra", &p.Extra),
		str("CitationKey", "citationKey", &p.CitationKey),
	)
}

func (p *Webpage) Fields() []FieldPolicy {
	return policies(p.bind())
}

func (p *Webpage) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, p)
}

func (p Webpage) MarshalJSON() ([]byte, error) {
	return marshalRecord(&p)
}

func (p *Webpage) clone() *Webpage {
	result := *p
	result.ItemDataBase = p.ItemDataBase.clone()
	result.Contributors = p.Contributors.clone()
	return &result
}

func (p *Webpage) Clone() ItemData {
	return p.clone()
}

func init() {
	registerItemType(ItemTypeWebpage, func() ItemData { return NewWebpage() })
}

type WebpageBuilder struct {
	record *Webpage
	sharedSetters[WebpageBuilder]
	creatorSetters[WebpageBuilder]
}

func NewWebpageBuilder() *WebpageBuilder {
	b := &WebpageBuilder{record: NewWebpage()}
	b.sharedSetters = sharedSetters[WebpageBuilder]{builder: b, base: &b.record.ItemDataBase}
	b.creatorSetters = creatorSetters[WebpageBuilder]{builder: b, list: &b.record.Contributors}
	return b
}

func (b *WebpageBuilder) Title(v string) *WebpageBuilder {
	b.record.Title = v
	return b
}

func (b *WebpageBuilder) AbstractNote(v string) *WebpageBuilder {
	b.record.AbstractNote = v
	return b
}

func (b *WebpageBuilder) WebsiteTitle(v string) *WebpageBuilder {
	b.record.WebsiteTitle = v
	return b
}

func (b *WebpageBuilder) WebsiteType(v string) *WebpageBuilder {
	b.record.WebsiteType = v
	return b
}

func (b *WebpageBuilder) Date(v string) *WebpageBuilder {
	b.record.Date = v
	return b
}

func (b *WebpageBuilder) ShortTitle(v string) *WebpageBuilder {
	b.record.ShortTitle = v
	return b
}

func (b *WebpageBuilder) URL(v string) *WebpageBuilder {
	b.record.URL = v
	return b
}

func (b *WebpageBuilder) AccessDate(v string) *WebpageBuilder {
	b.record.AccessDate = v
	return b
}

func (b *WebpageBuilder) Language(v string) *WebpageBuilder {
	b.record.Language = v
	return b
}

func (b *WebpageBuilder) Rights(v string) *WebpageBuilder {
	b.record.Rights = v
	return b
}

func (b *WebpageBuilder) Extra(v string) *WebpageBuilder {
	b.record.Extra = v
	return b
}

func (b *WebpageBuilder) CitationKey(v string) *WebpageBuilder {
	b.record.CitationKey = v
	return b
}

func (b *WebpageBuilder) Build() *Webpage {
	p := b.record.clone()
	normalize(p.bind())
	return p
}
