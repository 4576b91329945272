package zotero

const ItemTypeAttachment = "attachment"

// Attachment describes a file or link below a parent item. MD5 and Mtime are only set for
// stored files.
type Attachment struct {
	ItemDataBase
	ParentRef

	LinkMode    string
	Title       string
	AccessDate  string
	URL         string
	Note        string
	ContentType string
	Charset     string
	Filename    string
	MD5         string
	Mtime       int64
}

func NewAttachment() *Attachment {
	p := &Attachment{}
	normalize(p.bind())
	return p
}

func (p *Attachment) bind() []field {
	fs := p.fields(
		discriminant(&p.ItemType, ItemTypeAttachment),
		parent(&p.ParentItem),
		str("LinkMode", "linkMode", &p.LinkMode),
		str("Title", "title", &p.Title),
		str("AccessDate", "accessDate", &p.AccessDate),
		str("URL", "url", &p.URL),
		str("Note", "note", &p.Note),
		str("ContentType", "contentType", &p.ContentType),
		str("Charset", "charset", &p.Charset),
		str("Filename", "filename", &p.Filename),
		str("MD5", "md5", &p.MD5),
		field{FieldPolicy{Name: "Mtime", Wire: "mtime", Presence: OmitIfEmpty}, intValue[int64]{&p.Mtime}},
	)
	return withPresence(fs, "collections", OmitIfEmpty)
}

func (p *Attachment) Fields() []FieldPolicy {
	return policies(p.bind())
}

func (p *Attachment) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, p)
}

func (p Attachment) MarshalJSON() ([]byte, error) {
	return marshalRecord(&p)
}

func (p *Attachment) clone() *Attachment {
	result := *p
	result.ItemDataBase = p.ItemDataBase.clone()
	return &result
}

func (p *Attachment) Clone() ItemData {
	return p.clone()
}

func init() {
	registerItemType(ItemTypeAttachment, func() ItemData { return NewAttachment() })
}

type AttachmentBuilder struct {
	record *Attachment
	sharedSetters[AttachmentBuilder]
	parentSetters[AttachmentBuilder]
}

func NewAttachmentBuilder() *AttachmentBuilder {
	b := &AttachmentBuilder{record: NewAttachment()}
	b.sharedSetters = sharedSetters[AttachmentBuilder]{builder: b, base: &b.record.ItemDataBase}
	b.parentSetters = parentSetters[AttachmentBuilder]{builder: b, ref: &b.record.ParentRef}
	return b
}

func (b *AttachmentBuilder) LinkMode(v string) *AttachmentBuilder {
	b.record.LinkMode = v
	return b
}

func (b *AttachmentBuilder) Title(v string) *AttachmentBuilder {
	b.record.Title = v
	return b
}

func (b *AttachmentBuilder) AccessDate(v string) *AttachmentBuilder {
	b.record.AccessDate = v
	return b
}

func (b *AttachmentBuilder) URL(v string) *AttachmentBuilder {
	b.record.URL = v
	return b
}

func (b *AttachmentBuilder) Note(v string) *AttachmentBuilder {
	b.record.Note = v
	return b
}

func (b *AttachmentBuilder) ContentType(v string) *AttachmentBuilder {
	b.record.ContentType = v
	return b
}

func (b *AttachmentBuilder) Charset(v string) *AttachmentBuilder {
	b.record.Charset = v
	return b
}

func (b *AttachmentBuilder) Filename(v string) *AttachmentBuilder {
	b.record.Filename = v
	return b
}

func (b *AttachmentBuilder) MD5(v string) *AttachmentBuilder {
	b.record.MD5 = v
	return b
}

func (b *AttachmentBuilder) Mtime(v int64) *AttachmentBuilder {
	b.record.Mtime = v
	return b
}

func (b *AttachmentBuilder) Build() *Attachment {
	p := b.record.clone()
	normalize(p.bind())
	return p
}
