package zotero

const ItemTypeNote = "note"

// Note is a standalone or child note. The body is HTML.
type Note struct {
	ItemDataBase
	ParentRef

	Note string
}

func NewNote() *Note {
	p := &Note{}
	normalize(p.bind())
	return p
}

func (p *Note) bind() []field {
	fs := p.fields(
		discriminant(&p.ItemType, ItemTypeNote),
		parent(&p.ParentItem),
		str("Note", "note", &p.Note),
	)
	return withPresence(fs, "collections", OmitIfEmpty)
}

func (p *Note) Fields() []FieldPolicy {
	return policies(p.bind())
}

func (p *Note) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, p)
}

func (p Note) MarshalJSON() ([]byte, error) {
	return marshalRecord(&p)
}

func (p *Note) clone() *Note {
	result := *p
	result.ItemDataBase = p.ItemDataBase.clone()
	return &result
}

func (p *Note) Clone() ItemData {
	return p.clone()
}

func init() {
	registerItemType(ItemTypeNote, func() ItemData { return NewNote() })
}

type NoteBuilder struct {
	record *Note
	sharedSetters[NoteBuilder]
	parentSetters[NoteBuilder]
}

func NewNoteBuilder() *NoteBuilder {
	b := &NoteBuilder{record: NewNote()}
	b.sharedSetters = sharedSetters[NoteBuilder]{builder: b, base: &b.record.ItemDataBase}
	b.parentSetters = parentSetters[NoteBuilder]{builder: b, ref: &b.record.ParentRef}
	return b
}

func (b *NoteBuilder) Note(v string) *NoteBuilder {
	b.record.Note = v
	return b
}

func (b *NoteBuilder) Build() *Note {
	p := b.record.clone()
	normalize(p.bind())
	return p
}
