package model

// IntermediateDocument accumulates directives before normalization.
type IntermediateDocument struct {
	Content    *string
	AutoDelete *string
	Embed      map[string]Attribute
	Authors    map[AuthorSource]*AuthorDraft
	Buttons    []LinkButton
	// Unknown lists directive names without structural handling, in
	// first-seen order.
	Unknown []string
}

// NewIntermediateDocument creates an empty document.
func NewIntermediateDocument() *IntermediateDocument {
	return &IntermediateDocument{
		Embed:   make(map[string]Attribute),
		Authors: make(map[AuthorSource]*AuthorDraft),
	}
}

// AppendField appends f to the ordered field list.
func (d *IntermediateDocument) AppendField(f Field) {
	fields, _ := d.Embed[FieldsKey].(FieldList)
	d.Embed[FieldsKey] = append(fields, f)
}

// Fields returns the ordered field list.
func (d *IntermediateDocument) Fields() FieldList {
	fields, _ := d.Embed[FieldsKey].(FieldList)
	return fields
}

// SetAuthor records an author draft, replacing any earlier draft of the same source.
func (d *IntermediateDocument) SetAuthor(draft AuthorDraft) {
	d.Authors[draft.Source] = &draft
}

// NoteUnknown records a directive name without structural handling.
func (d *IntermediateDocument) NoteUnknown(name string) {
	for _, seen := range d.Unknown {
		if seen == name {
			return
		}
	}
	d.Unknown = append(d.Unknown, name)
}
