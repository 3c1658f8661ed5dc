package domain

// NoteParams is the untyped input record for a new note.
type NoteParams struct {
	VendorID string `json:"vendor_id"`
	Content  string `json:"content"`
	Author   string `json:"author"`
}

// Note is a validated vendor note (immutable value object).
type Note struct {
	vendorID VendorID
	content  string
	author   string
}

// NewNote validates params and creates a Note.
func NewNote(p NoteParams) (Note, error) {
	var errs []FieldError
	if p.VendorID == "" {
		errs = append(errs, FieldError{Field: "vendor_id", Message: "is required"})
	}
	if p.Content == "" {
		errs = append(errs, FieldError{Field: "content", Message: "is required"})
	}

	if len(errs) > 0 {
		return Note{}, &ValidationError{Fields: errs}
	}

	return Note{
		vendorID: VendorID(p.VendorID),
		content:  p.Content,
		author:   p.Author,
	}, nil
}

// VendorID returns the referenced vendor identifier.
func (n *Note) VendorID() VendorID { return n.vendorID }

// Content returns the note text.
func (n *Note) Content() string { return n.content }

// Document flattens the note into a store document.
func (n *Note) Document() map[string]any {
	doc := map[string]any{
		"vendor_id": string(n.vendorID),
		"content":   n.content,
	}
	if n.author != "" {
		doc["author"] = n.author
	}
	return doc
}
