package domain

import (
	"errors"
	"testing"
)

func TestNewNote(t *testing.T) {
	n, err := NewNote(NoteParams{VendorID: "v1", Content: "Met at the trade fair", Author: "jane"})
	if err != nil {
		t.Fatalf("NewNote() error = %v", err)
	}
	if n.Content() != "Met at the trade fair" {
		t.Errorf("Content() = %q", n.Content())
	}
}

func TestNewNoteRequiredFields(t *testing.T) {
	_, err := NewNote(NoteParams{})
	if err == nil {
		t.Fatal("expected error for empty params")
	}
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(verr.Fields) != 2 {
		t.Errorf("expected vendor_id and content errors, got %v", verr.Fields)
	}
}

func TestNoteDocumentOmitsEmptyAuthor(t *testing.T) {
	n, err := NewNote(NoteParams{VendorID: "v1", Content: "c"})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := n.Document()["author"]; ok {
		t.Error("empty author should be omitted")
	}
}
