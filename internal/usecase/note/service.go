package note

import (
	"context"
	"fmt"

	"github.com/suplink/vendorcrm/internal/domain"
	"github.com/suplink/vendorcrm/internal/repository/record"
)

const defaultListLimit = 100

// Service handles vendor notes.
type Service struct {
	repo         Repository
	defaultLimit int
}

// New creates a note service.
func New(repo Repository) *Service {
	return &Service{repo: repo, defaultLimit: defaultListLimit}
}

// WithDefaultLimit overrides the default list cap.
func (s *Service) WithDefaultLimit(n int) *Service {
	if n > 0 {
		s.defaultLimit = n
	}
	return s
}

// Create validates the note, checks the referenced vendor exists, and
// persists the record.
func (s *Service) Create(ctx context.Context, p domain.NoteParams) (string, error) {
	n, err := domain.NewNote(p)
	if err != nil {
		return "", fmt.Errorf("validate note: %w", err)
	}

	ok, err := s.repo.Exists(ctx, domain.CollectionVendor, n.VendorID().String())
	if err != nil {
		return "", fmt.Errorf("check vendor %s: %w", n.VendorID(), err)
	}
	if !ok {
		return "", domain.ErrVendorNotFound
	}

	id, err := s.repo.Insert(ctx, domain.CollectionNote, n.Document())
	if err != nil {
		return "", fmt.Errorf("insert note: %w", err)
	}
	return id, nil
}

// List returns the notes of one vendor. Unlike the other listings, vendorID
// is required; an unknown vendor yields an empty result, not an error.
func (s *Service) List(ctx context.Context, vendorID string, limit int) ([]record.Document, error) {
	if vendorID == "" {
		return nil, domain.NewValidationError("vendor_id", "is required")
	}
	if limit <= 0 {
		limit = s.defaultLimit
	}

	f := record.Filter{Equals: map[string]string{"vendor_id": vendorID}}
	docs, err := s.repo.Find(ctx, domain.CollectionNote, f, limit)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return docs, nil
}
