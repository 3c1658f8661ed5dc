package contact

import (
	"context"
	"fmt"

	"github.com/suplink/vendorcrm/internal/domain"
	"github.com/suplink/vendorcrm/internal/repository/record"
)

const defaultListLimit = 100

// Service handles vendor contact records.
type Service struct {
	repo         Repository
	defaultLimit int
}

// New creates a contact service.
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

// Create validates the contact, checks the referenced vendor exists, and
// persists the record. A malformed vendor id fails before the existence check.
func (s *Service) Create(ctx context.Context, p domain.ContactParams) (string, error) {
	c, err := domain.NewContact(p)
	if err != nil {
		return "", fmt.Errorf("validate contact: %w", err)
	}

	ok, err := s.repo.Exists(ctx, domain.CollectionVendor, c.VendorID().String())
	if err != nil {
		return "", fmt.Errorf("check vendor %s: %w", c.VendorID(), err)
	}
	if !ok {
		return "", domain.ErrVendorNotFound
	}

	id, err := s.repo.Insert(ctx, domain.CollectionContact, c.Document())
	if err != nil {
		return "", fmt.Errorf("insert contact: %w", err)
	}
	return id, nil
}

// List returns contacts, optionally narrowed to one vendor.
func (s *Service) List(ctx context.Context, vendorID string, limit int) ([]record.Document, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}

	var f record.Filter
	if vendorID != "" {
		f.Equals = map[string]string{"vendor_id": vendorID}
	}

	docs, err := s.repo.Find(ctx, domain.CollectionContact, f, limit)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return docs, nil
}
