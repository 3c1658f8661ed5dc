package deal

import (
	"context"
	"fmt"

	"github.com/suplink/vendorcrm/internal/domain"
	"github.com/suplink/vendorcrm/internal/repository/record"
)

const defaultListLimit = 100

// Service handles pipeline deals.
type Service struct {
	repo         Repository
	defaultLimit int
}

// New creates a deal service.
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

// Create validates the deal, checks the referenced vendor exists, and
// persists the record.
func (s *Service) Create(ctx context.Context, p domain.DealParams) (string, error) {
	d, err := domain.NewDeal(p)
	if err != nil {
		return "", fmt.Errorf("validate deal: %w", err)
	}

	ok, err := s.repo.Exists(ctx, domain.CollectionVendor, d.VendorID().String())
	if err != nil {
		return "", fmt.Errorf("check vendor %s: %w", d.VendorID(), err)
	}
	if !ok {
		return "", domain.ErrVendorNotFound
	}

	id, err := s.repo.Insert(ctx, domain.CollectionDeal, d.Document())
	if err != nil {
		return "", fmt.Errorf("insert deal: %w", err)
	}
	return id, nil
}

// List returns deals, optionally narrowed by vendor and pipeline stage.
// An unknown stage value simply matches nothing.
func (s *Service) List(ctx context.Context, vendorID, stage string, limit int) ([]record.Document, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}

	var f record.Filter
	if vendorID != "" || stage != "" {
		f.Equals = make(map[string]string, 2)
		if vendorID != "" {
			f.Equals["vendor_id"] = vendorID
		}
		if stage != "" {
			f.Equals["stage"] = stage
		}
	}

	docs, err := s.repo.Find(ctx, domain.CollectionDeal, f, limit)
	if err != nil {
		return nil, fmt.Errorf("list deals: %w", err)
	}
	return docs, nil
}
