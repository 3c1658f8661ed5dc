package contact

import (
	"context"

	"github.com/suplink/vendorcrm/internal/repository/record"
)

// Repository defines the storage contract for contact records, including the
// vendor existence check performed before a dependent record is created.
type Repository interface {
	Insert(ctx context.Context, collection string, doc map[string]any) (string, error)
	Find(ctx context.Context, collection string, f record.Filter, limit int) ([]record.Document, error)
	Exists(ctx context.Context, collection, id string) (bool, error)
}
