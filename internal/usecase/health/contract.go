package health

import "context"

// Pinger checks document store availability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// CollectionLister enumerates collection names present in the store.
type CollectionLister interface {
	Collections(ctx context.Context) ([]string, error)
}
