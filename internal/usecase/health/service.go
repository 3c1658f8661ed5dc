// Package health implements the store diagnostic. Its contract is
// "always answer": every failure is folded into a degraded status string,
// never propagated to the caller.
package health

import "context"

// maxCollections caps the collection names included in a report.
const maxCollections = 10

// maxErrLen caps error text embedded in a status string.
const maxErrLen = 50

// Status strings used in a Report.
const (
	StatusRunning        = "running"
	StatusConnected      = "connected"
	StatusNotConnected   = "not connected"
	StatusNotAvailable   = "not available"
	StatusNotInitialized = "available but not initialized"
	StatusSet            = "set"
	StatusNotSet         = "not set"
)

// Report describes backend and store health for external monitoring.
type Report struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Service produces diagnostic reports.
type Service struct {
	db     Pinger
	lister CollectionLister
	urlSet bool
}

// New creates a health service. db and lister may be nil when no connection
// string was configured.
func New(db Pinger, lister CollectionLister, urlSet bool) *Service {
	return &Service{db: db, lister: lister, urlSet: urlSet}
}

// Check reports store reachability and up to ten existing collection names.
// It never returns an error.
func (s *Service) Check(ctx context.Context) Report {
	r := Report{
		Backend:          StatusRunning,
		Database:         StatusNotAvailable,
		DatabaseURL:      StatusNotSet,
		ConnectionStatus: StatusNotConnected,
		Collections:      []string{},
	}
	if s.urlSet {
		r.DatabaseURL = StatusSet
	}

	if s.db == nil {
		r.Database = StatusNotInitialized
		return r
	}

	if err := s.db.Ping(ctx); err != nil {
		r.Database = "error: " + truncate(err.Error(), maxErrLen)
		return r
	}
	r.Database = StatusConnected
	r.ConnectionStatus = StatusConnected

	if s.lister != nil {
		cols, err := s.lister.Collections(ctx)
		if err != nil {
			r.Database = "connected but error: " + truncate(err.Error(), maxErrLen)
			return r
		}
		if len(cols) > maxCollections {
			cols = cols[:maxCollections]
		}
		r.Collections = cols
	}

	return r
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
