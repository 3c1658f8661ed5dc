// Package record is a generic document repository over the JSON store.
// Every CRM collection shares the same persistence shape: a JSON document
// under crm:<collection>:<id>, where <id> is a server-generated UUID.
package record

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/suplink/vendorcrm/internal/db"
	"github.com/suplink/vendorcrm/internal/domain"
)

const keyPrefix = "crm:"

// store is the consumer interface for records (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Document is a stored record as returned to callers: the persisted fields
// plus the public "id" field.
type Document map[string]any

// Repo implements the record store contract for all collections.
type Repo struct {
	store store
}

// New creates a record repository. s may be nil when no connection string is
// configured; every operation then fails with domain.ErrStoreUnavailable.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Insert persists a new document and returns its generated identifier.
func (r *Repo) Insert(ctx context.Context, collection string, doc map[string]any) (string, error) {
	if r.store == nil {
		return "", domain.ErrStoreUnavailable
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}

	id := uuid.NewString()
	key := docKey(collection, id)
	if err := r.store.JSONSet(ctx, key, "$", data); err != nil {
		return "", fmt.Errorf("json.set %s: %w: %w", key, domain.ErrStoreUnavailable, err)
	}
	return id, nil
}

// Find returns up to limit documents matching the filter, in store-native
// (scan) order. An empty filter matches the whole collection. The public "id"
// field is injected from the key. limit <= 0 means no cap.
func (r *Repo) Find(ctx context.Context, collection string, f Filter, limit int) ([]Document, error) {
	if r.store == nil {
		return nil, domain.ErrStoreUnavailable
	}

	keys, err := r.store.Scan(ctx, keyPrefix+collection+":*")
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w: %w", collection, domain.ErrStoreUnavailable, err)
	}

	docs := make([]Document, 0, len(keys))
	for _, key := range keys {
		if limit > 0 && len(docs) >= limit {
			break
		}

		raw, err := r.store.JSONGet(ctx, key, "$")
		if errors.Is(err, db.ErrKeyNotFound) {
			// Deleted between SCAN and JSON.GET.
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("json.get %s: %w: %w", key, domain.ErrStoreUnavailable, err)
		}

		doc, err := parseJSONGetResult(raw)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", key, err)
		}
		if !f.Matches(doc) {
			continue
		}

		doc["id"] = idFromKey(key, collection)
		docs = append(docs, doc)
	}

	return docs, nil
}

// Exists reports whether a document with the given identifier is present.
// A syntactically invalid identifier fails with domain.ErrInvalidID before
// any store round-trip.
func (r *Repo) Exists(ctx context.Context, collection, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, fmt.Errorf("parse id %q: %w", id, domain.ErrInvalidID)
	}
	if r.store == nil {
		return false, domain.ErrStoreUnavailable
	}

	key := docKey(collection, id)
	ok, err := r.store.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("exists %s: %w: %w", key, domain.ErrStoreUnavailable, err)
	}
	return ok, nil
}

// Collections returns the distinct collection names present in the store,
// sorted for stable output.
func (r *Repo) Collections(ctx context.Context) ([]string, error) {
	if r.store == nil {
		return nil, domain.ErrStoreUnavailable
	}

	keys, err := r.store.Scan(ctx, keyPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("scan collections: %w: %w", domain.ErrStoreUnavailable, err)
	}

	seen := make(map[string]bool)
	var names []string
	for _, key := range keys {
		rest := strings.TrimPrefix(key, keyPrefix)
		name, _, ok := strings.Cut(rest, ":")
		if !ok || name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// parseJSONGetResult unwraps a JSON.GET "$" result, which arrives as a
// one-element array wrapping the document.
func parseJSONGetResult(raw []byte) (map[string]any, error) {
	var wrapped []map[string]any
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	if len(wrapped) == 0 {
		return map[string]any{}, nil
	}
	return wrapped[0], nil
}

func docKey(collection, id string) string {
	return fmt.Sprintf("%s%s:%s", keyPrefix, collection, id)
}

func idFromKey(key, collection string) string {
	return strings.TrimPrefix(key, keyPrefix+collection+":")
}
