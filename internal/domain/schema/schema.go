// Package schema holds the static, request-independent description of the
// four CRM entities served by GET /schema for external tooling.
package schema

import "github.com/suplink/vendorcrm/internal/domain"

// Field describes a single entity field: its wire name, type, and constraints.
type Field struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Format   string   `json:"format,omitempty"`
	Enum     []string `json:"enum,omitempty"`
	Default  string   `json:"default,omitempty"`
}

// Entity describes the declared shape of one entity type.
type Entity struct {
	Collection string  `json:"collection"`
	Fields     []Field `json:"fields"`
}

// Describe returns the declared shape of all four entities, keyed by entity
// name. The result is built fresh per call and never touches the store.
func Describe() map[string]Entity {
	return map[string]Entity{
		"vendor": {
			Collection: domain.CollectionVendor,
			Fields: []Field{
				{Name: "name", Type: "string", Required: true},
				{Name: "email", Type: "string", Required: true, Format: "email"},
				{Name: "business_name", Type: "string", Required: true},
				{Name: "phone", Type: "string"},
				{Name: "category", Type: "string"},
				{Name: "website", Type: "string"},
				{Name: "status", Type: "string", Enum: vendorStatuses(), Default: string(domain.VendorActive)},
			},
		},
		"contact": {
			Collection: domain.CollectionContact,
			Fields: []Field{
				{Name: "vendor_id", Type: "string", Required: true},
				{Name: "name", Type: "string", Required: true},
				{Name: "email", Type: "string", Format: "email"},
				{Name: "phone", Type: "string"},
				{Name: "role", Type: "string"},
			},
		},
		"deal": {
			Collection: domain.CollectionDeal,
			Fields: []Field{
				{Name: "vendor_id", Type: "string", Required: true},
				{Name: "title", Type: "string", Required: true},
				{Name: "value", Type: "number", Required: true, Format: "non-negative"},
				{Name: "stage", Type: "string", Enum: dealStages(), Default: string(domain.StageLead)},
				{Name: "notes", Type: "string"},
			},
		},
		"note": {
			Collection: domain.CollectionNote,
			Fields: []Field{
				{Name: "vendor_id", Type: "string", Required: true},
				{Name: "content", Type: "string", Required: true},
				{Name: "author", Type: "string"},
			},
		},
	}
}

func vendorStatuses() []string {
	out := make([]string, len(domain.VendorStatuses))
	for i, s := range domain.VendorStatuses {
		out[i] = string(s)
	}
	return out
}

func dealStages() []string {
	out := make([]string, len(domain.DealStages))
	for i, s := range domain.DealStages {
		out[i] = string(s)
	}
	return out
}
