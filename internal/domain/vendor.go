package domain

import "regexp"

// Collection names double as store key segments and are referenced by
// repositories and use cases.
const (
	CollectionVendor  = "vendor"
	CollectionContact = "contact"
	CollectionDeal    = "deal"
	CollectionNote    = "note"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// VendorID is an opaque store-issued vendor identifier.
type VendorID string

func (id VendorID) String() string { return string(id) }

// VendorStatus is the vendor account status.
type VendorStatus string

// Vendor account statuses.
const (
	VendorActive    VendorStatus = "active"
	VendorPending   VendorStatus = "pending"
	VendorSuspended VendorStatus = "suspended"
)

// VendorStatuses lists the accepted status literals in declaration order.
var VendorStatuses = []VendorStatus{VendorActive, VendorPending, VendorSuspended}

func (s VendorStatus) valid() bool {
	for _, v := range VendorStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// VendorParams is the untyped input record for a new vendor.
// Unknown extra fields in the request body are ignored on decode.
type VendorParams struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	BusinessName string `json:"business_name"`
	Phone        string `json:"phone"`
	Category     string `json:"category"`
	Website      string `json:"website"`
	Status       string `json:"status"`
}

// Vendor is a validated vendor profile (immutable value object).
type Vendor struct {
	name         string
	email        string
	businessName string
	phone        string
	category     string
	website      string
	status       VendorStatus
}

// NewVendor validates params and creates a Vendor. Every offending field is
// reported, not just the first. Status defaults to "active" when omitted.
func NewVendor(p VendorParams) (Vendor, error) {
	var errs []FieldError
	if p.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "is required"})
	}
	switch {
	case p.Email == "":
		errs = append(errs, FieldError{Field: "email", Message: "is required"})
	case !emailRegex.MatchString(p.Email):
		errs = append(errs, FieldError{Field: "email", Message: "must be a valid email address"})
	}
	if p.BusinessName == "" {
		errs = append(errs, FieldError{Field: "business_name", Message: "is required"})
	}

	status := VendorActive
	if p.Status != "" {
		status = VendorStatus(p.Status)
		if !status.valid() {
			errs = append(errs, FieldError{
				Field:   "status",
				Message: `must be one of "active", "pending", "suspended"`,
			})
		}
	}

	if len(errs) > 0 {
		return Vendor{}, &ValidationError{Fields: errs}
	}

	return Vendor{
		name:         p.Name,
		email:        p.Email,
		businessName: p.BusinessName,
		phone:        p.Phone,
		category:     p.Category,
		website:      p.Website,
		status:       status,
	}, nil
}

// Name returns the primary contact full name.
func (v *Vendor) Name() string { return v.name }

// Email returns the primary contact email.
func (v *Vendor) Email() string { return v.email }

// BusinessName returns the registered business name.
func (v *Vendor) BusinessName() string { return v.businessName }

// Status returns the vendor account status.
func (v *Vendor) Status() VendorStatus { return v.status }

// Document flattens the vendor into a store document. Optional fields are
// omitted when empty so listings pass through exactly what was supplied.
func (v *Vendor) Document() map[string]any {
	doc := map[string]any{
		"name":          v.name,
		"email":         v.email,
		"business_name": v.businessName,
		"status":        string(v.status),
	}
	if v.phone != "" {
		doc["phone"] = v.phone
	}
	if v.category != "" {
		doc["category"] = v.category
	}
	if v.website != "" {
		doc["website"] = v.website
	}
	return doc
}
