package domain

// ContactParams is the untyped input record for a new contact.
type ContactParams struct {
	VendorID string `json:"vendor_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// Contact is a validated vendor contact (immutable value object).
type Contact struct {
	vendorID VendorID
	name     string
	email    string
	phone    string
	role     string
}

// NewContact validates params and creates a Contact. Email is optional but
// must be well-formed when present. Referential existence of the vendor is
// checked by the service layer, not here.
func NewContact(p ContactParams) (Contact, error) {
	var errs []FieldError
	if p.VendorID == "" {
		errs = append(errs, FieldError{Field: "vendor_id", Message: "is required"})
	}
	if p.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "is required"})
	}
	if p.Email != "" && !emailRegex.MatchString(p.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "must be a valid email address"})
	}

	if len(errs) > 0 {
		return Contact{}, &ValidationError{Fields: errs}
	}

	return Contact{
		vendorID: VendorID(p.VendorID),
		name:     p.Name,
		email:    p.Email,
		phone:    p.Phone,
		role:     p.Role,
	}, nil
}

// VendorID returns the referenced vendor identifier.
func (c *Contact) VendorID() VendorID { return c.vendorID }

// Name returns the contact full name.
func (c *Contact) Name() string { return c.name }

// Document flattens the contact into a store document.
func (c *Contact) Document() map[string]any {
	doc := map[string]any{
		"vendor_id": string(c.vendorID),
		"name":      c.name,
	}
	if c.email != "" {
		doc["email"] = c.email
	}
	if c.phone != "" {
		doc["phone"] = c.phone
	}
	if c.role != "" {
		doc["role"] = c.role
	}
	return doc
}
