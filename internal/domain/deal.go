package domain

// DealStage is the pipeline stage of a deal.
type DealStage string

// Deal pipeline stages.
const (
	StageLead      DealStage = "lead"
	StageQualified DealStage = "qualified"
	StageProposal  DealStage = "proposal"
	StageWon       DealStage = "won"
	StageLost      DealStage = "lost"
)

// DealStages lists the accepted stage literals in pipeline order.
var DealStages = []DealStage{StageLead, StageQualified, StageProposal, StageWon, StageLost}

func (s DealStage) valid() bool {
	for _, v := range DealStages {
		if s == v {
			return true
		}
	}
	return false
}

// DealParams is the untyped input record for a new deal.
// Value is a pointer so an explicit 0 is distinguishable from an omitted field.
type DealParams struct {
	VendorID string   `json:"vendor_id"`
	Title    string   `json:"title"`
	Value    *float64 `json:"value"`
	Stage    string   `json:"stage"`
	Notes    string   `json:"notes"`
}

// Deal is a validated pipeline deal (immutable value object).
type Deal struct {
	vendorID VendorID
	title    string
	value    float64
	stage    DealStage
	notes    string
}

// NewDeal validates params and creates a Deal. Value must be present and
// non-negative; zero is a legal value. Stage defaults to "lead" when omitted.
func NewDeal(p DealParams) (Deal, error) {
	var errs []FieldError
	if p.VendorID == "" {
		errs = append(errs, FieldError{Field: "vendor_id", Message: "is required"})
	}
	if p.Title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "is required"})
	}
	switch {
	case p.Value == nil:
		errs = append(errs, FieldError{Field: "value", Message: "is required"})
	case *p.Value < 0:
		errs = append(errs, FieldError{Field: "value", Message: "must be greater than or equal to 0"})
	}

	stage := StageLead
	if p.Stage != "" {
		stage = DealStage(p.Stage)
		if !stage.valid() {
			errs = append(errs, FieldError{
				Field:   "stage",
				Message: `must be one of "lead", "qualified", "proposal", "won", "lost"`,
			})
		}
	}

	if len(errs) > 0 {
		return Deal{}, &ValidationError{Fields: errs}
	}

	return Deal{
		vendorID: VendorID(p.VendorID),
		title:    p.Title,
		value:    *p.Value,
		stage:    stage,
		notes:    p.Notes,
	}, nil
}

// VendorID returns the referenced vendor identifier.
func (d *Deal) VendorID() VendorID { return d.vendorID }

// Title returns the deal title.
func (d *Deal) Title() string { return d.title }

// Value returns the estimated deal value.
func (d *Deal) Value() float64 { return d.value }

// Stage returns the pipeline stage.
func (d *Deal) Stage() DealStage { return d.stage }

// Document flattens the deal into a store document.
func (d *Deal) Document() map[string]any {
	doc := map[string]any{
		"vendor_id": string(d.vendorID),
		"title":     d.title,
		"value":     d.value,
		"stage":     string(d.stage),
	}
	if d.notes != "" {
		doc["notes"] = d.notes
	}
	return doc
}
