package claims

import (
	"strings"

	"github.com/google/uuid"
)

// EditableClaim is the working representation the edit view operates on.
// All item statuses are display text; the numeric origin of each status, if
// any, survives in the item's OriginalStatusCode.
type EditableClaim struct {
	ID            uuid.UUID
	NEMSASID      string
	ClaimName     string
	PatientName   string
	PatientNumber string
	PhoneNumber   string
	ServiceType   string
	DischargeType string
	ServiceDate   string
	DischargeDate string
	Items         []EditableClaimItem
}

// EditableClaimItem is a claim line in display form.
type EditableClaimItem struct {
	ID        uuid.UUID
	Name      string
	Amount    float64
	ClaimType string
	Quantity  int
	// Status is always display text after normalization.
	Status string
	// OriginalStatusCode holds the raw numeric code for items that arrived
	// with one, even when the code was unknown and the text degraded to
	// Pending. Nil for items that arrived as text or with no status.
	OriginalStatusCode *int
}

// NormalizeItem converts a wire claim item into its editable form. The rules
// mirror what the server actually sends:
//
//   - numeric status: translate through the code table (unknown codes show
//     as Pending) and remember the raw code,
//   - text status: trim it, empty collapses to Pending, no code remembered,
//   - absent status: Pending, no code remembered.
func NormalizeItem(it ClaimItem) EditableClaimItem {
	out := EditableClaimItem{
		ID:        it.ID,
		Name:      it.Name,
		Amount:    it.Amount,
		ClaimType: it.ClaimType,
		Quantity:  it.Quantity,
	}
	switch st := it.WireStatus(); st.Kind {
	case StatusNumeric:
		code := st.Code
		out.Status = StatusDisplayText(code)
		out.OriginalStatusCode = &code
	case StatusText:
		text := strings.TrimSpace(st.Text)
		if text == "" {
			text = StatusPending
		}
		out.Status = text
	default:
		out.Status = StatusPending
	}
	return out
}

// Normalize converts a fetched claim into its editable form. A missing item
// list normalizes to an empty slice so the edit view never ranges over nil.
func Normalize(c *Claim) EditableClaim {
	out := EditableClaim{
		ID:            c.ID,
		ClaimName:     c.ClaimName,
		PatientName:   c.PatientName,
		PatientNumber: c.PatientNumber,
		PhoneNumber:   c.PhoneNumber,
		ServiceType:   c.ServiceType,
		Items:         make([]EditableClaimItem, 0, len(c.Items)),
	}
	if c.NEMSASID != nil {
		out.NEMSASID = *c.NEMSASID
	}
	if c.DischargeType != nil {
		out.DischargeType = *c.DischargeType
	}
	if c.ServiceDate != nil {
		out.ServiceDate = c.ServiceDate.Format("2006-01-02")
	}
	if c.DischargeDate != nil {
		out.DischargeDate = c.DischargeDate.Format("2006-01-02")
	}
	for _, it := range c.Items {
		out.Items = append(out.Items, NormalizeItem(it))
	}
	return out
}

// Clone returns a deep copy. Item slices are never shared between the
// working copy and the snapshot the edit view reverts to.
func (c EditableClaim) Clone() EditableClaim {
	out := c
	out.Items = make([]EditableClaimItem, len(c.Items))
	for i, it := range c.Items {
		out.Items[i] = it
		if it.OriginalStatusCode != nil {
			code := *it.OriginalStatusCode
			out.Items[i].OriginalStatusCode = &code
		}
	}
	return out
}
