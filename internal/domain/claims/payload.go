package claims

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// UpdatePayload is the body submitted back to the claims API when an edit
// session is saved.
type UpdatePayload struct {
	ID            uuid.UUID           `json:"id"`
	ProviderID    uuid.UUID           `json:"providerId"`
	ClaimName     string              `json:"claimName"`
	PatientName   string              `json:"patientName"`
	PatientNumber string              `json:"patientNumber"`
	PhoneNumber   string              `json:"phoneNumber"`
	ServiceType   string              `json:"serviceType"`
	DischargeType string              `json:"dischargeType,omitempty"`
	ServiceDate   string              `json:"serviceDate,omitempty"`
	DischargeDate string              `json:"dischargeDate,omitempty"`
	Items         []UpdateItemPayload `json:"claimItems"`
}

// UpdateItemPayload is one claim line in an update submission. ClaimStatus
// re-emits the shape the item arrived in: numeric for numeric-born items,
// text otherwise.
type UpdateItemPayload struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Amount      float64     `json:"amount"`
	ClaimType   string      `json:"claimType"`
	Quantity    int         `json:"quantity"`
	ClaimStatus StatusValue `json:"claimStatus"`
}

// ItemStatusForUpdate resolves the status an edited item submits.
//
// Items that arrived with a numeric code go back as numbers: the current
// display text is mapped through the inverted code table, and text that has
// no mapping falls back to the original code unchanged rather than dropping
// the value. Items that arrived as text (or with nothing) go back as text,
// with an empty status submitting as Pending.
func ItemStatusForUpdate(it EditableClaimItem) StatusValue {
	if it.OriginalStatusCode != nil {
		if code, ok := StatusCode(it.Status); ok {
			return NumericStatus(code)
		}
		return NumericStatus(*it.OriginalStatusCode)
	}
	if text := strings.TrimSpace(it.Status); text != "" {
		return TextStatus(text)
	}
	return TextStatus(StatusPending)
}

// BuildUpdatePayload assembles the submission body for an edited claim.
// Dates pass through in ISO form as entered.
func BuildUpdatePayload(c *EditableClaim, providerID uuid.UUID) UpdatePayload {
	p := UpdatePayload{
		ID:            c.ID,
		ProviderID:    providerID,
		ClaimName:     c.ClaimName,
		PatientName:   c.PatientName,
		PatientNumber: c.PatientNumber,
		PhoneNumber:   c.PhoneNumber,
		ServiceType:   c.ServiceType,
		DischargeType: c.DischargeType,
		ServiceDate:   c.ServiceDate,
		DischargeDate: c.DischargeDate,
		Items:         make([]UpdateItemPayload, 0, len(c.Items)),
	}
	for _, it := range c.Items {
		p.Items = append(p.Items, UpdateItemPayload{
			ID:          it.ID,
			Name:        it.Name,
			Amount:      it.Amount,
			ClaimType:   it.ClaimType,
			Quantity:    it.Quantity,
			ClaimStatus: ItemStatusForUpdate(it),
		})
	}
	return p
}

// ParseISODate parses a yyyy-mm-dd value from an update payload. Empty
// strings return a nil time with no error.
func ParseISODate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
