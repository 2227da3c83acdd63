package claims

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StatusKind discriminates the three shapes a claim item status takes on
// the wire: a legacy numeric code, a display text, or nothing at all.
type StatusKind int

const (
	StatusAbsent StatusKind = iota
	StatusNumeric
	StatusText
)

// StatusValue carries a claim item status exactly as it appeared in JSON.
// The upstream NEMSAS API emits numbers for rows that predate the text
// migration and strings for everything newer; some rows omit the field
// entirely. The ambiguity is resolved once, at the JSON boundary, and
// every layer above works with this union instead of interface{}.
type StatusValue struct {
	Kind StatusKind
	Code int
	Text string
}

// NumericStatus returns a StatusValue holding a legacy numeric code.
func NumericStatus(code int) StatusValue {
	return StatusValue{Kind: StatusNumeric, Code: code}
}

// TextStatus returns a StatusValue holding a display text.
func TextStatus(text string) StatusValue {
	return StatusValue{Kind: StatusText, Text: text}
}

// IsAbsent reports whether the field was missing or null on the wire.
func (v StatusValue) IsAbsent() bool { return v.Kind == StatusAbsent }

func (v StatusValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case StatusNumeric:
		return json.Marshal(v.Code)
	case StatusText:
		return json.Marshal(v.Text)
	default:
		return []byte("null"), nil
	}
}

func (v *StatusValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = StatusValue{}
		return nil
	}
	var code int
	if err := json.Unmarshal(data, &code); err == nil {
		*v = NumericStatus(code)
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*v = TextStatus(text)
		return nil
	}
	return fmt.Errorf("claim status must be a number or a string, got %s", data)
}

// Claim maps to the nemsas_claim table and, field for field, to the wire
// shape the intake front end submits and reads back.
type Claim struct {
	ID            uuid.UUID   `db:"id" json:"id"`
	NEMSASID      *string     `db:"nemsas_id" json:"nemsasId,omitempty"`
	ProviderID    uuid.UUID   `db:"provider_id" json:"providerId"`
	ClaimName     string      `db:"claim_name" json:"claimName"`
	PatientName   string      `db:"patient_name" json:"patientName"`
	PatientNumber string      `db:"patient_number" json:"patientNumber"`
	PhoneNumber   string      `db:"phone_number" json:"phoneNumber"`
	ServiceType   string      `db:"service_type" json:"serviceType"`
	DischargeType *string     `db:"discharge_type" json:"dischargeType,omitempty"`
	ServiceDate   *time.Time  `db:"service_date" json:"serviceDate,omitempty"`
	DischargeDate *time.Time  `db:"discharge_date" json:"dischargeDate,omitempty"`
	Status        string      `db:"status" json:"claimStatus"`
	TotalAmount   float64     `db:"total_amount" json:"totalAmount"`
	Items         []ClaimItem `db:"-" json:"claimItems"`
	CreatedDate   time.Time   `db:"created_date" json:"createdDate"`
	UpdatedAt     time.Time   `db:"updated_at" json:"updatedAt"`
}

// ClaimItem maps to the nemsas_claim_item table. Status round-trips through
// StatusValue so a numeric-born row reads back as a number and a text-born
// row reads back as a string; LegacyStatus covers rows written before the
// claimStatus field existed.
type ClaimItem struct {
	ID           uuid.UUID   `db:"id" json:"id"`
	ClaimID      uuid.UUID   `db:"claim_id" json:"claimId"`
	Name         string      `db:"name" json:"name"`
	Amount       float64     `db:"amount" json:"amount"`
	ClaimType    string      `db:"claim_type" json:"claimType"`
	Quantity     int         `db:"quantity" json:"quantity"`
	Status       StatusValue `db:"-" json:"claimStatus,omitempty"`
	LegacyStatus StatusValue `db:"-" json:"status,omitempty"`
}

// WireStatus returns the effective wire status of the item: claimStatus when
// present, otherwise the legacy status field.
func (it ClaimItem) WireStatus() StatusValue {
	if !it.Status.IsAbsent() {
		return it.Status
	}
	return it.LegacyStatus
}

// ServiceType values accepted on intake.
const (
	ServiceTypeAdmission   = "Admission"
	ServiceTypeObservation = "Observation"
)

// DischargeType values accepted on intake.
const (
	DischargeTypeTransferred = "Transferred"
	DischargeTypeDischarged  = "Discharged"
)

// ListFilter narrows the claim list. Zero values mean "no filter".
type ListFilter struct {
	ProviderID    uuid.UUID
	NEMSASID      string
	ClaimStatus   string
	PatientNumber string
	StartDate     *time.Time
	EndDate       *time.Time
	SortBy        string
}
