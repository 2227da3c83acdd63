package claims

import (
	"testing"

	"github.com/google/uuid"
)

func TestItemStatusForUpdate_UneditedNumericReEmitsCode(t *testing.T) {
	it := NormalizeItem(ClaimItem{Name: "Ambulance", Amount: 100, Status: NumericStatus(1)})
	out := ItemStatusForUpdate(it)
	if out.Kind != StatusNumeric || out.Code != 1 {
		t.Errorf("expected numeric 1, got %+v", out)
	}
}

func TestItemStatusForUpdate_EditedTextMapsBackToCode(t *testing.T) {
	it := NormalizeItem(ClaimItem{Name: "Ambulance", Amount: 100, Status: NumericStatus(1)})
	it.Status = "Paid"
	out := ItemStatusForUpdate(it)
	if out.Kind != StatusNumeric || out.Code != 3 {
		t.Errorf("expected numeric 3 for Paid, got %+v", out)
	}
}

func TestItemStatusForUpdate_UnmappableTextFallsBackToOriginalCode(t *testing.T) {
	it := NormalizeItem(ClaimItem{Name: "Ambulance", Amount: 100, Status: NumericStatus(5)})
	it.Status = "Disputed"
	if _, ok := StatusCode(it.Status); ok {
		t.Fatalf("precondition: %q should not map to a code", it.Status)
	}
	out := ItemStatusForUpdate(it)
	if out.Kind != StatusNumeric || out.Code != 5 {
		t.Errorf("expected original code 5, got %+v", out)
	}
}

func TestItemStatusForUpdate_TextBornStaysText(t *testing.T) {
	it := NormalizeItem(ClaimItem{Name: "Drugs", Amount: 100, Status: TextStatus("Approved")})
	out := ItemStatusForUpdate(it)
	if out.Kind != StatusText || out.Text != "Approved" {
		t.Errorf("expected text Approved, got %+v", out)
	}
}

func TestItemStatusForUpdate_EmptyTextBecomesPending(t *testing.T) {
	it := EditableClaimItem{Name: "Drugs", Amount: 100, Status: "  "}
	out := ItemStatusForUpdate(it)
	if out.Kind != StatusText || out.Text != "Pending" {
		t.Errorf("expected text Pending, got %+v", out)
	}
}

func TestBuildUpdatePayload(t *testing.T) {
	providerID := uuid.New()
	claimID := uuid.New()
	code := 2
	c := &EditableClaim{
		ID:            claimID,
		ClaimName:     "CLM-1",
		PatientName:   "Ada Obi",
		PatientNumber: "HN-1001",
		PhoneNumber:   "08030000000",
		ServiceType:   ServiceTypeAdmission,
		ServiceDate:   "2024-03-15",
		Items: []EditableClaimItem{
			{Name: "Ambulance", Amount: 2500, ClaimType: "EmergencyService", Quantity: 1, Status: "Rejected", OriginalStatusCode: &code},
			{Name: "Drugs", Amount: 400, ClaimType: "Pharmacy", Quantity: 3, Status: "Approved"},
		},
	}
	p := BuildUpdatePayload(c, providerID)
	if p.ID != claimID || p.ProviderID != providerID {
		t.Error("identifiers not carried into payload")
	}
	if len(p.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(p.Items))
	}
	if p.Items[0].ClaimStatus.Kind != StatusNumeric || p.Items[0].ClaimStatus.Code != 2 {
		t.Errorf("expected numeric 2, got %+v", p.Items[0].ClaimStatus)
	}
	if p.Items[1].ClaimStatus.Kind != StatusText || p.Items[1].ClaimStatus.Text != "Approved" {
		t.Errorf("expected text Approved, got %+v", p.Items[1].ClaimStatus)
	}
	if p.Items[0].ClaimType != "EmergencyService" || p.Items[0].Quantity != 1 {
		t.Errorf("item 0 type/quantity not carried: %+v", p.Items[0])
	}
	if p.Items[1].ClaimType != "Pharmacy" || p.Items[1].Quantity != 3 {
		t.Errorf("item 1 type/quantity not carried: %+v", p.Items[1])
	}
}

func TestParseISODate(t *testing.T) {
	d, err := ParseISODate("2024-03-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d == nil || d.Format("2006-01-02") != "2024-03-15" {
		t.Errorf("unexpected date: %v", d)
	}

	d, err = ParseISODate("")
	if err != nil || d != nil {
		t.Errorf("empty input should yield nil, nil; got %v, %v", d, err)
	}

	if _, err := ParseISODate("15/03/2024"); err == nil {
		t.Error("expected error for non-ISO input")
	}
}
