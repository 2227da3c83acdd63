package patients

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
)

type mockRepo struct {
	patients map[uuid.UUID]*Patient
}

func newMockRepo() *mockRepo {
	return &mockRepo{patients: make(map[uuid.UUID]*Patient)}
}

func (m *mockRepo) Create(ctx context.Context, p *Patient) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	m.patients[p.ID] = p
	return nil
}

func (m *mockRepo) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (m *mockRepo) GetByHospitalNumber(ctx context.Context, providerID uuid.UUID, hospitalNumber string) (*Patient, error) {
	for _, p := range m.patients {
		if p.ProviderID == providerID && p.HospitalNumber == hospitalNumber {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func validPatient() *Patient {
	return &Patient{
		ProviderID:      uuid.New(),
		HospitalNumber:  "HN-1001",
		FirstName:       "Ada",
		LastName:        "Obi",
		InsuranceStatus: InsuranceNHIA,
		DateOfBirth:     "1990-04-12",
		Gender:          "Female",
		PhoneNumber:     "08030000000",
	}
}

func TestRegister(t *testing.T) {
	svc := NewService(newMockRepo())
	reg, err := svc.Register(context.Background(), validPatient())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reg.ID == uuid.Nil {
		t.Error("expected id to be assigned")
	}
	if reg.HospitalNumber != "HN-1001" || reg.FirstName != "Ada" {
		t.Errorf("unexpected registration summary: %+v", reg)
	}
}

func TestRegister_RequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Patient)
	}{
		{"provider", func(p *Patient) { p.ProviderID = uuid.Nil }},
		{"hospital number", func(p *Patient) { p.HospitalNumber = " " }},
		{"first name", func(p *Patient) { p.FirstName = "" }},
		{"last name", func(p *Patient) { p.LastName = "" }},
		{"phone number", func(p *Patient) { p.PhoneNumber = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(newMockRepo())
			p := validPatient()
			tc.mutate(p)
			if _, err := svc.Register(context.Background(), p); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestRegister_DuplicateHospitalNumber(t *testing.T) {
	svc := NewService(newMockRepo())
	first := validPatient()
	if _, err := svc.Register(context.Background(), first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := validPatient()
	second.ProviderID = first.ProviderID
	second.FirstName = "Bayo"
	_, err := svc.Register(context.Background(), second)
	if err == nil {
		t.Fatal("expected duplicate hospital number to be rejected")
	}
	if !strings.Contains(err.Error(), "already registered") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRegister_SameHospitalNumberDifferentProvider(t *testing.T) {
	svc := NewService(newMockRepo())
	if _, err := svc.Register(context.Background(), validPatient()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Hospital numbers are provider-scoped, not global.
	if _, err := svc.Register(context.Background(), validPatient()); err != nil {
		t.Errorf("unexpected error for different provider: %v", err)
	}
}

func TestFindByHospitalNumber(t *testing.T) {
	svc := NewService(newMockRepo())
	p := validPatient()
	if _, err := svc.Register(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.FindByHospitalNumber(context.Background(), p.ProviderID, "HN-1001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FirstName != "Ada" {
		t.Errorf("unexpected patient: %+v", got)
	}

	if _, err := svc.FindByHospitalNumber(context.Background(), p.ProviderID, ""); err == nil {
		t.Error("expected error for empty hospital number")
	}
}
