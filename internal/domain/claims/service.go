package claims

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

var validServiceTypes = map[string]bool{
	ServiceTypeAdmission: true, ServiceTypeObservation: true,
}

var validDischargeTypes = map[string]bool{
	DischargeTypeTransferred: true, DischargeTypeDischarged: true,
}

func (s *Service) CreateClaim(ctx context.Context, c *Claim) error {
	if c.ProviderID == uuid.Nil {
		return fmt.Errorf("providerId is required")
	}
	if strings.TrimSpace(c.ClaimName) == "" {
		return fmt.Errorf("claimName is required")
	}
	if strings.TrimSpace(c.PatientName) == "" {
		return fmt.Errorf("patientName is required")
	}
	if strings.TrimSpace(c.PatientNumber) == "" {
		return fmt.Errorf("patientNumber is required")
	}
	if strings.TrimSpace(c.PhoneNumber) == "" {
		return fmt.Errorf("phoneNumber is required")
	}
	if !validServiceTypes[c.ServiceType] {
		return fmt.Errorf("invalid service type: %s", c.ServiceType)
	}
	if c.DischargeType != nil && !validDischargeTypes[*c.DischargeType] {
		return fmt.Errorf("invalid discharge type: %s", *c.DischargeType)
	}
	if len(c.Items) == 0 {
		return fmt.Errorf("at least one claim item is required")
	}
	for i, it := range c.Items {
		if strings.TrimSpace(it.Name) == "" {
			return fmt.Errorf("item %d: name is required", i+1)
		}
		if it.Amount <= 0 {
			return fmt.Errorf("item %d: amount must be greater than zero", i+1)
		}
	}
	if c.Status == "" {
		c.Status = StatusPending
	}
	c.TotalAmount = totalAmount(c.Items)
	return s.repo.Create(ctx, c)
}

func (s *Service) GetClaim(ctx context.Context, id uuid.UUID) (*Claim, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateClaim applies an edit submission to a stored claim. Submitted item
// statuses replace the stored ones in whatever wire form they arrived in;
// concurrent updates are last-write-wins.
func (s *Service) UpdateClaim(ctx context.Context, id uuid.UUID, p *UpdatePayload) (*Claim, error) {
	if p.ProviderID == uuid.Nil {
		return nil, fmt.Errorf("providerId is required")
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("claim not found")
	}

	edited := &EditableClaim{
		ID:            id,
		ClaimName:     p.ClaimName,
		PatientName:   p.PatientName,
		PatientNumber: p.PatientNumber,
		PhoneNumber:   p.PhoneNumber,
		ServiceType:   p.ServiceType,
	}
	for _, ip := range p.Items {
		edited.Items = append(edited.Items, EditableClaimItem{
			ID: ip.ID, Name: ip.Name, Amount: ip.Amount,
			ClaimType: ip.ClaimType, Quantity: ip.Quantity,
		})
	}
	if errs := ValidationErrors(edited); len(errs) > 0 {
		return nil, fmt.Errorf("%s", strings.Join(errs, "; "))
	}

	serviceDate, err := ParseISODate(p.ServiceDate)
	if err != nil {
		return nil, fmt.Errorf("invalid serviceDate: %w", err)
	}
	dischargeDate, err := ParseISODate(p.DischargeDate)
	if err != nil {
		return nil, fmt.Errorf("invalid dischargeDate: %w", err)
	}

	existing.ClaimName = p.ClaimName
	existing.PatientName = p.PatientName
	existing.PatientNumber = p.PatientNumber
	existing.PhoneNumber = p.PhoneNumber
	existing.ServiceType = p.ServiceType
	if p.DischargeType != "" {
		existing.DischargeType = &p.DischargeType
	}
	existing.ServiceDate = serviceDate
	existing.DischargeDate = dischargeDate

	items := make([]ClaimItem, 0, len(p.Items))
	for _, ip := range p.Items {
		items = append(items, ClaimItem{
			ID:        ip.ID,
			ClaimID:   id,
			Name:      ip.Name,
			Amount:    ip.Amount,
			ClaimType: ip.ClaimType,
			Quantity:  ip.Quantity,
			Status:    ip.ClaimStatus,
		})
	}
	existing.Items = items
	existing.TotalAmount = totalAmount(items)

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) DeleteClaim(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListClaims(ctx context.Context, f ListFilter, limit, offset int) ([]*Claim, int, error) {
	return s.repo.List(ctx, f, limit, offset)
}

func totalAmount(items []ClaimItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Amount
	}
	return total
}
