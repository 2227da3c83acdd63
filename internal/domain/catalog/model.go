// Package catalog holds the provider's billable products and services plus
// the supporting department and service category lookups.
package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Product categories recognised by the billing UI.
const (
	CategoryClinical    = "Clinical"
	CategoryNonClinical = "Non-Clinical"
	CategoryLaboratory  = "Laboratory"
	CategoryImaging     = "Imaging"
	CategorySurgical    = "Surgical"
	CategoryMedication  = "Medication"
)

// Product is a billable product or service with its NHIS coverage terms.
type Product struct {
	ID              uuid.UUID `db:"id" json:"id"`
	ProviderID      uuid.UUID `db:"provider_id" json:"providerId"`
	Code            string    `db:"code" json:"code"`
	Name            string    `db:"name" json:"name"`
	Description     string    `db:"description" json:"description"`
	Type            string    `db:"type" json:"type"`
	ProductCategory string    `db:"product_category" json:"productCategory"`
	Price           float64   `db:"price" json:"price"`
	NHISPercentage  float64   `db:"nhis_percentage" json:"nhisPercentage"`
	IsCovered       bool      `db:"is_covered" json:"isCovered"`
	IsActive        bool      `db:"is_active" json:"isActive"`
	CreatedDate     time.Time `db:"created_date" json:"createdDate"`
}

// NHISAmount is the portion of the price covered by the scheme.
func (p *Product) NHISAmount() float64 {
	return p.Price * p.NHISPercentage / 100
}

// NetAmount is what the patient pays after NHIS coverage.
func (p *Product) NetAmount() float64 {
	return p.Price - p.NHISAmount()
}

// Department groups products under an organisational unit of the provider.
type Department struct {
	ID             uuid.UUID `db:"id" json:"id"`
	ProviderID     uuid.UUID `db:"provider_id" json:"providerId"`
	Name           string    `db:"name" json:"name"`
	Description    string    `db:"description" json:"description"`
	DepartmentType string    `db:"department_type" json:"departmentType"`
	IsActive       bool      `db:"is_active" json:"isActive"`
	CreatedDate    time.Time `db:"created_date" json:"createdDate"`
}

// ServiceCategory classifies emergency services for bill capture.
type ServiceCategory struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	IsActive    bool      `db:"is_active" json:"isActive"`
	CreatedDate time.Time `db:"created_date" json:"createdDate"`
}

// ProductFilter narrows product searches. Zero values mean no constraint.
type ProductFilter struct {
	Search    string
	Category  string
	Type      string
	IsCovered *bool
}
