// Package patients registers and looks up the patients claims are filed for.
package patients

import (
	"time"

	"github.com/google/uuid"
)

// Insurance statuses shown in the registration form. InsuranceNHIA marks a
// patient covered by the national scheme; anything else is stored verbatim.
const InsuranceNHIA = "NHIA"

type Patient struct {
	ID              uuid.UUID `db:"id" json:"id"`
	ProviderID      uuid.UUID `db:"provider_id" json:"providerId"`
	HospitalNumber  string    `db:"hospital_number" json:"hospitalNumber"`
	FirstName       string    `db:"first_name" json:"firstName"`
	LastName        string    `db:"last_name" json:"lastName"`
	InsuranceStatus string    `db:"insurance_status" json:"insuranceStatus"`
	DateOfBirth     string    `db:"date_of_birth" json:"dateOfBirth"`
	Gender          string    `db:"gender" json:"gender"`
	Address         string    `db:"address" json:"address"`
	Email           string    `db:"email" json:"email"`
	PhoneNumber     string    `db:"phone_number" json:"phoneNumber"`
	CreatedDate     time.Time `db:"created_date" json:"createdDate"`
}

// Registration is the summary returned after a successful registration.
type Registration struct {
	ID             uuid.UUID `json:"id"`
	HospitalNumber string    `json:"hospitalNumber"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
}
