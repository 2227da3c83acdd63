package claims

import (
	"fmt"
	"strings"
)

// IsValid reports whether an editable claim may be submitted. It is the
// single gate the edit view checks before enabling the update action.
func IsValid(c *EditableClaim) bool {
	return len(ValidationErrors(c)) == 0
}

// ValidationErrors evaluates every submission rule independently and returns
// one message per violation, in a stable order, so the view can render the
// full checklist instead of stopping at the first failure.
func ValidationErrors(c *EditableClaim) []string {
	if c == nil {
		return []string{"no claim loaded"}
	}
	var errs []string
	for _, f := range []struct {
		value string
		msg   string
	}{
		{c.ClaimName, "claim name is required"},
		{c.PatientName, "patient name is required"},
		{c.PatientNumber, "patient number is required"},
		{c.PhoneNumber, "phone number is required"},
		{c.ServiceType, "service type is required"},
	} {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, f.msg)
		}
	}
	if len(c.Items) == 0 {
		errs = append(errs, "at least one claim item is required")
	}
	for i, it := range c.Items {
		if strings.TrimSpace(it.Name) == "" {
			errs = append(errs, fmt.Sprintf("item %d: name is required", i+1))
		}
		if it.Amount <= 0 {
			errs = append(errs, fmt.Sprintf("item %d: amount must be greater than zero", i+1))
		}
	}
	return errs
}
