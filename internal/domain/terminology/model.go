// Package terminology serves the diagnosis classification code reference
// used when capturing emergency bills.
package terminology

// Code types accepted by the classification code search.
const (
	CodeTypeICD10 = "ICD10"
	CodeTypeICD11 = "ICD11"
)

// ClassificationCode is one diagnosis code in the reference table. The wire
// shape is deliberately small; the picker only shows code and name.
type ClassificationCode struct {
	Code     string `db:"code" json:"code"`
	Name     string `db:"name" json:"name"`
	CodeType string `db:"code_type" json:"-"`
}
