package terminology

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

type mockRepo struct {
	codes []*ClassificationCode
}

func (m *mockRepo) Search(ctx context.Context, codeType, query string, limit int) ([]*ClassificationCode, error) {
	var out []*ClassificationCode
	q := strings.ToLower(query)
	for _, c := range m.codes {
		if c.CodeType != codeType {
			continue
		}
		if !strings.Contains(strings.ToLower(c.Code), q) && !strings.Contains(strings.ToLower(c.Name), q) {
			continue
		}
		out = append(out, c)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *mockRepo) GetByCode(ctx context.Context, codeType, code string) (*ClassificationCode, error) {
	for _, c := range m.codes {
		if c.CodeType == codeType && c.Code == code {
			return c, nil
		}
	}
	return nil, fmt.Errorf("code not found")
}

func testRepo() *mockRepo {
	return &mockRepo{codes: []*ClassificationCode{
		{Code: "S06.0", Name: "Concussion", CodeType: CodeTypeICD10},
		{Code: "S42.0", Name: "Fracture of clavicle", CodeType: CodeTypeICD10},
		{Code: "NA07.0", Name: "Concussion", CodeType: CodeTypeICD11},
	}}
}

func TestSearch_ByName(t *testing.T) {
	svc := NewService(testRepo())
	results, err := svc.Search(context.Background(), CodeTypeICD10, "concussion", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Code != "S06.0" {
		t.Errorf("unexpected results: %v", results)
	}
}

func TestSearch_ScopedToCodeType(t *testing.T) {
	svc := NewService(testRepo())
	results, err := svc.Search(context.Background(), CodeTypeICD11, "concussion", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Code != "NA07.0" {
		t.Errorf("expected the ICD11 code only, got %v", results)
	}
}

func TestSearch_InvalidCodeType(t *testing.T) {
	svc := NewService(testRepo())
	if _, err := svc.Search(context.Background(), "SNOMED", "concussion", 20); err == nil {
		t.Error("expected error for unsupported code type")
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	svc := NewService(testRepo())
	if _, err := svc.Search(context.Background(), CodeTypeICD10, "", 20); err == nil {
		t.Error("expected error for empty search")
	}
}

func TestLookup(t *testing.T) {
	svc := NewService(testRepo())
	code, err := svc.Lookup(context.Background(), CodeTypeICD10, "S42.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code.Name != "Fracture of clavicle" {
		t.Errorf("unexpected code: %+v", code)
	}
}

func TestLookup_MissingCode(t *testing.T) {
	svc := NewService(testRepo())
	if _, err := svc.Lookup(context.Background(), CodeTypeICD10, ""); err == nil {
		t.Error("expected error for empty code")
	}
	if _, err := svc.Lookup(context.Background(), CodeTypeICD10, "Z99.9"); err == nil {
		t.Error("expected error for unknown code")
	}
}
