package models

import (
	"errors"
	"testing"

	"pharma-factory-api-server/internal/apperrors"
)

func TestNewSupplier_RequiredFields(t *testing.T) {
	_, err := NewSupplier(SupplierInput{Name: strPtr("MedChem Ltd")})

	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	violated := map[string]bool{}
	for _, f := range verr.Fields {
		violated[f.Field] = true
	}
	for _, field := range []string{"contact", "email", "address", "unit"} {
		if !violated[field] {
			t.Errorf("expected %s among violations, got %v", field, verr.Fields)
		}
	}
	if violated["name"] {
		t.Errorf("name was provided, should not be reported: %v", verr.Fields)
	}
}

func TestNewSupplier_NormalizesEmail(t *testing.T) {
	supplier, err := NewSupplier(SupplierInput{
		Name:    strPtr("MedChem Ltd"),
		Contact: strPtr("Jordan Perera"),
		Email:   strPtr("  Sales@MedChem.example  "),
		Address: strPtr("12 Industrial Rd"),
		Unit:    strPtr("kg"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if supplier.Email != "sales@medchem.example" {
		t.Errorf("email = %q, want lowercased and trimmed", supplier.Email)
	}
}
