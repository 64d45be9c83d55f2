package models

import (
	"errors"
	"testing"

	"pharma-factory-api-server/internal/apperrors"
	"pharma-factory-api-server/internal/stock"
)

const testThreshold = 10

func strPtr(s string) *string { return &s }
func i64Ptr(n int64) *int64   { return &n }

func decPtr(t *testing.T, s string) *Decimal {
	t.Helper()
	d, err := DecimalFromString(s)
	if err != nil {
		t.Fatal(err)
	}
	return &d
}

func validInput(t *testing.T) InventoryInput {
	return InventoryInput{
		Name:     strPtr("Paracetamol API"),
		Category: strPtr("active_ingredient"),
		Price:    decPtr(t, "5"),
		Quantity: i64Ptr(2),
	}
}

func TestNewInventoryItem_DerivesValueAndStatus(t *testing.T) {
	item, err := NewInventoryItem(validInput(t), RawMaterialCategories, testThreshold)
	if err != nil {
		t.Fatal(err)
	}

	if want := decPtr(t, "10"); !item.Value.Equal(*want) {
		t.Errorf("value = %s, want 10", item.Value)
	}
	if item.Status != stock.StatusLowStock {
		t.Errorf("status = %q, want low_stock for quantity 2", item.Status)
	}
	if item.CreatedAt.IsZero() || item.UpdatedAt.IsZero() {
		t.Error("timestamps not set")
	}
}

func TestNewInventoryItem_StatusBoundaries(t *testing.T) {
	for _, tc := range []struct {
		quantity int64
		want     stock.Status
	}{
		{0, stock.StatusOutOfStock},
		{9, stock.StatusLowStock},
		{10, stock.StatusInStock},
	} {
		in := validInput(t)
		in.Quantity = i64Ptr(tc.quantity)
		item, err := NewInventoryItem(in, RawMaterialCategories, testThreshold)
		if err != nil {
			t.Fatal(err)
		}
		if item.Status != tc.want {
			t.Errorf("quantity %d: status = %q, want %q", tc.quantity, item.Status, tc.want)
		}
	}
}

func TestNewInventoryItem_ReportsEveryViolation(t *testing.T) {
	in := InventoryInput{
		Name:     strPtr(""),
		Category: strPtr("X"),
		Price:    decPtr(t, "-1"),
		Quantity: i64Ptr(2),
	}

	_, err := NewInventoryItem(in, RawMaterialCategories, testThreshold)
	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	violated := map[string]bool{}
	for _, f := range verr.Fields {
		violated[f.Field] = true
	}
	for _, field := range []string{"name", "category", "price"} {
		if !violated[field] {
			t.Errorf("expected %s among violations, got %v", field, verr.Fields)
		}
	}
	if violated["quantity"] {
		t.Errorf("quantity 2 is valid, should not be reported: %v", verr.Fields)
	}
}

func TestNewInventoryItem_MissingFields(t *testing.T) {
	_, err := NewInventoryItem(InventoryInput{}, RawMaterialCategories, testThreshold)
	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Fields) != 4 {
		t.Errorf("expected name, category, price and quantity reported, got %v", verr.Fields)
	}
}

func TestApplyUpdate_RecomputesValue(t *testing.T) {
	item, err := NewInventoryItem(validInput(t), RawMaterialCategories, testThreshold)
	if err != nil {
		t.Fatal(err)
	}

	// price 5, quantity 2 -> update quantity to 4 without touching value
	if err := item.ApplyUpdate(InventoryInput{Quantity: i64Ptr(4)}, RawMaterialCategories, testThreshold); err != nil {
		t.Fatal(err)
	}

	if want := decPtr(t, "20"); !item.Value.Equal(*want) {
		t.Errorf("value = %s, want 20 after quantity update", item.Value)
	}
	if item.Quantity != 4 {
		t.Errorf("quantity = %d, want 4", item.Quantity)
	}
	if item.Price.String() != "5" {
		t.Errorf("price = %s, want unchanged 5", item.Price)
	}
}

func TestApplyUpdate_DerivedFieldsAlwaysWin(t *testing.T) {
	item, err := NewInventoryItem(validInput(t), RawMaterialCategories, testThreshold)
	if err != nil {
		t.Fatal(err)
	}

	bogusStatus := "in_stock"
	in := InventoryInput{
		Quantity: i64Ptr(0),
		Value:    decPtr(t, "9999"),
		Status:   &bogusStatus,
	}
	if err := item.ApplyUpdate(in, RawMaterialCategories, testThreshold); err != nil {
		t.Fatal(err)
	}

	if !item.Value.IsZero() {
		t.Errorf("value = %s, want 0; client-supplied value must be discarded", item.Value)
	}
	if item.Status != stock.StatusOutOfStock {
		t.Errorf("status = %q, want out_of_stock; client-supplied status must be discarded", item.Status)
	}
}

func TestApplyUpdate_RejectsBadFields(t *testing.T) {
	item, err := NewInventoryItem(validInput(t), RawMaterialCategories, testThreshold)
	if err != nil {
		t.Fatal(err)
	}
	before := *item

	in := InventoryInput{
		Name:     strPtr("  "),
		Quantity: i64Ptr(-1),
	}
	err = item.ApplyUpdate(in, RawMaterialCategories, testThreshold)

	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Fields) != 2 {
		t.Errorf("expected name and quantity reported, got %v", verr.Fields)
	}
	if item.Name != before.Name || item.Quantity != before.Quantity {
		t.Error("failed update must not mutate the item")
	}
}

func TestApplyUpdate_UntouchedQuantityKeepsDerivation(t *testing.T) {
	item, err := NewInventoryItem(validInput(t), RawMaterialCategories, testThreshold)
	if err != nil {
		t.Fatal(err)
	}
	valueBefore := item.Value
	statusBefore := item.Status

	if err := item.ApplyUpdate(InventoryInput{Name: strPtr("Renamed")}, RawMaterialCategories, testThreshold); err != nil {
		t.Fatal(err)
	}

	if !item.Value.Equal(valueBefore) || item.Status != statusBefore {
		t.Error("name-only update must not change value or status")
	}
	if item.Name != "Renamed" {
		t.Errorf("name = %q, want Renamed", item.Name)
	}
}
