package stock

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestClassify_Boundaries(t *testing.T) {
	cases := []struct {
		quantity  int64
		threshold int64
		want      Status
	}{
		{0, 10, StatusOutOfStock},
		{-3, 10, StatusOutOfStock},
		{1, 10, StatusLowStock},
		{9, 10, StatusLowStock},
		{10, 10, StatusInStock},
		{11, 10, StatusInStock},
		{0, 1, StatusOutOfStock},
		{1, 1, StatusInStock},
	}

	for _, tc := range cases {
		got := Classify(tc.quantity, tc.threshold)
		if got != tc.want {
			t.Errorf("Classify(%d, %d) = %q, want %q", tc.quantity, tc.threshold, got, tc.want)
		}
	}
}

func TestClassify_Deterministic(t *testing.T) {
	first := Classify(7, 10)
	for i := 0; i < 100; i++ {
		if got := Classify(7, 10); got != first {
			t.Fatalf("Classify(7, 10) changed between calls: %q vs %q", got, first)
		}
	}
}

func TestValue(t *testing.T) {
	price := decimal.RequireFromString("2.50")
	got := Value(price, 4)
	if !got.Equal(decimal.RequireFromString("10")) {
		t.Errorf("Value(2.50, 4) = %s, want 10", got)
	}
}

func TestValue_NoFloatDrift(t *testing.T) {
	// 0.1 * 3 drifts under binary floats; decimal arithmetic must not.
	price := decimal.RequireFromString("0.1")
	got := Value(price, 3)
	if !got.Equal(decimal.RequireFromString("0.3")) {
		t.Errorf("Value(0.1, 3) = %s, want 0.3", got)
	}
}

func TestValue_ZeroQuantity(t *testing.T) {
	price := decimal.RequireFromString("19.99")
	got := Value(price, 0)
	if !got.IsZero() {
		t.Errorf("Value(19.99, 0) = %s, want 0", got)
	}
}
