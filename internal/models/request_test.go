package models

import (
	"errors"
	"strings"
	"testing"

	"pharma-factory-api-server/internal/apperrors"
)

func TestNewReorderRequest_InitialStatusFromSnapshot(t *testing.T) {
	for _, tc := range []struct {
		currentQty int64
		want       RequestStatus
	}{
		{0, RequestStatusOutOfStock},
		{3, RequestStatusLowStock},
	} {
		req, err := NewReorderRequest(ReorderRequestInput{
			Name:       strPtr("Paracetamol API"),
			CurrentQty: i64Ptr(tc.currentQty),
			RequestQty: i64Ptr(50),
		})
		if err != nil {
			t.Fatal(err)
		}
		if req.Status != tc.want {
			t.Errorf("currentQty %d: status = %q, want %q", tc.currentQty, req.Status, tc.want)
		}
	}
}

func TestNewReorderRequest_AssignsRequestID(t *testing.T) {
	req, err := NewReorderRequest(ReorderRequestInput{
		Name:       strPtr("Lactose"),
		CurrentQty: i64Ptr(2),
		RequestQty: i64Ptr(10),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(req.RequestID, "REQ-") {
		t.Errorf("requestID = %q, want REQ- prefix", req.RequestID)
	}
}

func TestNewReorderRequest_RequestQtyAtLeastOne(t *testing.T) {
	_, err := NewReorderRequest(ReorderRequestInput{
		Name:       strPtr("Lactose"),
		CurrentQty: i64Ptr(2),
		RequestQty: i64Ptr(0),
	})

	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Fields) != 1 || verr.Fields[0].Field != "requestQty" {
		t.Errorf("expected only requestQty reported, got %v", verr.Fields)
	}
}

func TestNewReorderRequest_ReportsEveryViolation(t *testing.T) {
	_, err := NewReorderRequest(ReorderRequestInput{
		Name:       strPtr(""),
		CurrentQty: i64Ptr(-1),
	})

	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	violated := map[string]bool{}
	for _, f := range verr.Fields {
		violated[f.Field] = true
	}
	for _, field := range []string{"name", "currentQty", "requestQty"} {
		if !violated[field] {
			t.Errorf("expected %s among violations, got %v", field, verr.Fields)
		}
	}
}

func TestReorderRequest_ApplyUpdateStatus(t *testing.T) {
	req, err := NewReorderRequest(ReorderRequestInput{
		Name:       strPtr("Lactose"),
		CurrentQty: i64Ptr(2),
		RequestQty: i64Ptr(10),
	})
	if err != nil {
		t.Fatal(err)
	}

	approved := "approved"
	if err := req.ApplyUpdate(ReorderRequestInput{Status: &approved}); err != nil {
		t.Fatal(err)
	}
	if req.Status != RequestStatusApproved {
		t.Errorf("status = %q, want approved", req.Status)
	}

	bogus := "shipped"
	err = req.ApplyUpdate(ReorderRequestInput{Status: &bogus})
	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for unknown status, got %v", err)
	}
	if req.Status != RequestStatusApproved {
		t.Error("failed update must not change status")
	}
}
