// server/internal/models/request.go
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pharma-factory-api-server/internal/apperrors"
)

// RequestStatus is the lifecycle state of a reorder request. Requests
// start as low_stock or out_of_stock (derived from the quantity
// snapshot) and end as approved or rejected.
type RequestStatus string

const (
	RequestStatusLowStock   RequestStatus = "low_stock"
	RequestStatusOutOfStock RequestStatus = "out_of_stock"
	RequestStatusApproved   RequestStatus = "approved"
	RequestStatusRejected   RequestStatus = "rejected"
)

var requestStatuses = []RequestStatus{
	RequestStatusLowStock,
	RequestStatusOutOfStock,
	RequestStatusApproved,
	RequestStatusRejected,
}

// ReorderRequest is a reorder candidate captured from an inventory item
// that fell below the threshold. Name and CurrentQty are snapshots by
// value; they do not track later changes to the source item.
type ReorderRequest struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RequestID  string             `bson:"requestID" json:"requestID"`
	Name       string             `bson:"name" json:"name"`
	CurrentQty int64              `bson:"currentQty" json:"currentQty"`
	RequestQty int64              `bson:"requestQty" json:"requestQty"`
	Status     RequestStatus      `bson:"status" json:"status"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ReorderRequestInput is one item of a reorder batch.
type ReorderRequestInput struct {
	Name       *string `json:"name"`
	CurrentQty *int64  `json:"currentQty"`
	RequestQty *int64  `json:"requestQty"`
	Status     *string `json:"status"`
}

// NewReorderRequest validates one batch item and builds the request.
// The initial status comes from the quantity snapshot: zero or less is
// out_of_stock, anything else below threshold is low_stock.
func NewReorderRequest(in ReorderRequestInput) (*ReorderRequest, error) {
	verr := &apperrors.ValidationError{}

	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		verr.Add("name", "name is required and must be non-empty")
	}
	if in.CurrentQty == nil {
		verr.Add("currentQty", "currentQty is required")
	} else if *in.CurrentQty < 0 {
		verr.Add("currentQty", "currentQty cannot be negative")
	}
	if in.RequestQty == nil {
		verr.Add("requestQty", "requestQty is required")
	} else if *in.RequestQty < 1 {
		verr.Add("requestQty", "requestQty must be at least 1")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	status := RequestStatusLowStock
	if *in.CurrentQty <= 0 {
		status = RequestStatusOutOfStock
	}

	now := time.Now()
	return &ReorderRequest{
		RequestID:  fmt.Sprintf("REQ-%s", uuid.New().String()[:8]),
		Name:       strings.TrimSpace(*in.Name),
		CurrentQty: *in.CurrentQty,
		RequestQty: *in.RequestQty,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// ApplyUpdate merges the provided snapshot fields and status onto the
// request.
func (r *ReorderRequest) ApplyUpdate(in ReorderRequestInput) error {
	verr := &apperrors.ValidationError{}

	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		verr.Add("name", "name must be non-empty")
	}
	if in.CurrentQty != nil && *in.CurrentQty < 0 {
		verr.Add("currentQty", "currentQty cannot be negative")
	}
	if in.RequestQty != nil && *in.RequestQty < 1 {
		verr.Add("requestQty", "requestQty must be at least 1")
	}
	if in.Status != nil && !validRequestStatus(RequestStatus(*in.Status)) {
		verr.Add("status", "status must be one of: low_stock, out_of_stock, approved, rejected")
	}
	if verr.HasErrors() {
		return verr
	}

	if in.Name != nil {
		r.Name = strings.TrimSpace(*in.Name)
	}
	if in.CurrentQty != nil {
		r.CurrentQty = *in.CurrentQty
	}
	if in.RequestQty != nil {
		r.RequestQty = *in.RequestQty
	}
	if in.Status != nil {
		r.Status = RequestStatus(*in.Status)
	}
	r.UpdatedAt = time.Now()
	return nil
}

func validRequestStatus(s RequestStatus) bool {
	for _, v := range requestStatuses {
		if v == s {
			return true
		}
	}
	return false
}
