// server/internal/models/supplier.go
package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pharma-factory-api-server/internal/apperrors"
)

// Supplier is one raw-material supplier. Email is unique across the
// collection, enforced by the repository.
type Supplier struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                  string             `bson:"name" json:"name"`
	Contact               string             `bson:"contact" json:"contact"`
	Email                 string             `bson:"email" json:"email"`
	Address               string             `bson:"address" json:"address"`
	Unit                  string             `bson:"unit" json:"unit"`
	DeliveryTime          int64              `bson:"deliveryTime" json:"deliveryTime"` // days
	Cost                  Decimal            `bson:"cost" json:"cost"`
	HistoricalPerformance float64            `bson:"historicalPerformance" json:"historicalPerformance"`
	Distance              float64            `bson:"distance" json:"distance"` // kilometers
	SupplierRating        float64            `bson:"supplierRating" json:"supplierRating"`
	CreatedAt             time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type SupplierInput struct {
	Name                  *string  `json:"name"`
	Contact               *string  `json:"contact"`
	Email                 *string  `json:"email"`
	Address               *string  `json:"address"`
	Unit                  *string  `json:"unit"`
	DeliveryTime          *int64   `json:"deliveryTime"`
	Cost                  *Decimal `json:"cost"`
	HistoricalPerformance *float64 `json:"historicalPerformance"`
	Distance              *float64 `json:"distance"`
	SupplierRating        *float64 `json:"supplierRating"`
}

// NewSupplier validates a create payload. Name, contact, email, address
// and unit are required; the numeric performance fields default to zero.
func NewSupplier(in SupplierInput) (*Supplier, error) {
	verr := &apperrors.ValidationError{}

	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		verr.Add("name", "name is required")
	}
	if in.Contact == nil || strings.TrimSpace(*in.Contact) == "" {
		verr.Add("contact", "contact is required")
	}
	if in.Email == nil || strings.TrimSpace(*in.Email) == "" {
		verr.Add("email", "email is required")
	} else if !strings.Contains(*in.Email, "@") {
		verr.Add("email", "email must be a valid address")
	}
	if in.Address == nil || strings.TrimSpace(*in.Address) == "" {
		verr.Add("address", "address is required")
	}
	if in.Unit == nil || strings.TrimSpace(*in.Unit) == "" {
		verr.Add("unit", "unit is required")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	now := time.Now()
	s := &Supplier{
		Name:      strings.TrimSpace(*in.Name),
		Contact:   strings.TrimSpace(*in.Contact),
		Email:     strings.ToLower(strings.TrimSpace(*in.Email)),
		Address:   strings.TrimSpace(*in.Address),
		Unit:      strings.TrimSpace(*in.Unit),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.DeliveryTime != nil {
		s.DeliveryTime = *in.DeliveryTime
	}
	if in.Cost != nil {
		s.Cost = *in.Cost
	}
	if in.HistoricalPerformance != nil {
		s.HistoricalPerformance = *in.HistoricalPerformance
	}
	if in.Distance != nil {
		s.Distance = *in.Distance
	}
	if in.SupplierRating != nil {
		s.SupplierRating = *in.SupplierRating
	}
	return s, nil
}

// ApplyUpdate merges the provided fields onto the supplier.
func (s *Supplier) ApplyUpdate(in SupplierInput) error {
	verr := &apperrors.ValidationError{}

	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		verr.Add("name", "name must be non-empty")
	}
	if in.Contact != nil && strings.TrimSpace(*in.Contact) == "" {
		verr.Add("contact", "contact must be non-empty")
	}
	if in.Email != nil && !strings.Contains(*in.Email, "@") {
		verr.Add("email", "email must be a valid address")
	}
	if in.Address != nil && strings.TrimSpace(*in.Address) == "" {
		verr.Add("address", "address must be non-empty")
	}
	if in.Unit != nil && strings.TrimSpace(*in.Unit) == "" {
		verr.Add("unit", "unit must be non-empty")
	}
	if verr.HasErrors() {
		return verr
	}

	if in.Name != nil {
		s.Name = strings.TrimSpace(*in.Name)
	}
	if in.Contact != nil {
		s.Contact = strings.TrimSpace(*in.Contact)
	}
	if in.Email != nil {
		s.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.Address != nil {
		s.Address = strings.TrimSpace(*in.Address)
	}
	if in.Unit != nil {
		s.Unit = strings.TrimSpace(*in.Unit)
	}
	if in.DeliveryTime != nil {
		s.DeliveryTime = *in.DeliveryTime
	}
	if in.Cost != nil {
		s.Cost = *in.Cost
	}
	if in.HistoricalPerformance != nil {
		s.HistoricalPerformance = *in.HistoricalPerformance
	}
	if in.Distance != nil {
		s.Distance = *in.Distance
	}
	if in.SupplierRating != nil {
		s.SupplierRating = *in.SupplierRating
	}
	s.UpdatedAt = time.Now()
	return nil
}
