// server/internal/models/inventory.go
package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pharma-factory-api-server/internal/apperrors"
	"pharma-factory-api-server/internal/stock"
)

// Category sets for the two inventory subtypes. Raw materials and
// finished goods share one record shape and differ only in collection
// and allowed categories.
var (
	RawMaterialCategories  = []string{"active_ingredient", "excipient", "solvent", "packaging"}
	FinishedGoodCategories = []string{"tablet", "capsule", "syrup", "injection", "ointment"}
)

// InventoryItem is one stock position. Value and Status are derived:
// value == price * quantity and status == classify(quantity, threshold)
// after every successful write.
type InventoryItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Category  string             `bson:"category" json:"category"`
	Price     Decimal            `bson:"price" json:"price"`
	Quantity  int64              `bson:"quantity" json:"quantity"`
	Value     Decimal            `bson:"value" json:"value"`
	Status    stock.Status       `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// InventoryInput is the write payload for an item. All fields are
// pointers so a partial update can tell "absent" from "zero".
type InventoryInput struct {
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Price    *Decimal `json:"price"`
	Quantity *int64   `json:"quantity"`
	// Accepted so clients that echo a full record back do not trip the
	// strict decoder; both are recomputed server-side on every write.
	Value  *Decimal `json:"value"`
	Status *string  `json:"status"`
}

func categoryAllowed(category string, allowed []string) bool {
	for _, c := range allowed {
		if c == category {
			return true
		}
	}
	return false
}

// NewInventoryItem validates a create payload and builds the item with
// its derived fields. Every violated field is reported, not just the
// first.
func NewInventoryItem(in InventoryInput, allowedCategories []string, threshold int64) (*InventoryItem, error) {
	verr := &apperrors.ValidationError{}

	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		verr.Add("name", "name is required and must be non-empty")
	}
	if in.Category == nil || *in.Category == "" {
		verr.Add("category", "category is required")
	} else if !categoryAllowed(*in.Category, allowedCategories) {
		verr.Add("category", "category must be one of: "+strings.Join(allowedCategories, ", "))
	}
	if in.Price == nil {
		verr.Add("price", "price is required")
	} else if in.Price.IsNegative() {
		verr.Add("price", "price cannot be negative")
	}
	if in.Quantity == nil {
		verr.Add("quantity", "quantity is required")
	} else if *in.Quantity < 0 {
		verr.Add("quantity", "quantity cannot be negative")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	now := time.Now()
	item := &InventoryItem{
		Name:      strings.TrimSpace(*in.Name),
		Category:  *in.Category,
		Price:     *in.Price,
		Quantity:  *in.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	item.recompute(threshold)
	return item, nil
}

// ApplyUpdate merges only the provided fields onto the item. If price
// or quantity is among them, value and status are recomputed
// unconditionally; anything the caller supplied for those two fields is
// discarded so a client can never desynchronize them.
func (i *InventoryItem) ApplyUpdate(in InventoryInput, allowedCategories []string, threshold int64) error {
	verr := &apperrors.ValidationError{}

	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		verr.Add("name", "name must be non-empty")
	}
	if in.Category != nil && !categoryAllowed(*in.Category, allowedCategories) {
		verr.Add("category", "category must be one of: "+strings.Join(allowedCategories, ", "))
	}
	if in.Price != nil && in.Price.IsNegative() {
		verr.Add("price", "price cannot be negative")
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		verr.Add("quantity", "quantity cannot be negative")
	}
	if verr.HasErrors() {
		return verr
	}

	if in.Name != nil {
		i.Name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		i.Category = *in.Category
	}
	if in.Price != nil {
		i.Price = *in.Price
	}
	if in.Quantity != nil {
		i.Quantity = *in.Quantity
	}
	if in.Price != nil || in.Quantity != nil {
		i.recompute(threshold)
	}
	i.UpdatedAt = time.Now()
	return nil
}

func (i *InventoryItem) recompute(threshold int64) {
	i.Value = NewDecimal(stock.Value(i.Price.Decimal, i.Quantity))
	i.Status = stock.Classify(i.Quantity, threshold)
}
