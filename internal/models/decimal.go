// server/internal/models/decimal.go
package models

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Decimal is the monetary type used for price and value fields. It does
// arithmetic through shopspring/decimal, serializes to a bare JSON
// number, and is stored in MongoDB as Decimal128 so currency amounts
// never pass through binary floats.
type Decimal struct {
	decimal.Decimal
}

func NewDecimal(d decimal.Decimal) Decimal {
	return Decimal{Decimal: d}
}

func DecimalFromString(s string) (Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{Decimal: d}, nil
}

// MarshalJSON emits the amount as a plain number, the form the CRUD
// frontend sends and expects back.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.Decimal.String()), nil
}

// UnmarshalJSON accepts both quoted and unquoted numbers.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	return d.Decimal.UnmarshalJSON(data)
}

func (d Decimal) MarshalBSONValue() (bsontype.Type, []byte, error) {
	d128, err := primitive.ParseDecimal128(d.Decimal.String())
	if err != nil {
		return bson.TypeNull, nil, fmt.Errorf("convert %q to Decimal128: %w", d.Decimal.String(), err)
	}
	return bson.MarshalValue(d128)
}

// UnmarshalBSONValue reads Decimal128 documents, plus the double, int
// and string forms older documents may still carry.
func (d *Decimal) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeDecimal128:
		d128, ok := raw.Decimal128OK()
		if !ok {
			return fmt.Errorf("malformed Decimal128 value")
		}
		dec, err := decimal.NewFromString(d128.String())
		if err != nil {
			return err
		}
		d.Decimal = dec
		return nil
	case bson.TypeDouble:
		f, ok := raw.DoubleOK()
		if !ok {
			return fmt.Errorf("malformed double value")
		}
		d.Decimal = decimal.NewFromFloat(f)
		return nil
	case bson.TypeInt32:
		i, ok := raw.Int32OK()
		if !ok {
			return fmt.Errorf("malformed int32 value")
		}
		d.Decimal = decimal.NewFromInt32(i)
		return nil
	case bson.TypeInt64:
		i, ok := raw.Int64OK()
		if !ok {
			return fmt.Errorf("malformed int64 value")
		}
		d.Decimal = decimal.NewFromInt(i)
		return nil
	case bson.TypeString:
		s, ok := raw.StringValueOK()
		if !ok {
			return fmt.Errorf("malformed string value")
		}
		dec, err := decimal.NewFromString(s)
		if err != nil {
			return err
		}
		d.Decimal = dec
		return nil
	case bson.TypeNull:
		d.Decimal = decimal.Zero
		return nil
	default:
		return fmt.Errorf("cannot decode %v into a Decimal", t)
	}
}

// IsNegative reports whether the amount is below zero.
func (d Decimal) IsNegative() bool {
	return d.Decimal.IsNegative()
}

// Equal compares two amounts numerically, so 2.50 equals 2.5.
func (d Decimal) Equal(other Decimal) bool {
	return d.Decimal.Equal(other.Decimal)
}
