package models

import (
	"encoding/json"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestDecimal_JSONNumberForm(t *testing.T) {
	d, err := DecimalFromString("19.99")
	if err != nil {
		t.Fatal(err)
	}

	out, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "19.99" {
		t.Errorf("marshal = %s, want bare number 19.99", out)
	}

	var back Decimal
	if err := json.Unmarshal([]byte(`19.99`), &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(d) {
		t.Errorf("unquoted unmarshal = %s, want 19.99", back)
	}

	if err := json.Unmarshal([]byte(`"19.99"`), &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(d) {
		t.Errorf("quoted unmarshal = %s, want 19.99", back)
	}
}

func TestDecimal_BSONDecimal128(t *testing.T) {
	d, err := DecimalFromString("12.50")
	if err != nil {
		t.Fatal(err)
	}

	typ, data, err := d.MarshalBSONValue()
	if err != nil {
		t.Fatal(err)
	}
	if typ != bson.TypeDecimal128 {
		t.Errorf("marshalled as %v, want Decimal128", typ)
	}

	var back Decimal
	if err := back.UnmarshalBSONValue(typ, data); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(d) {
		t.Errorf("round trip = %s, want 12.50", back)
	}
}

func TestDecimal_BSONLegacyForms(t *testing.T) {
	// Documents written before the Decimal128 migration carry doubles
	// and ints.
	typ, data, err := bson.MarshalValue(3.5)
	if err != nil {
		t.Fatal(err)
	}
	var fromDouble Decimal
	if err := fromDouble.UnmarshalBSONValue(typ, data); err != nil {
		t.Fatal(err)
	}
	if fromDouble.String() != "3.5" {
		t.Errorf("double decode = %s, want 3.5", fromDouble)
	}

	typ, data, err = bson.MarshalValue(int64(42))
	if err != nil {
		t.Fatal(err)
	}
	var fromInt Decimal
	if err := fromInt.UnmarshalBSONValue(typ, data); err != nil {
		t.Fatal(err)
	}
	if fromInt.String() != "42" {
		t.Errorf("int64 decode = %s, want 42", fromInt)
	}
}
