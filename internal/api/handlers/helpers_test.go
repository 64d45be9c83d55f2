package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"pharma-factory-api-server/internal/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondError_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", (&apperrors.ValidationError{}).Add("name", "name is required"), http.StatusBadRequest},
		{"not found", &apperrors.NotFoundError{Resource: "inventory item", ID: "abc"}, http.StatusNotFound},
		{"conflict", &apperrors.ConflictError{Resource: "supplier", Field: "email", Value: "x@y.z"}, http.StatusConflict},
		{"storage", &apperrors.StorageError{Op: "list", Err: errors.New("down")}, http.StatusInternalServerError},
		{"external", &apperrors.ExternalServiceError{Service: "smtp", Err: errors.New("refused")}, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		recorder := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(recorder)

		respondError(c, tc.err)

		if recorder.Code != tc.want {
			t.Errorf("%s: status = %d, want %d", tc.name, recorder.Code, tc.want)
		}

		var body map[string]interface{}
		if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: body is not JSON: %v", tc.name, err)
		}
		if _, ok := body["message"]; !ok {
			t.Errorf("%s: body missing message field: %s", tc.name, recorder.Body.String())
		}
	}
}

func TestRespondError_ValidationCarriesFieldList(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	verr := &apperrors.ValidationError{}
	verr.Add("name", "name is required")
	verr.Add("price", "price cannot be negative")
	respondError(c, verr)

	var body struct {
		Errors []apperrors.FieldError `json:"errors"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Errors) != 2 {
		t.Fatalf("errors = %v, want both violations listed", body.Errors)
	}
	if body.Errors[0].Field != "name" || body.Errors[1].Field != "price" {
		t.Errorf("unexpected field order: %v", body.Errors)
	}
}

func TestDecodeReorderBatch_SingleObject(t *testing.T) {
	inputs, err := decodeReorderBatch([]byte(`{"name":"A","currentQty":5,"requestQty":2}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(inputs) != 1 {
		t.Fatalf("got %d inputs, want 1", len(inputs))
	}
	if inputs[0].Name == nil || *inputs[0].Name != "A" {
		t.Errorf("name not decoded: %+v", inputs[0])
	}
}

func TestDecodeReorderBatch_Array(t *testing.T) {
	inputs, err := decodeReorderBatch([]byte(`[{"name":"A","currentQty":5,"requestQty":2},{"name":"B","currentQty":0,"requestQty":9}]`))
	if err != nil {
		t.Fatal(err)
	}
	if len(inputs) != 2 {
		t.Fatalf("got %d inputs, want 2", len(inputs))
	}
	if inputs[1].CurrentQty == nil || *inputs[1].CurrentQty != 0 {
		t.Errorf("zero currentQty must survive decoding: %+v", inputs[1])
	}
}

func TestDecodeReorderBatch_RejectsUnknownFields(t *testing.T) {
	if _, err := decodeReorderBatch([]byte(`{"name":"A","currentQty":5,"requestQty":2,"quantiy":3}`)); err == nil {
		t.Error("expected error for unknown field, got nil")
	}
}
