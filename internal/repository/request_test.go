package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"pharma-factory-api-server/internal/apperrors"
	"pharma-factory-api-server/internal/models"
)

// The driver connects lazily, so a repository against an unreachable
// URI still exercises every code path that fails before the first
// storage operation.
func newOfflineRequestRepo(t *testing.T) *RequestRepository {
	t.Helper()
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:1"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return NewRequestRepository(client.Database("test"), zap.NewNop())
}

func strPtr(s string) *string { return &s }
func i64Ptr(n int64) *int64   { return &n }

func TestCreateBatch_AllOrNothingValidation(t *testing.T) {
	repo := newOfflineRequestRepo(t)

	inputs := []models.ReorderRequestInput{
		{Name: strPtr("A"), CurrentQty: i64Ptr(5), RequestQty: i64Ptr(2)},
		{Name: strPtr(""), CurrentQty: i64Ptr(1), RequestQty: i64Ptr(1)},
	}

	_, err := repo.CreateBatch(context.Background(), inputs)

	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	// The whole batch must fail; the error has to point at the second
	// item's name, and only that.
	if len(verr.Fields) != 1 {
		t.Fatalf("violations = %v, want exactly one", verr.Fields)
	}
	if !strings.HasPrefix(verr.Fields[0].Field, "items[1].name") {
		t.Errorf("violation = %q, want items[1].name", verr.Fields[0].Field)
	}
}

func TestCreateBatch_EmptyBatchRejected(t *testing.T) {
	repo := newOfflineRequestRepo(t)

	_, err := repo.CreateBatch(context.Background(), nil)
	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCreateBatch_IndexesEveryInvalidItem(t *testing.T) {
	repo := newOfflineRequestRepo(t)

	inputs := []models.ReorderRequestInput{
		{Name: strPtr(""), CurrentQty: i64Ptr(5), RequestQty: i64Ptr(2)},
		{Name: strPtr("B"), CurrentQty: i64Ptr(1), RequestQty: i64Ptr(0)},
	}

	_, err := repo.CreateBatch(context.Background(), inputs)
	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	violated := map[string]bool{}
	for _, f := range verr.Fields {
		violated[f.Field] = true
	}
	if !violated["items[0].name"] || !violated["items[1].requestQty"] {
		t.Errorf("violations = %v, want items[0].name and items[1].requestQty", verr.Fields)
	}
}
