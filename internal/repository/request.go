// server/internal/repository/request.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"pharma-factory-api-server/internal/apperrors"
	"pharma-factory-api-server/internal/models"
)

// RequestRepository is the CRUD and status-transition surface over
// reorder requests.
type RequestRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

func NewRequestRepository(db *mongo.Database, logger *zap.Logger) *RequestRepository {
	return &RequestRepository{
		coll:   db.Collection("reorder_requests"),
		logger: logger,
	}
}

// CreateBatch validates every item and inserts them in one ordered
// InsertMany. The batch is all-or-nothing: if any item fails
// validation, nothing is inserted and the error lists each offending
// item by its index.
func (r *RequestRepository) CreateBatch(ctx context.Context, inputs []models.ReorderRequestInput) ([]models.ReorderRequest, error) {
	if len(inputs) == 0 {
		verr := &apperrors.ValidationError{}
		verr.Add("items", "at least one reorder item is required")
		return nil, verr
	}

	requests := make([]models.ReorderRequest, 0, len(inputs))
	batchErr := &apperrors.ValidationError{}
	for i, in := range inputs {
		req, err := models.NewReorderRequest(in)
		if err != nil {
			var verr *apperrors.ValidationError
			if errors.As(err, &verr) {
				for _, f := range verr.Fields {
					batchErr.Add(fmt.Sprintf("items[%d].%s", i, f.Field), f.Message)
				}
				continue
			}
			return nil, err
		}
		requests = append(requests, *req)
	}
	if batchErr.HasErrors() {
		return nil, batchErr
	}

	docs := make([]interface{}, len(requests))
	for i := range requests {
		docs[i] = requests[i]
	}
	result, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	if err != nil {
		return nil, &apperrors.StorageError{Op: "request insert many", Err: err}
	}
	for i, insertedID := range result.InsertedIDs {
		if oid, ok := insertedID.(primitive.ObjectID); ok {
			requests[i].ID = oid
		}
	}

	r.logger.Info("reorder requests created", zap.Int("count", len(requests)))
	return requests, nil
}

func (r *RequestRepository) List(ctx context.Context) ([]models.ReorderRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, &apperrors.StorageError{Op: "request list", Err: err}
	}
	defer cursor.Close(ctx)

	var requests []models.ReorderRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, &apperrors.StorageError{Op: "request decode", Err: err}
	}
	if requests == nil {
		requests = []models.ReorderRequest{}
	}
	return requests, nil
}

func (r *RequestRepository) Get(ctx context.Context, id string) (*models.ReorderRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &apperrors.NotFoundError{Resource: "reorder request", ID: id}
	}

	var req models.ReorderRequest
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&req); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &apperrors.NotFoundError{Resource: "reorder request", ID: id}
		}
		return nil, &apperrors.StorageError{Op: "request get", Err: err}
	}
	return &req, nil
}

// Update merges snapshot fields or a status change onto the request.
func (r *RequestRepository) Update(ctx context.Context, id string, in models.ReorderRequestInput) (*models.ReorderRequest, error) {
	req, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := req.ApplyUpdate(in); err != nil {
		return nil, err
	}

	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": req.ID}, req)
	if err != nil {
		return nil, &apperrors.StorageError{Op: "request replace", Err: err}
	}
	if result.MatchedCount == 0 {
		return nil, &apperrors.NotFoundError{Resource: "reorder request", ID: id}
	}
	return req, nil
}

func (r *RequestRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &apperrors.NotFoundError{Resource: "reorder request", ID: id}
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return &apperrors.StorageError{Op: "request delete", Err: err}
	}
	if result.DeletedCount == 0 {
		return &apperrors.NotFoundError{Resource: "reorder request", ID: id}
	}
	return nil
}

// Approve marks the request approved. The overwrite is unconditional;
// there is no guard against re-approving or approving a rejected
// request.
func (r *RequestRepository) Approve(ctx context.Context, id string) (*models.ReorderRequest, error) {
	return r.setStatus(ctx, id, models.RequestStatusApproved)
}

// Reject marks the request rejected, with the same unconditional
// overwrite semantics as Approve.
func (r *RequestRepository) Reject(ctx context.Context, id string) (*models.ReorderRequest, error) {
	return r.setStatus(ctx, id, models.RequestStatusRejected)
}

func (r *RequestRepository) setStatus(ctx context.Context, id string, status models.RequestStatus) (*models.ReorderRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &apperrors.NotFoundError{Resource: "reorder request", ID: id}
	}

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var req models.ReorderRequest
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&req); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &apperrors.NotFoundError{Resource: "reorder request", ID: id}
		}
		return nil, &apperrors.StorageError{Op: "request set status", Err: err}
	}

	r.logger.Info("reorder request status changed",
		zap.String("id", id),
		zap.String("status", string(status)))
	return &req, nil
}
