// server/internal/repository/supplier.go
package repository

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"pharma-factory-api-server/internal/apperrors"
	"pharma-factory-api-server/internal/models"
)

// SupplierRepository is the CRUD surface over suppliers. Email
// uniqueness is enforced here.
type SupplierRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

func NewSupplierRepository(db *mongo.Database, logger *zap.Logger) *SupplierRepository {
	return &SupplierRepository{
		coll:   db.Collection("suppliers"),
		logger: logger,
	}
}

func (r *SupplierRepository) List(ctx context.Context) ([]models.Supplier, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, &apperrors.StorageError{Op: "supplier list", Err: err}
	}
	defer cursor.Close(ctx)

	var suppliers []models.Supplier
	if err := cursor.All(ctx, &suppliers); err != nil {
		return nil, &apperrors.StorageError{Op: "supplier decode", Err: err}
	}
	if suppliers == nil {
		suppliers = []models.Supplier{}
	}
	return suppliers, nil
}

func (r *SupplierRepository) Get(ctx context.Context, id string) (*models.Supplier, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &apperrors.NotFoundError{Resource: "supplier", ID: id}
	}

	var supplier models.Supplier
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&supplier); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &apperrors.NotFoundError{Resource: "supplier", ID: id}
		}
		return nil, &apperrors.StorageError{Op: "supplier get", Err: err}
	}
	return &supplier, nil
}

func (r *SupplierRepository) Create(ctx context.Context, in models.SupplierInput) (*models.Supplier, error) {
	supplier, err := models.NewSupplier(in)
	if err != nil {
		return nil, err
	}

	if err := r.ensureEmailFree(ctx, supplier.Email, primitive.NilObjectID); err != nil {
		return nil, err
	}

	result, err := r.coll.InsertOne(ctx, supplier)
	if err != nil {
		return nil, &apperrors.StorageError{Op: "supplier insert", Err: err}
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		supplier.ID = oid
	}

	r.logger.Info("supplier created", zap.String("id", supplier.ID.Hex()), zap.String("name", supplier.Name))
	return supplier, nil
}

func (r *SupplierRepository) Update(ctx context.Context, id string, in models.SupplierInput) (*models.Supplier, error) {
	supplier, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := supplier.ApplyUpdate(in); err != nil {
		return nil, err
	}

	if in.Email != nil {
		if err := r.ensureEmailFree(ctx, supplier.Email, supplier.ID); err != nil {
			return nil, err
		}
	}

	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": supplier.ID}, supplier)
	if err != nil {
		return nil, &apperrors.StorageError{Op: "supplier replace", Err: err}
	}
	if result.MatchedCount == 0 {
		return nil, &apperrors.NotFoundError{Resource: "supplier", ID: id}
	}
	return supplier, nil
}

func (r *SupplierRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &apperrors.NotFoundError{Resource: "supplier", ID: id}
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return &apperrors.StorageError{Op: "supplier delete", Err: err}
	}
	if result.DeletedCount == 0 {
		return &apperrors.NotFoundError{Resource: "supplier", ID: id}
	}
	return nil
}

func (r *SupplierRepository) ensureEmailFree(ctx context.Context, email string, except primitive.ObjectID) error {
	filter := bson.M{"email": strings.ToLower(email)}
	if !except.IsZero() {
		filter["_id"] = bson.M{"$ne": except}
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return &apperrors.StorageError{Op: "supplier email check", Err: err}
	}
	if count > 0 {
		return &apperrors.ConflictError{Resource: "supplier", Field: "email", Value: email}
	}
	return nil
}
