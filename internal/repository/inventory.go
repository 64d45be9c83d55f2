// server/internal/repository/inventory.go
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"pharma-factory-api-server/internal/apperrors"
	"pharma-factory-api-server/internal/models"
)

// InventoryRepository is the CRUD surface over one inventory
// collection. Raw materials and finished goods each get an instance;
// they differ only in collection name and allowed categories.
//
// Updates are read-modify-write without locking. Two concurrent updates
// against the same item race and the last write wins; each HTTP request
// is independent and no cross-request consistency is claimed.
type InventoryRepository struct {
	coll       *mongo.Collection
	categories []string
	threshold  int64
	logger     *zap.Logger
}

// NewRawMaterialRepository backs the raw-materials inventory.
func NewRawMaterialRepository(db *mongo.Database, threshold int64, logger *zap.Logger) *InventoryRepository {
	return &InventoryRepository{
		coll:       db.Collection("raw_materials"),
		categories: models.RawMaterialCategories,
		threshold:  threshold,
		logger:     logger,
	}
}

// NewFinishedGoodRepository backs the finished-goods ("end products")
// inventory.
func NewFinishedGoodRepository(db *mongo.Database, threshold int64, logger *zap.Logger) *InventoryRepository {
	return &InventoryRepository{
		coll:       db.Collection("finished_goods"),
		categories: models.FinishedGoodCategories,
		threshold:  threshold,
		logger:     logger,
	}
}

// Categories returns the category set this repository accepts.
func (r *InventoryRepository) Categories() []string {
	return r.categories
}

// List returns all items, most recently created first, with _id as the
// stable tiebreak for equal timestamps.
func (r *InventoryRepository) List(ctx context.Context) ([]models.InventoryItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, &apperrors.StorageError{Op: "inventory list", Err: err}
	}
	defer cursor.Close(ctx)

	var items []models.InventoryItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, &apperrors.StorageError{Op: "inventory decode", Err: err}
	}
	if items == nil {
		items = []models.InventoryItem{}
	}
	return items, nil
}

// ListByCategory returns the items in one category, newest first.
func (r *InventoryRepository) ListByCategory(ctx context.Context, category string) ([]models.InventoryItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"category": category}, opts)
	if err != nil {
		return nil, &apperrors.StorageError{Op: "inventory list by category", Err: err}
	}
	defer cursor.Close(ctx)

	var items []models.InventoryItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, &apperrors.StorageError{Op: "inventory decode", Err: err}
	}
	if items == nil {
		items = []models.InventoryItem{}
	}
	return items, nil
}

// ListBelowThreshold returns the low-stock and out-of-stock items, the
// candidates for the reorder flow.
func (r *InventoryRepository) ListBelowThreshold(ctx context.Context) ([]models.InventoryItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "quantity", Value: 1}, {Key: "_id", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"quantity": bson.M{"$lt": r.threshold}}, opts)
	if err != nil {
		return nil, &apperrors.StorageError{Op: "inventory list below threshold", Err: err}
	}
	defer cursor.Close(ctx)

	var items []models.InventoryItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, &apperrors.StorageError{Op: "inventory decode", Err: err}
	}
	if items == nil {
		items = []models.InventoryItem{}
	}
	return items, nil
}

func (r *InventoryRepository) Get(ctx context.Context, id string) (*models.InventoryItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &apperrors.NotFoundError{Resource: "inventory item", ID: id}
	}

	var item models.InventoryItem
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &apperrors.NotFoundError{Resource: "inventory item", ID: id}
		}
		return nil, &apperrors.StorageError{Op: "inventory get", Err: err}
	}
	return &item, nil
}

// Create validates the payload, derives value and status, and persists
// the item. Duplicate names are permitted.
func (r *InventoryRepository) Create(ctx context.Context, in models.InventoryInput) (*models.InventoryItem, error) {
	item, err := models.NewInventoryItem(in, r.categories, r.threshold)
	if err != nil {
		return nil, err
	}

	result, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return nil, &apperrors.StorageError{Op: "inventory insert", Err: err}
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid
	}

	r.logger.Info("inventory item created",
		zap.String("collection", r.coll.Name()),
		zap.String("id", item.ID.Hex()),
		zap.String("name", item.Name),
		zap.String("status", string(item.Status)))
	return item, nil
}

// Update merges the provided fields onto the stored item, recomputing
// value and status when price or quantity changed, and writes the whole
// document back.
func (r *InventoryRepository) Update(ctx context.Context, id string, in models.InventoryInput) (*models.InventoryItem, error) {
	item, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := item.ApplyUpdate(in, r.categories, r.threshold); err != nil {
		return nil, err
	}

	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": item.ID}, item)
	if err != nil {
		return nil, &apperrors.StorageError{Op: "inventory replace", Err: err}
	}
	if result.MatchedCount == 0 {
		// Deleted between the read and the write.
		return nil, &apperrors.NotFoundError{Resource: "inventory item", ID: id}
	}
	return item, nil
}

func (r *InventoryRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &apperrors.NotFoundError{Resource: "inventory item", ID: id}
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return &apperrors.StorageError{Op: "inventory delete", Err: err}
	}
	if result.DeletedCount == 0 {
		return &apperrors.NotFoundError{Resource: "inventory item", ID: id}
	}
	return nil
}
