// server/internal/api/handlers/product_handler.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pharma-factory-api-server/internal/apperrors"
	"pharma-factory-api-server/internal/models"
)

// ProductHandler serves the product catalog ("add product" entries).
type ProductHandler struct {
	DB *mongo.Database
}

type CreateProductRequest struct {
	Name        string         `json:"name" binding:"required"`
	Category    string         `json:"category" binding:"required"`
	Description string         `json:"description" binding:"required"`
	Price       models.Decimal `json:"price" binding:"required"`
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "price cannot be negative"})
		return
	}

	now := time.Now()
	product := models.ProductDefinition{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Price:       req.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	result, err := h.DB.Collection("products").InsertOne(c.Request.Context(), product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create product"})
		return
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid
	}

	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) List(c *gin.Context) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	cursor, err := h.DB.Collection("products").Find(c.Request.Context(), bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to query products"})
		return
	}
	defer cursor.Close(c.Request.Context())

	var products []models.ProductDefinition
	if err := cursor.All(c.Request.Context(), &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to decode products"})
		return
	}
	if products == nil {
		products = []models.ProductDefinition{}
	}

	c.JSON(http.StatusOK, products)
}

func notFoundProduct(id string) error {
	return &apperrors.NotFoundError{Resource: "product", ID: id}
}
