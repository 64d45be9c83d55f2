// server/internal/api/handlers/supplier_handler.go
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"pharma-factory-api-server/internal/apperrors"
	"pharma-factory-api-server/internal/mailer"
	"pharma-factory-api-server/internal/models"
	"pharma-factory-api-server/internal/repository"
)

type SupplierHandler struct {
	Repo   *repository.SupplierRepository
	DB     *mongo.Database
	Mailer *mailer.Mailer
}

func (h *SupplierHandler) List(c *gin.Context) {
	suppliers, err := h.Repo.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

func (h *SupplierHandler) Create(c *gin.Context) {
	var input models.SupplierInput
	if err := bindStrict(c, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	supplier, err := h.Repo.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Supplier created successfully", "supplier": supplier})
}

func (h *SupplierHandler) Update(c *gin.Context) {
	var input models.SupplierInput
	if err := bindStrict(c, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	supplier, err := h.Repo.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Supplier updated successfully", "supplier": supplier})
}

func (h *SupplierHandler) Delete(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Supplier deleted successfully"})
}

type SendRequestPayload struct {
	SupplierID string `json:"supplierId" binding:"required"`
	ProductID  string `json:"productId" binding:"required"`
	Quantity   int64  `json:"quantity" binding:"required,min=1"`
}

// SendRequest emails a supply request for a catalog product to the
// supplier's registered address.
func (h *SupplierHandler) SendRequest(c *gin.Context) {
	var payload SendRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	supplier, err := h.Repo.Get(c.Request.Context(), payload.SupplierID)
	if err != nil {
		respondError(c, err)
		return
	}

	product, err := h.findProduct(c.Request.Context(), payload.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.Mailer.SendSupplyRequest(supplier.Email, supplier.Name, product.Name, payload.Quantity); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request sent successfully"})
}

func (h *SupplierHandler) findProduct(ctx context.Context, id string) (*models.ProductDefinition, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, notFoundProduct(id)
	}

	var product models.ProductDefinition
	if err := h.DB.Collection("products").FindOne(ctx, bson.M{"_id": oid}).Decode(&product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFoundProduct(id)
		}
		return nil, &apperrors.StorageError{Op: "product get", Err: err}
	}
	return &product, nil
}
