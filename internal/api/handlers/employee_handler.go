// server/internal/api/handlers/employee_handler.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"pharma-factory-api-server/internal/auth"
	"pharma-factory-api-server/internal/models"
	"pharma-factory-api-server/internal/s3"
)

type EmployeeHandler struct {
	DB         *mongo.Database
	Tokens     *auth.TokenManager
	S3Uploader *s3.Uploader
}

type RegisterRequest struct {
	FirstName    string    `json:"firstName" binding:"required"`
	LastName     string    `json:"lastName" binding:"required"`
	Email        string    `json:"email" binding:"required,email"`
	Password     string    `json:"password" binding:"required,min=8"`
	PhoneNumber  string    `json:"phoneNumber"`
	NIC          string    `json:"nic"`
	JobPosition  string    `json:"jobPosition" binding:"required"`
	Age          int       `json:"age"`
	JobStartDate time.Time `json:"jobStartDate"`
	ImageURL     string    `json:"imageUrl"`
}

// Register creates an employee account. Email is unique across the
// collection.
func (h *EmployeeHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	employees := h.DB.Collection("employees")

	count, err := employees.CountDocuments(c.Request.Context(), bson.M{"email": req.Email})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error checking for employee"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "Employee with this email already exists"})
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to hash password"})
		return
	}

	now := time.Now()
	employee := models.Employee{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Password:     hashedPassword,
		PhoneNumber:  req.PhoneNumber,
		NIC:          req.NIC,
		JobPosition:  req.JobPosition,
		Age:          req.Age,
		JobStartDate: req.JobStartDate,
		ImageURL:     req.ImageURL,
		Role:         "staff",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	result, err := employees.InsertOne(c.Request.Context(), employee)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to register employee"})
		return
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		employee.ID = oid
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Employee registered successfully", "employee": employee})
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *EmployeeHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var employee models.Employee
	err := h.DB.Collection("employees").FindOne(c.Request.Context(), bson.M{"email": req.Email}).Decode(&employee)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to look up employee"})
		}
		return
	}

	if !auth.CheckPasswordHash(req.Password, employee.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	token, err := h.Tokens.Generate(employee.ID.Hex(), employee.Email, employee.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "employee": employee})
}

func (h *EmployeeHandler) List(c *gin.Context) {
	cursor, err := h.DB.Collection("employees").Find(c.Request.Context(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to query employees"})
		return
	}
	defer cursor.Close(c.Request.Context())

	var employees []models.Employee
	if err := cursor.All(c.Request.Context(), &employees); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to decode employees"})
		return
	}
	if employees == nil {
		employees = []models.Employee{}
	}

	c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Employee not found"})
		return
	}

	var employee models.Employee
	if err := h.DB.Collection("employees").FindOne(c.Request.Context(), bson.M{"_id": oid}).Decode(&employee); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Employee not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve employee"})
		}
		return
	}

	c.JSON(http.StatusOK, employee)
}

type UpdateEmployeeRequest struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	PhoneNumber *string `json:"phoneNumber"`
	JobPosition *string `json:"jobPosition"`
	Age         *int    `json:"age"`
	Role        *string `json:"role"`
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Employee not found"})
		return
	}

	var req UpdateEmployeeRequest
	if err := bindStrict(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.FirstName != nil {
		set["firstName"] = *req.FirstName
	}
	if req.LastName != nil {
		set["lastName"] = *req.LastName
	}
	if req.PhoneNumber != nil {
		set["phoneNumber"] = *req.PhoneNumber
	}
	if req.JobPosition != nil {
		set["jobPosition"] = *req.JobPosition
	}
	if req.Age != nil {
		set["age"] = *req.Age
	}
	if req.Role != nil {
		if *req.Role != "admin" && *req.Role != "staff" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "role must be admin or staff"})
			return
		}
		set["role"] = *req.Role
	}

	result, err := h.DB.Collection("employees").UpdateOne(c.Request.Context(), bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update employee"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Employee not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee updated successfully"})
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Employee not found"})
		return
	}

	result, err := h.DB.Collection("employees").DeleteOne(c.Request.Context(), bson.M{"_id": oid})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete employee"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Employee not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}

// UploadPhoto stores the employee's photo in S3 and saves the resulting
// URL on the record.
func (h *EmployeeHandler) UploadPhoto(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Employee not found"})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "photo file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to open uploaded file"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectKey := fmt.Sprintf("employees/%s/%s%s", oid.Hex(), uuid.New().String()[:8], filepath.Ext(fileHeader.Filename))
	url, err := h.S3Uploader.UploadFile(c.Request.Context(), file, objectKey, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to upload photo"})
		return
	}

	result, err := h.DB.Collection("employees").UpdateOne(c.Request.Context(),
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"imageUrl": url, "updatedAt": time.Now()}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save photo URL"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Employee not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Photo uploaded successfully", "imageUrl": url})
}
