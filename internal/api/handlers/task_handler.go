// server/internal/api/handlers/task_handler.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pharma-factory-api-server/internal/models"
)

type TaskHandler struct {
	DB *mongo.Database
}

type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"dueDate"`
	AssignedTo  string     `json:"assignedTo"`
}

var taskStatuses = map[string]bool{"pending": true, "in_progress": true, "completed": true}

func (h *TaskHandler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	status := req.Status
	if status == "" {
		status = "pending"
	}
	if !taskStatuses[status] {
		c.JSON(http.StatusBadRequest, gin.H{"message": "status must be pending, in_progress or completed"})
		return
	}

	now := time.Now()
	task := models.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		DueDate:     req.DueDate,
		AssignedTo:  req.AssignedTo,
		CreatedBy:   c.GetString("employee_id"),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	result, err := h.DB.Collection("tasks").InsertOne(c.Request.Context(), task)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create task"})
		return
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		task.ID = oid
	}

	c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) List(c *gin.Context) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := h.DB.Collection("tasks").Find(c.Request.Context(), bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to query tasks"})
		return
	}
	defer cursor.Close(c.Request.Context())

	var tasks []models.Task
	if err := cursor.All(c.Request.Context(), &tasks); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to decode tasks"})
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}

	c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) Get(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		return
	}

	var task models.Task
	if err := h.DB.Collection("tasks").FindOne(c.Request.Context(), bson.M{"_id": oid}).Decode(&task); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve task"})
		}
		return
	}

	c.JSON(http.StatusOK, task)
}

type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	DueDate     *time.Time `json:"dueDate"`
	AssignedTo  *string    `json:"assignedTo"`
}

func (h *TaskHandler) Update(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		return
	}

	var req UpdateTaskRequest
	if err := bindStrict(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Status != nil {
		if !taskStatuses[*req.Status] {
			c.JSON(http.StatusBadRequest, gin.H{"message": "status must be pending, in_progress or completed"})
			return
		}
		set["status"] = *req.Status
	}
	if req.DueDate != nil {
		set["dueDate"] = *req.DueDate
	}
	if req.AssignedTo != nil {
		set["assignedTo"] = *req.AssignedTo
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var task models.Task
	err = h.DB.Collection("tasks").FindOneAndUpdate(c.Request.Context(), bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update task"})
		}
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		return
	}

	result, err := h.DB.Collection("tasks").DeleteOne(c.Request.Context(), bson.M{"_id": oid})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete task"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Stats aggregates the task counters the dashboard cards display.
func (h *TaskHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()
	coll := h.DB.Collection("tasks")

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.Add(24*time.Hour - time.Nanosecond)

	stats := models.TaskStats{}
	var err error
	count := func(filter bson.M) int64 {
		if err != nil {
			return 0
		}
		var n int64
		n, err = coll.CountDocuments(ctx, filter)
		return n
	}

	stats.AllTasks = count(bson.M{})
	stats.Overdue = count(bson.M{"dueDate": bson.M{"$lt": now}, "status": bson.M{"$ne": "completed"}})
	stats.NoDeadline = count(bson.M{"dueDate": bson.M{"$exists": false}})
	stats.DueToday = count(bson.M{"dueDate": bson.M{"$gte": startOfDay, "$lte": endOfDay}})
	stats.Pending = count(bson.M{"status": "pending"})
	stats.InProgress = count(bson.M{"status": "in_progress"})
	stats.Completed = count(bson.M{"status": "completed"})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to compute task stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
