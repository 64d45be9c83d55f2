// server/internal/models/task.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description"`
	Status      string             `bson:"status" json:"status"` // "pending", "in_progress", "completed"
	DueDate     *time.Time         `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	AssignedTo  string             `bson:"assignedTo,omitempty" json:"assignedTo"`
	CreatedBy   string             `bson:"createdBy" json:"createdBy"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// TaskStats is the aggregate view behind GET /tasks/stats.
type TaskStats struct {
	AllTasks   int64 `json:"allTasks"`
	Overdue    int64 `json:"overdue"`
	NoDeadline int64 `json:"noDeadline"`
	DueToday   int64 `json:"dueToday"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"inProgress"`
	Completed  int64 `json:"completed"`
}
