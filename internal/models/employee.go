// server/internal/models/employee.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee matches the document in MongoDB. Password holds the bcrypt
// hash and is never serialized to JSON.
type Employee struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName    string             `bson:"firstName" json:"firstName"`
	LastName     string             `bson:"lastName" json:"lastName"`
	Email        string             `bson:"email" json:"email"`
	Password     string             `bson:"password" json:"-"`
	PhoneNumber  string             `bson:"phoneNumber" json:"phoneNumber"`
	NIC          string             `bson:"nic" json:"nic"`
	JobPosition  string             `bson:"jobPosition" json:"jobPosition"`
	Age          int                `bson:"age" json:"age"`
	JobStartDate time.Time          `bson:"jobStartDate" json:"jobStartDate"`
	ImageURL     string             `bson:"imageUrl" json:"imageUrl"`
	Role         string             `bson:"role" json:"role"` // "admin" or "staff"
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
