package models

import "time"

// User account types.
const (
	UserTypeCustomer = "customer"
	UserTypeCompany  = "company"
)

// User is an account record. Registration, credentials and sessions are owned
// by the auth subsystem; this service only reads users for joins and role
// checks.
type User struct {
	ID             string    `bson:"id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Email          string    `bson:"email" json:"email"`
	Phone          string    `bson:"phone,omitempty" json:"phone,omitempty"`
	ProfilePicture string    `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	UserType       string    `bson:"userType" json:"userType"`
	Address        string    `bson:"address,omitempty" json:"address,omitempty"`
	IsActive       bool      `bson:"isActive" json:"isActive"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}
