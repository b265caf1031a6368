package models

import "time"

// Company is the employer a staff member belongs to.
type Company struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Address   *Location `bson:"address,omitempty" json:"address,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
